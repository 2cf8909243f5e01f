package aggregate

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/models"
)

// Bucket is a labeled group of transactions sharing a relative day.
type Bucket struct {
	Label        string               `json:"label"`
	Transactions []models.Transaction `json:"transactions"`
}

// Buckets keeps groups in order of first appearance.
type Buckets []Bucket

// Get returns the transactions of the bucket with the given label.
func (b Buckets) Get(label string) ([]models.Transaction, bool) {
	for i := range b {
		if b[i].Label == label {
			return b[i].Transactions, true
		}
	}
	return nil, false
}

// Labels returns the bucket labels in order.
func (b Buckets) Labels() []string {
	out := make([]string, len(b))
	for i := range b {
		out[i] = b[i].Label
	}
	return out
}

// GroupByDateBucket groups transactions by the day they happened relative to
// now: "Today", "Yesterday", or a weekday/day/month label. Days are compared in
// now's location. Records keep their input order inside each bucket.
func GroupByDateBucket(txs []models.Transaction, now time.Time, opts ...Option) Buckets {
	words := labelsFor(newOptions(opts).locale)
	loc := now.Location()
	today := dayOf(now)
	yesterday := dayOf(now.AddDate(0, 0, -1))

	var out Buckets
	index := make(map[string]int)
	for _, tx := range txs {
		d := tx.Date.In(loc)
		var label string
		switch dayOf(d) {
		case today:
			label = words.today
		case yesterday:
			label = words.yesterday
		default:
			label = words.day(d)
		}

		i, ok := index[label]
		if !ok {
			i = len(out)
			index[label] = i
			out = append(out, Bucket{Label: label})
		}
		out[i].Transactions = append(out[i].Transactions, tx)
	}
	return out
}

// MonthRange returns the inclusive range covering now's calendar month.
func MonthRange(now time.Time) DateRange {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return DateRange{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}
}

// CurrentMonthSummary totals the records that fall inside now's month.
func CurrentMonthSummary(txs []models.Transaction, now time.Time) (Totals, error) {
	r := MonthRange(now)
	return ComputeTotals(Filter(txs, Criteria{DateRange: &r}))
}

// Period is a reporting window relative to a reference time.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// PeriodRange returns the inclusive range of the period containing now.
// Weeks start on Monday.
func PeriodRange(p Period, now time.Time) (DateRange, error) {
	y, m, d := now.Date()
	loc := now.Location()
	switch p {
	case PeriodWeek:
		offset := (int(now.Weekday()) + 6) % 7
		start := time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
		return DateRange{Start: start, End: start.AddDate(0, 0, 7).Add(-time.Nanosecond)}, nil
	case PeriodMonth:
		return MonthRange(now), nil
	case PeriodYear:
		start := time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
		return DateRange{Start: start, End: start.AddDate(1, 0, 0).Add(-time.Nanosecond)}, nil
	}
	return DateRange{}, apperrors.WithMessage(apperrors.ErrValidation,
		fmt.Sprintf("invalid period %q, must be week, month, or year", p))
}

// MonthTotals holds income and expense sums for one calendar month.
type MonthTotals struct {
	Year     int             `json:"year"`
	Month    time.Month      `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// MonthlySeries returns totals for the last `months` calendar months ending
// with now's month, oldest first.
func MonthlySeries(txs []models.Transaction, now time.Time, months int) ([]MonthTotals, error) {
	if months <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "months must be greater than zero")
	}

	out := make([]MonthTotals, 0, months)
	for i := months - 1; i >= 0; i-- {
		ref := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		totals, err := CurrentMonthSummary(txs, ref)
		if err != nil {
			return nil, err
		}
		out = append(out, MonthTotals{
			Year:     ref.Year(),
			Month:    ref.Month(),
			Income:   totals.Income,
			Expenses: totals.Expenses,
		})
	}
	return out, nil
}

type civilDay struct {
	year  int
	month time.Month
	day   int
}

func dayOf(t time.Time) civilDay {
	y, m, d := t.Date()
	return civilDay{y, m, d}
}

type bucketWords struct {
	today     string
	yesterday string
	day       func(time.Time) string
}

var spanishWeekdays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

var spanishMonths = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}

func labelsFor(tag language.Tag) bucketWords {
	if base, _ := tag.Base(); base.String() == "es" {
		return bucketWords{
			today:     "Hoy",
			yesterday: "Ayer",
			day: func(t time.Time) string {
				return fmt.Sprintf("%s, %d de %s", spanishWeekdays[t.Weekday()], t.Day(), spanishMonths[t.Month()-1])
			},
		}
	}
	return bucketWords{
		today:     "Today",
		yesterday: "Yesterday",
		day: func(t time.Time) string {
			return fmt.Sprintf("%s, %d %s", t.Weekday(), t.Day(), t.Month())
		},
	}
}
