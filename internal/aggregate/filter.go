package aggregate

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"moneytracker/internal/models"
)

// KindFilter selects income, expense or all records.
type KindFilter string

const (
	KindAll     KindFilter = "all"
	KindIncome  KindFilter = KindFilter(models.TransactionKindIncome)
	KindExpense KindFilter = KindFilter(models.TransactionKindExpense)
)

// DateRange is an inclusive [Start, End] interval.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Criteria configures Filter. Zero-valued options are ignored; the options
// that are set must all match.
type Criteria struct {
	Kind       KindFilter
	CategoryID *int
	SearchText string
	DateRange  *DateRange
}

// Filter returns the records matching every option of c, in input order.
func Filter(txs []models.Transaction, c Criteria) []models.Transaction {
	var (
		fold   = cases.Fold()
		needle string
	)
	if c.SearchText != "" {
		needle = fold.String(c.SearchText)
	}

	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if c.Kind != "" && c.Kind != KindAll && string(tx.Kind) != string(c.Kind) {
			continue
		}
		if c.CategoryID != nil && tx.CategoryID != *c.CategoryID {
			continue
		}
		if c.DateRange != nil && !c.DateRange.Contains(tx.Date) {
			continue
		}
		if needle != "" && !strings.Contains(fold.String(tx.Description), needle) {
			continue
		}
		out = append(out, tx)
	}
	return out
}
