package services

import (
	"time"

	"golang.org/x/text/language"

	"moneytracker/internal/aggregate"
	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/logger"
	"moneytracker/internal/models"
	"moneytracker/internal/pagination"
)

// statsService derives summaries from the transaction store using the
// aggregation engine.
type statsService struct {
	store  TransactionServicer
	locale language.Tag
}

// NewStatsService creates a new StatsServicer. The locale drives bucket
// labels and description collation.
func NewStatsService(store TransactionServicer, locale language.Tag) StatsServicer {
	return &statsService{
		store:  store,
		locale: locale,
	}
}

// MonthSummary returns totals for the calendar month containing now.
func (s *statsService) MonthSummary(now time.Time) (aggregate.Totals, error) {
	return s.PeriodSummary(aggregate.PeriodMonth, now)
}

// PeriodSummary returns totals for the week, month or year containing now.
func (s *statsService) PeriodSummary(period aggregate.Period, now time.Time) (aggregate.Totals, error) {
	rng, err := aggregate.PeriodRange(period, now)
	if err != nil {
		return aggregate.Totals{}, err
	}
	txs, err := s.store.ListByDateRange(rng.Start, rng.End)
	if err != nil {
		return aggregate.Totals{}, err
	}
	return aggregate.ComputeTotals(txs)
}

// CategoryBreakdown ranks categories of the given kind by total. When period
// is set only transactions inside that period around now are counted.
func (s *statsService) CategoryBreakdown(kind models.TransactionKind, period *aggregate.Period, now time.Time) ([]aggregate.CategoryShare, error) {
	if !kind.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "type must be income or expense")
	}

	var (
		txs []models.Transaction
		err error
	)
	if period != nil {
		rng, rerr := aggregate.PeriodRange(*period, now)
		if rerr != nil {
			return nil, rerr
		}
		txs, err = s.store.ListByDateRange(rng.Start, rng.End)
	} else {
		txs, err = s.store.ListAll()
	}
	if err != nil {
		return nil, err
	}
	return aggregate.CategoryBreakdown(txs, kind)
}

// MonthlySeries returns per-month income and expenses for the last months
// months ending with the month containing now.
func (s *statsService) MonthlySeries(now time.Time, months int) ([]aggregate.MonthTotals, error) {
	txs, err := s.store.ListAll()
	if err != nil {
		return nil, err
	}
	return aggregate.MonthlySeries(txs, now, months)
}

// History filters the full list and groups it into relative-date buckets.
func (s *statsService) History(now time.Time, criteria aggregate.Criteria) (aggregate.Buckets, error) {
	txs, err := s.store.ListAll()
	if err != nil {
		return nil, err
	}
	filtered := aggregate.Filter(txs, criteria)
	sorted := aggregate.Sort(filtered, aggregate.SortByDate, aggregate.Descending)
	return aggregate.GroupByDateBucket(sorted, now, aggregate.WithLocale(s.locale)), nil
}

// Search filters, sorts and paginates the full list.
func (s *statsService) Search(q SearchQuery) (*pagination.PageResponse[models.Transaction], error) {
	txs, err := s.store.ListAll()
	if err != nil {
		return nil, err
	}

	key := q.SortKey
	if key == "" {
		key = aggregate.SortByDate
	}
	dir := q.Direction
	if dir == "" {
		dir = aggregate.Descending
	}

	filtered := aggregate.Filter(txs, q.Criteria)
	sorted := aggregate.Sort(filtered, key, dir, aggregate.WithLocale(s.locale))
	page := pagination.Paginate(sorted, q.Page)
	return &page, nil
}

// CheckConsistency compares the store's GetStats with totals recomputed from
// ListAll. A mismatch is reported, not returned as an error.
func (s *statsService) CheckConsistency() (*ConsistencyReport, error) {
	stored, err := s.store.GetStats()
	if err != nil {
		return nil, err
	}
	txs, err := s.store.ListAll()
	if err != nil {
		return nil, err
	}
	computed, err := aggregate.ComputeTotals(txs)
	if err != nil {
		return nil, err
	}

	report := &ConsistencyReport{
		Consistent: stored.Equal(computed),
		Store:      stored,
		Computed:   computed,
	}
	if !report.Consistent {
		logger.Get().Warnw("store totals diverge from recomputed totals",
			"store_balance", stored.Balance.String(),
			"computed_balance", computed.Balance.String(),
			"store_count", stored.Count,
			"computed_count", computed.Count,
		)
	}
	return report, nil
}
