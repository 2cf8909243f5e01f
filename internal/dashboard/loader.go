// Package dashboard assembles the data each client screen renders from a
// remote transaction store. Loads never fail: a store or transport error is
// logged and the screen gets an empty view.
package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"moneytracker/internal/aggregate"
	"moneytracker/internal/categories"
	"moneytracker/internal/logger"
	"moneytracker/internal/models"
)

const (
	recentCount  = 5
	seriesMonths = 6
)

// Store is the subset of the transaction store the dashboard reads.
type Store interface {
	ListAll(ctx context.Context) ([]models.Transaction, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]models.Transaction, error)
	GetStats(ctx context.Context) (aggregate.Totals, error)
}

// Entry is a transaction decorated with its catalog category.
type Entry struct {
	models.Transaction
	Category      models.Category `json:"category"`
	KnownCategory bool            `json:"knownCategory"`
}

// HomeView is the overview screen: overall totals, this month and the latest records.
type HomeView struct {
	Totals aggregate.Totals `json:"totals"`
	Month  aggregate.Totals `json:"month"`
	Recent []Entry          `json:"recent"`
}

// BucketView is a labeled day of history.
type BucketView struct {
	Label   string  `json:"label"`
	Entries []Entry `json:"entries"`
}

// HistoryView is the filtered, grouped history screen.
type HistoryView struct {
	Totals  aggregate.Totals `json:"totals"`
	Buckets []BucketView     `json:"buckets"`
}

// ShareView is a category share decorated with its catalog entry.
type ShareView struct {
	aggregate.CategoryShare
	Category models.Category `json:"category"`
}

// StatsView is the statistics screen for one period.
type StatsView struct {
	Period    aggregate.Period        `json:"period"`
	Range     aggregate.DateRange     `json:"range"`
	Totals    aggregate.Totals        `json:"totals"`
	Breakdown []ShareView             `json:"breakdown"`
	Series    []aggregate.MonthTotals `json:"series"`
}

// Loader builds views from a Store.
type Loader struct {
	store   Store
	catalog *categories.Catalog
	locale  language.Tag
	log     *zap.SugaredLogger
}

// NewLoader creates a Loader. The locale drives date labels and text ordering.
func NewLoader(store Store, catalog *categories.Catalog, locale language.Tag) *Loader {
	return &Loader{
		store:   store,
		catalog: catalog,
		locale:  locale,
		log:     logger.Named("dashboard"),
	}
}

// Home fetches the full list and the store totals concurrently.
func (l *Loader) Home(ctx context.Context, now time.Time) HomeView {
	var (
		txs    []models.Transaction
		totals aggregate.Totals
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = l.store.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = l.store.GetStats(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		l.log.Warnw("home load failed", "error", err)
		return emptyHome()
	}

	month, err := aggregate.CurrentMonthSummary(txs, now)
	if err != nil {
		l.log.Warnw("home month summary failed", "error", err)
		return emptyHome()
	}

	return HomeView{
		Totals: totals,
		Month:  month,
		Recent: l.entries(aggregate.Recent(txs, recentCount)),
	}
}

// History filters, sorts and buckets the full list.
func (l *Loader) History(ctx context.Context, now time.Time, criteria aggregate.Criteria, key aggregate.SortKey, dir aggregate.SortDirection) HistoryView {
	txs, err := l.store.ListAll(ctx)
	if err != nil {
		l.log.Warnw("history load failed", "error", err)
		return emptyHistory()
	}

	filtered := aggregate.Filter(txs, criteria)
	totals, err := aggregate.ComputeTotals(filtered)
	if err != nil {
		l.log.Warnw("history totals failed", "error", err)
		return emptyHistory()
	}

	sorted := aggregate.Sort(filtered, key, dir, aggregate.WithLocale(l.locale))
	buckets := aggregate.GroupByDateBucket(sorted, now, aggregate.WithLocale(l.locale))

	view := HistoryView{Totals: totals, Buckets: make([]BucketView, 0, len(buckets))}
	for _, b := range buckets {
		view.Buckets = append(view.Buckets, BucketView{Label: b.Label, Entries: l.entries(b.Transactions)})
	}
	return view
}

// Stats loads the period's records and the monthly series concurrently.
func (l *Loader) Stats(ctx context.Context, now time.Time, period aggregate.Period) StatsView {
	rng, err := aggregate.PeriodRange(period, now)
	if err != nil {
		l.log.Warnw("stats period rejected", "period", period, "error", err)
		return emptyStats(period)
	}

	var inPeriod, all []models.Transaction
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		inPeriod, err = l.store.ListByDateRange(gctx, rng.Start, rng.End)
		return err
	})
	g.Go(func() error {
		var err error
		all, err = l.store.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		l.log.Warnw("stats load failed", "error", err)
		return emptyStats(period)
	}

	totals, err := aggregate.ComputeTotals(inPeriod)
	if err != nil {
		l.log.Warnw("stats totals failed", "error", err)
		return emptyStats(period)
	}
	shares, err := aggregate.CategoryBreakdown(inPeriod, models.TransactionKindExpense)
	if err != nil {
		l.log.Warnw("stats breakdown failed", "error", err)
		return emptyStats(period)
	}
	series, err := aggregate.MonthlySeries(all, now, seriesMonths)
	if err != nil {
		l.log.Warnw("stats series failed", "error", err)
		return emptyStats(period)
	}

	view := StatsView{
		Period:    period,
		Range:     rng,
		Totals:    totals,
		Breakdown: make([]ShareView, 0, len(shares)),
		Series:    series,
	}
	for _, s := range shares {
		cat, _ := l.catalog.Lookup(s.CategoryID)
		view.Breakdown = append(view.Breakdown, ShareView{CategoryShare: s, Category: cat})
	}
	return view
}

func (l *Loader) entries(txs []models.Transaction) []Entry {
	out := make([]Entry, 0, len(txs))
	for _, tx := range txs {
		cat, err := l.catalog.Lookup(tx.CategoryID)
		out = append(out, Entry{Transaction: tx, Category: cat, KnownCategory: err == nil})
	}
	return out
}

func emptyHome() HomeView {
	return HomeView{Recent: []Entry{}}
}

func emptyHistory() HistoryView {
	return HistoryView{Buckets: []BucketView{}}
}

func emptyStats(period aggregate.Period) StatsView {
	return StatsView{Period: period, Breakdown: []ShareView{}, Series: []aggregate.MonthTotals{}}
}
