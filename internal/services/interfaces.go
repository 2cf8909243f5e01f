package services

import (
	"time"

	"github.com/shopspring/decimal"

	"moneytracker/internal/aggregate"
	"moneytracker/internal/models"
	"moneytracker/internal/pagination"
)

// TransactionInput carries the caller-supplied fields of a create or update.
// Nil fields are left untouched on update; on create, Kind, Amount and
// CategoryID are required and Date defaults to now.
type TransactionInput struct {
	Kind        *models.TransactionKind
	Amount      *decimal.Decimal
	CategoryID  *int
	Description *string
	Date        *time.Time
}

// TransactionServicer defines the contract for the transaction store.
type TransactionServicer interface {
	ListAll() ([]models.Transaction, error)
	ListByDateRange(start, end time.Time) ([]models.Transaction, error)
	GetByID(id string) (*models.Transaction, error)
	Create(in TransactionInput) (*models.Transaction, error)
	Update(id string, in TransactionInput) (*models.Transaction, error)
	Delete(id string) error
	GetStats() (aggregate.Totals, error)
}

// SearchQuery describes a filter, sort and page over the full history.
type SearchQuery struct {
	Criteria  aggregate.Criteria
	SortKey   aggregate.SortKey
	Direction aggregate.SortDirection
	Page      pagination.PageRequest
}

// ConsistencyReport compares the store's own totals with totals recomputed
// from the full transaction list.
type ConsistencyReport struct {
	Consistent bool             `json:"consistent"`
	Store      aggregate.Totals `json:"store"`
	Computed   aggregate.Totals `json:"computed"`
}

// StatsServicer defines the contract for derived views over the store.
type StatsServicer interface {
	MonthSummary(now time.Time) (aggregate.Totals, error)
	PeriodSummary(period aggregate.Period, now time.Time) (aggregate.Totals, error)
	CategoryBreakdown(kind models.TransactionKind, period *aggregate.Period, now time.Time) ([]aggregate.CategoryShare, error)
	MonthlySeries(now time.Time, months int) ([]aggregate.MonthTotals, error)
	History(now time.Time, criteria aggregate.Criteria) (aggregate.Buckets, error)
	Search(q SearchQuery) (*pagination.PageResponse[models.Transaction], error)
	CheckConsistency() (*ConsistencyReport, error)
}
