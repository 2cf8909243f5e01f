package aggregate

import (
	"slices"

	"golang.org/x/text/collate"

	"moneytracker/internal/models"
)

// SortKey names the field Sort orders by.
type SortKey string

const (
	SortByDate        SortKey = "date"
	SortByAmount      SortKey = "amount"
	SortByDescription SortKey = "description"
)

// SortDirection is ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Sort returns a sorted copy of txs. The sort is stable: records with equal
// keys keep their relative input order in both directions. Descriptions are
// compared with the collation rules of the configured locale. An unknown key
// returns an unsorted copy.
func Sort(txs []models.Transaction, key SortKey, dir SortDirection, opts ...Option) []models.Transaction {
	out := slices.Clone(txs)
	if out == nil {
		out = []models.Transaction{}
	}

	var cmp func(a, b *models.Transaction) int
	switch key {
	case SortByDate:
		cmp = func(a, b *models.Transaction) int { return a.Date.Compare(b.Date) }
	case SortByAmount:
		cmp = func(a, b *models.Transaction) int { return a.Amount.Cmp(b.Amount) }
	case SortByDescription:
		col := collate.New(newOptions(opts).locale)
		cmp = func(a, b *models.Transaction) int { return col.CompareString(a.Description, b.Description) }
	default:
		return out
	}

	sign := 1
	if dir == Descending {
		sign = -1
	}
	slices.SortStableFunc(out, func(a, b models.Transaction) int {
		return sign * cmp(&a, &b)
	})
	return out
}
