package aggregate

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"moneytracker/internal/models"
)

// CategoryTotal is the sum and number of records for one category.
type CategoryTotal struct {
	CategoryID int             `json:"categoryId"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
}

// GroupByCategory accumulates amounts per category id. The map has one entry
// per distinct category present in txs; iteration order carries no meaning.
func GroupByCategory(txs []models.Transaction) (map[int]CategoryTotal, error) {
	groups := make(map[int]CategoryTotal)
	for i := range txs {
		if err := Validate(txs[i]); err != nil {
			return nil, err
		}
		g := groups[txs[i].CategoryID]
		g.CategoryID = txs[i].CategoryID
		g.Total = g.Total.Add(txs[i].Amount)
		g.Count++
		groups[txs[i].CategoryID] = g
	}
	return groups, nil
}

// CategoryShare is a category total together with its share of the kind total.
type CategoryShare struct {
	CategoryTotal
	Percentage decimal.Decimal `json:"percentage"`
}

var hundred = decimal.NewFromInt(100)

// CategoryBreakdown groups the records of one kind by category and orders the
// groups by total, largest first (ties by category id). Percentages are rounded
// to two decimals and are zero when the kind total is zero.
func CategoryBreakdown(txs []models.Transaction, kind models.TransactionKind) ([]CategoryShare, error) {
	groups, err := GroupByCategory(Filter(txs, Criteria{Kind: KindFilter(kind)}))
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, g := range groups {
		total = total.Add(g.Total)
	}

	out := make([]CategoryShare, 0, len(groups))
	for _, g := range groups {
		share := CategoryShare{CategoryTotal: g, Percentage: decimal.Zero}
		if !total.IsZero() {
			share.Percentage = g.Total.Mul(hundred).Div(total).Round(2)
		}
		out = append(out, share)
	}
	slices.SortFunc(out, func(a, b CategoryShare) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.CategoryID, b.CategoryID)
	})
	return out, nil
}
