// Package aggregate is the transaction aggregation engine: pure functions that
// reduce, filter, sort and group an in-memory list of transactions.
//
// No function in this package mutates its input, performs I/O or reads the wall
// clock; every time-relative computation takes the reference time explicitly.
package aggregate

import (
	"fmt"

	"github.com/shopspring/decimal"

	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/models"
)

// Totals summarizes a set of transactions.
type Totals struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
	Count    int             `json:"count"`
}

// Equal reports whether both totals carry the same values.
func (t Totals) Equal(o Totals) bool {
	return t.Count == o.Count &&
		t.Income.Equal(o.Income) &&
		t.Expenses.Equal(o.Expenses) &&
		t.Balance.Equal(o.Balance)
}

// Validate rejects records that cannot be summed safely.
func Validate(tx models.Transaction) error {
	if !tx.Kind.Valid() {
		return apperrors.WithMessage(apperrors.ErrValidation,
			fmt.Sprintf("invalid transaction type %q, must be income or expense", tx.Kind))
	}
	if tx.Amount.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrValidation, "amount must not be negative")
	}
	return nil
}

// ComputeTotals sums income and expense amounts. The balance is income minus
// expenses and Count is the number of records. An empty input yields zero totals.
func ComputeTotals(txs []models.Transaction) (Totals, error) {
	var t Totals
	for i := range txs {
		if err := Validate(txs[i]); err != nil {
			return Totals{}, err
		}
		switch txs[i].Kind {
		case models.TransactionKindIncome:
			t.Income = t.Income.Add(txs[i].Amount)
		case models.TransactionKindExpense:
			t.Expenses = t.Expenses.Add(txs[i].Amount)
		}
	}
	t.Balance = t.Income.Sub(t.Expenses)
	t.Count = len(txs)
	return t, nil
}

// Recent returns a copy of the first n records of an already ordered list.
func Recent(txs []models.Transaction, n int) []models.Transaction {
	if n > len(txs) {
		n = len(txs)
	}
	if n < 0 {
		n = 0
	}
	out := make([]models.Transaction, n)
	copy(out, txs[:n])
	return out
}
