package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"moneytracker/internal/models"
)

func tx(id string, kind models.TransactionKind, amount string, categoryID int, desc string, date time.Time) models.Transaction {
	return models.Transaction{
		ID:          id,
		Kind:        kind,
		Amount:      decimal.RequireFromString(amount),
		CategoryID:  categoryID,
		Description: desc,
		Date:        date,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func ids(txs []models.Transaction) []string {
	out := make([]string, len(txs))
	for i := range txs {
		out[i] = txs[i].ID
	}
	return out
}

func assertIDs(t *testing.T, got []models.Transaction, want ...string) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, g)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, g)
		}
	}
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("expected %s %s, got %s", name, want, got)
	}
}

// sample is a small mixed ledger used across tests.
func sample() []models.Transaction {
	return []models.Transaction{
		tx("a", models.TransactionKindIncome, "2500", 13, "Salario octubre", day(2025, 10, 1)),
		tx("b", models.TransactionKindExpense, "45.50", 1, "Supermercado", day(2025, 10, 3)),
		tx("c", models.TransactionKindExpense, "800", 3, "Alquiler", day(2025, 10, 5)),
		tx("d", models.TransactionKindExpense, "12.30", 2, "metro", day(2025, 11, 2)),
		tx("e", models.TransactionKindIncome, "300", 15, "Freelance logo", day(2025, 11, 5)),
		tx("f", models.TransactionKindExpense, "45.50", 1, "Frutería", day(2025, 11, 5)),
	}
}
