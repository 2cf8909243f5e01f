package aggregate

import (
	"testing"

	"moneytracker/internal/models"
	"moneytracker/internal/testutil"
)

func TestGroupByCategory(t *testing.T) {
	t.Run("totals_and_counts", func(t *testing.T) {
		groups, err := GroupByCategory([]models.Transaction{
			tx("1", models.TransactionKindExpense, "10", 1, "", day(2025, 1, 1)),
			tx("2", models.TransactionKindExpense, "5", 1, "", day(2025, 1, 1)),
			tx("3", models.TransactionKindExpense, "7", 2, "", day(2025, 1, 1)),
		})
		testutil.AssertNoError(t, err)

		if len(groups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(groups))
		}
		assertDecimal(t, "category 1 total", groups[1].Total, "15")
		if groups[1].Count != 2 {
			t.Errorf("expected category 1 count 2, got %d", groups[1].Count)
		}
		assertDecimal(t, "category 2 total", groups[2].Total, "7")
		if groups[2].Count != 1 || groups[2].CategoryID != 2 {
			t.Errorf("unexpected category 2 group: %+v", groups[2])
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		groups, err := GroupByCategory(nil)
		testutil.AssertNoError(t, err)
		if len(groups) != 0 {
			t.Errorf("expected no groups, got %d", len(groups))
		}
	})

	t.Run("invalid_record", func(t *testing.T) {
		_, err := GroupByCategory([]models.Transaction{
			tx("1", models.TransactionKind(""), "10", 1, "", day(2025, 1, 1)),
		})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestCategoryBreakdown(t *testing.T) {
	t.Run("expenses_sorted_with_percentages", func(t *testing.T) {
		shares, err := CategoryBreakdown(sample(), models.TransactionKindExpense)
		testutil.AssertNoError(t, err)

		if len(shares) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(shares))
		}
		wantOrder := []int{3, 1, 2}
		wantPct := []string{"88.56", "10.07", "1.36"}
		for i, s := range shares {
			if s.CategoryID != wantOrder[i] {
				t.Errorf("position %d: expected category %d, got %d", i, wantOrder[i], s.CategoryID)
			}
			assertDecimal(t, "percentage", s.Percentage, wantPct[i])
		}
		assertDecimal(t, "category 1 total", shares[1].Total, "91")
	})

	t.Run("ties_ordered_by_category_id", func(t *testing.T) {
		shares, err := CategoryBreakdown([]models.Transaction{
			tx("1", models.TransactionKindExpense, "10", 7, "", day(2025, 1, 1)),
			tx("2", models.TransactionKindExpense, "10", 4, "", day(2025, 1, 1)),
		}, models.TransactionKindExpense)
		testutil.AssertNoError(t, err)
		if shares[0].CategoryID != 4 || shares[1].CategoryID != 7 {
			t.Errorf("unexpected order: %+v", shares)
		}
		assertDecimal(t, "percentage", shares[0].Percentage, "50")
	})

	t.Run("zero_total", func(t *testing.T) {
		shares, err := CategoryBreakdown([]models.Transaction{
			tx("1", models.TransactionKindIncome, "0", 13, "", day(2025, 1, 1)),
		}, models.TransactionKindIncome)
		testutil.AssertNoError(t, err)
		if len(shares) != 1 || !shares[0].Percentage.IsZero() {
			t.Errorf("expected a single zero share, got %+v", shares)
		}
	})
}
