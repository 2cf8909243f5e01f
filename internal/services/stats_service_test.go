package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"moneytracker/internal/aggregate"
	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/models"
	"moneytracker/internal/pagination"
	"moneytracker/internal/testutil"
)

// mockStore implements TransactionServicer with function fields.
type mockStore struct {
	listAllFn         func() ([]models.Transaction, error)
	listByDateRangeFn func(start, end time.Time) ([]models.Transaction, error)
	getStatsFn        func() (aggregate.Totals, error)
}

var _ TransactionServicer = (*mockStore)(nil)

func (m *mockStore) ListAll() ([]models.Transaction, error) {
	return m.listAllFn()
}

func (m *mockStore) ListByDateRange(start, end time.Time) ([]models.Transaction, error) {
	if m.listByDateRangeFn != nil {
		return m.listByDateRangeFn(start, end)
	}
	all, err := m.listAllFn()
	if err != nil {
		return nil, err
	}
	return aggregate.Filter(all, aggregate.Criteria{DateRange: &aggregate.DateRange{Start: start, End: end}}), nil
}

func (m *mockStore) GetByID(string) (*models.Transaction, error) {
	return nil, apperrors.ErrTransactionNotFound
}

func (m *mockStore) Create(TransactionInput) (*models.Transaction, error) {
	return nil, apperrors.ErrInternalServer
}

func (m *mockStore) Update(string, TransactionInput) (*models.Transaction, error) {
	return nil, apperrors.ErrInternalServer
}

func (m *mockStore) Delete(string) error {
	return apperrors.ErrInternalServer
}

func (m *mockStore) GetStats() (aggregate.Totals, error) {
	if m.getStatsFn != nil {
		return m.getStatsFn()
	}
	all, err := m.listAllFn()
	if err != nil {
		return aggregate.Totals{}, err
	}
	return aggregate.ComputeTotals(all)
}

func record(id string, kind models.TransactionKind, amount string, categoryID int, desc string, date time.Time) models.Transaction {
	return models.Transaction{
		ID:          id,
		Kind:        kind,
		Amount:      decimal.RequireFromString(amount),
		CategoryID:  categoryID,
		Description: desc,
		Date:        date,
	}
}

var statsNow = time.Date(2025, 11, 20, 15, 0, 0, 0, time.UTC)

func storeWith(txs ...models.Transaction) *mockStore {
	return &mockStore{listAllFn: func() ([]models.Transaction, error) { return txs, nil }}
}

func fixtureHistory() []models.Transaction {
	return []models.Transaction{
		record("a", models.TransactionKindIncome, "2500", 13, "Salary", statsNow.Add(-2*time.Hour)),
		record("b", models.TransactionKindExpense, "45.20", 1, "Groceries", statsNow.Add(-26*time.Hour)),
		record("c", models.TransactionKindExpense, "12", 2, "Bus pass", statsNow.AddDate(0, 0, -5)),
		record("d", models.TransactionKindExpense, "300", 3, "Rent share", statsNow.AddDate(0, -1, 0)),
	}
}

func TestStatsMonthSummary(t *testing.T) {
	svc := NewStatsService(storeWith(fixtureHistory()...), language.English)

	totals, err := svc.MonthSummary(statsNow)
	testutil.AssertNoError(t, err)
	if totals.Count != 3 {
		t.Errorf("expected 3 records in November, got %d", totals.Count)
	}
	if !totals.Balance.Equal(decimal.RequireFromString("2442.80")) {
		t.Errorf("expected balance 2442.80, got %s", totals.Balance)
	}
}

func TestStatsPeriodSummary(t *testing.T) {
	svc := NewStatsService(storeWith(fixtureHistory()...), language.English)

	t.Run("year", func(t *testing.T) {
		totals, err := svc.PeriodSummary(aggregate.PeriodYear, statsNow)
		testutil.AssertNoError(t, err)
		if totals.Count != 4 {
			t.Errorf("expected 4 records, got %d", totals.Count)
		}
	})

	t.Run("invalid_period", func(t *testing.T) {
		_, err := svc.PeriodSummary("decade", statsNow)
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestStatsCategoryBreakdown(t *testing.T) {
	svc := NewStatsService(storeWith(fixtureHistory()...), language.English)

	t.Run("all_time", func(t *testing.T) {
		shares, err := svc.CategoryBreakdown(models.TransactionKindExpense, nil, statsNow)
		testutil.AssertNoError(t, err)
		if len(shares) != 3 || shares[0].CategoryID != 3 {
			t.Fatalf("expected rent first among 3 categories, got %+v", shares)
		}
	})

	t.Run("this_month", func(t *testing.T) {
		month := aggregate.PeriodMonth
		shares, err := svc.CategoryBreakdown(models.TransactionKindExpense, &month, statsNow)
		testutil.AssertNoError(t, err)
		if len(shares) != 2 || shares[0].CategoryID != 1 {
			t.Fatalf("expected groceries first among 2 categories, got %+v", shares)
		}
	})

	t.Run("invalid_kind", func(t *testing.T) {
		_, err := svc.CategoryBreakdown("all", nil, statsNow)
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestStatsHistory(t *testing.T) {
	t.Run("english_labels", func(t *testing.T) {
		svc := NewStatsService(storeWith(fixtureHistory()...), language.English)

		buckets, err := svc.History(statsNow, aggregate.Criteria{Kind: aggregate.KindExpense})
		testutil.AssertNoError(t, err)
		labels := buckets.Labels()
		want := []string{"Yesterday", "Saturday, 15 November", "Monday, 20 October"}
		if len(labels) != len(want) {
			t.Fatalf("expected %v, got %v", want, labels)
		}
		for i := range want {
			if labels[i] != want[i] {
				t.Errorf("label %d: expected %q, got %q", i, want[i], labels[i])
			}
		}
	})

	t.Run("spanish_labels", func(t *testing.T) {
		svc := NewStatsService(storeWith(fixtureHistory()...), language.Spanish)

		buckets, err := svc.History(statsNow, aggregate.Criteria{})
		testutil.AssertNoError(t, err)
		if _, ok := buckets.Get("Hoy"); !ok {
			t.Errorf("expected a Hoy bucket, got %v", buckets.Labels())
		}
	})

	t.Run("store_error", func(t *testing.T) {
		svc := NewStatsService(&mockStore{listAllFn: func() ([]models.Transaction, error) {
			return nil, apperrors.ErrInternalServer
		}}, language.English)

		_, err := svc.History(statsNow, aggregate.Criteria{})
		testutil.AssertAppError(t, err, "INTERNAL_ERROR")
	})
}

func TestStatsSearch(t *testing.T) {
	svc := NewStatsService(storeWith(fixtureHistory()...), language.English)

	t.Run("defaults_to_newest_first", func(t *testing.T) {
		page, err := svc.Search(SearchQuery{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 4 || page.Data[0].ID != "a" {
			t.Errorf("unexpected page: %+v", page)
		}
	})

	t.Run("filter_sort_paginate", func(t *testing.T) {
		page, err := svc.Search(SearchQuery{
			Criteria:  aggregate.Criteria{Kind: aggregate.KindExpense},
			SortKey:   aggregate.SortByAmount,
			Direction: aggregate.Ascending,
			Page:      pagination.PageRequest{Page: 1, PageSize: 2},
		})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 3 || page.TotalPages != 2 {
			t.Fatalf("unexpected page metadata: %+v", page)
		}
		if page.Data[0].ID != "c" || page.Data[1].ID != "b" {
			t.Errorf("expected c, b; got %s, %s", page.Data[0].ID, page.Data[1].ID)
		}
	})
}

func TestStatsMonthlySeries(t *testing.T) {
	svc := NewStatsService(storeWith(fixtureHistory()...), language.English)

	series, err := svc.MonthlySeries(statsNow, 2)
	testutil.AssertNoError(t, err)
	if len(series) != 2 || series[0].Month != time.October {
		t.Fatalf("unexpected series: %+v", series)
	}
	if !series[0].Expenses.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected October expenses 300, got %s", series[0].Expenses)
	}
}

func TestStatsCheckConsistency(t *testing.T) {
	t.Run("consistent", func(t *testing.T) {
		svc := NewStatsService(storeWith(fixtureHistory()...), language.English)

		report, err := svc.CheckConsistency()
		testutil.AssertNoError(t, err)
		if !report.Consistent {
			t.Errorf("expected consistent report, got %+v", report)
		}
	})

	t.Run("diverging_store", func(t *testing.T) {
		store := storeWith(fixtureHistory()...)
		store.getStatsFn = func() (aggregate.Totals, error) {
			return aggregate.Totals{Count: 1}, nil
		}
		svc := NewStatsService(store, language.English)

		report, err := svc.CheckConsistency()
		testutil.AssertNoError(t, err)
		if report.Consistent {
			t.Error("expected inconsistent report")
		}
	})

	t.Run("sqlite_store", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.CreateTestTransaction(t, db, models.TransactionKindIncome, "0.10")
		testutil.CreateTestTransaction(t, db, models.TransactionKindIncome, "0.20")
		testutil.CreateTestTransaction(t, db, models.TransactionKindExpense, "0.30")
		svc := NewStatsService(NewTransactionService(db), language.English)

		report, err := svc.CheckConsistency()
		testutil.AssertNoError(t, err)
		if !report.Consistent {
			t.Errorf("expected consistent report, got %+v", report)
		}
	})
}
