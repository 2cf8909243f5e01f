package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"moneytracker/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestTransaction stores a transaction of the given kind and amount dated now.
func CreateTestTransaction(t *testing.T, db *gorm.DB, kind models.TransactionKind, amount string) *models.Transaction {
	t.Helper()
	return CreateTestTransactionAt(t, db, kind, amount, 1, time.Now().UTC())
}

// CreateTestTransactionAt stores a transaction with an explicit category and date.
func CreateTestTransactionAt(t *testing.T, db *gorm.DB, kind models.TransactionKind, amount string, categoryID int, date time.Time) *models.Transaction {
	t.Helper()

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("invalid fixture amount %q: %v", amount, err)
	}

	tx := &models.Transaction{
		Kind:        kind,
		Amount:      amt,
		CategoryID:  categoryID,
		Description: fmt.Sprintf("Test transaction %d", nextID()),
		Date:        date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CountTransactions returns the number of stored transactions.
func CountTransactions(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var n int64
	if err := db.Model(&models.Transaction{}).Count(&n).Error; err != nil {
		t.Fatalf("failed to count transactions: %v", err)
	}
	return n
}
