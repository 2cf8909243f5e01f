package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind discriminates income from expense records.
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
)

// Valid reports whether k is one of the known kinds.
func (k TransactionKind) Valid() bool {
	return k == TransactionKindIncome || k == TransactionKindExpense
}

// Transaction represents a single income or expense event.
//
// Date is when the event happened; CreatedAt is when the record was stored.
// The JSON shape mirrors the documents the mobile client already consumes.
type Transaction struct {
	ID          string          `gorm:"type:uuid;primaryKey" json:"_id"`
	Kind        TransactionKind `gorm:"column:type;type:varchar(10);not null;index" json:"type"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	CategoryID  int             `gorm:"not null;index" json:"categoryId"`
	Description string          `gorm:"not null;default:''" json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"createdAt"`
}

// TableName keeps the table name stable regardless of GORM naming strategy.
func (Transaction) TableName() string {
	return "transactions"
}
