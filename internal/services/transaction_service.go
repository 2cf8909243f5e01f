package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"moneytracker/internal/aggregate"
	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/models"
)

// amountPlaces is the number of decimal places amounts are stored with.
const amountPlaces = 2

// transactionService is the GORM-backed transaction store.
type transactionService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{
		db:  db,
		now: time.Now,
	}
}

// ListAll returns every stored transaction, most recent first.
func (s *transactionService) ListAll() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.ordered(s.db).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return transactions, nil
}

// ListByDateRange returns transactions whose date falls within [start, end].
func (s *transactionService) ListByDateRange(start, end time.Time) ([]models.Transaction, error) {
	if start.After(end) {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "startDate must not be after endDate")
	}

	var transactions []models.Transaction
	err := s.ordered(s.db).
		Where("date >= ? AND date <= ?", start.UTC(), end.UTC()).
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return transactions, nil
}

// GetByID returns a single transaction.
func (s *transactionService) GetByID(id string) (*models.Transaction, error) {
	return s.getByID(s.db, id)
}

// Create validates and stores a new transaction.
func (s *transactionService) Create(in TransactionInput) (*models.Transaction, error) {
	switch {
	case in.Kind == nil:
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "type is required")
	case in.Amount == nil:
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "amount is required")
	case in.CategoryID == nil:
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "categoryId is required")
	}

	transaction := &models.Transaction{
		Kind:       *in.Kind,
		Amount:     *in.Amount,
		CategoryID: *in.CategoryID,
		Date:       s.now().UTC(),
	}
	applyInput(transaction, TransactionInput{Description: in.Description, Date: in.Date})

	if err := aggregate.Validate(*transaction); err != nil {
		return nil, err
	}
	transaction.Amount = transaction.Amount.Round(amountPlaces)

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// Update replaces the supplied fields of an existing transaction. The id and
// creation timestamp never change.
func (s *transactionService) Update(id string, in TransactionInput) (*models.Transaction, error) {
	var result *models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		transaction, err := s.getByID(tx, id)
		if err != nil {
			return err
		}

		applyInput(transaction, in)
		if err := aggregate.Validate(*transaction); err != nil {
			return err
		}
		transaction.Amount = transaction.Amount.Round(amountPlaces)

		if err := tx.Model(transaction).
			Select("Kind", "Amount", "CategoryID", "Description", "Date").
			Updates(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		result = transaction
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes a transaction.
func (s *transactionService) Delete(id string) error {
	if !validID(id) {
		return apperrors.ErrTransactionNotFound
	}

	res := s.db.Where("id = ?", id).Delete(&models.Transaction{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// kindSum is one row of the per-kind aggregate query.
type kindSum struct {
	Kind  models.TransactionKind
	Total decimal.Decimal
	Count int
}

// GetStats computes totals over every stored transaction in the database.
func (s *transactionService) GetStats() (aggregate.Totals, error) {
	var rows []kindSum
	err := s.db.Model(&models.Transaction{}).
		Select("type AS kind, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return aggregate.Totals{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totals := aggregate.Totals{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, row := range rows {
		// SQLite sums NUMERIC columns as floats.
		sum := row.Total.Round(amountPlaces)
		switch row.Kind {
		case models.TransactionKindIncome:
			totals.Income = sum
		case models.TransactionKindExpense:
			totals.Expenses = sum
		}
		totals.Count += row.Count
	}
	totals.Balance = totals.Income.Sub(totals.Expenses)
	return totals, nil
}

func (s *transactionService) getByID(db *gorm.DB, id string) (*models.Transaction, error) {
	if !validID(id) {
		return nil, apperrors.ErrTransactionNotFound
	}

	var transaction models.Transaction
	if err := db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

func (s *transactionService) ordered(db *gorm.DB) *gorm.DB {
	return db.Order("date DESC").Order("created_at DESC")
}

func applyInput(t *models.Transaction, in TransactionInput) {
	if in.Kind != nil {
		t.Kind = *in.Kind
	}
	if in.Amount != nil {
		t.Amount = *in.Amount
	}
	if in.CategoryID != nil {
		t.CategoryID = *in.CategoryID
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Date != nil && !in.Date.IsZero() {
		t.Date = in.Date.UTC()
	}
}

// validID rejects ids that could never have been issued, so malformed ids
// read as not found instead of reaching the database.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
