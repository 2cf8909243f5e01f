package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/models"
	"moneytracker/internal/services"
)

// TransactionHandler handles transaction CRUD and range requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	location           *time.Location
}

// NewTransactionHandler creates a new TransactionHandler. Date-only inputs are
// interpreted in loc.
func NewTransactionHandler(transactionService services.TransactionServicer, loc *time.Location) *TransactionHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &TransactionHandler{transactionService: transactionService, location: loc}
}

// CreateTransactionRequest represents the request payload for creating a transaction.
type CreateTransactionRequest struct {
	Type        *models.TransactionKind `json:"type" binding:"required,transaction_kind" swaggertype:"string" enums:"income,expense"`
	Amount      *decimal.Decimal        `json:"amount" binding:"required" swaggertype:"number" example:"12.5"`
	CategoryID  *int                    `json:"categoryId" binding:"required" example:"1"`
	Description *string                 `json:"description" binding:"omitempty,max=500"`
	Date        *string                 `json:"date" example:"2025-11-02T10:30:00Z"`
}

// UpdateTransactionRequest represents the request payload for updating a
// transaction. Omitted fields keep their stored value.
type UpdateTransactionRequest struct {
	Type        *models.TransactionKind `json:"type" binding:"omitempty,transaction_kind" swaggertype:"string" enums:"income,expense"`
	Amount      *decimal.Decimal        `json:"amount" swaggertype:"number"`
	CategoryID  *int                    `json:"categoryId"`
	Description *string                 `json:"description" binding:"omitempty,max=500"`
	Date        *string                 `json:"date"`
}

// TransactionResponse represents a transaction in the response.
type TransactionResponse struct {
	Success bool               `json:"success" example:"true"`
	Data    models.Transaction `json:"data"`
}

// TransactionListResponse represents a list of transactions in the response.
type TransactionListResponse struct {
	Success bool                 `json:"success" example:"true"`
	Data    []models.Transaction `json:"data"`
}

// GetTransactions handles listing every transaction
// @Summary     List transactions
// @Description Get all transactions, most recent first
// @Tags        transactions
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} TransactionListResponse
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	transactions, err := h.transactionService.ListAll()
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, transactions)
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} TransactionResponse
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	transaction, err := h.transactionService.GetByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, transaction)
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record a new income or expense. The date defaults to now.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	date, err := h.optionalDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.Create(services.TransactionInput{
		Kind:        req.Type,
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, http.StatusCreated, transaction)
}

// UpdateTransaction handles updating an existing transaction
// @Summary     Update transaction
// @Description Replace the supplied fields of a transaction. The id and creation time never change.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id      path string                   true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} TransactionResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	date, err := h.optionalDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.Update(c.Param("id"), services.TransactionInput{
		Kind:        req.Type,
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, transaction)
}

// DeleteTransaction handles deleting a transaction
// @Summary     Delete transaction
// @Tags        transactions
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.transactionService.Delete(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Transaction deleted successfully"})
}

// GetTransactionsByRange handles listing transactions between two dates
// @Summary     List transactions in a date range
// @Description Both bounds are inclusive. A YYYY-MM-DD end date covers the whole day.
// @Tags        transactions
// @Produce     json
// @Security    ApiKeyAuth
// @Param       startDate path string true "Start (RFC3339 or YYYY-MM-DD)"
// @Param       endDate   path string true "End (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} TransactionListResponse
// @Failure     400 {object} ErrorResponse "Invalid dates"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/range/{startDate}/{endDate} [get]
func (h *TransactionHandler) GetTransactionsByRange(c *gin.Context) {
	start, err := parseRangeStart(c.Param("startDate"), h.location)
	if err != nil {
		respondWithError(c, err)
		return
	}
	end, err := parseRangeEnd(c.Param("endDate"), h.location)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.ListByDateRange(start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, transactions)
}

func (h *TransactionHandler) optionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, _, err := parseFlexibleTime(*s, h.location)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, err.Error())
	}
	return &t, nil
}
