// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"moneytracker/internal/aggregate"
	"moneytracker/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_kind", validateTransactionKind)
		_ = v.RegisterValidation("kind_filter", validateKindFilter)
		_ = v.RegisterValidation("sort_key", validateSortKey)
		_ = v.RegisterValidation("sort_order", validateSortOrder)
		_ = v.RegisterValidation("stats_period", validateStatsPeriod)
	}
}

func validateTransactionKind(fl validator.FieldLevel) bool {
	return models.TransactionKind(fl.Field().String()).Valid()
}

func validateKindFilter(fl validator.FieldLevel) bool {
	switch aggregate.KindFilter(fl.Field().String()) {
	case aggregate.KindAll, aggregate.KindIncome, aggregate.KindExpense:
		return true
	}
	return false
}

func validateSortKey(fl validator.FieldLevel) bool {
	switch aggregate.SortKey(fl.Field().String()) {
	case aggregate.SortByDate, aggregate.SortByAmount, aggregate.SortByDescription:
		return true
	}
	return false
}

func validateSortOrder(fl validator.FieldLevel) bool {
	switch aggregate.SortDirection(fl.Field().String()) {
	case aggregate.Ascending, aggregate.Descending:
		return true
	}
	return false
}

func validateStatsPeriod(fl validator.FieldLevel) bool {
	switch aggregate.Period(fl.Field().String()) {
	case aggregate.PeriodWeek, aggregate.PeriodMonth, aggregate.PeriodYear:
		return true
	}
	return false
}
