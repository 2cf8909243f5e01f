package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/logger"
)

// dateOnlyLayout is the calendar-date form accepted alongside RFC3339.
const dateOnlyLayout = "2006-01-02"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Code    string `json:"code" example:"NOT_FOUND"`
	Message string `json:"message" example:"Transaction not found"`
}

// MessageResponse represents a success response that carries only a message.
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message"`
}

// respondData writes the {success, data} envelope.
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{
			Success: false,
			Code:    appErr.Code,
			Message: appErr.Message,
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{
		Success: false,
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	})
}

// parseFlexibleTime accepts RFC3339 timestamps or YYYY-MM-DD dates. Dates are
// taken as midnight in loc. The second result reports whether s was date-only.
func parseFlexibleTime(s string, loc *time.Location) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	t, err := time.ParseInLocation(dateOnlyLayout, s, loc)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid date %q, use RFC3339 or YYYY-MM-DD", s)
	}
	return t, true, nil
}

// parseRangeStart parses the lower bound of a date range.
func parseRangeStart(s string, loc *time.Location) (time.Time, error) {
	t, _, err := parseFlexibleTime(s, loc)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrValidation, err.Error())
	}
	return t, nil
}

// parseRangeEnd parses the upper bound of a date range. A date-only bound
// covers the whole day.
func parseRangeEnd(s string, loc *time.Location) (time.Time, error) {
	t, dateOnly, err := parseFlexibleTime(s, loc)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrValidation, err.Error())
	}
	if dateOnly {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return t, nil
}

// referenceTime returns the "now" query parameter, or the current time in loc.
func referenceTime(c *gin.Context, loc *time.Location) (time.Time, error) {
	v := c.Query("now")
	if v == "" {
		return time.Now().In(loc), nil
	}
	t, _, err := parseFlexibleTime(v, loc)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrValidation, err.Error())
	}
	return t.In(loc), nil
}

// parseIntParam parses an integer path parameter.
func parseIntParam(c *gin.Context, param string) (int, error) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrValidation, "Invalid "+param)
	}
	return id, nil
}
