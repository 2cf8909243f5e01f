package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"moneytracker/internal/aggregate"
	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/models"
	"moneytracker/internal/pagination"
	"moneytracker/internal/services"
)

// defaultSeriesMonths is the number of months returned by the monthly series
// when the caller does not ask for a specific count.
const defaultSeriesMonths = 6

// StatsHandler serves totals and derived views over the transaction store.
type StatsHandler struct {
	transactionService services.TransactionServicer
	statsService       services.StatsServicer
	location           *time.Location
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(transactionService services.TransactionServicer, statsService services.StatsServicer, loc *time.Location) *StatsHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &StatsHandler{
		transactionService: transactionService,
		statsService:       statsService,
		location:           loc,
	}
}

// Stats is the wire shape of the store-wide totals.
type Stats struct {
	Income            decimal.Decimal `json:"income" swaggertype:"number"`
	Expenses          decimal.Decimal `json:"expenses" swaggertype:"number"`
	Balance           decimal.Decimal `json:"balance" swaggertype:"number"`
	TotalTransactions int             `json:"totalTransactions"`
}

// StatsResponse wraps Stats in the success envelope.
type StatsResponse struct {
	Success bool  `json:"success" example:"true"`
	Data    Stats `json:"data"`
}

func statsFromTotals(t aggregate.Totals) Stats {
	return Stats{
		Income:            t.Income,
		Expenses:          t.Expenses,
		Balance:           t.Balance,
		TotalTransactions: t.Count,
	}
}

// SearchRequest holds the query parameters of the search endpoint.
type SearchRequest struct {
	Type       string `form:"type" binding:"omitempty,kind_filter"`
	CategoryID *int   `form:"categoryId"`
	Query      string `form:"q" binding:"omitempty,max=200"`
	From       string `form:"from"`
	To         string `form:"to"`
	Sort       string `form:"sort" binding:"omitempty,sort_key"`
	Order      string `form:"order" binding:"omitempty,sort_order"`
	pagination.PageRequest
}

// PeriodURI binds the period path segment.
type PeriodURI struct {
	Period string `uri:"period" binding:"required,stats_period"`
}

// CategoryBreakdownRequest holds the query parameters of the breakdown endpoint.
type CategoryBreakdownRequest struct {
	Type   string `form:"type" binding:"omitempty,transaction_kind"`
	Period string `form:"period" binding:"omitempty,stats_period"`
}

// GetStats handles the store-wide totals
// @Summary     Overall totals
// @Description Income, expenses, balance and record count over every transaction
// @Tags        stats
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} StatsResponse
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	totals, err := h.transactionService.GetStats()
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, statsFromTotals(totals))
}

// GetMonthStats handles the current month totals
// @Summary     Month totals
// @Tags        stats
// @Produce     json
// @Security    ApiKeyAuth
// @Param       now query string false "Reference time (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} StatsResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /stats/month [get]
func (h *StatsHandler) GetMonthStats(c *gin.Context) {
	now, err := referenceTime(c, h.location)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.statsService.MonthSummary(now)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, statsFromTotals(totals))
}

// GetPeriodStats handles week, month or year totals
// @Summary     Period totals
// @Tags        stats
// @Produce     json
// @Security    ApiKeyAuth
// @Param       period path  string true  "week, month or year"
// @Param       now    query string false "Reference time (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} StatsResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /stats/period/{period} [get]
func (h *StatsHandler) GetPeriodStats(c *gin.Context) {
	var uri PeriodURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "period must be week, month or year"))
		return
	}

	now, err := referenceTime(c, h.location)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.statsService.PeriodSummary(aggregate.Period(uri.Period), now)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, statsFromTotals(totals))
}

// GetCategoryBreakdown handles per-category totals
// @Summary     Category breakdown
// @Description Categories of one kind ranked by total, with their share of the kind's total
// @Tags        stats
// @Produce     json
// @Security    ApiKeyAuth
// @Param       type   query string false "income or expense (default expense)"
// @Param       period query string false "Restrict to the week, month or year containing now"
// @Param       now    query string false "Reference time (RFC3339 or YYYY-MM-DD)"
// @Success     200 {array}  aggregate.CategoryShare
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /stats/categories [get]
func (h *StatsHandler) GetCategoryBreakdown(c *gin.Context) {
	var req CategoryBreakdownRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	kind := models.TransactionKindExpense
	if req.Type != "" {
		kind = models.TransactionKind(req.Type)
	}

	now, err := referenceTime(c, h.location)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var period *aggregate.Period
	if req.Period != "" {
		p := aggregate.Period(req.Period)
		period = &p
	}

	shares, err := h.statsService.CategoryBreakdown(kind, period, now)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, shares)
}

// GetMonthlySeries handles per-month income and expense totals
// @Summary     Monthly series
// @Tags        stats
// @Produce     json
// @Security    ApiKeyAuth
// @Param       months query int    false "Number of months (default 6)"
// @Param       now    query string false "Reference time (RFC3339 or YYYY-MM-DD)"
// @Success     200 {array}  aggregate.MonthTotals
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /stats/monthly [get]
func (h *StatsHandler) GetMonthlySeries(c *gin.Context) {
	now, err := referenceTime(c, h.location)
	if err != nil {
		respondWithError(c, err)
		return
	}

	months := defaultSeriesMonths
	if v := c.Query("months"); v != "" {
		months, err = strconv.Atoi(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "invalid months"))
			return
		}
	}

	series, err := h.statsService.MonthlySeries(now, months)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, series)
}

// GetConsistency compares the store's totals with recomputed totals
// @Summary     Totals consistency check
// @Tags        stats
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} services.ConsistencyReport
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/consistency [get]
func (h *StatsHandler) GetConsistency(c *gin.Context) {
	report, err := h.statsService.CheckConsistency()
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondData(c, http.StatusOK, report)
}

// GetHistory handles transactions grouped by relative day
// @Summary     Transaction history
// @Description Transactions grouped into Today, Yesterday and dated buckets, optionally filtered
// @Tags        transactions
// @Produce     json
// @Security    ApiKeyAuth
// @Param       type       query string false "all, income or expense"
// @Param       categoryId query int    false "Category filter"
// @Param       q          query string false "Case-insensitive description search"
// @Param       now        query string false "Reference time (RFC3339 or YYYY-MM-DD)"
// @Success     200 {array}  aggregate.Bucket
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions/history [get]
func (h *StatsHandler) GetHistory(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	now, err := referenceTime(c, h.location)
	if err != nil {
		respondWithError(c, err)
		return
	}

	criteria, err := h.criteria(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	buckets, err := h.statsService.History(now, criteria)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if buckets == nil {
		buckets = aggregate.Buckets{}
	}
	respondData(c, http.StatusOK, buckets)
}

// SearchTransactions handles filtered, sorted and paginated listing
// @Summary     Search transactions
// @Tags        transactions
// @Produce     json
// @Security    ApiKeyAuth
// @Param       type       query string false "all, income or expense"
// @Param       categoryId query int    false "Category filter"
// @Param       q          query string false "Case-insensitive description search"
// @Param       from       query string false "Start (RFC3339 or YYYY-MM-DD)"
// @Param       to         query string false "End (RFC3339 or YYYY-MM-DD)"
// @Param       sort       query string false "date, amount or description"
// @Param       order      query string false "asc or desc"
// @Param       page       query int    false "Page number (default 1, max 1000000)"
// @Param       page_size  query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions/search [get]
func (h *StatsHandler) SearchTransactions(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	criteria, err := h.criteria(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.statsService.Search(services.SearchQuery{
		Criteria:  criteria,
		SortKey:   aggregate.SortKey(req.Sort),
		Direction: aggregate.SortDirection(req.Order),
		Page:      req.PageRequest,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"data":        result.Data,
		"page":        result.Page,
		"page_size":   result.PageSize,
		"total_items": result.TotalItems,
		"total_pages": result.TotalPages,
	})
}

func (h *StatsHandler) criteria(req SearchRequest) (aggregate.Criteria, error) {
	criteria := aggregate.Criteria{
		Kind:       aggregate.KindFilter(req.Type),
		CategoryID: req.CategoryID,
		SearchText: req.Query,
	}
	if criteria.Kind == "" {
		criteria.Kind = aggregate.KindAll
	}

	if req.From == "" && req.To == "" {
		return criteria, nil
	}

	rng := aggregate.DateRange{}
	if req.From != "" {
		start, err := parseRangeStart(req.From, h.location)
		if err != nil {
			return criteria, err
		}
		rng.Start = start
	}
	if req.To != "" {
		end, err := parseRangeEnd(req.To, h.location)
		if err != nil {
			return criteria, err
		}
		rng.End = end
	} else {
		rng.End = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
	}
	if rng.Start.After(rng.End) {
		return criteria, apperrors.WithMessage(apperrors.ErrValidation, "from must not be after to")
	}
	criteria.DateRange = &rng
	return criteria, nil
}
