package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is reported by the index and health endpoints.
const Version = "1.0.0"

// Index describes the service and its main endpoints
// @Summary     Service banner
// @Tags        system
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      / [get]
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Money Tracker API",
		"version": Version,
		"endpoints": gin.H{
			"transactions": "/api/transactions",
			"stats":        "/api/stats",
			"dateRange":    "/api/transactions/range/:startDate/:endDate",
			"categories":   "/api/categories",
			"docs":         "/swagger/index.html",
		},
	})
}

// Health reports liveness
// @Summary     Health check
// @Tags        system
// @Produce     json
// @Success     200 {object} map[string]string
// @Router      /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": Version})
}
