package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/reports
func (h Handler) ReportSummary(c *gin.Context) {
	sum, err := h.reports().Summary(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// GET /api/reports/revenue
func (h Handler) ReportRevenue(c *gin.Context) {
	total, err := h.reports().TotalRevenue(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_revenue": total})
}

// GET /api/reports/rentals
func (h Handler) ReportRentalCount(c *gin.Context) {
	n, err := h.reports().TotalRentalCount(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_rentals": n})
}
