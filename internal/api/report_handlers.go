package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListSales returns the detailed paid-order listing for the report period.
func (s *Server) ListSales(c *gin.Context) {
	days := reportPeriod(c)
	list, err := s.reports.PaidOrders(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sales"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "period_days": days, "orders": viewOrders(list)})
}

// SalesSummary returns aggregate revenue metrics with growth against the
// previous period of equal length.
func (s *Server) SalesSummary(c *gin.Context) {
	days := reportPeriod(c)
	summary, err := s.reports.BuildSummary(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "period_days": days, "data": summary})
}

func reportPeriod(c *gin.Context) int {
	days, err := strconv.Atoi(c.DefaultQuery("period", "30"))
	if err != nil || days < 1 {
		return 30
	}
	return days
}
