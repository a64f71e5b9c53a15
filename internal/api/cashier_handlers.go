package api

import (
	"net/http"

	"brasserie/internal/auth"
	"brasserie/internal/live"
	"brasserie/internal/monitoring"

	"github.com/gin-gonic/gin"
)

// ListUnpaidOrders returns the cashier queue, oldest first.
func (s *Server) ListUnpaidOrders(c *gin.Context) {
	list, err := s.orders.UnpaidOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, viewOrders(list))
}

// PayOrder settles an order and records the acting cashier.
func (s *Server) PayOrder(c *gin.Context) {
	cashierID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	order, err := s.orders.MarkPaid(c.Param("id"), cashierID)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	monitoring.PaymentsProcessed.Inc()
	s.monitor.IncrementCounter("payments_processed")

	view := viewOrder(order)
	s.hub.Broadcast(live.EventOrderPaid, view)

	c.JSON(http.StatusOK, gin.H{"message": "Payment processed", "order": view})
}
