package api

import (
	"errors"
	"net/http"

	"brasserie/internal/auth"
	"brasserie/internal/live"
	"brasserie/internal/monitoring"
	"brasserie/internal/orders"

	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	TableNumber int                `json:"tableNumber"`
	Items       []orders.CartEntry `json:"items"`
}

// Checkout validates the submitted cart and atomically creates the order.
// Prices come from the live menu, never from the client.
func (s *Server) Checkout(c *gin.Context) {
	customerID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		monitoring.CheckoutFailures.WithLabelValues("malformed_body").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.orders.Checkout(orders.CheckoutInput{
		CustomerID:  customerID,
		TableNumber: req.TableNumber,
		Items:       req.Items,
	})
	if err != nil {
		monitoring.CheckoutFailures.WithLabelValues(checkoutFailureReason(err)).Inc()
		respondOrderError(c, err)
		return
	}

	monitoring.OrdersCreated.Inc()
	monitoring.OrderValue.Observe(float64(order.TotalAmount))
	s.monitor.IncrementCounter("orders_created")

	view := viewOrder(order)
	s.hub.Broadcast(live.EventOrderCreated, view)

	c.JSON(http.StatusCreated, gin.H{"success": true, "order": view})
}

func checkoutFailureReason(err error) string {
	var verr *orders.CartValidationError
	if errors.As(err, &verr) {
		return "invalid_request"
	}
	var uerr *orders.UnavailableItemsError
	if errors.As(err, &uerr) {
		return "items_unavailable"
	}
	return "internal_error"
}
