package api

import (
	"net/http"

	"brasserie/internal/live"
	"brasserie/internal/models"
	"brasserie/internal/monitoring"

	"github.com/gin-gonic/gin"
)

// ListKitchenOrders returns recent orders for the kitchen board.
func (s *Server) ListKitchenOrders(c *gin.Context) {
	list, err := s.orders.RecentOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, viewOrders(list))
}

type statusUpdateRequest struct {
	OrderID     string `json:"order_id"`
	OrderStatus string `json:"order_status"`
}

// UpdateOrderStatus advances an order through the fulfillment state machine.
func (s *Server) UpdateOrderStatus(c *gin.Context) {
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.OrderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order ID is required"})
		return
	}
	target, ok := models.ParseOrderStatus(req.OrderStatus)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
		return
	}

	res, err := s.orders.Transition(req.OrderID, target)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	if !res.Transitioned {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order status is already up to date",
			"order":   viewOrder(res.Order),
		})
		return
	}

	monitoring.StatusTransitions.WithLabelValues(string(res.PreviousStatus), string(target)).Inc()
	s.monitor.IncrementCounter("status_transitions")

	view := viewOrder(res.Order)
	s.hub.Broadcast(live.EventStatusChanged, view)

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Order status successfully updated to '" + string(target) + "'",
		"order":          view,
		"previousStatus": res.PreviousStatus,
	})
}

// ListKitchenMenus returns every menu item with its category, including
// deactivated ones, so staff can manage availability.
func (s *Server) ListKitchenMenus(c *gin.Context) {
	var menus []models.Menu
	if err := s.db.Preload("Category").Find(&menus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menus"})
		return
	}
	c.JSON(http.StatusOK, menus)
}

type toggleMenuRequest struct {
	MenuID string `json:"menu_id"`
}

// ToggleMenuAvailability flips whether an item can be ordered. Existing
// orders keep their price snapshots.
func (s *Server) ToggleMenuAvailability(c *gin.Context) {
	var req toggleMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.MenuID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu ID is required"})
		return
	}

	menu, previous, err := s.orders.ToggleAvailability(req.MenuID)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	message := "Menu item deactivated successfully"
	if menu.IsAvailable {
		message = "Menu item activated successfully"
	}
	s.hub.Broadcast(live.EventMenuToggled, menu)

	c.JSON(http.StatusOK, gin.H{
		"success":              true,
		"message":              message,
		"menu":                 menu,
		"previousAvailability": previous,
	})
}
