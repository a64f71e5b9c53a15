package api

import (
	"net/http"

	"brasserie/internal/auth"
	"brasserie/internal/models"

	"github.com/gin-gonic/gin"
)

// ListOwnOrders returns the calling customer's orders, newest first.
func (s *Server) ListOwnOrders(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	list, err := s.orders.CustomerOrders(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, viewOrders(list))
}

// GetOrder returns one order. Customers may only read their own; staff
// roles may read any.
func (s *Server) GetOrder(c *gin.Context) {
	order, err := s.orders.GetOrder(c.Param("id"))
	if err != nil {
		respondOrderError(c, err)
		return
	}

	role, _ := auth.CurrentRole(c)
	if role == models.RoleCustomer {
		userID, _ := auth.CurrentUserID(c)
		if order.CustomerID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": viewOrder(order)})
}

// ListAllOrders returns every order for the admin back office, newest first.
func (s *Server) ListAllOrders(c *gin.Context) {
	var list []models.Order
	err := s.db.Preload("Items").Preload("Items.Menu").Preload("Customer").
		Order("created_at desc").Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, viewOrders(list))
}
