package api

import (
	"net/http"

	"brasserie/internal/auth"
	"brasserie/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

type ratingRequest struct {
	MenuID string `json:"menu_id"`
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// SubmitRating records a customer's 1..5 score for a menu item. A second
// submission by the same customer replaces the first.
func (s *Server) SubmitRating(c *gin.Context) {
	customerID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req ratingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating := models.Rating{
		CustomerID: customerID,
		MenuID:     req.MenuID,
		Rating:     req.Rating,
		Review:     req.Review,
	}
	if err := models.ValidateRating(&rating); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var menu models.Menu
	if err := s.db.Where("id = ?", req.MenuID).First(&menu).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var existing models.Rating
	err := s.db.Where("customer_id = ? AND menu_id = ?", customerID, req.MenuID).First(&existing).Error
	if err == nil {
		existing.Rating = req.Rating
		existing.Review = req.Review
		if err := s.db.Save(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, existing)
		return
	}
	if !gorm.IsRecordNotFoundError(err) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := s.db.Create(&rating).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, rating)
}
