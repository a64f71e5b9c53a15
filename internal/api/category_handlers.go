package api

import (
	"net/http"

	"brasserie/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

type categoryView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"desc"`
	MenuCount   int    `json:"menuCount"`
}

func (s *Server) viewCategory(cat *models.Category) categoryView {
	var count int64
	s.db.Model(&models.Menu{}).Where("category_id = ?", cat.ID).Count(&count)
	return categoryView{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
		MenuCount:   int(count),
	}
}

// ListCategories returns all categories with their menu counts.
func (s *Server) ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := s.db.Order("created_at desc").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	out := make([]categoryView, 0, len(categories))
	for i := range categories {
		out = append(out, s.viewCategory(&categories[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetCategory returns one category by id.
func (s *Server) GetCategory(c *gin.Context) {
	var category models.Category
	err := s.db.Where("id = ?", c.Param("id")).First(&category).Error
	if gorm.IsRecordNotFoundError(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, s.viewCategory(&category))
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"desc"`
}

// CreateCategory adds a category. Names are unique, case-insensitively.
func (s *Server) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	var existing models.Category
	if err := s.db.Where("LOWER(name) = LOWER(?)", req.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category with this name already exists"})
		return
	}

	category := models.Category{Name: req.Name, Description: req.Description}
	if err := s.db.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, s.viewCategory(&category))
}

// UpdateCategory renames or re-describes a category.
func (s *Server) UpdateCategory(c *gin.Context) {
	var category models.Category
	err := s.db.Where("id = ?", c.Param("id")).First(&category).Error
	if gorm.IsRecordNotFoundError(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	if req.Name != category.Name {
		var clash models.Category
		if err := s.db.Where("LOWER(name) = LOWER(?) AND id <> ?", req.Name, category.ID).
			First(&clash).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category with this name already exists"})
			return
		}
	}

	category.Name = req.Name
	category.Description = req.Description
	if err := s.db.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, s.viewCategory(&category))
}

// DeleteCategory removes a category; blocked while menu items reference it.
func (s *Server) DeleteCategory(c *gin.Context) {
	var category models.Category
	err := s.db.Where("id = ?", c.Param("id")).First(&category).Error
	if gorm.IsRecordNotFoundError(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var count int64
	s.db.Model(&models.Menu{}).Where("category_id = ?", category.ID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category still has menu items"})
		return
	}

	if err := s.db.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
