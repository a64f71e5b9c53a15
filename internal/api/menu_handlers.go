package api

import (
	"net/http"

	"brasserie/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

type menuItemView struct {
	ID           string  `json:"id"`
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"categoryName"`
	Name         string  `json:"name"`
	Description  string  `json:"desc"`
	Price        int     `json:"price"`
	Image        string  `json:"image,omitempty"`
	IsAvailable  bool    `json:"is_available"`
	Rating       float64 `json:"rating"`
}

func viewMenuItem(m *models.Menu) menuItemView {
	return menuItemView{
		ID:           m.ID,
		CategoryID:   m.CategoryID,
		CategoryName: m.Category.Name,
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
		Image:        m.Image,
		IsAvailable:  m.IsAvailable,
		Rating:       m.AverageRating(),
	}
}

// ListMenu returns menu items with their categories and average ratings,
// filterable by category, search term, and availability.
func (s *Server) ListMenu(c *gin.Context) {
	query := s.db.Preload("Category").Preload("Ratings")

	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if available := c.Query("available"); available != "" {
		query = query.Where("is_available = ?", available == "true")
	}

	var menus []models.Menu
	if err := query.Order("category_id asc").Order("name asc").Find(&menus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	out := make([]menuItemView, 0, len(menus))
	for i := range menus {
		out = append(out, viewMenuItem(&menus[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetMenuItem returns one menu item by id.
func (s *Server) GetMenuItem(c *gin.Context) {
	var menu models.Menu
	err := s.db.Preload("Category").Preload("Ratings").Where("id = ?", c.Param("id")).First(&menu).Error
	if gorm.IsRecordNotFoundError(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, viewMenuItem(&menu))
}

type menuItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"desc"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	CategoryID  string `json:"category_id"`
	IsAvailable *bool  `json:"is_available"`
}

// CreateMenuItem adds a dish to the menu. Names are unique per category.
func (s *Server) CreateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	menu := models.Menu{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
		IsAvailable: available,
	}
	if err := models.ValidateMenu(&menu); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var category models.Category
	if err := s.db.Where("id = ?", menu.CategoryID).First(&category).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
		return
	}

	var existing models.Menu
	err := s.db.Where("LOWER(name) = LOWER(?) AND category_id = ?", menu.Name, menu.CategoryID).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item with this name already exists in this category"})
		return
	}

	if err := s.db.Create(&menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	menu.Category = category
	c.JSON(http.StatusCreated, viewMenuItem(&menu))
}

// UpdateMenuItem edits an existing dish.
func (s *Server) UpdateMenuItem(c *gin.Context) {
	var menu models.Menu
	err := s.db.Where("id = ?", c.Param("id")).First(&menu).Error
	if gorm.IsRecordNotFoundError(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	menu.Name = req.Name
	menu.Description = req.Description
	menu.Price = req.Price
	menu.Image = req.Image
	menu.CategoryID = req.CategoryID
	if req.IsAvailable != nil {
		menu.IsAvailable = *req.IsAvailable
	}
	if err := models.ValidateMenu(&menu); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.db.Save(&menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	s.db.Preload("Category").Where("id = ?", menu.ID).First(&menu)
	c.JSON(http.StatusOK, viewMenuItem(&menu))
}

// DeleteMenuItem removes a dish. Existing order lines keep their snapshots,
// but items already referenced by orders are kept and deactivated instead.
func (s *Server) DeleteMenuItem(c *gin.Context) {
	var menu models.Menu
	err := s.db.Where("id = ?", c.Param("id")).First(&menu).Error
	if gorm.IsRecordNotFoundError(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var refs int64
	s.db.Model(&models.OrderItem{}).Where("menu_id = ?", menu.ID).Count(&refs)
	if refs > 0 {
		if err := s.db.Model(&menu).Update("is_available", false).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Menu item is referenced by orders and was deactivated instead"})
		return
	}

	if err := s.db.Delete(&menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}
