package orders

import (
	"fmt"
	"time"

	"brasserie/internal/models"

	"github.com/jinzhu/gorm"
)

// ErrMenuNotFound is returned when the referenced menu item does not exist.
var ErrMenuNotFound = fmt.Errorf("menu item not found")

// FindAvailable returns the currently orderable menu items among ids, keyed
// by id. Missing or deactivated items are simply absent from the result.
func (s *Service) FindAvailable(ids []string) (map[string]models.Menu, error) {
	var menus []models.Menu
	if err := s.db.Where("id IN (?) AND is_available = ?", ids, true).Find(&menus).Error; err != nil {
		return nil, fmt.Errorf("failed to look up menu items: %w", err)
	}
	out := make(map[string]models.Menu, len(menus))
	for _, m := range menus {
		out[m.ID] = m
	}
	return out, nil
}

// ToggleAvailability flips whether a menu item can be ordered. Existing
// order lines are untouched; the flag gates future checkouts only.
// Returns the updated item and its previous availability.
func (s *Service) ToggleAvailability(menuID string) (*models.Menu, bool, error) {
	var menu models.Menu
	err := s.db.Where("id = ?", menuID).First(&menu).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, false, ErrMenuNotFound
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load menu item: %w", err)
	}

	previous := menu.IsAvailable
	err = s.db.Model(&menu).Updates(map[string]interface{}{
		"is_available": !previous,
		"updated_at":   time.Now(),
	}).Error
	if err != nil {
		return nil, false, fmt.Errorf("failed to toggle menu availability: %w", err)
	}

	menu.IsAvailable = !previous
	return &menu, previous, nil
}
