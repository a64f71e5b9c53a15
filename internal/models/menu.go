package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

// Menu represents a dish customers can order. Price is stored as an integer
// in the minor currency unit; availability gates future checkouts only and
// never affects lines already written to an order.
type Menu struct {
	ID          string    `gorm:"primary_key;size:36" json:"id"`
	CategoryID  string    `gorm:"size:36;index" json:"category_id"`
	Name        string    `json:"name"`
	Description string    `gorm:"column:description" json:"desc"`
	Image       string    `json:"image,omitempty"`
	IsAvailable bool      `json:"is_available"`
	Price       int       `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Category Category `gorm:"foreignkey:CategoryID" json:"category,omitempty"`
	Ratings  []Rating `gorm:"foreignkey:MenuID" json:"ratings,omitempty"`
}

func (m *Menu) BeforeCreate(scope *gorm.Scope) error {
	if m.ID == "" {
		return scope.SetColumn("ID", uuid.New().String())
	}
	return nil
}

// ValidateMenu validates a menu item before it is persisted.
func ValidateMenu(m *Menu) error {
	if m.Name == "" {
		return fmt.Errorf("menu item name is required")
	}
	if len(m.Name) > 255 {
		return fmt.Errorf("menu item name must be less than 255 characters")
	}
	if m.Price <= 0 {
		return fmt.Errorf("menu item price must be a positive integer")
	}
	if m.CategoryID == "" {
		return fmt.Errorf("menu item category is required")
	}
	return nil
}

// AverageRating computes the mean of the loaded ratings, falling back to a
// neutral default when the item has none yet.
func (m *Menu) AverageRating() float64 {
	if len(m.Ratings) == 0 {
		return 4.5
	}
	sum := 0
	for _, r := range m.Ratings {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(m.Ratings))
	return float64(int(avg*10+0.5)) / 10
}
