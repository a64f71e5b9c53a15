package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

// Rating is a customer's 1..5 score for a menu item, at most one per
// customer per item.
type Rating struct {
	ID         string    `gorm:"primary_key;size:36" json:"id"`
	CustomerID string    `gorm:"size:36;unique_index:idx_rating_customer_menu" json:"customer_id"`
	MenuID     string    `gorm:"size:36;unique_index:idx_rating_customer_menu" json:"menu_id"`
	Rating     int       `json:"rating"`
	Review     string    `json:"review,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Customer User `gorm:"foreignkey:CustomerID" json:"customer,omitempty"`
	Menu     Menu `gorm:"foreignkey:MenuID" json:"menu,omitempty"`
}

func (r *Rating) BeforeCreate(scope *gorm.Scope) error {
	if r.ID == "" {
		return scope.SetColumn("ID", uuid.New().String())
	}
	return nil
}

// ValidateRating checks the score range before persisting.
func ValidateRating(r *Rating) error {
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	if r.MenuID == "" {
		return fmt.Errorf("menu id is required")
	}
	return nil
}
