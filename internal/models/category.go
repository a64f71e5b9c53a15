package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

// Category groups menu items for browsing and reporting.
type Category struct {
	ID          string    `gorm:"primary_key;size:36" json:"id"`
	Name        string    `json:"name"`
	Description string    `gorm:"column:description" json:"desc"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Menus []Menu `gorm:"foreignkey:CategoryID" json:"menus,omitempty"`
}

func (c *Category) BeforeCreate(scope *gorm.Scope) error {
	if c.ID == "" {
		return scope.SetColumn("ID", uuid.New().String())
	}
	return nil
}
