package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

// User represents an account that can interact with the system: customers
// placing orders, kitchen staff advancing them, cashiers settling payment,
// and admins managing the back office.
type User struct {
	ID        string    `gorm:"primary_key;size:36" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"unique_index" json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Orders  []Order  `gorm:"foreignkey:CustomerID" json:"orders,omitempty"`
	Ratings []Rating `gorm:"foreignkey:CustomerID" json:"ratings,omitempty"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (u *User) BeforeCreate(scope *gorm.Scope) error {
	if u.ID == "" {
		return scope.SetColumn("ID", uuid.New().String())
	}
	return nil
}

// Role identifies what a user is allowed to do.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCashier  Role = "cashier"
	RoleKitchen  Role = "kitchen"
	RoleCustomer Role = "customer"
)

// ParseRole converts a raw role string into the closed Role enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleCashier:
		return RoleCashier, nil
	case RoleKitchen:
		return RoleKitchen, nil
	case RoleCustomer:
		return RoleCustomer, nil
	default:
		return "", fmt.Errorf("invalid role %q", s)
	}
}

// PublicUser is the serializable view of a user without credentials.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Public strips credential fields for API responses.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
