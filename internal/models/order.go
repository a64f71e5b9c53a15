package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

// Order represents a customer's placed order at a table, tracked through
// fulfillment (OrderStatus) and settlement (PaymentStatus) independently.
// Orders are created only by the checkout flow and are never deleted.
type Order struct {
	ID            string     `gorm:"primary_key;size:36" json:"id"`
	CustomerID    string     `gorm:"size:36;index" json:"customer_id"`
	TableNumber   int        `json:"table_number"`
	OrderStatus   string     `gorm:"index" json:"order_status"`
	PaymentStatus string     `gorm:"index" json:"payment_status"`
	TotalAmount   int        `json:"total_amount"`
	OrderTime     time.Time  `json:"order_time"`
	CompletedTime *time.Time `json:"completed_time,omitempty"`
	CashierID     *string    `gorm:"size:36" json:"cashier_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Customer User        `gorm:"foreignkey:CustomerID" json:"customer,omitempty"`
	Cashier  *User       `gorm:"foreignkey:CashierID" json:"cashier,omitempty"`
	Items    []OrderItem `gorm:"foreignkey:OrderID" json:"items,omitempty"`
}

func (o *Order) BeforeCreate(scope *gorm.Scope) error {
	if o.ID == "" {
		return scope.SetColumn("ID", uuid.New().String())
	}
	return nil
}

// OrderNumber is the short human-facing reference derived from the id.
func (o *Order) OrderNumber() string {
	if len(o.ID) <= 8 {
		return o.ID
	}
	n := o.ID[len(o.ID)-8:]
	b := []byte(n)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// OrderItem is one priced, quantified menu item within an order. Price is a
// snapshot of the menu price at checkout time and is immutable afterward;
// Subtotal always equals Price * Quantity.
type OrderItem struct {
	ID            string    `gorm:"primary_key;size:36" json:"id"`
	OrderID       string    `gorm:"size:36;index" json:"order_id"`
	MenuID        string    `gorm:"size:36;index" json:"menu_id"`
	Price         int       `json:"price"`
	Quantity      int       `json:"quantity"`
	Subtotal      int       `json:"subtotal"`
	Customization string    `json:"customization,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Menu Menu `gorm:"foreignkey:MenuID" json:"menu,omitempty"`
}

func (i *OrderItem) BeforeCreate(scope *gorm.Scope) error {
	if i.ID == "" {
		return scope.SetColumn("ID", uuid.New().String())
	}
	return nil
}

// OrderStatus represents the fulfillment stage of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCooking   OrderStatus = "cooking"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
)

// ParseOrderStatus converts a raw status string into the closed enumeration.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusCooking, OrderStatusReady, OrderStatusCompleted:
		return OrderStatus(s), true
	default:
		return "", false
	}
}

// PaymentStatus represents the settlement state of an order.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)
