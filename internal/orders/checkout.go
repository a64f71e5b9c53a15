package orders

import (
	"fmt"
	"time"

	"brasserie/internal/models"
)

// CartEntry is one requested line of a checkout. Any client-supplied price
// is ignored; pricing is always re-derived server-side.
type CartEntry struct {
	MenuID        string `json:"id"`
	Quantity      int    `json:"quantity"`
	Customization string `json:"customization,omitempty"`
}

// CheckoutInput is the full proposed order passed into Checkout.
type CheckoutInput struct {
	CustomerID  string
	TableNumber int
	Items       []CartEntry
}

// Checkout validates a proposed order against the live menu and atomically
// creates the order with its lines. Either the whole order exists afterward
// or nothing does.
//
// The availability check and the insert share one transaction, but a menu
// item can still be deactivated between the customer loading the page and
// submitting; that check-then-act window is accepted and surfaces as an
// UnavailableItemsError at submit time.
func (s *Service) Checkout(input CheckoutInput) (*models.Order, error) {
	if err := validateCart(input); err != nil {
		return nil, err
	}

	menuIDs := make([]string, 0, len(input.Items))
	for _, entry := range input.Items {
		menuIDs = append(menuIDs, entry.MenuID)
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	var menus []models.Menu
	if err := tx.Where("id IN (?) AND is_available = ?", menuIDs, true).Find(&menus).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to look up menu items: %w", err)
	}

	available := make(map[string]models.Menu, len(menus))
	for _, m := range menus {
		available[m.ID] = m
	}

	var missing []string
	for _, id := range menuIDs {
		if _, ok := available[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		tx.Rollback()
		return nil, &UnavailableItemsError{MenuIDs: missing}
	}

	totalAmount := 0
	items := make([]models.OrderItem, 0, len(input.Items))
	for _, entry := range input.Items {
		menu := available[entry.MenuID]
		subtotal := menu.Price * entry.Quantity
		totalAmount += subtotal
		items = append(items, models.OrderItem{
			MenuID:        entry.MenuID,
			Price:         menu.Price,
			Quantity:      entry.Quantity,
			Subtotal:      subtotal,
			Customization: entry.Customization,
		})
	}

	order := models.Order{
		CustomerID:    input.CustomerID,
		TableNumber:   input.TableNumber,
		OrderStatus:   string(models.OrderStatusPending),
		PaymentStatus: string(models.PaymentStatusPending),
		TotalAmount:   totalAmount,
		OrderTime:     time.Now(),
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for i := range items {
		items[i].OrderID = order.ID
		if err := tx.Create(&items[i]).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to create order item: %w", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	return s.GetOrder(order.ID)
}

// validateCart checks the shape of a checkout request before the store is
// touched. Violations fail the whole request with itemized entries.
func validateCart(input CheckoutInput) error {
	if input.CustomerID == "" {
		return &CartValidationError{Reason: "customer is required"}
	}
	if input.TableNumber <= 0 {
		return &CartValidationError{Reason: "table number must be a positive integer"}
	}
	if len(input.Items) == 0 {
		return &CartValidationError{Reason: "at least one item is required"}
	}

	var invalid []InvalidEntry
	for i, entry := range input.Items {
		if entry.MenuID == "" || entry.Quantity <= 0 {
			invalid = append(invalid, InvalidEntry{Index: i, MenuID: entry.MenuID, Quantity: entry.Quantity})
		}
	}
	if len(invalid) > 0 {
		return &CartValidationError{
			Reason:  "all items must have a valid id and a positive quantity",
			Invalid: invalid,
		}
	}
	return nil
}
