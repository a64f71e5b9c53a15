package orders

import (
	"fmt"
	"time"

	"brasserie/internal/models"

	"github.com/jinzhu/gorm"
)

// Service implements the order workflow: checkout, status transitions and
// payment. All mutation goes through the relational store; each operation is
// independently atomic and no state is held in process.
type Service struct {
	db *gorm.DB
}

// NewService creates an order service on top of the given database.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// GetOrder loads one order with its lines, menu names and customer.
func (s *Service) GetOrder(id string) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items").Preload("Items.Menu").Preload("Customer").
		Where("id = ?", id).First(&order).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return &order, nil
}

// RecentOrders returns orders created since the start of yesterday, newest
// first, for the kitchen board.
func (s *Service) RecentOrders() ([]models.Order, error) {
	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	since := startOfToday.AddDate(0, 0, -1)

	var out []models.Order
	err := s.db.Preload("Items").Preload("Items.Menu").Preload("Customer").
		Where("created_at >= ?", since).
		Order("created_at desc").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent orders: %w", err)
	}
	return out, nil
}

// UnpaidOrders returns orders awaiting payment, oldest first, for the
// cashier queue.
func (s *Service) UnpaidOrders() ([]models.Order, error) {
	var out []models.Order
	err := s.db.Preload("Items").Preload("Items.Menu").Preload("Customer").
		Where("payment_status = ?", string(models.PaymentStatusPending)).
		Order("created_at asc").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load unpaid orders: %w", err)
	}
	return out, nil
}

// CustomerOrders returns all orders placed by one customer, newest first.
func (s *Service) CustomerOrders(customerID string) ([]models.Order, error) {
	var out []models.Order
	err := s.db.Preload("Items").Preload("Items.Menu").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load customer orders: %w", err)
	}
	return out, nil
}
