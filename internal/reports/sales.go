package reports

import (
	"fmt"
	"time"

	"brasserie/internal/models"

	"github.com/jinzhu/gorm"
)

// Summary aggregates paid, completed orders over a period and compares the
// result against the previous period of equal length.
type Summary struct {
	TotalRevenue    int     `json:"totalRevenue"`
	TotalOrders     int     `json:"totalOrders"`
	UniqueCustomers int     `json:"uniqueCustomers"`
	AvgOrderValue   float64 `json:"avgOrderValue"`
	Growth          Growth  `json:"growth"`
}

// Growth holds percentage changes versus the previous period. A metric with
// no previous data reports zero growth.
type Growth struct {
	Revenue       float64 `json:"revenue"`
	Orders        float64 `json:"orders"`
	Customers     float64 `json:"customers"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

// Summarize computes the summary for the current period's orders against
// the previous period's.
func Summarize(current, previous []models.Order) Summary {
	curRevenue, curCustomers := totals(current)
	prevRevenue, prevCustomers := totals(previous)

	curAvg := 0.0
	if len(current) > 0 {
		curAvg = float64(curRevenue) / float64(len(current))
	}
	prevAvg := 0.0
	if len(previous) > 0 {
		prevAvg = float64(prevRevenue) / float64(len(previous))
	}

	return Summary{
		TotalRevenue:    curRevenue,
		TotalOrders:     len(current),
		UniqueCustomers: curCustomers,
		AvgOrderValue:   curAvg,
		Growth: Growth{
			Revenue:       growth(float64(prevRevenue), float64(curRevenue)),
			Orders:        growth(float64(len(previous)), float64(len(current))),
			Customers:     growth(float64(prevCustomers), float64(curCustomers)),
			AvgOrderValue: growth(prevAvg, curAvg),
		},
	}
}

func totals(orders []models.Order) (revenue, uniqueCustomers int) {
	customers := make(map[string]struct{})
	for _, o := range orders {
		revenue += o.TotalAmount
		customers[o.CustomerID] = struct{}{}
	}
	return revenue, len(customers)
}

func growth(previous, current float64) float64 {
	if previous <= 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// Service loads report data from the relational store.
type Service struct {
	db *gorm.DB
}

// NewService creates a reports service on top of the given database.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// BuildSummary computes the sales summary over the past periodDays days.
func (s *Service) BuildSummary(periodDays int) (*Summary, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -periodDays)
	prevStart := start.AddDate(0, 0, -periodDays)

	current, err := s.paidOrdersBetween(start, end)
	if err != nil {
		return nil, err
	}
	previous, err := s.paidOrdersBetween(prevStart, start)
	if err != nil {
		return nil, err
	}

	summary := Summarize(current, previous)
	return &summary, nil
}

// PaidOrders returns the detailed paid-order listing over the past
// periodDays days, newest first.
func (s *Service) PaidOrders(periodDays int) ([]models.Order, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -periodDays)

	var out []models.Order
	err := s.db.Preload("Items").Preload("Items.Menu").Preload("Customer").
		Where("payment_status = ? AND completed_time >= ? AND completed_time <= ?",
			string(models.PaymentStatusPaid), start, end).
		Order("completed_time desc").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load paid orders: %w", err)
	}
	return out, nil
}

func (s *Service) paidOrdersBetween(start, end time.Time) ([]models.Order, error) {
	var out []models.Order
	err := s.db.
		Select("id, customer_id, total_amount, completed_time").
		Where("payment_status = ? AND order_status = ? AND completed_time >= ? AND completed_time <= ?",
			string(models.PaymentStatusPaid), string(models.OrderStatusCompleted), start, end).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load paid orders: %w", err)
	}
	return out, nil
}
