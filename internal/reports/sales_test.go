package reports

import (
	"testing"

	"brasserie/internal/models"
)

func order(customer string, total int) models.Order {
	return models.Order{CustomerID: customer, TotalAmount: total}
}

func TestSummarizeTotals(t *testing.T) {
	current := []models.Order{
		order("c1", 28000),
		order("c1", 18000),
		order("c2", 5000),
	}

	s := Summarize(current, nil)

	if s.TotalRevenue != 51000 {
		t.Errorf("expected revenue 51000, got %d", s.TotalRevenue)
	}
	if s.TotalOrders != 3 {
		t.Errorf("expected 3 orders, got %d", s.TotalOrders)
	}
	if s.UniqueCustomers != 2 {
		t.Errorf("expected 2 unique customers, got %d", s.UniqueCustomers)
	}
	if s.AvgOrderValue != 17000 {
		t.Errorf("expected avg order value 17000, got %f", s.AvgOrderValue)
	}
}

func TestSummarizeGrowth(t *testing.T) {
	current := []models.Order{order("c1", 30000), order("c2", 30000)}
	previous := []models.Order{order("c1", 40000)}

	s := Summarize(current, previous)

	if s.Growth.Revenue != 50 {
		t.Errorf("expected 50%% revenue growth, got %f", s.Growth.Revenue)
	}
	if s.Growth.Orders != 100 {
		t.Errorf("expected 100%% order growth, got %f", s.Growth.Orders)
	}
	if s.Growth.Customers != 100 {
		t.Errorf("expected 100%% customer growth, got %f", s.Growth.Customers)
	}
	if s.Growth.AvgOrderValue != -25 {
		t.Errorf("expected -25%% avg order growth, got %f", s.Growth.AvgOrderValue)
	}
}

func TestSummarizeEmptyPeriods(t *testing.T) {
	s := Summarize(nil, nil)

	if s.TotalRevenue != 0 || s.TotalOrders != 0 || s.UniqueCustomers != 0 {
		t.Errorf("expected zeroed summary, got %+v", s)
	}
	if s.AvgOrderValue != 0 {
		t.Errorf("expected zero avg order value, got %f", s.AvgOrderValue)
	}
	// No previous data means no growth signal, not a division by zero.
	if s.Growth != (Growth{}) {
		t.Errorf("expected zero growth, got %+v", s.Growth)
	}
}
