package api

import (
	"time"

	"brasserie/internal/models"
)

// orderItemView is one order line with its menu name for client rendering.
type orderItemView struct {
	ID            string `json:"id"`
	MenuID        string `json:"menu_id"`
	MenuName      string `json:"menu_name"`
	Price         int    `json:"price"`
	Quantity      int    `json:"quantity"`
	Subtotal      int    `json:"subtotal"`
	Customization string `json:"customization,omitempty"`
}

// orderView is the serialized order returned by the workflow endpoints.
type orderView struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"order_number"`
	CustomerName  string          `json:"customer_name,omitempty"`
	TableNumber   int             `json:"table_number"`
	OrderStatus   string          `json:"order_status"`
	PaymentStatus string          `json:"payment_status"`
	TotalAmount   int             `json:"total_amount"`
	OrderTime     time.Time       `json:"order_time"`
	CompletedTime *time.Time      `json:"completed_time,omitempty"`
	Items         []orderItemView `json:"items"`
}

func viewOrder(o *models.Order) orderView {
	items := make([]orderItemView, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemView{
			ID:            item.ID,
			MenuID:        item.MenuID,
			MenuName:      item.Menu.Name,
			Price:         item.Price,
			Quantity:      item.Quantity,
			Subtotal:      item.Subtotal,
			Customization: item.Customization,
		})
	}
	return orderView{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber(),
		CustomerName:  o.Customer.Name,
		TableNumber:   o.TableNumber,
		OrderStatus:   o.OrderStatus,
		PaymentStatus: o.PaymentStatus,
		TotalAmount:   o.TotalAmount,
		OrderTime:     o.OrderTime,
		CompletedTime: o.CompletedTime,
		Items:         items,
	}
}

func viewOrders(list []models.Order) []orderView {
	out := make([]orderView, 0, len(list))
	for i := range list {
		out = append(out, viewOrder(&list[i]))
	}
	return out
}
