package orders

import (
	"errors"
	"fmt"
	"time"

	"brasserie/internal/models"

	"github.com/jinzhu/gorm"
)

// TransitionResult reports the outcome of a status transition request.
// Transitioned is false when the order was already in the target status.
type TransitionResult struct {
	Order          *models.Order
	PreviousStatus models.OrderStatus
	Transitioned   bool
}

// Transition moves an order's fulfillment status forward through the state
// machine. Requesting the current status is an idempotent no-op; anything
// not in the transition table fails with an InvalidTransitionError naming
// the legal targets.
//
// The write is a single conditional UPDATE guarded on the status the caller
// observed, so two concurrent requests cannot both apply the same
// transition; the loser re-reads and resolves to idempotent success or an
// invalid transition.
func (s *Service) Transition(orderID string, target models.OrderStatus) (*TransitionResult, error) {
	var order models.Order
	err := s.db.Select("id, order_status").Where("id = ?", orderID).First(&order).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	current := models.OrderStatus(order.OrderStatus)
	if current == target {
		full, err := s.GetOrder(orderID)
		if err != nil {
			return nil, err
		}
		return &TransitionResult{Order: full, PreviousStatus: current, Transitioned: false}, nil
	}

	if !CanTransition(current, target) {
		return nil, &InvalidTransitionError{From: current, To: target, ValidTargets: ValidTargets(current)}
	}

	now := time.Now()
	updates := map[string]interface{}{
		"order_status": string(target),
		"updated_at":   now,
	}
	if target == models.OrderStatusCompleted {
		updates["completed_time"] = now
	}

	res := s.db.Model(&models.Order{}).
		Where("id = ? AND order_status = ?", orderID, string(current)).
		Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update order status: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		// Lost the race to a concurrent transition. Re-read and decide.
		var fresh models.Order
		err := s.db.Select("id, order_status").Where("id = ?", orderID).First(&fresh).Error
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrOrderNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to reload order: %w", err)
		}
		freshStatus := models.OrderStatus(fresh.OrderStatus)
		if freshStatus == target {
			full, err := s.GetOrder(orderID)
			if err != nil {
				return nil, err
			}
			return &TransitionResult{Order: full, PreviousStatus: freshStatus, Transitioned: false}, nil
		}
		return nil, &InvalidTransitionError{From: freshStatus, To: target, ValidTargets: ValidTargets(freshStatus)}
	}

	full, err := s.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	return &TransitionResult{Order: full, PreviousStatus: current, Transitioned: true}, nil
}

// MarkPaid settles an order: payment_status becomes paid and the acting
// cashier is recorded. Payment is decoupled from fulfillment, with one
// deliberate exception: an order that is already ready is handed over at
// the register, so it is completed through the state machine as part of
// settling. Orders still pending or cooking keep their kitchen status.
func (s *Service) MarkPaid(orderID, cashierID string) (*models.Order, error) {
	var order models.Order
	err := s.db.Select("id, order_status, payment_status").Where("id = ?", orderID).First(&order).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	if models.PaymentStatus(order.PaymentStatus) == models.PaymentStatusPaid {
		return s.GetOrder(orderID)
	}

	res := s.db.Model(&models.Order{}).
		Where("id = ? AND payment_status = ?", orderID, string(models.PaymentStatusPending)).
		Updates(map[string]interface{}{
			"payment_status": string(models.PaymentStatusPaid),
			"cashier_id":     cashierID,
			"updated_at":     time.Now(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to mark order paid: %w", res.Error)
	}

	if models.OrderStatus(order.OrderStatus) == models.OrderStatusReady {
		if _, err := s.Transition(orderID, models.OrderStatusCompleted); err != nil {
			var invalid *InvalidTransitionError
			// A concurrent kitchen update may have completed it already.
			if !errors.As(err, &invalid) {
				return nil, err
			}
		}
	}

	return s.GetOrder(orderID)
}
