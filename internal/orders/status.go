package orders

import "brasserie/internal/models"

// validTransitions is the authoritative forward-only transition table for
// order fulfillment. Completed is terminal.
var validTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:   {models.OrderStatusCooking},
	models.OrderStatusCooking:   {models.OrderStatusReady},
	models.OrderStatusReady:     {models.OrderStatusCompleted},
	models.OrderStatusCompleted: {},
}

// CanTransition reports whether an order may move from current to target.
// Re-applying the current status is not a transition; callers treat it as an
// idempotent no-op.
func CanTransition(current, target models.OrderStatus) bool {
	for _, allowed := range validTransitions[current] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ValidTargets returns the statuses legally reachable from current.
func ValidTargets(current models.OrderStatus) []models.OrderStatus {
	targets := validTransitions[current]
	out := make([]models.OrderStatus, len(targets))
	copy(out, targets)
	return out
}
