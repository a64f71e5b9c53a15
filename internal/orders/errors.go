package orders

import (
	"errors"
	"fmt"
	"strings"

	"brasserie/internal/models"
)

// ErrOrderNotFound is returned when the referenced order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// InvalidEntry describes one rejected cart entry.
type InvalidEntry struct {
	Index    int    `json:"index"`
	MenuID   string `json:"id"`
	Quantity int    `json:"quantity"`
}

// CartValidationError reports malformed checkout input. The whole request is
// rejected; Invalid itemizes every offending entry so the caller can correct
// and resubmit.
type CartValidationError struct {
	Reason  string
	Invalid []InvalidEntry
}

func (e *CartValidationError) Error() string {
	return e.Reason
}

// UnavailableItemsError reports menu items that are missing or currently
// deactivated. No order is created.
type UnavailableItemsError struct {
	MenuIDs []string
}

func (e *UnavailableItemsError) Error() string {
	return fmt.Sprintf("menu items not available: %s", strings.Join(e.MenuIDs, ", "))
}

// InvalidTransitionError reports an illegal status change and names the
// transitions that would be legal from the order's current status.
type InvalidTransitionError struct {
	From         models.OrderStatus
	To           models.OrderStatus
	ValidTargets []models.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from '%s' to '%s'", e.From, e.To)
}
