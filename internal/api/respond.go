package api

import (
	"errors"
	"net/http"

	"brasserie/internal/orders"

	"github.com/gin-gonic/gin"
)

// respondOrderError maps the order workflow's typed errors onto HTTP
// responses. Validation and consistency failures carry enough context for
// the caller to correct the request; persistence failures stay generic.
func respondOrderError(c *gin.Context, err error) {
	var verr *orders.CartValidationError
	if errors.As(err, &verr) {
		body := gin.H{"error": verr.Reason}
		if len(verr.Invalid) > 0 {
			body["invalid_items"] = verr.Invalid
		}
		c.JSON(http.StatusBadRequest, body)
		return
	}

	var uerr *orders.UnavailableItemsError
	if errors.As(err, &uerr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":         "Some menu items are not available or do not exist",
			"missing_items": uerr.MenuIDs,
		})
		return
	}

	var terr *orders.InvalidTransitionError
	if errors.As(err, &terr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":            terr.Error(),
			"validTransitions": terr.ValidTargets,
		})
		return
	}

	if errors.Is(err, orders.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if errors.Is(err, orders.ErrMenuNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
