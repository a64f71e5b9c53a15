package orders

import (
	"testing"

	"brasserie/internal/models"
)

var statusChain = []models.OrderStatus{
	models.OrderStatusPending,
	models.OrderStatusCooking,
	models.OrderStatusReady,
	models.OrderStatusCompleted,
}

func TestCanTransitionForwardSteps(t *testing.T) {
	for i := 0; i < len(statusChain)-1; i++ {
		if !CanTransition(statusChain[i], statusChain[i+1]) {
			t.Errorf("expected %s -> %s to be allowed", statusChain[i], statusChain[i+1])
		}
	}
}

func TestCanTransitionRejectsBackwardAndSkips(t *testing.T) {
	for i, from := range statusChain {
		for j, to := range statusChain {
			if j == i+1 {
				continue // the single legal forward step
			}
			if CanTransition(from, to) {
				t.Errorf("expected %s -> %s to be rejected", from, to)
			}
		}
	}
}

func TestCompletedIsTerminal(t *testing.T) {
	if targets := ValidTargets(models.OrderStatusCompleted); len(targets) != 0 {
		t.Errorf("expected no valid targets from completed, got %v", targets)
	}
}

func TestValidTargets(t *testing.T) {
	targets := ValidTargets(models.OrderStatusReady)
	if len(targets) != 1 || targets[0] != models.OrderStatusCompleted {
		t.Errorf("expected [completed] from ready, got %v", targets)
	}
}
