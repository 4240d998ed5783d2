package order

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

// legalEdges is the expected lifecycle, written out independently of the
// production table so a typo there fails here.
var legalEdges = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusPlaced:         {model.OrderStatusAccepted, model.OrderStatusCancelled},
	model.OrderStatusAccepted:       {model.OrderStatusPreparing},
	model.OrderStatusPreparing:      {model.OrderStatusReadyForPickup},
	model.OrderStatusReadyForPickup: {model.OrderStatusRiderAssigned},
	model.OrderStatusRiderAssigned:  {model.OrderStatusPickedUp},
	model.OrderStatusPickedUp:       {model.OrderStatusOnTheWay},
	model.OrderStatusOnTheWay:       {model.OrderStatusDelivered},
	model.OrderStatusDelivered:      {model.OrderStatusCompleted},
}

func isLegal(from, to model.OrderStatus) bool {
	for _, next := range legalEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TestAssertTransition_FullMatrix checks every from/to pair of the ten
// statuses: exactly the nine legal edges pass, everything else fails with
// an InvalidTransitionError naming both statuses.
func TestAssertTransition_FullMatrix(t *testing.T) {
	var legal int
	for _, from := range model.OrderStatuses {
		for _, to := range model.OrderStatuses {
			err := AssertTransition(from, to)
			if isLegal(from, to) {
				legal++
				assert.NoError(t, err, "%s -> %s should be legal", from, to)
				continue
			}

			if assert.Error(t, err, "%s -> %s should be rejected", from, to) {
				var ite *InvalidTransitionError
				assert.ErrorAs(t, err, &ite)
				assert.Equal(t, from, ite.Current)
				assert.Equal(t, to, ite.Requested)
			}
		}
	}
	assert.Equal(t, 9, legal)
}

func TestAssertTransition_SelfLoopRejected(t *testing.T) {
	for _, s := range model.OrderStatuses {
		assert.Error(t, AssertTransition(s, s), "%s -> %s", s, s)
	}
}

// Terminal statuses absorb: nothing leaves them, including each other.
func TestTerminalStatuses(t *testing.T) {
	terminals := []model.OrderStatus{model.OrderStatusCompleted, model.OrderStatusCancelled}

	for _, from := range terminals {
		assert.True(t, IsTerminal(from))
		for _, to := range model.OrderStatuses {
			assert.Error(t, AssertTransition(from, to), "%s -> %s", from, to)
		}
	}

	for _, s := range model.OrderStatuses {
		if s == model.OrderStatusCompleted || s == model.OrderStatusCancelled {
			continue
		}
		assert.False(t, IsTerminal(s), "%s must not be terminal", s)
	}
}

func TestAssertTransition_UnknownStatus(t *testing.T) {
	assert.Error(t, AssertTransition(model.OrderStatus("BOGUS"), model.OrderStatusAccepted))
	assert.Error(t, AssertTransition(model.OrderStatusPlaced, model.OrderStatus("BOGUS")))
}

func TestInvalidTransitionError_Message(t *testing.T) {
	err := AssertTransition(model.OrderStatusDelivered, model.OrderStatusPlaced)
	assert.EqualError(t, err, "invalid transition: DELIVERED -> PLACED")
}
