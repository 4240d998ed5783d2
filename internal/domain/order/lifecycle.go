package order

import (
	"fmt"

	"app/internal/domain/model"
)

// allowedTransitions is the single authority for status-change legality.
// COMPLETED and CANCELLED are terminal.
var allowedTransitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusPlaced:         {model.OrderStatusAccepted, model.OrderStatusCancelled},
	model.OrderStatusAccepted:       {model.OrderStatusPreparing},
	model.OrderStatusPreparing:      {model.OrderStatusReadyForPickup},
	model.OrderStatusReadyForPickup: {model.OrderStatusRiderAssigned},
	model.OrderStatusRiderAssigned:  {model.OrderStatusPickedUp},
	model.OrderStatusPickedUp:       {model.OrderStatusOnTheWay},
	model.OrderStatusOnTheWay:       {model.OrderStatusDelivered},
	model.OrderStatusDelivered:      {model.OrderStatusCompleted},
	model.OrderStatusCompleted:      {},
	model.OrderStatusCancelled:      {},
}

// InvalidTransitionError carries current and requested status for diagnostics.
type InvalidTransitionError struct {
	Current   model.OrderStatus
	Requested model.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s -> %s", e.Current, e.Requested)
}

// AssertTransition fails unless requested is reachable from current. Every
// mutating order path must call this before writing.
func AssertTransition(current, requested model.OrderStatus) error {
	for _, next := range allowedTransitions[current] {
		if next == requested {
			return nil
		}
	}
	return &InvalidTransitionError{Current: current, Requested: requested}
}

// IsTerminal reports whether the status has no outgoing transitions.
func IsTerminal(s model.OrderStatus) bool {
	return len(allowedTransitions[s]) == 0
}
