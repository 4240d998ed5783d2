package order

import "app/internal/domain/model"

// Relation is how the acting user relates to the order.
type Relation string

const (
	// RelationNone: not a party to the order (an unassigned rider claiming
	// a READY_FOR_PICKUP order acts with this relation).
	RelationNone    Relation = "NONE"
	RelationStudent Relation = "STUDENT"
	RelationSeller  Relation = "SELLER"
	RelationRider   Relation = "RIDER"
)

// CanTransition is the single authorization policy for status changes.
// It decides who may trigger an edge; AssertTransition decides whether the
// edge exists at all. Both must pass.
func CanTransition(role model.Role, rel Relation, current, next model.OrderStatus) bool {
	switch role {
	case model.RoleStudent:
		// Students may only cancel their own order before acceptance.
		return rel == RelationStudent &&
			current == model.OrderStatusPlaced && next == model.OrderStatusCancelled

	case model.RoleSeller:
		if rel != RelationSeller {
			return false
		}
		switch {
		case current == model.OrderStatusPlaced && next == model.OrderStatusAccepted:
			return true
		case current == model.OrderStatusAccepted && next == model.OrderStatusPreparing:
			return true
		case current == model.OrderStatusPreparing && next == model.OrderStatusReadyForPickup:
			return true
		case current == model.OrderStatusDelivered && next == model.OrderStatusCompleted:
			return true
		}
		return false

	case model.RoleRider:
		// Claiming: order has no rider yet, any approved rider may take it.
		if current == model.OrderStatusReadyForPickup && next == model.OrderStatusRiderAssigned {
			return rel == RelationNone
		}
		if rel != RelationRider {
			return false
		}
		switch {
		case current == model.OrderStatusRiderAssigned && next == model.OrderStatusPickedUp:
			return true
		case current == model.OrderStatusPickedUp && next == model.OrderStatusOnTheWay:
			return true
		case current == model.OrderStatusOnTheWay && next == model.OrderStatusDelivered:
			return true
		}
		return false
	}

	return false
}

// RelationOf classifies the actor against the order's parties.
func RelationOf(o model.Order, actorID int64, role model.Role) Relation {
	switch role {
	case model.RoleStudent:
		if o.StudentID == actorID {
			return RelationStudent
		}
	case model.RoleSeller:
		if o.SellerID == actorID {
			return RelationSeller
		}
	case model.RoleRider:
		if o.RiderID != nil && *o.RiderID == actorID {
			return RelationRider
		}
	}
	return RelationNone
}
