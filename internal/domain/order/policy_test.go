package order

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_Student(t *testing.T) {
	// own order, still PLACED: cancel allowed
	assert.True(t, CanTransition(model.RoleStudent, RelationStudent,
		model.OrderStatusPlaced, model.OrderStatusCancelled))

	// someone else's order
	assert.False(t, CanTransition(model.RoleStudent, RelationNone,
		model.OrderStatusPlaced, model.OrderStatusCancelled))

	// too late: kitchen already accepted
	assert.False(t, CanTransition(model.RoleStudent, RelationStudent,
		model.OrderStatusAccepted, model.OrderStatusCancelled))

	// students never drive the forward path
	assert.False(t, CanTransition(model.RoleStudent, RelationStudent,
		model.OrderStatusPlaced, model.OrderStatusAccepted))
}

func TestCanTransition_Seller(t *testing.T) {
	sellerEdges := [][2]model.OrderStatus{
		{model.OrderStatusPlaced, model.OrderStatusAccepted},
		{model.OrderStatusAccepted, model.OrderStatusPreparing},
		{model.OrderStatusPreparing, model.OrderStatusReadyForPickup},
		{model.OrderStatusDelivered, model.OrderStatusCompleted},
	}

	for _, e := range sellerEdges {
		assert.True(t, CanTransition(model.RoleSeller, RelationSeller, e[0], e[1]),
			"%s -> %s", e[0], e[1])
		// not this seller's order
		assert.False(t, CanTransition(model.RoleSeller, RelationNone, e[0], e[1]),
			"%s -> %s without relation", e[0], e[1])
	}

	// sellers never touch the rider leg
	assert.False(t, CanTransition(model.RoleSeller, RelationSeller,
		model.OrderStatusReadyForPickup, model.OrderStatusRiderAssigned))
	assert.False(t, CanTransition(model.RoleSeller, RelationSeller,
		model.OrderStatusOnTheWay, model.OrderStatusDelivered))
	// and cannot cancel on the student's behalf
	assert.False(t, CanTransition(model.RoleSeller, RelationSeller,
		model.OrderStatusPlaced, model.OrderStatusCancelled))
}

func TestCanTransition_RiderClaim(t *testing.T) {
	// claiming requires NO existing relation: the order is unassigned
	assert.True(t, CanTransition(model.RoleRider, RelationNone,
		model.OrderStatusReadyForPickup, model.OrderStatusRiderAssigned))

	// an already-assigned rider cannot re-claim
	assert.False(t, CanTransition(model.RoleRider, RelationRider,
		model.OrderStatusReadyForPickup, model.OrderStatusRiderAssigned))
}

func TestCanTransition_RiderProgress(t *testing.T) {
	riderEdges := [][2]model.OrderStatus{
		{model.OrderStatusRiderAssigned, model.OrderStatusPickedUp},
		{model.OrderStatusPickedUp, model.OrderStatusOnTheWay},
		{model.OrderStatusOnTheWay, model.OrderStatusDelivered},
	}

	for _, e := range riderEdges {
		assert.True(t, CanTransition(model.RoleRider, RelationRider, e[0], e[1]),
			"%s -> %s", e[0], e[1])
		// a rider who never claimed the order may not move it
		assert.False(t, CanTransition(model.RoleRider, RelationNone, e[0], e[1]),
			"%s -> %s as stranger", e[0], e[1])
	}

	assert.False(t, CanTransition(model.RoleRider, RelationRider,
		model.OrderStatusDelivered, model.OrderStatusCompleted))
}

func TestCanTransition_AdminHasNoEdges(t *testing.T) {
	for _, from := range model.OrderStatuses {
		for _, to := range model.OrderStatuses {
			assert.False(t, CanTransition(model.RoleAdmin, RelationNone, from, to),
				"admin %s -> %s", from, to)
		}
	}
}

func TestRelationOf(t *testing.T) {
	riderID := int64(30)
	o := model.Order{StudentID: 10, SellerID: 20, RiderID: &riderID}

	assert.Equal(t, RelationStudent, RelationOf(o, 10, model.RoleStudent))
	assert.Equal(t, RelationSeller, RelationOf(o, 20, model.RoleSeller))
	assert.Equal(t, RelationRider, RelationOf(o, 30, model.RoleRider))

	// wrong ids
	assert.Equal(t, RelationNone, RelationOf(o, 11, model.RoleStudent))
	assert.Equal(t, RelationNone, RelationOf(o, 21, model.RoleSeller))
	assert.Equal(t, RelationNone, RelationOf(o, 31, model.RoleRider))

	// unassigned order: every rider is a stranger
	unassigned := model.Order{StudentID: 10, SellerID: 20}
	assert.Equal(t, RelationNone, RelationOf(unassigned, 30, model.RoleRider))
}
