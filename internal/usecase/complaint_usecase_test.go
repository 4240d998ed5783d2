package usecase

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// ComplaintRepository mock
// =====================

type ComplaintRepoMock struct{ mock.Mock }

func (m *ComplaintRepoMock) Create(ctx context.Context, complaint *model.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *ComplaintRepoMock) FindByID(ctx context.Context, complaintID int64) (model.Complaint, error) {
	args := m.Called(ctx, complaintID)
	c, _ := args.Get(0).(model.Complaint)
	return c, args.Error(1)
}

func (m *ComplaintRepoMock) ListByStudent(ctx context.Context, studentID int64, limit int) ([]model.Complaint, error) {
	args := m.Called(ctx, studentID, limit)
	cs, _ := args.Get(0).([]model.Complaint)
	return cs, args.Error(1)
}

func (m *ComplaintRepoMock) List(ctx context.Context, f repo.ComplaintFilter) ([]model.Complaint, error) {
	args := m.Called(ctx, f)
	cs, _ := args.Get(0).([]model.Complaint)
	return cs, args.Error(1)
}

func (m *ComplaintRepoMock) Update(ctx context.Context, complaint model.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

var _ repo.ComplaintRepository = (*ComplaintRepoMock)(nil)

// =====================
// fixture
// =====================

type complaintFixture struct {
	uc         *ComplaintUsecase
	complaints *ComplaintRepoMock
	orders     *OrderRepoMock
	clock      *testClock
}

func newComplaintFixture(t *testing.T) *complaintFixture {
	t.Helper()

	f := &complaintFixture{
		complaints: &ComplaintRepoMock{},
		orders:     &OrderRepoMock{},
		clock:      &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
	}
	f.uc = NewComplaintUsecase(f.complaints, f.orders, f.clock)
	return f
}

// =====================
// CreateComplaint
// =====================

func TestCreateComplaint_Success(t *testing.T) {
	f := newComplaintFixture(t)
	ctx := context.Background()

	f.orders.On("FindByID", ctx, int64(77)).Return(model.Order{
		ID: 77, StudentID: 10, Status: model.OrderStatusRiderAssigned,
	}, nil)
	f.complaints.On("Create", ctx, mock.AnythingOfType("*model.Complaint")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Complaint).ID = 9
		}).Return(nil)

	out, err := f.uc.CreateComplaint(ctx, 10, CreateComplaintInput{
		OrderID: 77,
		Target:  "RIDER",
		Message: " Rider never showed up at the hostel gate. ",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(9), out.ID)
	assert.Equal(t, model.ComplaintTargetRider, out.Target)
	assert.Equal(t, model.ComplaintOpen, out.Status)
	assert.Equal(t, "Rider never showed up at the hostel gate.", out.Message)
	assert.Equal(t, f.clock.now, out.CreatedAt)
}

func TestCreateComplaint_DefaultsToOrderTarget(t *testing.T) {
	f := newComplaintFixture(t)
	ctx := context.Background()

	f.orders.On("FindByID", ctx, int64(77)).Return(model.Order{
		ID: 77, StudentID: 10, Status: model.OrderStatusPlaced,
	}, nil)
	f.complaints.On("Create", ctx, mock.AnythingOfType("*model.Complaint")).Return(nil)

	out, err := f.uc.CreateComplaint(ctx, 10, CreateComplaintInput{
		OrderID: 77,
		Message: "Order stuck at PLACED for over an hour.",
	})

	assert.NoError(t, err)
	assert.Equal(t, model.ComplaintTargetOrder, out.Target)
}

func TestCreateComplaint_Validation(t *testing.T) {
	f := newComplaintFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateComplaintInput
	}{
		{"unknown target", CreateComplaintInput{OrderID: 77, Target: "SHOP", Message: "valid enough message"}},
		{"message too short", CreateComplaintInput{OrderID: 77, Message: "hm"}},
		{"message too long", CreateComplaintInput{OrderID: 77, Message: strings.Repeat("x", 1001)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.CreateComplaint(ctx, 10, tc.in)
			assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
		})
	}

	f.orders.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCreateComplaint_NotOwnOrder(t *testing.T) {
	f := newComplaintFixture(t)
	ctx := context.Background()

	f.orders.On("FindByID", ctx, int64(77)).Return(model.Order{
		ID: 77, StudentID: 11, Status: model.OrderStatusCompleted,
	}, nil)

	_, err := f.uc.CreateComplaint(ctx, 10, CreateComplaintInput{
		OrderID: 77,
		Message: "Food arrived cold and half eaten.",
	})

	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
	assert.ErrorContains(t, err, "order not found")
	f.complaints.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// =====================
// admin queue
// =====================

func TestListComplaints_StatusFilter(t *testing.T) {
	f := newComplaintFixture(t)
	ctx := context.Background()

	open := model.ComplaintOpen
	f.complaints.On("List", ctx, repo.ComplaintFilter{Status: &open}).
		Return([]model.Complaint{{ID: 9, Status: model.ComplaintOpen}}, nil)

	out, err := f.uc.ListComplaints(ctx, "OPEN")

	assert.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestListComplaints_InvalidStatus(t *testing.T) {
	f := newComplaintFixture(t)
	ctx := context.Background()

	_, err := f.uc.ListComplaints(ctx, "ESCALATED")

	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	f.complaints.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestUpdateComplaint_ResolveStampsWhoAndWhen(t *testing.T) {
	f := newComplaintFixture(t)
	ctx := context.Background()

	f.complaints.On("FindByID", ctx, int64(9)).Return(model.Complaint{
		ID: 9, OrderID: 77, StudentID: 10, Status: model.ComplaintInProgress,
	}, nil)
	f.complaints.On("Update", ctx, mock.AnythingOfType("model.Complaint")).Return(nil)

	status := "RESOLVED"
	notes := "Refunded the delivery fee."
	out, err := f.uc.UpdateComplaint(ctx, 99, 9, UpdateComplaintInput{
		Status:          &status,
		ResolutionNotes: &notes,
	})

	assert.NoError(t, err)
	assert.Equal(t, model.ComplaintResolved, out.Status)
	assert.Equal(t, notes, out.ResolutionNotes)
	if assert.NotNil(t, out.ResolvedAt) {
		assert.Equal(t, f.clock.now, *out.ResolvedAt)
	}
	if assert.NotNil(t, out.ResolvedByID) {
		assert.Equal(t, int64(99), *out.ResolvedByID)
	}
}

func TestUpdateComplaint_InvalidStatus(t *testing.T) {
	f := newComplaintFixture(t)
	ctx := context.Background()

	f.complaints.On("FindByID", ctx, int64(9)).Return(model.Complaint{
		ID: 9, Status: model.ComplaintOpen,
	}, nil)

	status := "DELETED"
	_, err := f.uc.UpdateComplaint(ctx, 99, 9, UpdateComplaintInput{Status: &status})

	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	f.complaints.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateComplaint_NotFound(t *testing.T) {
	f := newComplaintFixture(t)
	ctx := context.Background()

	f.complaints.On("FindByID", ctx, int64(404)).Return(model.Complaint{}, repo.ErrNotFound)

	status := "CLOSED"
	_, err := f.uc.UpdateComplaint(ctx, 99, 404, UpdateComplaintInput{Status: &status})

	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
}
