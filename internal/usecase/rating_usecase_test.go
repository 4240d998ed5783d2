package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// RatingRepository mock
// =====================

type RatingRepoMock struct{ mock.Mock }

func (m *RatingRepoMock) Create(ctx context.Context, rating *model.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *RatingRepoMock) FindByOrderID(ctx context.Context, orderID int64) (model.Rating, error) {
	args := m.Called(ctx, orderID)
	r, _ := args.Get(0).(model.Rating)
	return r, args.Error(1)
}

func (m *RatingRepoMock) ListByShop(ctx context.Context, shopID int64, limit int) ([]model.Rating, error) {
	args := m.Called(ctx, shopID, limit)
	rs, _ := args.Get(0).([]model.Rating)
	return rs, args.Error(1)
}

var _ repo.RatingRepository = (*RatingRepoMock)(nil)

// =====================
// fixture
// =====================

type ratingFixture struct {
	uc      *RatingUsecase
	ratings *RatingRepoMock
	orders  *OrderRepoMock
	shops   *ShopRepoMock
	clock   *testClock
}

func newRatingFixture(t *testing.T) *ratingFixture {
	t.Helper()

	f := &ratingFixture{
		ratings: &RatingRepoMock{},
		orders:  &OrderRepoMock{},
		shops:   &ShopRepoMock{},
		clock:   &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
	}
	f.uc = NewRatingUsecase(f.ratings, f.orders, f.shops, f.clock)
	return f
}

func intPtr(v int) *int { return &v }

// =====================
// CreateRating
// =====================

func TestCreateRating_Success(t *testing.T) {
	f := newRatingFixture(t)
	ctx := context.Background()

	riderID := int64(30)
	f.orders.On("FindByID", ctx, int64(77)).Return(model.Order{
		ID: 77, StudentID: 10, ShopID: 3, SellerID: 20, RiderID: &riderID,
		Status: model.OrderStatusCompleted,
	}, nil)
	f.ratings.On("FindByOrderID", ctx, int64(77)).Return(model.Rating{}, repo.ErrNotFound)
	f.ratings.On("Create", ctx, mock.AnythingOfType("*model.Rating")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Rating).ID = 5
		}).Return(nil)

	out, err := f.uc.CreateRating(ctx, 10, CreateRatingInput{
		OrderID:      77,
		SellerRating: 5,
		RiderRating:  intPtr(4),
		Comment:      "  Best kottu near the engineering faculty.  ",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), out.ID)
	// parties come from the order, not from the request
	assert.Equal(t, int64(3), out.ShopID)
	assert.Equal(t, int64(20), out.SellerID)
	assert.Equal(t, &riderID, out.RiderID)
	assert.Equal(t, 5, out.SellerRating)
	assert.Equal(t, 4, *out.RiderRating)
	assert.Equal(t, "Best kottu near the engineering faculty.", out.Comment)
	assert.Equal(t, f.clock.now, out.CreatedAt)
}

func TestCreateRating_Validation(t *testing.T) {
	f := newRatingFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateRatingInput
	}{
		{"seller rating too low", CreateRatingInput{OrderID: 77, SellerRating: 0}},
		{"seller rating too high", CreateRatingInput{OrderID: 77, SellerRating: 6}},
		{"rider rating out of range", CreateRatingInput{OrderID: 77, SellerRating: 3, RiderRating: intPtr(0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.CreateRating(ctx, 10, tc.in)
			assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
		})
	}

	f.orders.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCreateRating_NotOwnOrder(t *testing.T) {
	f := newRatingFixture(t)
	ctx := context.Background()

	f.orders.On("FindByID", ctx, int64(77)).Return(model.Order{
		ID: 77, StudentID: 11, Status: model.OrderStatusCompleted,
	}, nil)

	_, err := f.uc.CreateRating(ctx, 10, CreateRatingInput{OrderID: 77, SellerRating: 5})

	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
	assert.ErrorContains(t, err, "order not found")
}

func TestCreateRating_OrderNotCompleted(t *testing.T) {
	f := newRatingFixture(t)
	ctx := context.Background()

	f.orders.On("FindByID", ctx, int64(77)).Return(model.Order{
		ID: 77, StudentID: 10, Status: model.OrderStatusDelivered,
	}, nil)

	_, err := f.uc.CreateRating(ctx, 10, CreateRatingInput{OrderID: 77, SellerRating: 5})

	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	assert.ErrorContains(t, err, "can only rate completed orders")
}

func TestCreateRating_Duplicate(t *testing.T) {
	f := newRatingFixture(t)
	ctx := context.Background()

	f.orders.On("FindByID", ctx, int64(77)).Return(model.Order{
		ID: 77, StudentID: 10, Status: model.OrderStatusCompleted,
	}, nil)
	f.ratings.On("FindByOrderID", ctx, int64(77)).Return(model.Rating{ID: 5, OrderID: 77}, nil)

	_, err := f.uc.CreateRating(ctx, 10, CreateRatingInput{OrderID: 77, SellerRating: 5})

	assert.Equal(t, http.StatusConflict, httpStatus(t, err))
	assert.ErrorContains(t, err, "order already rated")
	f.ratings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// =====================
// ListShopRatings
// =====================

func TestListShopRatings_AverageRoundedToOneDecimal(t *testing.T) {
	f := newRatingFixture(t)
	ctx := context.Background()

	f.shops.On("FindByID", ctx, int64(3)).Return(model.Shop{
		ID: 3, IsActive: true, ApprovalStatus: model.ApprovalApproved,
	}, nil)
	f.ratings.On("ListByShop", ctx, int64(3), 50).Return([]model.Rating{
		{SellerRating: 5},
		{SellerRating: 4},
		{SellerRating: 4},
	}, nil)

	out, err := f.uc.ListShopRatings(ctx, 3)

	assert.NoError(t, err)
	assert.Equal(t, 3, out.TotalCount)
	if assert.NotNil(t, out.AverageRating) {
		// 13/3 = 4.333..., one decimal
		assert.Equal(t, 4.3, *out.AverageRating)
	}
	assert.Len(t, out.Recent, 3)
}

func TestListShopRatings_NoRatings(t *testing.T) {
	f := newRatingFixture(t)
	ctx := context.Background()

	f.shops.On("FindByID", ctx, int64(3)).Return(model.Shop{
		ID: 3, IsActive: true, ApprovalStatus: model.ApprovalApproved,
	}, nil)
	f.ratings.On("ListByShop", ctx, int64(3), 50).Return([]model.Rating(nil), nil)

	out, err := f.uc.ListShopRatings(ctx, 3)

	assert.NoError(t, err)
	assert.Nil(t, out.AverageRating)
	assert.Equal(t, 0, out.TotalCount)
}

func TestListShopRatings_HiddenShop(t *testing.T) {
	f := newRatingFixture(t)
	ctx := context.Background()

	f.shops.On("FindByID", ctx, int64(3)).Return(model.Shop{
		ID: 3, IsActive: false, ApprovalStatus: model.ApprovalApproved,
	}, nil)

	_, err := f.uc.ListShopRatings(ctx, 3)

	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
	f.ratings.AssertNotCalled(t, "ListByShop", mock.Anything, mock.Anything, mock.Anything)
}
