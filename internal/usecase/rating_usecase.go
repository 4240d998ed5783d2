package usecase

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CreateRatingInput struct {
	OrderID      int64
	SellerRating int
	RiderRating  *int
	Comment      string
}

type RatingSummaryItem struct {
	SellerRating int       `json:"seller_rating"`
	RiderRating  *int      `json:"rider_rating,omitempty"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ShopRatingsOutput is the public shop-detail view: an average over the
// recent ratings plus the ratings themselves.
type ShopRatingsOutput struct {
	AverageRating *float64            `json:"average_rating"`
	TotalCount    int                 `json:"total_count"`
	Recent        []RatingSummaryItem `json:"recent"`
}

type RatingUsecase struct {
	ratings repo.RatingRepository
	orders  repo.OrderRepository
	shops   repo.ShopRepository
	clock   Clock
}

func NewRatingUsecase(
	ratings repo.RatingRepository,
	orders repo.OrderRepository,
	shops repo.ShopRepository,
	clock Clock,
) *RatingUsecase {
	return &RatingUsecase{ratings: ratings, orders: orders, shops: shops, clock: clock}
}

// CreateRating records the student's one-shot review of their own COMPLETED
// order. The rated parties are snapshotted from the order.
func (u *RatingUsecase) CreateRating(ctx context.Context, studentID int64, in CreateRatingInput) (model.Rating, error) {
	if in.SellerRating < model.RatingMin || in.SellerRating > model.RatingMax {
		return model.Rating{}, NewHTTPError(http.StatusBadRequest, "seller rating must be 1-5")
	}
	if in.RiderRating != nil && (*in.RiderRating < model.RatingMin || *in.RiderRating > model.RatingMax) {
		return model.Rating{}, NewHTTPError(http.StatusBadRequest, "rider rating must be 1-5")
	}
	comment := strings.TrimSpace(in.Comment)
	if len(comment) > model.RatingCommentMaxLen {
		return model.Rating{}, NewHTTPError(http.StatusBadRequest, "comment too long")
	}

	order, err := u.orders.FindByID(ctx, in.OrderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Rating{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return model.Rating{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	// someone else's order reads as nonexistent
	if order.StudentID != studentID {
		return model.Rating{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if order.Status != model.OrderStatusCompleted {
		return model.Rating{}, NewHTTPError(http.StatusBadRequest, "can only rate completed orders")
	}

	if _, err := u.ratings.FindByOrderID(ctx, in.OrderID); err == nil {
		return model.Rating{}, NewHTTPError(http.StatusConflict, "order already rated")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return model.Rating{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	rating := model.Rating{
		OrderID:      order.ID,
		StudentID:    studentID,
		ShopID:       order.ShopID,
		SellerID:     order.SellerID,
		RiderID:      order.RiderID,
		SellerRating: in.SellerRating,
		RiderRating:  in.RiderRating,
		Comment:      comment,
		CreatedAt:    u.clock.Now(),
	}
	if err := u.ratings.Create(ctx, &rating); err != nil {
		return model.Rating{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rating, nil
}

// ListShopRatings is public: only approved, active shops are visible.
func (u *RatingUsecase) ListShopRatings(ctx context.Context, shopID int64) (ShopRatingsOutput, error) {
	shop, err := u.shops.FindByID(ctx, shopID)
	if errors.Is(err, repo.ErrNotFound) {
		return ShopRatingsOutput{}, NewHTTPError(http.StatusNotFound, "shop not found")
	}
	if err != nil {
		return ShopRatingsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if shop.ApprovalStatus != model.ApprovalApproved || !shop.IsActive {
		return ShopRatingsOutput{}, NewHTTPError(http.StatusNotFound, "shop not found")
	}

	ratings, err := u.ratings.ListByShop(ctx, shopID, 50)
	if err != nil {
		return ShopRatingsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := ShopRatingsOutput{
		TotalCount: len(ratings),
		Recent:     make([]RatingSummaryItem, 0, len(ratings)),
	}
	var sum int
	for _, r := range ratings {
		sum += r.SellerRating
		out.Recent = append(out.Recent, RatingSummaryItem{
			SellerRating: r.SellerRating,
			RiderRating:  r.RiderRating,
			Comment:      r.Comment,
			CreatedAt:    r.CreatedAt,
		})
	}
	if len(ratings) > 0 {
		// one decimal place
		avg := math.Round(float64(sum)/float64(len(ratings))*10) / 10
		out.AverageRating = &avg
	}
	return out, nil
}
