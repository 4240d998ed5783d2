package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type RatingHandler struct {
	uc *usecase.RatingUsecase
}

func NewRatingHandler(uc *usecase.RatingUsecase) *RatingHandler {
	return &RatingHandler{uc: uc}
}

type RatingCreateRequest struct {
	OrderID      int64  `json:"order_id"`
	SellerRating int    `json:"seller_rating"`
	RiderRating  *int   `json:"rider_rating"`
	Comment      string `json:"comment"`
}

func (h *RatingHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	//public
	e.GET("/shops/:id/ratings", h.shopRatings)

	g := e.Group("/ratings")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.TokenVersionGuard(userRepo))
	g.Use(middleware.RequireRole("STUDENT"))

	g.POST("", h.create)
}

func (h *RatingHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req RatingCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	rating, err := h.uc.CreateRating(c.Request().Context(), userID, usecase.CreateRatingInput{
		OrderID:      req.OrderID,
		SellerRating: req.SellerRating,
		RiderRating:  req.RiderRating,
		Comment:      req.Comment,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, rating)
}

func (h *RatingHandler) shopRatings(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.ListShopRatings(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
