package handler

import (
	"net/http"
	"strconv"
	"time"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type FlashDealHandler struct {
	uc *usecase.FlashDealUsecase
}

func NewFlashDealHandler(uc *usecase.FlashDealUsecase) *FlashDealHandler {
	return &FlashDealHandler{uc: uc}
}

type FlashDealCreateRequest struct {
	Title         string    `json:"title"`
	DiscountType  string    `json:"discount_type"`
	DiscountValue int64     `json:"discount_value"`
	StartAt       time.Time `json:"start_at"`
	EndAt         time.Time `json:"end_at"`
	MenuItemIDs   []int64   `json:"menu_item_ids"`
}

type FlashDealUpdateRequest struct {
	Title    *string    `json:"title"`
	EndAt    *time.Time `json:"end_at"`
	IsActive *bool      `json:"is_active"`
}

func (h *FlashDealHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	g := e.Group("/seller")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.TokenVersionGuard(userRepo))
	g.Use(middleware.RequireRole("SELLER"))
	g.Use(middleware.RequireApproval(userRepo))

	g.POST("/shops/:shopID/deals", h.create)
	g.GET("/shops/:shopID/deals", h.list)
	g.PATCH("/deals/:id", h.update)
	g.DELETE("/deals/:id", h.delete)
}

func (h *FlashDealHandler) create(c echo.Context) error {
	sellerID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	shopID, err := strconv.ParseInt(c.Param("shopID"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid shop id"})
	}

	var req FlashDealCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	deal, err := h.uc.CreateDeal(c.Request().Context(), sellerID, shopID, usecase.CreateFlashDealInput{
		Title:         req.Title,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		StartAt:       req.StartAt,
		EndAt:         req.EndAt,
		MenuItemIDs:   req.MenuItemIDs,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, deal)
}

func (h *FlashDealHandler) list(c echo.Context) error {
	if _, ok := getUserIDFromContext(c); !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	shopID, err := strconv.ParseInt(c.Param("shopID"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid shop id"})
	}

	deals, err := h.uc.ListShopDeals(c.Request().Context(), shopID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, deals)
}

func (h *FlashDealHandler) update(c echo.Context) error {
	sellerID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req FlashDealUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	deal, err := h.uc.UpdateDeal(c.Request().Context(), sellerID, id, usecase.UpdateFlashDealInput{
		Title:    req.Title,
		EndAt:    req.EndAt,
		IsActive: req.IsActive,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, deal)
}

func (h *FlashDealHandler) delete(c echo.Context) error {
	sellerID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteDeal(c.Request().Context(), sellerID, id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "deal deleted"})
}
