package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RiderOrderHandler is the rider surface: browse unclaimed orders, claim
// one, move it along, and close it out with the student's OTP.
type RiderOrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewRiderOrderHandler(uc *usecase.OrderUsecase) *RiderOrderHandler {
	return &RiderOrderHandler{uc: uc}
}

type DeliveryVerifyRequest struct {
	Otp string `json:"otp"`
}

func (h *RiderOrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	g := e.Group("/rider/orders")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.TokenVersionGuard(userRepo))
	g.Use(middleware.RequireRole("RIDER"))
	g.Use(middleware.RequireApproval(userRepo))

	g.GET("/available", h.available)
	g.GET("", h.mine)
	g.POST("/:id/accept", h.accept)
	g.PATCH("/:id/status", h.updateStatus)
	g.POST("/:id/deliver", h.deliver)
}

func (h *RiderOrderHandler) available(c echo.Context) error {
	if _, ok := getUserIDFromContext(c); !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListAvailableOrders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RiderOrderHandler) mine(c echo.Context) error {
	riderID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListRiderOrders(c.Request().Context(), riderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// accept claims a READY_FOR_PICKUP order. First rider wins; the loser gets
// a conflict.
func (h *RiderOrderHandler) accept(c echo.Context) error {
	riderID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.Transition(c.Request().Context(), id, riderID, model.RoleRider, model.OrderStatusRiderAssigned)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RiderOrderHandler) updateStatus(c echo.Context) error {
	riderID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req OrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Transition(c.Request().Context(), id, riderID, model.RoleRider, model.OrderStatus(req.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// deliver finishes an ON_THE_WAY order by checking the OTP the student got
// at placement.
func (h *RiderOrderHandler) deliver(c echo.Context) error {
	riderID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req DeliveryVerifyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.VerifyDelivery(c.Request().Context(), id, riderID, req.Otp)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
