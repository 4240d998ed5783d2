package server

import (
	"net/http"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth        *handler.AuthHandler
	Shop        *handler.ShopHandler
	Menu        *handler.MenuHandler
	FlashDeal   *handler.FlashDealHandler
	Address     *handler.AddressHandler
	Order       *handler.OrderHandler
	SellerOrder *handler.SellerOrderHandler
	RiderOrder  *handler.RiderOrderHandler
	Rating      *handler.RatingHandler
	Complaint   *handler.ComplaintHandler
	Admin       *handler.AdminHandler
}

func New(cfg config.Config, userRepo repository.UserRepository, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	h.Auth.RegisterRoutes(e, cfg, userRepo)
	h.Shop.RegisterRoutes(e, cfg, userRepo)
	h.Menu.RegisterRoutes(e, cfg, userRepo)
	h.FlashDeal.RegisterRoutes(e, cfg, userRepo)
	h.Address.RegisterRoutes(e, cfg, userRepo)
	h.Order.RegisterRoutes(e, cfg, userRepo)
	h.SellerOrder.RegisterRoutes(e, cfg, userRepo)
	h.RiderOrder.RegisterRoutes(e, cfg, userRepo)
	h.Rating.RegisterRoutes(e, cfg, userRepo)
	h.Complaint.RegisterRoutes(e, cfg, userRepo)
	h.Admin.RegisterRoutes(e, cfg, userRepo)

	return e
}
