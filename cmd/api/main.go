package main

import (
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/notify"
	"app/internal/otp"
	"app/internal/pricing"
	"app/internal/server"
	"app/internal/usecase"
	"app/pkg/logger"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	// .env is optional outside local dev
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Config{
		Level:       logger.LevelInfo,
		Format:      "json",
		Output:      "stdout",
		Component:   "api",
		Environment: cfg.GoEnv,
	})

	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.Shop{},
		&model.MenuItem{},
		&model.FlashDeal{},
		&model.FlashDealItem{},
		&model.StudentAddress{},
		&model.Order{},
		&model.OrderItem{},
		&model.OrderStatusEvent{},
		&model.Rating{},
		&model.Complaint{},
		&model.AuditLog{},
	); err != nil {
		panic(err)
	}

	// repositories (GORM)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	rtRepo := infraRepo.NewRefreshTokenGormRepository(gormDB)
	shopRepo := infraRepo.NewShopGormRepository(gormDB)
	menuRepo := infraRepo.NewMenuItemGormRepository(gormDB)
	dealRepo := infraRepo.NewFlashDealGormRepository(gormDB)
	addrRepo := infraRepo.NewStudentAddressGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	orderEventRepo := infraRepo.NewOrderEventGormRepository(gormDB)
	ratingRepo := infraRepo.NewRatingGormRepository(gormDB)
	complaintRepo := infraRepo.NewComplaintGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	idGen := &uuidGenerator{}
	clock := &realClock{}

	otpIssuer, err := otp.NewIssuer([]byte(cfg.OTPSecret), clock)
	if err != nil {
		panic(err)
	}

	pricingEngine := pricing.NewEngine(pricing.DefaultConfig())

	var notifier notify.OtpNotifier
	if cfg.SMTPAddr != "" {
		notifier = notify.NewSMTPNotifier(cfg.SMTPAddr, cfg.SMTPFrom)
	} else {
		notifier = notify.NewLogNotifier(log)
	}

	// Usecase
	authUC := usecase.NewAuthUsecase(cfg, userRepo, rtRepo, idGen, clock)
	shopUC := usecase.NewShopUsecase(shopRepo, clock)
	menuUC := usecase.NewMenuUsecase(menuRepo, shopRepo, clock)
	dealUC := usecase.NewFlashDealUsecase(dealRepo, menuRepo, shopRepo, pricingEngine, clock)
	addrUC := usecase.NewAddressUsecase(addrRepo, clock)
	orderUC := usecase.NewOrderUsecase(
		txManager,
		orderRepo,
		orderItemRepo,
		orderEventRepo,
		shopRepo,
		menuRepo,
		dealRepo,
		addrRepo,
		userRepo,
		pricingEngine,
		otpIssuer,
		notifier,
		clock,
		log,
	)
	ratingUC := usecase.NewRatingUsecase(ratingRepo, orderRepo, shopRepo, clock)
	complaintUC := usecase.NewComplaintUsecase(complaintRepo, orderRepo, clock)
	adminUC := usecase.NewAdminUsecase(userRepo, shopRepo, orderRepo, auditRepo, clock)

	// Handler
	handlers := server.Handlers{
		Auth:        handler.NewAuthHandler(authUC),
		Shop:        handler.NewShopHandler(shopUC, menuUC, dealUC),
		Menu:        handler.NewMenuHandler(menuUC),
		FlashDeal:   handler.NewFlashDealHandler(dealUC),
		Address:     handler.NewAddressHandler(addrUC),
		Order:       handler.NewOrderHandler(orderUC),
		SellerOrder: handler.NewSellerOrderHandler(orderUC),
		RiderOrder:  handler.NewRiderOrderHandler(orderUC),
		Rating:      handler.NewRatingHandler(ratingUC),
		Complaint:   handler.NewComplaintHandler(complaintUC),
		Admin:       handler.NewAdminHandler(adminUC),
	}

	e := server.New(cfg, userRepo, handlers)

	log.Info("starting api", "port", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		panic(err)
	}
}
