package usecase

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"app/internal/domain/model"
	dorder "app/internal/domain/order"
	"app/internal/notify"
	"app/internal/otp"
	"app/internal/pricing"
	repo "app/internal/repository"
	"app/pkg/logger"
)

// Clock is injected so tests control time.
type Clock interface {
	Now() time.Time
}

var otpCodeRe = regexp.MustCompile(`^\d{6}$`)

// OrderUsecase orchestrates the order lifecycle: placement with
// server-computed pricing and OTP issuance, role-gated status transitions,
// and OTP-verified delivery.
type OrderUsecase struct {
	tx          repo.TransactionManager
	orders      repo.OrderRepository
	orderItems  repo.OrderItemRepository
	orderEvents repo.OrderEventRepository
	shops       repo.ShopRepository
	menuItems   repo.MenuItemRepository
	deals       repo.FlashDealRepository
	addresses   repo.StudentAddressRepository
	users       repo.UserRepository

	pricing  *pricing.Engine
	otp      *otp.Issuer
	notifier notify.OtpNotifier
	clock    Clock
	log      *logger.Logger
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	orderItems repo.OrderItemRepository,
	orderEvents repo.OrderEventRepository,
	shops repo.ShopRepository,
	menuItems repo.MenuItemRepository,
	deals repo.FlashDealRepository,
	addresses repo.StudentAddressRepository,
	users repo.UserRepository,
	pricingEngine *pricing.Engine,
	otpIssuer *otp.Issuer,
	notifier notify.OtpNotifier,
	clock Clock,
	log *logger.Logger,
) *OrderUsecase {
	return &OrderUsecase{
		tx:          tx,
		orders:      orders,
		orderItems:  orderItems,
		orderEvents: orderEvents,
		shops:       shops,
		menuItems:   menuItems,
		deals:       deals,
		addresses:   addresses,
		users:       users,
		pricing:     pricingEngine,
		otp:         otpIssuer,
		notifier:    notifier,
		clock:       clock,
		log:         log.WithComponent("order_usecase"),
	}
}

type PlaceOrderItemInput struct {
	MenuItemID int64 `json:"menu_item_id"`
	Qty        int64 `json:"qty"`
}

type PlaceOrderInput struct {
	ShopID          int64
	Items           []PlaceOrderItemInput
	DeliveryAddress string
	AddressID       int64
	DistanceKm      float64
}

// PlaceOrderOutput carries the plaintext OTP exactly once. No later read of
// the order ever returns it.
type PlaceOrderOutput struct {
	OrderID  int64  `json:"order_id"`
	Status   string `json:"status"`
	TotalLkr int64  `json:"total_lkr"`
	Otp      string `json:"otp"`
}

type OrderItemOutput struct {
	MenuItemID   int64  `json:"menu_item_id"`
	Name         string `json:"name"`
	UnitPriceLkr int64  `json:"unit_price_lkr"`
	Qty          int64  `json:"qty"`
	LineTotalLkr int64  `json:"line_total_lkr"`
}

type StatusEventOutput struct {
	Status      string    `json:"status"`
	ActorUserID int64     `json:"actor_user_id"`
	At          time.Time `json:"at"`
}

type OrderSummaryOutput struct {
	ID          int64     `json:"id"`
	Status      string    `json:"status"`
	TotalLkr    int64     `json:"total_lkr"`
	ShopID      int64     `json:"shop_id"`
	RiderID     *int64    `json:"rider_id,omitempty"`
	DistanceKm  float64   `json:"distance_km"`
	RiderFeeLkr int64     `json:"rider_fee_lkr"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderDetailOutput struct {
	ID              int64               `json:"id"`
	Status          string              `json:"status"`
	Items           []OrderItemOutput   `json:"items"`
	SubtotalLkr     int64               `json:"subtotal_lkr"`
	TotalLkr        int64               `json:"total_lkr"`
	DeliveryAddress string              `json:"delivery_address"`
	ShopID          int64               `json:"shop_id"`
	DistanceKm      float64             `json:"distance_km"`
	RiderFeeLkr     int64               `json:"rider_fee_lkr"`
	StatusHistory   []StatusEventOutput `json:"status_history"`
	CreatedAt       time.Time           `json:"created_at"`
}

type TransitionOutput struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// PlaceOrder validates the placement request, computes all money server-side,
// issues the delivery OTP and persists the order atomically. The OTP email is
// best-effort: a notification failure never rolls back the order.
func (u *OrderUsecase) PlaceOrder(ctx context.Context, studentID int64, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if studentID <= 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	// 1. delivery address: saved address owned by the student, or inline
	deliveryAddress := strings.TrimSpace(in.DeliveryAddress)
	if in.AddressID > 0 {
		saved, err := u.addresses.FindByID(ctx, in.AddressID)
		if err != nil || saved.UserID != studentID {
			if err != nil && !errors.Is(err, repo.ErrNotFound) {
				return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
			}
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "saved address not found")
		}
		deliveryAddress = saved.Address
	}
	if len(deliveryAddress) < 5 || len(deliveryAddress) > 300 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "valid delivery address is required")
	}

	// 2. shop must exist, be active and approved
	shop, err := u.shops.FindByID(ctx, in.ShopID)
	if errors.Is(err, repo.ErrNotFound) {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusNotFound, "shop not found")
	}
	if err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !shop.IsActive || shop.ApprovalStatus != model.ApprovalApproved {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusNotFound, "shop not found")
	}

	// 3. every requested item must resolve against this shop; any mismatch
	// rejects the whole order
	if len(in.Items) == 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "items must not be empty")
	}
	requested := make([]pricing.RequestedItem, 0, len(in.Items))
	ids := make([]int64, 0, len(in.Items))
	for _, it := range in.Items {
		if it.MenuItemID <= 0 {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid menu item id")
		}
		if it.Qty < model.OrderItemMinQty || it.Qty > model.OrderItemMaxQty {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid qty")
		}
		requested = append(requested, pricing.RequestedItem{MenuItemID: it.MenuItemID, Qty: it.Qty})
		ids = append(ids, it.MenuItemID)
	}

	menuItems, err := u.menuItems.FindForOrder(ctx, shop.ID, ids)
	if err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(menuItems) != len(in.Items) {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "some items are not available for this shop")
	}
	byID := make(map[int64]model.MenuItem, len(menuItems))
	for _, m := range menuItems {
		byID[m.ID] = m
	}

	// 4. distance
	if in.DistanceKm < model.OrderMinDistanceKm || in.DistanceKm > model.OrderMaxDistanceKm {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid distance_km")
	}

	now := u.clock.Now()

	activeDeals, err := u.deals.ListActive(ctx, shop.ID, now)
	if err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	dealPrices := u.pricing.ResolveDealPrices(activeDeals, menuItems)

	lineItems, subtotal, err := u.pricing.BuildLineItems(requested, byID, dealPrices)
	if err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "some items are not available for this shop")
	}

	commission := u.pricing.Commission(subtotal)
	riderFee := u.pricing.RiderFee(in.DistanceKm)
	// student pays the subtotal; commission and rider fee are recorded only
	total := subtotal

	code, otpHash, otpExpiresAt, err := u.otp.Issue()
	if err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	order := model.Order{
		StudentID: studentID,
		SellerID:  shop.SellerID,
		RiderID:   nil,
		ShopID:    shop.ID,
		Status:    model.OrderStatusPlaced,
		Currency:  "LKR",

		SubtotalLkr:         subtotal,
		CommissionRate:      u.pricing.Config().CommissionRate,
		CommissionAmountLkr: commission,
		TotalLkr:            total,

		DistanceKm:       in.DistanceKm,
		RiderFeePerKmLkr: u.pricing.Config().RiderFeePerKmLkr,
		RiderFeeLkr:      riderFee,

		DeliveryAddress: deliveryAddress,

		OtpHash:      otpHash,
		OtpExpiresAt: otpExpiresAt,
		OtpUsedAt:    nil,
		OtpAttempts:  0,

		CreatedAt: now,
		UpdatedAt: now,
	}

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Orders().Create(ctx, &order); err != nil {
			return err
		}
		if err := r.OrderItems().CreateBulk(ctx, order.ID, lineItems); err != nil {
			return err
		}
		return r.OrderEvents().Append(ctx, model.OrderStatusEvent{
			OrderID:     order.ID,
			Status:      model.OrderStatusPlaced,
			ActorUserID: studentID,
			At:          now,
		})
	})
	if err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.sendOtpBestEffort(ctx, studentID, code, order.ID)

	return PlaceOrderOutput{
		OrderID:  order.ID,
		Status:   string(order.Status),
		TotalLkr: order.TotalLkr,
		Otp:      code,
	}, nil
}

// sendOtpBestEffort never fails the caller.
func (u *OrderUsecase) sendOtpBestEffort(ctx context.Context, studentID int64, code string, orderID int64) {
	student, err := u.users.FindByID(ctx, studentID)
	if err != nil {
		u.log.Error("failed to load student for OTP notification", "order_id", orderID, "err", err)
		return
	}
	if err := u.notifier.SendOrderOtp(ctx, student.Email, code, orderID); err != nil {
		u.log.Error("failed to send OTP notification", "order_id", orderID, "err", err)
	}
}

// Transition performs one role-gated status change. DELIVERED is not
// reachable here; it requires OTP verification via VerifyDelivery.
func (u *OrderUsecase) Transition(ctx context.Context, orderID int64, actorID int64, role model.Role, next model.OrderStatus) (TransitionOutput, error) {
	if actorID <= 0 {
		return TransitionOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return TransitionOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	if next == model.OrderStatusDelivered {
		return TransitionOutput{}, NewHTTPError(http.StatusBadRequest, "otp verification required for delivery")
	}

	order, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return TransitionOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return TransitionOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	rel := dorder.RelationOf(order, actorID, role)
	if err := u.checkParty(role, rel, next); err != nil {
		return TransitionOutput{}, err
	}

	if err := dorder.AssertTransition(order.Status, next); err != nil {
		return TransitionOutput{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !dorder.CanTransition(role, rel, order.Status, next) {
		return TransitionOutput{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	now := u.clock.Now()
	claiming := order.Status == model.OrderStatusReadyForPickup && next == model.OrderStatusRiderAssigned

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if claiming {
			if err := r.Orders().AssignRiderCAS(ctx, orderID, actorID, order.Status, next); err != nil {
				return err
			}
		} else {
			if err := r.Orders().UpdateStatusCAS(ctx, orderID, order.Status, next); err != nil {
				return err
			}
		}
		return r.OrderEvents().Append(ctx, model.OrderStatusEvent{
			OrderID:     orderID,
			Status:      next,
			ActorUserID: actorID,
			At:          now,
		})
	})
	if err != nil {
		return TransitionOutput{}, u.mapWriteError(ctx, err, orderID, next)
	}

	return TransitionOutput{ID: orderID, Status: string(next)}, nil
}

// checkParty enforces ownership visibility before any state is revealed.
// Students never learn that someone else's order exists.
func (u *OrderUsecase) checkParty(role model.Role, rel dorder.Relation, next model.OrderStatus) error {
	switch role {
	case model.RoleStudent:
		if rel != dorder.RelationStudent {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
	case model.RoleSeller:
		if rel != dorder.RelationSeller {
			return NewHTTPError(http.StatusForbidden, "not your order")
		}
	case model.RoleRider:
		// every RIDER_ASSIGNED request counts as a claim attempt, whatever
		// the current status: an order already claimed by someone else must
		// be rejected by the transition table, not hidden behind ownership
		claiming := next == model.OrderStatusRiderAssigned
		if rel != dorder.RelationRider && !claiming {
			return NewHTTPError(http.StatusForbidden, "not your order")
		}
	default:
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}
	return nil
}

// mapWriteError turns a lost CAS race into the InvalidTransition the loser
// would have seen had it read the post-write state.
func (u *OrderUsecase) mapWriteError(ctx context.Context, err error, orderID int64, next model.OrderStatus) error {
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "order not found")
	}
	if errors.Is(err, repo.ErrConflict) {
		fresh, ferr := u.orders.FindByID(ctx, orderID)
		if ferr == nil {
			if terr := dorder.AssertTransition(fresh.Status, next); terr != nil {
				return NewHTTPError(http.StatusBadRequest, terr.Error())
			}
		}
		return NewHTTPError(http.StatusConflict, "conflict")
	}
	return NewHTTPError(http.StatusInternalServerError, "db error")
}

// VerifyDelivery is the only path to DELIVERED. The OTP state is evaluated
// against the freshly loaded order on every call, never cached.
func (u *OrderUsecase) VerifyDelivery(ctx context.Context, orderID int64, riderID int64, code string) (TransitionOutput, error) {
	if riderID <= 0 {
		return TransitionOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if !otpCodeRe.MatchString(code) {
		return TransitionOutput{}, NewHTTPError(http.StatusBadRequest, "otp must be 6 digits")
	}

	order, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return TransitionOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return TransitionOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if dorder.RelationOf(order, riderID, model.RoleRider) != dorder.RelationRider {
		return TransitionOutput{}, NewHTTPError(http.StatusForbidden, "not your order")
	}

	if err := dorder.AssertTransition(order.Status, model.OrderStatusDelivered); err != nil {
		return TransitionOutput{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	outcome := u.otp.Verify(code, order.OtpHash, order.OtpExpiresAt, order.OtpUsedAt, order.OtpAttempts)
	switch outcome {
	case otp.OutcomeAlreadyUsed:
		return TransitionOutput{}, NewHTTPError(http.StatusBadRequest, "otp already used")
	case otp.OutcomeExpired:
		return TransitionOutput{}, NewHTTPError(http.StatusBadRequest, "otp expired")
	case otp.OutcomeTooManyAttempts:
		return TransitionOutput{}, NewHTTPError(http.StatusTooManyRequests, "too many otp attempts")
	case otp.OutcomeInvalid:
		// the failed guess costs an attempt even though status is untouched;
		// a concurrent bump losing the CAS is fine, the cap held either way
		if err := u.orders.IncrementOtpAttemptsCAS(ctx, orderID, order.OtpAttempts); err != nil &&
			!errors.Is(err, repo.ErrConflict) {
			return TransitionOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return TransitionOutput{}, NewHTTPError(http.StatusBadRequest, "invalid otp")
	}

	now := u.clock.Now()
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Orders().MarkDeliveredCAS(ctx, orderID, now, order.OtpAttempts); err != nil {
			return err
		}
		return r.OrderEvents().Append(ctx, model.OrderStatusEvent{
			OrderID:     orderID,
			Status:      model.OrderStatusDelivered,
			ActorUserID: riderID,
			At:          now,
		})
	})
	if err != nil {
		return TransitionOutput{}, u.mapWriteError(ctx, err, orderID, model.OrderStatusDelivered)
	}

	return TransitionOutput{ID: orderID, Status: string(model.OrderStatusDelivered)}, nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, studentID int64) ([]OrderSummaryOutput, error) {
	if studentID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	orders, err := u.orders.ListByStudent(ctx, studentID, 50)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toOrderSummaries(orders), nil
}

func (u *OrderUsecase) GetMyOrder(ctx context.Context, studentID int64, orderID int64) (OrderDetailOutput, error) {
	if studentID <= 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	order, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderDetailOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return OrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	// someone else's order reads as nonexistent
	if order.StudentID != studentID {
		return OrderDetailOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
	}

	items, err := u.orderItems.ListByOrderID(ctx, orderID)
	if err != nil {
		return OrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	events, err := u.orderEvents.ListByOrderID(ctx, orderID)
	if err != nil {
		return OrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toOrderDetail(order, items, events), nil
}

func (u *OrderUsecase) ListShopOrders(ctx context.Context, sellerID int64, shopID int64) ([]OrderSummaryOutput, error) {
	if sellerID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	shop, err := u.shops.FindByID(ctx, shopID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, "shop not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if shop.SellerID != sellerID {
		return nil, NewHTTPError(http.StatusForbidden, "not your shop")
	}

	orders, err := u.orders.ListByShop(ctx, shopID, 100)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toOrderSummaries(orders), nil
}

// ListAvailableOrders returns unclaimed READY_FOR_PICKUP orders, oldest
// first, for any approved rider to claim.
func (u *OrderUsecase) ListAvailableOrders(ctx context.Context) ([]OrderSummaryOutput, error) {
	orders, err := u.orders.ListAvailableForRiders(ctx, 50)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toOrderSummaries(orders), nil
}

func (u *OrderUsecase) ListRiderOrders(ctx context.Context, riderID int64) ([]OrderSummaryOutput, error) {
	if riderID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	orders, err := u.orders.ListByRider(ctx, riderID, 50)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toOrderSummaries(orders), nil
}

type EarningsSummaryOutput struct {
	Period         string    `json:"period"`
	StartOfMonth   time.Time `json:"start_of_month"`
	GrossLkr       int64     `json:"gross_lkr"`
	CommissionLkr  int64     `json:"commission_lkr"`
	CommissionRate float64   `json:"commission_rate"`
	OrderCount     int64     `json:"order_count"`
}

// EarningsSummary is the seller's current-month view over COMPLETED orders:
// gross revenue (sum of subtotals) and the commission already recorded on
// each order at placement.
func (u *OrderUsecase) EarningsSummary(ctx context.Context, sellerID int64) (EarningsSummaryOutput, error) {
	if sellerID <= 0 {
		return EarningsSummaryOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	now := u.clock.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	sum, err := u.orders.SumEarnings(ctx, sellerID, startOfMonth)
	if err != nil {
		return EarningsSummaryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return EarningsSummaryOutput{
		Period:         "current_month",
		StartOfMonth:   startOfMonth,
		GrossLkr:       sum.GrossLkr,
		CommissionLkr:  sum.CommissionLkr,
		CommissionRate: u.pricing.Config().CommissionRate,
		OrderCount:     sum.OrderCount,
	}, nil
}

func toOrderSummaries(orders []model.Order) []OrderSummaryOutput {
	outs := make([]OrderSummaryOutput, 0, len(orders))
	for _, o := range orders {
		outs = append(outs, OrderSummaryOutput{
			ID:          o.ID,
			Status:      string(o.Status),
			TotalLkr:    o.TotalLkr,
			ShopID:      o.ShopID,
			RiderID:     o.RiderID,
			DistanceKm:  o.DistanceKm,
			RiderFeeLkr: o.RiderFeeLkr,
			CreatedAt:   o.CreatedAt,
		})
	}
	return outs
}

func toOrderDetail(o model.Order, items []model.OrderItem, events []model.OrderStatusEvent) OrderDetailOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			MenuItemID:   it.MenuItemID,
			Name:         it.NameSnapshot,
			UnitPriceLkr: it.UnitPriceLkrSnapshot,
			Qty:          it.Qty,
			LineTotalLkr: it.LineTotalLkr,
		})
	}
	outEvents := make([]StatusEventOutput, 0, len(events))
	for _, ev := range events {
		outEvents = append(outEvents, StatusEventOutput{
			Status:      string(ev.Status),
			ActorUserID: ev.ActorUserID,
			At:          ev.At,
		})
	}
	return OrderDetailOutput{
		ID:              o.ID,
		Status:          string(o.Status),
		Items:           outItems,
		SubtotalLkr:     o.SubtotalLkr,
		TotalLkr:        o.TotalLkr,
		DeliveryAddress: o.DeliveryAddress,
		ShopID:          o.ShopID,
		DistanceKm:      o.DistanceKm,
		RiderFeeLkr:     o.RiderFeeLkr,
		StatusHistory:   outEvents,
		CreatedAt:       o.CreatedAt,
	}
}
