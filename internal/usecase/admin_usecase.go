package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type AdminOrderListOutput struct {
	Orders []OrderSummaryOutput `json:"orders"`
	Total  int64                `json:"total"`
	Page   int                  `json:"page"`
	Limit  int                  `json:"limit"`
}

// AdminUsecase covers the back-office surface: approval decisions on users
// and shops, the filtered order list, and reading the audit trail. Every
// approval decision writes an audit row recording before/after.
type AdminUsecase struct {
	users  repo.UserRepository
	shops  repo.ShopRepository
	orders repo.OrderRepository
	audits repo.AuditLogRepository
	clock  Clock
}

func NewAdminUsecase(
	users repo.UserRepository,
	shops repo.ShopRepository,
	orders repo.OrderRepository,
	audits repo.AuditLogRepository,
	clock Clock,
) *AdminUsecase {
	return &AdminUsecase{users: users, shops: shops, orders: orders, audits: audits, clock: clock}
}

// UpdateUserApproval approves, rejects or suspends a seller or rider account.
// Student and admin accounts are not subject to approval.
func (u *AdminUsecase) UpdateUserApproval(ctx context.Context, adminID, userID int64, status model.ApprovalStatus) (UserDTO, error) {
	if !validApprovalDecision(status) {
		return UserDTO{}, NewHTTPError(http.StatusBadRequest, "invalid approval status")
	}

	user, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return UserDTO{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user.Role != model.RoleSeller && user.Role != model.RoleRider {
		return UserDTO{}, NewHTTPError(http.StatusBadRequest, "only sellers and riders are subject to approval")
	}

	before := user.ApprovalStatus
	if err := u.users.UpdateApproval(ctx, userID, status); err != nil {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	user.ApprovalStatus = status

	u.writeAudit(ctx, adminID, model.AuditActionUpdateUserApproval, model.AuditResourceUser, userID,
		map[string]any{"approval_status": before},
		map[string]any{"approval_status": status},
	)
	return toUserDTO(user), nil
}

// UpdateShopApproval approves, rejects or suspends a shop. A rejection may
// carry a reason shown to the seller.
func (u *AdminUsecase) UpdateShopApproval(ctx context.Context, adminID, shopID int64, status model.ApprovalStatus, rejectionReason string) (model.Shop, error) {
	if !validApprovalDecision(status) {
		return model.Shop{}, NewHTTPError(http.StatusBadRequest, "invalid approval status")
	}
	if status != model.ApprovalRejected {
		rejectionReason = ""
	}
	if len(rejectionReason) > 500 {
		return model.Shop{}, NewHTTPError(http.StatusBadRequest, "rejection reason too long")
	}

	shop, err := u.shops.FindByID(ctx, shopID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Shop{}, NewHTTPError(http.StatusNotFound, "shop not found")
	}
	if err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	before := shop.ApprovalStatus
	if err := u.shops.UpdateApproval(ctx, shopID, status, rejectionReason); err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	shop.ApprovalStatus = status
	shop.RejectionReason = rejectionReason

	u.writeAudit(ctx, adminID, model.AuditActionUpdateShopApproval, model.AuditResourceShop, shopID,
		map[string]any{"approval_status": before},
		map[string]any{"approval_status": status, "rejection_reason": rejectionReason},
	)
	return shop, nil
}

func (u *AdminUsecase) ListOrders(ctx context.Context, f repo.AdminOrderListFilter) (AdminOrderListOutput, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Status != "" && !validOrderStatus(f.Status) {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status filter")
	}

	orders, total, err := u.orders.ListAdmin(ctx, f)
	if err != nil {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return AdminOrderListOutput{
		Orders: toOrderSummaries(orders),
		Total:  total,
		Page:   f.Page,
		Limit:  f.Limit,
	}, nil
}

func (u *AdminUsecase) ListAuditLogs(ctx context.Context, f repo.AuditLogFilter) ([]model.AuditLog, error) {
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
	logs, err := u.audits.List(ctx, f)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return logs, nil
}

// writeAudit is best-effort: the decision itself already committed.
func (u *AdminUsecase) writeAudit(ctx context.Context, actorID int64, action model.AuditAction, resource model.AuditResourceType, resourceID int64, before, after map[string]any) {
	beforeJSON, _ := json.Marshal(before)
	afterJSON, _ := json.Marshal(after)
	_ = u.audits.Create(ctx, model.AuditLog{
		ActorUserID:  actorID,
		Action:       action,
		ResourceType: resource,
		ResourceID:   resourceID,
		BeforeJSON:   string(beforeJSON),
		AfterJSON:    string(afterJSON),
		CreatedAt:    u.clock.Now(),
	})
}

func validApprovalDecision(s model.ApprovalStatus) bool {
	switch s {
	case model.ApprovalApproved, model.ApprovalRejected, model.ApprovalSuspended:
		return true
	}
	return false
}

func validOrderStatus(s string) bool {
	for _, st := range model.OrderStatuses {
		if string(st) == s {
			return true
		}
	}
	return false
}
