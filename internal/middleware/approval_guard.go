package middleware

import (
	"net/http"

	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/labstack/echo/v4"
)

// RequireApproval blocks sellers and riders whose account is not APPROVED.
// Students and admins pass through; they are not subject to approval.
func RequireApproval(userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get(CtxUserIDKey).(int64)
			if !ok || userID <= 0 {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			user, err := userRepo.FindByID(c.Request().Context(), userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			if !user.IsActive {
				return c.JSON(http.StatusForbidden, errorJSON("account disabled"))
			}

			if user.Role == model.RoleSeller || user.Role == model.RoleRider {
				if user.ApprovalStatus != model.ApprovalApproved {
					return c.JSON(http.StatusForbidden, errorJSON("account pending approval"))
				}
			}

			return next(c)
		}
	}
}
