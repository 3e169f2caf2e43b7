package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SEP491/FitBridge-Web-sub001/internal/domain/model"
)

// BackofficeRoleGuard admits the back-office roles only. Finer-grained policy
// (which gyms an owner may see, etc.) is enforced by the auth service.
func BackofficeRoleGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRole := c.Get(CtxOperatorRole)
			role, ok := rawRole.(string)
			if !ok || role == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			if !model.Role(role).IsBackoffice() {
				return c.JSON(http.StatusForbidden, errorJSON("back office only"))
			}

			return next(c)
		}
	}
}
