package middleware

import (
	"github.com/gofiber/fiber/v2"

	"digitalmetrics_backend/pkg/database"
	"digitalmetrics_backend/pkg/rbac"
	"digitalmetrics_backend/pkg/utils/jwt"
)

// RequirePermission gates a route on the role's static grant set.
func RequirePermission(permission rbac.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*jwt.Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}

		if !rbac.HasPermission(rbac.Role(claims.Role), permission) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have permission to access this resource",
			})
		}

		return c.Next()
	}
}

// RequireDatabase rejects requests that need persistence while the server
// runs in offline mode (no DATABASE_URL configured).
func RequireDatabase() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !database.Available() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Database not configured",
			})
		}
		return c.Next()
	}
}
