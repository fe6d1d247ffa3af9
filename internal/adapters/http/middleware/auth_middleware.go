package middleware

import (
	"strings"

	"memtrack/internal/config"
	"memtrack/internal/core/domain"
	"memtrack/internal/pkg/jwt"
	"memtrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates authentication middleware. The credential is
// carried per request (bearer header or cookie), never process-wide.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		// 1. Try to get token from cookie first
		accessToken = c.Cookies("access_token")

		// 2. If not in cookie, try Authorization header
		if accessToken == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				accessToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		// 3. No token found
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 4. Validate token
		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 5. Set identity in context
		c.Locals("userID", claims.UserID)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RequirePermission creates authorization middleware consulting the
// canonical policy table. Runs after AuthMiddleware.
func RequirePermission(action domain.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		if !domain.Permit(domain.Role(role), action) {
			return response.Forbidden(c, "You don't have permission to perform this action")
		}

		return c.Next()
	}
}

// AdminOnly middleware allows only the Admin role. Officer administration
// routes are gated with this before any other logic.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		if domain.Role(role) != domain.RoleAdmin {
			return response.Forbidden(c, "Access denied. Admin privileges required.")
		}

		return c.Next()
	}
}
