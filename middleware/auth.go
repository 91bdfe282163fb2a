package middleware

import (
	"github.com/gofiber/fiber/v2"

	"academy/config"
	"academy/models"
	"academy/utils"
)

// AuthMiddleware rejects unauthenticated requests and stores the caller's
// id and role in the request locals.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, role, err := utils.ExtractUserFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		c.Locals("userID", userID)
		c.Locals("role", role)
		return c.Next()
	}
}

// RequireRole gates a route on the escalating capability set: a MODERATOR
// gate admits moderators and admins.
func RequireRole(cfg *config.Config, min models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, role, err := utils.ExtractUserFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		if !role.AtLeast(min) {
			return utils.Forbidden(c, "Insufficient role")
		}
		c.Locals("userID", userID)
		c.Locals("role", role)
		return c.Next()
	}
}

// UserID reads the authenticated user id set by AuthMiddleware.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals("userID").(string)
	return id
}

// UserRole reads the authenticated role set by AuthMiddleware.
func UserRole(c *fiber.Ctx) models.Role {
	role, _ := c.Locals("role").(models.Role)
	if !role.Valid() {
		return models.RoleStudent
	}
	return role
}
