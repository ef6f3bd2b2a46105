package middleware

import (
	"github.com/gofiber/fiber/v2"

	"streetadmin/apperr"
	"streetadmin/utils"
)

// RoleRequired allows the request through when the session role is one of
// roles.
func RoleRequired(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole, ok := c.Locals("userRole").(string)
		if !ok {
			return apperr.ForbiddenErr("Your account has no role assigned.")
		}
		normalized, _ := utils.ValidateAndNormalizeRole(userRole)

		for _, role := range roles {
			if normalized == role {
				return c.Next()
			}
		}

		return apperr.ForbiddenErr("You do not have permission to view this page.")
	}
}

// AdminRequired gates staff management to super admins and admins.
func AdminRequired(c *fiber.Ctx) error {
	role, ok := c.Locals("userRole").(string)
	if !ok || !utils.CanManageAdmins(role) {
		return apperr.ForbiddenErr("Admin access required.")
	}
	return c.Next()
}
