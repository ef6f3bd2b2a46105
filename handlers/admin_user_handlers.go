package handlers

import (
	"github.com/gofiber/fiber/v2"

	"streetadmin/viewmodels"
)

var roleFilter = filter{Key: "role", Label: "Role", Options: []option{
	{Value: "", Label: "All roles"},
	{Value: "super_admin", Label: "Super admin"},
	{Value: "admin", Label: "Admin"},
	{Value: "support", Label: "Support"},
}}

func (h *Handler) adminUsersListing() listing[viewmodels.AdminUser] {
	return listing[viewmodels.AdminUser]{
		Title:             "Admin users",
		SearchPlaceholder: "Search by name or email",
		Filters:           []filter{roleFilter},
		EmptyMessage:      "No admin users found.",
		EmptyIcon:         "shield",
		Columns:           adminUserColumns(),
		RowHref:           func(a viewmodels.AdminUser) string { return "/admin-users/" + a.ID },
		Fetch:             h.q.AdminUsers,
	}
}

// HandleListAdminUsers renders the staff accounts page.
// GET /admin-users
func (h *Handler) HandleListAdminUsers(c *fiber.Ctx) error {
	return servePage(h, c, h.adminUsersListing())
}

// GET /x/admin-users
func (h *Handler) HandleAdminUsersTable(c *fiber.Ctx) error {
	return serveFragment(h, c, h.adminUsersListing())
}

// GET /admin-users/:adminId
func (h *Handler) HandleGetAdminUser(c *fiber.Ctx) error {
	admin, err := h.q.AdminUser(c.UserContext(), token(c), c.Params("adminId"))
	if err != nil {
		return err
	}
	return h.render(c, "admin_users/show", admin.Name, fiber.Map{"Admin": admin})
}
