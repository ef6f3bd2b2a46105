package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// JSON mirror of the portal. Lists share the page listings so filters, sort
// and pagination behave exactly like the tables.

// GET /api/v1/admin/users
func (h *Handler) HandleAPIListUsers(c *fiber.Ctx) error {
	return serveJSON(h, c, h.usersListing())
}

// GET /api/v1/admin/users/options?search=
func (h *Handler) HandleAPIUserOptions(c *fiber.Ctx) error {
	opts, err := h.q.UserOptions(c.UserContext(), token(c), c.Query("search"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "data": opts})
}

// GET /api/v1/admin/users/:userId
func (h *Handler) HandleAPIGetUser(c *fiber.Ctx) error {
	return serveDetail(c, func(ctx context.Context, tok string) (any, error) {
		return h.q.User(ctx, tok, c.Params("userId"))
	})
}

// GET /api/v1/admin/retailers
func (h *Handler) HandleAPIListRetailers(c *fiber.Ctx) error {
	return serveJSON(h, c, h.retailersListing())
}

// GET /api/v1/admin/retailers/:retailerId
func (h *Handler) HandleAPIGetRetailer(c *fiber.Ctx) error {
	return serveDetail(c, func(ctx context.Context, tok string) (any, error) {
		return h.q.Retailer(ctx, tok, c.Params("retailerId"))
	})
}

// GET /api/v1/admin/couriers
func (h *Handler) HandleAPIListCouriers(c *fiber.Ctx) error {
	return serveJSON(h, c, h.couriersListing())
}

// GET /api/v1/admin/couriers/:courierId
func (h *Handler) HandleAPIGetCourier(c *fiber.Ctx) error {
	return serveDetail(c, func(ctx context.Context, tok string) (any, error) {
		return h.q.Courier(ctx, tok, c.Params("courierId"))
	})
}

// GET /api/v1/admin/orders
func (h *Handler) HandleAPIListOrders(c *fiber.Ctx) error {
	l := h.ordersListing()
	l.Filters = append(l.Filters, filter{Key: "vendorId"}, filter{Key: "userId"})
	return serveJSON(h, c, l)
}

// GET /api/v1/admin/orders/:orderId
func (h *Handler) HandleAPIGetOrder(c *fiber.Ctx) error {
	return serveDetail(c, func(ctx context.Context, tok string) (any, error) {
		return h.q.Order(ctx, tok, c.Params("orderId"))
	})
}

// GET /api/v1/admin/referral-codes
func (h *Handler) HandleAPIListReferralCodes(c *fiber.Ctx) error {
	l := h.referralListing()
	l.Filters = append(l.Filters, filter{Key: "ownerId"})
	return serveJSON(h, c, l)
}

// GET /api/v1/admin/admin-users
func (h *Handler) HandleAPIListAdminUsers(c *fiber.Ctx) error {
	return serveJSON(h, c, h.adminUsersListing())
}

// GET /api/v1/admin/admin-users/:adminId
func (h *Handler) HandleAPIGetAdminUser(c *fiber.Ctx) error {
	return serveDetail(c, func(ctx context.Context, tok string) (any, error) {
		return h.q.AdminUser(ctx, tok, c.Params("adminId"))
	})
}

func serveDetail(c *fiber.Ctx, get func(ctx context.Context, tok string) (any, error)) error {
	v, err := get(c.UserContext(), token(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "data": v})
}
