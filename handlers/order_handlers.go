package handlers

import (
	"github.com/gofiber/fiber/v2"

	"streetadmin/viewmodels"
)

func (h *Handler) ordersListing() listing[viewmodels.Order] {
	return listing[viewmodels.Order]{
		Title:             "Orders",
		SearchPlaceholder: "Search by order number or customer",
		Filters:           []filter{orderStatusFilter},
		EmptyMessage:      "No orders match your filters.",
		EmptyIcon:         "receipt",
		Columns:           orderColumns(),
		RowHref:           func(o viewmodels.Order) string { return "/orders/" + o.ID },
		Fetch:             h.q.Orders,
	}
}

// HandleListOrders renders the orders page. The table can be narrowed with
// the status filter and the vendorId and userId parameters.
// GET /orders
func (h *Handler) HandleListOrders(c *fiber.Ctx) error {
	return servePage(h, c, h.ordersListing())
}

// GET /x/orders
func (h *Handler) HandleOrdersTable(c *fiber.Ctx) error {
	l := h.ordersListing()
	l.Filters = append(l.Filters, filter{Key: "vendorId"}, filter{Key: "userId"})
	return serveFragment(h, c, l)
}

// HandleGetOrder renders an order by id. It does not depend on the orders
// list having been loaded, so the page can be linked to directly.
// GET /orders/:orderId
func (h *Handler) HandleGetOrder(c *fiber.Ctx) error {
	order, err := h.q.Order(c.UserContext(), token(c), c.Params("orderId"))
	if err != nil {
		return err
	}
	return h.render(c, "orders/show", "Order "+order.Number, fiber.Map{"Order": order})
}
