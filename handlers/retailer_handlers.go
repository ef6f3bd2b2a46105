package handlers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"streetadmin/apperr"
	"streetadmin/flash"
	"streetadmin/models"
	"streetadmin/utils"
	"streetadmin/validation"
	"streetadmin/viewmodels"
)

func (h *Handler) retailersListing() listing[viewmodels.Retailer] {
	return listing[viewmodels.Retailer]{
		Title:             "Retailers",
		SearchPlaceholder: "Search by store name",
		Filters:           []filter{statusFilter},
		EmptyMessage:      "No retailers match your search.",
		EmptyIcon:         "store",
		Columns:           retailerColumns(),
		RowHref:           func(r viewmodels.Retailer) string { return "/retailers/" + r.ID },
		Fetch:             h.q.Retailers,
	}
}

// HandleListRetailers renders the retailers page.
// GET /retailers
func (h *Handler) HandleListRetailers(c *fiber.Ctx) error {
	return servePage(h, c, h.retailersListing())
}

// GET /x/retailers
func (h *Handler) HandleRetailersTable(c *fiber.Ctx) error {
	return serveFragment(h, c, h.retailersListing())
}

// HandleGetRetailer renders a retailer with its recent orders.
// GET /retailers/:retailerId
func (h *Handler) HandleGetRetailer(c *fiber.Ctx) error {
	id := c.Params("retailerId")
	tok := token(c)

	var (
		retailer  viewmodels.Retailer
		orders    []viewmodels.Order
		ordersErr string
	)
	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() error {
		var err error
		retailer, err = h.q.Retailer(ctx, tok, id)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = h.q.RecentOrders(ctx, tok, "vendorId", id, recentOrdersLimit)
		ordersErr = h.sectionError(err)
		return unauthorizedOnly(err)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	return h.render(c, "retailers/show", retailer.Name, fiber.Map{
		"Retailer":     retailer,
		"RecentOrders": orders,
		"OrdersErr":    ordersErr,
	})
}

type retailerForm struct {
	StoreName string `form:"storeName"`
	Email     string `form:"email"`
	Phone     string `form:"phone"`
	Category  string `form:"category"`
}

// GET /retailers/:retailerId/edit
func (h *Handler) HandleEditRetailerForm(c *fiber.Ctx) error {
	r, err := h.q.Retailer(c.UserContext(), token(c), c.Params("retailerId"))
	if err != nil {
		return err
	}
	form := retailerForm{StoreName: r.Name}
	if r.Email != viewmodels.NoEmail {
		form.Email = r.Email
	}
	if r.Phone != viewmodels.NoPhone {
		form.Phone = r.Phone
	}
	if r.Category != viewmodels.Unknown {
		form.Category = r.Category
	}
	return h.render(c, "retailers/edit", "Edit "+r.Name, fiber.Map{"Retailer": r, "Form": form})
}

// HandleUpdateRetailer saves the retailer edit form.
// POST /retailers/:retailerId/edit
func (h *Handler) HandleUpdateRetailer(c *fiber.Ctx) error {
	id := c.Params("retailerId")
	var form retailerForm
	if err := c.BodyParser(&form); err != nil {
		return apperr.InvalidErr("The submitted form could not be read.", nil)
	}

	patch := models.VendorPatch{
		StoreName: utils.OptionalString(form.StoreName),
		Email:     utils.OptionalString(form.Email),
		Phone:     utils.OptionalString(form.Phone),
		Category:  utils.OptionalString(form.Category),
	}
	err := validation.Struct(patch)
	if err == nil {
		_, err = h.q.UpdateRetailer(c.UserContext(), token(c), id, patch)
	}
	if err != nil {
		if ae, ok := apperr.As(err); ok && ae.Kind == apperr.Invalid {
			r, rerr := h.q.Retailer(c.UserContext(), token(c), id)
			if rerr != nil {
				return rerr
			}
			c.Status(fiber.StatusUnprocessableEntity)
			return h.render(c, "retailers/edit", "Edit "+r.Name, fiber.Map{
				"Retailer": r, "Form": form, "Errors": ae.Fields, "Error": ae.PublicMsg,
			})
		}
		return err
	}
	return h.redirectWithFlash(c, "/retailers/"+id, flash.Success, "Retailer updated.")
}

// HandleSetRetailerOpen opens or closes a store.
// POST /retailers/:retailerId/open
func (h *Handler) HandleSetRetailerOpen(c *fiber.Ctx) error {
	id := c.Params("retailerId")
	open := c.FormValue("open") == "true"

	r, err := h.q.SetRetailerOpen(c.UserContext(), token(c), id, open)
	if err != nil {
		if apperr.Is(err, apperr.Unauthorized) {
			return err
		}
		return h.redirectWithFlash(c, "/retailers/"+id, flash.Error, apperr.PublicMessage(err))
	}

	msg := r.Name + " is now closed."
	if open {
		msg = r.Name + " is now open."
	}
	return h.redirectWithFlash(c, "/retailers/"+id, flash.Success, msg)
}
