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

var vehicleOptions = []option{
	{Value: "bicycle", Label: "Bicycle"},
	{Value: "motorbike", Label: "Motorbike"},
	{Value: "car", Label: "Car"},
	{Value: "van", Label: "Van"},
}

func (h *Handler) couriersListing() listing[viewmodels.Courier] {
	return listing[viewmodels.Courier]{
		Title:             "Couriers",
		SearchPlaceholder: "Search by name or phone",
		Filters:           []filter{statusFilter},
		EmptyMessage:      "No couriers match your search.",
		EmptyIcon:         "bike",
		Columns:           courierColumns(),
		RowHref:           func(r viewmodels.Courier) string { return "/couriers/" + r.ID },
		Fetch:             h.q.Couriers,
	}
}

// GET /couriers
func (h *Handler) HandleListCouriers(c *fiber.Ctx) error {
	return servePage(h, c, h.couriersListing())
}

// GET /x/couriers
func (h *Handler) HandleCouriersTable(c *fiber.Ctx) error {
	return serveFragment(h, c, h.couriersListing())
}

// HandleGetCourier renders a courier with the deliveries they handled last.
// GET /couriers/:courierId
func (h *Handler) HandleGetCourier(c *fiber.Ctx) error {
	id := c.Params("courierId")
	tok := token(c)

	var (
		courier   viewmodels.Courier
		orders    []viewmodels.Order
		ordersErr string
	)
	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() error {
		var err error
		courier, err = h.q.Courier(ctx, tok, id)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = h.q.RecentOrders(ctx, tok, "courierId", id, recentOrdersLimit)
		ordersErr = h.sectionError(err)
		return unauthorizedOnly(err)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	return h.render(c, "couriers/show", courier.Name, fiber.Map{
		"Courier":      courier,
		"RecentOrders": orders,
		"OrdersErr":    ordersErr,
	})
}

type courierForm struct {
	Phone        string `form:"phone"`
	VehicleType  string `form:"vehicleType"`
	LicensePlate string `form:"licensePlate"`
}

func vehicleChoices(selected string) []option {
	out := make([]option, 0, len(vehicleOptions))
	for _, o := range vehicleOptions {
		o.Selected = o.Label == selected || o.Value == selected
		out = append(out, o)
	}
	return out
}

// GET /couriers/:courierId/edit
func (h *Handler) HandleEditCourierForm(c *fiber.Ctx) error {
	courier, err := h.q.Courier(c.UserContext(), token(c), c.Params("courierId"))
	if err != nil {
		return err
	}
	form := courierForm{}
	if courier.Phone != viewmodels.NoPhone {
		form.Phone = courier.Phone
	}
	if courier.LicensePlate != viewmodels.Placeholder {
		form.LicensePlate = courier.LicensePlate
	}
	return h.render(c, "couriers/edit", "Edit "+courier.Name, fiber.Map{
		"Courier":  courier,
		"Form":     form,
		"Vehicles": vehicleChoices(courier.Vehicle),
	})
}

// POST /couriers/:courierId/edit
func (h *Handler) HandleUpdateCourier(c *fiber.Ctx) error {
	id := c.Params("courierId")
	var form courierForm
	if err := c.BodyParser(&form); err != nil {
		return apperr.InvalidErr("The submitted form could not be read.", nil)
	}

	patch := models.CourierPatch{
		Phone:        utils.OptionalString(form.Phone),
		VehicleType:  utils.OptionalString(form.VehicleType),
		LicensePlate: utils.OptionalString(form.LicensePlate),
	}
	err := validation.Struct(patch)
	if err == nil {
		_, err = h.q.UpdateCourier(c.UserContext(), token(c), id, patch)
	}
	if err != nil {
		if ae, ok := apperr.As(err); ok && ae.Kind == apperr.Invalid {
			courier, cerr := h.q.Courier(c.UserContext(), token(c), id)
			if cerr != nil {
				return cerr
			}
			c.Status(fiber.StatusUnprocessableEntity)
			return h.render(c, "couriers/edit", "Edit "+courier.Name, fiber.Map{
				"Courier": courier, "Form": form, "Vehicles": vehicleChoices(form.VehicleType),
				"Errors": ae.Fields, "Error": ae.PublicMsg,
			})
		}
		return err
	}
	return h.redirectWithFlash(c, "/couriers/"+id, flash.Success, "Courier updated.")
}

// HandleSetCourierStatus blocks or unblocks a courier.
// POST /couriers/:courierId/status
func (h *Handler) HandleSetCourierStatus(c *fiber.Ctx) error {
	id := c.Params("courierId")
	blocked := c.FormValue("blocked") == "true"

	courier, err := h.q.SetCourierBlocked(c.UserContext(), token(c), id, blocked)
	if err != nil {
		if apperr.Is(err, apperr.Unauthorized) {
			return err
		}
		return h.redirectWithFlash(c, "/couriers/"+id, flash.Error, apperr.PublicMessage(err))
	}

	msg := courier.Name + " has been unblocked."
	if blocked {
		msg = courier.Name + " has been blocked."
	}
	return h.redirectWithFlash(c, "/couriers/"+id, flash.Success, msg)
}
