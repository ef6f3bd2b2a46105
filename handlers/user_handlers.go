package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"streetadmin/apperr"
	"streetadmin/flash"
	"streetadmin/models"
	"streetadmin/utils"
	"streetadmin/validation"
	"streetadmin/viewmodels"
)

const recentOrdersLimit = 5

func (h *Handler) usersListing() listing[viewmodels.User] {
	return listing[viewmodels.User]{
		Title:             "Customers",
		SearchPlaceholder: "Search by name, email or phone",
		Filters:           []filter{statusFilter},
		EmptyMessage:      "No customers match your search.",
		EmptyIcon:         "users",
		Columns:           userColumns(),
		RowHref:           func(u viewmodels.User) string { return "/users/" + u.ID },
		Fetch:             h.q.Users,
	}
}

// HandleListUsers renders the customers page.
// GET /users
func (h *Handler) HandleListUsers(c *fiber.Ctx) error {
	return servePage(h, c, h.usersListing())
}

// HandleUsersTable renders the customers table fragment.
// GET /x/users
func (h *Handler) HandleUsersTable(c *fiber.Ctx) error {
	return serveFragment(h, c, h.usersListing())
}

type userSections struct {
	Notes        []viewmodels.Note
	NotesErr     string
	Referral     *viewmodels.ReferralCode
	ReferralErr  string
	RecentOrders []viewmodels.Order
	OrdersErr    string
}

// HandleGetUser renders a customer with devices, addresses, notes, referral
// code and recent orders. Only the customer itself is required; the other
// sections show their own error.
// GET /users/:userId
func (h *Handler) HandleGetUser(c *fiber.Ctx) error {
	id := c.Params("userId")
	tok := token(c)

	var (
		user     viewmodels.User
		sections userSections
	)
	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() error {
		var err error
		user, err = h.q.User(ctx, tok, id)
		return err
	})
	g.Go(func() error {
		notes, err := h.q.UserNotes(ctx, tok, id)
		sections.Notes, sections.NotesErr = notes, h.sectionError(err)
		return unauthorizedOnly(err)
	})
	g.Go(func() error {
		rc, err := h.q.OwnedReferralCode(ctx, tok, id)
		sections.Referral, sections.ReferralErr = rc, h.sectionError(err)
		return unauthorizedOnly(err)
	})
	g.Go(func() error {
		orders, err := h.q.RecentOrders(ctx, tok, "userId", id, recentOrdersLimit)
		sections.RecentOrders, sections.OrdersErr = orders, h.sectionError(err)
		return unauthorizedOnly(err)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	return h.render(c, "users/show", user.DisplayName, fiber.Map{
		"User":     user,
		"Sections": sections,
	})
}

// sectionError logs a failed page section and returns the message shown in
// its place.
func (h *Handler) sectionError(err error) string {
	if err == nil || apperr.Is(err, apperr.Unauthorized) || errors.Is(err, context.Canceled) {
		return ""
	}
	h.log.WithError(err).Warn("page section failed")
	return apperr.PublicMessage(err)
}

// unauthorizedOnly lets a backend 401 fail the whole page.
func unauthorizedOnly(err error) error {
	if apperr.Is(err, apperr.Unauthorized) {
		return err
	}
	return nil
}

type userForm struct {
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
	Email     string `form:"email"`
	Phone     string `form:"phone"`
}

func (f userForm) patch() models.UserPatch {
	return models.UserPatch{
		FirstName: utils.OptionalString(f.FirstName),
		LastName:  utils.OptionalString(f.LastName),
		Email:     utils.OptionalString(f.Email),
		Phone:     utils.OptionalString(f.Phone),
	}
}

// HandleEditUserForm renders the customer edit form.
// GET /users/:userId/edit
func (h *Handler) HandleEditUserForm(c *fiber.Ctx) error {
	user, err := h.q.User(c.UserContext(), token(c), c.Params("userId"))
	if err != nil {
		return err
	}
	form := userForm{FirstName: user.FirstName, LastName: user.LastName}
	if user.FirstName == viewmodels.Unknown {
		form.FirstName = ""
	}
	if user.LastName == viewmodels.Unknown {
		form.LastName = ""
	}
	if user.Email != viewmodels.NoEmail {
		form.Email = user.Email
	}
	if user.Phone != viewmodels.NoPhone {
		form.Phone = user.Phone
	}
	return h.render(c, "users/edit", "Edit "+user.DisplayName, fiber.Map{"User": user, "Form": form})
}

// HandleUpdateUser saves the customer edit form.
// POST /users/:userId/edit
func (h *Handler) HandleUpdateUser(c *fiber.Ctx) error {
	id := c.Params("userId")
	var form userForm
	if err := c.BodyParser(&form); err != nil {
		return apperr.InvalidErr("The submitted form could not be read.", nil)
	}

	patch := form.patch()
	err := validation.Struct(patch)
	if err == nil {
		_, err = h.q.UpdateUser(c.UserContext(), token(c), id, patch)
	}
	if err != nil {
		if ae, ok := apperr.As(err); ok && ae.Kind == apperr.Invalid {
			user, uerr := h.q.User(c.UserContext(), token(c), id)
			if uerr != nil {
				return uerr
			}
			c.Status(fiber.StatusUnprocessableEntity)
			return h.render(c, "users/edit", "Edit "+user.DisplayName, fiber.Map{
				"User": user, "Form": form, "Errors": ae.Fields, "Error": ae.PublicMsg,
			})
		}
		return err
	}

	return h.redirectWithFlash(c, "/users/"+id, flash.Success, "Customer updated.")
}

// HandleSetUserStatus blocks or unblocks a customer.
// POST /users/:userId/status
func (h *Handler) HandleSetUserStatus(c *fiber.Ctx) error {
	id := c.Params("userId")
	blocked := c.FormValue("blocked") == "true"

	user, err := h.q.SetUserBlocked(c.UserContext(), token(c), id, blocked)
	if err != nil {
		if apperr.Is(err, apperr.Unauthorized) {
			return err
		}
		return h.redirectWithFlash(c, "/users/"+id, flash.Error, apperr.PublicMessage(err))
	}

	msg := user.DisplayName + " has been unblocked."
	if blocked {
		msg = user.DisplayName + " has been blocked."
	}
	return h.redirectWithFlash(c, "/users/"+id, flash.Success, msg)
}

// HandleAddUserNote adds an internal note to a customer.
// POST /users/:userId/notes
func (h *Handler) HandleAddUserNote(c *fiber.Ctx) error {
	id := c.Params("userId")
	note := models.NoteCreate{Content: c.FormValue("content")}

	err := validation.Struct(note)
	if err == nil {
		_, err = h.q.AddUserNote(c.UserContext(), token(c), id, note)
	}
	if err != nil {
		if apperr.Is(err, apperr.Unauthorized) {
			return err
		}
		msg := apperr.PublicMessage(err)
		if ae, ok := apperr.As(err); ok && ae.Fields["content"] != "" {
			msg = "Note: " + ae.Fields["content"]
		}
		return h.redirectWithFlash(c, "/users/"+id+"#notes", flash.Error, msg)
	}
	return h.redirectWithFlash(c, "/users/"+id+"#notes", flash.Success, "Note added.")
}
