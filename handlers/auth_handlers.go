package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"streetadmin/apperr"
	"streetadmin/auth"
	"streetadmin/flash"
	"streetadmin/middleware"
	"streetadmin/models"
	"streetadmin/utils"
	"streetadmin/validation"
	"streetadmin/viewmodels"
)

const homePath = "/users"

// HandleLoginForm renders the sign-in page. Signed-in admins go straight on.
// GET /login
func (h *Handler) HandleLoginForm(c *fiber.Ctx) error {
	next := utils.SafeRedirect(c.Query("next"), homePath)
	if tok := c.Cookies(middleware.SessionCookie); tok != "" {
		if _, err := h.issuer.Parse(tok); err == nil {
			return c.Redirect(next, fiber.StatusFound)
		}
	}
	return h.renderLogin(c, fiber.StatusOK, models.LoginRequest{}, next, "", nil)
}

// HandleLogin signs an admin in against the STREET API and starts a portal
// session.
// POST /login
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return h.renderLogin(c, fiber.StatusBadRequest, req, "", "The submitted form could not be read.", nil)
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	next := utils.SafeRedirect(c.FormValue("next"), homePath)

	if err := validation.Struct(req); err != nil {
		ae, _ := apperr.As(err)
		return h.renderLogin(c, fiber.StatusUnprocessableEntity, req, next, ae.PublicMsg, ae.Fields)
	}

	res, err := h.authn.Login(c.UserContext(), req)
	if err != nil {
		switch {
		case apperr.Is(err, apperr.Unauthorized), apperr.Is(err, apperr.Invalid), apperr.Is(err, apperr.NotFound):
			return h.renderLogin(c, fiber.StatusUnauthorized, req, next, "Invalid email or password.", nil)
		case apperr.Is(err, apperr.Forbidden):
			return h.renderLogin(c, fiber.StatusForbidden, req, next, "This account cannot sign in to the admin portal.", nil)
		default:
			h.log.WithError(err).Warn("login failed")
			return h.renderLogin(c, apperr.HTTPStatus(err), req, next, apperr.PublicMessage(err), nil)
		}
	}

	// Some deployments return only the token; the profile then comes from /auth/me.
	if res.Admin.ID == "" && res.AccessToken != "" {
		me, err := h.authn.Me(c.UserContext(), res.AccessToken)
		if err != nil {
			h.log.WithError(err).Warn("login profile lookup failed")
			return h.renderLogin(c, apperr.HTTPStatus(err), req, next, apperr.PublicMessage(err), nil)
		}
		res.Admin = me
	}

	admin := viewmodels.ToAdminUser(res.Admin)
	role, ok := utils.ValidateAndNormalizeRole(admin.Role)
	if !ok || res.AccessToken == "" || res.Admin.ID == "" {
		h.log.WithField("admin_id", res.Admin.ID).Warn("login rejected: no portal role")
		return h.renderLogin(c, fiber.StatusForbidden, req, next, "This account cannot sign in to the admin portal.", nil)
	}

	tokenStr, expires, err := h.issuer.Issue(auth.Session{
		AdminID:      res.Admin.ID,
		Name:         admin.Name,
		Email:        admin.Email,
		Role:         role,
		BackendToken: res.AccessToken,
	})
	if err != nil {
		return apperr.Wrap(err)
	}

	middleware.SetSessionCookie(c, tokenStr, expires, h.opts.CookieSecure)
	h.log.WithField("admin_id", res.Admin.ID).Info("admin signed in")
	return h.redirectWithFlash(c, next, flash.Success, "Welcome back, "+admin.Name+".")
}

// HandleLogout ends the portal session.
// POST /logout
func (h *Handler) HandleLogout(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c, h.opts.CookieSecure)
	return h.redirectWithFlash(c, "/login", flash.Info, "You have been signed out.")
}

func (h *Handler) renderLogin(c *fiber.Ctx, status int, req models.LoginRequest, next, msg string, fields map[string]string) error {
	c.Status(status)
	return c.Render("auth/login", fiber.Map{
		"Title":     "Sign in",
		"Email":     req.Email,
		"Next":      next,
		"Error":     msg,
		"Errors":    fields,
		"Flash":     middleware.GetFlash(c),
		"RequestID": middleware.GetRequestID(c),
	}, "layouts/auth")
}
