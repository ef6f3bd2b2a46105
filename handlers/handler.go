package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"streetadmin/auth"
	"streetadmin/flash"
	"streetadmin/middleware"
	"streetadmin/models"
	"streetadmin/queries"
	"streetadmin/table"
	"streetadmin/utils"
)

// Authenticator signs admins in against the STREET API.
type Authenticator interface {
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	Me(ctx context.Context, token string) (models.AdminUserDTO, error)
}

// Options are the handler settings taken from config.
type Options struct {
	DefaultPageSize  int
	MaxPageSize      int
	SearchDebounceMS int
	CookieSecure     bool
	Version          string
}

// Handler serves the portal's pages, fragments and JSON API.
type Handler struct {
	q      *queries.Service
	authn  Authenticator
	issuer *auth.Issuer
	flash  *flash.Codec
	log    logrus.FieldLogger
	opts   Options
}

func New(q *queries.Service, authn Authenticator, issuer *auth.Issuer, fc *flash.Codec, log logrus.FieldLogger, opts Options) *Handler {
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = 20
	}
	if opts.MaxPageSize < opts.DefaultPageSize {
		opts.MaxPageSize = 100
	}
	if opts.SearchDebounceMS <= 0 {
		opts.SearchDebounceMS = 300
	}
	return &Handler{q: q, authn: authn, issuer: issuer, flash: fc, log: log, opts: opts}
}

// render renders a page inside the main layout. Session, flash and request
// id reach the templates through the view locals.
func (h *Handler) render(c *fiber.Ctx, name, title string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = title
	data["DebounceMS"] = h.opts.SearchDebounceMS
	if s := middleware.CurrentSession(c); s != nil {
		data["Session"] = s
		data["CanManageAdmins"] = canManageAdmins(s)
	}
	data["Flash"] = middleware.GetFlash(c)
	data["RequestID"] = middleware.GetRequestID(c)
	data["Nav"] = strings.SplitN(strings.TrimPrefix(c.Path(), "/"), "/", 2)[0]
	return c.Render(name, data, "layouts/main")
}

// controller builds the table controller for the current request. Fragment
// requests are mapped back to the page URL so links point at the page.
func (h *Handler) controller(c *fiber.Ctx) *table.Controller {
	pageURL := strings.TrimPrefix(c.OriginalURL(), "/x")
	pageURL = strings.TrimPrefix(pageURL, "/api/v1/admin")
	if !strings.HasPrefix(pageURL, "/") {
		pageURL = "/" + pageURL
	}
	return table.NewController(table.NewURLRouter(pageURL), table.Defaults{
		Page:     1,
		Limit:    h.opts.DefaultPageSize,
		MaxLimit: h.opts.MaxPageSize,
	})
}

// listParams turns the table state into backend list parameters. Only the
// named filter keys are forwarded.
func listParams(s table.State, filterKeys ...string) models.ListParams {
	p := models.ListParams{
		Search:    s.Param("search"),
		Page:      s.Page(),
		Limit:     s.Pagination.PageSize,
		SortBy:    s.SortBy(),
		SortOrder: s.SortOrder(),
	}
	for _, k := range filterKeys {
		if v := s.Param(k); v != "" {
			if p.Filters == nil {
				p.Filters = map[string]string{}
			}
			p.Filters[k] = v
		}
	}
	return p
}

func token(c *fiber.Ctx) string {
	return middleware.BackendToken(c)
}

// redirectWithFlash queues a toast and sends the browser to location.
func (h *Handler) redirectWithFlash(c *fiber.Ctx, location string, kind flash.Kind, msg string) error {
	middleware.SetFlash(c, h.flash, kind, msg)
	return c.Redirect(location, fiber.StatusSeeOther)
}

func canManageAdmins(s *auth.Session) bool {
	return s != nil && utils.CanManageAdmins(s.Role)
}
