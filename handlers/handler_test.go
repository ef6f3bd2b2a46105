package handlers

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streetadmin/apperr"
	"streetadmin/table"
)

func quietHandler() *Handler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(nil, nil, nil, nil, log, Options{MaxPageSize: 50})
}

func TestNewAppliesDefaults(t *testing.T) {
	h := quietHandler()
	assert.Equal(t, 20, h.opts.DefaultPageSize)
	assert.Equal(t, 50, h.opts.MaxPageSize)
	assert.Equal(t, 300, h.opts.SearchDebounceMS)
}

func TestListParamsForwardsOnlyKnownFilters(t *testing.T) {
	ctl := table.NewController(table.NewURLRouter("/orders?search=+ann+&status=delivered&foo=bar&page=2&sortBy=createdAt&sortOrder=desc"), table.Defaults{Limit: 20})

	p := listParams(ctl.State(), "status", "userId")

	assert.Equal(t, "ann", p.Search)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, "createdAt", p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)
	assert.Equal(t, map[string]string{"status": "delivered"}, p.Filters)
}

func TestControllerMapsFragmentAndAPIToPageURL(t *testing.T) {
	h := quietHandler()
	app := fiber.New()
	handler := func(c *fiber.Ctx) error {
		return c.SendString(h.controller(c).PaginationHref(table.PaginationState{PageIndex: 3, PageSize: 20}))
	}
	app.Get("/x/users", handler)
	app.Get("/api/v1/admin/users", handler)

	for _, target := range []string{"/x/users?search=ann", "/api/v1/admin/users?search=ann"} {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "/users?limit=20&page=4&search=ann", string(body), target)
	}
}

func TestControllerClampsPageSize(t *testing.T) {
	h := quietHandler()
	app := fiber.New()
	app.Get("/users", func(c *fiber.Ctx) error {
		return c.JSON(h.controller(c).State().Pagination)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/users?limit=500", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"PageIndex":0,"PageSize":50}`, string(body))
}

func TestSectionError(t *testing.T) {
	h := quietHandler()

	assert.Empty(t, h.sectionError(nil))
	assert.Empty(t, h.sectionError(apperr.UnauthorizedErr("expired")))
	assert.Equal(t, "Backend down.", h.sectionError(apperr.UnavailableErr("Backend down.", nil)))

	assert.NoError(t, unauthorizedOnly(apperr.NotFoundErr("gone")))
	assert.Error(t, unauthorizedOnly(apperr.UnauthorizedErr("expired")))
}
