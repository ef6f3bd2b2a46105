package templates

import (
	"bytes"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streetadmin/table"
)

func TestAllTemplatesParse(t *testing.T) {
	engine := Engine()
	require.NoError(t, engine.Load())

	for _, name := range []string{
		"layouts/main", "layouts/auth", "pages/list", "partials/table", "partials/cell",
		"partials/table_error", "partials/error", "errors/error", "auth/login",
		"users/show", "users/edit", "retailers/show", "retailers/edit",
		"couriers/show", "couriers/edit", "orders/show", "referral_codes/new", "admin_users/show",
	} {
		assert.NotNil(t, engine.Templates.Lookup(name), name)
	}
}

func TestTableRendersOneBranch(t *testing.T) {
	engine := Engine()
	require.NoError(t, engine.Load())

	cols := []table.Column[string]{{ID: "name", Header: "Name", Cell: table.Text}}
	ctl := table.NewController(table.NewURLRouter("/things"), table.Defaults{Limit: 10})

	var buf bytes.Buffer
	loading := table.Table[string]{Columns: cols, PageSize: 10, IsLoading: true, Links: ctl}
	require.NoError(t, engine.Render(&buf, "partials/table", fiber.Map{"Table": loading.Build()}))
	assert.Contains(t, buf.String(), "skeleton")
	assert.NotContains(t, buf.String(), "No results found.")

	buf.Reset()
	empty := table.Table[string]{Columns: cols, PageSize: 10, Links: ctl}
	require.NoError(t, engine.Render(&buf, "partials/table", fiber.Map{"Table": empty.Build()}))
	assert.Contains(t, buf.String(), "No results found.")
	assert.NotContains(t, buf.String(), "skeleton")

	buf.Reset()
	rows := table.Table[string]{
		Columns: cols, Data: []string{"alpha", "beta"}, Total: 2, PageSize: 10, Links: ctl,
		RowHref: func(s string) string { return "/things/" + s },
	}
	require.NoError(t, engine.Render(&buf, "partials/table", fiber.Map{"Table": rows.Build(), "PageURL": "/things"}))
	out := buf.String()
	assert.Contains(t, out, `href="/things/alpha"`)
	assert.Contains(t, out, "Showing 1-2 of 2")
	assert.NotContains(t, out, "skeleton")
	assert.NotContains(t, out, "No results found.")
}

func TestDict(t *testing.T) {
	m, err := dict("a", 1, "b", "two")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": "two"}, m)

	_, err = dict("a")
	assert.Error(t, err)
	_, err = dict(1, 2)
	assert.Error(t, err)
}
