package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"streetadmin/apperr"
	"streetadmin/models"
	"streetadmin/table"
)

type option struct {
	Value    string
	Label    string
	Selected bool
}

type filter struct {
	Key     string
	Label   string
	Options []option
}

type pageAction struct {
	Label string
	Href  string
}

// listing describes one paginated list: its columns, filters and how to
// fetch a page. Page, fragment and JSON endpoints are all derived from it.
type listing[T any] struct {
	Title             string
	SearchPlaceholder string
	Filters           []filter
	Actions           []pageAction
	EmptyMessage      string
	EmptyIcon         string
	Columns           []table.Column[T]
	RowHref           func(T) string
	Fetch             func(ctx context.Context, token string, p models.ListParams) (models.Page[T], error)
}

func (l listing[T]) filterKeys() []string {
	keys := make([]string, 0, len(l.Filters))
	for _, f := range l.Filters {
		keys = append(keys, f.Key)
	}
	return keys
}

func (l listing[T]) table(ctl *table.Controller) table.Table[T] {
	s := ctl.State()
	return table.Table[T]{
		Columns:      l.Columns,
		PageIndex:    s.Pagination.PageIndex,
		PageSize:     s.Pagination.PageSize,
		Sorting:      s.Sorting,
		EmptyMessage: l.EmptyMessage,
		EmptyIcon:    l.EmptyIcon,
		RowHref:      l.RowHref,
		Links:        ctl,
	}
}

// servePage renders the list page with the table in its loading state. The
// rows are loaded by the layout script from the fragment URL.
func servePage[T any](h *Handler, c *fiber.Ctx, l listing[T]) error {
	ctl := h.controller(c)
	s := ctl.State()

	t := l.table(ctl)
	t.IsLoading = true

	filters := make([]filter, 0, len(l.Filters))
	for _, f := range l.Filters {
		current := s.Param(f.Key)
		opts := make([]option, 0, len(f.Options))
		for _, o := range f.Options {
			o.Selected = o.Value == current
			opts = append(opts, o)
		}
		filters = append(filters, filter{Key: f.Key, Label: f.Label, Options: opts})
	}

	// Kept in the form so a new search or filter keeps size and sort. The
	// layout script refreshes them after each table navigation.
	hidden := map[string]string{}
	for _, k := range []string{table.ParamLimit, table.ParamSortBy, table.ParamSortOrder} {
		hidden[k] = s.Params[k]
	}

	return h.render(c, "pages/list", l.Title, fiber.Map{
		"Table":             t.Build(),
		"PageURL":           ctl.Href(),
		"FragmentURL":       "/x" + ctl.Href(),
		"Search":            s.Param("search"),
		"SearchPlaceholder": l.SearchPlaceholder,
		"ClearSearchHref":   ctl.FilterHref("search", ""),
		"Filters":           filters,
		"Hidden":            hidden,
		"Actions":           l.Actions,
		"FormAction":        c.Path(),
	})
}

// serveFragment renders the table body for the current URL: rows, the empty
// message or an error with a retry link.
func serveFragment[T any](h *Handler, c *fiber.Ctx, l listing[T]) error {
	ctl := h.controller(c)
	s := ctl.State()

	page, err := l.Fetch(c.UserContext(), token(c), listParams(s, l.filterKeys()...))
	if err != nil {
		if apperr.Is(err, apperr.Unauthorized) {
			return err
		}
		h.log.WithError(err).WithField("path", c.OriginalURL()).Warn("table fetch failed")
		c.Status(apperr.HTTPStatus(err))
		return c.Render("partials/table_error", fiber.Map{
			"Message":  apperr.PublicMessage(err),
			"RetryURL": c.OriginalURL(),
		})
	}

	t := l.table(ctl)
	t.Data = page.Data
	t.Total = page.Meta.Total
	t.PageCount = page.Meta.TotalPages
	return c.Render("partials/table", fiber.Map{
		"Table":   t.Build(),
		"PageURL": ctl.Href(),
	})
}

// serveJSON returns the page as {status, data, meta}.
func serveJSON[T any](h *Handler, c *fiber.Ctx, l listing[T]) error {
	s := h.controller(c).State()
	page, err := l.Fetch(c.UserContext(), token(c), listParams(s, l.filterKeys()...))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "success", "data": page.Data, "meta": page.Meta})
}
