package table

import (
	"strconv"
	"strings"

	"streetadmin/utils"
)

// Query parameter names owned by the table controller.
const (
	ParamPage      = "page"
	ParamLimit     = "limit"
	ParamSortBy    = "sortBy"
	ParamSortOrder = "sortOrder"
)

// SortNone in sortOrder marks a table the user unsorted on purpose, so a
// default sort column does not come back.
const SortNone = "none"

// Defaults apply when the URL does not carry a parameter. A default SortBy
// applies only while the URL has no sortOrder.
type Defaults struct {
	Page      int
	Limit     int
	MaxLimit  int
	SortBy    string
	SortOrder string
}

// PaginationState is the zero-based page index and the page size.
type PaginationState struct {
	PageIndex int
	PageSize  int
}

// State is the table state projected from the URL.
type State struct {
	Pagination PaginationState
	Sorting    SortingState
	Params     map[string]string
}

// Page is the one-based page number.
func (s State) Page() int { return s.Pagination.PageIndex + 1 }

// SortBy and SortOrder return the single sort column and its direction, or
// empty strings when unsorted.
func (s State) SortBy() string {
	if len(s.Sorting) == 0 {
		return ""
	}
	return s.Sorting[0].ID
}

func (s State) SortOrder() string {
	if len(s.Sorting) == 0 {
		return ""
	}
	if s.Sorting[0].Desc {
		return "desc"
	}
	return "asc"
}

// Param returns a non-table parameter such as "search", trimmed.
func (s State) Param(key string) string {
	return strings.TrimSpace(s.Params[key])
}

// Links computes where a table change would navigate without navigating.
type Links interface {
	PaginationHref(next PaginationState) string
	SortingHref(u Updater[SortingState]) string
}

// Controller keeps table pagination and sorting in the URL. It holds no
// state of its own: State re-reads the router on every call, and every change
// is a navigation with Replace so rapid changes do not pile up in history.
type Controller struct {
	router   Router
	defaults Defaults
}

func NewController(r Router, d Defaults) *Controller {
	if d.Page < 1 {
		d.Page = 1
	}
	if d.Limit < 1 {
		d.Limit = 20
	}
	if d.MaxLimit > 0 && d.Limit > d.MaxLimit {
		d.Limit = d.MaxLimit
	}
	if !strings.EqualFold(d.SortOrder, "desc") {
		d.SortOrder = "asc"
	} else {
		d.SortOrder = "desc"
	}
	return &Controller{router: r, defaults: d}
}

func (c *Controller) State() State {
	params := c.router.Params()

	page := utils.ParsePositiveInt(params[ParamPage], c.defaults.Page)
	limit := utils.ParsePositiveInt(params[ParamLimit], c.defaults.Limit)
	if c.defaults.MaxLimit > 0 && limit > c.defaults.MaxLimit {
		limit = c.defaults.MaxLimit
	}

	sortBy := strings.TrimSpace(params[ParamSortBy])
	order := strings.ToLower(strings.TrimSpace(params[ParamSortOrder]))
	if order == SortNone {
		sortBy = ""
	} else if sortBy == "" {
		sortBy = c.defaults.SortBy
	}
	if order != "asc" && order != "desc" {
		order = c.defaults.SortOrder
	}

	sorting := SortingState{}
	if sortBy != "" {
		sorting = SortingState{{ID: sortBy, Desc: order == "desc"}}
	}

	return State{
		Pagination: PaginationState{PageIndex: page - 1, PageSize: limit},
		Sorting:    sorting,
		Params:     params,
	}
}

func (c *Controller) OnPaginationChange(next PaginationState) {
	c.router.SetParams(c.paginationPatch(next), Replace)
}

// OnSortingChange applies u to the current sorting and always goes back to
// the first page.
func (c *Controller) OnSortingChange(u Updater[SortingState]) {
	c.router.SetParams(c.sortingPatch(u), Replace)
}

// OnFilterChange sets a search or filter parameter and goes back to the first
// page. An empty value removes the filter.
func (c *Controller) OnFilterChange(key, value string) {
	c.router.SetParams(filterPatch(key, value), Replace)
}

func (c *Controller) PaginationHref(next PaginationState) string {
	return c.href(c.paginationPatch(next))
}

func (c *Controller) SortingHref(u Updater[SortingState]) string {
	return c.href(c.sortingPatch(u))
}

func (c *Controller) FilterHref(key, value string) string {
	return c.href(filterPatch(key, value))
}

// Href is the canonical form of the current location.
func (c *Controller) Href() string {
	return c.href(nil)
}

func (c *Controller) href(patch map[string]string) string {
	return Href(c.router.Path(), mergeParams(c.router.Params(), patch))
}

func (c *Controller) paginationPatch(next PaginationState) map[string]string {
	if next.PageIndex < 0 {
		next.PageIndex = 0
	}
	if next.PageSize < 1 {
		next.PageSize = c.State().Pagination.PageSize
	}
	if c.defaults.MaxLimit > 0 && next.PageSize > c.defaults.MaxLimit {
		next.PageSize = c.defaults.MaxLimit
	}
	return map[string]string{
		ParamPage:  strconv.Itoa(next.PageIndex + 1),
		ParamLimit: strconv.Itoa(next.PageSize),
	}
}

func (c *Controller) sortingPatch(u Updater[SortingState]) map[string]string {
	next := u(c.State().Sorting)
	patch := map[string]string{ParamPage: "1", ParamSortBy: "", ParamSortOrder: ""}
	if len(next) > 0 {
		patch[ParamSortBy] = next[0].ID
		patch[ParamSortOrder] = "asc"
		if next[0].Desc {
			patch[ParamSortOrder] = "desc"
		}
	} else if c.defaults.SortBy != "" {
		patch[ParamSortOrder] = SortNone
	}
	return patch
}

func filterPatch(key, value string) map[string]string {
	return map[string]string{key: strings.TrimSpace(value), ParamPage: "1"}
}
