package table

import (
	"fmt"
	"math"
)

// Branch is the single render branch a table view is in.
type Branch string

const (
	BranchLoading Branch = "loading"
	BranchEmpty   Branch = "empty"
	BranchRows    Branch = "rows"
)

// CellKind decides how a cell renders and whether it takes the row link.
type CellKind string

const (
	CellText   CellKind = "text"
	CellMuted  CellKind = "muted"
	CellBadge  CellKind = "badge"
	CellAvatar CellKind = "avatar"
	CellLink   CellKind = "link"
	CellCopy   CellKind = "copy"
	CellAction CellKind = "action"
)

// Cell is what a column renders for one row.
type Cell struct {
	Kind CellKind
	Text string
	Sub  string
	Tone string
	// Href is the target of a link or action cell.
	Href string
	// Value is copied to the clipboard by copy cells.
	Value string
}

// Interactive cells handle clicks themselves and never carry the row link.
func (c Cell) Interactive() bool {
	switch c.Kind {
	case CellLink, CellCopy, CellAction:
		return true
	}
	return false
}

func Text(s string) Cell { return Cell{Kind: CellText, Text: s} }

func Muted(s string) Cell { return Cell{Kind: CellMuted, Text: s} }

func Badge(label, tone string) Cell { return Cell{Kind: CellBadge, Text: label, Tone: tone} }

func Avatar(initials, name, sub string) Cell {
	return Cell{Kind: CellAvatar, Value: initials, Text: name, Sub: sub}
}

func Link(label, href string) Cell { return Cell{Kind: CellLink, Text: label, Href: href} }

func Copy(label, value string) Cell { return Cell{Kind: CellCopy, Text: label, Value: value} }

// Column describes one table column over rows of T.
type Column[T any] struct {
	ID       string
	Header   string
	Sortable bool
	Align    string
	Cell     func(T) Cell
}

// Table is the generic data table. Data is the current page only; the
// backend does pagination and sorting.
type Table[T any] struct {
	Columns      []Column[T]
	Data         []T
	Total        int
	PageCount    int
	PageIndex    int
	PageSize     int
	Sorting      SortingState
	IsLoading    bool
	EmptyMessage string
	EmptyIcon    string
	RowHref      func(T) string
	Links        Links
	PageSizes    []int
}

// DefaultPageSizes are offered when a table sets none.
var DefaultPageSizes = []int{10, 20, 50, 100}

type HeaderView struct {
	ID        string
	Label     string
	Align     string
	Sortable  bool
	Direction string
	Icon      string
	AriaSort  string
	Href      string
}

type CellView struct {
	Cell
	Align string
	// RowHref is set only on non-interactive cells.
	RowHref string
}

type RowView struct {
	Href  string
	Cells []CellView
}

type PageSizeOption struct {
	Size     int
	Href     string
	Selected bool
}

type FooterView struct {
	Showing   string
	PageLabel string
	HasPrev   bool
	HasNext   bool
	PrevHref  string
	NextHref  string
	PageSizes []PageSizeOption
}

// View is the render model of a table. Exactly one of the skeleton, the
// empty message or the rows is populated, as named by Branch.
type View struct {
	Branch       Branch
	Headers      []HeaderView
	Skeleton     []int
	EmptyMessage string
	EmptyIcon    string
	Rows         []RowView
	Footer       FooterView
}

func (v View) IsLoading() bool { return v.Branch == BranchLoading }
func (v View) IsEmpty() bool   { return v.Branch == BranchEmpty }
func (v View) HasRows() bool   { return v.Branch == BranchRows }

// ColumnCount is used for full-width cells.
func (v View) ColumnCount() int { return len(v.Headers) }

// Build projects the table into its render model.
func (t Table[T]) Build() View {
	v := View{Headers: t.headers()}
	switch {
	case t.IsLoading:
		v.Branch = BranchLoading
		size := t.PageSize
		if size < 1 {
			size = 10
		}
		v.Skeleton = make([]int, size)
		for i := range v.Skeleton {
			v.Skeleton[i] = i
		}
	case len(t.Data) == 0:
		v.Branch = BranchEmpty
		v.EmptyMessage = t.EmptyMessage
		if v.EmptyMessage == "" {
			v.EmptyMessage = "No results found."
		}
		v.EmptyIcon = t.EmptyIcon
		if v.EmptyIcon == "" {
			v.EmptyIcon = "inbox"
		}
	default:
		v.Branch = BranchRows
		v.Rows = t.rows()
		v.Footer = t.footer(len(v.Rows))
	}
	return v
}

func (t Table[T]) headers() []HeaderView {
	out := make([]HeaderView, 0, len(t.Columns))
	for _, col := range t.Columns {
		h := HeaderView{ID: col.ID, Label: col.Header, Align: col.Align, Sortable: col.Sortable}
		if col.Sortable {
			dir := t.Sorting.Direction(col.ID)
			h.Direction = dir.String()
			h.Icon = dir.Icon()
			h.AriaSort = "none"
			if dir != None {
				h.AriaSort = dir.Icon()
			}
			if t.Links != nil {
				h.Href = t.Links.SortingHref(ToggleSort(col.ID))
			}
		}
		out = append(out, h)
	}
	return out
}

func (t Table[T]) rows() []RowView {
	out := make([]RowView, 0, len(t.Data))
	for _, item := range t.Data {
		var href string
		if t.RowHref != nil {
			href = t.RowHref(item)
		}
		row := RowView{Href: href, Cells: make([]CellView, 0, len(t.Columns))}
		for _, col := range t.Columns {
			var cell Cell
			if col.Cell != nil {
				cell = col.Cell(item)
			}
			if cell.Kind == "" {
				cell.Kind = CellText
			}
			cv := CellView{Cell: cell, Align: col.Align}
			if !cell.Interactive() {
				cv.RowHref = href
			}
			row.Cells = append(row.Cells, cv)
		}
		out = append(out, row)
	}
	return out
}

func (t Table[T]) pageCount() int {
	if t.PageCount > 0 {
		return t.PageCount
	}
	if t.PageSize < 1 || t.Total < 1 {
		return 1
	}
	return int(math.Ceil(float64(t.Total) / float64(t.PageSize)))
}

func (t Table[T]) footer(rowCount int) FooterView {
	size := t.PageSize
	if size < 1 {
		size = rowCount
	}
	total := t.Total
	if total < rowCount {
		total = rowCount
	}
	pages := t.pageCount()
	start := t.PageIndex*size + 1
	end := start + rowCount - 1

	f := FooterView{
		Showing:   fmt.Sprintf("Showing %d-%d of %d", start, end, total),
		PageLabel: fmt.Sprintf("Page %d of %d", t.PageIndex+1, pages),
		HasPrev:   t.PageIndex > 0,
		HasNext:   t.PageIndex+1 < pages,
	}
	if t.Links != nil {
		if f.HasPrev {
			f.PrevHref = t.Links.PaginationHref(PaginationState{PageIndex: t.PageIndex - 1, PageSize: size})
		}
		if f.HasNext {
			f.NextHref = t.Links.PaginationHref(PaginationState{PageIndex: t.PageIndex + 1, PageSize: size})
		}
	}

	sizes := t.PageSizes
	if len(sizes) == 0 {
		sizes = DefaultPageSizes
	}
	for _, s := range sizes {
		opt := PageSizeOption{Size: s, Selected: s == size}
		if t.Links != nil {
			opt.Href = t.Links.PaginationHref(PaginationState{PageIndex: 0, PageSize: s})
		}
		f.PageSizes = append(f.PageSizes, opt)
	}
	return f
}
