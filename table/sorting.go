package table

// ColumnSort is the sort applied to one column.
type ColumnSort struct {
	ID   string `json:"id"`
	Desc bool   `json:"desc"`
}

// SortingState holds at most one entry; multi-column sort is not supported.
type SortingState []ColumnSort

// Updater computes the next state from the previous one.
type Updater[T any] func(prev T) T

// Set is an Updater that ignores the previous state.
func Set[T any](v T) Updater[T] {
	return func(T) T { return v }
}

// Direction is the sort direction of a single column header.
type Direction int

const (
	None Direction = iota
	Asc
	Desc
)

// Next cycles None -> Asc -> Desc -> None.
func (d Direction) Next() Direction {
	switch d {
	case None:
		return Asc
	case Asc:
		return Desc
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Asc:
		return "asc"
	case Desc:
		return "desc"
	default:
		return "none"
	}
}

// Icon names the header icon for the direction.
func (d Direction) Icon() string {
	switch d {
	case Asc:
		return "ascending"
	case Desc:
		return "descending"
	default:
		return "neutral"
	}
}

// Direction reports how columnID is currently sorted.
func (s SortingState) Direction(columnID string) Direction {
	for _, cs := range s {
		if cs.ID != columnID {
			continue
		}
		if cs.Desc {
			return Desc
		}
		return Asc
	}
	return None
}

// ToggleSort is the header click updater for columnID. Sorting a new column
// replaces the sort on any other column.
func ToggleSort(columnID string) Updater[SortingState] {
	return func(prev SortingState) SortingState {
		switch prev.Direction(columnID).Next() {
		case Asc:
			return SortingState{{ID: columnID}}
		case Desc:
			return SortingState{{ID: columnID, Desc: true}}
		default:
			return SortingState{}
		}
	}
}
