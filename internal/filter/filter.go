package filter

// SortField represents a field the visible expenses can be sorted on.
type SortField string

const (
	SortByDate   SortField = "date"
	SortByAmount SortField = "amount"
)

// Valid reports whether f is one of the known sort fields.
func (f SortField) Valid() bool {
	return f == SortByDate || f == SortByAmount
}

// Criteria holds the active filter and sort configuration.
// Date bounds are pointers to distinguish "not set" from the epoch.
type Criteria struct {
	Text      string    // case-insensitive substring search on description
	SortBy    SortField // always sorted descending
	StartDate *int64    // inclusive lower bound, milliseconds
	EndDate   *int64    // inclusive upper bound, milliseconds
}

// Default returns the criteria in place before any filter action is applied:
// no text, newest first and no date bounds.
func Default() Criteria {
	return Criteria{
		Text:   "",
		SortBy: SortByDate,
	}
}

// Equal compares criteria by value, dereferencing the date bounds.
func (c Criteria) Equal(other Criteria) bool {
	return c.Text == other.Text &&
		c.SortBy == other.SortBy &&
		equalBound(c.StartDate, other.StartDate) &&
		equalBound(c.EndDate, other.EndDate)
}

func equalBound(a, b *int64) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}
