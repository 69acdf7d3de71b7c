package filter

import (
	"fmt"
	"net/url"
	"strconv"
)

// parseBound converts a millisecond timestamp string to a date bound.
// Examples: "0" -> 0, "-21000" -> -21000
func parseBound(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("date bound cannot be empty")
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid date bound format: %w", err)
	}

	return v, nil
}

// ParseSort parses a sort field name like "amount".
func ParseSort(s string) (SortField, error) {
	if s == "" {
		return "", fmt.Errorf("sort field cannot be empty")
	}

	field := SortField(s)
	if !field.Valid() {
		return "", fmt.Errorf("invalid sort field: %s (must be date or amount)", field)
	}

	return field, nil
}

// ParseCriteria parses URL query parameters into filter criteria.
// Missing parameters keep the value from Default.
func ParseCriteria(params url.Values) (Criteria, error) {
	criteria := Default()

	criteria.Text = params.Get("text")

	if sortStr := params.Get("sort"); sortStr != "" {
		field, err := ParseSort(sortStr)
		if err != nil {
			return Criteria{}, fmt.Errorf("invalid sort: %w", err)
		}
		criteria.SortBy = field
	}

	if startStr := params.Get("start"); startStr != "" {
		val, err := parseBound(startStr)
		if err != nil {
			return Criteria{}, fmt.Errorf("invalid start: %w", err)
		}
		criteria.StartDate = &val
	}

	if endStr := params.Get("end"); endStr != "" {
		val, err := parseBound(endStr)
		if err != nil {
			return Criteria{}, fmt.Errorf("invalid end: %w", err)
		}
		criteria.EndDate = &val
	}

	return criteria, nil
}
