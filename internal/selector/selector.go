package selector

import (
	"cmp"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/GustavoCaso/expensify/internal/expense"
	"github.com/GustavoCaso/expensify/internal/filter"
)

// Visible returns the expenses matching criteria, sorted newest or largest
// first. The result is a new slice; expenses is left untouched.
func Visible(expenses []expense.Expense, criteria filter.Criteria) []expense.Expense {
	text := strings.ToLower(criteria.Text)

	visible := make([]expense.Expense, 0, len(expenses))
	for _, e := range expenses {
		if matches(e, criteria, text) {
			visible = append(visible, e)
		}
	}

	switch criteria.SortBy {
	case filter.SortByDate:
		slices.SortStableFunc(visible, func(a, b expense.Expense) int {
			return cmp.Compare(b.CreatedAt, a.CreatedAt)
		})
	case filter.SortByAmount:
		slices.SortStableFunc(visible, func(a, b expense.Expense) int {
			return cmp.Compare(b.Amount, a.Amount)
		})
	}

	return visible
}

func matches(e expense.Expense, criteria filter.Criteria, text string) bool {
	startDateMatch := criteria.StartDate == nil || e.CreatedAt >= *criteria.StartDate
	endDateMatch := criteria.EndDate == nil || e.CreatedAt <= *criteria.EndDate
	textMatch := strings.Contains(strings.ToLower(e.Description), text)

	return startDateMatch && endDateMatch && textMatch
}
