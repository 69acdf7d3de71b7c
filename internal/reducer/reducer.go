package reducer

import (
	"github.com/GustavoCaso/expensify/internal/action"
	"github.com/GustavoCaso/expensify/internal/expense"
	"github.com/GustavoCaso/expensify/internal/filter"
)

// Expenses computes the next expense collection. The input slice is never
// modified; actions that do not concern expenses return it as is.
func Expenses(state []expense.Expense, a action.Action) []expense.Expense {
	switch act := a.(type) {
	case action.AddExpense:
		next := make([]expense.Expense, 0, len(state)+1)
		next = append(next, state...)
		return append(next, act.Expense)
	case action.RemoveExpense:
		next := make([]expense.Expense, 0, len(state))
		for _, e := range state {
			if e.ID != act.ID {
				next = append(next, e)
			}
		}
		return next
	case action.EditExpense:
		next := make([]expense.Expense, len(state))
		for i, e := range state {
			if e.ID == act.ID {
				next[i] = expense.Merge(e, act.Updates)
			} else {
				next[i] = e
			}
		}
		return next
	default:
		return state
	}
}

// Filters computes the next filter criteria.
func Filters(state filter.Criteria, a action.Action) filter.Criteria {
	switch act := a.(type) {
	case action.SetTextFilter:
		state.Text = act.Text
	case action.SortByAmount:
		state.SortBy = act.SortBy
	case action.SortByDate:
		state.SortBy = act.SortBy
	case action.SetStartDate:
		state.StartDate = act.StartDate
	case action.SetEndDate:
		state.EndDate = act.EndDate
	}

	return state
}
