package action

// Describe returns the key/value pairs used to log a.
func Describe(a Action) []any {
	args := []any{"type", string(a.Type())}

	switch act := a.(type) {
	case AddExpense:
		args = append(args, "id", act.Expense.ID, "description", act.Expense.Description, "amount", act.Expense.Amount)
	case RemoveExpense:
		args = append(args, "id", act.ID)
	case EditExpense:
		args = append(args, "id", act.ID)
	case SetTextFilter:
		args = append(args, "text", act.Text)
	case SortByAmount:
		args = append(args, "sortBy", string(act.SortBy))
	case SortByDate:
		args = append(args, "sortBy", string(act.SortBy))
	case SetStartDate:
		args = append(args, "startDate", bound(act.StartDate))
	case SetEndDate:
		args = append(args, "endDate", bound(act.EndDate))
	}

	return args
}

func bound(v *int64) any {
	if v == nil {
		return "unset"
	}
	return *v
}
