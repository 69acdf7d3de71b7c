package render

import (
	"fmt"
	"io"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/GustavoCaso/expensify/internal/expense"
	"github.com/GustavoCaso/expensify/internal/filter"
	"github.com/GustavoCaso/expensify/internal/util"
)

const (
	thousandSeparator = "."
	decimalSeparator  = ","
)

// Expenses writes visible as a table. Matches of the criteria text are
// highlighted in the description column.
func Expenses(w io.Writer, visible []expense.Expense, criteria filter.Criteria) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	t.AppendHeader(table.Row{"ID", "Description", "Note", "Created At", "Amount"})

	var total int64
	for _, e := range visible {
		total = addAmount(total, e.Amount)
		t.AppendRow(table.Row{
			e.ID,
			util.Highlight(e.Description, criteria.Text, "bold", "underline"),
			e.Note,
			util.FormatTimestamp(e.CreatedAt),
			formatAmount(e.Amount),
		})
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{
		"",
		fmt.Sprintf("%d expenses", len(visible)),
		"",
		"Total",
		util.ColorOutput(formatAmount(total), "bold"),
	})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight},
	})

	t.Render()
}

// Summary writes a one line description of the active criteria.
func Summary(w io.Writer, criteria filter.Criteria) {
	fmt.Fprintf(w, "text=%q sortBy=%s startDate=%s endDate=%s\n",
		criteria.Text, criteria.SortBy, bound(criteria.StartDate), bound(criteria.EndDate))
}

func formatAmount(amount int64) string {
	value := util.FormatMoney(amount, thousandSeparator, decimalSeparator)
	if amount < 0 {
		return util.ColorOutput(value, "red")
	}
	return value
}

// addAmount sums two amounts, clamping at the int64 limits.
func addAmount(total, amount int64) int64 {
	switch {
	case amount > 0 && total > math.MaxInt64-amount:
		return math.MaxInt64
	case amount < 0 && total < math.MinInt64-amount:
		return math.MinInt64
	}
	return total + amount
}

func bound(v *int64) string {
	if v == nil {
		return "unset"
	}
	return util.FormatTimestamp(*v)
}
