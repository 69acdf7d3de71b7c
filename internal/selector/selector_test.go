package selector

import (
	"reflect"
	"testing"

	"github.com/GustavoCaso/expensify/internal/expense"
	"github.com/GustavoCaso/expensify/internal/filter"
)

var (
	rent   = expense.Expense{ID: "a", Description: "Rent", Amount: 100, CreatedAt: -21000}
	coffee = expense.Expense{ID: "b", Description: "Coffee", Amount: 300, CreatedAt: -1000}
)

func int64Ptr(i int64) *int64 {
	return &i
}

func testExpenses() []expense.Expense {
	return []expense.Expense{
		{ID: "1", Description: "Gum", Amount: 195, CreatedAt: 0},
		{ID: "2", Description: "Rent", Amount: 109500, CreatedAt: -345600000},
		{ID: "3", Description: "Credit Card", Amount: 4500, CreatedAt: 345600000},
	}
}

func ids(expenses []expense.Expense) []string {
	result := make([]string, len(expenses))
	for i, e := range expenses {
		result[i] = e.ID
	}
	return result
}

func TestVisible(t *testing.T) {
	tests := []struct {
		name     string
		expenses []expense.Expense
		criteria filter.Criteria
		want     []string
	}{
		{
			name:     "sort by amount",
			expenses: []expense.Expense{rent, coffee},
			criteria: filter.Criteria{SortBy: filter.SortByAmount},
			want:     []string{"b", "a"},
		},
		{
			name:     "case insensitive text",
			expenses: []expense.Expense{rent, coffee},
			criteria: filter.Criteria{Text: "rent", SortBy: filter.SortByDate},
			want:     []string{"a"},
		},
		{
			name:     "filter by text",
			expenses: testExpenses(),
			criteria: filter.Criteria{Text: "e", SortBy: filter.SortByDate},
			want:     []string{"3", "2"},
		},
		{
			name:     "filter by start date",
			expenses: testExpenses(),
			criteria: filter.Criteria{SortBy: filter.SortByDate, StartDate: int64Ptr(0)},
			want:     []string{"3", "1"},
		},
		{
			name:     "filter by end date",
			expenses: testExpenses(),
			criteria: filter.Criteria{SortBy: filter.SortByDate, EndDate: int64Ptr(0)},
			want:     []string{"1", "2"},
		},
		{
			name:     "bounds are inclusive",
			expenses: testExpenses(),
			criteria: filter.Criteria{SortBy: filter.SortByDate, StartDate: int64Ptr(0), EndDate: int64Ptr(0)},
			want:     []string{"1"},
		},
		{
			name:     "sort by date",
			expenses: testExpenses(),
			criteria: filter.Default(),
			want:     []string{"3", "1", "2"},
		},
		{
			name:     "sort by amount with defaults",
			expenses: testExpenses(),
			criteria: filter.Criteria{SortBy: filter.SortByAmount},
			want:     []string{"2", "3", "1"},
		},
		{
			name:     "unknown sort keeps collection order",
			expenses: testExpenses(),
			criteria: filter.Criteria{SortBy: filter.SortField("name")},
			want:     []string{"1", "2", "3"},
		},
		{
			name:     "nothing matches",
			expenses: testExpenses(),
			criteria: filter.Criteria{Text: "laptop", SortBy: filter.SortByDate},
			want:     []string{},
		},
		{
			name:     "empty collection",
			expenses: nil,
			criteria: filter.Default(),
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Visible(tt.expenses, tt.criteria)
			if got := ids(result); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Visible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVisibleIsStable(t *testing.T) {
	expenses := []expense.Expense{
		{ID: "1", Amount: 100, CreatedAt: 10},
		{ID: "2", Amount: 200, CreatedAt: 10},
		{ID: "3", Amount: 100, CreatedAt: 20},
		{ID: "4", Amount: 200, CreatedAt: 10},
	}

	byDate := Visible(expenses, filter.Criteria{SortBy: filter.SortByDate})
	if got, want := ids(byDate), []string{"3", "1", "2", "4"}; !reflect.DeepEqual(got, want) {
		t.Errorf("sorted by date = %v, want %v", got, want)
	}

	byAmount := Visible(expenses, filter.Criteria{SortBy: filter.SortByAmount})
	if got, want := ids(byAmount), []string{"2", "4", "1", "3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("sorted by amount = %v, want %v", got, want)
	}
}

// The date comparator must use CreatedAt on both sides. A comparator reading a
// missing field on one side degenerates to reversing the input.
func TestVisibleSortsByCreatedAtOnBothSides(t *testing.T) {
	expenses := []expense.Expense{
		{ID: "old", CreatedAt: -5000},
		{ID: "new", CreatedAt: 5000},
		{ID: "mid", CreatedAt: 0},
	}

	result := Visible(expenses, filter.Default())
	if got, want := ids(result), []string{"new", "mid", "old"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Visible() = %v, want %v", got, want)
	}
}

func TestVisibleNonIncreasing(t *testing.T) {
	expenses := testExpenses()
	expenses = append(expenses, rent, coffee)

	byAmount := Visible(expenses, filter.Criteria{SortBy: filter.SortByAmount})
	for i := 1; i < len(byAmount); i++ {
		if byAmount[i].Amount > byAmount[i-1].Amount {
			t.Errorf("amount increases at %d: %v", i, byAmount)
		}
	}

	byDate := Visible(expenses, filter.Criteria{SortBy: filter.SortByDate})
	for i := 1; i < len(byDate); i++ {
		if byDate[i].CreatedAt > byDate[i-1].CreatedAt {
			t.Errorf("createdAt increases at %d: %v", i, byDate)
		}
	}
}

func TestVisibleNarrowingOnlyRemoves(t *testing.T) {
	expenses := testExpenses()
	all := Visible(expenses, filter.Default())

	narrowed := Visible(expenses, filter.Criteria{SortBy: filter.SortByDate, StartDate: int64Ptr(-1), EndDate: int64Ptr(1)})

	present := make(map[string]bool)
	for _, e := range all {
		present[e.ID] = true
	}

	for _, e := range narrowed {
		if !present[e.ID] {
			t.Errorf("narrowed result contains %q which is not in the unfiltered result", e.ID)
		}
	}

	if len(narrowed) > len(all) {
		t.Errorf("narrowing added entries: %d > %d", len(narrowed), len(all))
	}
}

func TestVisibleDoesNotMutateInput(t *testing.T) {
	expenses := testExpenses()

	_ = Visible(expenses, filter.Criteria{SortBy: filter.SortByAmount})

	if !reflect.DeepEqual(expenses, testExpenses()) {
		t.Errorf("input was reordered: %v", expenses)
	}
}
