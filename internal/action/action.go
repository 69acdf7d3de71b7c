package action

import (
	"github.com/google/uuid"

	"github.com/GustavoCaso/expensify/internal/expense"
	"github.com/GustavoCaso/expensify/internal/filter"
)

// Type is the discriminator carried by every action.
type Type string

const (
	AddExpenseType    Type = "ADD_EXPENSE"
	RemoveExpenseType Type = "REMOVE_EXPENSE"
	EditExpenseType   Type = "EDIT_EXPENSE"
	SetTextFilterType Type = "SET_TEXT_FILTER"
	SortByAmountType  Type = "SORT_BY_AMOUNT"
	SortByDateType    Type = "SORT_BY_DATE"
	SetStartDateType  Type = "SET_START_DATE"
	SetEndDateType    Type = "SET_END_DATE"
)

// Action is a requested state transition.
// The set of implementations is closed: only the types declared in this
// package satisfy it.
type Action interface {
	Type() Type
	action()
}

// NewID generates the id assigned to every added expense.
var NewID = uuid.NewString

// AddExpense appends Expense to the collection.
type AddExpense struct {
	Expense expense.Expense
}

// RemoveExpense drops the expense with ID, if any.
type RemoveExpense struct {
	ID string
}

// EditExpense applies Updates to the expense with ID.
type EditExpense struct {
	ID      string
	Updates expense.Update
}

// SetTextFilter replaces the description filter.
type SetTextFilter struct {
	Text string
}

// SortByAmount orders the visible expenses by amount.
type SortByAmount struct {
	SortBy filter.SortField
}

// SortByDate orders the visible expenses by creation time.
type SortByDate struct {
	SortBy filter.SortField
}

// SetStartDate replaces the lower date bound. A nil StartDate clears it.
type SetStartDate struct {
	StartDate *int64
}

// SetEndDate replaces the upper date bound. A nil EndDate clears it.
type SetEndDate struct {
	EndDate *int64
}

func (AddExpense) Type() Type    { return AddExpenseType }
func (RemoveExpense) Type() Type { return RemoveExpenseType }
func (EditExpense) Type() Type   { return EditExpenseType }
func (SetTextFilter) Type() Type { return SetTextFilterType }
func (SortByAmount) Type() Type  { return SortByAmountType }
func (SortByDate) Type() Type    { return SortByDateType }
func (SetStartDate) Type() Type  { return SetStartDateType }
func (SetEndDate) Type() Type    { return SetEndDateType }

func (AddExpense) action()    {}
func (RemoveExpense) action() {}
func (EditExpense) action()   {}
func (SetTextFilter) action() {}
func (SortByAmount) action()  {}
func (SortByDate) action()    {}
func (SetStartDate) action()  {}
func (SetEndDate) action()    {}

// NewAddExpense fills the fields missing from p with their defaults and
// assigns a freshly generated id.
func NewAddExpense(p expense.Partial) AddExpense {
	return AddExpense{
		Expense: expense.New(NewID(), p),
	}
}

// NewAddExpenseWithID is NewAddExpense with a caller chosen id, used when
// the id has to be known in advance.
func NewAddExpenseWithID(id string, p expense.Partial) AddExpense {
	return AddExpense{
		Expense: expense.New(id, p),
	}
}

// NewRemoveExpense builds a removal for id. An empty id matches nothing.
func NewRemoveExpense(id string) RemoveExpense {
	return RemoveExpense{ID: id}
}

func NewEditExpense(id string, updates expense.Update) EditExpense {
	return EditExpense{ID: id, Updates: updates}
}

func NewSetTextFilter(text string) SetTextFilter {
	return SetTextFilter{Text: text}
}

func NewSortByAmount() SortByAmount {
	return SortByAmount{SortBy: filter.SortByAmount}
}

func NewSortByDate() SortByDate {
	return SortByDate{SortBy: filter.SortByDate}
}

// NewSetStartDate sets the lower date bound. A nil value clears it.
func NewSetStartDate(startDate *int64) SetStartDate {
	return SetStartDate{StartDate: startDate}
}

// NewSetEndDate sets the upper date bound. A nil value clears it.
func NewSetEndDate(endDate *int64) SetEndDate {
	return SetEndDate{EndDate: endDate}
}
