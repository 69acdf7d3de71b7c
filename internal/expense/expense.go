package expense

// Expense is a single recorded spending entry.
// Amount is expressed in the smallest currency unit (cents) and CreatedAt in
// milliseconds relative to the unix epoch, so it can be negative.
type Expense struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Note        string `json:"note"`
	Amount      int64  `json:"amount"`
	CreatedAt   int64  `json:"createdAt"`
}

// Partial holds the caller supplied fields used to create a new Expense.
// Fields left nil take their zero value.
type Partial struct {
	Description *string
	Note        *string
	Amount      *int64
	CreatedAt   *int64
}

// Update describes an edit of an existing Expense.
// Only non-nil fields are applied, the ID can not be changed.
type Update struct {
	Description *string
	Note        *string
	Amount      *int64
	CreatedAt   *int64
}

// New builds an Expense with the given id, filling every field not present in
// p with its default value.
func New(id string, p Partial) Expense {
	e := Expense{ID: id}

	if p.Description != nil {
		e.Description = *p.Description
	}

	if p.Note != nil {
		e.Note = *p.Note
	}

	if p.Amount != nil {
		e.Amount = *p.Amount
	}

	if p.CreatedAt != nil {
		e.CreatedAt = *p.CreatedAt
	}

	return e
}

// Merge returns a copy of e with the fields present in u applied on top.
func Merge(e Expense, u Update) Expense {
	if u.Description != nil {
		e.Description = *u.Description
	}

	if u.Note != nil {
		e.Note = *u.Note
	}

	if u.Amount != nil {
		e.Amount = *u.Amount
	}

	if u.CreatedAt != nil {
		e.CreatedAt = *u.CreatedAt
	}

	return e
}

// IsEmpty reports whether the update carries no field at all.
func (u Update) IsEmpty() bool {
	return u.Description == nil && u.Note == nil && u.Amount == nil && u.CreatedAt == nil
}

// String returns a pointer to s, for filling Partial and Update.
func String(s string) *string {
	return &s
}

// Int64 returns a pointer to i.
func Int64(i int64) *int64 {
	return &i
}
