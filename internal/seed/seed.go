// Package seed turns a seed document into the actions that reproduce it.
//
// A seed lists expenses, in insertion order, and optionally the filters to
// apply afterwards. An expense without an id gets a generated one, so only
// expenses with an explicit id can be targeted by later edits. It can be
// written in TOML or YAML:
//
//	[[expenses]]
//	id = "rent"
//	description = "Rent"
//	amount = 100
//	created_at = -21000
//
//	[filters]
//	sort_by = "amount"
package seed

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/GustavoCaso/expensify/internal/action"
	"github.com/GustavoCaso/expensify/internal/expense"
	"github.com/GustavoCaso/expensify/internal/filter"
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

type Expense struct {
	ID          *string `toml:"id" yaml:"id"`
	Description *string `toml:"description" yaml:"description"`
	Note        *string `toml:"note" yaml:"note"`
	Amount      *int64  `toml:"amount" yaml:"amount"`
	CreatedAt   *int64  `toml:"created_at" yaml:"created_at"`
}

type Filters struct {
	Text      *string `toml:"text" yaml:"text"`
	SortBy    string  `toml:"sort_by" yaml:"sort_by"`
	StartDate *int64  `toml:"start_date" yaml:"start_date"`
	EndDate   *int64  `toml:"end_date" yaml:"end_date"`
}

type Document struct {
	Expenses []Expense `toml:"expenses" yaml:"expenses"`
	Filters  *Filters  `toml:"filters" yaml:"filters"`
}

// FormatFromPath picks the seed format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yml", ".yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported seed file extension %q (must be .toml, .yml or .yaml)", filepath.Ext(path))
	}
}

// Load reads the seed file at path and returns its actions.
func Load(path string) ([]action.Action, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open seed file: %w", err)
	}
	defer file.Close()

	doc, err := Decode(file, format)
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w", path, err)
	}

	return doc.Actions()
}

func Decode(r io.Reader, format Format) (*Document, error) {
	doc := &Document{}

	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(doc); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(doc); err != nil && err != io.EOF {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported seed format %q", format)
	}

	return doc, nil
}

// Actions converts the document into actions: one ADD_EXPENSE per expense
// followed by the filter actions. Explicit ids must be unique and non empty.
func (d *Document) Actions() ([]action.Action, error) {
	actions := make([]action.Action, 0, len(d.Expenses)+4)
	ids := make(map[string]int, len(d.Expenses))

	for i, e := range d.Expenses {
		partial := expense.Partial{
			Description: e.Description,
			Note:        e.Note,
			Amount:      e.Amount,
			CreatedAt:   e.CreatedAt,
		}

		if e.ID == nil {
			actions = append(actions, action.NewAddExpense(partial))
			continue
		}

		id := *e.ID
		if id == "" {
			return nil, fmt.Errorf("expense %d: empty id", i+1)
		}
		if prev, ok := ids[id]; ok {
			return nil, fmt.Errorf("expense %d: id %q already used by expense %d", i+1, id, prev)
		}
		ids[id] = i + 1

		actions = append(actions, action.NewAddExpenseWithID(id, partial))
	}

	if d.Filters == nil {
		return actions, nil
	}

	if d.Filters.Text != nil {
		actions = append(actions, action.NewSetTextFilter(*d.Filters.Text))
	}

	if d.Filters.SortBy != "" {
		field, err := filter.ParseSort(d.Filters.SortBy)
		if err != nil {
			return nil, fmt.Errorf("invalid filters: %w", err)
		}
		actions = append(actions, SortAction(field))
	}

	if d.Filters.StartDate != nil {
		actions = append(actions, action.NewSetStartDate(d.Filters.StartDate))
	}

	if d.Filters.EndDate != nil {
		actions = append(actions, action.NewSetEndDate(d.Filters.EndDate))
	}

	return actions, nil
}

// SortAction returns the action selecting field.
func SortAction(field filter.SortField) action.Action {
	if field == filter.SortByAmount {
		return action.NewSortByAmount()
	}
	return action.NewSortByDate()
}
