package list

import (
	"flag"
	"fmt"
	"io"
	"net/url"

	"github.com/GustavoCaso/expensify/internal/action"
	"github.com/GustavoCaso/expensify/internal/cli"
	"github.com/GustavoCaso/expensify/internal/filter"
	"github.com/GustavoCaso/expensify/internal/logger"
	"github.com/GustavoCaso/expensify/internal/seed"
	"github.com/GustavoCaso/expensify/internal/store"
)

type listCommand struct {
	params url.Values
}

func NewCommand() cli.Command {
	return &listCommand{params: url.Values{}}
}

func (c *listCommand) Description() string {
	return "List the visible expenses"
}

func (c *listCommand) SetFlags(fs *flag.FlagSet) {
	for _, name := range []string{"text", "sort", "start", "end"} {
		name := name
		fs.Func(name, usage[name], func(v string) error {
			c.params.Set(name, v)
			return nil
		})
	}
}

var usage = map[string]string{
	"text":  "only show expenses whose description contains text",
	"sort":  "sort by date or amount",
	"start": "only show expenses created at or after this timestamp (ms)",
	"end":   "only show expenses created at or before this timestamp (ms)",
}

func (c *listCommand) Run(s *store.Store, _ *logger.Logger, out io.Writer) error {
	actions, err := criteriaActions(c.params)
	if err != nil {
		return err
	}

	for _, a := range actions {
		s.Dispatch(a)
	}

	cli.RenderVisible(out, s)

	return nil
}

// criteriaActions returns the filter actions for the parameters that were
// supplied, leaving every other filter as it is.
func criteriaActions(params url.Values) ([]action.Action, error) {
	criteria, err := filter.ParseCriteria(params)
	if err != nil {
		return nil, fmt.Errorf("invalid filters: %w", err)
	}

	var actions []action.Action

	if params.Has("text") {
		actions = append(actions, action.NewSetTextFilter(criteria.Text))
	}

	if params.Has("sort") {
		actions = append(actions, seed.SortAction(criteria.SortBy))
	}

	if params.Has("start") {
		actions = append(actions, action.NewSetStartDate(criteria.StartDate))
	}

	if params.Has("end") {
		actions = append(actions, action.NewSetEndDate(criteria.EndDate))
	}

	return actions, nil
}
