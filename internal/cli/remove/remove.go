package remove

import (
	"errors"
	"flag"
	"io"

	"github.com/GustavoCaso/expensify/internal/action"
	"github.com/GustavoCaso/expensify/internal/cli"
	"github.com/GustavoCaso/expensify/internal/logger"
	"github.com/GustavoCaso/expensify/internal/store"
)

var errMissingID = errors.New("you must provide the id of the expense to remove")

type removeCommand struct {
	id string
}

func NewCommand() cli.Command {
	return &removeCommand{}
}

func (c *removeCommand) Description() string {
	return "Remove an expense"
}

func (c *removeCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.id, "id", "", "id of the expense to remove")
}

func (c *removeCommand) Run(s *store.Store, logger *logger.Logger, out io.Writer) error {
	if c.id == "" {
		return errMissingID
	}

	before := len(s.State().Expenses)
	s.Dispatch(action.NewRemoveExpense(c.id))

	if len(s.State().Expenses) == before {
		logger.Warn("no expense matched", "id", c.id)
	}

	cli.RenderVisible(out, s)

	return nil
}
