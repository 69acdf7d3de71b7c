package edit

import (
	"errors"
	"flag"
	"io"

	"github.com/GustavoCaso/expensify/internal/action"
	"github.com/GustavoCaso/expensify/internal/cli"
	"github.com/GustavoCaso/expensify/internal/expense"
	"github.com/GustavoCaso/expensify/internal/logger"
	"github.com/GustavoCaso/expensify/internal/store"
)

var (
	errMissingID      = errors.New("you must provide the id of the expense to edit")
	errNothingToApply = errors.New("you must provide at least one field to edit")
)

type editCommand struct {
	id     string
	update expense.Update
}

func NewCommand() cli.Command {
	return &editCommand{}
}

func (c *editCommand) Description() string {
	return "Edit an expense"
}

func (c *editCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.id, "id", "", "id of the expense to edit")
	cli.StringFlag(fs, "description", "new description", &c.update.Description)
	cli.StringFlag(fs, "note", "new note", &c.update.Note)
	cli.Int64Flag(fs, "amount", "new amount in cents", &c.update.Amount)
	cli.Int64Flag(fs, "created-at", "new creation timestamp in milliseconds since the epoch", &c.update.CreatedAt)
}

func (c *editCommand) Run(s *store.Store, logger *logger.Logger, out io.Writer) error {
	if c.id == "" {
		return errMissingID
	}

	if c.update.IsEmpty() {
		return errNothingToApply
	}

	s.Dispatch(action.NewEditExpense(c.id, c.update))
	logger.Info("expense edited", "id", c.id)

	cli.RenderVisible(out, s)

	return nil
}
