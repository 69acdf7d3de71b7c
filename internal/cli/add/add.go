package add

import (
	"flag"
	"fmt"
	"io"

	"github.com/GustavoCaso/expensify/internal/action"
	"github.com/GustavoCaso/expensify/internal/cli"
	"github.com/GustavoCaso/expensify/internal/expense"
	"github.com/GustavoCaso/expensify/internal/logger"
	"github.com/GustavoCaso/expensify/internal/store"
)

type addCommand struct {
	partial expense.Partial
}

func NewCommand() cli.Command {
	return &addCommand{}
}

func (c *addCommand) Description() string {
	return "Add an expense"
}

func (c *addCommand) SetFlags(fs *flag.FlagSet) {
	cli.StringFlag(fs, "description", "expense description", &c.partial.Description)
	cli.StringFlag(fs, "note", "expense note", &c.partial.Note)
	cli.Int64Flag(fs, "amount", "amount in cents", &c.partial.Amount)
	cli.Int64Flag(fs, "created-at", "creation timestamp in milliseconds since the epoch", &c.partial.CreatedAt)
}

func (c *addCommand) Run(s *store.Store, logger *logger.Logger, out io.Writer) error {
	a := action.NewAddExpense(c.partial)
	s.Dispatch(a)

	logger.Info("expense added", "id", a.Expense.ID)
	fmt.Fprintf(out, "added %s\n", a.Expense.ID)

	cli.RenderVisible(out, s)

	return nil
}
