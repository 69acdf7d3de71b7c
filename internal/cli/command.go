package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/GustavoCaso/expensify/internal/logger"
	"github.com/GustavoCaso/expensify/internal/render"
	"github.com/GustavoCaso/expensify/internal/selector"
	"github.com/GustavoCaso/expensify/internal/store"
)

type Command interface {
	SetFlags(fset *flag.FlagSet)
	Description() string
	Run(s *store.Store, logger *logger.Logger, out io.Writer) error
}

// RenderVisible writes the visible expenses of the current state.
func RenderVisible(out io.Writer, s *store.Store) {
	state := s.State()
	render.Expenses(out, selector.Visible(state.Expenses, state.Filters), state.Filters)
}

// StringFlag registers a string flag that stores its value in *dst only
// when it is present on the command line.
func StringFlag(fset *flag.FlagSet, name, usage string, dst **string) {
	fset.Func(name, usage, func(v string) error {
		*dst = &v
		return nil
	})
}

// Int64Flag is StringFlag for integer values.
func Int64Flag(fset *flag.FlagSet, name, usage string, dst **int64) {
	fset.Func(name, usage, func(v string) error {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", v, err)
		}
		*dst = &i
		return nil
	})
}
