package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/GustavoCaso/expensify/internal/cli"
	"github.com/GustavoCaso/expensify/internal/cli/add"
	"github.com/GustavoCaso/expensify/internal/cli/edit"
	"github.com/GustavoCaso/expensify/internal/cli/list"
	"github.com/GustavoCaso/expensify/internal/cli/remove"
	"github.com/GustavoCaso/expensify/internal/config"
	"github.com/GustavoCaso/expensify/internal/logger"
	"github.com/GustavoCaso/expensify/internal/render"
	"github.com/GustavoCaso/expensify/internal/seed"
	"github.com/GustavoCaso/expensify/internal/store"
	"github.com/GustavoCaso/expensify/internal/util"
)

type globalFlags struct {
	configPath string
	seedPath   string
	verbose    bool
}

func newSubcommands() map[string]cli.Command {
	return map[string]cli.Command{
		"add":    add.NewCommand(),
		"edit":   edit.NewCommand(),
		"list":   list.NewCommand(),
		"remove": remove.NewCommand(),
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("subcommand is required\n")
		printUsage(os.Stdout)

		os.Exit(1)
	}

	commandName := os.Args[1]
	if strings.Contains(commandName, "help") {
		printHelp(os.Stdout)

		os.Exit(0)
	}

	if err := run(commandName, os.Args[2:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}

func newFlagSet(name string, command cli.Command, globals *globalFlags) *flag.FlagSet {
	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.StringVar(&globals.configPath, "c", "expensify.toml", "Configuration file")
	fset.StringVar(&globals.seedPath, "seed", "", "Seed file (.toml, .yml or .yaml) with the initial expenses")
	fset.BoolVar(&globals.verbose, "v", false, "print the visible expenses after every action")

	command.SetFlags(fset)

	return fset
}

func run(commandName string, args []string, out io.Writer) error {
	command, ok := newSubcommands()[commandName]
	if !ok {
		return fmt.Errorf("unsupported command %s. \nUse 'help' command to print information about supported commands", commandName)
	}

	globals := &globalFlags{}
	if err := newFlagSet(commandName, command, globals).Parse(args); err != nil {
		return err
	}

	conf, err := config.Parse(globals.configPath)
	if err != nil {
		return fmt.Errorf("unable to parse the configuration: %w", err)
	}

	if globals.seedPath != "" {
		conf.Seed = globals.seedPath
	}

	util.SetColor(!conf.NoColor)
	appLogger := logger.New(conf.Logger)

	s := store.New(appLogger)
	defer s.Close()

	if globals.verbose {
		s.Subscribe(func() {
			render.Summary(out, s.State().Filters)
			cli.RenderVisible(out, s)
		})
	}

	if conf.Seed != "" {
		appLogger.Info("Loading seed", "path", conf.Seed)

		actions, err := seed.Load(conf.Seed)
		if err != nil {
			return fmt.Errorf("unable to load the seed: %w", err)
		}

		for _, a := range actions {
			s.Dispatch(a)
		}
	}

	return command.Run(s, appLogger, out)
}

func printHelp(out io.Writer) {
	printUsage(out)

	subcommands := newSubcommands()
	names := make([]string, 0, len(subcommands))
	for name := range subcommands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		command := subcommands[name]
		fmt.Fprintf(out, "subcommand <%s>: %s\n", name, command.Description())

		fset := newFlagSet(name, command, &globalFlags{})
		fset.SetOutput(out)
		fset.PrintDefaults()
		fmt.Fprintln(out)
	}
}

func printUsage(out io.Writer) {
	fmt.Fprintf(out, "usage: expensify <subcommand> [flags]\n\n")
}
