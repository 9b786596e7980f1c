package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/budgetiq/budget/renderer"
)

type settingsCmd struct{}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change the budget settings" }
func (*settingsCmd) Usage() string {
	return `biq settings [<key>=<value> ...]

  Without arguments, shows the current settings. With key=value arguments,
  updates those settings and saves them.

Usage Examples:
# Show all settings.
$ biq settings

# Change the savings goal and the currency.
$ biq settings goal=500 currency=EUR

`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	settings, _, err := store.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		printMarkdown(renderer.SettingsMarkdown(settings))
		return subcommands.ExitSuccess
	}

	for _, arg := range f.Args() {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			fmt.Fprintf(os.Stderr, "Error: expected key=value, got %q\n", arg)
			return subcommands.ExitUsageError
		}
		if err := settings.Set(key, value); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	if err := store.SaveSettings(settings); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SettingsMarkdown(settings))
	return subcommands.ExitSuccess
}
