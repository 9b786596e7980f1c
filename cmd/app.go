// Package cmd implements the CLI application to manage a personal budget.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/budgetiq/budget"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "setup")
	c.Register(&settingsCmd{}, "setup")

	c.Register(newExpenseCmd(), "transactions")
	c.Register(newIncomeCmd(), "transactions")
	c.Register(newExtraCmd(), "transactions")
	c.Register(newSavingsCmd(), "transactions")
	c.Register(&scanCmd{}, "transactions")

	c.Register(&txCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&insightsCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataPath = flag.String("data-path", ".budget", "Path to the budget data folder")
var storeBackend = flag.String("store", "file", "Storage backend (file, sqlite)")

// openStore opens the configured storage backend.
func openStore() (budget.Store, error) {
	return budget.OpenStore(budget.StoreKind(*storeBackend), *dataPath)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
