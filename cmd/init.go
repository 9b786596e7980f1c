package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/budgetiq/budget"
	"github.com/budgetiq/budget/renderer"
)

// initCmd runs the one-shot onboarding: it writes a settings document with
// the onboarding flag set, after which the reporting commands are useful.
type initCmd struct {
	name     string
	currency string
	income   float64
	bills    float64
	goal     float64
	schedule string
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "set up the budget for first use" }
func (*initCmd) Usage() string {
	return `biq init -income <amount> -bills <amount> [-name <name>] [-currency <code>] [-goal <amount>] [-schedule <schedule>]

  Creates the settings document. Running it again replaces the previous
  settings but keeps the transaction log untouched.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Your name, used in reports")
	f.StringVar(&c.currency, "currency", "USD", "Budget currency code")
	f.Float64Var(&c.income, "income", 0, "Monthly income")
	f.Float64Var(&c.bills, "bills", 0, "Fixed monthly bills")
	f.Float64Var(&c.goal, "goal", 0, "Monthly savings goal")
	f.StringVar(&c.schedule, "schedule", "monthly", "Pay schedule (weekly, biweekly, monthly)")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.income <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	schedule, err := budget.ParsePaySchedule(c.schedule)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	settings := budget.DefaultSettings()
	settings.Name = c.name
	settings.Currency = c.currency
	settings.MonthlyIncome = budget.M(c.income, c.currency)
	settings.FixedBills = budget.M(c.bills, c.currency)
	settings.SavingsGoal = budget.M(c.goal, c.currency)
	settings.PaySchedule = schedule
	settings.HasCompletedOnboarding = true

	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if err := store.SaveSettings(settings); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SettingsMarkdown(settings))
	return subcommands.ExitSuccess
}
