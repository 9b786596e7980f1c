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

// appendTransaction validates the transaction against the current settings
// and appends it to the store. Nothing is written when validation fails.
func appendTransaction(tx budget.Transaction) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	settings, _, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading budget: %v\n", err)
		return subcommands.ExitFailure
	}

	tx, err = tx.Validate(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := store.Append(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Transaction(tx))
	return subcommands.ExitSuccess
}

// addCmd is the shared shape of the four entry commands. Each instance
// binds a name and a constructor for its transaction kind.
type addCmd struct {
	name     string
	synopsis string
	label    string // flag help for the merchant field
	holidays bool   // expenses only
	build    func(c *addCmd, day budget.Date, amount budget.Money) budget.Transaction

	amount   float64
	merchant string
	date     string
	category string
	notes    string
	holiday  bool
}

func newExpenseCmd() *addCmd {
	return &addCmd{
		name:     "expense",
		synopsis: "record money spent",
		label:    "Merchant name",
		holidays: true,
		build: func(c *addCmd, day budget.Date, amount budget.Money) budget.Transaction {
			return budget.NewExpense(day, c.merchant, c.category, c.notes, amount, c.holiday)
		},
	}
}

func newIncomeCmd() *addCmd {
	return &addCmd{
		name:     "income",
		synopsis: "record regular income",
		label:    "Income source",
		build: func(c *addCmd, day budget.Date, amount budget.Money) budget.Transaction {
			return budget.NewIncome(day, c.merchant, c.category, c.notes, amount)
		},
	}
}

func newExtraCmd() *addCmd {
	return &addCmd{
		name:     "extra",
		synopsis: "record one-off extra income",
		label:    "Income source",
		build: func(c *addCmd, day budget.Date, amount budget.Money) budget.Transaction {
			return budget.NewExtraIncome(day, c.merchant, c.category, c.notes, amount)
		},
	}
}

func newSavingsCmd() *addCmd {
	return &addCmd{
		name:     "savings",
		synopsis: "record a transfer into savings",
		label:    "Label for the transfer",
		build: func(c *addCmd, day budget.Date, amount budget.Money) budget.Transaction {
			return budget.NewSavingsTransfer(day, c.merchant, c.notes, amount)
		},
	}
}

func (c *addCmd) Name() string     { return c.name }
func (c *addCmd) Synopsis() string { return c.synopsis }
func (c *addCmd) Usage() string {
	return fmt.Sprintf(`biq %s -a <amount> -m <name> [-d <date>] [-c <category>] [-n <note>]

  Records a %s transaction in the log. The amount is in the budget currency.
`, c.name, c.name)
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", 0, "Amount in the budget currency")
	f.StringVar(&c.merchant, "m", "", c.label)
	f.StringVar(&c.date, "d", budget.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.category, "c", "", "Spending category")
	f.StringVar(&c.notes, "n", "", "An optional note for the transaction")
	if c.holidays {
		f.BoolVar(&c.holiday, "holiday", false, "Mark as holiday spending")
	}
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 || c.merchant == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := budget.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	return appendTransaction(c.build(c, day, budget.M(c.amount, "")))
}
