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

type txCmd struct {
	period string
	start  string
	date   string
	kind   string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions in the log" }
func (*txCmd) Usage() string {
	return `biq tx [-p <period> | -s <start_date>] [-d <end_date>] [-k <kind>]

  Lists transactions from the log, with options for filtering by date range
  and kind.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.period, "p", "", "Predefined period (day, week, month, year).")
	f.StringVar(&p.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&p.date, "d", "", "The end date for the range.")
	f.StringVar(&p.kind, "k", "", "Only list this kind (expense, income, extra_income, savings).")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	_, ledger, err := store.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	filter := budget.AcceptAll
	// If no date range flags are provided, use the full range of the log.
	if p.start != "" || p.date != "" || p.period != "" {
		endDateStr := p.date
		if endDateStr == "" {
			endDateStr = budget.Today().String()
		}
		endDate, err := budget.ParseDate(endDateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitFailure
		}

		var periodRange budget.Range
		if p.start != "" {
			startDate, err := budget.ParseDate(p.start)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
				return subcommands.ExitFailure
			}
			periodRange = budget.NewRange(startDate, endDate)
		} else {
			period, err := budget.ParsePeriod(p.period)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
				return subcommands.ExitFailure
			}
			periodRange = period.Range(endDate)
		}
		filter = budget.InRange(periodRange)
	}

	if p.kind != "" {
		kind, err := budget.ParseKind(p.kind)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		inRange := filter
		filter = func(tx budget.Transaction) bool {
			return inRange(tx) && tx.What() == kind
		}
	}

	var transactions []budget.Transaction
	for tx := range ledger.Transactions(filter) {
		transactions = append(transactions, tx)
	}

	printMarkdown(renderer.Transactions(transactions))

	return subcommands.ExitSuccess
}
