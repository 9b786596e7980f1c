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

type insightsCmd struct {
	granularity string
	date        string
}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "display budget health, nudges and cash flow buckets" }
func (*insightsCmd) Usage() string {
	return `biq insights [-g weekly|monthly] [-d <date>]

  Displays the budget health verdict with a nudge, the cash flow grouped by
  week day or month, and a micro-saving idea.
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.granularity, "g", "monthly", "Chart granularity (weekly, monthly).")
	f.StringVar(&c.date, "d", budget.Today().String(), "Date inside the month to review.")
}

func (c *insightsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var granularity budget.Period
	switch c.granularity {
	case "weekly":
		granularity = budget.Weekly
	case "monthly":
		granularity = budget.Monthly
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown granularity %q (want weekly or monthly)\n", c.granularity)
		return subcommands.ExitUsageError
	}

	on, err := budget.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	settings, ledger, err := store.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	review := budget.NewReview(settings, ledger, on)
	buckets := budget.ProjectBuckets(ledger, granularity)
	printMarkdown(renderer.InsightsMarkdown(review, buckets, granularity))

	return subcommands.ExitSuccess
}
