// Package renderer turns budget reports into markdown strings ready for
// terminal rendering.
package renderer

import (
	"fmt"
	"strings"

	"github.com/budgetiq/budget"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx budget.Transaction) string {
	switch v := tx.(type) {
	case budget.Expense:
		return fmt.Sprintf("Spent %s at %s (%s)", v.Amount, v.Merchant, v.Category)
	case budget.Income:
		return fmt.Sprintf("Received %s from %s", v.Amount, v.Merchant)
	case budget.ExtraIncome:
		return fmt.Sprintf("Extra income %s from %s", v.Amount, v.Merchant)
	case budget.SavingsTransfer:
		return fmt.Sprintf("Saved %s (%s)", v.Amount, v.Merchant)
	default:
		return string(tx.What())
	}
}

// Transactions renders the list as a markdown table, one row per entry.
func Transactions(transactions []budget.Transaction) string {
	var b strings.Builder
	b.WriteString("# Transactions\n\n")
	if len(transactions) == 0 {
		b.WriteString("No transactions in this range.\n")
		return b.String()
	}
	b.WriteString("| Date | Kind | Merchant | Category | Amount |\n")
	b.WriteString("|---|---|---|---|---:|\n")
	for _, tx := range transactions {
		merchant, category := txDetails(tx)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			tx.When(), tx.What(), merchant, category, tx.Value())
	}
	return b.String()
}

func txDetails(tx budget.Transaction) (merchant, category string) {
	switch v := tx.(type) {
	case budget.Expense:
		return v.Merchant, v.Category
	case budget.Income:
		return v.Merchant, v.Category
	case budget.ExtraIncome:
		return v.Merchant, v.Category
	case budget.SavingsTransfer:
		return v.Merchant, v.Category
	}
	return "", ""
}

// SummaryMarkdown renders the monthly review as a markdown report.
func SummaryMarkdown(r *budget.Review) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Budget Summary %s\n\n", r.Month().Identifier())

	b.WriteString("| | |\n")
	b.WriteString("|---|---:|\n")
	fmt.Fprintf(&b, "| Disposable baseline | %s |\n", r.DisposableBaseline())
	fmt.Fprintf(&b, "| Spent this month | %s |\n", r.MonthlySpent())
	fmt.Fprintf(&b, "| Saved this month | %s |\n", r.MonthlySaved())
	fmt.Fprintf(&b, "| Remaining | %s |\n", r.RemainingDisposable())
	fmt.Fprintf(&b, "| Savings goal progress | %s |\n", r.SavingsProgress())
	fmt.Fprintf(&b, "| Budget health | %s |\n", r.Health())
	return b.String()
}

// InsightsMarkdown renders the health verdict, a nudge, the cash flow
// buckets and one micro-saving idea.
func InsightsMarkdown(r *budget.Review, buckets []budget.Bucket, granularity budget.Period) string {
	var b strings.Builder
	health := r.Health()
	fmt.Fprintf(&b, "# Insights\n\nBudget health: **%s**\n\n", health)
	fmt.Fprintf(&b, "> %s\n\n", budget.VibeMessage(health))

	fmt.Fprintf(&b, "## Cash flow by %s\n\n", granularity.Name())
	if len(buckets) == 0 {
		b.WriteString("No activity yet.\n\n")
	} else {
		b.WriteString("| Bucket | Income | Extra | Spent |\n")
		b.WriteString("|---|---:|---:|---:|\n")
		for _, bucket := range buckets {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				bucket.Name, bucket.Income, bucket.Extra, bucket.Expense)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Try this\n\n%s\n", budget.MicroSaving())
	return b.String()
}

// SettingsMarkdown renders the current settings, keyed the way the
// settings command accepts them.
func SettingsMarkdown(s budget.Settings) string {
	var b strings.Builder
	b.WriteString("# Settings\n\n")
	b.WriteString("| Key | Value |\n")
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| name | %s |\n", s.Name)
	fmt.Fprintf(&b, "| currency | %s |\n", s.Currency)
	fmt.Fprintf(&b, "| income | %s |\n", s.MonthlyIncome)
	fmt.Fprintf(&b, "| bills | %s |\n", s.FixedBills)
	fmt.Fprintf(&b, "| goal | %s |\n", s.SavingsGoal)
	fmt.Fprintf(&b, "| schedule | %s |\n", s.PaySchedule)
	fmt.Fprintf(&b, "| theme | %s |\n", s.Theme)
	fmt.Fprintf(&b, "| receiptinsights | %t |\n", s.IncludeReceiptInsights)
	return b.String()
}
