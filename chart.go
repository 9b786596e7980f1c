package budget

import "fmt"

// Bucket is a named aggregation slot holding the summed income, extra income
// and expense series for one chart position.
type Bucket struct {
	Name    string
	Income  Money
	Extra   Money
	Expense Money
}

// ProjectBuckets groups the log into display buckets. The bucket key is the
// day of the month ("Day N") for Weekly granularity and the locale short
// month name for anything else.
//
// A bucket is created the first time a transaction maps to its key; the
// sequence keeps that first-seen order rather than a chronological or
// alphabetical sort, matching the application's chart. Savings transfers are
// excluded from the chart (unlike the disposable-balance math, which counts
// them). Empty input yields an empty sequence; two runs over the same log
// produce identical buckets.
func ProjectBuckets(ledger *Ledger, granularity Period) []Bucket {
	buckets := make([]Bucket, 0)
	index := make(map[string]int)

	for tx := range ledger.Transactions(AcceptAll) {
		var key string
		if granularity == Weekly {
			key = fmt.Sprintf("Day %d", tx.When().Day())
		} else {
			key = tx.When().Format("Jan")
		}

		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, Bucket{Name: key})
		}

		switch tx.What() {
		case KindExpense:
			buckets[i].Expense = buckets[i].Expense.Add(tx.Value())
		case KindIncome:
			buckets[i].Income = buckets[i].Income.Add(tx.Value())
		case KindExtraIncome:
			buckets[i].Extra = buckets[i].Extra.Add(tx.Value())
		case KindSavings:
			// savings are not charted
		}
	}
	return buckets
}
