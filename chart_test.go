package budget

import (
	"reflect"
	"testing"
)

func TestProjectBuckets_weekly(t *testing.T) {
	ledger := newTestLedger(t,
		mustValidate(NewExpense(MustParse("2025-07-04"), "Cafe", "Food & Dining", "", USD(10), false)),
		mustValidate(NewExpense(MustParse("2025-07-04"), "Bakery", "Food & Dining", "", USD(5), false)),
		mustValidate(NewIncome(MustParse("2025-07-01"), "Acme", "Salary", "", USD(3000))),
		mustValidate(NewExtraIncome(MustParse("2025-07-04"), "Garage sale", "Other", "", USD(75))),
	)

	buckets := ProjectBuckets(ledger, Weekly)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}

	var names []string
	for _, b := range buckets {
		names = append(names, b.Name)
	}
	// The log is date sorted so Day 1 is seen before Day 4.
	if !reflect.DeepEqual(names, []string{"Day 1", "Day 4"}) {
		t.Errorf("bucket names = %v, want [Day 1 Day 4]", names)
	}

	day4 := buckets[1]
	if !day4.Expense.Equal(USD(15)) {
		t.Errorf("Day 4 expense = %s, want %s", day4.Expense, USD(15))
	}
	if !day4.Extra.Equal(USD(75)) {
		t.Errorf("Day 4 extra = %s, want %s", day4.Extra, USD(75))
	}
	if !buckets[0].Income.Equal(USD(3000)) {
		t.Errorf("Day 1 income = %s, want %s", buckets[0].Income, USD(3000))
	}
}

func TestProjectBuckets_monthly(t *testing.T) {
	ledger := newTestLedger(t,
		mustValidate(NewExpense(MustParse("2025-06-28"), "Cinema", "Entertainment", "", USD(20), false)),
		mustValidate(NewExpense(MustParse("2025-07-04"), "Cafe", "Food & Dining", "", USD(10), false)),
	)

	buckets := ProjectBuckets(ledger, Monthly)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}
	if buckets[0].Name != "Jun" || buckets[1].Name != "Jul" {
		t.Errorf("bucket names = %q %q, want Jun Jul", buckets[0].Name, buckets[1].Name)
	}
}

func TestProjectBuckets_savingsCreateEmptyBucket(t *testing.T) {
	// A savings transfer claims its bucket position but adds to no series.
	ledger := newTestLedger(t,
		mustValidate(NewSavingsTransfer(MustParse("2025-07-15"), "Fund", "", USD(200))),
		mustValidate(NewExpense(MustParse("2025-07-20"), "Cafe", "Food & Dining", "", USD(10), false)),
	)

	buckets := ProjectBuckets(ledger, Weekly)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}
	day15 := buckets[0]
	if day15.Name != "Day 15" {
		t.Errorf("first bucket = %q, want Day 15", day15.Name)
	}
	if !day15.Expense.IsZero() || !day15.Income.IsZero() || !day15.Extra.IsZero() {
		t.Errorf("savings should not be charted, got %+v", day15)
	}
}

func TestProjectBuckets_deterministic(t *testing.T) {
	ledger := scenarioLedger(t)

	first := ProjectBuckets(ledger, Weekly)
	second := ProjectBuckets(ledger, Weekly)
	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over the same log produced different buckets")
	}
}

func TestProjectBuckets_empty(t *testing.T) {
	if buckets := ProjectBuckets(NewLedger(), Monthly); len(buckets) != 0 {
		t.Errorf("got %d buckets from an empty log, want 0", len(buckets))
	}
}
