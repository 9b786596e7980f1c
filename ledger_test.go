package budget

import (
	"testing"
)

func newTestLedger(t *testing.T, txs ...Transaction) *Ledger {
	t.Helper()
	ledger := NewLedger()
	if err := ledger.Append(txs...); err != nil {
		t.Fatal(err)
	}
	return ledger
}

func TestLedger_Append_rejectsDuplicateID(t *testing.T) {
	tx := mustValidate(NewExpense(MustParse("2025-07-04"), "Cafe", "Food & Dining", "", USD(10), false))

	ledger := newTestLedger(t, tx)
	if err := ledger.Append(tx); err == nil {
		t.Fatal("expected an error appending a duplicate id, got none")
	}
	if ledger.Len() != 1 {
		t.Errorf("ledger has %d transactions, want 1", ledger.Len())
	}
}

func TestLedger_Append_keepsDateOrder(t *testing.T) {
	late := mustValidate(NewExpense(MustParse("2025-07-20"), "Cinema", "Entertainment", "", USD(15), false))
	early := mustValidate(NewIncome(MustParse("2025-07-01"), "Acme", "Salary", "", USD(3000)))

	ledger := newTestLedger(t, late, early)

	var dates []string
	for tx := range ledger.Transactions(AcceptAll) {
		dates = append(dates, tx.When().String())
	}
	if dates[0] != "2025-07-01" || dates[1] != "2025-07-20" {
		t.Errorf("order = %v, want earliest first", dates)
	}
}

func TestLedger_Filters(t *testing.T) {
	ledger := newTestLedger(t,
		mustValidate(NewIncome(MustParse("2025-07-01"), "Acme", "Salary", "", USD(3000))),
		mustValidate(NewExpense(MustParse("2025-07-04"), "Cafe", "Food & Dining", "", USD(10), false)),
		mustValidate(NewExpense(MustParse("2025-08-02"), "Market", "Groceries", "", USD(40), false)),
		mustValidate(NewSavingsTransfer(MustParse("2025-07-15"), "Fund", "", USD(200))),
	)

	count := func(filter func(Transaction) bool) int {
		n := 0
		for range ledger.Transactions(filter) {
			n++
		}
		return n
	}

	if got := count(OfKind(KindExpense)); got != 2 {
		t.Errorf("expenses = %d, want 2", got)
	}
	july := Monthly.Range(MustParse("2025-07-31"))
	if got := count(InRange(july)); got != 3 {
		t.Errorf("july transactions = %d, want 3", got)
	}

	sum := ledger.Sum(OfKind(KindExpense))
	if !sum.Equal(USD(50)) {
		t.Errorf("expense sum = %s, want %s", sum, USD(50))
	}
}

func TestLedger_TransactionDates(t *testing.T) {
	ledger := newTestLedger(t,
		mustValidate(NewExpense(MustParse("2025-07-04"), "Cafe", "Food & Dining", "", USD(10), false)),
		mustValidate(NewExpense(MustParse("2025-06-01"), "Market", "Groceries", "", USD(40), false)),
	)

	if got := ledger.OldestTransactionDate(); got != MustParse("2025-06-01") {
		t.Errorf("oldest = %v, want 2025-06-01", got)
	}
	if got := ledger.NewestTransactionDate(); got != MustParse("2025-07-04") {
		t.Errorf("newest = %v, want 2025-07-04", got)
	}
}
