package budget

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeTransaction(t *testing.T) {
	tests := []struct {
		name string
		tx   Transaction
		want string
	}{
		{
			name: "expense",
			tx: Expense{
				baseTx: baseTx{Kind: KindExpense, Ref: "a1", Date: NewDate(2025, 7, 4), Merchant: "Corner Cafe", Category: "Food & Dining"},
				Amount: USD(12.5),
			},
			want: `{"kind":"expense","id":"a1","date":"2025-07-04","merchant":"Corner Cafe","category":"Food & Dining","currency":"USD","amount":12.5}`,
		},
		{
			name: "income without currency",
			tx: Income{
				baseTx: baseTx{Kind: KindIncome, Ref: "a2", Date: NewDate(2025, 7, 1), Merchant: "Acme Corp", Category: "Salary"},
				Amount: NO(3000),
			},
			want: `{"kind":"income","id":"a2","date":"2025-07-01","merchant":"Acme Corp","category":"Salary","amount":3000}`,
		},
		{
			name: "holiday expense with note",
			tx: Expense{
				baseTx: baseTx{Kind: KindExpense, Ref: "a3", Date: NewDate(2025, 12, 24), Merchant: "Toy Store", Category: "Shopping", Holiday: true, Notes: "gifts"},
				Amount: EUR(80),
			},
			want: `{"kind":"expense","id":"a3","date":"2025-12-24","merchant":"Toy Store","category":"Shopping","holiday":true,"notes":"gifts","currency":"EUR","amount":80}`,
		},
		{
			name: "savings",
			tx: SavingsTransfer{
				baseTx: baseTx{Kind: KindSavings, Ref: "a4", Date: NewDate(2025, 7, 15), Merchant: "Emergency fund", Category: "Savings"},
				Amount: USD(200),
			},
			want: `{"kind":"savings","id":"a4","date":"2025-07-15","merchant":"Emergency fund","category":"Savings","currency":"USD","amount":200}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var b bytes.Buffer
			if err := EncodeTransaction(&b, tc.tx); err != nil {
				t.Fatal(err)
			}
			if got := strings.TrimSuffix(b.String(), "\n"); got != tc.want {
				t.Errorf("got  %s\nwant %s", got, tc.want)
			}
		})
	}
}

func TestDecodeLedger_roundTrip(t *testing.T) {
	transactions := []Transaction{
		mustValidate(NewIncome(MustParse("2025-07-01"), "Acme Corp", "Salary", "", USD(3000))),
		mustValidate(NewExpense(MustParse("2025-07-04"), "Corner Cafe", "Food & Dining", "", USD(12.5), false)),
		mustValidate(NewExtraIncome(MustParse("2025-07-10"), "Garage sale", "Other", "", USD(75))),
		mustValidate(NewSavingsTransfer(MustParse("2025-07-15"), "Emergency fund", "", USD(200))),
	}
	ledger := NewLedger()
	if err := ledger.Append(transactions...); err != nil {
		t.Fatal(err)
	}

	var b bytes.Buffer
	if err := EncodeLedger(&b, ledger); err != nil {
		t.Fatal(err)
	}

	back, err := DecodeLedger(&b)
	if err != nil {
		t.Fatal(err)
	}
	if back.Len() != len(transactions) {
		t.Fatalf("decoded %d transactions, want %d", back.Len(), len(transactions))
	}

	i := 0
	for tx := range back.Transactions(AcceptAll) {
		if !tx.Equal(transactions[i]) {
			t.Errorf("transaction %d = %v, want %v", i, tx, transactions[i])
		}
		i++
	}
}

func TestDecodeLedger_sortsByDate(t *testing.T) {
	lines := strings.Join([]string{
		`{"kind":"expense","id":"b2","date":"2025-07-04","merchant":"Cafe","category":"Food & Dining","amount":10}`,
		`{"kind":"income","id":"b1","date":"2025-07-01","merchant":"Acme","category":"Salary","amount":3000}`,
	}, "\n")

	ledger, err := DecodeLedger(strings.NewReader(lines))
	if err != nil {
		t.Fatal(err)
	}

	var ids []string
	for tx := range ledger.Transactions(AcceptAll) {
		ids = append(ids, tx.ID())
	}
	if len(ids) != 2 || ids[0] != "b1" || ids[1] != "b2" {
		t.Errorf("order = %v, want [b1 b2]", ids)
	}
}

func TestDecodeLedger_unknownKind(t *testing.T) {
	line := `{"kind":"refund","id":"c1","date":"2025-07-04","merchant":"Cafe","category":"Other","amount":10}`
	if _, err := DecodeLedger(strings.NewReader(line)); err == nil {
		t.Fatal("expected an error for unknown kind, got none")
	}
}

func TestDecodeLedger_missingCurrency(t *testing.T) {
	// Logs written by the reference application carry no currency field.
	line := `{"kind":"expense","id":"d1","date":"2025-07-04","merchant":"Cafe","category":"Food & Dining","amount":10}`
	ledger, err := DecodeLedger(strings.NewReader(line))
	if err != nil {
		t.Fatal(err)
	}
	for tx := range ledger.Transactions(AcceptAll) {
		if got := tx.Value().Currency(); got != "" {
			t.Errorf("currency = %q, want empty before validation", got)
		}
		fixed, err := tx.Validate(testSettings())
		if err != nil {
			t.Fatal(err)
		}
		if got := fixed.Value().Currency(); got != "USD" {
			t.Errorf("currency after validation = %q, want USD", got)
		}
	}
}
