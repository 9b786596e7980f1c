package extract

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/budgetiq/budget"
)

func TestParseDraft(t *testing.T) {
	raw := `{"amount": 12.5, "merchant": "Corner Cafe", "date": "2025-07-04", "category": "Food & Dining"}`

	draft, err := parseDraft(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !draft.Amount.Equal(decimal.NewFromFloat(12.5)) {
		t.Errorf("amount = %s, want 12.5", draft.Amount)
	}
	if draft.Merchant != "Corner Cafe" {
		t.Errorf("merchant = %q, want Corner Cafe", draft.Merchant)
	}
	if draft.Date != budget.NewDate(2025, 7, 4) {
		t.Errorf("date = %v, want 2025-07-04", draft.Date)
	}
	if draft.Category != "Food & Dining" {
		t.Errorf("category = %q, want Food & Dining", draft.Category)
	}
}

func TestParseDraft_fencedAnswer(t *testing.T) {
	raw := "```json\n{\"amount\": 8, \"merchant\": \"Bakery\", \"date\": \"2025-07-04\", \"category\": \"Groceries\"}\n```"

	draft, err := parseDraft(raw)
	if err != nil {
		t.Fatal(err)
	}
	if draft.Merchant != "Bakery" {
		t.Errorf("merchant = %q, want Bakery", draft.Merchant)
	}
}

func TestParseDraft_amountAsString(t *testing.T) {
	// Some models answer numbers as strings despite the schema.
	raw := `{"amount": "23.90", "merchant": "Gas station", "date": "2025-07-04", "category": "Transportation"}`

	draft, err := parseDraft(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !draft.Amount.Equal(decimal.RequireFromString("23.90")) {
		t.Errorf("amount = %s, want 23.90", draft.Amount)
	}
}

func TestParseDraft_badDateFallsBackToToday(t *testing.T) {
	raw := `{"amount": 5, "merchant": "Kiosk", "date": "sometime last week", "category": "Other"}`

	draft, err := parseDraft(raw)
	if err != nil {
		t.Fatal(err)
	}
	if draft.Date != budget.Today() {
		t.Errorf("date = %v, want today", draft.Date)
	}
}

func TestParseDraft_unknownCategoryKept(t *testing.T) {
	raw := `{"amount": 5, "merchant": "Vet", "date": "2025-07-04", "category": "Pet care"}`

	draft, err := parseDraft(raw)
	if err != nil {
		t.Fatal(err)
	}
	if draft.Category != "Pet care" {
		t.Errorf("category = %q, want the free text kept", draft.Category)
	}
}

func TestParseDraft_rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "the receipt shows a total of 12.50"},
		{"zero amount", `{"amount": 0, "merchant": "Cafe", "date": "2025-07-04", "category": "Other"}`},
		{"negative amount", `{"amount": -3, "merchant": "Cafe", "date": "2025-07-04", "category": "Other"}`},
		{"empty merchant", `{"amount": 5, "merchant": " ", "date": "2025-07-04", "category": "Other"}`},
		{"missing amount", `{"merchant": "Cafe", "date": "2025-07-04", "category": "Other"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseDraft(tc.raw); err == nil {
				t.Errorf("parseDraft(%q) should fail", tc.raw)
			}
		})
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tc := range tests {
		if got := stripFences(tc.in); got != tc.want {
			t.Errorf("stripFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestInstructionNamesCategories(t *testing.T) {
	text := instruction()
	for _, c := range budget.Categories {
		if !strings.Contains(text, c) {
			t.Errorf("instruction does not offer category %q", c)
		}
	}
}
