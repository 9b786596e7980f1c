package budget

import (
	"bytes"
	"strings"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Currency != "USD" {
		t.Errorf("currency = %q, want USD", s.Currency)
	}
	if s.PaySchedule != PayMonthly {
		t.Errorf("schedule = %q, want monthly", s.PaySchedule)
	}
	if !s.IncludeReceiptInsights {
		t.Error("receipt insights should default to on")
	}
	if s.HasCompletedOnboarding {
		t.Error("onboarding should not be completed by default")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("default settings should validate, got %v", err)
	}
}

func TestSettings_Set(t *testing.T) {
	tests := []struct {
		key   string
		value string
		err   bool
		check func(s Settings) bool
	}{
		{"name", "Jo", false, func(s Settings) bool { return s.Name == "Jo" }},
		{"currency", "EUR", false, func(s Settings) bool { return s.Currency == "EUR" }},
		{"currency", "DOGE", true, nil},
		{"income", "3000", false, func(s Settings) bool { return s.MonthlyIncome.Equal(USD(3000)) }},
		{"income", "-5", true, nil},
		{"bills", "1000", false, func(s Settings) bool { return s.FixedBills.Equal(USD(1000)) }},
		{"goal", "0", false, func(s Settings) bool { return s.SavingsGoal.IsZero() }},
		{"schedule", "biweekly", false, func(s Settings) bool { return s.PaySchedule == PayBiweekly }},
		{"schedule", "hourly", true, nil},
		{"theme", "dark", false, func(s Settings) bool { return s.Theme == ThemeDark }},
		{"receiptinsights", "false", false, func(s Settings) bool { return !s.IncludeReceiptInsights }},
		{"unknown", "x", true, nil},
	}

	for _, tc := range tests {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			s := DefaultSettings()
			err := s.Set(tc.key, tc.value)
			if tc.err {
				if err == nil {
					t.Fatalf("Set(%q, %q) should fail", tc.key, tc.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set(%q, %q) unexpected error: %v", tc.key, tc.value, err)
			}
			if !tc.check(s) {
				t.Errorf("Set(%q, %q) did not take effect", tc.key, tc.value)
			}
		})
	}
}

func TestSettings_roundTrip(t *testing.T) {
	s := testSettings()
	s.Theme = ThemeDark

	var b bytes.Buffer
	if err := EncodeSettings(&b, s); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(b.String(), "version") {
		t.Errorf("settings document should carry no version field: %s", b.String())
	}

	back, err := DecodeSettings(&b)
	if err != nil {
		t.Fatal(err)
	}
	if back.Name != s.Name || back.Currency != s.Currency ||
		!back.MonthlyIncome.Equal(s.MonthlyIncome) ||
		!back.FixedBills.Equal(s.FixedBills) ||
		!back.SavingsGoal.Equal(s.SavingsGoal) ||
		back.PaySchedule != s.PaySchedule || back.Theme != s.Theme ||
		back.IncludeReceiptInsights != s.IncludeReceiptInsights ||
		back.HasCompletedOnboarding != s.HasCompletedOnboarding {
		t.Errorf("round trip = %+v, want %+v", back, s)
	}
}

func TestDecodeSettings_rejectsUnknownVersion(t *testing.T) {
	doc := `{"version":7,"name":"Jo","currency":"USD","monthlyIncome":3000,"fixedBills":1000,"savingsGoal":500,"paySchedule":"monthly","theme":"light","includeReceiptInsights":true,"hasCompletedOnboarding":true}`
	if _, err := DecodeSettings(strings.NewReader(doc)); err == nil {
		t.Fatal("expected an error for unknown document version, got none")
	}
}

func TestDecodeSettings_referenceDocument(t *testing.T) {
	// A document as the reference application writes it: no version field.
	doc := `{"name":"Jo","currency":"EUR","monthlyIncome":2500,"fixedBills":900,"savingsGoal":300,"paySchedule":"weekly","theme":"dark","includeReceiptInsights":false,"hasCompletedOnboarding":true}`
	s, err := DecodeSettings(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if s.Currency != "EUR" || !s.MonthlyIncome.Equal(EUR(2500)) || s.PaySchedule != PayWeekly {
		t.Errorf("decoded settings = %+v", s)
	}
}
