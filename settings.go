package budget

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currencies is the closed set of currency codes a user can pick.
var Currencies = []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD"}

// ValidCurrency reports whether code belongs to the supported set.
func ValidCurrency(code string) bool {
	for _, c := range Currencies {
		if c == code {
			return true
		}
	}
	return false
}

// PaySchedule is how often the user gets paid.
type PaySchedule string

const (
	PayWeekly   PaySchedule = "weekly"
	PayBiweekly PaySchedule = "biweekly"
	PayMonthly  PaySchedule = "monthly"
)

func ParsePaySchedule(s string) (PaySchedule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weekly":
		return PayWeekly, nil
	case "biweekly":
		return PayBiweekly, nil
	case "monthly":
		return PayMonthly, nil
	default:
		return "", fmt.Errorf("unknown pay schedule %q (want weekly, biweekly or monthly)", s)
	}
}

// Theme is the UI theme preference. It is persisted with the rest of the
// settings even though the CLI itself does not style its output with it.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
	}
}

// Settings is the user's budget baseline. There is exactly one per data
// directory; it is created with zero defaults on first run and overwritten
// as a whole on every change.
type Settings struct {
	Name                   string
	Currency               string
	MonthlyIncome          Money
	FixedBills             Money
	SavingsGoal            Money
	PaySchedule            PaySchedule
	Theme                  Theme
	IncludeReceiptInsights bool
	HasCompletedOnboarding bool
}

// DefaultSettings returns the first-run settings: zero amounts, USD,
// monthly pay schedule, light theme, onboarding not yet completed.
func DefaultSettings() Settings {
	return Settings{
		Currency:               "USD",
		MonthlyIncome:          M(0, "USD"),
		FixedBills:             M(0, "USD"),
		SavingsGoal:            M(0, "USD"),
		PaySchedule:            PayMonthly,
		Theme:                  ThemeLight,
		IncludeReceiptInsights: true,
	}
}

// Validate checks the settings invariants: amounts are non-negative and the
// enumerated fields belong to their closed sets.
func (s Settings) Validate() error {
	if !ValidCurrency(s.Currency) {
		return fmt.Errorf("unsupported currency %q (want one of %s)", s.Currency, strings.Join(Currencies, ", "))
	}
	if s.MonthlyIncome.IsNegative() {
		return fmt.Errorf("monthly income must not be negative, got %s", s.MonthlyIncome)
	}
	if s.FixedBills.IsNegative() {
		return fmt.Errorf("fixed bills must not be negative, got %s", s.FixedBills)
	}
	if s.SavingsGoal.IsNegative() {
		return fmt.Errorf("savings goal must not be negative, got %s", s.SavingsGoal)
	}
	if _, err := ParsePaySchedule(string(s.PaySchedule)); err != nil {
		return err
	}
	if _, err := ParseTheme(string(s.Theme)); err != nil {
		return err
	}
	return nil
}

// Set mutates a single settings field from its textual form, the way the
// settings screen edits them field by field. The key is case-insensitive.
// Invalid values are rejected before anything reaches the store.
func (s *Settings) Set(key, value string) error {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "name":
		s.Name = value
	case "currency":
		code := strings.ToUpper(strings.TrimSpace(value))
		if !ValidCurrency(code) {
			return fmt.Errorf("unsupported currency %q (want one of %s)", value, strings.Join(Currencies, ", "))
		}
		s.Currency = code
		// amounts inherit the user currency
		s.MonthlyIncome = M(s.MonthlyIncome.value, code)
		s.FixedBills = M(s.FixedBills.value, code)
		s.SavingsGoal = M(s.SavingsGoal.value, code)
	case "income", "monthlyincome":
		m, err := s.parseAmount(value)
		if err != nil {
			return fmt.Errorf("invalid monthly income: %w", err)
		}
		s.MonthlyIncome = m
	case "bills", "fixedbills":
		m, err := s.parseAmount(value)
		if err != nil {
			return fmt.Errorf("invalid fixed bills: %w", err)
		}
		s.FixedBills = m
	case "goal", "savingsgoal":
		m, err := s.parseAmount(value)
		if err != nil {
			return fmt.Errorf("invalid savings goal: %w", err)
		}
		s.SavingsGoal = m
	case "schedule", "payschedule":
		p, err := ParsePaySchedule(value)
		if err != nil {
			return err
		}
		s.PaySchedule = p
	case "theme":
		t, err := ParseTheme(value)
		if err != nil {
			return err
		}
		s.Theme = t
	case "receiptinsights":
		switch strings.ToLower(value) {
		case "true", "on", "yes":
			s.IncludeReceiptInsights = true
		case "false", "off", "no":
			s.IncludeReceiptInsights = false
		default:
			return fmt.Errorf("invalid boolean %q for receiptinsights", value)
		}
	default:
		return fmt.Errorf("unknown settings field %q", key)
	}
	return nil
}

// parseAmount parses a non-negative amount in the settings currency.
func (s Settings) parseAmount(value string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return Money{}, fmt.Errorf("not a number: %q", value)
	}
	if d.IsNegative() {
		return Money{}, fmt.Errorf("must not be negative, got %s", d)
	}
	return M(d, s.Currency), nil
}
