package budget

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// settingsDoc is the wire shape of the settings document. The reference
// layout has no version field; its absence reads as version 0 and version 0
// is written without the field to stay byte-compatible.
type settingsDoc struct {
	Version                int             `json:"version,omitempty"`
	Name                   string          `json:"name"`
	Currency               string          `json:"currency"`
	MonthlyIncome          decimal.Decimal `json:"monthlyIncome"`
	FixedBills             decimal.Decimal `json:"fixedBills"`
	SavingsGoal            decimal.Decimal `json:"savingsGoal"`
	PaySchedule            string          `json:"paySchedule"`
	Theme                  string          `json:"theme"`
	IncludeReceiptInsights bool            `json:"includeReceiptInsights"`
	HasCompletedOnboarding bool            `json:"hasCompletedOnboarding"`
}

// DecodeSettings reads the settings document. Amounts are plain numbers in
// the document and become Money in the document's currency.
func DecodeSettings(r io.Reader) (Settings, error) {
	var doc settingsDoc
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return Settings{}, fmt.Errorf("could not decode settings document: %w", err)
	}
	if doc.Version != 0 {
		return Settings{}, fmt.Errorf("unsupported settings document version %d", doc.Version)
	}

	s := Settings{
		Name:                   doc.Name,
		Currency:               doc.Currency,
		MonthlyIncome:          M(doc.MonthlyIncome, doc.Currency),
		FixedBills:             M(doc.FixedBills, doc.Currency),
		SavingsGoal:            M(doc.SavingsGoal, doc.Currency),
		PaySchedule:            PaySchedule(doc.PaySchedule),
		Theme:                  Theme(doc.Theme),
		IncludeReceiptInsights: doc.IncludeReceiptInsights,
		HasCompletedOnboarding: doc.HasCompletedOnboarding,
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings document: %w", err)
	}
	return s, nil
}

// EncodeSettings writes the settings document with a stable field order.
func EncodeSettings(w io.Writer, s Settings) error {
	decimal.MarshalJSONWithoutQuotes = true

	var ow jsonObjectWriter
	ow.Append("name", s.Name)
	ow.Append("currency", s.Currency)
	ow.Append("monthlyIncome", s.MonthlyIncome.value)
	ow.Append("fixedBills", s.FixedBills.value)
	ow.Append("savingsGoal", s.SavingsGoal.value)
	ow.Append("paySchedule", string(s.PaySchedule))
	ow.Append("theme", string(s.Theme))
	ow.Append("includeReceiptInsights", s.IncludeReceiptInsights)
	ow.Append("hasCompletedOnboarding", s.HasCompletedOnboarding)

	data, err := ow.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
