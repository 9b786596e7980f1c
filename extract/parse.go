package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"github.com/budgetiq/budget"
)

// parseDraft reads the model's JSON answer into a Draft. Models wrap JSON in
// markdown fences more often than not, so those are stripped first.
func parseDraft(raw string) (Draft, error) {
	var jobj any
	if err := json.Unmarshal([]byte(stripFences(raw)), &jobj); err != nil {
		return Draft{}, fmt.Errorf("answer is not valid JSON: %w", err)
	}

	amount, err := jsonNumber(jobj, "$.amount")
	if err != nil {
		return Draft{}, err
	}
	if !amount.IsPositive() {
		return Draft{}, fmt.Errorf("amount %s is not positive", amount)
	}

	merchant, err := jsonString(jobj, "$.merchant")
	if err != nil {
		return Draft{}, err
	}
	if strings.TrimSpace(merchant) == "" {
		return Draft{}, fmt.Errorf("merchant is empty")
	}

	// Date and category are best effort: an unreadable date falls back to
	// today, a category outside the known list stays as free text.
	day := budget.Today()
	if s, err := jsonString(jobj, "$.date"); err == nil {
		if parsed, err := budget.ParseDate(s); err == nil {
			day = parsed
		}
	}
	category := budget.CategoryOther
	if s, err := jsonString(jobj, "$.category"); err == nil && strings.TrimSpace(s) != "" {
		category = budget.NormalizeCategory(s)
	}

	return Draft{
		Amount:   amount,
		Merchant: strings.TrimSpace(merchant),
		Date:     day,
		Category: category,
	}, nil
}

// stripFences removes a surrounding ```json ... ``` markdown fence, if any.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func jsonString(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error reading %q: %w", path, err)
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("error reading %q: not a string: %v", path, jval)
	}
	return s, nil
}

func jsonNumber(jobj any, path string) (decimal.Decimal, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("error reading %q: %w", path, err)
	}
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("error reading %q: %w", path, err)
		}
		return d, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("error reading %q: not a number: %v", path, jval)
	}
}
