package budget

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Kind is a typed string identifying the transaction variants.
type Kind string

// Kinds used for identifying transactions in the log.
const (
	KindExpense     Kind = "expense"
	KindIncome      Kind = "income"
	KindExtraIncome Kind = "extra_income"
	KindSavings     Kind = "savings"
)

// Kinds lists all transaction kinds.
var Kinds = []Kind{KindExpense, KindIncome, KindExtraIncome, KindSavings}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindExpense, KindIncome, KindExtraIncome, KindSavings:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// Transaction defines the common interface for all variants recorded in the
// ledger. The set is closed: Expense, Income, ExtraIncome, SavingsTransfer.
// Every aggregation site switches exhaustively over it, so adding a variant
// is a compile-visible change.
type Transaction interface {
	What() Kind    // What returns the kind of the transaction (e.g., "expense").
	When() Date    // When returns the calendar date of the transaction.
	ID() string    // ID returns the unique, immutable identifier.
	Value() Money  // Value returns the positive amount.
	Equal(Transaction) bool
	Validate(settings Settings) (Transaction, error)
}

// baseTx carries the fields shared by every transaction variant.
type baseTx struct {
	Kind     Kind   `json:"kind"`              // Kind specifies the transaction variant.
	Ref      string `json:"id"`                // Ref is the unique id, assigned at creation.
	Date     Date   `json:"date"`              // Date is the calendar date, no time component.
	Merchant string `json:"merchant"`          // Merchant is the merchant or source label.
	Category string `json:"category"`          // Category is one of Categories, or free text from extraction.
	Holiday  bool   `json:"holiday,omitempty"` // Holiday marks spending during a holiday.
	Notes    string `json:"notes,omitempty"`   // Notes is an optional free-text note.
}

// What returns the kind of the transaction.
func (t baseTx) What() Kind { return t.Kind }

// When returns the date of the transaction.
func (t baseTx) When() Date { return t.Date }

// ID returns the unique identifier of the transaction.
func (t baseTx) ID() string { return t.Ref }

// MarshalJSON implements the json.Marshaler interface for baseTx.
func (t baseTx) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", t.Kind)
	w.Append("id", t.Ref)
	w.Append("date", t.Date)
	w.Append("merchant", t.Merchant)
	w.Append("category", t.Category)
	w.Optional("holiday", t.Holiday)
	w.Optional("notes", t.Notes)
	return w.MarshalJSON()
}

// Validate checks the base fields and applies quick fixes: a zero date
// becomes today, a missing id is assigned, an empty category falls back to
// Other. It's meant to be embedded in the variants' validation methods.
func (t *baseTx) Validate() error {
	if t.Date == (Date{}) {
		t.Date = Today()
	}
	if t.Ref == "" {
		t.Ref = uuid.NewString()
	}
	t.Category = NormalizeCategory(t.Category)
	if t.Merchant == "" {
		return errors.New("merchant or source label is missing")
	}
	return nil
}

// validateAmount applies the shared amount rules: strictly positive, and the
// user currency is inherited when the amount carries none.
func validateAmount(amount Money, settings Settings) (Money, error) {
	amount = amount.in(settings.Currency)
	if !amount.IsPositive() {
		return amount, fmt.Errorf("transaction amount must be positive, got %s", amount)
	}
	return amount, nil
}

// Expense represents discretionary spending.
type Expense struct {
	baseTx
	Amount Money // Amount is the positive amount spent.
}

// NewExpense creates a new Expense transaction.
func NewExpense(day Date, merchant, category, notes string, amount Money, holiday bool) Expense {
	return Expense{
		baseTx: baseTx{Kind: KindExpense, Date: day, Merchant: merchant, Category: category, Notes: notes, Holiday: holiday},
		Amount: amount,
	}
}

func (t Expense) Value() Money { return t.Amount }

// MarshalJSON implements the json.Marshaler interface for Expense.
func (t Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseTx)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

func (t Expense) Equal(other Transaction) bool {
	o, ok := other.(Expense)
	return ok && t.baseTx == o.baseTx && t.Amount.Equal(o.Amount)
}

// Validate checks the Expense fields and applies the quick fixes.
func (t Expense) Validate(settings Settings) (Transaction, error) {
	if err := t.baseTx.Validate(); err != nil {
		return t, err
	}
	amount, err := validateAmount(t.Amount, settings)
	if err != nil {
		return t, err
	}
	t.Amount = amount
	return t, nil
}

// Income represents the regular salary or main income source.
type Income struct {
	baseTx
	Amount Money // Amount is the positive amount received.
}

// NewIncome creates a new Income transaction.
func NewIncome(day Date, source, category, notes string, amount Money) Income {
	return Income{
		baseTx: baseTx{Kind: KindIncome, Date: day, Merchant: source, Category: category, Notes: notes},
		Amount: amount,
	}
}

func (t Income) Value() Money { return t.Amount }

// MarshalJSON implements the json.Marshaler interface for Income.
func (t Income) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseTx)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

func (t Income) Equal(other Transaction) bool {
	o, ok := other.(Income)
	return ok && t.baseTx == o.baseTx && t.Amount.Equal(o.Amount)
}

// Validate checks the Income fields and applies the quick fixes.
func (t Income) Validate(settings Settings) (Transaction, error) {
	if err := t.baseTx.Validate(); err != nil {
		return t, err
	}
	amount, err := validateAmount(t.Amount, settings)
	if err != nil {
		return t, err
	}
	t.Amount = amount
	return t, nil
}

// ExtraIncome represents a one-off income outside the regular schedule
// (a bonus, a sale, a gift). It is charted separately from Income.
type ExtraIncome struct {
	baseTx
	Amount Money // Amount is the positive amount received.
}

// NewExtraIncome creates a new ExtraIncome transaction.
func NewExtraIncome(day Date, source, category, notes string, amount Money) ExtraIncome {
	return ExtraIncome{
		baseTx: baseTx{Kind: KindExtraIncome, Date: day, Merchant: source, Category: category, Notes: notes},
		Amount: amount,
	}
}

func (t ExtraIncome) Value() Money { return t.Amount }

// MarshalJSON implements the json.Marshaler interface for ExtraIncome.
func (t ExtraIncome) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseTx)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

func (t ExtraIncome) Equal(other Transaction) bool {
	o, ok := other.(ExtraIncome)
	return ok && t.baseTx == o.baseTx && t.Amount.Equal(o.Amount)
}

// Validate checks the ExtraIncome fields and applies the quick fixes.
func (t ExtraIncome) Validate(settings Settings) (Transaction, error) {
	if err := t.baseTx.Validate(); err != nil {
		return t, err
	}
	amount, err := validateAmount(t.Amount, settings)
	if err != nil {
		return t, err
	}
	t.Amount = amount
	return t, nil
}

// SavingsTransfer represents money moved aside towards the savings goal.
// It reduces the disposable balance but is not an expense.
type SavingsTransfer struct {
	baseTx
	Amount Money // Amount is the positive amount set aside.
}

// NewSavingsTransfer creates a new SavingsTransfer transaction.
func NewSavingsTransfer(day Date, label, notes string, amount Money) SavingsTransfer {
	return SavingsTransfer{
		baseTx: baseTx{Kind: KindSavings, Date: day, Merchant: label, Category: "Savings", Notes: notes},
		Amount: amount,
	}
}

func (t SavingsTransfer) Value() Money { return t.Amount }

// MarshalJSON implements the json.Marshaler interface for SavingsTransfer.
func (t SavingsTransfer) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseTx)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

func (t SavingsTransfer) Equal(other Transaction) bool {
	o, ok := other.(SavingsTransfer)
	return ok && t.baseTx == o.baseTx && t.Amount.Equal(o.Amount)
}

// Validate checks the SavingsTransfer fields and applies the quick fixes.
func (t SavingsTransfer) Validate(settings Settings) (Transaction, error) {
	if err := t.baseTx.Validate(); err != nil {
		return t, err
	}
	amount, err := validateAmount(t.Amount, settings)
	if err != nil {
		return t, err
	}
	t.Amount = amount
	return t, nil
}
