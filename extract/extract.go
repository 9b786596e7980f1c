// Package extract turns receipt photos into transaction drafts using a
// vision model. A draft is a suggestion only; the caller reviews it and
// decides whether it becomes a transaction.
package extract

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/semaphore"

	"github.com/budgetiq/budget"
)

// Timeout bounds a single extraction end to end.
const Timeout = 30 * time.Second

// ErrBusy is returned while a previous extraction is still running.
var ErrBusy = errors.New("a receipt scan is already running")

// Error wraps any backend or parsing failure behind a single user-facing
// message. The cause stays available through Unwrap for logs.
type Error struct {
	Err error
}

func (e *Error) Error() string { return "could not analyze receipt" }
func (e *Error) Unwrap() error { return e.Err }

// Draft is the model's reading of a receipt. Every field may be wrong;
// nothing is persisted until the user confirms.
type Draft struct {
	Amount   decimal.Decimal
	Merchant string
	Date     budget.Date
	Category string
}

// Expense converts the confirmed draft into a transaction in the given
// currency.
func (d Draft) Expense(currency string) budget.Expense {
	return budget.NewExpense(d.Date, d.Merchant, d.Category, "", budget.M(d.Amount, currency), false)
}

// Backend is one vision model able to read a receipt image and answer with
// a JSON document holding amount, merchant, date and category.
type Backend interface {
	// Analyze sends the image and returns the raw JSON answer.
	Analyze(ctx context.Context, mimeType string, image []byte) (string, error)
}

// Service runs extractions one at a time.
type Service struct {
	backend Backend
	sem     *semaphore.Weighted
}

func NewService(backend Backend) *Service {
	return &Service{backend: backend, sem: semaphore.NewWeighted(1)}
}

// Extract analyzes one receipt image. A second call while one is in flight
// fails immediately with ErrBusy rather than queueing.
func (s *Service) Extract(ctx context.Context, mimeType string, image []byte) (Draft, error) {
	if !s.sem.TryAcquire(1) {
		return Draft{}, ErrBusy
	}
	defer s.sem.Release(1)

	if len(image) == 0 {
		return Draft{}, &Error{Err: fmt.Errorf("empty image")}
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	raw, err := s.backend.Analyze(ctx, mimeType, image)
	if err != nil {
		return Draft{}, &Error{Err: err}
	}

	draft, err := parseDraft(raw)
	if err != nil {
		return Draft{}, &Error{Err: err}
	}
	return draft, nil
}
