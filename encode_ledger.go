package budget

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// amountTx is a specialized struct to read the amount of a transaction line
// in its two fields. The currency field may be absent for logs written by the
// reference application; such amounts inherit the user currency on Validate.
type amountTx struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountTx) Money() Money {
	return M(a.Amount, a.Currency)
}

// DecodeLedger decodes transactions from a stream of JSONL data, decodes
// each line into the appropriate variant, and returns a date-sorted Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Kind Kind `json:"kind"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify kind in line %q: %w", string(lineBytes), err)
		}

		// Every variant shares the same wire shape: base fields plus amount.
		var temp struct {
			baseTx
			amountTx
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}

		var decodedTx Transaction
		switch identifier.Kind {
		case KindExpense:
			decodedTx = Expense{baseTx: temp.baseTx, Amount: temp.Money()}
		case KindIncome:
			decodedTx = Income{baseTx: temp.baseTx, Amount: temp.Money()}
		case KindExtraIncome:
			decodedTx = ExtraIncome{baseTx: temp.baseTx, Amount: temp.Money()}
		case KindSavings:
			decodedTx = SavingsTransfer{baseTx: temp.baseTx, Amount: temp.Money()}
		default:
			return nil, fmt.Errorf("unknown transaction kind: %q", identifier.Kind)
		}

		if err := ledger.Append(decodedTx); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	// Perform a stable sort on the ledger based on the transaction date.
	ledger.stableSort()

	return ledger, nil
}

// EncodeTransaction marshals a single transaction to JSON and writes it to
// the writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger reorders transactions by date and persists them to an
// io.Writer in JSONL format. The sort is stable, meaning transactions on the
// same day maintain their original relative order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	decimal.MarshalJSONWithoutQuotes = true

	ledger.stableSort()

	for _, tx := range ledger.transactions {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}

	return nil
}
