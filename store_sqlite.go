package budget

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore persists both documents in a single database file: the
// settings in a one-row table, the log in an append table. Each write is one
// statement, so the previous state survives a failed one.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database file and brings the
// schema up to date.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, &PersistenceError{Op: "load", Err: fmt.Errorf("could not create db directory: %w", err)}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: fmt.Errorf("could not open database: %w", err)}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &PersistenceError{Op: "load", Err: fmt.Errorf("could not ping database: %w", err)}
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, &PersistenceError{Op: "load", Err: fmt.Errorf("could not run migrations: %w", err)}
	}

	return &SQLiteStore{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", d, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// Load reads both documents. A missing settings row means first run.
func (s *SQLiteStore) Load() (Settings, *Ledger, error) {
	settings, err := s.loadSettings()
	if err != nil {
		return Settings{}, nil, err
	}
	ledger, err := s.loadLedger()
	if err != nil {
		return Settings{}, nil, err
	}
	return settings, ledger, nil
}

func (s *SQLiteStore) loadSettings() (Settings, error) {
	row := s.db.QueryRow(`SELECT name, currency, monthly_income, fixed_bills, savings_goal,
		pay_schedule, theme, include_receipt_insights, has_completed_onboarding
		FROM settings WHERE id = 1`)

	var (
		settings                   Settings
		income, bills, goal        string
		schedule, theme            string
		receiptInsights, onboarded bool
	)
	err := row.Scan(&settings.Name, &settings.Currency, &income, &bills, &goal,
		&schedule, &theme, &receiptInsights, &onboarded)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, &PersistenceError{Op: "load", Err: err}
	}

	settings.MonthlyIncome, err = scanAmount(income, settings.Currency)
	if err != nil {
		return Settings{}, &PersistenceError{Op: "load", Err: err}
	}
	settings.FixedBills, err = scanAmount(bills, settings.Currency)
	if err != nil {
		return Settings{}, &PersistenceError{Op: "load", Err: err}
	}
	settings.SavingsGoal, err = scanAmount(goal, settings.Currency)
	if err != nil {
		return Settings{}, &PersistenceError{Op: "load", Err: err}
	}
	settings.PaySchedule = PaySchedule(schedule)
	settings.Theme = Theme(theme)
	settings.IncludeReceiptInsights = receiptInsights
	settings.HasCompletedOnboarding = onboarded
	return settings, nil
}

func (s *SQLiteStore) loadLedger() (*Ledger, error) {
	rows, err := s.db.Query(`SELECT id, kind, date, merchant, category, amount, currency, holiday, notes
		FROM transactions ORDER BY date, rowid`)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	defer rows.Close()

	ledger := NewLedger()
	for rows.Next() {
		var (
			base       baseTx
			kind, date string
			amount     string
			currency   string
		)
		if err := rows.Scan(&base.Ref, &kind, &date, &base.Merchant, &base.Category,
			&amount, &currency, &base.Holiday, &base.Notes); err != nil {
			return nil, &PersistenceError{Op: "load", Err: err}
		}

		base.Kind, err = ParseKind(kind)
		if err != nil {
			return nil, &PersistenceError{Op: "load", Err: err}
		}
		base.Date, err = ParseDate(date)
		if err != nil {
			return nil, &PersistenceError{Op: "load", Err: err}
		}
		value, err := scanAmount(amount, currency)
		if err != nil {
			return nil, &PersistenceError{Op: "load", Err: err}
		}

		var tx Transaction
		switch base.Kind {
		case KindExpense:
			tx = Expense{baseTx: base, Amount: value}
		case KindIncome:
			tx = Income{baseTx: base, Amount: value}
		case KindExtraIncome:
			tx = ExtraIncome{baseTx: base, Amount: value}
		case KindSavings:
			tx = SavingsTransfer{baseTx: base, Amount: value}
		}
		if err := ledger.Append(tx); err != nil {
			return nil, &PersistenceError{Op: "load", Err: err}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	return ledger, nil
}

// SaveSettings upserts the single settings row.
func (s *SQLiteStore) SaveSettings(settings Settings) error {
	_, err := s.db.Exec(`INSERT INTO settings
		(id, name, currency, monthly_income, fixed_bills, savings_goal, pay_schedule, theme, include_receipt_insights, has_completed_onboarding)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		name = excluded.name, currency = excluded.currency,
		monthly_income = excluded.monthly_income, fixed_bills = excluded.fixed_bills,
		savings_goal = excluded.savings_goal, pay_schedule = excluded.pay_schedule,
		theme = excluded.theme, include_receipt_insights = excluded.include_receipt_insights,
		has_completed_onboarding = excluded.has_completed_onboarding`,
		settings.Name, settings.Currency,
		settings.MonthlyIncome.value.String(), settings.FixedBills.value.String(),
		settings.SavingsGoal.value.String(), string(settings.PaySchedule), string(settings.Theme),
		settings.IncludeReceiptInsights, settings.HasCompletedOnboarding)
	if err != nil {
		return &PersistenceError{Op: "save settings", Err: err}
	}
	return nil
}

// Append inserts one transaction row. The id uniqueness invariant is backed
// by the primary key.
func (s *SQLiteStore) Append(tx Transaction) error {
	var base baseTx
	switch v := tx.(type) {
	case Expense:
		base = v.baseTx
	case Income:
		base = v.baseTx
	case ExtraIncome:
		base = v.baseTx
	case SavingsTransfer:
		base = v.baseTx
	default:
		return &PersistenceError{Op: "append", Err: fmt.Errorf("unknown transaction kind: %q", tx.What())}
	}

	_, err := s.db.Exec(`INSERT INTO transactions
		(id, kind, date, merchant, category, amount, currency, holiday, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		base.Ref, string(base.Kind), base.Date.String(), base.Merchant, base.Category,
		tx.Value().value.String(), tx.Value().Currency(), base.Holiday, base.Notes)
	if err != nil {
		return &PersistenceError{Op: "append", Err: err}
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// scanAmount parses a stored decimal string into Money.
func scanAmount(value, currency string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, fmt.Errorf("invalid stored amount %q: %w", value, err)
	}
	return M(d, currency), nil
}
