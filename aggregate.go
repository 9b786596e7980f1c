package budget

import "github.com/shopspring/decimal"

// Health is the discrete spend-health classification shown on the insights
// screen.
type Health int

const (
	HealthGood Health = iota
	HealthModerate
	HealthBad
)

func (h Health) String() string {
	switch h {
	case HealthGood:
		return "good"
	case HealthModerate:
		return "moderate"
	case HealthBad:
		return "bad"
	default:
		return "unknown"
	}
}

// Classification thresholds. The boundaries are deliberate: a ratio of
// exactly 0.40 or 0.90 is moderate.
var (
	healthGoodBelow = decimal.NewFromFloat(0.40)
	healthBadAbove  = decimal.NewFromFloat(0.90)
)

// ClassifyHealth is the pure step function from spend ratio to verdict:
// good below 0.40, bad above 0.90, moderate in between (bounds included).
func ClassifyHealth(ratio decimal.Decimal) Health {
	switch {
	case ratio.LessThan(healthGoodBelow):
		return HealthGood
	case ratio.GreaterThan(healthBadAbove):
		return HealthBad
	default:
		return HealthModerate
	}
}

// Review holds the figures derived from (Settings, Ledger) for one calendar
// month. It is a pure projection: computing it has no side effects, it never
// fails, and it is recomputed on every read rather than cached. Zero or
// missing settings degrade to zero figures and clamped percentages.
type Review struct {
	settings Settings
	month    Range

	spent   Money // expenses within the month
	saved   Money // savings transfers within the month
	allTime Money // expenses over the whole log, for the health verdict
}

// NewReview computes the review of the calendar month containing 'on'.
// The sums are order-independent: any permutation of the log yields the
// same figures.
func NewReview(settings Settings, ledger *Ledger, on Date) *Review {
	month := Monthly.Range(on)
	r := &Review{settings: settings, month: month}

	r.spent = M(0, settings.Currency)
	r.saved = M(0, settings.Currency)
	r.allTime = M(0, settings.Currency)

	for tx := range ledger.Transactions(AcceptAll) {
		switch tx.What() {
		case KindExpense:
			r.allTime = r.allTime.Add(tx.Value())
			if month.Contains(tx.When()) {
				r.spent = r.spent.Add(tx.Value())
			}
		case KindSavings:
			if month.Contains(tx.When()) {
				r.saved = r.saved.Add(tx.Value())
			}
		case KindIncome, KindExtraIncome:
			// income does not reduce the disposable balance
		}
	}
	return r
}

// Month returns the calendar month the review covers.
func (r *Review) Month() Range { return r.month }

// MonthlySpent is the sum of expenses dated in the month.
func (r *Review) MonthlySpent() Money { return r.spent }

// MonthlySaved is the sum of savings transfers dated in the month.
func (r *Review) MonthlySaved() Money { return r.saved }

// DisposableBaseline is monthly income minus fixed bills. It may be zero or
// negative; callers must guard divisions with SpendRatio's floor divisor.
func (r *Review) DisposableBaseline() Money {
	return r.settings.MonthlyIncome.Sub(r.settings.FixedBills)
}

// RemainingDisposable is the baseline minus this month's spending and
// savings transfers.
func (r *Review) RemainingDisposable() Money {
	return r.DisposableBaseline().Sub(r.spent).Sub(r.saved)
}

// SavingsProgress is the monthly saved amount as a share of the goal,
// clamped to [0, 100]. A zero goal uses 1 as the floor divisor; that is a
// deliberate edge-case policy, not an approximation of a real goal.
func (r *Review) SavingsProgress() Percent {
	goal := r.settings.SavingsGoal.value
	pct := r.saved.value.Div(floorOne(goal)).Mul(decimal.NewFromInt(100))
	switch {
	case pct.IsNegative():
		return 0
	case pct.GreaterThan(decimal.NewFromInt(100)):
		return 100
	default:
		return Percent(pct.InexactFloat64())
	}
}

// SpendRatio is the all-time expense total over the disposable baseline.
// A baseline below 1 uses 1 as the floor divisor, so a degenerate baseline
// with any real spending reads as overspent.
func (r *Review) SpendRatio() decimal.Decimal {
	return r.allTime.value.Div(floorOne(r.DisposableBaseline().value))
}

// Health classifies the spend ratio.
func (r *Review) Health() Health {
	return ClassifyHealth(r.SpendRatio())
}

// floorOne returns d, or 1 when d is below 1. Used as a division-by-zero
// guard for ratios over user-provided baselines.
func floorOne(d decimal.Decimal) decimal.Decimal {
	one := decimal.NewFromInt(1)
	if d.LessThan(one) {
		return one
	}
	return d
}
