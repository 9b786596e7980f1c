package budget

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// testSettings returns settings for a 3000/1000/1000 budget in USD.
func testSettings() Settings {
	s := DefaultSettings()
	s.Name = "Jo"
	s.MonthlyIncome = USD(3000)
	s.FixedBills = USD(1000)
	s.SavingsGoal = USD(1000)
	s.HasCompletedOnboarding = true
	return s
}

// mustValidate validates tx against testSettings and panics on error.
func mustValidate(tx Transaction) Transaction {
	v, err := tx.Validate(testSettings())
	if err != nil {
		panic(err)
	}
	return v
}
