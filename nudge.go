package budget

import "math/rand/v2"

// Vibe lines shown with the spend-health verdict, one pool per status.
var (
	messagesGood = []string{
		"Your wallet is literally smiling right now.",
		"Under budget and overachieving — love that for you.",
		"Your bank account just did a happy dance.",
		"You're spending less than expected. Iconic behavior.",
		"Legendary Budgeting skill unlocked!",
		"Is that finanicially responsible person i see",
		"Your future self is sending you a high-five.",
		"You're making smarter choices. I like that.",
		"You're winning the quiet money game.",
		"Your spending is giving \"responsible main character.\"",
		"The universe approves of your spending habits",
		"Your money is staying exactly where it belongs — with you.",
		"You're basically a budgeting ninja.",
		"That's the energy we love.",
		"Your wallet is thriving.",
		"You're spending smart",
		"Thank you for saving for the future.",
		"Saving is a green flag",
		"Your finances are calm, and so are you.",
		"Treat yourself to a deep breath.",
	}

	messagesModerate = []string{
		"Keep an eye on things.",
		"Spending like a beige flag",
		"You're in the safe zone.",
		"A little spending is normal",
		"No need to stress.",
		"You're halfway through the month and holding strong.",
		"Your budget is balanced like a well-seasoned meal.",
		"You're doing okay",
		"You're doing better than you think.",
		"You're in the \"just right\" zone.",
		"You're doing fine",
		"Your spending is moderate",
		"You're on track",
		"No need to panic",
		"You're spending at a healthy pace.",
		"You're in the middle lane.",
		"Good job.",
		"Remember to spend intentionally",
		"OK spending energy.",
	}

	messagesBad = []string{
		"Hey, slow down — your wallet needs a breather.",
		"You're overspending. Let's take a tiny pause.",
		"Your budget is waving a little red flag.",
		"Deep breath — you can still turn this around.",
		"Your spending is spicy today. Maybe cool it a bit.",
		"Your wallet whispered, \"Please… mercy.\"",
		"Overspending happens — Today is a good day to pause.",
		"Your budget is asking for a timeout.",
		"You're going a bit over",
		"Your money is leaving faster than you planned.",
		"Your finances are saying, \"Let's rethink that one.\"",
		"Your spending is sprinting. Let's walk for a moment.",
		"Your wallet is asking for a five minute break.",
		"Your wallet is sweating.",
		"You're over budget",
		"Your spending is enthusiastic today. Maybe too enthusiastic.",
		"You're going over",
		"Your budget is gently tapping you on the shoulder.",
		"Overspending detected — but you've got this.",
		"Your money is leaving the chat too quickly",
	}

	microSavings = []string{
		"Move $3 to savings — future you will thank you.",
		"Skip one snack run today and pocket the extra cash.",
		"Make coffee at home and save the café money.",
		"Do a \"no-spend morning\"",
		"Transfer $1 for every hour you slept last night.",
		"Bring lunch from home and save the takeout money.",
		"Move $5 to savings — call it a tiny victory.",
		"Do a pantry meal tonight instead of grocery shopping.",
		"Unsubscribe from one marketing email that tempts you.",
		"Put away the amount you almost impulse-bought today.",
		"Skip delivery fees by cooking something simple.",
		"Do a \"no-spend challenge\" for the next 3 hours.",
		"Save the difference between name-brand and store-brand.",
		"Use what's already in your fridge before buying more.",
		"Skip one ride-share trip and walk if you can.",
		"Save $1 for every unread email you delete.",
		"Put away $5 if you avoided an impulse purchase today.",
		"Do a \"wallet cooldown\" — no spending for the next hour.",
		"Move $3 to savings — tiny steps add up.",
		"Transfer $2 for every bill you paid on time this month.",
		"Skip one streaming binge and save $3.",
		"Move $1 for every glass of water you drink today.",
		"Save the amount you would've tipped on delivery.",
		"Do a \"no-spend evening\" and relax at home.",
		"Transfer $5 — because small wins count too.",
	}
)

// VibeMessage picks a random line from the pool matching the verdict.
func VibeMessage(h Health) string {
	switch h {
	case HealthGood:
		return messagesGood[rand.IntN(len(messagesGood))]
	case HealthBad:
		return messagesBad[rand.IntN(len(messagesBad))]
	default:
		return messagesModerate[rand.IntN(len(messagesModerate))]
	}
}

// MicroSaving picks a random micro-saving nudge.
func MicroSaving() string {
	return microSavings[rand.IntN(len(microSavings))]
}
