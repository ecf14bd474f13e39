package config

// Default returns the default game rules
func Default() GameRules {
	return GameRules{
		InitialMoney:     100,
		InitialHappiness: 50,
		InitialTiredness: 0,
		InitialHunger:    0,

		DayMinutes:           1440,
		DayStartHour:         6,
		TurnThresholdMinutes: 15,
		TravelMinutes:        60,
		ActionMinutes:        120,

		HungerPerTurn:    25,
		BurnoutTiredness: 81,
		BurnoutHunger:    81,

		WorkTiredness: 10,
		WageDivisor:   4,

		ShoppingHappiness: 10,

		MaxConversationEntries: 10,
	}
}

// Casual returns easier rules for casual difficulty
func Casual() GameRules {
	g := Default()
	g.HungerPerTurn = 15
	g.WorkTiredness = 8
	g.BurnoutTiredness = 91
	g.BurnoutHunger = 91
	return g
}

// Hard returns harder rules for experienced players
func Hard() GameRules {
	g := Default()
	g.HungerPerTurn = 35
	g.WorkTiredness = 14
	g.BurnoutTiredness = 71
	g.BurnoutHunger = 71
	g.TravelMinutes = 90
	return g
}

// ForDifficulty maps a difficulty name to its rule set. Unknown names get
// the default rules.
func ForDifficulty(name string) GameRules {
	switch name {
	case "casual":
		return Casual()
	case "hard":
		return Hard()
	default:
		return Default()
	}
}
