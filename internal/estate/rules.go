package estate

import "github.com/annakobylinska4-wq/life-game/internal/life"

// Browse greets the player with their current housing situation. Renting
// happens through RentFlat.
func Browse() life.RuleFunc {
	return func(s *life.PlayerState) life.Outcome {
		if s.FlatTier == 0 {
			return life.Success("Welcome! You're currently homeless. Browse our selection of flats to find your new home.")
		}
		name := "Unknown"
		if flat, ok := FlatByTier(s.FlatTier); ok {
			name = flat.Name
		}
		return life.Success("Welcome back! You're currently renting a %s for £%d/turn. Looking to upgrade?", name, s.Rent)
	}
}

// RentFlat moves the player to the given tier, tier 0 meaning giving the
// flat up. Rent is charged from the next day rollover on.
func RentFlat(tier int) life.RuleFunc {
	return func(s *life.PlayerState) life.Outcome {
		flat, ok := FlatByTier(tier)
		if !ok {
			return life.Failure("Invalid flat selection.")
		}

		current := s.FlatTier
		if current == tier {
			if tier == 0 {
				return life.Failure("You're already homeless!")
			}
			return life.Failure("You're already renting a %s!", flat.Name)
		}

		s.FlatTier = tier
		s.Rent = flat.Rent

		switch {
		case tier == 0:
			return life.Success("You've given up your flat and are now homeless. No rent to pay, but sleeping rough is tough.")
		case current == 0:
			return life.Success("Congratulations! You've rented a %s for £%d/turn. No more sleeping rough!", flat.Name, flat.Rent)
		case tier > current:
			return life.Success("Moving up in the world! You've upgraded to a %s for £%d/turn.", flat.Name, flat.Rent)
		default:
			return life.Success("You've downgraded to a %s for £%d/turn. Every penny counts!", flat.Name, flat.Rent)
		}
	}
}
