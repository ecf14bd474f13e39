// Package home holds the rest action. Better housing gives better rest.
package home

import "github.com/annakobylinska4-wq/life-game/internal/life"

// RestBenefit is the recovery one rest gives at a flat tier, scaled for a
// two-hour rest period.
type RestBenefit struct {
	TirednessReduction int
	HappinessBoost     int
	Description        string
}

var restBenefits = map[int]RestBenefit{
	0: {TirednessReduction: 4, HappinessBoost: 0, Description: "rough night on the streets"},
	1: {TirednessReduction: 5, HappinessBoost: 1, Description: "dingy bedsit"},
	2: {TirednessReduction: 8, HappinessBoost: 1, Description: "basic studio"},
	3: {TirednessReduction: 10, HappinessBoost: 3, Description: "comfortable flat"},
	4: {TirednessReduction: 13, HappinessBoost: 4, Description: "stylish apartment"},
	5: {TirednessReduction: 15, HappinessBoost: 5, Description: "luxury penthouse"},
}

// BenefitFor returns the rest benefit for a flat tier, falling back to
// sleeping rough.
func BenefitFor(tier int) RestBenefit {
	if b, ok := restBenefits[tier]; ok {
		return b
	}
	return restBenefits[0]
}

// Rest recovers tiredness according to the player's housing, with a small
// happiness boost in the better flats. At least one point of tiredness always
// comes off.
func Rest() life.RuleFunc {
	return func(s *life.PlayerState) life.Outcome {
		benefit := BenefitFor(s.FlatTier)

		oldTiredness := s.Tiredness
		oldHappiness := s.Happiness

		reduction := max(1, benefit.TirednessReduction)
		s.Tiredness = max(0, oldTiredness-reduction)
		reduced := oldTiredness - s.Tiredness

		s.AddHappiness(benefit.HappinessBoost)
		gained := s.Happiness - oldHappiness

		switch {
		case reduced == 0 && s.FlatTier == 0:
			return life.Success("You found a spot to rest, but you were already well rested.")
		case reduced == 0:
			return life.Success("You relaxed in your %s, but you were already well rested.", benefit.Description)
		case s.FlatTier == 0:
			return life.Success("You found a spot to sleep rough. Tiredness reduced by %d.", reduced)
		case gained > 0:
			return life.Success("You rested in your %s. Tiredness reduced by %d! Happiness +%d.", benefit.Description, reduced, gained)
		default:
			return life.Success("You rested in your %s. Tiredness reduced by %d.", benefit.Description, reduced)
		}
	}
}
