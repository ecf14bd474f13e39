package shop

import (
	"math/rand"

	"github.com/annakobylinska4-wq/life-game/internal/life"
)

// eat pays for the food and knocks down hunger. Food is consumed on the
// spot, it never reaches the inventory.
func eat(s *life.PlayerState, f Food) life.Outcome {
	s.Money -= f.Cost
	reduction := min(f.Calories/10, s.Hunger)
	s.Hunger -= reduction
	return life.Success("You bought %s for $%d (%d calories). Hunger reduced by %d!",
		f.Name, f.Cost, f.Calories, reduction)
}

// BuyFood grabs a random affordable item off the shelf.
func BuyFood() life.RuleFunc {
	return func(s *life.PlayerState) life.Outcome {
		var affordable []Food
		for _, f := range catalogue {
			if f.Cost <= s.Money {
				affordable = append(affordable, f)
			}
		}
		if len(affordable) == 0 {
			return life.Failure("Not enough money to buy anything!")
		}
		return eat(s, affordable[rand.Intn(len(affordable))])
	}
}

// PurchaseFood buys a specific item by name.
func PurchaseFood(name string) life.RuleFunc {
	return func(s *life.PlayerState) life.Outcome {
		f, ok := FoodByName(name)
		if !ok {
			return life.Failure("Item not found!")
		}
		if s.Money < f.Cost {
			return life.Failure("Not enough money to buy %s!", f.Name)
		}
		return eat(s, f)
	}
}
