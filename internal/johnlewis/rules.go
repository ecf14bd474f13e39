package johnlewis

import (
	"math/rand"

	"github.com/annakobylinska4-wq/life-game/internal/config"
	"github.com/annakobylinska4-wq/life-game/internal/life"
)

// buy pays for the product, adds it to the inventory and gives the retail
// therapy boost. The look recompute is left to the caller's post callback so
// it also covers states patched by hand.
func buy(s *life.PlayerState, p Product, boost int) life.Outcome {
	s.Money -= p.Cost
	s.Items = append(s.Items, p.Name)
	s.AddHappiness(boost)
	return life.Success("You bought %s for £%d! It's now in your inventory. Happiness +%d!",
		p.Name, p.Cost, boost)
}

// Browse buys a random affordable product.
func Browse(rules config.GameRules) life.RuleFunc {
	return func(s *life.PlayerState) life.Outcome {
		var affordable []Product
		for _, p := range catalogue {
			if p.Cost <= s.Money {
				affordable = append(affordable, p)
			}
		}
		if len(affordable) == 0 {
			return life.Failure("Not enough money to buy anything at John Lewis!")
		}
		return buy(s, affordable[rand.Intn(len(affordable))], rules.ShoppingHappiness)
	}
}

// PurchaseItem buys a specific product by name.
func PurchaseItem(rules config.GameRules, name string) life.RuleFunc {
	return func(s *life.PlayerState) life.Outcome {
		p, ok := ProductByName(name)
		if !ok {
			return life.Failure("Item not found!")
		}
		if s.Money < p.Cost {
			return life.Failure("Not enough money to buy %s!", p.Name)
		}
		return buy(s, p, rules.ShoppingHappiness)
	}
}
