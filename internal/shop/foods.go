// Package shop holds the corner shop's food catalogue and buy actions.
package shop

import "strings"

// Food is one entry in the shop catalogue. Ten calories knock one point off
// hunger.
type Food struct {
	Name     string `json:"name"`
	Cost     int    `json:"cost"`
	Calories int    `json:"calories"`
}

var catalogue = []Food{
	{Name: "Apple", Cost: 3, Calories: 95},
	{Name: "Banana", Cost: 2, Calories: 105},
	{Name: "Bread", Cost: 5, Calories: 265},
	{Name: "Milk", Cost: 4, Calories: 150},
	{Name: "Eggs", Cost: 6, Calories: 155},
	{Name: "Cheese", Cost: 8, Calories: 200},
	{Name: "Chicken", Cost: 12, Calories: 335},
	{Name: "Beef", Cost: 15, Calories: 425},
	{Name: "Rice", Cost: 7, Calories: 205},
	{Name: "Pasta", Cost: 6, Calories: 220},
	{Name: "Vegetables", Cost: 10, Calories: 120},
	{Name: "Pizza", Cost: 14, Calories: 285},
	{Name: "Sandwich", Cost: 9, Calories: 250},
	{Name: "Coffee", Cost: 5, Calories: 95},
	{Name: "Chocolate", Cost: 4, Calories: 210},
}

// Foods returns the full catalogue.
func Foods() []Food {
	out := make([]Food, len(catalogue))
	copy(out, catalogue)
	return out
}

// FoodByName looks up a food, ignoring case.
func FoodByName(name string) (Food, bool) {
	name = strings.TrimSpace(name)
	for _, f := range catalogue {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Food{}, false
}
