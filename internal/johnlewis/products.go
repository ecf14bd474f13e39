// Package johnlewis holds the department store's clothing and furniture
// catalogue and its purchase actions. Unlike food, purchases land in the
// player's inventory, and clothing feeds the look level.
package johnlewis

import "strings"

// Product categories.
const (
	CategoryClothing  = "clothing"
	CategoryFurniture = "furniture"
)

// Product is one entry in the John Lewis catalogue.
type Product struct {
	Name     string `json:"name"`
	Cost     int    `json:"cost"`
	Category string `json:"category"`
	Emoji    string `json:"emoji"`
}

var catalogue = []Product{
	// Workwear
	{Name: "Formal Suit", Cost: 250, Category: CategoryClothing, Emoji: "🤵"},
	{Name: "Blazer", Cost: 180, Category: CategoryClothing, Emoji: "🧥"},
	{Name: "Dress Shirt", Cost: 65, Category: CategoryClothing, Emoji: "👔"},
	{Name: "Oxford Shirt", Cost: 55, Category: CategoryClothing, Emoji: "👔"},
	{Name: "Dress Trousers", Cost: 90, Category: CategoryClothing, Emoji: "👖"},
	{Name: "Chinos", Cost: 70, Category: CategoryClothing, Emoji: "👖"},
	{Name: "Oxford Shoes", Cost: 140, Category: CategoryClothing, Emoji: "👞"},
	{Name: "Brogues", Cost: 160, Category: CategoryClothing, Emoji: "👞"},
	{Name: "Silk Tie", Cost: 55, Category: CategoryClothing, Emoji: "👔"},
	{Name: "Leather Belt", Cost: 45, Category: CategoryClothing, Emoji: "🩹"},
	{Name: "Waistcoat", Cost: 95, Category: CategoryClothing, Emoji: "🦺"},
	{Name: "Cufflinks", Cost: 40, Category: CategoryClothing, Emoji: "🔘"},
	// Casual
	{Name: "Winter Coat", Cost: 120, Category: CategoryClothing, Emoji: "🧥"},
	{Name: "Polo Shirt", Cost: 45, Category: CategoryClothing, Emoji: "👕"},
	{Name: "Trainers", Cost: 95, Category: CategoryClothing, Emoji: "👟"},
	{Name: "Leather Boots", Cost: 150, Category: CategoryClothing, Emoji: "👢"},
	{Name: "Cashmere Jumper", Cost: 100, Category: CategoryClothing, Emoji: "🧶"},
	{Name: "Jeans", Cost: 60, Category: CategoryClothing, Emoji: "👖"},
	{Name: "Wool Scarf", Cost: 45, Category: CategoryClothing, Emoji: "🧣"},
	// Furniture
	{Name: "Armchair", Cost: 350, Category: CategoryFurniture, Emoji: "🪑"},
	{Name: "Coffee Table", Cost: 180, Category: CategoryFurniture, Emoji: "🪵"},
	{Name: "Floor Lamp", Cost: 90, Category: CategoryFurniture, Emoji: "🪔"},
	{Name: "Bookshelf", Cost: 220, Category: CategoryFurniture, Emoji: "📚"},
	{Name: "Bedside Table", Cost: 120, Category: CategoryFurniture, Emoji: "🛏️"},
	{Name: "Desk", Cost: 280, Category: CategoryFurniture, Emoji: "🖥️"},
	{Name: "Rug", Cost: 150, Category: CategoryFurniture, Emoji: "🟫"},
	{Name: "Mirror", Cost: 75, Category: CategoryFurniture, Emoji: "🪞"},
}

// Products returns the full catalogue, clothing first.
func Products() []Product {
	out := make([]Product, len(catalogue))
	copy(out, catalogue)
	return out
}

// ProductByName looks up a product, ignoring case.
func ProductByName(name string) (Product, bool) {
	name = strings.TrimSpace(name)
	for _, p := range catalogue {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Product{}, false
}
