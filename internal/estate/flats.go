// Package estate holds the flat catalogue and the rental actions behind the
// estate agent location.
package estate

// Flat is one rental tier. Tier 0 is homelessness, tiers 1-5 are
// increasingly nicer flats with increasingly painful rent.
type Flat struct {
	Tier        int    `json:"tier"`
	Name        string `json:"name"`
	Rent        int    `json:"rent"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
}

var catalogue = []Flat{
	{
		Tier:        0,
		Name:        "Homeless",
		Rent:        0,
		Description: "Give up your flat and live on the streets. No rent to pay, but rest is much less effective.",
		Emoji:       "🗑️",
	},
	{
		Tier:        1,
		Name:        "Dingy Bedsit",
		Rent:        10,
		Description: "A cramped, damp bedsit with peeling wallpaper and a shared bathroom down the hall.",
		Emoji:       "🏚️",
	},
	{
		Tier:        2,
		Name:        "Basic Studio",
		Rent:        25,
		Description: "A small but functional studio flat. Nothing fancy, but it keeps the rain out.",
		Emoji:       "🏢",
	},
	{
		Tier:        3,
		Name:        "Comfortable Flat",
		Rent:        50,
		Description: "A decent one-bedroom flat with modern amenities and a proper kitchen.",
		Emoji:       "🏠",
	},
	{
		Tier:        4,
		Name:        "Stylish Apartment",
		Rent:        100,
		Description: "A spacious two-bedroom apartment with high ceilings and quality furnishings.",
		Emoji:       "🏡",
	},
	{
		Tier:        5,
		Name:        "Luxury Penthouse",
		Rent:        200,
		Description: "An exquisite penthouse with panoramic city views, designer interiors, and a private terrace.",
		Emoji:       "🏰",
	},
}

// Flats returns the full catalogue in tier order.
func Flats() []Flat {
	out := make([]Flat, len(catalogue))
	copy(out, catalogue)
	return out
}

// FlatByTier looks up one tier.
func FlatByTier(tier int) (Flat, bool) {
	if tier < 0 || tier >= len(catalogue) {
		return Flat{}, false
	}
	return catalogue[tier], true
}
