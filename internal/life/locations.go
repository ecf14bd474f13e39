package life

import "strings"

// Location identifies one of the places a player can visit.
type Location string

const (
	LocationHome        Location = "home"
	LocationWorkplace   Location = "workplace"
	LocationUniversity  Location = "university"
	LocationShop        Location = "shop"
	LocationJohnLewis   Location = "john_lewis"
	LocationJobOffice   Location = "job_office"
	LocationEstateAgent Location = "estate_agent"
)

// OpeningHours is a half-open [Open, Close) range of whole hours.
type OpeningHours struct {
	Open  int `json:"open_hour"`
	Close int `json:"close_hour"`
}

// LocationInfo is the display metadata for a location. Hours is nil for
// places that never close.
type LocationInfo struct {
	ID          Location
	DisplayName string
	ButtonLabel string
	Hours       *OpeningHours
}

var locationInfos = map[Location]LocationInfo{
	LocationHome: {
		ID:          LocationHome,
		DisplayName: "Home",
		ButtonLabel: "Relax at home",
	},
	LocationWorkplace: {
		ID:          LocationWorkplace,
		DisplayName: "The workplace",
		ButtonLabel: "Work",
	},
	LocationUniversity: {
		ID:          LocationUniversity,
		DisplayName: "The university",
		ButtonLabel: "Attend a lecture",
		Hours:       &OpeningHours{Open: 8, Close: 18},
	},
	LocationShop: {
		ID:          LocationShop,
		DisplayName: "The corner shop",
		ButtonLabel: "Buy food",
	},
	LocationJohnLewis: {
		ID:          LocationJohnLewis,
		DisplayName: "John Lewis",
		ButtonLabel: "Browse products",
	},
	LocationJobOffice: {
		ID:          LocationJobOffice,
		DisplayName: "The job office",
		ButtonLabel: "Look for work",
		Hours:       &OpeningHours{Open: 8, Close: 17},
	},
	LocationEstateAgent: {
		ID:          LocationEstateAgent,
		DisplayName: "The estate agent",
		ButtonLabel: "Browse flats",
		Hours:       &OpeningHours{Open: 6, Close: 20},
	},
}

// Locations returns every known location in a stable order.
func Locations() []Location {
	return []Location{
		LocationHome,
		LocationWorkplace,
		LocationUniversity,
		LocationShop,
		LocationJohnLewis,
		LocationJobOffice,
		LocationEstateAgent,
	}
}

// ParseLocation normalizes a raw location string and reports whether it names
// a known location.
func ParseLocation(s string) (Location, bool) {
	loc := Location(strings.ToLower(strings.TrimSpace(s)))
	_, ok := locationInfos[loc]
	return loc, ok
}

// Info returns the metadata for loc. Unknown locations get a generic entry.
func Info(loc Location) LocationInfo {
	if info, ok := locationInfos[loc]; ok {
		return info
	}
	return LocationInfo{ID: loc, DisplayName: "This location"}
}
