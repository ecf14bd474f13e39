package life

import (
	"fmt"

	"github.com/annakobylinska4-wq/life-game/internal/config"
)

// Engine applies the time/turn rules to player states. It is a plain value
// holding the balance configuration; all state lives in the PlayerState it
// is handed.
type Engine struct {
	Rules config.GameRules
}

// NewEngine returns an engine for the given rule set.
func NewEngine(rules config.GameRules) Engine {
	return Engine{Rules: rules}
}

// TimeCost is the minute price of visiting a location: travel there plus the
// activity itself.
type TimeCost struct {
	Travel int `json:"travel_time"`
	Action int `json:"action_time"`
}

// Total is travel plus action minutes.
func (c TimeCost) Total() int {
	return c.Travel + c.Action
}

// CostFor returns the time cost of visiting loc: the per-location override
// when configured, the constant pair otherwise.
func (e Engine) CostFor(loc Location) TimeCost {
	if o, ok := e.Rules.TimeOverrides[string(loc)]; ok {
		return TimeCost{Travel: o.Travel, Action: o.Action}
	}
	return TimeCost{Travel: e.Rules.TravelMinutes, Action: e.Rules.ActionMinutes}
}

// FormatTime renders the in-day clock as HH:MM. The day starts at the
// configured hour with the full minute budget and wraps at midnight.
func (e Engine) FormatTime(timeRemaining int) string {
	elapsed := e.Rules.DayMinutes - timeRemaining
	if elapsed < 0 {
		elapsed = 0
	}
	hour := (e.Rules.DayStartHour + elapsed/60) % 24
	return fmt.Sprintf("%02d:%02d", hour, elapsed%60)
}

// CurrentHour returns the whole hour of the in-day clock.
func (e Engine) CurrentHour(timeRemaining int) int {
	elapsed := e.Rules.DayMinutes - timeRemaining
	if elapsed < 0 {
		elapsed = 0
	}
	return (e.Rules.DayStartHour + elapsed/60) % 24
}

// HasEnoughTime reports whether the day's remaining minutes cover a visit to
// loc.
func (e Engine) HasEnoughTime(s *PlayerState, loc Location) bool {
	return s.TimeRemaining >= e.CostFor(loc).Total()
}

// TurnSummary describes what happened when a day rolled over, for display.
type TurnSummary struct {
	Turn           int      `json:"turn"`
	HungerIncrease int      `json:"hunger_increase"`
	RentCharged    int      `json:"rent_charged"`
	Notes          []string `json:"notes"`
}

// IncrementTurn starts the next day: bumps the turn counter, applies the
// per-turn hunger increase (uncapped), charges rent when due, and puts the
// player back home with a full day of minutes.
func (e Engine) IncrementTurn(s *PlayerState) TurnSummary {
	s.Turn++
	s.Hunger += e.Rules.HungerPerTurn

	sum := TurnSummary{
		Turn:           s.Turn,
		HungerIncrease: e.Rules.HungerPerTurn,
		Notes:          []string{fmt.Sprintf("Day %d begins", s.Turn)},
	}
	if e.Rules.HungerPerTurn > 0 {
		sum.Notes = append(sum.Notes, fmt.Sprintf("Hunger increased by %d", e.Rules.HungerPerTurn))
	}
	if s.Rent > 0 {
		s.Money -= s.Rent
		sum.RentCharged = s.Rent
		sum.Notes = append(sum.Notes, fmt.Sprintf("Rent charged: £%d (%s)", s.Rent, FlatName(s.FlatTier)))
	}

	s.TimeRemaining = e.Rules.DayMinutes
	s.CurrentLocation = LocationHome
	return sum
}

// SpendTime pays for a visit to loc. With insufficient minutes it reports
// ok=false and leaves the state untouched. Otherwise it deducts the total,
// moves the player, and rolls the day over once when the remainder drops
// below the threshold. A visit always costs less than a day, so at most one
// rollover can happen per call.
func (e Engine) SpendTime(s *PlayerState, loc Location) (TimeCost, *TurnSummary, bool) {
	cost := e.CostFor(loc)
	if s.TimeRemaining < cost.Total() {
		return cost, nil, false
	}
	s.TimeRemaining -= cost.Total()
	s.CurrentLocation = loc

	var sum *TurnSummary
	if s.TimeRemaining < e.Rules.TurnThresholdMinutes {
		v := e.IncrementTurn(s)
		sum = &v
	}
	return cost, sum, true
}

// MaybeIncrementTurn rolls the day over when the remaining minutes have
// dropped below the threshold, returning the summary, or nil when the day
// goes on.
func (e Engine) MaybeIncrementTurn(s *PlayerState) *TurnSummary {
	if s.TimeRemaining >= e.Rules.TurnThresholdMinutes {
		return nil
	}
	sum := e.IncrementTurn(s)
	return &sum
}

// PassTime fast-forwards to the next day: the remaining minutes are spent
// down to just under the rollover threshold (or entirely when already
// below it) and the turn increments. Returns the minutes passed and the
// turn summary.
func (e Engine) PassTime(s *PlayerState) (int, TurnSummary) {
	pass := s.TimeRemaining - (e.Rules.TurnThresholdMinutes - 1)
	if pass <= 0 {
		pass = s.TimeRemaining
	}
	s.TimeRemaining -= pass
	return pass, e.IncrementTurn(s)
}

// StateView is the serialized form served to clients: the raw state plus
// derived display fields.
type StateView struct {
	PlayerState
	HappinessLabel string `json:"happiness_label"`
	TirednessLabel string `json:"tiredness_label"`
	HungerLabel    string `json:"hunger_label"`
	LookLabel      string `json:"look_label"`
	FlatName       string `json:"flat_name"`
	CurrentTime    string `json:"current_time"`
}

// View builds the client-facing snapshot of s.
func (e Engine) View(s *PlayerState) StateView {
	return StateView{
		PlayerState:    *s.Clone(),
		HappinessLabel: HappinessLabel(s.Happiness),
		TirednessLabel: TirednessLabel(s.Tiredness),
		HungerLabel:    HungerLabel(s.Hunger),
		LookLabel:      LookLabel(s.Look),
		FlatName:       FlatName(s.FlatTier),
		CurrentTime:    e.FormatTime(s.TimeRemaining),
	}
}
