package life

import "fmt"

// Outcome is what a location rule reports back: a player-facing message and
// whether the action took effect.
type Outcome struct {
	Message string
	OK      bool
}

// Success wraps a message in a successful outcome.
func Success(format string, args ...any) Outcome {
	return Outcome{Message: fmt.Sprintf(format, args...), OK: true}
}

// Failure wraps a message in a failed outcome.
func Failure(format string, args ...any) Outcome {
	return Outcome{Message: fmt.Sprintf(format, args...), OK: false}
}

// RuleFunc applies one location action to the state. A failing rule must
// leave the state exactly as it found it.
type RuleFunc func(s *PlayerState) Outcome

// ExecOptions tune ExecuteWithValidation per call site.
type ExecOptions struct {
	// CheckOpeningHours rejects the visit when the location keeps hours and
	// the clock is outside them.
	CheckOpeningHours bool
	// PostCallback runs after a successful rule, before the endgame check.
	PostCallback func(s *PlayerState)
}

// Result is the full outcome of a validated location visit.
type Result struct {
	Message     string       `json:"message"`
	OK          bool         `json:"success"`
	Burnout     bool         `json:"burnout"`
	Bankruptcy  bool         `json:"bankruptcy"`
	TurnSummary *TurnSummary `json:"turn_summary,omitempty"`
	Cost        TimeCost     `json:"-"`
	// TimeSpent reports whether the visit got past the pre-checks and the
	// travel minutes were deducted. A failed rule still spends the time, so
	// callers must persist the state whenever this is set.
	TimeSpent bool `json:"-"`
}

// ExecuteWithValidation runs one location visit end to end: opening hours,
// time budget, travel, the rule itself, the optional post step, then the
// endgame check. Hours and time failures happen before any mutation; a rule
// failure keeps the time already spent but skips the rest.
func (e Engine) ExecuteWithValidation(s *PlayerState, loc Location, rule RuleFunc, opts ExecOptions) Result {
	info := Info(loc)
	if opts.CheckOpeningHours && info.Hours != nil {
		hour := e.CurrentHour(s.TimeRemaining)
		if hour < info.Hours.Open || hour >= info.Hours.Close {
			return Result{
				Message: fmt.Sprintf("%s is closed! Opening hours: %d:00 - %d:00. Current time: %s.",
					info.DisplayName, info.Hours.Open, info.Hours.Close, e.FormatTime(s.TimeRemaining)),
				Cost: e.CostFor(loc),
			}
		}
	}

	cost := e.CostFor(loc)
	if !e.HasEnoughTime(s, loc) {
		return Result{
			Message: fmt.Sprintf("Not enough time! You need %d minutes (%dm travel + %dm there) but only have %d minutes left today.",
				cost.Total(), cost.Travel, cost.Action, s.TimeRemaining),
			Cost: cost,
		}
	}

	_, summary, _ := e.SpendTime(s, loc)

	out := rule(s)
	if !out.OK {
		return Result{Message: out.Message, TurnSummary: summary, Cost: cost, TimeSpent: true}
	}
	if opts.PostCallback != nil {
		opts.PostCallback(s)
	}

	end := e.CheckEndgame(s, out.Message)
	return Result{
		Message:     end.Message,
		OK:          true,
		Burnout:     end.Burnout,
		Bankruptcy:  end.Bankruptcy,
		TurnSummary: summary,
		Cost:        cost,
		TimeSpent:   true,
	}
}
