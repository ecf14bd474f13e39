package life

// Sentinel messages replacing whatever a rule reported when a run ends.
const (
	MessageBurnout    = "BURNOUT"
	MessageBankruptcy = "BANKRUPTCY"
)

// Burnout reports whether the player has collapsed: exhausted and starving
// at the same time.
func (e Engine) Burnout(s *PlayerState) bool {
	return s.Tiredness >= e.Rules.BurnoutTiredness && s.Hunger >= e.Rules.BurnoutHunger
}

// Bankrupt reports whether the player has run out of money.
func (e Engine) Bankrupt(s *PlayerState) bool {
	return s.Money < 0
}

// Reset restores every field to its starting value. The turn counter is kept
// as a running total of days played across resets.
func (e Engine) Reset(s *PlayerState) {
	turn := s.Turn
	*s = *NewPlayerState(e.Rules)
	s.Turn = turn
}

// EndgameResult reports which end-of-run condition fired, if any, and the
// message to show.
type EndgameResult struct {
	Burnout    bool
	Bankruptcy bool
	Message    string
}

// CheckEndgame runs the end-of-run checks. Burnout fires first and resets
// the state; bankruptcy is then judged on whatever state remains and
// overrides the message. A reset restores the starting money, so bankruptcy
// cannot fire after a burnout in the same call. The order is deliberate;
// keep it.
func (e Engine) CheckEndgame(s *PlayerState, message string) EndgameResult {
	res := EndgameResult{Message: message}
	if e.Burnout(s) {
		e.Reset(s)
		res.Burnout = true
		res.Message = MessageBurnout
	}
	if e.Bankrupt(s) {
		e.Reset(s)
		res.Bankruptcy = true
		res.Message = MessageBankruptcy
	}
	return res
}
