// Package workplace holds the work action.
package workplace

import (
	"github.com/annakobylinska4-wq/life-game/internal/config"
	"github.com/annakobylinska4-wq/life-game/internal/life"
)

// Work earns a fraction of the daily wage for the time spent on site and
// tires the player out.
func Work(rules config.GameRules) life.RuleFunc {
	return func(s *life.PlayerState) life.Outcome {
		if s.CurrentJob == "Unemployed" {
			return life.Failure("You need to get a job first!")
		}
		earnings := s.JobWage / rules.WageDivisor
		s.Money += earnings
		s.AddTiredness(rules.WorkTiredness)
		return life.Success("You worked as %s and earned $%d!", s.CurrentJob, earnings)
	}
}
