package joboffice

import "github.com/annakobylinska4-wq/life-game/internal/life"

// GetJob assigns the best-paying job the player qualifies for on both
// education and appearance.
func GetJob() life.RuleFunc {
	return func(s *life.PlayerState) life.Outcome {
		var best, lookBlocked *Job
		for i := range catalogue {
			j := &catalogue[i]
			if !educationSatisfied(*j, s.CompletedCourses) {
				continue
			}
			if s.Look < RequiredLook(j.Wage) {
				if lookBlocked == nil || j.Wage > lookBlocked.Wage {
					lookBlocked = j
				}
				continue
			}
			if best == nil || j.Wage > best.Wage {
				best = j
			}
		}
		if best == nil {
			if lookBlocked != nil {
				need := RequiredLook(lookBlocked.Wage)
				return life.Failure("You could work as %s, but you need look level %d (%s). Smarten up first!",
					lookBlocked.Title, need, life.LookLabel(need))
			}
			return life.Failure("No jobs match your qualifications. Get some education first!")
		}
		s.CurrentJob = best.Title
		s.JobWage = best.Wage
		return life.Success("You secured a job as %s earning $%d per day!", best.Title, best.Wage)
	}
}

// ApplyForJob applies for a specific job by title, re-validating education
// and appearance independently.
func ApplyForJob(title string) life.RuleFunc {
	return func(s *life.PlayerState) life.Outcome {
		job, ok := JobByTitle(title)
		if !ok {
			return life.Failure("Job not found!")
		}
		if !educationSatisfied(job, s.CompletedCourses) {
			return life.Failure("You need %s to work as %s!", courseName(job.RequiredCourse), job.Title)
		}
		if need := RequiredLook(job.Wage); s.Look < need {
			return life.Failure("You need look level %d (%s) to work as %s!", need, life.LookLabel(need), job.Title)
		}
		s.CurrentJob = job.Title
		s.JobWage = job.Wage
		return life.Success("Congratulations! You're now working as %s earning $%d per day.", job.Title, job.Wage)
	}
}
