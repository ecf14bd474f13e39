// Package joboffice holds the job catalogue and the employment rules behind
// the job office location.
package joboffice

import (
	"fmt"
	"strings"

	"github.com/annakobylinska4-wq/life-game/internal/life"
	"github.com/annakobylinska4-wq/life-game/internal/university"
)

// Job is one entry in the job catalogue. The look requirement is derived
// from the wage band rather than stored per job.
type Job struct {
	Title          string `json:"title"`
	Wage           int    `json:"wage"`
	RequiredCourse string `json:"required_course,omitempty"`
}

var catalogue = []Job{
	{Title: "Cleaner", Wage: 20},
	{Title: "Supermarket Cashier", Wage: 35, RequiredCourse: "middle_school"},
	{Title: "Warehouse Operative", Wage: 45, RequiredCourse: "middle_school"},
	{Title: "Retail Assistant", Wage: 50, RequiredCourse: "high_school"},
	{Title: "Electrician's Mate", Wage: 65, RequiredCourse: "vocational"},
	{Title: "Junior Copywriter", Wage: 70, RequiredCourse: "bachelor_arts"},
	{Title: "Accounts Assistant", Wage: 75, RequiredCourse: "bachelor_business"},
	{Title: "Junior Developer", Wage: 80, RequiredCourse: "bachelor_science"},
	{Title: "Marketing Manager", Wage: 110, RequiredCourse: "bachelor_business"},
	{Title: "Senior Editor", Wage: 120, RequiredCourse: "master_arts"},
	{Title: "Research Scientist", Wage: 130, RequiredCourse: "master_science"},
	{Title: "Operations Director", Wage: 160, RequiredCourse: "mba"},
	{Title: "University Professor", Wage: 170, RequiredCourse: "phd"},
	{Title: "Chief Executive", Wage: 200, RequiredCourse: "executive_mba"},
}

// Jobs returns the full catalogue in wage order.
func Jobs() []Job {
	out := make([]Job, len(catalogue))
	copy(out, catalogue)
	return out
}

// JobByTitle looks up a job, ignoring case.
func JobByTitle(title string) (Job, bool) {
	title = strings.TrimSpace(title)
	for _, j := range catalogue {
		if strings.EqualFold(j.Title, title) {
			return j, true
		}
	}
	return Job{}, false
}

// RequiredLook maps a wage to the appearance level the employer expects.
func RequiredLook(wage int) int {
	switch {
	case wage < 40:
		return 1
	case wage < 80:
		return 2
	case wage < 120:
		return 3
	case wage < 160:
		return 4
	default:
		return 5
	}
}

func educationSatisfied(j Job, completed []string) bool {
	if j.RequiredCourse == "" {
		return true
	}
	for _, id := range completed {
		if id == j.RequiredCourse {
			return true
		}
	}
	return false
}

func courseName(id string) string {
	if c, ok := university.CourseByID(id); ok {
		return c.Name
	}
	return id
}

// AnnotatedJob is a catalogue entry decorated with the player's standing, as
// served by the jobs endpoint and fed to the job office NPC.
type AnnotatedJob struct {
	Job
	RequiredLook int    `json:"required_look"`
	Eligible     bool   `json:"eligible"`
	Reason       string `json:"reason,omitempty"`
}

// AvailableJobs annotates the whole catalogue against the player's education
// and appearance.
func AvailableJobs(completed []string, look int) []AnnotatedJob {
	out := make([]AnnotatedJob, 0, len(catalogue))
	for _, j := range catalogue {
		need := RequiredLook(j.Wage)
		var reasons []string
		if !educationSatisfied(j, completed) {
			reasons = append(reasons, fmt.Sprintf("requires %s", courseName(j.RequiredCourse)))
		}
		if look < need {
			reasons = append(reasons, fmt.Sprintf("requires look level %d (%s)", need, life.LookLabel(need)))
		}
		out = append(out, AnnotatedJob{
			Job:          j,
			RequiredLook: need,
			Eligible:     len(reasons) == 0,
			Reason:       strings.Join(reasons, "; "),
		})
	}
	return out
}
