// Package university holds the course catalogue and the enrollment and
// lecture rules behind the university location.
package university

// PrereqMode says how a course's prerequisites combine: every listed course,
// or any one of them.
type PrereqMode string

const (
	PrereqAll PrereqMode = "all"
	PrereqAny PrereqMode = "any"
)

// Course is one entry in the university catalogue.
type Course struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	CostPerLecture   int        `json:"cost_per_lecture"`
	LecturesRequired int        `json:"lectures_required"`
	Prerequisites    []string   `json:"prerequisites"`
	PrereqMode       PrereqMode `json:"prerequisite_mode"`
}

var catalogue = []Course{
	{ID: "middle_school", Name: "Middle School Diploma", CostPerLecture: 10, LecturesRequired: 3, Prerequisites: []string{}, PrereqMode: PrereqAll},
	{ID: "high_school", Name: "High School Diploma", CostPerLecture: 15, LecturesRequired: 4, Prerequisites: []string{"middle_school"}, PrereqMode: PrereqAll},
	{ID: "vocational", Name: "Vocational Training", CostPerLecture: 20, LecturesRequired: 3, Prerequisites: []string{"middle_school"}, PrereqMode: PrereqAll},
	{ID: "bachelor_arts", Name: "Bachelor of Arts", CostPerLecture: 30, LecturesRequired: 6, Prerequisites: []string{"high_school"}, PrereqMode: PrereqAll},
	{ID: "bachelor_science", Name: "Bachelor of Science", CostPerLecture: 30, LecturesRequired: 6, Prerequisites: []string{"high_school"}, PrereqMode: PrereqAll},
	{ID: "bachelor_business", Name: "Bachelor of Business", CostPerLecture: 35, LecturesRequired: 6, Prerequisites: []string{"high_school"}, PrereqMode: PrereqAll},
	{ID: "master_arts", Name: "Master of Arts", CostPerLecture: 50, LecturesRequired: 5, Prerequisites: []string{"bachelor_arts"}, PrereqMode: PrereqAll},
	{ID: "master_science", Name: "Master of Science", CostPerLecture: 50, LecturesRequired: 5, Prerequisites: []string{"bachelor_science"}, PrereqMode: PrereqAll},
	{ID: "mba", Name: "MBA", CostPerLecture: 80, LecturesRequired: 6, Prerequisites: []string{"bachelor_business", "master_arts", "master_science"}, PrereqMode: PrereqAny},
	{ID: "phd", Name: "PhD", CostPerLecture: 70, LecturesRequired: 8, Prerequisites: []string{"master_arts", "master_science"}, PrereqMode: PrereqAny},
	{ID: "executive_mba", Name: "Executive MBA", CostPerLecture: 120, LecturesRequired: 4, Prerequisites: []string{"mba"}, PrereqMode: PrereqAll},
}

var coursesByID = func() map[string]Course {
	m := make(map[string]Course, len(catalogue))
	for _, c := range catalogue {
		m[c.ID] = c
	}
	return m
}()

// Courses returns the full catalogue in display order.
func Courses() []Course {
	out := make([]Course, len(catalogue))
	copy(out, catalogue)
	return out
}

// CourseByID looks up one course.
func CourseByID(id string) (Course, bool) {
	c, ok := coursesByID[id]
	return c, ok
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// MissingPrerequisites reports which prerequisites still block enrollment.
// All-mode lists every prerequisite not yet completed; any-mode lists all the
// alternatives when none of them is completed, and nothing otherwise.
func MissingPrerequisites(c Course, completed []string) []string {
	if len(c.Prerequisites) == 0 {
		return nil
	}
	if c.PrereqMode == PrereqAny {
		for _, id := range c.Prerequisites {
			if contains(completed, id) {
				return nil
			}
		}
		return append([]string(nil), c.Prerequisites...)
	}
	var missing []string
	for _, id := range c.Prerequisites {
		if !contains(completed, id) {
			missing = append(missing, id)
		}
	}
	return missing
}

// Eligible reports whether the prerequisites for c are satisfied.
func Eligible(c Course, completed []string) bool {
	return len(MissingPrerequisites(c, completed)) == 0
}

// AnnotatedCourse is a catalogue entry decorated with the player's standing,
// as served by the catalogue endpoint and fed to the professor NPC.
type AnnotatedCourse struct {
	Course
	Eligible             bool     `json:"eligible"`
	Completed            bool     `json:"completed"`
	MissingPrerequisites []string `json:"missing_prerequisites,omitempty"`
}

// AvailableCourses annotates the whole catalogue against the player's
// completed courses.
func AvailableCourses(completed []string) []AnnotatedCourse {
	out := make([]AnnotatedCourse, 0, len(catalogue))
	for _, c := range catalogue {
		missing := MissingPrerequisites(c, completed)
		out = append(out, AnnotatedCourse{
			Course:               c,
			Eligible:             len(missing) == 0,
			Completed:            contains(completed, c.ID),
			MissingPrerequisites: missing,
		})
	}
	return out
}
