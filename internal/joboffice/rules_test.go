package joboffice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annakobylinska4-wq/life-game/internal/config"
	"github.com/annakobylinska4-wq/life-game/internal/life"
	"github.com/annakobylinska4-wq/life-game/internal/university"
)

func newPlayer() *life.PlayerState {
	return life.NewPlayerState(config.Default())
}

func TestCatalogue_Integrity(t *testing.T) {
	jobs := Jobs()
	require.Len(t, jobs, 14)

	seen := map[string]bool{}
	for _, j := range jobs {
		assert.False(t, seen[j.Title], "duplicate job %s", j.Title)
		seen[j.Title] = true
		assert.Positive(t, j.Wage, "%s", j.Title)
		if j.RequiredCourse != "" {
			_, ok := university.CourseByID(j.RequiredCourse)
			assert.True(t, ok, "%s requires unknown course %s", j.Title, j.RequiredCourse)
		}
	}
}

func TestRequiredLook_WageBands(t *testing.T) {
	assert.Equal(t, 1, RequiredLook(20))
	assert.Equal(t, 1, RequiredLook(35))
	assert.Equal(t, 2, RequiredLook(45))
	assert.Equal(t, 2, RequiredLook(75))
	assert.Equal(t, 3, RequiredLook(80))
	assert.Equal(t, 3, RequiredLook(110))
	assert.Equal(t, 4, RequiredLook(120))
	assert.Equal(t, 5, RequiredLook(160))
	assert.Equal(t, 5, RequiredLook(200))
}

func TestJobByTitle_IgnoresCase(t *testing.T) {
	j, ok := JobByTitle("junior developer")
	require.True(t, ok)
	assert.Equal(t, "Junior Developer", j.Title)

	_, ok = JobByTitle("Astronaut")
	assert.False(t, ok)
}

func TestAvailableJobs_Annotations(t *testing.T) {
	jobs := AvailableJobs([]string{"middle_school"}, 1)
	require.Len(t, jobs, 14)

	byTitle := map[string]AnnotatedJob{}
	for _, j := range jobs {
		byTitle[j.Title] = j
	}

	assert.True(t, byTitle["Cleaner"].Eligible)
	assert.True(t, byTitle["Supermarket Cashier"].Eligible, "wage 35 only needs look 1")

	warehouse := byTitle["Warehouse Operative"]
	assert.False(t, warehouse.Eligible)
	assert.Equal(t, "requires look level 2 (Scruffy)", warehouse.Reason)

	dev := byTitle["Junior Developer"]
	assert.False(t, dev.Eligible)
	assert.Equal(t, "requires Bachelor of Science; requires look level 3 (Presentable)", dev.Reason)
}

func TestGetJob_FreshPlayerGetsCleaner(t *testing.T) {
	s := newPlayer()

	out := GetJob()(s)

	require.True(t, out.OK)
	assert.Equal(t, "You secured a job as Cleaner earning $20 per day!", out.Message)
	assert.Equal(t, "Cleaner", s.CurrentJob)
	assert.Equal(t, 20, s.JobWage)
}

func TestGetJob_PicksHighestWageWithinLook(t *testing.T) {
	s := newPlayer()
	s.CompletedCourses = []string{"middle_school", "high_school", "bachelor_business", "bachelor_science"}
	s.Look = 2

	out := GetJob()(s)

	require.True(t, out.OK)
	// Junior Developer (80) and Marketing Manager (110) need look 3; the best
	// within look 2 is Accounts Assistant.
	assert.Equal(t, "Accounts Assistant", s.CurrentJob)
	assert.Equal(t, 75, s.JobWage)
}

func TestApplyForJob_Unknown(t *testing.T) {
	out := ApplyForJob("Astronaut")(newPlayer())

	assert.False(t, out.OK)
	assert.Equal(t, "Job not found!", out.Message)
}

func TestApplyForJob_MissingEducation(t *testing.T) {
	s := newPlayer()

	out := ApplyForJob("Junior Developer")(s)

	assert.False(t, out.OK)
	assert.Equal(t, "You need Bachelor of Science to work as Junior Developer!", out.Message)
	assert.Equal(t, "Unemployed", s.CurrentJob)
}

func TestApplyForJob_LookTooLow(t *testing.T) {
	s := newPlayer()
	s.CompletedCourses = []string{"bachelor_science"}

	out := ApplyForJob("Junior Developer")(s)

	assert.False(t, out.OK)
	assert.Equal(t, "You need look level 3 (Presentable) to work as Junior Developer!", out.Message)
	assert.Equal(t, "Unemployed", s.CurrentJob)
}

func TestApplyForJob_Success(t *testing.T) {
	s := newPlayer()
	s.CompletedCourses = []string{"bachelor_science"}
	s.Look = 3

	out := ApplyForJob("Junior Developer")(s)

	require.True(t, out.OK)
	assert.Equal(t, "Congratulations! You're now working as Junior Developer earning $80 per day.", out.Message)
	assert.Equal(t, "Junior Developer", s.CurrentJob)
	assert.Equal(t, 80, s.JobWage)
}
