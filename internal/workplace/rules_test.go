package workplace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annakobylinska4-wq/life-game/internal/config"
	"github.com/annakobylinska4-wq/life-game/internal/life"
)

func TestWork_RequiresJob(t *testing.T) {
	rules := config.Default()
	s := life.NewPlayerState(rules)

	out := Work(rules)(s)

	assert.False(t, out.OK)
	assert.Equal(t, "You need to get a job first!", out.Message)
	assert.Equal(t, 100, s.Money)
	assert.Equal(t, 0, s.Tiredness)
}

func TestWork_EarnsQuarterWage(t *testing.T) {
	rules := config.Default()
	s := life.NewPlayerState(rules)
	s.CurrentJob = "Junior Developer"
	s.JobWage = 80

	out := Work(rules)(s)

	require.True(t, out.OK)
	assert.Equal(t, "You worked as Junior Developer and earned $20!", out.Message)
	assert.Equal(t, 120, s.Money)
	assert.Equal(t, 10, s.Tiredness)
}

func TestWork_WageRoundsDown(t *testing.T) {
	rules := config.Default()
	s := life.NewPlayerState(rules)
	s.CurrentJob = "Warehouse Operative"
	s.JobWage = 45

	out := Work(rules)(s)

	require.True(t, out.OK)
	assert.Equal(t, "You worked as Warehouse Operative and earned $11!", out.Message)
	assert.Equal(t, 111, s.Money)
}

func TestWork_TirednessClampsAtHundred(t *testing.T) {
	rules := config.Default()
	s := life.NewPlayerState(rules)
	s.CurrentJob = "Cleaner"
	s.JobWage = 20
	s.Tiredness = 95

	out := Work(rules)(s)

	require.True(t, out.OK)
	assert.Equal(t, 100, s.Tiredness)
}
