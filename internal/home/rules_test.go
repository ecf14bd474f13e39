package home

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annakobylinska4-wq/life-game/internal/config"
	"github.com/annakobylinska4-wq/life-game/internal/life"
)

func newPlayer() *life.PlayerState {
	return life.NewPlayerState(config.Default())
}

func TestRest_SleepingRough(t *testing.T) {
	s := newPlayer()
	s.Tiredness = 50

	out := Rest()(s)

	require.True(t, out.OK)
	assert.Equal(t, "You found a spot to sleep rough. Tiredness reduced by 4.", out.Message)
	assert.Equal(t, 46, s.Tiredness)
	assert.Equal(t, 50, s.Happiness, "the streets give no happiness boost")
}

func TestRest_ComfortableFlat(t *testing.T) {
	s := newPlayer()
	s.FlatTier = 3
	s.Tiredness = 50

	out := Rest()(s)

	require.True(t, out.OK)
	assert.Equal(t, "You rested in your comfortable flat. Tiredness reduced by 10! Happiness +3.", out.Message)
	assert.Equal(t, 40, s.Tiredness)
	assert.Equal(t, 53, s.Happiness)
}

func TestRest_PartialReductionNearZero(t *testing.T) {
	s := newPlayer()
	s.FlatTier = 5
	s.Tiredness = 6

	out := Rest()(s)

	require.True(t, out.OK)
	assert.Equal(t, "You rested in your luxury penthouse. Tiredness reduced by 6! Happiness +5.", out.Message)
	assert.Equal(t, 0, s.Tiredness)
}

func TestRest_AlreadyRested(t *testing.T) {
	s := newPlayer()

	out := Rest()(s)

	require.True(t, out.OK)
	assert.Equal(t, "You found a spot to rest, but you were already well rested.", out.Message)

	s = newPlayer()
	s.FlatTier = 2
	out = Rest()(s)

	require.True(t, out.OK)
	assert.Equal(t, "You relaxed in your basic studio, but you were already well rested.", out.Message)
	assert.Equal(t, 51, s.Happiness, "the boost still lands when already rested")
}

func TestRest_HappinessCappedMessage(t *testing.T) {
	s := newPlayer()
	s.FlatTier = 4
	s.Tiredness = 30
	s.Happiness = 100

	out := Rest()(s)

	require.True(t, out.OK)
	assert.Equal(t, "You rested in your stylish apartment. Tiredness reduced by 13.", out.Message)
	assert.Equal(t, 100, s.Happiness)
}

func TestBenefitFor_UnknownTierFallsBack(t *testing.T) {
	assert.Equal(t, BenefitFor(0), BenefitFor(42))
}
