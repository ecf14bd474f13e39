package johnlewis

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

func TestCatalogue_Integrity(t *testing.T) {
	products := Products()
	require.Len(t, products, 27)

	clothing := 0
	seen := map[string]bool{}
	for _, p := range products {
		assert.False(t, seen[p.Name], "duplicate product %s", p.Name)
		seen[p.Name] = true
		assert.Positive(t, p.Cost, "%s", p.Name)
		assert.NotEmpty(t, p.Emoji, "%s", p.Name)
		if p.Category == CategoryClothing {
			clothing++
		}
	}
	assert.Equal(t, 19, clothing)
}

// Every clothing product must count toward the look level, and no furniture
// may. The wardrobe rules live with the player state, so the two tables have
// to agree.
func TestCatalogue_MatchesWardrobe(t *testing.T) {
	for _, p := range Products() {
		if p.Category == CategoryClothing {
			assert.True(t, life.IsClothing(p.Name), "%s should count as clothing", p.Name)
		} else {
			assert.False(t, life.IsClothing(p.Name), "%s should not count as clothing", p.Name)
		}
	}
}

func TestPurchaseItem(t *testing.T) {
	s := newPlayer()
	s.Money = 300

	out := PurchaseItem(config.Default(), "Formal Suit")(s)

	require.True(t, out.OK)
	assert.Equal(t, "You bought Formal Suit for £250! It's now in your inventory. Happiness +10!", out.Message)
	assert.Equal(t, 50, s.Money)
	assert.Equal(t, []string{"Formal Suit"}, s.Items)
	assert.Equal(t, 60, s.Happiness)
}

func TestPurchaseItem_MessageKeepsNominalBoostAtCap(t *testing.T) {
	s := newPlayer()
	s.Money = 100
	s.Happiness = 95

	out := PurchaseItem(config.Default(), "Cufflinks")(s)

	require.True(t, out.OK)
	assert.Equal(t, "You bought Cufflinks for £40! It's now in your inventory. Happiness +10!", out.Message)
	assert.Equal(t, 100, s.Happiness)
}

func TestPurchaseItem_Unknown(t *testing.T) {
	out := PurchaseItem(config.Default(), "Grand Piano")(newPlayer())

	assert.False(t, out.OK)
	assert.Equal(t, "Item not found!", out.Message)
}

func TestPurchaseItem_NotEnoughMoney(t *testing.T) {
	s := newPlayer()

	out := PurchaseItem(config.Default(), "Armchair")(s)

	assert.False(t, out.OK)
	assert.Equal(t, "Not enough money to buy Armchair!", out.Message)
	assert.Equal(t, 100, s.Money)
	assert.Empty(t, s.Items)
}

func TestBrowse_NothingAffordable(t *testing.T) {
	s := newPlayer()
	s.Money = 10

	out := Browse(config.Default())(s)

	assert.False(t, out.OK)
	assert.Equal(t, "Not enough money to buy anything at John Lewis!", out.Message)
}

func TestBrowse_OnlyAffordableChoice(t *testing.T) {
	s := newPlayer()
	s.Money = 40 // only the cufflinks are in reach

	out := Browse(config.Default())(s)

	require.True(t, out.OK)
	assert.Equal(t, []string{"Cufflinks"}, s.Items)
	assert.Equal(t, 0, s.Money)
}
