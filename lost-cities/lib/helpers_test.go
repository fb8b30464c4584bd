package lostcities

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g, news, err := NewGame(Players, WithRand(newRand(seed)), WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	require.NotEmpty(t, news)
	return g
}

// rig moves cards into the front of a player's hand, swapping out whatever
// was there, so no card is lost or made.
func rig(t *testing.T, g *Game, player int, cards ...Card) {
	t.Helper()
	hand := g.s.Hands[player]
	require.LessOrEqual(t, len(cards), len(hand))
	for k, c := range cards {
		found := false
		for i := k; i < len(hand); i++ {
			if hand[i] == c {
				hand[i], hand[k] = hand[k], hand[i]
				found = true
				break
			}
		}
		if found {
			continue
		}
		for _, pile := range []Deck{g.s.Deck, g.s.Hands[Opponent(player)]} {
			if i := pile.index(c); i >= 0 {
				pile[i], hand[k] = hand[k], c
				found = true
				break
			}
		}
		require.True(t, found, "card %s not available to rig", c)
	}
	require.NoError(t, g.Check())
}

func snapshot(t *testing.T, g *Game) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, g.WriteOut(&buf))
	return buf.String()
}

func discardAndDraw(t *testing.T, g *Game, player int) {
	t.Helper()
	_, err := g.Apply(player, Discard{g.s.Hands[player][0]})
	require.NoError(t, err)
	_, err = g.Apply(player, Draw{})
	require.NoError(t, err)
}

func card(s string) Card {
	c, ok := ParseCard(s)
	if !ok {
		panic("bad test card " + s)
	}
	return c
}
