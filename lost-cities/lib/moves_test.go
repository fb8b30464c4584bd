package lostcities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovesPlayPhase(t *testing.T) {
	g := newTestGame(t, 40)
	rig(t, g, 0, cards("GX", "GX", "G4", "G6", "B2", "B9", "R3", "Y10")...)

	moves := g.Moves(0)
	assert.Len(t, moves, 14)
	assert.Contains(t, moves, Action(Play{card("GX")}))
	assert.Contains(t, moves, Action(Discard{card("GX")}))
	assert.Nil(t, g.Moves(1))

	_, err := g.Apply(0, Play{card("G6")})
	require.NoError(t, err)
	_, err = g.Apply(0, Draw{})
	require.NoError(t, err)
	discardAndDraw(t, g, 1)

	moves = g.Moves(0)
	assert.NotContains(t, moves, Action(Play{card("GX")}))
	assert.NotContains(t, moves, Action(Play{card("G4")}))
	assert.Contains(t, moves, Action(Discard{card("G4")}))
	assert.Contains(t, moves, Action(Play{card("B2")}))
}

func TestMovesDrawPhase(t *testing.T) {
	g := newTestGame(t, 41)
	rig(t, g, 0, card("R5"), card("G5"))
	rig(t, g, 1, card("B5"))

	_, err := g.Apply(0, Discard{card("R5")})
	require.NoError(t, err)
	// only the deck, as red was just discarded
	assert.Equal(t, []Action{Draw{}}, g.Moves(0))
	_, err = g.Apply(0, Draw{})
	require.NoError(t, err)

	_, err = g.Apply(1, Discard{card("B5")})
	require.NoError(t, err)
	assert.Equal(t, []Action{Take{Red}, Draw{}}, g.Moves(1))
}

func TestMovesAllWork(t *testing.T) {
	g := newTestGame(t, 42)
	for i := 0; i < 20; i++ {
		p := g.CurrentPlayer()
		moves := g.Moves(p)
		require.NotEmpty(t, moves)
		for _, m := range moves {
			before := snapshot(t, g)
			_, err := g.Apply(p, m)
			require.NoError(t, err, m.String())

			saved := snapshot(t, g)
			require.NotEqual(t, before, saved)
			// put it back and try the next one
			restored, err := NewFromSaved(strings.NewReader(before), WithRand(newRand(1)))
			require.NoError(t, err)
			g.s = restored.s
		}
		_, err := g.Apply(p, moves[0])
		require.NoError(t, err)
	}
}
