package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/undeconstructed/lostcities/lost-cities/config"
	lostcities "github.com/undeconstructed/lostcities/lost-cities/lib"
)

func TestPlayOne(t *testing.T) {
	cfg := config.Config{Seed: 99, FuzzGames: 5, FuzzWorkers: 2}
	for n := 0; n < cfg.FuzzGames; n++ {
		res, err := playOne(cfg, n)
		require.NoError(t, err)
		assert.NotEmpty(t, res.winners)
		assert.Greater(t, res.actions, 0)
		assert.Less(t, res.actions, maxActions)
	}

	// same seed, same game
	a, err := playOne(cfg, 3)
	require.NoError(t, err)
	b, err := playOne(cfg, 3)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSummarise(t *testing.T) {
	summarise([]result{
		{winners: []int{0}, totals: [lostcities.Players]int{10, 5}, actions: 200},
		{winners: []int{0, 1}, totals: [lostcities.Players]int{0, 0}, actions: 180},
	})
	summarise(nil)
}
