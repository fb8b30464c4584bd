package lostcities

import (
	"github.com/undeconstructed/lostcities/game"
)

// Check looks for broken rules in the state. Anything found is a bug, so the
// error is internal.
func (g *Game) Check() error {
	s := &g.s
	if len(s.Hands) != Players || len(s.Expeditions) != Players || len(s.Scores) != Players || len(s.Stats) != Players {
		return game.Internal("state is not for %d players", Players)
	}
	if s.Current < 0 || s.Current >= Players || s.Starter < 0 || s.Starter >= Players {
		return game.Internal("bad current player %d or starter %d", s.Current, s.Starter)
	}
	if s.Phase != PlayOrDiscard && s.Phase != DrawOrTake {
		return game.Internal("bad phase %d", int(s.Phase))
	}
	if s.Round < StartRound || s.Round > Rounds+1 {
		return game.Internal("bad round %d", s.Round)
	}
	if s.Discarded != nil && s.Phase == PlayOrDiscard {
		return game.Internal("%s marked as just discarded at the start of a turn", *s.Discarded)
	}
	for p := 0; p < Players; p++ {
		if len(s.Scores[p]) != s.Round-StartRound {
			return game.Internal("player %d has %d scores in round %d", p, len(s.Scores[p]), s.Round)
		}
	}
	if len(s.Deck) == 0 && s.Round <= Rounds {
		return game.Internal("no deck in round %d", s.Round)
	}

	// every card is somewhere, exactly once
	var all Deck
	all = append(all, s.Deck...)
	all = append(all, s.Discards...)
	for p := 0; p < Players; p++ {
		all = append(all, s.Hands[p]...)
		all = append(all, s.Expeditions[p]...)
	}
	want := InitialDeck()
	SortCards(want)
	SortCards(all)
	if len(all) != len(want) {
		return game.Internal("%d cards in play, should be %d", len(all), len(want))
	}
	for i := range want {
		if all[i] != want[i] {
			return game.Internal("card mismatch, have %s, should be %s", all[i], want[i])
		}
	}

	for p := 0; p < Players; p++ {
		if len(s.Hands[p]) > HandSize {
			return game.Internal("player %d holds %d cards", p, len(s.Hands[p]))
		}
		if err := checkExpedition(s.Expeditions[p]); err != nil {
			return err
		}
	}

	return nil
}

// checkExpedition makes sure each color goes investments first, then
// rising numbers.
func checkExpedition(exp Deck) error {
	var top [NumColors]int
	for _, c := range exp {
		n, numbered := c.Value.Rank()
		if !numbered {
			if top[c.Color] > 0 {
				return game.Internal("investment %s after a number", c)
			}
			continue
		}
		if n <= top[c.Color] {
			return game.Internal("%s after %d", c, top[c.Color])
		}
		top[c.Color] = n
	}
	return nil
}
