package lostcities

import "github.com/undeconstructed/lostcities/game"

// View is what one person is allowed to see of a game.
type View struct {
	Viewer        int     `json:"viewer"`
	Round         int     `json:"round"`
	Rounds        int     `json:"rounds"`
	Finished      bool    `json:"finished"`
	Phase         Phase   `json:"phase"`
	CurrentPlayer int     `json:"currentPlayer"`
	DeckRemaining int     `json:"deckRemaining"`
	// Discards is the top card of each discard pile that has one
	Discards    map[Color]Card `json:"discards"`
	Hand        Deck           `json:"hand,omitempty"`
	Expeditions []Deck         `json:"expeditions"`
	Scores      [][]int        `json:"scores"`
	Totals      []int          `json:"totals"`
	Stats       []Stats        `json:"stats"`
	Winners     []int          `json:"winners"`
}

// Project makes the view for a player, or for game.Spectator. Anyone who is
// not a player sees no hand.
func (g *Game) Project(viewer int) View {
	v := View{
		Viewer:        viewer,
		Round:         g.s.Round,
		Rounds:        Rounds,
		Finished:      g.IsFinished(),
		Phase:         g.s.Phase,
		CurrentPlayer: g.s.Current,
		DeckRemaining: len(g.s.Deck),
		Discards:      map[Color]Card{},
		Winners:       g.Winners(),
	}

	for _, e := range Colors() {
		if i := g.s.Discards.lastIndexOf(e); i >= 0 {
			v.Discards[e] = g.s.Discards[i]
		}
	}

	if viewer >= 0 && viewer < len(g.s.Hands) {
		v.Hand = append(Deck{}, g.s.Hands[viewer]...)
		SortCards(v.Hand)
	} else {
		v.Viewer = game.Spectator
	}

	for p := 0; p < Players; p++ {
		v.Expeditions = append(v.Expeditions, append(Deck{}, g.s.Expeditions[p]...))
		v.Scores = append(v.Scores, append([]int{}, g.s.Scores[p]...))
		v.Totals = append(v.Totals, g.TotalScore(p))
		v.Stats = append(v.Stats, g.s.Stats[p])
	}

	return v
}

// Top is the card that could be taken from an expedition's discards.
func (v View) Top(color Color) (Card, bool) {
	c, ok := v.Discards[color]
	return c, ok
}
