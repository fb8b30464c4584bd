package lostcities

// Moves lists every action a player could do right now without being
// refused.
func (g *Game) Moves(player int) []Action {
	gr := g.Legal(player)
	if gr.Empty() {
		return nil
	}

	var out []Action
	if g.s.Phase == PlayOrDiscard {
		hand := Unique(g.s.Hands[player])
		for _, c := range hand {
			if g.canPlay(player, c) == nil {
				out = append(out, Play{c})
			}
		}
		for _, c := range hand {
			out = append(out, Discard{c})
		}
		return out
	}

	for _, e := range Colors() {
		if g.s.Discarded != nil && *g.s.Discarded == e {
			continue
		}
		if g.s.Discards.lastIndexOf(e) >= 0 {
			out = append(out, Take{e})
		}
	}
	return append(out, Draw{})
}
