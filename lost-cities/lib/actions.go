package lostcities

import (
	"github.com/undeconstructed/lostcities/game"
)

// Action is one of the four things a player can do.
type Action interface {
	String() string
	apply(g *Game, player int) ([]game.Change, error)
}

// Play puts a card from the hand on an expedition.
type Play struct{ Card Card }

// Discard puts a card from the hand on the discard pile.
type Discard struct{ Card Card }

// Take picks up the top discard of an expedition.
type Take struct{ Color Color }

// Draw fills the hand back up from the deck.
type Draw struct{}

func (a Play) String() string    { return "play " + a.Card.String() }
func (a Discard) String() string { return "discard " + a.Card.String() }
func (a Take) String() string    { return "take " + a.Color.Letter() }
func (a Draw) String() string    { return "draw" }

func (a Play) apply(g *Game, player int) ([]game.Change, error) {
	return g.play(player, a.Card)
}

func (a Discard) apply(g *Game, player int) ([]game.Change, error) {
	return g.discard(player, a.Card)
}

func (a Take) apply(g *Game, player int) ([]game.Change, error) {
	return g.take(player, a.Color)
}

func (a Draw) apply(g *Game, player int) ([]game.Change, error) {
	return g.draw(player)
}
