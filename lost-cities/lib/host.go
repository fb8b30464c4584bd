package lostcities

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/undeconstructed/lostcities/game"
)

// Make is a game.MakeGameFunc.
func Make(opts ...Option) game.MakeGameFunc {
	return func(players int) (game.Game, []game.Change, error) {
		g, news, err := NewGame(players, opts...)
		if err != nil {
			return nil, nil, err
		}
		return g, news, nil
	}
}

// Load is a game.LoadGameFunc.
func Load(opts ...Option) game.LoadGameFunc {
	return func(r io.Reader) (game.Game, error) {
		g, err := NewFromSaved(r, opts...)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}

// NewFromSaved restores a game from WriteOut.
func NewFromSaved(r io.Reader, opts ...Option) (*Game, error) {
	g := newGame(opts)

	injson := json.NewDecoder(r)
	err := injson.Decode(&g.s)
	if err != nil {
		return nil, fmt.Errorf("decode saved game: %w", err)
	}

	if err := g.Check(); err != nil {
		return nil, fmt.Errorf("saved game is broken: %w", err)
	}

	return g, nil
}

// Play reads one command from the text and does it.
func (g *Game) Play(player int, c game.Command) (game.PlayResult, error) {
	action, rest, err := g.Legal(player).Parse(string(c.Command))
	if err != nil {
		return game.PlayResult{}, err
	}
	news, err := g.Apply(player, action)
	if err != nil {
		return game.PlayResult{}, err
	}
	return game.PlayResult{News: news, Rest: rest}, nil
}

func (g *Game) GetGameState(viewer int) game.GameState {
	status := game.StatusInProgress
	playing := []int{g.s.Current}
	if g.IsFinished() {
		status = game.StatusFinished
		playing = []int{}
	}
	return game.GameState{
		Status:  status,
		Playing: playing,
		Winners: g.Winners(),
		Custom:  g.Project(viewer),
	}
}

func (g *Game) GetTurnState(player int) game.TurnState {
	return game.TurnState{
		Number: g.s.TurnNo,
		Player: g.s.Current,
		Can:    g.Legal(player).Patterns(),
		Custom: g.s.Phase,
	}
}

func (g *Game) WriteOut(w io.Writer) error {
	jdata, err := json.MarshalIndent(g.s, "", "  ")
	if err != nil {
		return err
	}

	_, err = w.Write(jdata)
	return err
}
