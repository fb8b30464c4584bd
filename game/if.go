package game

import (
	"io"
)

const (
	// Spectator is the viewer index for someone not seated in the game
	Spectator = -1
	// Nobody is who did something when the game itself did it
	Nobody = -1
)

// GameStatus is the lifecycle stage of a game.
type GameStatus string

const (
	StatusInProgress GameStatus = "inprogress"
	StatusFinished   GameStatus = "finished"
)

// Change is one thing that happened, as a line of news.
type Change struct {
	Who  int    `json:"who"`
	What string `json:"what"`
	// For is who may see this, empty means everyone
	For []int `json:"for,omitempty"`
}

// Public reports whether everyone may see the change.
func (c Change) Public() bool { return len(c.For) == 0 }

// VisibleTo reports whether a player may see the change.
func (c Change) VisibleTo(player int) bool {
	if c.Public() {
		return true
	}
	for _, p := range c.For {
		if p == player {
			return true
		}
	}
	return false
}

type TurnState struct {
	Number int `json:"number"`
	Player int `json:"player"`

	// Can is what the asking player may do right now
	Can []CommandPattern `json:"can"`

	Custom interface{} `json:"custom"`
}

type GameState struct {
	Status  GameStatus `json:"status"`
	Playing []int      `json:"playing"`
	Winners []int      `json:"winners"`

	Custom interface{} `json:"custom"`
}

// PlayResult is what comes back from one command.
type PlayResult struct {
	News []Change `json:"news"`
	// Rest is the input left over after the command
	Rest string `json:"rest"`
}

// Game is everything a host needs from a game, and nothing else.
type Game interface {
	// activities
	Play(player int, c Command) (PlayResult, error)

	// general state
	GetGameState(viewer int) GameState
	GetTurnState(player int) TurnState

	// admin
	WriteOut(io.Writer) error
}

// MakeGameFunc creates and starts a game for some players.
type MakeGameFunc func(players int) (Game, []Change, error)

// LoadGameFunc restores a game written by WriteOut.
type LoadGameFunc func(io.Reader) (Game, error)
