package game

import "fmt"

// Kind is the broad class of a GameError.
type Kind string

const (
	// KindInvalidInput is a user mistake, safe to show them
	KindInvalidInput Kind = "INVALIDINPUT"
	// KindInternal is a bug in the game
	KindInternal Kind = "INTERNAL"
	// KindPlayerCount is creating a game with the wrong number of players
	KindPlayerCount Kind = "PLAYERCOUNT"
)

type GameError struct {
	Kind Kind
	Code string
	Msg  string
}

func (e *GameError) ErrorCode() string {
	if e.Code == "" {
		return string(e.Kind)
	}
	return e.Code
}

func (e *GameError) Error() string { return e.Msg }

// Is matches on code when the target has one, otherwise on kind.
func (e *GameError) Is(target error) bool {
	t, ok := target.(*GameError)
	if !ok {
		return false
	}
	if t.Code != "" {
		return t.Code == e.Code
	}
	return t.Kind == e.Kind
}

var (
	// ErrInvalidInput matches any user mistake
	ErrInvalidInput = &GameError{KindInvalidInput, "", "invalid input"}
	// ErrInternal matches any internal failure
	ErrInternal = &GameError{KindInternal, "", "internal error"}
	// ErrPlayerCount is only when making a game
	ErrPlayerCount = &GameError{KindPlayerCount, "", "wrong number of players"}

	// ErrNotYourTurn means you can't do something while it's not your turn
	ErrNotYourTurn = &GameError{KindInvalidInput, "NOTYOURTURN", "it's not your turn"}
	// ErrNotNow is for maybe valid moves that are not allowed now
	ErrNotNow = &GameError{KindInvalidInput, "NOTNOW", "you cannot do that now"}
	// ErrFinished means the game is over
	ErrFinished = &GameError{KindInvalidInput, "FINISHED", "the game is finished"}
	// ErrBadCommand is for text that doesn't parse
	ErrBadCommand = &GameError{KindInvalidInput, "BADCOMMAND", "bad command"}
)

// InvalidInput makes a user-facing error with a code.
func InvalidInput(code string, format string, a ...interface{}) *GameError {
	return &GameError{KindInvalidInput, code, fmt.Sprintf(format, a...)}
}

// Internal makes an error for something that should never happen.
func Internal(format string, a ...interface{}) *GameError {
	return &GameError{KindInternal, "", fmt.Sprintf(format, a...)}
}

// PlayerCount reports a bad number of players.
func PlayerCount(min, max, got int) *GameError {
	return &GameError{KindPlayerCount, "", fmt.Sprintf("need %d to %d players, got %d", min, max, got)}
}
