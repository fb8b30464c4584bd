package lostcities

import (
	"strings"

	"github.com/undeconstructed/lostcities/game"
)

type argKind int

const (
	argNone argKind = iota
	argCard
	argColor
)

type alternative struct {
	keyword string
	arg     argKind
}

// space is what may come before a command and between a keyword and its
// argument
const space = " \t\r\n"

var (
	altPlay    = alternative{"play", argCard}
	altDiscard = alternative{"discard", argCard}
	altTake    = alternative{"take", argColor}
	altDraw    = alternative{"draw", argNone}
)

// Grammar is the set of commands on offer to someone.
type Grammar struct {
	alts []alternative
	// why nothing is on offer, when nothing is
	why *game.GameError
}

// FullGrammar accepts all four commands, whatever the state of any game.
func FullGrammar() Grammar {
	return Grammar{alts: []alternative{altPlay, altDiscard, altTake, altDraw}}
}

// Legal is the grammar of what a player may do right now.
func (g *Game) Legal(player int) Grammar {
	switch {
	case g.IsFinished():
		return Grammar{why: game.ErrFinished}
	case player != g.s.Current:
		return Grammar{why: game.ErrNotYourTurn}
	case g.s.Phase == PlayOrDiscard:
		return Grammar{alts: []alternative{altPlay, altDiscard}}
	default:
		return Grammar{alts: []alternative{altTake, altDraw}}
	}
}

// Empty means nothing can be done.
func (gr Grammar) Empty() bool { return len(gr.alts) == 0 }

// Keywords lists the commands on offer.
func (gr Grammar) Keywords() []string {
	out := make([]string, len(gr.alts))
	for i, a := range gr.alts {
		out[i] = a.keyword
	}
	return out
}

// Patterns describes the commands on offer, e.g. "play <card>".
func (gr Grammar) Patterns() []game.CommandPattern {
	out := make([]game.CommandPattern, len(gr.alts))
	for i, a := range gr.alts {
		switch a.arg {
		case argCard:
			out[i] = game.CommandPattern(a.keyword + " <card>")
		case argColor:
			out[i] = game.CommandPattern(a.keyword + " <expedition>")
		default:
			out[i] = game.CommandPattern(a.keyword)
		}
	}
	return out
}

// Parse reads one command off the front of the input, and returns whatever
// input is left after it.
func (gr Grammar) Parse(input string) (Action, string, error) {
	if gr.Empty() {
		if gr.why != nil {
			return nil, input, gr.why
		}
		return nil, input, game.InvalidInput(game.ErrBadCommand.Code, "there is nothing you can do")
	}

	s := strings.TrimLeft(input, space)
	for _, alt := range gr.alts {
		n := len(alt.keyword)
		if len(s) < n || !strings.EqualFold(s[:n], alt.keyword) {
			continue
		}
		rest := s[n:]
		if alt.arg == argNone {
			return Draw{}, rest, nil
		}
		rest = strings.TrimLeft(rest, space)
		switch alt.arg {
		case argCard:
			c, rest, ok := parseCardToken(rest)
			if !ok {
				return nil, input, game.InvalidInput(game.ErrBadCommand.Code, "expected card, eg. 'WX' or 'R7'")
			}
			if alt.keyword == altPlay.keyword {
				return Play{c}, rest, nil
			}
			return Discard{c}, rest, nil
		case argColor:
			c, rest, ok := parseColorToken(rest)
			if !ok {
				return nil, input, game.InvalidInput(game.ErrBadCommand.Code, "expected expedition, eg. 'R' or 'W'")
			}
			return Take{c}, rest, nil
		}
	}

	return nil, input, game.InvalidInput(game.ErrBadCommand.Code, "expected one of: %s", strings.Join(gr.Keywords(), ", "))
}

func parseColorToken(s string) (Color, string, bool) {
	if len(s) < 1 {
		return 0, s, false
	}
	c, ok := colorFromLetter(s[:1])
	if !ok {
		return 0, s, false
	}
	return c, s[1:], true
}

func parseCardToken(s string) (Card, string, bool) {
	color, rest, ok := parseColorToken(s)
	if !ok || len(rest) < 1 {
		return Card{}, s, false
	}
	switch {
	case rest[0] == 'x' || rest[0] == 'X':
		return Card{color, Investment}, rest[1:], true
	case strings.HasPrefix(rest, "10"):
		return Card{color, N(10)}, rest[2:], true
	case rest[0] >= '2' && rest[0] <= '9':
		return Card{color, N(int(rest[0] - '0'))}, rest[1:], true
	}
	return Card{}, s, false
}
