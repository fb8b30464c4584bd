package game

import (
	"strings"
)

// Command is input to a game.
type Command struct {
	Command CommandString `json:"command"`
}

// CommandString is from the user, to do something
type CommandString string

// First gets just the first word of the string
func (c CommandString) First() string {
	f := strings.Fields(string(c))
	if len(f) == 0 {
		return ""
	}
	return strings.ToLower(f[0])
}

// CommandPattern describes something that is allowed, e.g. "play <card>"
type CommandPattern string

// First gets just the keyword of the pattern
func (c CommandPattern) First() string {
	return strings.SplitN(string(c), " ", 2)[0]
}

// Parts splits the pattern
func (c CommandPattern) Parts() []string {
	return strings.Fields(string(c))
}

// Match says whether a command starts with this pattern's keyword. The
// arguments are left for the game to parse.
func (p CommandPattern) Match(c CommandString) bool {
	return p.First() != "" && c.First() == p.First()
}

// Allowed finds the pattern, if any, that a command falls under.
func Allowed(can []CommandPattern, c CommandString) (CommandPattern, bool) {
	for _, p := range can {
		if p.Match(c) {
			return p, true
		}
	}
	return "", false
}

// RunChain plays each command in the input in turn, for as long as there is
// input left. News from commands that worked is returned even if a later one
// fails.
func RunChain(g Game, player int, input string) ([]Change, error) {
	var news []Change
	rest := strings.TrimSpace(input)
	for rest != "" {
		res, err := g.Play(player, Command{Command: CommandString(rest)})
		if err != nil {
			return news, err
		}
		news = append(news, res.News...)
		next := strings.TrimSpace(res.Rest)
		if next == rest {
			return news, Internal("command consumed no input: %q", rest)
		}
		rest = next
	}
	return news, nil
}
