package lostcities

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Color is an expedition.
type Color int

const (
	Red Color = iota
	Green
	White
	Blue
	Yellow

	NumColors = 5
)

var colorNames = [NumColors]string{"red", "green", "white", "blue", "yellow"}

// Colors lists every expedition in order.
func Colors() []Color {
	return []Color{Red, Green, White, Blue, Yellow}
}

func (c Color) Valid() bool { return c >= 0 && c < NumColors }

// Letter is the one letter code used in commands.
func (c Color) Letter() string {
	if !c.Valid() {
		return "?"
	}
	return strings.ToUpper(colorNames[c][:1])
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return colorNames[c]
}

func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("bad color %d", int(c))
	}
	return []byte(c.Letter()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	cc, ok := colorFromLetter(string(b))
	if !ok {
		return fmt.Errorf("bad color %q", string(b))
	}
	*c = cc
	return nil
}

func colorFromLetter(s string) (Color, bool) {
	if len(s) != 1 {
		return 0, false
	}
	switch s[0] {
	case 'r', 'R':
		return Red, true
	case 'g', 'G':
		return Green, true
	case 'w', 'W':
		return White, true
	case 'b', 'B':
		return Blue, true
	case 'y', 'Y':
		return Yellow, true
	}
	return 0, false
}

// Value is a card's face. Investment sorts before every rank.
type Value int

const (
	Investment Value = 0

	MinRank = 2
	MaxRank = 10
)

// N is the value of a numbered card.
func N(rank int) Value { return Value(rank) }

// Rank gives the number on a card, or false for an investment.
func (v Value) Rank() (int, bool) {
	if v == Investment {
		return 0, false
	}
	return int(v), true
}

func (v Value) Valid() bool {
	return v == Investment || (v >= MinRank && v <= MaxRank)
}

func (v Value) String() string {
	if v == Investment {
		return "X"
	}
	return strconv.Itoa(int(v))
}

func valueFromString(s string) (Value, bool) {
	if s == "x" || s == "X" {
		return Investment, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < MinRank || n > MaxRank {
		return 0, false
	}
	return N(n), true
}

// Card is a copyable (color, value) pair.
type Card struct {
	Color Color
	Value Value
}

func (c Card) String() string {
	return c.Color.Letter() + c.Value.String()
}

// Less orders by color, then value.
func (c Card) Less(o Card) bool {
	if c.Color != o.Color {
		return c.Color < o.Color
	}
	return c.Value < o.Value
}

func (c Card) MarshalText() ([]byte, error) {
	if !c.Color.Valid() || !c.Value.Valid() {
		return nil, fmt.Errorf("bad card %d/%d", int(c.Color), int(c.Value))
	}
	return []byte(c.String()), nil
}

func (c *Card) UnmarshalText(b []byte) error {
	cc, ok := ParseCard(string(b))
	if !ok {
		return fmt.Errorf("bad card %q", string(b))
	}
	*c = cc
	return nil
}

// ParseCard reads a whole card code like "R7" or "wx".
func ParseCard(s string) (Card, bool) {
	if len(s) < 2 {
		return Card{}, false
	}
	color, ok := colorFromLetter(s[:1])
	if !ok {
		return Card{}, false
	}
	value, ok := valueFromString(s[1:])
	if !ok {
		return Card{}, false
	}
	return Card{color, value}, true
}

// Deck is an ordered pile of cards.
type Deck []Card

// SortCards sorts cards in place.
func SortCards(cards []Card) {
	sort.Slice(cards, func(i, j int) bool { return cards[i].Less(cards[j]) })
}

// Unique returns the sorted distinct cards, leaving the input alone.
func Unique(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	SortCards(out)
	n := 0
	for i, c := range out {
		if i > 0 && c == out[n-1] {
			continue
		}
		out[n] = c
		n++
	}
	return out[:n]
}

// index finds the position of a card, or -1.
func (d Deck) index(c Card) int {
	for i, x := range d {
		if x == c {
			return i
		}
	}
	return -1
}

// lastIndexOf finds the most recently added card of a color, or -1.
func (d Deck) lastIndexOf(color Color) int {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i].Color == color {
			return i
		}
	}
	return -1
}

// without returns a new deck missing the card at i.
func (d Deck) without(i int) Deck {
	out := make(Deck, 0, len(d)-1)
	out = append(out, d[:i]...)
	return append(out, d[i+1:]...)
}

// Take removes n cards from the front.
func (d Deck) Take(n int) (Deck, Deck) {
	if n > len(d) {
		n = len(d)
	}
	taken := make(Deck, n)
	copy(taken, d[:n])
	return taken, d[n:]
}

func (d Deck) String() string {
	parts := make([]string, len(d))
	for i, c := range d {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
