package lostcities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialDeck(t *testing.T) {
	deck := InitialDeck()
	require.Len(t, deck, 60)
	assert.Equal(t, DeckSize, len(deck))

	counts := map[Card]int{}
	for _, c := range deck {
		counts[c]++
	}
	for _, e := range Colors() {
		assert.Equal(t, 3, counts[Card{e, Investment}], "investments for %s", e)
		for v := MinRank; v <= MaxRank; v++ {
			assert.Equal(t, 1, counts[Card{e, N(v)}], "%s %d", e, v)
		}
	}
	assert.Len(t, Unique(deck), 50)

	// fixed order, investments first in each color
	assert.Equal(t, Card{Red, Investment}, deck[0])
	assert.Equal(t, Card{Red, N(2)}, deck[3])
	assert.Equal(t, Card{Yellow, N(10)}, deck[59])
}

func TestShuffledDeck(t *testing.T) {
	a := ShuffledDeck(newRand(1))
	b := ShuffledDeck(newRand(1))
	c := ShuffledDeck(newRand(2))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.ElementsMatch(t, InitialDeck(), c)
}

func TestCardOrder(t *testing.T) {
	assert.True(t, Card{Red, Investment}.Less(Card{Red, N(2)}))
	assert.True(t, Card{Red, N(10)}.Less(Card{Green, Investment}))
	assert.False(t, Card{Blue, N(5)}.Less(Card{Blue, N(5)}))

	cards := []Card{card("Y3"), card("RX"), card("R10"), card("W2"), card("R2"), card("RX")}
	SortCards(cards)
	assert.Equal(t, "RX RX R2 R10 W2 Y3", Deck(cards).String())
	assert.Equal(t, "RX R2 R10 W2 Y3", Deck(Unique(cards)).String())
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		in   string
		want Card
		ok   bool
	}{
		{"R7", Card{Red, N(7)}, true},
		{"wx", Card{White, Investment}, true},
		{"b10", Card{Blue, N(10)}, true},
		{"G2", Card{Green, N(2)}, true},
		{"y9", Card{Yellow, N(9)}, true},
		{"R1", Card{}, false},
		{"R11", Card{}, false},
		{"Q7", Card{}, false},
		{"R", Card{}, false},
		{"", Card{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCard(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCardJSON(t *testing.T) {
	d := Deck{card("R7"), card("GX"), card("Y10")}
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `["R7","GX","Y10"]`, string(data))

	var back Deck
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)

	assert.Error(t, json.Unmarshal([]byte(`["Z7"]`), &back))
}

func TestColorLetters(t *testing.T) {
	var letters string
	for _, e := range Colors() {
		letters += e.Letter()
	}
	assert.Equal(t, "RGWBY", letters)
	assert.Equal(t, "yellow", Yellow.String())
}
