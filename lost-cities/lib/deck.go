package lostcities

import "math/rand"

const (
	investments = 3
	// DeckSize is every card in the game
	DeckSize = NumColors * (investments + MaxRank - MinRank + 1)
)

// InitialDeck is the full deck in a fixed order.
func InitialDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for _, e := range Colors() {
		for i := 0; i < investments; i++ {
			deck = append(deck, Card{e, Investment})
		}
		for v := MinRank; v <= MaxRank; v++ {
			deck = append(deck, Card{e, N(v)})
		}
	}
	return deck
}

// ShuffledDeck is a fresh full deck in random order.
func ShuffledDeck(rng *rand.Rand) Deck {
	deck := InitialDeck()
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}
