package lostcities

const (
	expeditionCost = 20
	bonusCards     = 8
	bonusPoints    = 20
)

// ColorScore is what one color of a pile is worth. An untouched color is
// worth nothing.
func ColorScore(pile []Card, color Color) int {
	sum, invs, count := 0, 0, 0
	for _, c := range pile {
		if c.Color != color {
			continue
		}
		count++
		if n, ok := c.Value.Rank(); ok {
			sum += n
		} else {
			invs++
		}
	}
	if count == 0 {
		return 0
	}
	score := (sum - expeditionCost) * (invs + 1)
	if count >= bonusCards {
		score += bonusPoints
	}
	return score
}

// Score is what a whole expedition pile is worth for a round.
func Score(pile []Card) int {
	total := 0
	for _, e := range Colors() {
		total += ColorScore(pile, e)
	}
	return total
}
