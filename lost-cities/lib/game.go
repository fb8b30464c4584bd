package lostcities

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/undeconstructed/lostcities/game"
)

const (
	Players    = 2
	HandSize   = 8
	StartRound = 1
	Rounds     = 3
)

// Phase is which half of a turn the current player is in.
type Phase int

const (
	PlayOrDiscard Phase = iota
	DrawOrTake
)

var phaseNames = []string{"playordiscard", "drawortake"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

func (p Phase) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(phaseNames) {
		return nil, fmt.Errorf("bad phase %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(b []byte) error {
	for i, n := range phaseNames {
		if n == string(b) {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("bad phase %q", string(b))
}

// Stats counts what a player did over the whole game.
type Stats struct {
	Plays              int `json:"plays"`
	Discards           int `json:"discards"`
	Takes              int `json:"takes"`
	Draws              int `json:"draws"`
	Turns              int `json:"turns"`
	ExpeditionsStarted int `json:"expeditionsStarted"`
}

// state is everything that changes, and everything that gets saved.
type state struct {
	Round       int     `json:"round"`
	Phase       Phase   `json:"phase"`
	Deck        Deck    `json:"deck"`
	Discards    Deck    `json:"discards"`
	Hands       []Deck  `json:"hands"`
	Expeditions []Deck  `json:"expeditions"`
	Scores      [][]int `json:"scores"`
	Stats       []Stats `json:"stats"`
	TurnNo      int     `json:"turn"`
	Current     int     `json:"current"`
	Starter     int     `json:"starter"`
	// color discarded this turn, which can't be taken straight back
	Discarded *Color `json:"discarded"`
}

// Game is one match. It is not safe for concurrent use.
type Game struct {
	s   state
	rng *rand.Rand
	log zerolog.Logger
}

// Option changes how a game is made.
type Option func(*Game)

// WithRand sets the source used for shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.log = l }
}

func newGame(opts []Option) *Game {
	g := &Game{
		log: log.With().Str("game", "lostcities").Logger(),
	}
	for _, o := range opts {
		o(g)
	}
	if g.rng == nil {
		rng, err := NewRand(0)
		if err != nil {
			g.log.Warn().Err(err).Msg("no crypto seed, using clock")
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		g.rng = rng
	}
	return g
}

// NewGame makes and starts a game.
func NewGame(players int, opts ...Option) (*Game, []game.Change, error) {
	if players != Players {
		return nil, nil, game.PlayerCount(Players, Players, players)
	}

	g := newGame(opts)
	g.s.Round = StartRound
	g.s.Scores = make([][]int, Players)
	for p := range g.s.Scores {
		g.s.Scores[p] = []int{}
	}
	g.s.Stats = make([]Stats, Players)

	news, err := g.startRound(0)
	if err != nil {
		return nil, nil, err
	}
	return g, news, nil
}

func (g *Game) startRound(starter int) ([]game.Change, error) {
	g.log.Debug().Int("round", g.s.Round).Int("starter", starter).Msg("starting round")

	news := []game.Change{{Who: game.Nobody, What: fmt.Sprintf("Starting round %d", g.s.Round)}}

	g.s.Deck = ShuffledDeck(g.rng)
	g.s.Discards = Deck{}
	g.s.Hands = make([]Deck, Players)
	g.s.Expeditions = make([]Deck, Players)
	for p := 0; p < Players; p++ {
		g.s.Hands[p] = Deck{}
		g.s.Expeditions[p] = Deck{}
		n, err := g.refill(p)
		if err != nil {
			return nil, err
		}
		news = append(news, n...)
	}

	g.s.Starter = starter
	g.s.Current = starter
	g.startTurn()

	return news, nil
}

func (g *Game) endRound() ([]game.Change, error) {
	var news []game.Change
	for p := 0; p < Players; p++ {
		exp, err := g.expedition(p)
		if err != nil {
			return nil, err
		}
		score := Score(exp)
		g.s.Scores[p] = append(g.s.Scores[p], score)
		news = append(news, game.Change{
			Who:  p,
			What: fmt.Sprintf("scored %d in round %d, %d in total", score, g.s.Round, g.TotalScore(p)),
		})
	}

	g.s.Round++
	if g.s.Round <= Rounds {
		n, err := g.startRound(g.nextStarter())
		if err != nil {
			return nil, err
		}
		return append(news, n...), nil
	}

	g.log.Debug().Ints("winners", g.Winners()).Msg("game over")
	news = append(news, game.Change{Who: game.Nobody, What: g.describeWinners()})
	return news, nil
}

// nextStarter picks who leads the next round: the leader, or on a tie
// whoever didn't lead this one.
func (g *Game) nextStarter() int {
	s0, s1 := g.TotalScore(0), g.TotalScore(1)
	switch {
	case s0 > s1:
		return 0
	case s1 > s0:
		return 1
	default:
		return Opponent(g.s.Starter)
	}
}

func (g *Game) describeWinners() string {
	w := g.Winners()
	if len(w) == 1 {
		return fmt.Sprintf("The game is over, player %d wins with %d", w[0], g.TotalScore(w[0]))
	}
	return fmt.Sprintf("The game is over, a draw at %d each", g.TotalScore(0))
}

// Opponent is the other player.
func Opponent(player int) int {
	return (player + 1) % Players
}

func (g *Game) startTurn() {
	g.s.TurnNo++
	g.s.Phase = PlayOrDiscard
	g.s.Discarded = nil
}

func (g *Game) nextPhase() {
	switch g.s.Phase {
	case PlayOrDiscard:
		g.s.Phase = DrawOrTake
	case DrawOrTake:
		g.nextPlayer()
	}
}

func (g *Game) nextPlayer() {
	g.s.Stats[g.s.Current].Turns++
	g.s.Current = Opponent(g.s.Current)
	g.startTurn()
}

func (g *Game) assertTurn(player int, phase Phase) error {
	if g.IsFinished() {
		return game.ErrFinished
	}
	if player != g.s.Current {
		return game.ErrNotYourTurn
	}
	if phase != g.s.Phase {
		return game.InvalidInput(game.ErrNotNow.Code, "not the right phase, you need to %s", describePhase(g.s.Phase))
	}
	return nil
}

func describePhase(p Phase) string {
	if p == DrawOrTake {
		return "draw or take"
	}
	return "play or discard"
}

func (g *Game) hand(player int) (Deck, error) {
	if player < 0 || player >= len(g.s.Hands) {
		return nil, game.Internal("could not find player hand for player %d", player)
	}
	return g.s.Hands[player], nil
}

func (g *Game) expedition(player int) (Deck, error) {
	if player < 0 || player >= len(g.s.Expeditions) {
		return nil, game.Internal("could not find player expedition for player %d", player)
	}
	return g.s.Expeditions[player], nil
}

// highest is the top numbered card a player has put on an expedition.
func (g *Game) highest(player int, color Color) (int, bool, error) {
	exp, err := g.expedition(player)
	if err != nil {
		return 0, false, err
	}
	top, found := 0, false
	for _, c := range exp {
		if c.Color != color {
			continue
		}
		if n, ok := c.Value.Rank(); ok && n > top {
			top, found = n, true
		}
	}
	return top, found, nil
}

func (g *Game) canPlay(player int, c Card) error {
	top, found, err := g.highest(player, c.Color)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	n, numbered := c.Value.Rank()
	if !numbered || n <= top {
		return game.InvalidInput("TOOLOW", "you can't play %s as you've already played a higher card", c)
	}
	return nil
}

func (g *Game) play(player int, c Card) ([]game.Change, error) {
	if err := g.assertTurn(player, PlayOrDiscard); err != nil {
		return nil, err
	}
	hand, err := g.hand(player)
	if err != nil {
		return nil, err
	}
	i := hand.index(c)
	if i < 0 {
		return nil, game.InvalidInput("NOCARD", "you don't have %s", c)
	}
	if err := g.canPlay(player, c); err != nil {
		return nil, err
	}
	exp, err := g.expedition(player)
	if err != nil {
		return nil, err
	}

	if exp.lastIndexOf(c.Color) < 0 {
		g.s.Stats[player].ExpeditionsStarted++
	}
	g.s.Hands[player] = hand.without(i)
	g.s.Expeditions[player] = append(exp, c)
	g.s.Stats[player].Plays++
	g.nextPhase()

	return []game.Change{{Who: player, What: "played " + c.String()}}, nil
}

func (g *Game) discard(player int, c Card) ([]game.Change, error) {
	if err := g.assertTurn(player, PlayOrDiscard); err != nil {
		return nil, err
	}
	hand, err := g.hand(player)
	if err != nil {
		return nil, err
	}
	i := hand.index(c)
	if i < 0 {
		return nil, game.InvalidInput("NOCARD", "you don't have %s", c)
	}

	g.s.Hands[player] = hand.without(i)
	g.s.Discards = append(g.s.Discards, c)
	color := c.Color
	g.s.Discarded = &color
	g.s.Stats[player].Discards++
	g.nextPhase()

	return []game.Change{{Who: player, What: "discarded " + c.String()}}, nil
}

func (g *Game) take(player int, color Color) ([]game.Change, error) {
	if err := g.assertTurn(player, DrawOrTake); err != nil {
		return nil, err
	}
	if !color.Valid() {
		return nil, game.InvalidInput("NOCOLOR", "there is no expedition %s", color)
	}
	if g.s.Discarded != nil && *g.s.Discarded == color {
		return nil, game.InvalidInput("SAMEDISCARD", "you can't take the same card you just discarded")
	}
	i := g.s.Discards.lastIndexOf(color)
	if i < 0 {
		return nil, game.InvalidInput("NODISCARD", "there are no discarded cards for that expedition")
	}
	hand, err := g.hand(player)
	if err != nil {
		return nil, err
	}

	c := g.s.Discards[i]
	g.s.Hands[player] = append(hand, c)
	g.s.Discards = g.s.Discards.without(i)
	g.s.Stats[player].Takes++
	g.nextPhase()

	return []game.Change{{Who: player, What: "took " + c.String()}}, nil
}

func (g *Game) draw(player int) ([]game.Change, error) {
	if err := g.assertTurn(player, DrawOrTake); err != nil {
		return nil, err
	}
	if _, err := g.hand(player); err != nil {
		return nil, err
	}

	g.s.Stats[player].Draws++
	news, err := g.refill(player)
	if err != nil {
		return nil, err
	}
	if len(g.s.Deck) > 0 {
		g.nextPhase()
		return news, nil
	}

	// the round is over, and the next one has already set up its own turn
	g.s.Stats[player].Turns++
	end, err := g.endRound()
	if err != nil {
		return nil, err
	}
	return append(news, end...), nil
}

// refill tops a hand up from the deck, for as long as there is a deck.
func (g *Game) refill(player int) ([]game.Change, error) {
	hand, err := g.hand(player)
	if err != nil {
		return nil, err
	}
	num := HandSize - len(hand)
	if num < 0 {
		num = 0
	}

	var drawn Deck
	drawn, g.s.Deck = g.s.Deck.Take(num)
	g.s.Hands[player] = append(hand, drawn...)
	SortCards(drawn)

	what := "drew a card"
	if len(drawn) != 1 {
		what = fmt.Sprintf("drew %d cards", len(drawn))
	}
	return []game.Change{
		{Who: player, What: fmt.Sprintf("%s, %d remaining", what, len(g.s.Deck))},
		{Who: player, What: "You drew " + strings.Join(cardStrings(drawn), ", "), For: []int{player}},
	}, nil
}

func cardStrings(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}

// Apply checks and then does an action. If it fails, nothing has changed.
func (g *Game) Apply(player int, a Action) ([]game.Change, error) {
	if a == nil {
		return nil, game.InvalidInput(game.ErrBadCommand.Code, "no action")
	}
	news, err := a.apply(g, player)
	if err != nil {
		if errors.Is(err, game.ErrInternal) {
			g.log.Error().Err(err).Int("player", player).Stringer("action", a).Msg("internal error")
		}
		return nil, err
	}
	return news, nil
}

// IsFinished says whether the last round is done.
func (g *Game) IsFinished() bool {
	return g.s.Round > Rounds
}

// Winners is empty until the game is finished, and has both players on a draw.
func (g *Game) Winners() []int {
	if !g.IsFinished() {
		return []int{}
	}
	s0, s1 := g.TotalScore(0), g.TotalScore(1)
	switch {
	case s0 > s1:
		return []int{0}
	case s1 > s0:
		return []int{1}
	default:
		return []int{0, 1}
	}
}

// TotalScore adds up all finished rounds for a player.
func (g *Game) TotalScore(player int) int {
	if player < 0 || player >= len(g.s.Scores) {
		return 0
	}
	total := 0
	for _, s := range g.s.Scores[player] {
		total += s
	}
	return total
}

// CurrentPlayer is whose turn it is.
func (g *Game) CurrentPlayer() int { return g.s.Current }

// Phase is which half of the turn it is.
func (g *Game) Phase() Phase { return g.s.Phase }

// Round is the round being played, or Rounds+1 when finished.
func (g *Game) Round() int { return g.s.Round }
