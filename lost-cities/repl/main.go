package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	rl "github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/undeconstructed/lostcities/game"
	"github.com/undeconstructed/lostcities/lost-cities/config"
	lostcities "github.com/undeconstructed/lostcities/lost-cities/lib"
)

const (
	RED    = "[31m"
	GREEN  = "[32m"
	YELLOW = "[33m"
	BLUE   = "[34m"
	WHITE  = "[37m"
	RESET  = "[0m"
)

func col(c lostcities.Color) string {
	switch c {
	case lostcities.Red:
		return RED
	case lostcities.Green:
		return GREEN
	case lostcities.Yellow:
		return YELLOW
	case lostcities.Blue:
		return BLUE
	default:
		return WHITE
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.SetupLogging(); err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}

	r := &repl{
		cfg:   cfg,
		state: stateFile{name: cfg.StateFile, log: log.With().Str("state", cfg.StateFile).Logger()},
	}

	if err := r.open(); err != nil {
		log.Fatal().Err(err).Msg("cannot start game")
	}

	l, err := rl.NewEx(&rl.Config{
		Prompt:            "» ",
		HistoryFile:       cfg.HistoryFile,
		AutoComplete:      r.completer(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cannot start readline")
	}
	defer l.Close()

	r.loop(l)
}

// repl is a hotseat game, where whoever's turn it is types.
type repl struct {
	cfg   config.Config
	state stateFile
	g     game.Game
	// games started this run, so a fixed seed still gives a new deal each time
	games int64
}

// mover is a game that can list its legal moves, for completion.
type mover interface {
	Moves(player int) []lostcities.Action
}

func (r *repl) open() error {
	rng, err := r.cfg.Rand(0)
	if err != nil {
		return err
	}
	g, ok, err := r.state.load(lostcities.Load(lostcities.WithRand(rng)))
	if err != nil {
		return err
	}
	if ok {
		r.g = g
		return nil
	}
	return r.restart()
}

func (r *repl) restart() error {
	r.games++
	rng, err := r.cfg.Rand(r.games)
	if err != nil {
		return err
	}
	makeGame := lostcities.Make(lostcities.WithRand(rng))
	g, news, err := makeGame(lostcities.Players)
	if err != nil {
		return err
	}
	r.g = g
	r.state.save(g)
	printNews(news, r.current())
	return nil
}

func (r *repl) current() int {
	return r.g.GetTurnState(game.Spectator).Player
}

func (r *repl) finished() bool {
	return r.g.GetGameState(game.Spectator).Status == game.StatusFinished
}

func (r *repl) view(viewer int) lostcities.View {
	v, _ := r.g.GetGameState(viewer).Custom.(lostcities.View)
	return v
}

func (r *repl) moves() []lostcities.Action {
	m, ok := r.g.(mover)
	if !ok {
		return nil
	}
	return m.Moves(r.current())
}

// completer offers only the moves the current player could make.
func (r *repl) completer() *rl.PrefixCompleter {
	args := func(keyword string) func(string) []string {
		return func(string) []string {
			var out []string
			for _, m := range r.moves() {
				s := m.String()
				if strings.HasPrefix(s, keyword+" ") {
					out = append(out, strings.TrimPrefix(s, keyword+" "))
				}
			}
			return out
		}
	}

	return rl.NewPrefixCompleter(
		rl.PcItem("play", rl.PcItemDynamic(args("play"))),
		rl.PcItem("discard", rl.PcItemDynamic(args("discard"))),
		rl.PcItem("take", rl.PcItemDynamic(args("take"))),
		rl.PcItem("draw"),
		rl.PcItem("view",
			rl.PcItem("0"),
			rl.PcItem("1"),
			rl.PcItem("all"),
		),
		rl.PcItem("moves"),
		rl.PcItem("new"),
		rl.PcItem("help"),
	)
}

func (r *repl) prompt() string {
	if r.finished() {
		return "game over» "
	}
	ts := r.g.GetTurnState(r.current())
	var can []string
	for _, p := range ts.Can {
		can = append(can, p.First())
	}
	return fmt.Sprintf("%d/%d p%d|%s» ", r.view(game.Spectator).Round, lostcities.Rounds, ts.Player, strings.Join(can, "/"))
}

// play checks the first command against what the player can do, then runs
// the whole line.
func (r *repl) play(line string) {
	player := r.current()
	can := r.g.GetTurnState(player).Can
	if _, ok := game.Allowed(can, game.CommandString(line)); !ok {
		if len(can) == 0 {
			fmt.Printf("The game is over, type new to play again\n")
		} else {
			fmt.Printf("You can: %s\n", joinPatterns(can))
		}
		return
	}

	news, err := game.RunChain(r.g, player, line)
	printNews(news, player)
	if len(news) > 0 {
		r.state.save(r.g)
	}
	if err != nil {
		if !errors.Is(err, game.ErrInternal) {
			log.Info().Err(err).Int("player", player).Msg("refused")
		}
		fmt.Printf("Error: %v\n", err)
		return
	}
	if r.finished() {
		printView(r.view(game.Spectator))
	}
}

func (r *repl) loop(l *rl.Instance) {
	for {
		l.SetPrompt(r.prompt())

		line, err := l.Readline()
		if err == rl.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			break
		}

		parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
		cmd := strings.ToLower(parts[0])
		rest := ""
		if len(parts) == 2 {
			rest = strings.TrimSpace(parts[1])
		}

		switch {
		case cmd == "":
			// shortcut for seeing the current player's view
			printView(r.view(r.current()))
		case cmd == "view":
			viewer := game.Spectator
			if rest != "" && rest != "all" {
				n, err := strconv.Atoi(rest)
				if err != nil {
					fmt.Printf("view [0|1|all]\n")
					continue
				}
				viewer = n
			}
			printView(r.view(viewer))
		case cmd == "moves":
			for _, m := range r.moves() {
				fmt.Printf("  %s\n", m)
			}
		case cmd == "new":
			r.state.wipe()
			if err := r.restart(); err != nil {
				log.Error().Err(err).Msg("cannot restart")
			}
		case cmd == "help":
			fmt.Printf("%s, chained in one line\n", joinPatterns(lostcities.FullGrammar().Patterns()))
			fmt.Printf("cards are like R7 or WX, expeditions are R G W B Y\n")
			fmt.Printf("view [0|1|all], moves, new\n")
		default:
			r.play(line)
		}
	}
}

func joinPatterns(ps []game.CommandPattern) string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p)
	}
	return strings.Join(out, ", ")
}

func printNews(news []game.Change, player int) {
	for _, c := range news {
		if !c.VisibleTo(player) {
			continue
		}
		if c.Who == game.Nobody || !c.Public() {
			fmt.Printf("%s\n", c.What)
			continue
		}
		fmt.Printf("player %d %s\n", c.Who, c.What)
	}
}

func printCards(cards lostcities.Deck) string {
	var parts []string
	for _, c := range cards {
		parts = append(parts, "\033"+col(c.Color)+c.String()+"\033"+RESET)
	}
	return strings.Join(parts, " ")
}

func printView(v lostcities.View) {
	fmt.Printf("Round:    %d of %d\n", v.Round, v.Rounds)
	if v.Finished {
		fmt.Printf("Winners:  %v\n", v.Winners)
	} else {
		fmt.Printf("Turn:     player %d, %s\n", v.CurrentPlayer, v.Phase)
	}
	fmt.Printf("Deck:     %d\n", v.DeckRemaining)
	var tops lostcities.Deck
	for _, e := range lostcities.Colors() {
		if c, ok := v.Top(e); ok {
			tops = append(tops, c)
		}
	}
	fmt.Printf("Discards: %s\n", printCards(tops))
	for p, exp := range v.Expeditions {
		fmt.Printf("Player %d: %s (scores %v, total %d)\n", p, printCards(exp), v.Scores[p], v.Totals[p])
	}
	if v.Viewer != game.Spectator {
		fmt.Printf("Hand:     %s\n", printCards(v.Hand))
	}
}
