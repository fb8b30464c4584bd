package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/undeconstructed/lostcities/game"
	"github.com/undeconstructed/lostcities/lost-cities/config"
	lostcities "github.com/undeconstructed/lostcities/lost-cities/lib"
)

// a game can't take more actions than this without something being wrong
const maxActions = 10000

type result struct {
	winners []int
	totals  [lostcities.Players]int
	actions int
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

	results := make([]result, cfg.FuzzGames)

	grp, gctx := errgroup.WithContext(context.Background())
	grp.SetLimit(cfg.FuzzWorkers)

	for i := 0; i < cfg.FuzzGames; i++ {
		i := i
		grp.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			res, err := playOne(cfg, i)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		log.Error().Err(err).Msg("fuzz failed")
		os.Exit(1)
	}

	summarise(results)
}

// playOne plays a whole game with both players picking random legal moves,
// sent as text, and checks the state after every one.
func playOne(cfg config.Config, n int) (result, error) {
	rng, err := cfg.Rand(int64(n))
	if err != nil {
		return result{}, err
	}
	bot := rand.New(rand.NewSource(rng.Int63()))
	logger := log.With().Int("fuzz", n).Logger()

	g, _, err := lostcities.NewGame(lostcities.Players, lostcities.WithRand(rng), lostcities.WithLogger(logger))
	if err != nil {
		return result{}, err
	}

	res := result{}
	for !g.IsFinished() {
		if res.actions >= maxActions {
			return res, fmt.Errorf("no end after %d actions", res.actions)
		}

		player := g.CurrentPlayer()
		moves := g.Moves(player)
		if len(moves) == 0 {
			return res, fmt.Errorf("player %d has no moves in %s", player, g.Phase())
		}
		move := moves[bot.Intn(len(moves))]

		if _, err := g.Play(player, game.Command{Command: game.CommandString(move.String())}); err != nil {
			return res, fmt.Errorf("move %q refused: %w", move, err)
		}
		res.actions++

		if err := g.Check(); err != nil {
			return res, fmt.Errorf("after %q: %w", move, err)
		}
		if !g.Legal(lostcities.Opponent(g.CurrentPlayer())).Empty() {
			return res, fmt.Errorf("both players can act after %q", move)
		}
	}

	res.winners = g.Winners()
	for p := 0; p < lostcities.Players; p++ {
		res.totals[p] = g.TotalScore(p)
	}
	logger.Debug().Ints("winners", res.winners).Int("actions", res.actions).Msg("game done")
	return res, nil
}

func summarise(results []result) {
	wins := [lostcities.Players]int{}
	draws, actions := 0, 0
	var totals [lostcities.Players]int
	for _, r := range results {
		actions += r.actions
		if len(r.winners) == 1 {
			wins[r.winners[0]]++
		} else {
			draws++
		}
		for p := range totals {
			totals[p] += r.totals[p]
		}
	}

	ev := log.Info().Int("games", len(results)).Int("draws", draws).Int("actions", actions)
	for p := range wins {
		ev = ev.Int(fmt.Sprintf("p%dwins", p), wins[p])
		if len(results) > 0 {
			ev = ev.Int(fmt.Sprintf("p%davg", p), totals[p]/len(results))
		}
	}
	ev.Msg("fuzz done")

	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		for i, r := range results {
			log.Debug().Int("game", i).Ints("scores", r.totals[:]).Msg("final")
		}
	}
}
