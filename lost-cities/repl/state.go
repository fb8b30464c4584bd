package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/undeconstructed/lostcities/game"
)

// stateFile keeps the game on disk between runs.
type stateFile struct {
	name string
	log  zerolog.Logger
}

// load restores a saved game, or says there wasn't one.
func (sf stateFile) load(loader game.LoadGameFunc) (game.Game, bool, error) {
	f, err := os.Open(sf.name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("cannot open state file: %w", err)
	}
	defer f.Close()

	g, err := loader(f)
	if err != nil {
		return nil, false, fmt.Errorf("cannot restore state: %w", err)
	}

	sf.log.Info().Str("file", sf.name).Msg("loaded state")
	return g, true, nil
}

func (sf stateFile) save(g game.Game) {
	outFile, err := os.Create(sf.name)
	if err != nil {
		sf.log.Error().Err(err).Msg("can't save")
		return
	}
	defer outFile.Close()

	if err := g.WriteOut(outFile); err != nil {
		sf.log.Error().Err(err).Msg("can't save")
	}
}

func (sf stateFile) wipe() {
	err := os.Remove(sf.name)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		sf.log.Error().Err(err).Msg("can't delete")
	}
}
