package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coder/quartz"

	"github.com/mwhitt/warsearch/cmd/warsearch/shared"
	"github.com/mwhitt/warsearch/internal/search"
)

type SearchCmd struct {
	Games         int    `help:"Number of deals to simulate (default 100000)"`
	Workers       int    `help:"Worker goroutines (default: one per CPU)"`
	Seed          int64  `help:"Base RNG seed (default: time-based)"`
	MoveLimit     int    `help:"Abort a game after this many cards played (default 10000)"`
	ProgressEvery int    `help:"Completed games between throughput lines (default 10000)"`
	HighScores    string `help:"File to append new best results to (default high_score.txt)" type:"path"`
	StatsFile     string `help:"Write a JSON run summary here on completion" type:"path"`
	Config        string `help:"HCL config file" type:"path"`
	Verbose       bool   `short:"v" help:"Verbose logging"`
}

// resolveSettings loads the config file and applies flag overrides on top.
// Flags win wherever they were given.
func (c *SearchCmd) resolveSettings() (*search.Settings, error) {
	settings, err := search.LoadSettings(c.Config)
	if err != nil {
		return nil, err
	}
	if c.Games > 0 {
		settings.Games = c.Games
	}
	if c.Workers > 0 {
		settings.Workers = c.Workers
	}
	if c.Seed != 0 {
		settings.Seed = c.Seed
	}
	if c.MoveLimit > 0 {
		settings.MoveLimit = c.MoveLimit
	}
	if c.ProgressEvery > 0 {
		settings.ProgressEvery = c.ProgressEvery
	}
	if c.HighScores != "" {
		settings.HighScoreFile = c.HighScores
	}
	if c.StatsFile != "" {
		settings.StatsFile = c.StatsFile
	}
	if c.Verbose {
		settings.LogLevel = "debug"
	}
	return settings, nil
}

func (c *SearchCmd) Run() error {
	settings, err := c.resolveSettings()
	if err != nil {
		return err
	}

	logger := shared.SetupLoggerWithLevel(settings.LogLevel)

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	highScores, err := search.OpenHighScoreLog(settings.HighScoreFile)
	if err != nil {
		return err
	}
	defer highScores.Close()

	logger.Info("starting search",
		"games", settings.Games,
		"workers", settings.Workers,
		"seed", seed,
		"move_limit", settings.MoveLimit,
		"high_scores", highScores.Path())

	ctx := shared.SignalContext(logger)

	searcher := search.New(search.Config{
		Games:         settings.Games,
		Workers:       settings.Workers,
		Seed:          seed,
		MoveLimit:     settings.MoveLimit,
		ProgressEvery: settings.ProgressEvery,
		Logger:        logger,
		Clock:         quartz.NewReal(),
		HighScores:    highScores,
	})

	stats, err := searcher.Run(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			return fmt.Errorf("search failed: %w", err)
		}
		logger.Warn("search interrupted", "completed", stats.Completed)
	}

	if settings.StatsFile != "" {
		if err := search.WriteSummary(settings.StatsFile, stats.Summary(seed)); err != nil {
			return err
		}
		logger.Info("wrote run summary", "path", settings.StatsFile)
	}
	return nil
}
