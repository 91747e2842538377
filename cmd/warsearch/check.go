package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mwhitt/warsearch/cmd/warsearch/shared"
	"github.com/mwhitt/warsearch/internal/deck"
	"github.com/mwhitt/warsearch/internal/game"
)

type CheckCmd struct {
	Deck      string `arg:"" help:"Deck string: up to 52 characters of -, J, Q, K, A"`
	MoveLimit int    `default:"1000000" help:"Abort after this many cards played"`
	Verbose   bool   `short:"v" help:"Log every turn"`
}

func (c *CheckCmd) Run() error {
	logger := shared.SetupLogger(c.Verbose)

	d := deck.Parse(c.Deck)
	if !d.Valid() {
		return fmt.Errorf("invalid deck %q: a valid deck has exactly 4 each of J, Q, K and A across 52 slots", c.Deck)
	}

	fmt.Printf("Testing deck: %s\n", d)

	var gameLogger *log.Logger
	if c.Verbose {
		gameLogger = logger
	}
	g := game.New(d, game.Config{MoveLimit: c.MoveLimit, Logger: gameLogger})

	start := time.Now()
	res := g.Play()
	elapsed := time.Since(start)

	switch res.Status {
	case game.Win:
		fmt.Printf("%s won after %d cards and %d tricks\n", res.Winner, res.CardsPlayed, res.Tricks)
	case game.Cycle:
		fmt.Printf("cycle detected after %d cards and %d tricks\n", res.CardsPlayed, res.Tricks)
	case game.MoveLimit:
		fmt.Printf("move limit reached (%d cards, %d tricks)\n", res.CardsPlayed, res.Tricks)
	}
	fmt.Printf("elapsed: %s\n", elapsed.Round(time.Millisecond))
	return nil
}
