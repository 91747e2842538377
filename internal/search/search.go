// Package search drives bulk simulation runs: it fans deals out to a worker
// pool, collects results in submission order, tracks the best game seen, and
// appends new high scores to a log.
package search

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/mwhitt/warsearch/internal/deck"
	"github.com/mwhitt/warsearch/internal/game"
	"github.com/mwhitt/warsearch/internal/pool"
	"github.com/mwhitt/warsearch/internal/randutil"
)

// Config holds configuration for a search run.
type Config struct {
	// Games is the number of deals to simulate.
	Games int
	// Workers is the pool size; zero means one worker per CPU.
	Workers int
	// Seed is the base seed; game i derives its own RNG from Seed+i.
	Seed int64
	// MoveLimit caps each game; zero means game.DefaultMoveLimit.
	MoveLimit int
	// ProgressEvery is the throughput reporting interval in completed games.
	ProgressEvery int
	// Logger receives progress and high-score announcements.
	Logger *log.Logger
	// Clock is used for throughput timing; nil means the real clock.
	Clock quartz.Clock
	// HighScores, when set, receives a line per new best result.
	HighScores *HighScoreLog
}

// Searcher runs bulk war-with-penalties searches.
type Searcher struct {
	cfg Config
}

// New creates a searcher, applying defaults for unset config fields.
func New(cfg Config) *Searcher {
	if cfg.Games < 0 {
		cfg.Games = 0
	}
	if cfg.MoveLimit <= 0 {
		cfg.MoveLimit = game.DefaultMoveLimit
	}
	if cfg.ProgressEvery <= 0 {
		cfg.ProgressEvery = DefaultProgressEvery
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return &Searcher{cfg: cfg}
}

// Simulate runs a single deal from seed to termination. It is pure: the RNG
// is constructed here, used only for the shuffle, and nothing outside the
// call is read or written, which is what makes parallel execution safe
// without locks.
func Simulate(seed int64, moveLimit int) game.Result {
	rng := randutil.New(seed)
	d := deck.Shuffle(rng)
	return game.New(d, game.Config{MoveLimit: moveLimit}).Play()
}

// Run submits all requested games to the pool and collects their results in
// submission order. A slow early game delays the reporting of later ones,
// but the final aggregate is order-independent. Cancelling ctx stops further
// submission; games already queued still run and are collected.
func (s *Searcher) Run(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	rep := newReporter(s.cfg.Logger, s.cfg.Clock, s.cfg.ProgressEvery)

	p := pool.New[game.Result](s.cfg.Workers)
	defer p.Shutdown()

	// Sized so the submitter never blocks on the collector: everything is
	// queued up front, as fast as the pool lock allows.
	futures := make(chan *pool.Future[game.Result], s.cfg.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(futures)
		for i := 0; i < s.cfg.Games; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			seed := s.cfg.Seed + int64(i)
			fut, err := p.Submit(func() (game.Result, error) {
				return Simulate(seed, s.cfg.MoveLimit), nil
			})
			if err != nil {
				return err
			}
			futures <- fut
		}
		return nil
	})

	var logErr error
	for fut := range futures {
		res, err := fut.Wait()
		if err != nil {
			// A faulted game is logged and skipped; its siblings keep going.
			s.cfg.Logger.Error("game simulation failed", "error", err)
			stats.AddError()
			continue
		}
		if stats.Add(res) {
			s.cfg.Logger.Info("new high score",
				"cards", res.CardsPlayed,
				"tricks", res.Tricks,
				"winner", res.Winner,
				"deck", res.Deck.String())
			if s.cfg.HighScores != nil {
				if logErr = s.cfg.HighScores.Append(res); logErr != nil {
					// Stop collecting but still join the submitter below.
					break
				}
			}
		}
		rep.completed(stats.Completed)
	}

	err := g.Wait()
	if logErr != nil {
		err = logErr
	}
	stats.Elapsed = rep.elapsed()

	s.cfg.Logger.Info("search finished",
		"games", stats.Completed,
		"wins", stats.Wins,
		"cycles", stats.Cycles,
		"move_limits", stats.MoveLimits,
		"errors", stats.Errors,
		"games_per_sec", int(stats.GamesPerSecond()))
	if stats.Best != nil {
		s.cfg.Logger.Info("best game",
			"cards", stats.Best.CardsPlayed,
			"tricks", stats.Best.Tricks,
			"winner", stats.Best.Winner,
			"deck", stats.Best.Deck.String())
	}

	return stats, err
}
