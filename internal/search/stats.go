package search

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mwhitt/warsearch/internal/deck"
	"github.com/mwhitt/warsearch/internal/fileutil"
	"github.com/mwhitt/warsearch/internal/game"
)

// Best is the running best result: the won game with the most cards played
// seen so far. Only wins qualify; cycles and move-limit games never do.
type Best struct {
	CardsPlayed int
	Tricks      int
	Winner      game.Seat
	Deck        deck.Deck
}

// Stats aggregates completed simulation results. It is mutated only by the
// collecting goroutine and needs no locking.
type Stats struct {
	Completed   int
	Wins        int
	Cycles      int
	MoveLimits  int
	Errors      int
	TotalCards  int64
	TotalTricks int64
	Best        *Best
	Elapsed     time.Duration
}

// Add incorporates one result and reports whether it set a new best.
func (s *Stats) Add(res game.Result) bool {
	s.Completed++
	s.TotalCards += int64(res.CardsPlayed)
	s.TotalTricks += int64(res.Tricks)

	switch res.Status {
	case game.Win:
		s.Wins++
	case game.Cycle:
		s.Cycles++
		return false
	case game.MoveLimit:
		s.MoveLimits++
		return false
	}

	if s.Best != nil && res.CardsPlayed <= s.Best.CardsPlayed {
		return false
	}
	s.Best = &Best{
		CardsPlayed: res.CardsPlayed,
		Tricks:      res.Tricks,
		Winner:      res.Winner,
		Deck:        res.Deck,
	}
	return true
}

// AddError records a simulation that faulted. Faulted games contribute
// nothing else to the aggregate.
func (s *Stats) AddError() {
	s.Errors++
}

// GamesPerSecond returns throughput over the recorded Elapsed duration,
// or 0 before any game has completed.
func (s *Stats) GamesPerSecond() float64 {
	if s.Completed == 0 || s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Completed) / s.Elapsed.Seconds()
}

// MeanCards returns the average game length in cards played.
func (s *Stats) MeanCards() float64 {
	if s.Completed == 0 {
		return 0
	}
	return float64(s.TotalCards) / float64(s.Completed)
}

// Summary is the JSON snapshot written when a stats file is requested.
type Summary struct {
	GamesCompleted  int     `json:"games_completed"`
	Wins            int     `json:"wins"`
	Cycles          int     `json:"cycles"`
	MoveLimits      int     `json:"move_limits"`
	TaskErrors      int     `json:"task_errors"`
	MeanCardsPlayed float64 `json:"mean_cards_played"`
	DurationSeconds float64 `json:"duration_seconds"`
	GamesPerSecond  float64 `json:"games_per_second"`
	Seed            int64   `json:"seed"`

	BestCardsPlayed int    `json:"best_cards_played,omitempty"`
	BestTricks      int    `json:"best_tricks,omitempty"`
	BestWinner      int    `json:"best_winner,omitempty"`
	BestDeck        string `json:"best_deck,omitempty"`
}

// Summary builds the snapshot for this run.
func (s *Stats) Summary(seed int64) Summary {
	sum := Summary{
		GamesCompleted:  s.Completed,
		Wins:            s.Wins,
		Cycles:          s.Cycles,
		MoveLimits:      s.MoveLimits,
		TaskErrors:      s.Errors,
		MeanCardsPlayed: s.MeanCards(),
		DurationSeconds: s.Elapsed.Seconds(),
		GamesPerSecond:  s.GamesPerSecond(),
		Seed:            seed,
	}
	if s.Best != nil {
		sum.BestCardsPlayed = s.Best.CardsPlayed
		sum.BestTricks = s.Best.Tricks
		sum.BestWinner = s.Best.Winner.ID()
		sum.BestDeck = s.Best.Deck.String()
	}
	return sum
}

// WriteSummary writes the snapshot as JSON, atomically, so a reader never
// sees a half-written file.
func WriteSummary(path string, sum Summary) error {
	data, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	data = append(data, '\n')
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
