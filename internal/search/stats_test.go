package search

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitt/warsearch/internal/deck"
	"github.com/mwhitt/warsearch/internal/game"
)

func winResult(cards, tricks int) game.Result {
	return game.Result{
		Status:      game.Win,
		Winner:      game.Seat1,
		CardsPlayed: cards,
		Tricks:      tricks,
	}
}

func TestStatsOnlyWinsSetBest(t *testing.T) {
	t.Parallel()

	var s Stats
	assert.False(t, s.Add(game.Result{Status: game.Cycle, CardsPlayed: 9000}))
	assert.False(t, s.Add(game.Result{Status: game.MoveLimit, CardsPlayed: 10000}))
	assert.Nil(t, s.Best, "long losses must not set a best")

	assert.True(t, s.Add(winResult(120, 8)))
	require.NotNil(t, s.Best)
	assert.Equal(t, 120, s.Best.CardsPlayed)

	assert.False(t, s.Add(winResult(120, 9)), "equal length is not an improvement")
	assert.False(t, s.Add(winResult(80, 2)))
	assert.True(t, s.Add(winResult(300, 20)))
	assert.Equal(t, 300, s.Best.CardsPlayed)

	assert.Equal(t, 6, s.Completed)
	assert.Equal(t, 4, s.Wins)
	assert.Equal(t, 1, s.Cycles)
	assert.Equal(t, 1, s.MoveLimits)
	assert.Equal(t, int64(9000+10000+120+120+80+300), s.TotalCards)
}

func TestStatsErrorsDoNotCountAsCompleted(t *testing.T) {
	t.Parallel()

	var s Stats
	s.AddError()
	s.AddError()
	assert.Equal(t, 2, s.Errors)
	assert.Zero(t, s.Completed)
	assert.Zero(t, s.GamesPerSecond())
}

func TestStatsRates(t *testing.T) {
	t.Parallel()

	var s Stats
	s.Add(winResult(100, 5))
	s.Add(winResult(200, 10))
	s.Elapsed = 2 * time.Second

	assert.InDelta(t, 1.0, s.GamesPerSecond(), 1e-9)
	assert.InDelta(t, 150.0, s.MeanCards(), 1e-9)
}

func TestWriteSummary(t *testing.T) {
	t.Parallel()

	var s Stats
	res := winResult(250, 14)
	// A fixed deck keeps the file content checkable.
	res.Deck = deck.Parse("JJJJQQQQKKKKAAAA")
	s.Add(res)
	s.Elapsed = time.Second

	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, WriteSummary(path, s.Summary(99)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var sum Summary
	require.NoError(t, json.Unmarshal(data, &sum))
	assert.Equal(t, 1, sum.GamesCompleted)
	assert.Equal(t, 1, sum.Wins)
	assert.Equal(t, int64(99), sum.Seed)
	assert.Equal(t, 250, sum.BestCardsPlayed)
	assert.Equal(t, 14, sum.BestTricks)
	assert.Equal(t, 1, sum.BestWinner)
	assert.Len(t, sum.BestDeck, deck.Size)
	assert.InDelta(t, 250.0, sum.MeanCardsPlayed, 1e-9)
}

func TestSummaryOmitsBestWhenAbsent(t *testing.T) {
	t.Parallel()

	var s Stats
	data, err := json.Marshal(s.Summary(1))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "best_deck")
	assert.NotContains(t, string(data), "best_cards_played")
}
