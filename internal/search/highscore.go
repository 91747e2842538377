package search

import (
	"fmt"
	"os"

	"github.com/mwhitt/warsearch/internal/game"
)

// HighScoreLog appends qualifying results to a log file, one line per new
// best: cards_played,tricks,winner_id,deck_string.
type HighScoreLog struct {
	path string
	f    *os.File
}

// OpenHighScoreLog opens path for appending, creating it if needed. Failing
// here aborts the run before any work starts.
func OpenHighScoreLog(path string) (*HighScoreLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening high score log %s: %w", path, err)
	}
	return &HighScoreLog{path: path, f: f}, nil
}

// Append writes one result line. Writes go straight to the file descriptor,
// so each line survives even if the run is killed mid-search.
func (l *HighScoreLog) Append(res game.Result) error {
	line := fmt.Sprintf("%d,%d,%d,%s\n", res.CardsPlayed, res.Tricks, res.Winner.ID(), res.Deck)
	if _, err := l.f.WriteString(line); err != nil {
		return fmt.Errorf("appending to %s: %w", l.path, err)
	}
	return nil
}

// Path returns the log file path.
func (l *HighScoreLog) Path() string {
	return l.path
}

// Close closes the underlying file.
func (l *HighScoreLog) Close() error {
	return l.f.Close()
}
