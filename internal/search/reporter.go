package search

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// DefaultProgressEvery is how many completed games between throughput lines.
const DefaultProgressEvery = 10000

// reporter emits periodic throughput lines during collection. The clock is
// injected so tests can drive time with a quartz mock.
type reporter struct {
	logger *log.Logger
	clock  quartz.Clock
	every  int
	start  time.Time
}

func newReporter(logger *log.Logger, clock quartz.Clock, every int) *reporter {
	if every <= 0 {
		every = DefaultProgressEvery
	}
	return &reporter{
		logger: logger,
		clock:  clock,
		every:  every,
		start:  clock.Now(),
	}
}

// completed notes that n games have finished, logging a throughput line at
// every reporting interval. n == 0 never reports, so empty runs stay silent
// and no division by zero can occur.
func (r *reporter) completed(n int) {
	if n == 0 || n%r.every != 0 {
		return
	}
	elapsed := r.clock.Since(r.start)
	rate := 0.0
	if elapsed > 0 {
		rate = float64(n) / elapsed.Seconds()
	}
	r.logger.Info("progress",
		"completed", n,
		"elapsed", elapsed.Round(time.Millisecond),
		"games_per_sec", int(rate))
}

func (r *reporter) elapsed() time.Duration {
	return r.clock.Since(r.start)
}
