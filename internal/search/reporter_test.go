package search

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
)

func TestReporterLogsAtInterval(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	mockClock := quartz.NewMock(t)
	rep := newReporter(log.New(&buf), mockClock, 100)

	mockClock.Advance(2 * time.Second)
	rep.completed(100)

	out := buf.String()
	assert.Contains(t, out, "progress")
	assert.Contains(t, out, "completed=100")
	assert.Contains(t, out, "games_per_sec=50")
	assert.Equal(t, 2*time.Second, rep.elapsed())
}

func TestReporterSkipsOffInterval(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	mockClock := quartz.NewMock(t)
	rep := newReporter(log.New(&buf), mockClock, 100)

	mockClock.Advance(time.Second)
	rep.completed(0)
	rep.completed(1)
	rep.completed(99)
	rep.completed(150)

	assert.Empty(t, buf.String())
}

func TestReporterDefaultsInterval(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := newReporter(log.New(&buf), quartz.NewMock(t), 0)
	assert.Equal(t, DefaultProgressEvery, rep.every)
}
