package shared

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
)

// SignalContext returns a context cancelled on interrupt or SIGTERM.
// Cancellation stops new work from being queued; whatever is already
// in flight finishes and is reported.
func SignalContext(logger *log.Logger) context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info("received signal, finishing in-flight games", "signal", sig.String())
		cancel()
	}()

	return ctx
}
