package shutdown

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/pranav244872/certsearch/logging"
)

// Stoppable is anything Graceful can drain, in practice the API server.
type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// Graceful blocks until one of signals arrives, then gives s up to timeout to
// drain in-flight requests.
func Graceful(signals []os.Signal, s Stoppable, timeout time.Duration, log *logging.Logger) {
	sigCtx, stop := signal.NotifyContext(context.Background(), signals...)
	defer stop()

	<-sigCtx.Done()
	log.Info("draining search server", "timeout", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Warn("search server did not drain cleanly", "err", err)
		return
	}
	log.Info("search server stopped")
}
