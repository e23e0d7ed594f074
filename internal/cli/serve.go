package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/finiteconsole"
	httpadapter "github.com/aretw0/finiteconsole/pkg/adapters/http"
	"github.com/aretw0/finiteconsole/pkg/loader"
)

// Serve builds a graph file and serves its introspection API on addr until ctx
// is done or the process is signalled. The loop is never started.
func Serve(ctx context.Context, addr, path string, actions loader.Actions, logger *slog.Logger) error {
	p, err := buildDetached(path, actions)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: addr,
		Handler: httpadapter.NewServer(p,
			httpadapter.WithLogger(logger),
			httpadapter.WithVersion(finiteconsole.Version),
		).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("serving graph", "addr", addr, "graph", path)
		serverErrors <- srv.ListenAndServe()
	}()

	sigCtx := NewSignalContext(ctx)
	defer sigCtx.Cancel()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-sigCtx.Done():
		logger.Info("shutting down", "signal", sigCtx.Signal())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown did not complete", "err", err)
			return srv.Close()
		}
		return nil
	}
}
