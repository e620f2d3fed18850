package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"tracklist/internal/adapters/httpapi"
)

// ShutdownTimeout bounds how long Serve waits for in-flight requests.
const ShutdownTimeout = 10 * time.Second

// Serve runs the HTTP API on addr until ctx is cancelled or the process
// receives SIGINT or SIGTERM. Design changes on disk are synced into the
// index while serving.
func Serve(ctx context.Context, s *Stack, addr string, log logrus.FieldLogger) error {
	handler := httpapi.NewHandler(s.Repo, s.Repo, s.Rides, s.Format, log)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           httpapi.NewRouter(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.Watch(gCtx, func(paths []string) {
			log.WithField("count", len(paths)).Info("design files changed")
			if s.Index == nil {
				return
			}
			if _, err := s.Sync(gCtx, false); err != nil {
				log.WithError(err).Warn("index sync after change failed")
			}
		})
	})

	g.Go(func() error {
		log.WithField("address", addr).Info("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			log.WithField("signal", sig.String()).Info("received shutdown signal")
		case <-gCtx.Done():
			log.Info("context cancelled, shutting down")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("HTTP server shutdown error")
		}
		return errShutdown
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errShutdown) {
		return err
	}
	log.Info("server stopped")
	return nil
}

// errShutdown cancels the group once the server is shutting down, so the
// watcher stops after a signal too.
var errShutdown = errors.New("shutdown")
