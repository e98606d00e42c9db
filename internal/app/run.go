package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vk/crmdeck/internal/ctxlog"
	"golang.org/x/sync/errgroup"
)

// Run executes the main application lifecycle: it warms the registry, starts
// the dev watcher when enabled, and serves the dashboard API until the
// context is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.catalog != nil {
		defer func() { _ = a.catalog.Close() }()
	}

	if err := a.preload(ctx); err != nil {
		return fmt.Errorf("component preload failed: %w", err)
	}

	if a.watcher != nil {
		go func() {
			if err := a.watcher.Run(ctx, a.config.ManifestsPath); err != nil && !errors.Is(err, context.Canceled) {
				a.logger.Error("Hot reload watcher stopped unexpectedly", "error", err)
			}
		}()
	}

	return a.serve(ctx)
}

// preload builds every manifest-declared component that is neither compiled
// in nor catalog-backed, so first paint does not pay the construction cost.
// Loads are independent, so they run concurrently.
func (a *App) preload(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, name := range a.registry.DefinitionNames() {
		def, ok := a.registry.Definition(name)
		if !ok || def.Source != nil {
			continue // catalog-backed components load lazily
		}
		if _, err := a.registry.Get(name); err == nil {
			continue // compiled in
		}

		g.Go(func() error {
			_, err := a.resolver.Resolve(gctx, name, nil)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	a.logger.Info("Component registry warmed.", "components", a.registry.Len())
	return nil
}

// serve runs the dashboard HTTP server until the context is cancelled, then
// shuts it down gracefully.
func (a *App) serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", a.config.ListenPort)
	server := &http.Server{
		Addr:    addr,
		Handler: a.routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Dashboard server starting", "address", fmt.Sprintf("http://localhost%s", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down dashboard server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if a.hub != nil {
		a.hub.Close()
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Dashboard server shutdown failed", "error", err)
		return err
	}
	a.logger.Debug("Dashboard server shut down gracefully.")
	return nil
}
