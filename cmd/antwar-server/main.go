package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/daniacca/antwar/internal/antwar"
)

func main() {
	serverCfg := loadServerConfig()
	logger := NewLogger(serverCfg.LogLevel)

	worldCfg := antwar.DefaultConfig()
	if serverCfg.ConfigFile != "" {
		loaded, err := loadWorldConfigFromFile(serverCfg.ConfigFile)
		if err != nil {
			logger.Fatalf("cannot load world config from %s: %v", serverCfg.ConfigFile, err)
		}
		worldCfg = loaded
		logger.Infof("World config loaded from %s", serverCfg.ConfigFile)
	}

	srv, err := NewServer(worldCfg, logger)
	if err != nil {
		logger.Fatalf("cannot create server: %v", err)
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:    serverCfg.Addr,
		Handler: srv.routes(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Infof("antwar-server listening on %s", serverCfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if serverCfg.TickIntervalMs > 0 {
		interval := time.Duration(serverCfg.TickIntervalMs) * time.Millisecond
		logger.Infof("Tick driver running every %s", interval)
		g.Go(func() error {
			err := srv.runTicker(ctx, interval)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatalf("server error: %v", err)
	}
	logger.Infof("antwar-server stopped")
}
