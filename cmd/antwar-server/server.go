package main

import (
	"context"
	"sync"
	"time"

	"github.com/daniacca/antwar/internal/antwar"
	"github.com/daniacca/antwar/internal/antwar/notifiers"
)

// antwarLoggerAdapter adapts the server's Logger to the antwar.Logger interface
type antwarLoggerAdapter struct {
	logger *Logger
}

func (a *antwarLoggerAdapter) Debugf(format string, v ...any) {
	a.logger.Debugf(format, v...)
}

func (a *antwarLoggerAdapter) Infof(format string, v ...any) {
	a.logger.Infof(format, v...)
}

func (a *antwarLoggerAdapter) Warnf(format string, v ...any) {
	a.logger.Warnf(format, v...)
}

func (a *antwarLoggerAdapter) Errorf(format string, v ...any) {
	a.logger.Errorf(format, v...)
}

// Server hosts a single world behind the HTTP API. The engine itself is
// strictly sequential; the mutex serializes ticks, resets and reads coming
// from concurrent requests and the tick driver.
type Server struct {
	mu          sync.Mutex
	world       *antwar.World
	stats       *antwar.StatsCollector
	broadcaster *notifiers.SnapshotBroadcaster
	logger      *Logger
}

// NewServer creates a server with a world built from the given config.
func NewServer(cfg antwar.Config, logger *Logger) (*Server, error) {
	s := &Server{
		broadcaster: notifiers.NewSnapshotBroadcaster(&antwarLoggerAdapter{logger: logger}),
		logger:      logger,
	}
	if err := s.ResetWorld(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// ResetWorld replaces the current world and statistics with a fresh run.
func (s *Server) ResetWorld(cfg antwar.Config) error {
	world, err := antwar.NewWorld(cfg)
	if err != nil {
		return err
	}
	world.SetLogger(&antwarLoggerAdapter{logger: s.logger})
	world.AddObserver(s.broadcaster)

	s.mu.Lock()
	s.world = world
	s.stats = antwar.NewStatsCollector()
	s.mu.Unlock()

	s.logger.Infof("World reset: grid=%d seed=%d asymmetric=%v", cfg.GridSize, cfg.Seed, cfg.Asymmetric)
	return nil
}

// StepN advances the world by n ticks and records their statistics.
func (s *Server) StepN(n int) antwar.TickStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	var last antwar.TickStats
	for i := 0; i < n; i++ {
		last = s.world.Step()
		s.stats.Record(last)
	}
	return last
}

// snapshot captures the current state outside any activation phase.
func (s *Server) snapshot() antwar.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.Snapshot("")
}

// statsRows returns the cumulative statistics recorded so far.
func (s *Server) statsRows() []antwar.TickStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.Cumulative()
}

// runTicker advances the world on a fixed interval until the context is
// cancelled. This is the continuous-run mode; with it disabled the world
// only moves on POST /tick.
func (s *Server) runTicker(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.StepN(1)
		}
	}
}

// Close releases the broadcaster and its client connections.
func (s *Server) Close() error {
	return s.broadcaster.Close()
}
