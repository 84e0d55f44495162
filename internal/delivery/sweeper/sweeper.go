// Package sweeper purges expired durable sessions in the background.
package sweeper

import (
	"context"
	"log/slog"
	"time"

	"cashless/config"
	"cashless/internal/delivery"
	"cashless/internal/usecase"

	"go.uber.org/fx"
)

type sessionSweeper struct {
	sessions usecase.SessionUsecase
	interval time.Duration
	logger   *slog.Logger
	done     chan struct{}
}

// Params holds dependencies for the sweeper, injected by Fx.
type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Sessions usecase.SessionUsecase
	Logger   *slog.Logger
}

// New returns a delivery that calls CleanupExpired every auth.cleanupInterval until the app stops.
func New(params Params) delivery.Delivery {
	s := newSessionSweeper(params.Sessions, params.Cfg.Auth.CleanupInterval, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			close(s.done)

			return nil
		},
	})

	return s
}

func newSessionSweeper(sessions usecase.SessionUsecase, interval time.Duration, logger *slog.Logger) *sessionSweeper {
	return &sessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Serve blocks until the sweeper is stopped or ctx is cancelled.
func (s *sessionSweeper) Serve(ctx context.Context) error {
	s.logger.Info("Starting session sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.done:
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	removed, err := s.sessions.CleanupExpired(ctx)
	if err != nil {
		s.logger.Warn("Failed to purge expired sessions", slog.Any("error", err))

		return
	}
	if removed > 0 {
		s.logger.Info("Purged expired sessions", slog.Int64("count", removed))
	}
}
