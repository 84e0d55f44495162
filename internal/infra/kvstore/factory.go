// Package kvstore provides the TTL-bound key-value stores behind NFC
// challenges and one-time sessions.
package kvstore

import (
	"context"
	"log/slog"
	"strings"

	"cashless/config"
	"cashless/internal/domain/lifecycle"
	"cashless/internal/domain/repository"
	"cashless/internal/errors"

	"go.uber.org/fx"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New selects the driver from configuration and ties its lifetime to the application.
func New(params Params) (repository.KeyValueStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	store, err := Open(ctx, params.Config.KV)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Key-value store ready", slog.String("driver", params.Config.KV.Driver))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Open builds the store for cfg without lifecycle wiring.
func Open(ctx context.Context, cfg *config.KVConfig) (repository.KeyValueStore, error) {
	if cfg == nil {
		cfg = &config.KVConfig{}
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverMemory:
		return NewMemory(cfg.GCInterval), nil
	case DriverRedis:
		return NewRedis(ctx, cfg.Redis)
	default:
		return nil, errors.Errorf("unsupported kv driver %q", cfg.Driver)
	}
}
