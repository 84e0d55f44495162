package kvstore

import (
	"context"
	"time"

	"cashless/config"
	"cashless/internal/domain/repository"
	"cashless/internal/errors"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "cashless:"

type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedis constructs a redis-backed store shared by every node.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (repository.KeyValueStore, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis address required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrap(err, "redis ping failed")
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultRedisPrefix
	}

	return &redisStore{client: client, prefix: prefix}, nil
}

func (s *redisStore) key(k string) string {
	return s.prefix + k
}

func (s *redisStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	// go-redis treats 0 as "keep forever".
	if ttl <= 0 {
		return repository.ErrInvalidTTL
	}

	if err := s.client.Set(ctx, s.key(key), value, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}

	return nil
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()

	return s.result(raw, err, "redis get")
}

func (s *redisStore) GetAndDelete(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.GetDel(ctx, s.key(key)).Bytes()

	return s.result(raw, err, "redis getdel")
}

func (s *redisStore) result(raw []byte, err error, op string) ([]byte, error) {
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrap(err, op)
	}

	return raw, nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return errors.Wrap(err, "redis del")
	}

	return nil
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
