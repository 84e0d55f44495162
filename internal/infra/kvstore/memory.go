package kvstore

import (
	"context"
	"sync"
	"time"

	"cashless/internal/domain/repository"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

type memoryStore struct {
	items    map[string]memoryEntry
	mutex    sync.Mutex
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemory builds a single-node store. Expiry is checked on every read; the
// background loop only reclaims memory.
func NewMemory(gcInterval time.Duration) repository.KeyValueStore {
	return newMemory(gcInterval, time.Now)
}

func newMemory(gcInterval time.Duration, now func() time.Time) *memoryStore {
	if gcInterval <= 0 {
		gcInterval = time.Minute
	}
	s := &memoryStore{
		items: make(map[string]memoryEntry),
		now:   now,
		stop:  make(chan struct{}),
	}
	go s.gcLoop(gcInterval)

	return s
}

func (s *memoryStore) gcLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.cleanupExpired()
		case <-s.stop:
			return
		}
	}
}

func (s *memoryStore) cleanupExpired() int {
	now := s.now()
	s.mutex.Lock()
	defer s.mutex.Unlock()

	removed := 0
	for key, entry := range s.items {
		if entry.expired(now) {
			delete(s.items, key)
			removed++
		}
	}

	return removed
}

func (e memoryEntry) expired(now time.Time) bool {
	return !now.Before(e.expiresAt)
}

func (s *memoryStore) Put(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return repository.ErrInvalidTTL
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	s.mutex.Lock()
	s.items[key] = memoryEntry{value: stored, expiresAt: s.now().Add(ttl)}
	s.mutex.Unlock()

	return nil
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.lookup(key)
}

func (s *memoryStore) GetAndDelete(_ context.Context, key string) ([]byte, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	value, err := s.lookup(key)
	delete(s.items, key)

	return value, err
}

// lookup must be called with the mutex held.
func (s *memoryStore) lookup(key string) ([]byte, error) {
	entry, ok := s.items[key]
	if !ok {
		return nil, repository.ErrKeyNotFound
	}
	if entry.expired(s.now()) {
		delete(s.items, key)

		return nil, repository.ErrKeyNotFound
	}

	out := make([]byte, len(entry.value))
	copy(out, entry.value)

	return out, nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mutex.Lock()
	delete(s.items, key)
	s.mutex.Unlock()

	return nil
}

func (s *memoryStore) Close() error {
	s.stopOnce.Do(func() { close(s.stop) })

	return nil
}
