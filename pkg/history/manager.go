package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
)

// DefaultLockTTL bounds how long a crashed holder can keep a distributed lock.
const DefaultLockTTL = 30 * time.Second

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager orchestrates access to run records.
// It uses reference counting to garbage collect unused locks.
type Manager struct {
	store ports.ResultStore

	mu    sync.Mutex
	locks map[string]*lockEntry

	locker  ports.DistributedLocker // Optional
	lockTTL time.Duration
	logger  *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLockTTL overrides DefaultLockTTL.
func WithLockTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.lockTTL = ttl
		}
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates a new Manager over store.
func NewManager(store ports.ResultStore, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		locks:   make(map[string]*lockEntry),
		lockTTL: DefaultLockTTL,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(id) after unlocking.
func (m *Manager) acquire(id string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[id]
	if !exists {
		entry = &lockEntry{}
		m.locks[id] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[id]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, id)
	}
}

// WithLock executes fn while holding the lock for the run.
func (m *Manager) WithLock(ctx context.Context, id string, fn func(context.Context) error) error {
	entry := m.acquire(id)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(id)
	}()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, id, m.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"run_id", id,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}

// Load retrieves a run record.
func (m *Manager) Load(ctx context.Context, id string) (*domain.RunRecord, error) {
	var record *domain.RunRecord
	err := m.WithLock(ctx, id, func(ctx context.Context) error {
		var err error
		record, err = m.store.Load(ctx, id)
		return err
	})
	return record, err
}

// Save persists a run record.
func (m *Manager) Save(ctx context.Context, record *domain.RunRecord) error {
	return m.WithLock(ctx, record.ID, func(ctx context.Context) error {
		return m.store.Save(ctx, record)
	})
}

// Delete removes a run record.
func (m *Manager) Delete(ctx context.Context, id string) error {
	return m.WithLock(ctx, id, func(ctx context.Context) error {
		return m.store.Delete(ctx, id)
	})
}

// LoadOrRun returns the stored record for id, or calls run and stores what it
// returns under id. The bool reports whether run was called.
func (m *Manager) LoadOrRun(ctx context.Context, id string, run func(context.Context) (*domain.RunRecord, error)) (*domain.RunRecord, bool, error) {
	var (
		record *domain.RunRecord
		ran    bool
	)
	err := m.WithLock(ctx, id, func(ctx context.Context) error {
		var err error
		record, err = m.store.Load(ctx, id)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrRunNotFound) {
			return fmt.Errorf("failed to check run existence: %w", err)
		}

		record, err = run(ctx)
		if err != nil {
			return err
		}
		ran = true
		record.ID = id
		if err := m.store.Save(ctx, record); err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return record, ran, nil
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Recent loads up to limit records, newest first. A limit of zero or less
// loads them all. Records that vanish between List and Load are skipped.
func (m *Manager) Recent(ctx context.Context, limit int) ([]*domain.RunRecord, error) {
	ids, err := m.store.List(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]*domain.RunRecord, 0, len(ids))
	for _, id := range ids {
		r, err := m.store.Load(ctx, id)
		if errors.Is(err, domain.ErrRunNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	slices.SortFunc(records, func(a, b *domain.RunRecord) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Store returns the underlying store.
func (m *Manager) Store() ports.ResultStore {
	return m.store
}
