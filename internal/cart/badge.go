package cart

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/CM-market/cameroon-made-market-sub000/internal/localstore"
)

// DefaultBadgeInterval matches the one-second poll the web navbar used.
const DefaultBadgeInterval = time.Second

// Badge keeps a displayed item count converged with the persisted cart.
// Three signals feed it: the store subscription for writes through this
// process's Store, a localstore watcher for writes from other processes,
// and an interval poll as the fallback for writes neither signal catches.
// The count converges within one interval in the worst case.
type Badge struct {
	store    *Store
	watcher  *localstore.Watcher
	interval time.Duration
	logger   *zap.Logger

	mu    sync.Mutex
	count int
}

// NewBadge wires a badge over the given store. watcher may be nil when the
// backend has no watchable path (the sqlite store); the interval poll then
// carries cross-process convergence alone.
func NewBadge(store *Store, watcher *localstore.Watcher, interval time.Duration, logger *zap.Logger) *Badge {
	if interval <= 0 {
		interval = DefaultBadgeInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Badge{store: store, watcher: watcher, interval: interval, logger: logger}
}

// Count is the last converged badge value.
func (b *Badge) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// Run converges the count until the context is cancelled.
func (b *Badge) Run(ctx context.Context) error {
	b.refresh()

	sub, cancel := b.store.Subscribe()
	defer cancel()

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	var changes <-chan struct{}
	if b.watcher != nil {
		changes = b.watcher.Changes()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case items, ok := <-sub:
			if !ok {
				sub = nil
				continue
			}
			b.set(Count(items))
		case _, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			b.refresh()
		case <-ticker.C:
			b.refresh()
		}
	}
}

func (b *Badge) refresh() {
	items, err := b.store.Load()
	if err != nil {
		var corrupt *CorruptError
		if errors.As(err, &corrupt) {
			// Keep the previous count rather than flashing zero over a
			// value some other writer may be about to repair.
			b.logger.Warn("corrupt cart while refreshing badge", zap.Error(err))
			return
		}
		b.logger.Warn("load cart for badge", zap.Error(err))
		return
	}
	b.set(Count(items))
}

func (b *Badge) set(n int) {
	b.mu.Lock()
	b.count = n
	b.mu.Unlock()
}
