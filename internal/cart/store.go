// Package cart holds the locally persisted shopping cart: the line-item
// model, the mutators that rewrite the persisted snapshot on every call,
// and the subscription surface views use to stay in sync.
package cart

import (
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/CM-market/cameroon-made-market-sub000/internal/localstore"
)

// CorruptError reports that the persisted cart value could not be decoded.
// Load still returns a usable empty cart alongside it; callers that want
// the old silent-recovery behaviour can simply ignore the error.
type CorruptError struct {
	Reason error
}

func (e *CorruptError) Error() string { return "cart: corrupt persisted cart: " + e.Reason.Error() }

func (e *CorruptError) Unwrap() error { return e.Reason }

// Store is the single source of truth for cart contents. Every mutator
// persists the full snapshot immediately; there is no batching. Mutations
// fan out to subscribers after the persisted write succeeds.
type Store struct {
	kv     localstore.Store
	logger *zap.Logger

	mu      sync.Mutex
	subs    map[int]chan []LineItem
	nextSub int
}

func NewStore(kv localstore.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: kv, logger: logger, subs: map[int]chan []LineItem{}}
}

// Load returns the persisted line items. A missing value is an empty cart.
// A corrupt value is also an empty cart, reported through *CorruptError so
// the caller can decide whether to log, reset or ignore.
func (s *Store) Load() ([]LineItem, error) {
	raw, ok, err := s.kv.Get(localstore.KeyCartItems)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []LineItem{}, nil
	}
	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []LineItem{}, &CorruptError{Reason: err}
	}
	if items == nil {
		items = []LineItem{}
	}
	return items, nil
}

// Save overwrites the persisted cart with the given snapshot and notifies
// subscribers. Serialisation is deterministic, so re-saving a freshly
// loaded cart reproduces the stored bytes.
func (s *Store) Save(items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := s.kv.Set(localstore.KeyCartItems, string(data)); err != nil {
		return err
	}
	s.notify(items)
	return nil
}

// AddItem merges into an existing line for the same product or appends a
// new line snapshotting the product fields. Quantities below 1 count as 1.
func (s *Store) AddItem(p Product, qty int) ([]LineItem, error) {
	if qty < 1 {
		qty = 1
	}
	items, err := s.loadForMutate()
	if err != nil {
		return nil, err
	}
	merged := false
	for i := range items {
		if items[i].ProductID == p.ID {
			items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, LineItem{
			ProductID:    p.ID,
			Name:         p.Name,
			UnitPrice:    p.Price,
			Quantity:     qty,
			Category:     p.Category,
			ImageRef:     p.ImageRef,
			ReturnPolicy: p.ReturnPolicy,
		})
	}
	if err := s.Save(items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateQuantity sets the quantity of the matching line. A quantity of zero
// or less removes the line. An absent product id leaves the cart unchanged
// but still persists the snapshot.
func (s *Store) UpdateQuantity(productID string, qty int) ([]LineItem, error) {
	if qty <= 0 {
		return s.RemoveItem(productID)
	}
	items, err := s.loadForMutate()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = qty
			break
		}
	}
	if err := s.Save(items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveItem drops the matching line.
func (s *Store) RemoveItem(productID string) ([]LineItem, error) {
	items, err := s.loadForMutate()
	if err != nil {
		return nil, err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	if err := s.Save(kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Clear replaces the persisted cart with an empty one. This is the only
// operation that empties the cart; checkout does not.
func (s *Store) Clear() error {
	return s.Save([]LineItem{})
}

// Subscribe returns a channel receiving the full snapshot after every
// successful mutation through this Store. A slow subscriber only ever sees
// the latest snapshot. The cancel func must be called when done.
func (s *Store) Subscribe() (<-chan []LineItem, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan []LineItem, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

func (s *Store) notify(items []LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- items:
		default:
			// Drop the stale snapshot and keep only the latest.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- items:
			default:
			}
		}
	}
}

func (s *Store) loadForMutate() ([]LineItem, error) {
	items, err := s.Load()
	var corrupt *CorruptError
	if errors.As(err, &corrupt) {
		s.logger.Warn("resetting corrupt cart", zap.Error(corrupt.Reason))
		return []LineItem{}, nil
	}
	return items, err
}
