package cart_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/CM-market/cameroon-made-market-sub000/internal/cart"
	"github.com/CM-market/cameroon-made-market-sub000/internal/localstore"
)

func waitForCount(t *testing.T, b *cart.Badge, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if b.Count() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("badge never reached %d, last value %d", want, b.Count())
}

func TestBadge(t *testing.T) {
	t.Run("follows mutations through the store", func(t *testing.T) {
		s, _ := newStore(t)
		b := cart.NewBadge(s, nil, 10*time.Millisecond, nil)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = b.Run(ctx) }()

		if _, err := s.AddItem(cart.Product{ID: "p1"}, 3); err != nil {
			t.Fatalf("add: %v", err)
		}
		waitForCount(t, b, 3)

		if _, err := s.RemoveItem("p1"); err != nil {
			t.Fatalf("remove: %v", err)
		}
		waitForCount(t, b, 0)
	})

	t.Run("converges on writes from another store instance", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.json")
		kv1, err := localstore.NewFileStore(path)
		if err != nil {
			t.Fatalf("new store: %v", err)
		}
		kv2, err := localstore.NewFileStore(path)
		if err != nil {
			t.Fatalf("second store: %v", err)
		}

		watched := cart.NewStore(kv1, nil)
		other := cart.NewStore(kv2, nil)

		b := cart.NewBadge(watched, nil, 10*time.Millisecond, nil)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = b.Run(ctx) }()

		// The other instance's subscription never reaches this badge; only
		// the interval poll can catch the write.
		if _, err := other.AddItem(cart.Product{ID: "p1"}, 2); err != nil {
			t.Fatalf("add: %v", err)
		}
		waitForCount(t, b, 2)
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		s, _ := newStore(t)
		b := cart.NewBadge(s, nil, 10*time.Millisecond, nil)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- b.Run(ctx) }()
		cancel()

		select {
		case err := <-done:
			if err != context.Canceled {
				t.Fatalf("expected context.Canceled, got %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("badge did not stop")
		}
	})
}
