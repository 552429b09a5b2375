package session_test

import (
	"path/filepath"
	"testing"

	"github.com/CM-market/cameroon-made-market-sub000/internal/cart"
	"github.com/CM-market/cameroon-made-market-sub000/internal/localstore"
	"github.com/CM-market/cameroon-made-market-sub000/internal/session"
)

func newSession(t *testing.T) (*session.Session, localstore.Store) {
	t.Helper()
	kv, err := localstore.NewFileStore(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return session.New(kv), kv
}

func TestSessionCredentials(t *testing.T) {
	t.Run("set then read back", func(t *testing.T) {
		s, _ := newSession(t)
		if err := s.SetCredentials("tok-1", "u-1", "seller", "Ama"); err != nil {
			t.Fatalf("set credentials: %v", err)
		}

		cases := []struct {
			name string
			get  func() (string, error)
			want string
		}{
			{"token", s.Token, "tok-1"},
			{"user id", s.UserID, "u-1"},
			{"role", s.UserRole, "seller"},
			{"name", s.UserName, "Ama"},
		}
		for _, tc := range cases {
			got, err := tc.get()
			if err != nil {
				t.Fatalf("%s: %v", tc.name, err)
			}
			if got != tc.want {
				t.Fatalf("%s = %q, want %q", tc.name, got, tc.want)
			}
		}
	})

	t.Run("clear drops every field", func(t *testing.T) {
		s, _ := newSession(t)
		if err := s.SetCredentials("tok-1", "u-1", "buyer", "Ama"); err != nil {
			t.Fatalf("set credentials: %v", err)
		}
		if err := s.Clear(); err != nil {
			t.Fatalf("clear: %v", err)
		}
		for _, get := range []func() (string, error){s.Token, s.UserID, s.UserRole, s.UserName} {
			got, err := get()
			if err != nil {
				t.Fatalf("read after clear: %v", err)
			}
			if got != "" {
				t.Fatalf("got %q after clear, want empty", got)
			}
		}
	})

	t.Run("clear leaves the cart alone", func(t *testing.T) {
		s, kv := newSession(t)
		cartStore := cart.NewStore(kv, nil)
		if _, err := cartStore.AddItem(cart.Product{ID: "p1", Name: "Basket", Price: 1500}, 2); err != nil {
			t.Fatalf("add item: %v", err)
		}
		if err := s.SetCredentials("tok-1", "u-1", "buyer", "Ama"); err != nil {
			t.Fatalf("set credentials: %v", err)
		}
		if err := s.Clear(); err != nil {
			t.Fatalf("clear: %v", err)
		}

		items, err := cartStore.Load()
		if err != nil {
			t.Fatalf("load cart: %v", err)
		}
		if len(items) != 1 || items[0].Quantity != 2 {
			t.Fatalf("cart changed by session clear: %+v", items)
		}
	})
}

func TestSessionLanguage(t *testing.T) {
	s, _ := newSession(t)

	got, err := s.Language()
	if err != nil {
		t.Fatalf("language: %v", err)
	}
	if got != "" {
		t.Fatalf("language before set = %q, want empty", got)
	}

	if err := s.SetLanguage("fr"); err != nil {
		t.Fatalf("set language: %v", err)
	}
	got, err = s.Language()
	if err != nil {
		t.Fatalf("language: %v", err)
	}
	if got != "fr" {
		t.Fatalf("language = %q, want fr", got)
	}
}

func TestSessionTokenSource(t *testing.T) {
	s, _ := newSession(t)
	src := s.TokenSource()

	if got := src(); got != "" {
		t.Fatalf("token source before login = %q, want empty", got)
	}
	if err := s.SetCredentials("tok-9", "u-9", "buyer", "Ama"); err != nil {
		t.Fatalf("set credentials: %v", err)
	}
	if got := src(); got != "tok-9" {
		t.Fatalf("token source = %q, want tok-9", got)
	}
}
