// Package session keeps the logged-in user's fields in the local store,
// under the same keys the web client used.
package session

import (
	"github.com/CM-market/cameroon-made-market-sub000/internal/api"
	"github.com/CM-market/cameroon-made-market-sub000/internal/localstore"
)

type Session struct {
	kv localstore.Store
}

func New(kv localstore.Store) *Session { return &Session{kv: kv} }

// SetCredentials stores the fields a successful login returns.
func (s *Session) SetCredentials(token, userID, role, name string) error {
	fields := map[string]string{
		localstore.KeyToken:    token,
		localstore.KeyUserID:   userID,
		localstore.KeyUserRole: role,
		localstore.KeyUserName: name,
	}
	for k, v := range fields {
		if err := s.kv.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}

// Clear drops the session fields. The cart key stays: switching accounts
// keeps the previous cart, matching the web client's behaviour.
func (s *Session) Clear() error {
	for _, k := range []string{
		localstore.KeyToken,
		localstore.KeyUserID,
		localstore.KeyUserRole,
		localstore.KeyUserName,
	} {
		if err := s.kv.Remove(k); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) Token() (string, error)    { return s.get(localstore.KeyToken) }
func (s *Session) UserID() (string, error)   { return s.get(localstore.KeyUserID) }
func (s *Session) UserRole() (string, error) { return s.get(localstore.KeyUserRole) }
func (s *Session) UserName() (string, error) { return s.get(localstore.KeyUserName) }

func (s *Session) Language() (string, error)     { return s.get(localstore.KeyLang) }
func (s *Session) SetLanguage(lang string) error { return s.kv.Set(localstore.KeyLang, lang) }

// TokenSource adapts the session for the API client. Store errors read as
// logged-out rather than failing the request.
func (s *Session) TokenSource() api.TokenSource {
	return func() string {
		t, _ := s.Token()
		return t
	}
}

func (s *Session) get(key string) (string, error) {
	v, _, err := s.kv.Get(key)
	return v, err
}
