package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps every key in a single JSON document on disk. Each write
// rewrites the whole document through a temp file + rename, so readers in
// other processes never observe a partial write. There is no cross-process
// locking; two writers race last-write-wins.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Path is the on-disk location of the document, for change watching.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kv, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := kv[key]
	return v, ok, nil
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kv, err := s.read()
	if err != nil {
		return err
	}
	kv[key] = value
	return s.write(kv)
}

func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kv, err := s.read()
	if err != nil {
		return err
	}
	delete(kv, key)
	return s.write(kv)
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}
	kv := map[string]string{}
	if err := json.Unmarshal(data, &kv); err != nil {
		// An unreadable document reads as empty. Per-value corruption is
		// handled by the callers that own the value (see cart.Store.Load).
		return map[string]string{}, nil
	}
	return kv, nil
}

func (s *FileStore) write(kv map[string]string) error {
	data, err := json.MarshalIndent(kv, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}
