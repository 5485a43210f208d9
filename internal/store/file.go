package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cosplitz/cosplitz-client/internal/logger"
)

// inMemoryPath disables disk persistence while keeping full store semantics.
const inMemoryPath = ":memory:"

type fileStore struct {
	path     string
	inMemory bool

	mu      sync.RWMutex
	records map[string]json.RawMessage

	logger *logger.Logger
}

// NewFileStore opens a JSON-file-backed [SessionStore] at path. An empty path
// or ":memory:" keeps records in memory only. A missing file is treated as an
// empty store; a corrupt file is an error so that a damaged session record is
// surfaced at startup instead of being silently overwritten.
func NewFileStore(path string, log *logger.Logger) (SessionStore, error) {
	if path == "" {
		path = inMemoryPath
	}

	s := &fileStore{
		path:     path,
		inMemory: path == inMemoryPath,
		records:  make(map[string]json.RawMessage),
		logger:   log,
	}
	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *fileStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.records[key]
	if !ok {
		return nil, false
	}

	out := make([]byte, len(value))
	copy(out, value)

	return out, true
}

func (s *fileStore) Set(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = json.RawMessage(append([]byte(nil), value...))

	if err := s.persist(); err != nil {
		s.logger.Err(err).Str("key", key).Msg("failed to persist session record")
	}
}

func (s *fileStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[key]; !ok {
		return
	}
	delete(s.records, key)

	if err := s.persist(); err != nil {
		s.logger.Err(err).Str("key", key).Msg("failed to remove session record")
	}
}

func (s *fileStore) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read session store file: %w", err)
	}

	if len(data) == 0 {
		return nil
	}
	if err = json.Unmarshal(data, &s.records); err != nil {
		return fmt.Errorf("decode session store file: %w", err)
	}
	if s.records == nil {
		s.records = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *fileStore) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session store dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session store: %w", err)
	}

	// session records carry the bearer token, keep them owner-only
	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session store file: %w", err)
	}

	return nil
}
