package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// DefaultFile is the per-project config location, relative to the project root.
const DefaultFile = ".projgen/config.json"

// IgnoreKey holds extra paths the CLI registers for the ignore file on every run.
const IgnoreKey = "gitignore.ignore"

// Store is the generator's key/value configuration.
type Store struct {
	mu     sync.RWMutex
	values map[string]any
}

func NewStore() *Store {
	return &Store{values: make(map[string]any)}
}

// Load reads a JSON store from path. A missing file yields an empty store.
func Load(path string) (*Store, error) {
	s := NewStore()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if s.values == nil {
		s.values = make(map[string]any)
	}
	return s, nil
}

// Save writes the store as indented JSON, creating parent directories.
func (s *Store) Save(path string) error {
	data, err := json.MarshalIndent(s.All(), "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "creating config directory for %s", path)
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "writing config %s", path)
}

// Defaults sets every key in defaults that is not set yet.
func (s *Store) Defaults(defaults map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range defaults {
		if _, ok := s.values[k]; !ok {
			s.values[k] = v
		}
	}
}

func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok
}

func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
}

// Strings returns key as a string list. Values decoded from JSON arrive as
// []any; non-string elements are skipped.
func (s *Store) Strings(key string) []string {
	v, ok := s.Get(key)
	if !ok {
		return nil
	}

	switch list := v.(type) {
	case []string:
		return append([]string{}, list...)
	case []any:
		return lo.FilterMap(list, func(item any, _ int) (string, bool) {
			str, ok := item.(string)
			return str, ok
		})
	case string:
		return []string{list}
	}
	return nil
}

func (s *Store) All() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Assign(s.values)
}
