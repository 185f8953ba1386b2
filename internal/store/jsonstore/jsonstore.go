package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// JSON-backed key-value storage. One human-readable file holding an
// object of key -> value, read on every Get and rewritten on every Set.
// No locking; one process owns the file.

// DefaultFileName is used when Open gets an empty path.
const DefaultFileName = "todos.json"

// ErrCorrupt is returned by Get when the file is not a JSON object.
var ErrCorrupt = errors.New("jsonstore: file is not a JSON object")

type Store struct {
	path string
}

// Open returns a Store for path. The file is created on first Set.
func Open(path string) (*Store, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		path = filepath.Join(wd, DefaultFileName)
	}
	return &Store{path: path}, nil
}

// Path is the backing file.
func (s *Store) Path() string { return s.path }

// Get returns the value stored under key. A slot holding anything other
// than a JSON string (hand-edited files) comes back as its raw JSON text,
// so the caller's decoder decides whether it is usable.
func (s *Store) Get(key string) (string, bool, error) {
	data, err := s.load()
	if err != nil {
		return "", false, err
	}
	raw, ok := data[key]
	if !ok {
		return "", false, nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw), true, nil
	}
	return v, true, nil
}

// Set overwrites key and keeps every other slot. A file that is not a
// JSON object at all is replaced.
func (s *Store) Set(key, value string) error {
	data, err := s.load()
	if errors.Is(err, ErrCorrupt) {
		data = map[string]json.RawMessage{}
	} else if err != nil {
		return err
	}
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	data[key] = b
	return s.save(data)
}

func (s *Store) Close() error { return nil }

func (s *Store) load() (map[string]json.RawMessage, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	data := map[string]json.RawMessage{}
	if len(b) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if data == nil {
		// the file held a literal null
		data = map[string]json.RawMessage{}
	}
	return data, nil
}

func (s *Store) save(data map[string]json.RawMessage) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
