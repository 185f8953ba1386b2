// Package store persists the to-do list under one fixed key in a local
// key-value backend.
package store

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/store/jsonstore"
	"github.com/idilsaglam/todolist/internal/store/sqlitestore"
)

// KV is durable local key-value storage.
type KV interface {
	// Get reports ok=false when key was never set.
	Get(key string) (value string, ok bool, err error)
	// Set overwrites any prior value.
	Set(key, value string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open returns the backend named by backend, stored at path.
func Open(backend, path string) (KV, error) {
	switch strings.ToLower(backend) {
	case BackendJSON, "":
		s, err := jsonstore.Open(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendSQLite:
		s, err := sqlitestore.Open(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown backend %q (want json|sqlite|memory)", backend)
}

// Adapter binds a KV to the list's key. Backend failures are logged and
// never reach the caller.
type Adapter struct {
	kv  KV
	key string
	log *log.Logger
}

// NewAdapter returns an Adapter for key. A nil logger discards.
func NewAdapter(kv KV, key string, logger *log.Logger) *Adapter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Adapter{kv: kv, key: key, log: logger}
}

// Key is the slot this adapter reads and writes.
func (a *Adapter) Key() string { return a.key }

// Load returns the stored value. A read failure is treated as absent.
func (a *Adapter) Load() (string, bool) {
	v, ok, err := a.kv.Get(a.key)
	if err != nil {
		a.log.Error("load failed; starting empty", "key", a.key, "err", err)
		return "", false
	}
	return v, ok
}

// Save overwrites the stored value. A write failure is logged and dropped.
func (a *Adapter) Save(value string) {
	if err := a.kv.Set(a.key, value); err != nil {
		a.log.Error("save failed", "key", a.key, "err", err)
		return
	}
	a.log.Debug("saved", "key", a.key, "bytes", len(value))
}
