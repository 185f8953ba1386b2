package model

import (
	"encoding/json"
	"slices"
)

// Snapshot is the frozen List. Every change returns a new Snapshot and
// the receiver keeps its entries.
type Snapshot struct {
	items []string
}

func newSnapshot(items []string) Snapshot {
	return Snapshot{items: clone(items)}
}

func (s Snapshot) Add(item string) List {
	next := make([]string, len(s.items), len(s.items)+1)
	copy(next, s.items)
	return Snapshot{items: append(next, item)}
}

func (s Snapshot) Remove(index int) List {
	if !inRange(index, len(s.items)) {
		return s
	}
	return Snapshot{items: slices.Delete(clone(s.items), index, index+1)}
}

func (s Snapshot) Items() []string { return clone(s.items) }

func (s Snapshot) Len() int { return len(s.items) }

// Serialize encodes the entries as a bare JSON array.
func (s Snapshot) Serialize() string {
	b, err := json.Marshal(s.Items())
	if err != nil {
		return "[]"
	}
	return string(b)
}
