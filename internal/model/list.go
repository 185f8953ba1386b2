package model

import (
	"fmt"
	"strings"
)

// List is the domain model for a to-do list: an ordered sequence of
// text entries. Duplicates are allowed and indices stay contiguous.
//
// Add and Remove return the list to keep using. The mutable strategy
// returns its receiver; the frozen strategy returns a new value and
// leaves the receiver untouched.
type List interface {
	Add(item string) List
	// Remove drops the entry at index and shifts the rest left.
	// An out-of-range index leaves the list unchanged.
	Remove(index int) List
	// Items returns a copy of the entries.
	Items() []string
	Len() int
	// Serialize returns the persisted encoding.
	Serialize() string
}

// Style selects how a List stores its state.
type Style string

const (
	// Mutable mutates in place behind encapsulation and persists as
	// {"list": [...]}.
	Mutable Style = "mutable"
	// Frozen is copy-on-write and persists as a bare JSON array.
	Frozen Style = "frozen"
)

// ParseStyle maps a config value to a Style. Empty means Mutable.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Mutable), "oo", "object-oriented":
		return Mutable, nil
	case string(Frozen), "functional":
		return Frozen, nil
	}
	return "", fmt.Errorf("unknown style %q (want mutable|frozen)", s)
}

// Create builds a list from a persisted value. Anything that does not
// decode yields an empty list.
func Create(raw string, style Style) List {
	items, err := Decode(raw)
	if err != nil {
		items = nil
	}
	return FromItems(items, style)
}

// FromItems builds a list from already decoded entries. The slice is copied.
func FromItems(items []string, style Style) List {
	if style == Frozen {
		return newSnapshot(items)
	}
	return newStore(items)
}

func clone(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	return out
}

func inRange(index, n int) bool { return index >= 0 && index < n }
