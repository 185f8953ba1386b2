package model

import "encoding/json"

// state is the persisted record of the mutable strategy.
type state struct {
	List []string `json:"list"`
}

// Store is the mutable List. It changes in place and never hands out
// its backing slice.
type Store struct {
	state state
}

func newStore(items []string) *Store {
	return &Store{state: state{List: clone(items)}}
}

func (s *Store) Add(item string) List {
	s.state.List = append(s.state.List, item)
	return s
}

func (s *Store) Remove(index int) List {
	if !inRange(index, len(s.state.List)) {
		return s
	}
	s.state.List = append(s.state.List[:index], s.state.List[index+1:]...)
	return s
}

func (s *Store) Items() []string { return clone(s.state.List) }

func (s *Store) Len() int { return len(s.state.List) }

// Serialize encodes the whole state object, e.g. {"list":["milk"]}.
func (s *Store) Serialize() string {
	st := state{List: s.state.List}
	if st.List == nil {
		st.List = []string{}
	}
	b, err := json.Marshal(st)
	if err != nil {
		return `{"list":[]}`
	}
	return string(b)
}
