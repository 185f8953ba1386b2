package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var styles = []Style{Mutable, Frozen}

func TestCreate_Encodings(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"array", `["milk","eggs"]`, []string{"milk", "eggs"}},
		{"object", `{"list":["milk","eggs"]}`, []string{"milk", "eggs"}},
		{"duplicates", `["milk","milk"]`, []string{"milk", "milk"}},
		{"empty array", `[]`, []string{}},
		{"empty object list", `{"list":[]}`, []string{}},
		{"unicode", `["café","日本"]`, []string{"café", "日本"}},
		{"absent", ``, []string{}},
		{"not json", `milk`, []string{}},
		{"null", `null`, []string{}},
		{"number", `42`, []string{}},
		{"object without list", `{"items":["milk"]}`, []string{}},
		{"mixed entries", `["milk",1]`, []string{}},
		{"list not array", `{"list":"milk"}`, []string{}},
	}
	for _, style := range styles {
		for _, tt := range tests {
			t.Run(string(style)+"/"+tt.name, func(t *testing.T) {
				l := Create(tt.raw, style)
				require.NotNil(t, l)
				assert.Equal(t, tt.want, l.Items())
				assert.Equal(t, len(tt.want), l.Len())
			})
		}
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, raw := range []string{"", "{", `"milk"`, `[1,2]`, `{"list":[true]}`} {
		_, err := Decode(raw)
		assert.ErrorIs(t, err, ErrMalformed, "raw=%q", raw)
	}
}

func TestSerialize_Format(t *testing.T) {
	items := []string{"milk", "eggs"}
	assert.Equal(t, `{"list":["milk","eggs"]}`, FromItems(items, Mutable).Serialize())
	assert.Equal(t, `["milk","eggs"]`, FromItems(items, Frozen).Serialize())

	assert.Equal(t, `{"list":[]}`, FromItems(nil, Mutable).Serialize())
	assert.Equal(t, `[]`, FromItems(nil, Frozen).Serialize())
}

func TestSerialize_RoundTrip(t *testing.T) {
	inputs := []string{
		`["milk","eggs","bread"]`,
		`{"list":["a \"quoted\" item","<tag> & more"]}`,
		`garbage`,
		`[]`,
	}
	for _, style := range styles {
		for _, raw := range inputs {
			first := Create(raw, style)
			again := Create(first.Serialize(), style)
			assert.Equal(t, first.Items(), again.Items(), "style=%s raw=%q", style, raw)
		}
	}
}

func TestSerialize_CrossStyle(t *testing.T) {
	items := []string{"milk", "eggs"}
	assert.Equal(t, items, Create(FromItems(items, Mutable).Serialize(), Frozen).Items())
	assert.Equal(t, items, Create(FromItems(items, Frozen).Serialize(), Mutable).Items())
}

func TestAdd_AppendsToEnd(t *testing.T) {
	for _, style := range styles {
		t.Run(string(style), func(t *testing.T) {
			l := FromItems([]string{"milk", "eggs"}, style)
			l = l.Add("bread")
			assert.Equal(t, []string{"milk", "eggs", "bread"}, l.Items())

			l = l.Add("")
			assert.Equal(t, 4, l.Len(), "the list itself does not validate")
		})
	}
}

func TestAddThenRemoveLast_RestoresList(t *testing.T) {
	lists := [][]string{{}, {"milk"}, {"milk", "eggs", "milk"}}
	for _, style := range styles {
		for _, items := range lists {
			l := FromItems(items, style).Add("x")
			l = l.Remove(l.Len() - 1)
			assert.Equal(t, items, l.Items())
		}
	}
}

func TestRemove_EachIndex(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	for _, style := range styles {
		for i := range items {
			l := FromItems(items, style).Remove(i)
			want := make([]string, 0, len(items)-1)
			want = append(want, items[:i]...)
			want = append(want, items[i+1:]...)
			assert.Equal(t, want, l.Items(), "style=%s i=%d", style, i)
		}
	}
}

func TestRemove_OutOfRangeIsNoop(t *testing.T) {
	for _, style := range styles {
		t.Run(string(style), func(t *testing.T) {
			items := []string{"milk", "eggs"}
			for _, i := range []int{-1, 2, 100} {
				l := FromItems(items, style).Remove(i)
				assert.Equal(t, items, l.Items(), "index %d", i)
			}
			assert.Empty(t, FromItems(nil, style).Remove(0).Items())
		})
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	for _, style := range styles {
		l := FromItems([]string{"milk"}, style)
		got := l.Items()
		got[0] = "changed"
		assert.Equal(t, []string{"milk"}, l.Items())
	}
}

func TestFromItems_CopiesInput(t *testing.T) {
	for _, style := range styles {
		src := []string{"milk"}
		l := FromItems(src, style)
		src[0] = "changed"
		assert.Equal(t, []string{"milk"}, l.Items())
	}
}

func TestSnapshot_IsCopyOnWrite(t *testing.T) {
	base := FromItems([]string{"milk", "eggs"}, Frozen)
	added := base.Add("bread")
	removed := base.Remove(0)

	assert.Equal(t, []string{"milk", "eggs"}, base.Items())
	assert.Equal(t, []string{"milk", "eggs", "bread"}, added.Items())
	assert.Equal(t, []string{"eggs"}, removed.Items())
}

func TestStore_MutatesInPlace(t *testing.T) {
	s := FromItems([]string{"milk"}, Mutable)
	next := s.Add("eggs")
	assert.Same(t, s, next)
	assert.Equal(t, []string{"milk", "eggs"}, s.Items())
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"", Mutable, false},
		{"mutable", Mutable, false},
		{"Frozen", Frozen, false},
		{"functional", Frozen, false},
		{"object-oriented", Mutable, false},
		{"weird", "", true},
	}
	for _, tt := range tests {
		got, err := ParseStyle(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
