package app

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/view"
)

const key = "todo-list-test"

// countingKV records writes on top of an in-memory store.
type countingKV struct {
	*store.Memory
	sets int
}

func (c *countingKV) Set(k, v string) error {
	c.sets++
	return c.Memory.Set(k, v)
}

type failingKV struct{}

func (failingKV) Get(string) (string, bool, error) { return "", false, errors.New("disabled") }
func (failingKV) Set(string, string) error         { return errors.New("full") }
func (failingKV) Close() error                     { return nil }

type recordSink struct {
	passes [][]view.Row
}

func (s *recordSink) Replace(rows []view.Row) { s.passes = append(s.passes, rows) }

func (s *recordSink) last() []string {
	if len(s.passes) == 0 {
		return nil
	}
	rows := s.passes[len(s.passes)-1]
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Text
	}
	return out
}

type fixture struct {
	kv   *countingKV
	sink *recordSink
	app  *App
}

func newFixture(t *testing.T, style model.Style, stored string) *fixture {
	t.Helper()
	kv := &countingKV{Memory: store.NewMemory()}
	if stored != "" {
		require.NoError(t, kv.Memory.Set(key, stored))
	}
	sink := &recordSink{}
	a := New(store.NewAdapter(kv, key, nil), style, view.New(sink), nil)
	return &fixture{kv: kv, sink: sink, app: a}
}

func (f *fixture) stored(t *testing.T) string {
	t.Helper()
	v, ok, err := f.kv.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	return v
}

func TestNew_EmptyStorage(t *testing.T) {
	f := newFixture(t, model.Mutable, "")
	assert.Empty(t, f.app.Items())
	require.Len(t, f.sink.passes, 1)
	assert.Empty(t, f.sink.passes[0])
	assert.Zero(t, f.kv.sets, "startup must not write")
}

func TestNew_CorruptStorageStartsEmpty(t *testing.T) {
	var buf bytes.Buffer
	kv := store.NewMemory()
	require.NoError(t, kv.Set(key, "{oops"))
	logger := log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel})

	a := New(store.NewAdapter(kv, key, logger), model.Frozen, nil, logger)
	assert.Empty(t, a.Items())
	assert.Contains(t, buf.String(), "ignoring stored list")
}

func TestSubmit_AppendsPersistsRenders(t *testing.T) {
	for _, style := range []model.Style{model.Mutable, model.Frozen} {
		t.Run(string(style), func(t *testing.T) {
			f := newFixture(t, style, `["milk","eggs"]`)

			require.True(t, f.app.Submit("bread"))

			want := []string{"milk", "eggs", "bread"}
			assert.Equal(t, want, f.app.Items())
			assert.Equal(t, want, f.sink.last())
			assert.Equal(t, 1, f.kv.sets)
			assert.Equal(t, want, model.Create(f.stored(t), style).Items())
			assert.Equal(t, f.app.Serialized(), f.stored(t))
		})
	}
}

func TestSubmit_EmptyIsIgnored(t *testing.T) {
	f := newFixture(t, model.Mutable, `{"list":["milk"]}`)
	passes := len(f.sink.passes)

	assert.False(t, f.app.Submit(""))
	assert.Equal(t, []string{"milk"}, f.app.Items())
	assert.Zero(t, f.kv.sets)
	assert.Len(t, f.sink.passes, passes)
}

func TestRemove_ClickedRow(t *testing.T) {
	f := newFixture(t, model.Mutable, `["milk","eggs","bread"]`)
	r := f.app.View()

	eggs := r.Rows()[1]
	require.Equal(t, "eggs", eggs.Text)
	require.True(t, r.Activate(eggs))

	assert.Equal(t, []string{"milk", "bread"}, f.app.Items())
	assert.Equal(t, []string{"milk", "bread"}, f.sink.last())
	assert.Equal(t, `{"list":["milk","bread"]}`, f.stored(t))

	// The old row 1 is stale; the new row 1 is "bread".
	assert.False(t, r.Activate(eggs))
	assert.Equal(t, []string{"milk", "bread"}, f.app.Items())

	bread := r.Rows()[1]
	assert.Equal(t, "bread", bread.Text)
	require.True(t, r.Activate(bread))
	assert.Equal(t, []string{"milk"}, f.app.Items())
}

func TestRemove_OutOfRangeIsIgnored(t *testing.T) {
	f := newFixture(t, model.Frozen, `["milk"]`)
	passes := len(f.sink.passes)

	assert.False(t, f.app.Remove(1))
	assert.False(t, f.app.Remove(-1))
	assert.Equal(t, []string{"milk"}, f.app.Items())
	assert.Zero(t, f.kv.sets)
	assert.Len(t, f.sink.passes, passes)
}

func TestFailingStorage_DoesNotBreakFlow(t *testing.T) {
	sink := &recordSink{}
	a := New(store.NewAdapter(failingKV{}, key, nil), model.Mutable, view.New(sink), nil)

	assert.True(t, a.Submit("milk"))
	assert.True(t, a.Submit("eggs"))
	assert.True(t, a.Remove(0))
	assert.Equal(t, []string{"eggs"}, a.Items())
	assert.Equal(t, []string{"eggs"}, sink.last())
}

func TestReload_SeesPersistedState(t *testing.T) {
	kv := store.NewMemory()
	first := New(store.NewAdapter(kv, key, nil), model.Frozen, nil, nil)
	first.Submit("milk")
	first.Submit("eggs")

	second := New(store.NewAdapter(kv, key, nil), model.Frozen, nil, nil)
	assert.Equal(t, []string{"milk", "eggs"}, second.Items())
	assert.Equal(t, model.Frozen, second.Style())
}
