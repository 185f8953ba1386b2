// Package view mirrors a list into rows and routes row activation back
// to whoever owns the list.
package view

// Row is one rendered entry. A Row is only valid for the render pass
// that produced it.
type Row struct {
	Index int
	Text  string
	gen   uint64
}

// Generation reports which render pass produced the row.
func (r Row) Generation() uint64 { return r.gen }

// Sink displays rows. Replace receives the complete set on every pass
// and must drop whatever it showed before.
type Sink interface {
	Replace(rows []Row)
}

// Renderer rebuilds rows from scratch on every Render. Activation goes
// to a single subscriber and rows from an earlier pass never reach it.
type Renderer struct {
	sink       Sink
	rows       []Row
	gen        uint64
	onActivate func(index int)
}

// New returns a Renderer writing to sink. A nil sink only keeps rows.
func New(sink Sink) *Renderer {
	return &Renderer{sink: sink}
}

// OnActivate sets the subscriber, replacing any previous one.
func (r *Renderer) OnActivate(fn func(index int)) {
	r.onActivate = fn
}

// Render replaces all rows with one per entry, in order.
func (r *Renderer) Render(items []string) {
	r.gen++
	rows := make([]Row, len(items))
	for i, it := range items {
		rows[i] = Row{Index: i, Text: it, gen: r.gen}
	}
	r.rows = rows
	if r.sink != nil {
		r.sink.Replace(r.Rows())
	}
}

// Rows returns a copy of the current rows.
func (r *Renderer) Rows() []Row {
	out := make([]Row, len(r.rows))
	copy(out, r.rows)
	return out
}

// Generation is the number of completed render passes.
func (r *Renderer) Generation() uint64 { return r.gen }

// Activate fires the subscriber for row. It reports false when the row
// is stale or nobody is subscribed.
func (r *Renderer) Activate(row Row) bool {
	if row.gen != r.gen || r.onActivate == nil {
		return false
	}
	if row.Index < 0 || row.Index >= len(r.rows) {
		return false
	}
	r.onActivate(row.Index)
	return true
}

// ActivateAt activates current row i.
func (r *Renderer) ActivateAt(i int) bool {
	if i < 0 || i >= len(r.rows) {
		return false
	}
	return r.Activate(r.rows[i])
}
