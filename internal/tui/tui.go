// Package tui is the interactive Bubble Tea front end. Clicking a row
// removes it; the input box below the list adds new ones.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/app"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/ui"
	"github.com/idilsaglam/todolist/internal/view"
)

// listItem adapts a rendered row to bubbles/list.Item.
type listItem struct {
	row view.Row
}

func (i listItem) FilterValue() string { return i.row.Text }

// Custom delegate to control how rows render (single line, no spacing).
type itemDelegate struct {
	st styles
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	width := m.Width() - 6
	if width < 8 {
		width = 8
	}
	num := d.st.muted.Render(fmt.Sprintf("%2d.", it.row.Index+1))
	line := num + " " + ui.Truncate(it.row.Text, width)

	prefix := "  "
	if index == m.Index() {
		prefix = d.st.selected.Render("> ")
	}
	fmt.Fprint(w, prefix+line)
}

// listSink pushes each render pass into the list, replacing every item.
type listSink struct {
	l *list.Model
}

func (s listSink) Replace(rows []view.Row) {
	items := make([]list.Item, len(rows))
	for i, r := range rows {
		items[i] = listItem{row: r}
	}
	s.l.SetItems(items)
	if n := len(items); n > 0 && s.l.Index() >= n {
		s.l.Select(n - 1)
	}
}

type focus int

const (
	focusInput focus = iota
	focusList
)

// Model is the Bubble Tea model. The list pointer is shared with the
// renderer's sink so a render pass updates what View draws.
type Model struct {
	app   *app.App
	list  *list.Model
	input textinput.Model
	keys  keyMap
	st    styles
	focus focus

	status string // last rejected action, shown in the input box
}

// Options tune the interactive list.
type Options struct {
	Theme string
}

// New builds the model and loads the list through persist.
func New(persist *store.Adapter, style model.Style, logger *log.Logger, opt Options) Model {
	st := newStyles(opt.Theme)
	keys := defaultKeys()

	l := list.New(nil, itemDelegate{st: st}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.SetShowHelp(true)
	l.Styles.HelpStyle = st.help
	l.Styles.PaginationStyle = st.help
	l.Styles.NoItems = st.muted
	l.AdditionalShortHelpKeys = keys.bindings
	l.AdditionalFullHelpKeys = keys.bindings

	lp := &l
	a := app.New(persist, style, view.New(listSink{l: lp}), logger)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item..."
	ti.CharLimit = 200
	ti.Focus()

	return Model{app: a, list: lp, input: ti, keys: keys, st: st}
}

// Run starts the program and blocks until the user quits. Every change
// is already saved by the time it is drawn.
func Run(persist *store.Adapter, style model.Style, logger *log.Logger, opt Options) error {
	p := tea.NewProgram(New(persist, style, logger, opt), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// App exposes the controller, mainly for tests.
func (m Model) App() *app.App { return m.app }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if row, ok := m.rowAt(msg.Y); ok {
				m.activate(row)
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Focus):
			m.toggleFocus()
			return m, nil
		}

		if m.focus == focusInput {
			if key.Matches(msg, m.keys.Submit) {
				m.submit()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		if key.Matches(msg, m.keys.Remove) {
			if it, ok := m.list.SelectedItem().(listItem); ok {
				m.activate(it.row)
			}
			return m, nil
		}
		var cmd tea.Cmd
		*m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	*m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) submit() {
	if !m.app.Submit(m.input.Value()) {
		m.status = "Item cannot be empty"
		return
	}
	m.input.SetValue("")
	m.status = ""
}

func (m *Model) activate(row view.Row) {
	if !m.app.View().Activate(row) {
		m.status = "That row changed; try again"
		return
	}
	m.status = ""
}

func (m *Model) toggleFocus() {
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
		return
	}
	m.focus = focusInput
	m.input.Focus()
}

func (m *Model) resize(w, h int) {
	m.input.Width = w - 10
	listHeight := h - 2 - lipgloss.Height(m.headerView()) - lipgloss.Height(m.inputView())
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(w-4, listHeight)
}

// listTop is the screen line of the first visible row: the panel's top
// border, then the header.
func (m Model) listTop() int {
	return 1 + lipgloss.Height(m.headerView())
}

// rowAt maps a screen line to the row drawn there.
func (m Model) rowAt(y int) (view.Row, bool) {
	i := y - m.listTop()
	if i < 0 {
		return view.Row{}, false
	}
	items := m.list.VisibleItems()
	start, end := m.list.Paginator.GetSliceBounds(len(items))
	if start+i >= end {
		return view.Row{}, false
	}
	it, ok := items[start+i].(listItem)
	return it.row, ok
}

func (m Model) headerView() string {
	return fmt.Sprintf("%s   %s %d  %s",
		m.st.title.Render("Todos"),
		m.st.accent.Render("Total"), len(m.list.Items()),
		m.st.muted.Render(string(m.app.Style())),
	)
}

func (m Model) inputView() string {
	title := "Add new item"
	if m.status != "" {
		title += ": " + m.st.err.Render(m.status)
	}
	box := m.st.inputBox
	if m.focus == focusInput {
		box = m.st.focusBox
	}
	return box.Render(title + "\n" + m.input.View())
}

func (m Model) View() string {
	content := m.headerView() + "\n" + m.list.View() + "\n" + m.inputView()
	return m.st.panel.Render(content)
}
