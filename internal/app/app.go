// Package app is the controller: it owns the current list and keeps
// storage and the rendered rows in step with it.
package app

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/view"
)

// App holds the application state. Every accepted change is saved and
// then rendered, in that order.
type App struct {
	list    model.List
	style   model.Style
	persist *store.Adapter
	view    *view.Renderer
	log     *log.Logger
}

// New loads the persisted list, subscribes to row activation and draws
// the initial rows. Malformed state starts an empty list; nothing is
// written until the first change.
func New(persist *store.Adapter, style model.Style, r *view.Renderer, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if r == nil {
		r = view.New(nil)
	}
	a := &App{style: style, persist: persist, view: r, log: logger}

	var items []string
	if raw, ok := persist.Load(); ok {
		decoded, err := model.Decode(raw)
		if err != nil {
			logger.Warn("ignoring stored list", "key", persist.Key(), "err", err)
		} else {
			items = decoded
		}
	}
	a.list = model.FromItems(items, style)
	logger.Debug("loaded", "key", persist.Key(), "items", a.list.Len(), "style", style)

	r.OnActivate(func(index int) { a.Remove(index) })
	r.Render(a.list.Items())
	return a
}

// Submit appends text. Empty text is ignored: no write, no render.
func (a *App) Submit(text string) bool {
	if text == "" {
		return false
	}
	a.list = a.list.Add(text)
	a.log.Info("added", "index", a.list.Len()-1)
	a.update()
	return true
}

// Remove deletes the entry at index. An index outside the list is
// ignored: no write, no render.
func (a *App) Remove(index int) bool {
	if index < 0 || index >= a.list.Len() {
		a.log.Debug("remove ignored", "index", index, "len", a.list.Len())
		return false
	}
	a.list = a.list.Remove(index)
	a.log.Info("removed", "index", index)
	a.update()
	return true
}

// Items returns a copy of the current entries.
func (a *App) Items() []string { return a.list.Items() }

// Serialized is the value that is (or would be) persisted.
func (a *App) Serialized() string { return a.list.Serialize() }

func (a *App) Style() model.Style { return a.style }

// View is the renderer driven by this controller.
func (a *App) View() *view.Renderer { return a.view }

func (a *App) update() {
	a.persist.Save(a.list.Serialize())
	a.view.Render(a.list.Items())
}
