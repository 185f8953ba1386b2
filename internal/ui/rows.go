package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/todolist/internal/view"
)

const maxRowWidth = 80

// PanelSink prints each render pass as a framed panel.
type PanelSink struct {
	W io.Writer
}

func (p PanelSink) Replace(rows []view.Row) {
	Panel(p.W, RowLines(rows))
}

// RowLines is the panel body: a header with the count, then one
// numbered line per row.
func RowLines(rows []view.Row) []string {
	t := Current()
	header := fmt.Sprintf("%s  %s %d",
		C(t.Title, "Todos"),
		C(t.Accent, "Total"), len(rows),
	)

	lines := []string{header, ""}
	if len(rows) == 0 {
		lines = append(lines, C(t.Muted, "no items"))
	}
	for _, r := range rows {
		idx := fmt.Sprintf("%2d.", r.Index+1)
		lines = append(lines, fmt.Sprintf("%s %s", C(Dim(), idx), Truncate(r.Text, maxRowWidth)))
	}
	lines = append(lines, "")
	lines = append(lines, C(t.Muted, "Tip: add with `todo add \"Buy milk\"`"))
	return lines
}

// Truncate shortens s to n terminal cells, ending in "..." when cut.
// Wide runes count as two cells.
func Truncate(s string, n int) string {
	if n < 4 {
		return s
	}
	return ansi.Truncate(s, n, "...")
}
