package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles are the Lip Gloss styles for one theme.
type styles struct {
	title    lipgloss.Style
	accent   lipgloss.Style
	muted    lipgloss.Style
	err      lipgloss.Style
	selected lipgloss.Style
	help     lipgloss.Style
	panel    lipgloss.Style
	inputBox lipgloss.Style
	focusBox lipgloss.Style
}

func newStyles(theme string) styles {
	accent, border, errc := lipgloss.Color("12"), lipgloss.Color("8"), lipgloss.Color("9")
	rounded := lipgloss.RoundedBorder()
	switch strings.ToLower(theme) {
	case "neon":
		accent = lipgloss.Color("213")
	case "mono":
		plain := lipgloss.NewStyle()
		box := plain.Border(lipgloss.NormalBorder()).Padding(0, 1)
		return styles{
			title:    plain.Bold(true),
			accent:   plain,
			muted:    plain,
			err:      plain.Bold(true),
			selected: plain.Reverse(true),
			help:     plain,
			panel:    box,
			inputBox: box,
			focusBox: box.BorderStyle(lipgloss.ThickBorder()),
		}
	}

	box := lipgloss.NewStyle().
		Border(rounded).
		BorderForeground(border).
		Padding(0, 1)
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		accent:   lipgloss.NewStyle().Foreground(accent),
		muted:    lipgloss.NewStyle().Faint(true),
		err:      lipgloss.NewStyle().Foreground(errc).Bold(true),
		selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		help:     lipgloss.NewStyle().Faint(true),
		panel:    box,
		inputBox: box,
		focusBox: box.BorderForeground(accent),
	}
}
