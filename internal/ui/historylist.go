package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/dsurf/internal/theme"
)

// Item is one directory row in the history list.
type Item struct {
	Index   int
	Path    string
	Current bool // entry under the history cursor
	Missing bool // directory no longer exists on disk
}

// HistoryList displays a scrollable directory history with vim navigation.
type HistoryList struct {
	items    []Item
	cursor   int
	offset   int // scroll offset for visible window
	width    int
	height   int
	lastGKey bool // for gg detection
}

// NewHistoryList creates an empty history list.
func NewHistoryList() HistoryList {
	return HistoryList{}
}

// SetItems replaces the displayed items and parks the selection on the
// entry under the history cursor.
func (hl *HistoryList) SetItems(items []Item) {
	hl.items = items
	hl.cursor = 0
	for i, it := range items {
		if it.Current {
			hl.cursor = i
			break
		}
	}
	hl.offset = 0
	hl.ensureVisible()
}

// SetSize updates the list dimensions.
func (hl *HistoryList) SetSize(w, h int) {
	hl.width = w
	hl.height = h
	hl.ensureVisible()
}

// CursorUp moves the selection up one entry.
func (hl *HistoryList) CursorUp() {
	hl.lastGKey = false
	if hl.cursor > 0 {
		hl.cursor--
		hl.ensureVisible()
	}
}

// CursorDown moves the selection down one entry.
func (hl *HistoryList) CursorDown() {
	hl.lastGKey = false
	if hl.cursor < len(hl.items)-1 {
		hl.cursor++
		hl.ensureVisible()
	}
}

// GotoTop moves to the first entry.
func (hl *HistoryList) GotoTop() {
	hl.lastGKey = false
	hl.cursor = 0
	hl.offset = 0
}

// GotoBottom moves to the last entry.
func (hl *HistoryList) GotoBottom() {
	hl.lastGKey = false
	if len(hl.items) > 0 {
		hl.cursor = len(hl.items) - 1
		hl.ensureVisible()
	}
}

// HalfPageDown scrolls down half a page.
func (hl *HistoryList) HalfPageDown() {
	hl.lastGKey = false
	hl.cursor += hl.visibleCount() / 2
	if hl.cursor >= len(hl.items) {
		hl.cursor = len(hl.items) - 1
	}
	if hl.cursor < 0 {
		hl.cursor = 0
	}
	hl.ensureVisible()
}

// HalfPageUp scrolls up half a page.
func (hl *HistoryList) HalfPageUp() {
	hl.lastGKey = false
	hl.cursor -= hl.visibleCount() / 2
	if hl.cursor < 0 {
		hl.cursor = 0
	}
	hl.ensureVisible()
}

// HandleGKey handles the "g" key for gg detection.
// Returns true if "gg" was completed (go to top).
func (hl *HistoryList) HandleGKey() bool {
	if hl.lastGKey {
		hl.GotoTop()
		return true
	}
	hl.lastGKey = true
	return false
}

// ResetGKey resets the g key state (called on any non-g key press).
func (hl *HistoryList) ResetGKey() {
	hl.lastGKey = false
}

// Selected returns the item under the selection, or nil if empty.
func (hl *HistoryList) Selected() *Item {
	if len(hl.items) == 0 || hl.cursor < 0 || hl.cursor >= len(hl.items) {
		return nil
	}
	it := hl.items[hl.cursor]
	return &it
}

// SelectedIndex returns the selection position within the list.
func (hl *HistoryList) SelectedIndex() int {
	return hl.cursor
}

// Len returns the number of items.
func (hl *HistoryList) Len() int {
	return len(hl.items)
}

// RemoveSelected removes the item under the selection and adjusts position.
func (hl *HistoryList) RemoveSelected() {
	if len(hl.items) == 0 || hl.cursor < 0 || hl.cursor >= len(hl.items) {
		return
	}
	hl.items = append(hl.items[:hl.cursor], hl.items[hl.cursor+1:]...)
	if hl.cursor >= len(hl.items) && hl.cursor > 0 {
		hl.cursor--
	}
	hl.ensureVisible()
}

// visibleCount returns how many entries fit in the visible area.
// Each entry takes one line; 3 lines go to the header.
func (hl *HistoryList) visibleCount() int {
	available := hl.height - 3
	if available < 1 {
		return 1
	}
	return available
}

// ensureVisible adjusts offset so the selection is within the visible window.
func (hl *HistoryList) ensureVisible() {
	visible := hl.visibleCount()
	if hl.cursor < hl.offset {
		hl.offset = hl.cursor
	}
	if hl.cursor >= hl.offset+visible {
		hl.offset = hl.cursor - visible + 1
	}
	if hl.offset < 0 {
		hl.offset = 0
	}
}

// View renders the history list.
func (hl *HistoryList) View() string {
	t := theme.Current

	panelStyle := lipgloss.NewStyle().
		Width(hl.width).
		Height(hl.height)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Background(t.Surface).
		Width(hl.width).
		Padding(0, 1)

	separatorStyle := lipgloss.NewStyle().
		Foreground(t.Border)

	selectedStyle := lipgloss.NewStyle().
		Foreground(t.TextBright).
		Background(t.Surface).
		Bold(true).
		Width(hl.width).
		Padding(0, 1)

	normalStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Width(hl.width).
		Padding(0, 1)

	missingStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Strikethrough(true).
		Width(hl.width).
		Padding(0, 1)

	markerStyle := lipgloss.NewStyle().
		Foreground(t.Marker).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Padding(0, 1)

	var sb strings.Builder

	// Header.
	sb.WriteString(titleStyle.Render("dsurf history"))
	sb.WriteString("\n")

	sepWidth := hl.width - 2
	if sepWidth < 1 {
		sepWidth = 1
	}
	sb.WriteString(separatorStyle.Render(strings.Repeat("─", sepWidth)))
	sb.WriteString("\n")

	if len(hl.items) == 0 {
		sb.WriteString(dimStyle.Render("No history yet. cd around a bit."))
		sb.WriteString("\n")
		return panelStyle.Render(sb.String())
	}

	visible := hl.visibleCount()
	end := hl.offset + visible
	if end > len(hl.items) {
		end = len(hl.items)
	}

	maxPathLen := hl.width - 10
	if maxPathLen < 10 {
		maxPathLen = 10
	}

	for i := hl.offset; i < end; i++ {
		item := hl.items[i]

		path := item.Path
		if len(path) > maxPathLen {
			path = "…" + path[len(path)-maxPathLen+1:]
		}

		marker := " "
		if item.Current {
			marker = markerStyle.Render("▸")
		}
		line := fmt.Sprintf("%s %3d  %s", marker, item.Index, path)
		if item.Missing {
			line += "  (gone)"
		}

		switch {
		case i == hl.cursor:
			sb.WriteString(selectedStyle.Render(line))
		case item.Missing:
			sb.WriteString(missingStyle.Render(line))
		default:
			sb.WriteString(normalStyle.Render(line))
		}
		sb.WriteString("\n")
	}

	// Footer hint.
	linesUsed := 2 + (end - hl.offset)
	remaining := hl.height - linesUsed
	if remaining > 1 {
		for i := 0; i < remaining-1; i++ {
			sb.WriteString("\n")
		}
		hintStyle := lipgloss.NewStyle().
			Foreground(t.TextDim).
			Italic(true).
			Padding(0, 1)
		sb.WriteString(hintStyle.Render("j/k:move  Enter:cd  d:del  q:quit"))
	}

	return panelStyle.Render(sb.String())
}
