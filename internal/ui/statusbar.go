package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/dsurf/internal/theme"
)

// StatusBar shows selection info at the bottom of the picker.
type StatusBar struct {
	position int
	total    int
	message  string // temporary status message
	width    int
}

// NewStatusBar creates a new status bar.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// SetWidth sets the status bar width.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetPosition updates the selection position display (1-based).
func (s *StatusBar) SetPosition(pos, total int) {
	s.position = pos
	s.total = total
}

// SetMessage sets a temporary status message.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
}

// View renders the status bar.
func (s *StatusBar) View() string {
	t := theme.Current

	nameStyle := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(t.Background).
		Background(t.Primary)

	msgStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Padding(0, 1)

	countStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Padding(0, 1)

	left := nameStyle.Render("dsurf")
	msg := msgStyle.Render(s.message)

	count := ""
	if s.total > 0 {
		count = countStyle.Render(fmt.Sprintf("%d/%d", s.position, s.total))
	}

	used := lipgloss.Width(left) + lipgloss.Width(msg) + lipgloss.Width(count)
	gap := s.width - used
	if gap < 0 {
		gap = 0
	}

	barStyle := lipgloss.NewStyle().
		Width(s.width).
		Background(t.Surface)

	return barStyle.Render(left + msg + lipgloss.NewStyle().
		Background(t.Surface).Render(fmt.Sprintf("%*s", gap, "")) + count)
}
