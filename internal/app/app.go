// Package app holds the bubbletea model for the `dsurf browse` picker.
// The picker renders on stderr so stdout stays reserved for the chosen
// relocation target.
package app

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vidyasagar/dsurf/internal/nav"
	"github.com/vidyasagar/dsurf/internal/ui"
)

// Model is the top-level bubbletea model for the history picker.
type Model struct {
	list      ui.HistoryList
	statusBar ui.StatusBar
	ctrl      *nav.Controller
	statCache *lru.Cache[string, bool] // path -> exists, avoids re-statting while scrolling
	keys      KeyMap
	width     int
	height    int
	ready     bool
	selected  int // chosen history index, -1 until Select
}

// New creates a picker over the controller's history.
func New(ctrl *nav.Controller) Model {
	statCache, _ := lru.New[string, bool](256)

	m := Model{
		list:      ui.NewHistoryList(),
		statusBar: ui.NewStatusBar(),
		ctrl:      ctrl,
		statCache: statCache,
		keys:      DefaultKeyMap(),
		selected:  -1,
	}
	m.refresh()
	return m
}

// Selected returns the chosen history index, or -1 if the picker was
// dismissed without a selection.
func (m Model) Selected() int {
	return m.selected
}

// refresh rebuilds the list items from the controller state.
func (m *Model) refresh() {
	entries := m.ctrl.List()
	items := make([]ui.Item, len(entries))
	for i, e := range entries {
		items[i] = ui.Item{
			Index:   e.Index,
			Path:    e.Path,
			Current: e.Current,
			Missing: !m.pathExists(e.Path),
		}
	}
	m.list.SetItems(items)
	m.syncStatus()
}

func (m *Model) pathExists(path string) bool {
	if exists, ok := m.statCache.Get(path); ok {
		return exists
	}
	info, err := os.Stat(path)
	exists := err == nil && info.IsDir()
	m.statCache.Add(path, exists)
	return exists
}

func (m *Model) syncStatus() {
	m.statusBar.SetPosition(m.list.SelectedIndex()+1, m.list.Len())
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height-1)
		m.statusBar.SetWidth(m.width)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() != "g" {
		m.list.ResetGKey()
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.CursorDown):
		m.list.CursorDown()

	case key.Matches(msg, m.keys.CursorUp):
		m.list.CursorUp()

	case key.Matches(msg, m.keys.HalfPageDown):
		m.list.HalfPageDown()

	case key.Matches(msg, m.keys.HalfPageUp):
		m.list.HalfPageUp()

	case key.Matches(msg, m.keys.GotoTop):
		m.list.HandleGKey()

	case key.Matches(msg, m.keys.GotoBottom):
		m.list.GotoBottom()

	case key.Matches(msg, m.keys.Select):
		item := m.list.Selected()
		if item == nil {
			return m, nil
		}
		if item.Missing {
			m.statusBar.SetMessage("directory no longer exists")
			return m, nil
		}
		m.selected = item.Index
		return m, tea.Quit

	case key.Matches(msg, m.keys.Delete):
		item := m.list.Selected()
		if item == nil {
			return m, nil
		}
		if err := m.ctrl.RemoveAt(item.Index); err != nil {
			m.statusBar.SetMessage(fmt.Sprintf("delete failed: %v", err))
			return m, nil
		}
		m.refresh()
		m.statusBar.SetMessage("entry removed")
	}

	m.syncStatus()
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.list.View() + "\n" + m.statusBar.View()
}
