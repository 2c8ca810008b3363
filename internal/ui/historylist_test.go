package ui

import "testing"

func sampleItems() []Item {
	return []Item{
		{Index: 0, Path: "/a"},
		{Index: 1, Path: "/b", Current: true},
		{Index: 2, Path: "/c"},
	}
}

func TestSetItemsParksOnCurrent(t *testing.T) {
	hl := NewHistoryList()
	hl.SetSize(80, 20)
	hl.SetItems(sampleItems())

	sel := hl.Selected()
	if sel == nil || sel.Path != "/b" {
		t.Fatalf("Expected selection on /b, got %+v", sel)
	}
}

func TestCursorMovement(t *testing.T) {
	hl := NewHistoryList()
	hl.SetSize(80, 20)
	hl.SetItems(sampleItems())

	hl.CursorDown()
	if hl.Selected().Path != "/c" {
		t.Errorf("Expected /c, got %s", hl.Selected().Path)
	}
	hl.CursorDown() // at bottom, no-op
	if hl.Selected().Path != "/c" {
		t.Errorf("Cursor moved past the end: %s", hl.Selected().Path)
	}

	hl.GotoTop()
	if hl.Selected().Path != "/a" {
		t.Errorf("Expected /a, got %s", hl.Selected().Path)
	}
	hl.CursorUp() // at top, no-op
	if hl.Selected().Path != "/a" {
		t.Errorf("Cursor moved past the start: %s", hl.Selected().Path)
	}

	hl.GotoBottom()
	if hl.Selected().Path != "/c" {
		t.Errorf("Expected /c, got %s", hl.Selected().Path)
	}
}

func TestGGDetection(t *testing.T) {
	hl := NewHistoryList()
	hl.SetSize(80, 20)
	hl.SetItems(sampleItems())
	hl.GotoBottom()

	if hl.HandleGKey() {
		t.Error("First g should not complete gg")
	}
	if !hl.HandleGKey() {
		t.Error("Second g should complete gg")
	}
	if hl.Selected().Path != "/a" {
		t.Errorf("gg should move to top, got %s", hl.Selected().Path)
	}

	hl.HandleGKey()
	hl.ResetGKey()
	if hl.HandleGKey() {
		t.Error("Reset should clear pending g")
	}
}

func TestRemoveSelected(t *testing.T) {
	hl := NewHistoryList()
	hl.SetSize(80, 20)
	hl.SetItems(sampleItems())
	hl.GotoBottom()

	hl.RemoveSelected()
	if hl.Len() != 2 {
		t.Fatalf("Expected 2 items, got %d", hl.Len())
	}
	if hl.Selected().Path != "/b" {
		t.Errorf("Selection should move to the previous item, got %s", hl.Selected().Path)
	}

	hl.RemoveSelected()
	hl.RemoveSelected()
	if hl.Len() != 0 || hl.Selected() != nil {
		t.Errorf("Expected empty list, got %d items", hl.Len())
	}
	hl.RemoveSelected() // no panic on empty
}

func TestViewRendersEmptyAndPopulated(t *testing.T) {
	hl := NewHistoryList()
	hl.SetSize(60, 10)

	if hl.View() == "" {
		t.Error("Empty list should still render the panel")
	}

	hl.SetItems(sampleItems())
	if hl.View() == "" {
		t.Error("Populated list should render")
	}
}
