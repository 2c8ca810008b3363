package history

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppendDistinctPaths(t *testing.T) {
	h := New()
	for i := 0; i < 10; i++ {
		h.Append(fmt.Sprintf("/dir/%d", i))
	}

	if h.Len() != 10 {
		t.Errorf("Expected 10 entries, got %d", h.Len())
	}
	if h.Index() != 9 {
		t.Errorf("Expected cursor at 9, got %d", h.Index())
	}
}

func TestAppendSuppressesConsecutiveDuplicate(t *testing.T) {
	h := New()
	h.Append("/home/user")
	if h.Append("/home/user") {
		t.Error("Appending the current entry should be a no-op")
	}
	if h.Len() != 1 || h.Index() != 0 {
		t.Errorf("State changed on duplicate append: len=%d pos=%d", h.Len(), h.Index())
	}

	// Non-consecutive duplicates are allowed.
	h.Append("/tmp")
	h.Append("/home/user")
	if h.Len() != 3 {
		t.Errorf("Expected 3 entries, got %d", h.Len())
	}
}

func TestAppendTruncatesForwardBranch(t *testing.T) {
	h := New()
	h.Append("/a")
	h.Append("/b")
	h.Append("/c")

	if _, ok := h.Back(); !ok {
		t.Fatal("Back should succeed")
	}
	if _, ok := h.Back(); !ok {
		t.Fatal("Back should succeed")
	}
	if h.Current() != "/a" {
		t.Fatalf("Expected /a, got %s", h.Current())
	}

	h.Append("/d")

	want := []string{"/a", "/d"}
	got := h.Entries()
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entry %d: expected %s, got %s", i, want[i], got[i])
		}
	}
	if h.Index() != 1 {
		t.Errorf("Expected cursor at 1, got %d", h.Index())
	}
}

func TestBackForwardBoundaries(t *testing.T) {
	h := New()

	if _, ok := h.Back(); ok {
		t.Error("Back on empty history should fail")
	}
	if _, ok := h.Forward(); ok {
		t.Error("Forward on empty history should fail")
	}

	h.Append("/a")
	h.Append("/b")

	if _, ok := h.Forward(); ok {
		t.Error("Forward at newest entry should fail")
	}
	if h.Index() != 1 {
		t.Errorf("Cursor moved on failed Forward: %d", h.Index())
	}

	if p, ok := h.Back(); !ok || p != "/a" {
		t.Errorf("Back: got (%q, %v), want (/a, true)", p, ok)
	}
	if _, ok := h.Back(); ok {
		t.Error("Back at oldest entry should fail")
	}
	if h.Index() != 0 {
		t.Errorf("Cursor moved on failed Back: %d", h.Index())
	}

	if p, ok := h.Forward(); !ok || p != "/b" {
		t.Errorf("Forward: got (%q, %v), want (/b, true)", p, ok)
	}
}

func TestGoTo(t *testing.T) {
	h := New()
	h.Append("/a")
	h.Append("/b")
	h.Append("/c")

	p, err := h.GoTo(0)
	if err != nil || p != "/a" {
		t.Errorf("GoTo(0): got (%q, %v)", p, err)
	}
	if h.Index() != 0 {
		t.Errorf("Expected cursor at 0, got %d", h.Index())
	}

	if _, err := h.GoTo(3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("GoTo(3): expected ErrOutOfRange, got %v", err)
	}
	if _, err := h.GoTo(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("GoTo(-1): expected ErrOutOfRange, got %v", err)
	}
	if h.Index() != 0 {
		t.Errorf("Cursor moved on failed GoTo: %d", h.Index())
	}
}

func TestGet(t *testing.T) {
	h := New()
	h.Append("/a")
	h.Append("/b")

	if p, err := h.Get(1); err != nil || p != "/b" {
		t.Errorf("Get(1): got (%q, %v)", p, err)
	}
	if h.Index() != 1 {
		t.Errorf("Get moved the cursor: %d", h.Index())
	}
	if _, err := h.Get(2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Get(2): expected ErrOutOfRange, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	h := New()
	h.Append("/a")
	h.Append("/b")
	h.Append("/c")
	h.Back() // cursor at /b

	if err := h.Remove(0); err != nil {
		t.Fatalf("Remove(0): %v", err)
	}
	if h.Current() != "/b" || h.Index() != 0 {
		t.Errorf("Expected cursor on /b at 0, got %s at %d", h.Current(), h.Index())
	}

	if err := h.Remove(1); err != nil {
		t.Fatalf("Remove(1): %v", err)
	}
	if h.Current() != "/b" {
		t.Errorf("Expected cursor on /b, got %s", h.Current())
	}

	if err := h.Remove(0); err != nil {
		t.Fatalf("Remove(0): %v", err)
	}
	if h.Len() != 0 || h.Index() != -1 {
		t.Errorf("Expected empty history, got len=%d pos=%d", h.Len(), h.Index())
	}

	if err := h.Remove(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Remove on empty: expected ErrOutOfRange, got %v", err)
	}
}

func TestBackNavigationScenario(t *testing.T) {
	h := New()
	h.Append("/a")
	h.Append("/b")
	h.Append("/c")

	if h.Index() != 2 {
		t.Fatalf("Expected cursor at 2, got %d", h.Index())
	}

	h.Back()
	if h.Current() != "/b" || h.Index() != 1 {
		t.Errorf("Expected /b at 1, got %s at %d", h.Current(), h.Index())
	}

	h.Back()
	if h.Current() != "/a" || h.Index() != 0 {
		t.Errorf("Expected /a at 0, got %s at %d", h.Current(), h.Index())
	}

	h.Append("/d")
	got := h.Entries()
	if len(got) != 2 || got[0] != "/a" || got[1] != "/d" {
		t.Errorf("Expected [/a /d], got %v", got)
	}
	if h.Index() != 1 {
		t.Errorf("Expected cursor at 1, got %d", h.Index())
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	h := New()
	h.Append("/a")
	h.Append("/b")
	h.Append("/c")
	h.Back()

	doc := h.ToDocument()
	if doc.Version != DocumentVersion {
		t.Errorf("Expected version %d, got %d", DocumentVersion, doc.Version)
	}

	restored := FromDocument(doc)
	if restored.Len() != h.Len() || restored.Index() != h.Index() {
		t.Errorf("Round trip mismatch: len %d/%d, pos %d/%d",
			restored.Len(), h.Len(), restored.Index(), h.Index())
	}
	if restored.Current() != "/b" {
		t.Errorf("Expected /b, got %s", restored.Current())
	}
}

func TestFromDocumentClampsIndex(t *testing.T) {
	h := FromDocument(Document{History: []string{"/x"}, Index: 5})
	if h.Index() != 0 {
		t.Errorf("Out-of-range index should clamp to 0, got %d", h.Index())
	}
	if h.Current() != "/x" {
		t.Errorf("Entries should survive clamping, got %q", h.Current())
	}

	h = FromDocument(Document{History: []string{"/x", "/y"}, Index: -3})
	if h.Index() != 0 {
		t.Errorf("Negative index should clamp to 0, got %d", h.Index())
	}

	h = FromDocument(Document{History: nil, Index: 7})
	if h.Index() != -1 || h.Len() != 0 {
		t.Errorf("Empty list should reset to empty state, got len=%d pos=%d", h.Len(), h.Index())
	}
}
