package history

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an index falls outside the history.
var ErrOutOfRange = errors.New("history index out of range")

// History manages a back/forward navigation stack of visited directories.
// It behaves like browser history: stepping back and then visiting a new
// directory abandons the forward branch.
type History struct {
	entries []string
	pos     int // current position in the stack, -1 when empty
}

// New creates an empty navigation history.
func New() *History {
	return &History{
		entries: nil,
		pos:     -1,
	}
}

// Append records a visit to path. If path is already the entry under the
// cursor the call is a no-op; otherwise any forward entries are truncated
// before path is pushed, and the cursor moves to the end.
func (h *History) Append(path string) bool {
	if h.pos >= 0 && h.entries[h.pos] == path {
		return false
	}
	if h.pos < len(h.entries)-1 {
		h.entries = h.entries[:h.pos+1]
	}
	h.entries = append(h.entries, path)
	h.pos = len(h.entries) - 1
	return true
}

// Back moves one step back in history. Returns the path and true if possible.
func (h *History) Back() (string, bool) {
	if h.pos <= 0 {
		return "", false
	}
	h.pos--
	return h.entries[h.pos], true
}

// Forward moves one step forward in history. Returns the path and true if possible.
func (h *History) Forward() (string, bool) {
	if h.pos >= len(h.entries)-1 {
		return "", false
	}
	h.pos++
	return h.entries[h.pos], true
}

// GoTo moves the cursor to an absolute index and returns the entry there.
func (h *History) GoTo(i int) (string, error) {
	if i < 0 || i >= len(h.entries) {
		return "", fmt.Errorf("%w: %d (history has %d entries)", ErrOutOfRange, i, len(h.entries))
	}
	h.pos = i
	return h.entries[i], nil
}

// Get returns the entry at index i without moving the cursor.
func (h *History) Get(i int) (string, error) {
	if i < 0 || i >= len(h.entries) {
		return "", fmt.Errorf("%w: %d (history has %d entries)", ErrOutOfRange, i, len(h.entries))
	}
	return h.entries[i], nil
}

// Remove deletes the entry at index i, shifting the cursor so it still
// points at a valid entry. Returns ErrOutOfRange for a bad index.
func (h *History) Remove(i int) error {
	if i < 0 || i >= len(h.entries) {
		return fmt.Errorf("%w: %d (history has %d entries)", ErrOutOfRange, i, len(h.entries))
	}
	h.entries = append(h.entries[:i], h.entries[i+1:]...)
	switch {
	case len(h.entries) == 0:
		h.pos = -1
	case i < h.pos:
		h.pos--
	case h.pos >= len(h.entries):
		h.pos = len(h.entries) - 1
	}
	return nil
}

// Current returns the entry under the cursor, or empty string if history is empty.
func (h *History) Current() string {
	if h.pos < 0 || h.pos >= len(h.entries) {
		return ""
	}
	return h.entries[h.pos]
}

// Index returns the cursor position (-1 when empty).
func (h *History) Index() int {
	return h.pos
}

// CanGoBack reports whether there is a previous entry.
func (h *History) CanGoBack() bool {
	return h.pos > 0
}

// CanGoForward reports whether there is a next entry.
func (h *History) CanGoForward() bool {
	return h.pos < len(h.entries)-1
}

// Len returns the total number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of all entries in visit order.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Clear resets the history.
func (h *History) Clear() {
	h.entries = nil
	h.pos = -1
}
