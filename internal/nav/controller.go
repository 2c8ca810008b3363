// Package nav drives cursor navigation over the directory history and owns
// the persistence of every mutation. A Controller is built per invocation
// and passed explicitly; there is no package-level session state.
package nav

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vidyasagar/dsurf/internal/history"
	"github.com/vidyasagar/dsurf/internal/storage"
)

var (
	// ErrAtNewest is returned by Next when the cursor is on the most recent entry.
	ErrAtNewest = errors.New("already at the newest entry")
	// ErrAtOldest is returned by Previous when the cursor is on the oldest entry.
	ErrAtOldest = errors.New("already at the oldest entry")
	// ErrEmpty is returned when navigating an empty history.
	ErrEmpty = errors.New("history is empty")
)

// Relocator performs the external "change current directory" action. The
// shell cannot be chdir'd from a child process, so the production
// implementation validates the target and emits it for the shell wrapper
// to cd into. A Relocate error means the cursor must not move.
type Relocator interface {
	Relocate(path string) error
}

// Entry is one row of the read-only history listing.
type Entry struct {
	Index   int
	Path    string
	Current bool
}

// Controller owns the history cursor for one invocation. The document is
// loaded lazily on first use; every mutation is followed by a save.
type Controller struct {
	docs   *storage.DocumentStore
	reloc  Relocator
	visits *storage.VisitStore // optional, best-effort
	logger *log.Logger
	hist   *history.History
	loaded bool
}

// NewController wires a controller. visits may be nil when the database
// is unavailable; navigation must keep working without it.
func NewController(docs *storage.DocumentStore, reloc Relocator, visits *storage.VisitStore, logger *log.Logger) *Controller {
	return &Controller{
		docs:   docs,
		reloc:  reloc,
		visits: visits,
		logger: logger,
	}
}

// History returns the loaded history, reading the document on first use.
// A missing or corrupt document degrades to an empty history with a
// logged warning; it never fails the caller.
func (c *Controller) History() *history.History {
	if !c.loaded {
		doc, err := c.docs.Load()
		if err != nil {
			c.logger.Warn("could not read history, starting empty",
				"file", c.docs.Path(), "err", err)
		}
		c.hist = history.FromDocument(doc)
		c.loaded = true
	}
	return c.hist
}

// Record notes that the shell is now in pwd. Called once per prompt by
// the installed hook. If pwd matches the entry under the cursor (as it
// does right after next/prev/goto moved there), nothing happens;
// otherwise the forward branch is truncated and pwd is appended.
func (c *Controller) Record(pwd string) {
	path := filepath.Clean(pwd)
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			c.logger.Warn("could not resolve path, skipping record", "path", pwd, "err", err)
			return
		}
		path = abs
	}

	h := c.History()
	if !h.Append(path) {
		return
	}
	c.save()

	if c.visits != nil {
		if err := c.visits.Record(path); err != nil {
			c.logger.Warn("could not record visit", "path", path, "err", err)
		}
	}
}

// Next steps the cursor toward the most recent entry and relocates there.
func (c *Controller) Next() (string, error) {
	h := c.History()
	if h.Len() == 0 {
		return "", ErrEmpty
	}
	if !h.CanGoForward() {
		return "", ErrAtNewest
	}

	target, _ := h.Get(h.Index() + 1)
	if err := c.reloc.Relocate(target); err != nil {
		return "", fmt.Errorf("relocating to %s: %w", target, err)
	}
	h.Forward()
	c.save()
	return target, nil
}

// Previous steps the cursor toward the oldest entry and relocates there.
func (c *Controller) Previous() (string, error) {
	h := c.History()
	if h.Len() == 0 {
		return "", ErrEmpty
	}
	if !h.CanGoBack() {
		return "", ErrAtOldest
	}

	target, _ := h.Get(h.Index() - 1)
	if err := c.reloc.Relocate(target); err != nil {
		return "", fmt.Errorf("relocating to %s: %w", target, err)
	}
	h.Back()
	c.save()
	return target, nil
}

// GoTo jumps the cursor to an absolute index, or to a cursor-relative
// offset when n is negative (goto -2 means two entries back).
func (c *Controller) GoTo(n int) (string, error) {
	h := c.History()
	if h.Len() == 0 {
		return "", ErrEmpty
	}

	idx := n
	if n < 0 {
		idx = h.Index() + n
	}

	target, err := h.Get(idx)
	if err != nil {
		return "", err
	}
	if err := c.reloc.Relocate(target); err != nil {
		return "", fmt.Errorf("relocating to %s: %w", target, err)
	}
	h.GoTo(idx)
	c.save()
	return target, nil
}

// List returns the history oldest first, with the current entry marked.
func (c *Controller) List() []Entry {
	h := c.History()
	cur := h.Index()
	entries := h.Entries()
	out := make([]Entry, len(entries))
	for i, p := range entries {
		out[i] = Entry{Index: i, Path: p, Current: i == cur}
	}
	return out
}

// RemoveAt deletes one history entry and persists the result.
func (c *Controller) RemoveAt(i int) error {
	h := c.History()
	if err := h.Remove(i); err != nil {
		return err
	}
	c.save()
	return nil
}

// Clear empties the history and persists the empty document.
func (c *Controller) Clear() {
	h := c.History()
	h.Clear()
	c.save()
}

// save persists the current document. Persistence is advisory: a failed
// write keeps the in-memory state and logs a warning, and the next
// successful save reconciles the file.
func (c *Controller) save() {
	if err := c.docs.Save(c.hist.ToDocument()); err != nil {
		c.logger.Warn("could not save history", "file", c.docs.Path(), "err", err)
	}
}
