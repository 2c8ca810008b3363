package history

// DocumentVersion is the current on-disk format version.
const DocumentVersion = 1

// Document is the serialized form of a History. Field names match the
// history.json file contents.
type Document struct {
	Version int      `json:"Version"`
	History []string `json:"History"`
	Index   int      `json:"Index"`
}

// EmptyDocument returns a document describing an empty history.
func EmptyDocument() Document {
	return Document{Version: DocumentVersion, History: nil, Index: -1}
}

// ToDocument snapshots the history into its serialized form.
func (h *History) ToDocument() Document {
	return Document{
		Version: DocumentVersion,
		History: h.Entries(),
		Index:   h.pos,
	}
}

// FromDocument builds a History from a loaded document. A missing History
// field means empty; a missing Index field decodes as the zero value, so
// loaders pre-set Index to -1. An Index outside the valid range is clamped
// into [0, len-1] rather than discarding the entry list.
func FromDocument(doc Document) *History {
	h := &History{
		entries: append([]string(nil), doc.History...),
		pos:     doc.Index,
	}
	if len(h.entries) == 0 {
		h.entries = nil
		h.pos = -1
		return h
	}
	if h.pos < 0 {
		h.pos = 0
	}
	if h.pos >= len(h.entries) {
		h.pos = len(h.entries) - 1
	}
	return h
}
