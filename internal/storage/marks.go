package storage

import (
	"database/sql"
	"time"
)

// Mark is a named directory bookmark.
type Mark struct {
	ID        int64
	Name      string
	Path      string
	CreatedAt time.Time
}

// MarkStore manages directory bookmarks persisted in SQLite.
type MarkStore struct {
	db *sql.DB
}

// NewMarkStore creates a mark store using the given database.
func NewMarkStore(db *DB) *MarkStore {
	return &MarkStore{db: db.Conn()}
}

// Add saves a mark, replacing any existing mark with the same name.
func (ms *MarkStore) Add(name, path string) bool {
	_, err := ms.db.Exec(
		`INSERT INTO marks (name, path) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET path = excluded.path`,
		name, path,
	)
	return err == nil
}

// Remove removes a mark by name. Returns false if not found.
func (ms *MarkStore) Remove(name string) bool {
	res, err := ms.db.Exec(`DELETE FROM marks WHERE name = ?`, name)
	if err != nil {
		return false
	}
	n, _ := res.RowsAffected()
	return n > 0
}

// Get returns the path for a mark name, or false if no such mark exists.
func (ms *MarkStore) Get(name string) (string, bool) {
	var path string
	err := ms.db.QueryRow(`SELECT path FROM marks WHERE name = ?`, name).Scan(&path)
	if err != nil {
		return "", false
	}
	return path, true
}

// List returns all marks, newest first.
func (ms *MarkStore) List() []Mark {
	rows, err := ms.db.Query(
		`SELECT id, name, path, created_at FROM marks ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil
	}
	defer rows.Close()
	return scanMarks(rows)
}

// Count returns the number of marks.
func (ms *MarkStore) Count() int {
	var count int
	ms.db.QueryRow(`SELECT COUNT(*) FROM marks`).Scan(&count)
	return count
}

func scanMarks(rows *sql.Rows) []Mark {
	var marks []Mark
	for rows.Next() {
		var m Mark
		var createdAt string
		if err := rows.Scan(&m.ID, &m.Name, &m.Path, &createdAt); err != nil {
			continue
		}
		m.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdAt)
		marks = append(marks, m)
	}
	return marks
}
