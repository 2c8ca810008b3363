package storage

import (
	"database/sql"
	"time"
)

// Visit aggregates how often a directory has been entered.
type Visit struct {
	Path        string
	Count       int
	LastVisited time.Time
}

// VisitStore keeps a per-directory visit tally in SQLite. It is advisory
// data: navigation never depends on it, so every method degrades to a
// best-effort result instead of failing the caller.
type VisitStore struct {
	db *sql.DB
}

// NewVisitStore creates a visit store using the given database.
func NewVisitStore(db *DB) *VisitStore {
	return &VisitStore{db: db.Conn()}
}

// Record bumps the visit count for a directory.
func (vs *VisitStore) Record(path string) error {
	_, err := vs.db.Exec(
		`INSERT INTO visits (path, count, last_visited) VALUES (?, 1, datetime('now'))
		 ON CONFLICT(path) DO UPDATE SET
		   count = count + 1,
		   last_visited = datetime('now')`,
		path,
	)
	return err
}

// Top returns the n most-visited directories, most frequent first. Ties
// break toward the most recently visited.
func (vs *VisitStore) Top(n int) []Visit {
	rows, err := vs.db.Query(
		`SELECT path, count, last_visited FROM visits
		 ORDER BY count DESC, last_visited DESC
		 LIMIT ?`,
		n,
	)
	if err != nil {
		return nil
	}
	defer rows.Close()
	return scanVisits(rows)
}

// Count returns the number of tracked directories.
func (vs *VisitStore) Count() int {
	var count int
	vs.db.QueryRow(`SELECT COUNT(*) FROM visits`).Scan(&count)
	return count
}

// Forget drops the tally for a single directory. Returns false if the
// directory was not tracked.
func (vs *VisitStore) Forget(path string) bool {
	res, err := vs.db.Exec(`DELETE FROM visits WHERE path = ?`, path)
	if err != nil {
		return false
	}
	n, _ := res.RowsAffected()
	return n > 0
}

// Clear removes all visit tallies.
func (vs *VisitStore) Clear() error {
	_, err := vs.db.Exec(`DELETE FROM visits`)
	return err
}

func scanVisits(rows *sql.Rows) []Visit {
	var visits []Visit
	for rows.Next() {
		var v Visit
		var lastVisited string
		if err := rows.Scan(&v.Path, &v.Count, &lastVisited); err != nil {
			continue
		}
		v.LastVisited, _ = time.Parse("2006-01-02 15:04:05", lastVisited)
		visits = append(visits, v)
	}
	return visits
}
