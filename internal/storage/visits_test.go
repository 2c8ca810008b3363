package storage

import (
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestVisitRecordAndTop(t *testing.T) {
	vs := NewVisitStore(openTestDB(t))

	for i := 0; i < 3; i++ {
		if err := vs.Record("/home/user/projects"); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	if err := vs.Record("/tmp"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	if vs.Count() != 2 {
		t.Errorf("Expected 2 tracked directories, got %d", vs.Count())
	}

	top := vs.Top(10)
	if len(top) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(top))
	}
	if top[0].Path != "/home/user/projects" || top[0].Count != 3 {
		t.Errorf("Expected /home/user/projects with count 3 first, got %s with %d",
			top[0].Path, top[0].Count)
	}

	top = vs.Top(1)
	if len(top) != 1 {
		t.Errorf("Top(1) should return 1 result, got %d", len(top))
	}
}

func TestVisitForgetAndClear(t *testing.T) {
	vs := NewVisitStore(openTestDB(t))

	vs.Record("/a")
	vs.Record("/b")

	if !vs.Forget("/a") {
		t.Error("Forget of a tracked directory should report true")
	}
	if vs.Forget("/a") {
		t.Error("Forget of an untracked directory should report false")
	}
	if vs.Count() != 1 {
		t.Errorf("Expected 1 tracked directory, got %d", vs.Count())
	}

	if err := vs.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if vs.Count() != 0 {
		t.Errorf("Expected empty store after Clear, got %d", vs.Count())
	}
}

func TestMarkAddGetRemove(t *testing.T) {
	ms := NewMarkStore(openTestDB(t))

	if !ms.Add("proj", "/home/user/projects") {
		t.Fatal("Add should succeed")
	}
	if path, ok := ms.Get("proj"); !ok || path != "/home/user/projects" {
		t.Errorf("Get: got (%q, %v)", path, ok)
	}

	// Re-adding the same name replaces the path.
	ms.Add("proj", "/srv/projects")
	if path, _ := ms.Get("proj"); path != "/srv/projects" {
		t.Errorf("Expected replaced path, got %q", path)
	}
	if ms.Count() != 1 {
		t.Errorf("Replacement should not create a second mark, count=%d", ms.Count())
	}

	if !ms.Remove("proj") {
		t.Error("Remove should report true for an existing mark")
	}
	if ms.Remove("proj") {
		t.Error("Remove should report false for a missing mark")
	}
	if _, ok := ms.Get("proj"); ok {
		t.Error("Removed mark should not resolve")
	}
}

func TestMarkList(t *testing.T) {
	ms := NewMarkStore(openTestDB(t))

	ms.Add("a", "/a")
	ms.Add("b", "/b")

	marks := ms.List()
	if len(marks) != 2 {
		t.Fatalf("Expected 2 marks, got %d", len(marks))
	}
	if marks[0].Name != "b" {
		t.Errorf("Expected newest mark first, got %s", marks[0].Name)
	}
}
