package library

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitForChange(t *testing.T, w *Watcher) Change {
	t.Helper()
	select {
	case c := <-w.Changes:
		return c
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change event")
		return Change{}
	}
}

func TestWatcher_DetectsChartChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	path := filepath.Join(dir, "new.vac")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	c := waitForChange(t, w)
	if c.Kind != ChangeUpdated {
		t.Errorf("change kind = %v, want ChangeUpdated", c.Kind)
	}
	if c.Path != path {
		t.Errorf("change path = %q, want %q", c.Path, path)
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	c = waitForChange(t, w)
	if c.Kind != ChangeRemoved {
		t.Errorf("change kind after delete = %v, want ChangeRemoved", c.Kind)
	}
}

func TestWatcher_IgnoresNonChartFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-w.Changes:
		t.Errorf("unexpected change for non-chart file: %+v", c)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestIsChartFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"/charts/a.vac", true},
		{"b.vac", true},
		{"/charts/library.db", false},
		{"/charts/readme.md", false},
	}
	for _, tt := range tests {
		if got := isChartFile(tt.name); got != tt.want {
			t.Errorf("isChartFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
