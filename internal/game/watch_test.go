package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileWatcherScan(t *testing.T) {
	dir := t.TempDir()
	existing := writeMode(t, dir, "default", defaultYAML)
	later := filepath.Join(dir, "modes", "solo.yaml")

	var changed []string
	w := NewFileWatcher([]string{existing, later}, time.Second, func(p string) {
		changed = append(changed, p)
	})
	w.Scan(true)
	if len(changed) != 0 {
		t.Fatalf("priming must not report changes")
	}

	w.Scan(false)
	if len(changed) != 0 {
		t.Fatalf("unchanged files reported: %v", changed)
	}

	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(existing, future, future); err != nil {
		t.Fatal(err)
	}
	writeMode(t, dir, "solo", "run:\n  weapon: bow\n")
	w.Scan(false)
	if len(changed) != 2 {
		t.Fatalf("changed = %v, want both files", changed)
	}
}

func TestWatchLoaderInvalidates(t *testing.T) {
	dir := t.TempDir()
	p := writeMode(t, dir, "default", defaultYAML)
	l := NewLoader(dir)
	w := WatchLoader(l, []string{"solo"}, 0)
	if w.Interval != 2*time.Second {
		t.Fatalf("default interval = %v", w.Interval)
	}
	w.Scan(true)

	if _, err := l.LoadMerged("solo"); err != nil {
		t.Fatal(err)
	}
	writeMode(t, dir, "default", "run:\n  weapon: potion\n")
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(p, future, future); err != nil {
		t.Fatal(err)
	}
	w.Scan(false)

	raw, _ := l.LoadMerged("solo")
	if raw.Run.Weapon != "potion" {
		t.Fatalf("loader cache not invalidated, weapon = %q", raw.Run.Weapon)
	}
}
