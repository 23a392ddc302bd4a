package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "scores.json")

	store, err := OpenJSON(path)
	if err != nil {
		t.Fatalf("OpenJSON() failed: %v", err)
	}

	if err := store.Save(testTable()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	easy := got["animals-easy"]
	if len(easy) != 2 || easy[0].Name != "ada" || easy[1].Name != "bob" {
		t.Errorf("Round trip lost entries: %v", easy)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	store, err := OpenJSON(filepath.Join(t.TempDir(), "scores.json"))
	if err != nil {
		t.Fatalf("OpenJSON() failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() of a missing file should not fail: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Missing file should load as an empty table, got %v", got)
	}
}

func TestFileStoreMalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "scores.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	store, err := OpenJSON(path)
	if err != nil {
		t.Fatalf("OpenJSON() failed: %v", err)
	}

	// A corrupt record starts over empty instead of failing startup
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() of a malformed file should not fail: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Malformed file should load as an empty table, got %v", got)
	}
}

func TestFileStoreSaveReplaces(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "scores.json")

	store, err := OpenJSON(path)
	if err != nil {
		t.Fatalf("OpenJSON() failed: %v", err)
	}

	if err := store.Save(testTable()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := store.Save(nil); err != nil {
		t.Fatalf("Save(nil) failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Replaced save should drop old boards, got %v", got)
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "scores.json")

	store, err := OpenJSON(path)
	if err != nil {
		t.Fatalf("OpenJSON() failed: %v", err)
	}
	if err := store.Save(testTable()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	files, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	for _, f := range files {
		if strings.HasPrefix(f.Name(), ".pairs-") {
			t.Errorf("Temp file left behind: %s", f.Name())
		}
	}
}

func TestFileStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "subdir", "deep", "scores.json")

	store, err := OpenJSON(path)
	if err != nil {
		t.Fatalf("OpenJSON() with nested path failed: %v", err)
	}
	if err := store.Save(testTable()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("Leaderboard file was not created in nested directory")
	}
}
