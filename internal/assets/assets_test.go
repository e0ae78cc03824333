package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestManagerLoadPriority(t *testing.T) {
	base := t.TempDir()
	override := t.TempDir()
	writeFile(t, base, "terrain.png", "base")
	writeFile(t, base, "wave0.png", "wave")
	writeFile(t, override, "terrain.png", "override")

	m := NewManager()
	if err := m.AddDir(base); err != nil {
		t.Fatalf("AddDir: %v", err)
	}
	if err := m.AddDir(override); err != nil {
		t.Fatalf("AddDir: %v", err)
	}

	data, err := m.Load("terrain.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != "override" {
		t.Errorf("expected last added dir to win, got %q", data)
	}

	data, err = m.Load("wave0.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != "wave" {
		t.Errorf("expected fallback to base dir, got %q", data)
	}

	dirs := m.Dirs()
	if len(dirs) != 2 || dirs[0] != override {
		t.Errorf("expected override first in search order, got %v", dirs)
	}
}

func TestManagerLoadCaches(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.bin", "one")

	m := NewManager()
	if err := m.AddDir(dir); err != nil {
		t.Fatalf("AddDir: %v", err)
	}

	if _, err := m.Load("a.bin"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	writeFile(t, dir, "a.bin", "two")

	data, err := m.Load("a.bin")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != "one" {
		t.Errorf("expected cached content, got %q", data)
	}

	hits, misses := m.cache.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %d/%d", hits, misses)
	}
}

func TestManagerNotFound(t *testing.T) {
	m := NewManager()
	if err := m.AddDir(t.TempDir()); err != nil {
		t.Fatalf("AddDir: %v", err)
	}

	_, err := m.Load("missing.png")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestManagerStaysInsideDir(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "data")
	writeFile(t, parent, "secret.txt", "x")
	writeFile(t, dir, "ok.txt", "y")

	m := NewManager()
	if err := m.AddDir(dir); err != nil {
		t.Fatalf("AddDir: %v", err)
	}

	if _, err := m.Load("../secret.txt"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for escaping path, got %v", err)
	}
	if _, err := m.Load("sub/../ok.txt"); err != nil {
		t.Errorf("expected cleaned path to load, got %v", err)
	}
}

func TestManagerFind(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "textures/wave1.tga", "tga")

	m := NewManager()
	if err := m.AddDir(dir); err != nil {
		t.Fatalf("AddDir: %v", err)
	}

	name, err := m.Find("textures/wave1", []string{".png", ".tga"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if name != "textures/wave1.tga" {
		t.Errorf("expected textures/wave1.tga, got %s", name)
	}

	if _, err := m.Find("textures/none", []string{".png"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAddDirErrors(t *testing.T) {
	m := NewManager()
	if err := m.AddDir("/nonexistent/data"); err == nil {
		t.Error("expected error for missing dir")
	}

	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := m.AddDir(file); err == nil {
		t.Error("expected error for a regular file")
	}
}

func TestManagerClose(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.bin", "one")

	m := NewManager()
	if err := m.AddDir(dir); err != nil {
		t.Fatalf("AddDir: %v", err)
	}
	if _, err := m.Load("a.bin"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	m.Close()
	if _, err := m.Load("a.bin"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after Close, got %v", err)
	}
}
