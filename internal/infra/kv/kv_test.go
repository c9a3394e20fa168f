package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bryanwahyu/scamshield/internal/infra/kv/kvtest"
)

func TestMemory(t *testing.T) {
	kvtest.Exercise(t, NewMemory())
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	buf := []byte("abc")
	_ = m.Put(context.Background(), "k", buf)
	buf[0] = 'x'
	got, _ := m.Get(context.Background(), "k")
	if string(got) != "abc" {
		t.Fatalf("stored value aliased caller buffer: %s", got)
	}
}

func TestFile(t *testing.T) {
	f, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	kvtest.Exercise(t, f)
}

func TestFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Put(context.Background(), "scamshield_history", []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "scamshield_history.json" {
		t.Fatalf("unexpected dir contents: %v", entries)
	}
	if _, err := os.Stat(filepath.Join(dir, "scamshield_history.json")); err != nil {
		t.Fatal(err)
	}
}

func TestFileRejectsTraversalKeys(t *testing.T) {
	f, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Put(context.Background(), "../escape", []byte("x")); err == nil {
		t.Fatal("expected invalid key error")
	}
}
