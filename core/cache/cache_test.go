package cache

import (
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGet(t *testing.T) {
	s := openTemp(t)
	key := Key("Привет", "rus", "abc123")

	if _, ok, err := s.Get(key); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	if err := s.Put(key, "rus", "Привет", "Privet"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, ok, err := s.Get(key)
	if err != nil || !ok || got != "Privet" {
		t.Fatalf("Get = %q/%v/%v, want Privet", got, ok, err)
	}

	if err := s.Put(key, "rus", "Привет", "Priv"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, _, _ = s.Get(key)
	if got != "Priv" {
		t.Errorf("overwrite not applied: %q", got)
	}

	n, err := s.Len()
	if err != nil || n != 1 {
		t.Errorf("Len = %d/%v, want 1", n, err)
	}
}

func TestKeyDistinguishes(t *testing.T) {
	base := Key("line", "rus", "sum1")
	tests := []struct {
		name string
		key  string
	}{
		{"different line", Key("line2", "rus", "sum1")},
		{"different lcode", Key("line", "ukr", "sum1")},
		{"different checksum", Key("line", "rus", "sum2")},
	}
	for _, tt := range tests {
		if tt.key == base {
			t.Errorf("%s: key collision", tt.name)
		}
	}
	if Key("line", "rus", "sum1") != base {
		t.Error("key not deterministic")
	}
	if len(base) != 64 {
		t.Errorf("key length = %d, want 64", len(base))
	}
}

func TestPersistence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.db")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	key := Key("こんにちは", "jpn", "x")
	if err := s.Put(key, "jpn", "こんにちは", "konnichiha"); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	got, ok, err := s.Get(key)
	if err != nil || !ok || got != "konnichiha" {
		t.Fatalf("reopened Get = %q/%v/%v", got, ok, err)
	}
}
