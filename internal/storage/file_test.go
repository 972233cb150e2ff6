package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStoreMissingKeyLeavesDefaultUntouched(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	v := doc{Name: "default", Count: 7}
	if s.Load("absent", &v) {
		t.Error("Load reported success for a missing key")
	}
	if v.Name != "default" || v.Count != 7 {
		t.Errorf("default value disturbed: %+v", v)
	}
}

func TestFileStoreCorruptDocumentLeavesDefaultUntouched(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	v := doc{Name: "default"}
	if s.Load("bad", &v) {
		t.Error("Load reported success for a corrupt document")
	}
	if v.Name != "default" {
		t.Errorf("default value disturbed: %+v", v)
	}
}

func TestFileStorePartialDecodeLeavesDefaultUntouched(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	// Valid JSON whose first field decodes cleanly before the second fails:
	// none of it may leak into the caller's default.
	bad := []byte(`{"name":"stored","count":"beaucoup"}`)
	if err := os.WriteFile(filepath.Join(dir, "mixed.json"), bad, 0o644); err != nil {
		t.Fatal(err)
	}

	v := doc{Name: "default", Count: 7}
	if s.Load("mixed", &v) {
		t.Error("Load reported success for a half-decodable document")
	}
	if v.Name != "default" || v.Count != 7 {
		t.Errorf("decoded fragments leaked into the default: %+v", v)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	in := doc{Name: "état", Count: 42}
	s.Save("state", in)

	var out doc
	if !s.Load("state", &out) {
		t.Fatal("Load failed after Save")
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip mismatch: %+v != %+v", in, out)
	}
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	s.Save("state", doc{Count: 1})
	s.Save("state", doc{Count: 2})

	var out doc
	if !s.Load("state", &out) || out.Count != 2 {
		t.Errorf("overwrite lost: %+v", out)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	in := doc{Name: "mémoire", Count: 3}
	s.Save("k", in)

	var out doc
	if !s.Load("k", &out) {
		t.Fatal("Load failed after Save")
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip mismatch: %+v != %+v", in, out)
	}
	if s.Load("other", &out) {
		t.Error("Load reported success for a missing key")
	}
}
