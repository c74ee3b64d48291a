package partialstore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/codingersid/legit-liquid/partialstore"
	"github.com/codingersid/legit-liquid/value"
)

func TestFileStoreReadsPartial(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "greet.liquid"), []byte("hi {{ name }}"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	store := partialstore.NewFileStore(dir, newLang())

	if !store.Contains("greet") {
		t.Fatal("expected Contains to find greet.liquid")
	}
	r, ok := store.TryGet("greet")
	if !ok {
		t.Fatal("expected TryGet to find greet.liquid")
	}
	o := value.NewOrderedObject()
	o.Set("name", value.NewStringValue("bob"))
	if got := renderWith(t, r, value.NewObject(o)); got != "hi bob" {
		t.Errorf("got %q, want %q", got, "hi bob")
	}
}

func TestFileStorePicksUpModification(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.liquid")
	if err := os.WriteFile(path, []byte("one"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	store := partialstore.NewFileStore(dir, newLang())
	empty := value.NewObject(value.NewOrderedObject())

	r, _ := store.TryGet("x")
	if got := renderWith(t, r, empty); got != "one" {
		t.Fatalf("got %q, want %q", got, "one")
	}

	future := time.Now().Add(time.Hour)
	if err := os.WriteFile(path, []byte("two"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	r, _ = store.TryGet("x")
	if got := renderWith(t, r, empty); got != "two" {
		t.Errorf("got %q, want %q after modification", got, "two")
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	store := partialstore.NewFileStore(t.TempDir(), newLang())
	if store.Contains("nosuch") {
		t.Error("expected Contains to report false for a missing file")
	}
	if _, err := store.Get("nosuch"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestFileStoreExtensionOption(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.html"), []byte("A"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	store := partialstore.NewFileStore(dir, newLang(), partialstore.WithExtension("html"))
	if !store.Contains("a") {
		t.Error("expected the .html extension option to resolve a.html")
	}
}
