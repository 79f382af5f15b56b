package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSourceIndexServesLines(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.py")
	if err := os.WriteFile(src, []byte("def main():\n    print(1)\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	prev := validateSourceDir
	validateSourceDir = dir
	defer func() { validateSourceDir = prev }()

	idx := newSourceIndex()
	sf := idx.lookup(filepath.Join("trees", "main.py.json"), 3)
	if sf == nil {
		t.Fatal("source not found")
	}

	path, ok := idx.Path(3)
	if !ok || filepath.Base(path) != "main.py" {
		t.Errorf("Path(3) = %q, %v", path, ok)
	}
	line, ok := idx.Line(3, 2)
	if !ok || line != "    print(1)" {
		t.Errorf("Line(3, 2) = %q, %v", line, ok)
	}
	if _, ok := idx.Line(3, 99); ok {
		t.Error("line 99 is out of range, want no text")
	}
	if _, ok := idx.Path(9); ok {
		t.Error("unclaimed id resolved to a path")
	}

	// A second tree naming the same source reuses the loaded file.
	if again := idx.lookup(filepath.Join("other", "main.py.msgpack"), 4); again != sf {
		t.Error("repeated source was loaded twice")
	}
}

func TestSourcePathForStripsEncodingExt(t *testing.T) {
	prev := validateSourceDir
	validateSourceDir = "src"
	defer func() { validateSourceDir = prev }()

	got := sourcePathFor(filepath.Join("out", "lib.rb.json"))
	if want := filepath.Join("src", "lib.rb"); got != want {
		t.Errorf("sourcePathFor = %q, want %q", got, want)
	}
}
