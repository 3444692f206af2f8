package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/test"

	"github.com/MegaByte/lighterjson/core"
)

func TestOpenForRewriteShrinksFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.json")
	test.Error(t, os.WriteFile(path, []byte(`{ "a" : 1 }`), 0644))

	data, finish, err := openForRewrite(path)
	test.Error(t, err)

	n := core.Minify(data, core.Config{Precision: core.NoPrecision}, nil)
	test.Error(t, finish(n))

	got, err := os.ReadFile(path)
	test.Error(t, err)
	test.That(t, string(got) == `{"a":1}`, "expected minified contents, got", string(got))
}

func TestOpenForRewriteEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.json")
	test.Error(t, os.WriteFile(path, nil, 0644))

	data, finish, err := openForRewrite(path)
	test.Error(t, err)
	test.That(t, len(data) == 0, "expected empty mapping")
	test.Error(t, finish(0))
}

func TestCheckUTF8BOM(t *testing.T) {
	test.Error(t, checkUTF8BOM([]byte{}))
	test.Error(t, checkUTF8BOM([]byte{'{'}))
	test.Error(t, checkUTF8BOM([]byte{'{', '}'}))
	test.Error(t, checkUTF8BOM([]byte("{}")))
	if checkUTF8BOM([]byte{0, '{', '}'}) == nil {
		t.Fatal("expected rejection of a leading null byte")
	}
}
