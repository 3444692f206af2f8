package main

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/tdewolff/test"
)

func TestCollectJSONFilesSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.json")
	test.Error(t, os.WriteFile(path, []byte(`{}`), 0644))

	files, err := collectJSONFiles(path)
	test.Error(t, err)
	test.That(t, len(files) == 1, "expected exactly one file, got", len(files))
	test.That(t, files[0] == path, "expected", path, "got", files[0])
}

func TestCollectJSONFilesDirectory(t *testing.T) {
	dir := t.TempDir()
	test.Error(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	test.Error(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{}`), 0644))
	test.Error(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte(`x`), 0644))
	test.Error(t, os.WriteFile(filepath.Join(dir, "nested", "c.json"), []byte(`[]`), 0644))

	files, err := collectJSONFiles(dir)
	test.Error(t, err)
	sort.Strings(files)

	want := []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "nested", "c.json"),
	}
	sort.Strings(want)
	test.That(t, len(files) == len(want), "expected", want, "got", files)
	for i := range want {
		test.That(t, files[i] == want[i], "expected", want[i], "got", files[i])
	}
}
