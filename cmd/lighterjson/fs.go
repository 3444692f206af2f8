package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// collectJSONFiles expands path into the list of regular files lighterjson
// should rewrite in place. A file is returned as-is; a directory is walked
// recursively and every regular file whose name ends in ".json" is
// collected, mirroring do_dir/do_file of the original lighterjson.c (which
// chdir's into each subdirectory and string-matches the ".json" suffix)
// with the idiomatic filepath.WalkDir instead of chdir-based recursion.
func collectJSONFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".json") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", path, err)
	}
	return files, nil
}
