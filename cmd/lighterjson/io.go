package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/matryer/try"
)

// checkUTF8BOM reproduces lighterjson.c's guard against non-UTF-8 input: it
// only inspects the first two bytes when the file is longer than two bytes,
// so a 0- or 1-byte file is never rejected by this check.
func checkUTF8BOM(data []byte) error {
	if len(data) > 2 && (data[0] == 0 || data[1] == 0) {
		return errors.New("only UTF-8 input is currently supported")
	}
	return nil
}

// openForRewrite opens path for read-write and memory-maps its contents.
// The returned []byte aliases the mapping directly, the same contract
// core.Minify requires (spec.md §5: "a single contiguous, mutable byte
// region"). The returned finish function must be called exactly once with
// the length core.Minify settled on; it flushes the mapping (msync),
// truncates the file to that length (ftruncate), and closes the handle.
func openForRewrite(path string) ([]byte, func(n int) error, error) {
	var f *os.File
	err := try.Do(func(attempt int) (bool, error) {
		var ferr error
		f, ferr = os.OpenFile(path, os.O_RDWR, 0)
		return attempt < 5, ferr
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		f.Close()
		return []byte{}, func(int) error { return nil }, nil
	}

	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("mmap %s: %w", path, err)
	}

	if err := checkUTF8BOM(m); err != nil {
		m.Unmap()
		f.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	originalSize := int(info.Size())
	finish := func(n int) error {
		if err := m.Flush(); err != nil {
			m.Unmap()
			f.Close()
			return fmt.Errorf("sync %s: %w", path, err)
		}
		if err := m.Unmap(); err != nil {
			f.Close()
			return fmt.Errorf("unmap %s: %w", path, err)
		}
		if n < originalSize {
			if err := f.Truncate(int64(n)); err != nil {
				f.Close()
				return fmt.Errorf("truncate %s: %w", path, err)
			}
		}
		return f.Close()
	}
	return m, finish, nil
}
