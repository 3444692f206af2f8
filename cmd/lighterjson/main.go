// Command lighterjson minifies JSON files in place: it rewrites each
// input's bytes to their shortest equivalent form and truncates the file
// to the new length.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/tdewolff/argp"

	"github.com/MegaByte/lighterjson/core"
)

// Version is the current lighterjson version.
var Version = "built from source"

// Loggers.
var (
	Error   *log.Logger
	Warning *log.Logger
	Info    *log.Logger
)

var (
	precision    int64
	ndjson       bool
	ndjsonBlanks bool
	quiet        bool
	verbose      int
	watch        bool
	version      bool
)

func main() {
	os.Exit(run())
}

func run() int {
	var inputs []string

	f := argp.New("lighterjson")
	f.AddRest(&inputs, "inputs", "Files or directories to minify in place")
	f.AddOpt(&precision, "p", "precision", "Decimal places to round numbers to, may be negative; unset means no rounding")
	f.AddOpt(&ndjson, "n", "ndjson", "Treat input as newline-delimited JSON, one value per line")
	f.AddOpt(&ndjsonBlanks, "N", "ndjson-preserve-blanks", "Like -n but keeps blank lines between records")
	f.AddOpt(&quiet, "q", "quiet", "Quiet mode, suppress per-file reports")
	f.AddOpt(argp.Count{I: &verbose}, "v", "verbose", "Verbose mode, set twice for more verbosity")
	f.AddOpt(&watch, "w", "watch", "Watch inputs and re-minify on change")
	f.AddOpt(&version, "", "version", "Version")
	f.Parse()

	if version {
		if !quiet {
			fmt.Printf("lighterjson %s\n", Version)
		}
		return 0
	}

	Error = log.New(io.Discard, "", 0)
	Warning = log.New(io.Discard, "", 0)
	Info = log.New(io.Discard, "", 0)
	if !quiet {
		Error = log.New(os.Stderr, "ERROR: ", 0)
		if 0 < verbose {
			Warning = log.New(os.Stderr, "WARNING: ", 0)
		}
		if 1 < verbose {
			Info = log.New(os.Stderr, "INFO: ", 0)
		}
	}

	if ndjson && ndjsonBlanks {
		Error.Println("-n and -N are mutually exclusive")
		return 1
	}
	if len(inputs) == 0 {
		Error.Println("specify at least one file or directory")
		return 1
	}

	cfg := core.Config{Precision: core.NoPrecision, Quiet: quiet}
	if f.IsSet("precision") {
		cfg.Precision = precision
	}
	switch {
	case ndjson:
		cfg.Newlines = core.NewlinesNDJSON
	case ndjsonBlanks:
		cfg.Newlines = core.NewlinesNDJSONPreserveBlanks
	default:
		cfg.Newlines = core.NewlinesOff
	}

	var paths []string
	for _, input := range inputs {
		input = filepath.Clean(input)
		found, err := collectJSONFiles(input)
		if err != nil {
			Error.Println(err)
			return 1
		}
		paths = append(paths, found...)
	}

	fails := 0
	start := time.Now()
	if !watch {
		for _, path := range paths {
			if !processPath(path, cfg) {
				fails++
			}
		}
		if !quiet {
			Info.Println("finished in", time.Since(start))
		}
		if 0 < fails {
			return 1
		}
		return 0
	}

	watcher, err := NewWatcher(true)
	if err != nil {
		Error.Println(err)
		return 1
	}
	defer watcher.Close()
	changes := watcher.Run()
	for _, input := range inputs {
		watcher.AddPath(input)
	}

	for _, path := range paths {
		if !processPath(path, cfg) {
			fails++
		}
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	for changes != nil {
		select {
		case <-c:
			watcher.Close()
		case file, ok := <-changes:
			if !ok {
				changes = nil
				break
			}
			if !processPath(filepath.Clean(file), cfg) {
				fails++
			}
		}
	}
	if 0 < fails {
		return 1
	}
	return 0
}

// processPath minifies a single regular file in place and reports its
// outcome the way the teacher's minify task reports a conversion:
// duration, size before/after, ratio, throughput.
func processPath(path string, cfg core.Config) bool {
	data, finish, err := openForRewrite(path)
	if err != nil {
		Error.Println(err)
		return false
	}

	diags := &core.Diagnostics{}
	start := time.Now()
	before := len(data)
	after := core.Minify(data, cfg, diags)
	dur := time.Since(start)

	if err := finish(after); err != nil {
		Error.Println(err)
		return false
	}

	if 0 < verbose {
		for _, d := range diags.Items() {
			Warning.Printf("%s: %s at offset %d", path, d.Message, d.Offset)
		}
	}

	if !quiet {
		speed := "Inf MB"
		if 0 < dur {
			speed = humanize.Bytes(uint64(float64(before) / dur.Seconds()))
		}
		ratio := 1.0
		if 0 < before {
			ratio = float64(after) / float64(before)
		}
		fmt.Printf("(%9v, %6v, %6v, %5.1f%%, %6v/s) - %s\n",
			dur, humanize.Bytes(uint64(before)), humanize.Bytes(uint64(after)), ratio*100, speed, path)
	}
	return true
}
