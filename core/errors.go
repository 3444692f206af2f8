package core

// DiagnosticKind classifies a tolerated defect encountered while
// minifying. None of these abort minification; the driver always
// produces its best-effort output and records what it had to work
// around.
type DiagnosticKind int

const (
	// MalformedUnicodeEscape marks a \u escape that didn't decode to
	// four valid hex digits.
	MalformedUnicodeEscape DiagnosticKind = iota
	// UnterminatedConstruct marks a string, an object, or an object
	// label's missing colon that ran off the end of the buffer before it
	// closed.
	UnterminatedConstruct
	// StructuralMismatch marks a closer (}, ]) that didn't match the
	// container currently open on the Nesting Stack.
	StructuralMismatch
)

// Diagnostic records one tolerated defect and where it was found.
type Diagnostic struct {
	Kind    DiagnosticKind
	Offset  int
	Message string
}

// Diagnostics collects Diagnostic events for a single Minify call. A
// nil *Diagnostics silently discards everything, so callers that don't
// care about diagnostics can pass nil.
type Diagnostics struct {
	items []Diagnostic
}

func (d *Diagnostics) add(kind DiagnosticKind, offset int, message string) {
	if d == nil {
		return
	}
	d.items = append(d.items, Diagnostic{Kind: kind, Offset: offset, Message: message})
}

// Items returns the diagnostics recorded so far.
func (d *Diagnostics) Items() []Diagnostic {
	if d == nil {
		return nil
	}
	return d.items
}
