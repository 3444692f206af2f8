// Package core implements lighterjson's in-place JSON minification
// engine: a single pass over a mutable byte buffer that strips
// insignificant whitespace, canonicalizes string escapes, and
// rewrites numbers to their shortest exact (or rounded) decimal form.
//
// The core package has no I/O dependency. Argument parsing, directory
// traversal, and opening/mmapping/truncating files are the caller's
// job (see cmd/lighterjson).
package core

// Minify rewrites data in place and returns the length of the valid
// minified prefix; bytes beyond that length are leftover garbage from
// the original, longer input and must be discarded by the caller
// (typically via ftruncate on an mmapped file). diags may be nil.
func Minify(data []byte, cfg Config, diags *Diagnostics) int {
	buf := NewBuffer(data)
	d := &driver{buf: buf, cfg: cfg, diags: diags}
	d.run()
	return buf.Finish()
}

// driver is the Value Driver: the top-level dispatch loop plus the
// object/array sub-states that track where a comma or closer is
// expected next.
//
// Grounded on lighterjson.c's do_value/do_object/do_array/
// do_object_label/do_object_colon/do_object_next/do_array_next.
type driver struct {
	buf     *Buffer
	cfg     Config
	diags   *Diagnostics
	stack   nestingStack
	commaOK bool // true once a value has just completed
}

func (d *driver) run() {
	for !d.buf.Done() {
		d.dispatch()
	}
}

func (d *driver) dispatch() {
	c := d.buf.Cur()
	switch {
	case c == '"':
		rewriteString(d.buf, d.diags)
		d.commaOK = true
	case c == '{':
		d.buf.Pass(1)
		d.stack.pushObject()
		d.commaOK = false
		d.consumeObjectLabel()
	case c == '}':
		d.closeContainer(containerObject)
	case c == '[':
		d.buf.Pass(1)
		d.stack.pushArray()
		d.commaOK = false
	case c == ']':
		d.closeContainer(containerArray)
	case c == ',':
		d.comma()
	case c == 't':
		d.matchLiteral("true")
	case c == 'f':
		d.matchLiteral("false")
	case c == 'n':
		d.matchLiteral("null")
	case c == '-' || isDigit(c):
		rewriteNumber(d.buf, d.cfg, d.diags)
		d.commaOK = true
	case c == '\n':
		d.handleNewline()
	default:
		d.buf.Skip(1) // insignificant whitespace or other noise
	}
}

// closeContainer handles '}' or ']'. A closer that doesn't match the
// innermost open container is structural noise and is dropped.
func (d *driver) closeContainer(want containerKind) {
	if d.stack.top() == want {
		d.buf.Pass(1)
		d.stack.pop()
		d.commaOK = true
		return
	}
	d.diags.add(StructuralMismatch, d.buf.Pos(), "unmatched closer")
	d.buf.Skip(1)
}

// comma handles ','. It's only meaningful directly after a completed
// value inside some container; otherwise it's dropped as noise.
func (d *driver) comma() {
	if d.commaOK && !d.stack.empty() {
		d.buf.Pass(1)
		if d.stack.top() == containerObject {
			d.consumeObjectLabel()
		} else {
			d.commaOK = false // next expected token is a value, not another separator
		}
		return
	}
	d.buf.Skip(1)
}

// consumeObjectLabel scans past any whitespace/noise up to the next
// object label (a quoted string) or an empty object's closing '}',
// then past any whitespace/noise up to the label's colon.
func (d *driver) consumeObjectLabel() {
	for !d.buf.Done() {
		switch d.buf.Cur() {
		case '"':
			rewriteString(d.buf, d.diags)
			d.consumeColon()
			return
		case '}':
			d.closeContainer(containerObject)
			return
		default:
			d.buf.Skip(1)
		}
	}
	d.diags.add(UnterminatedConstruct, d.buf.Pos(), "unterminated object")
}

func (d *driver) consumeColon() {
	for !d.buf.Done() {
		if d.buf.Cur() == ':' {
			d.buf.Pass(1)
			d.commaOK = false
			return
		}
		d.buf.Skip(1)
	}
	d.diags.add(UnterminatedConstruct, d.buf.Pos(), "object label without colon")
}

func (d *driver) matchLiteral(lit string) {
	n := len(lit)
	if d.buf.Remaining() >= n && string(d.buf.PeekSlice(n)) == lit {
		d.buf.Pass(n)
		d.commaOK = true
		return
	}
	d.buf.Skip(1)
}

// handleNewline implements the NDJSON modes of Config.Newlines. A
// newline nested inside an open container is always ordinary
// whitespace: NDJSON line boundaries only exist between top-level
// values, never inside one (spec.md §4.6).
func (d *driver) handleNewline() {
	if d.cfg.Newlines == NewlinesOff || !d.stack.empty() {
		d.buf.Skip(1)
		return
	}
	if d.cfg.Newlines == NewlinesNDJSONPreserveBlanks {
		d.buf.Pass(1)
		return
	}
	// NewlinesNDJSON: collapse this run of newlines to at most one,
	// and only emit it if something has already been written (so
	// leading blank lines vanish and a trailing newline is trimmed).
	d.buf.Skip(1)
	for !d.buf.Done() && d.buf.Cur() == '\n' {
		d.buf.Skip(1)
	}
	if !d.buf.Done() && d.buf.WritePos() > 0 {
		d.buf.Emit('\n')
	}
	d.commaOK = false
}
