package core

// rewriteString consumes a quoted JSON string starting at buf.Cur()
// == '"', canonicalizing escapes along the way. Unescaped bytes,
// including multi-byte UTF-8 continuation bytes, pass through
// untouched; it is not this function's job to validate UTF-8.
//
// Grounded on lighterjson.c's do_string/do_escape/do_unicode/hex_value.
func rewriteString(buf *Buffer, diags *Diagnostics) {
	buf.Pass(1) // opening quote
	for !buf.Done() {
		switch buf.Cur() {
		case '"':
			buf.Pass(1)
			return
		case '\\':
			rewriteEscape(buf, diags)
		default:
			buf.Pass(1)
		}
	}
	diags.add(UnterminatedConstruct, buf.Pos(), "unterminated string")
}

// rewriteEscape handles buf.Cur() == '\\'.
func rewriteEscape(buf *Buffer, diags *Diagnostics) {
	if buf.Remaining() < 2 {
		// Trailing lone backslash: nothing follows it to interpret.
		buf.Pass(1)
		return
	}
	switch buf.Peek(1) {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		buf.Pass(2)
	case 'u':
		buf.Skip(2) // drop "\u"; the hex digits are consumed by decodeUnicodeEscape
		decodeUnicodeEscape(buf, diags)
	default:
		// Not a recognized escape: lighterjson.c's do_escape default
		// case drops only the backslash (write_data(file, 1)) and lets
		// the byte after it be re-examined by the outer string loop on
		// the next iteration, rather than advancing past it here too.
		buf.Skip(1)
	}
}

const hexLower = "0123456789abcdef"

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// peekHex4 reads four hex digits at buf.read+offset without consuming
// them, for surrogate-pair lookahead.
func peekHex4(buf *Buffer, offset int) (uint32, bool) {
	if buf.Remaining() < offset+4 {
		return 0, false
	}
	var v uint32
	for i := 0; i < 4; i++ {
		d, ok := hexDigit(buf.Peek(offset + i))
		if !ok {
			return 0, false
		}
		v = v<<4 | uint32(d)
	}
	return v, true
}

// decodeUnicodeEscape runs once buf.read points at the four hex digits
// of a \u escape whose leading "\u" has already been dropped.
func decodeUnicodeEscape(buf *Buffer, diags *Diagnostics) {
	v, ok := peekHex4(buf, 0)
	if !ok {
		diags.add(MalformedUnicodeEscape, buf.Pos(), "invalid \\u escape")
		n := buf.Remaining()
		if n > 4 {
			n = 4
		}
		buf.Skip(n)
		return
	}
	buf.Skip(4)

	if v < 0x20 {
		switch v {
		case 0x08:
			buf.Emit('\\')
			buf.Emit('b')
		case 0x0C:
			buf.Emit('\\')
			buf.Emit('f')
		case 0x0A:
			buf.Emit('\\')
			buf.Emit('n')
		case 0x0D:
			buf.Emit('\\')
			buf.Emit('r')
		case 0x09:
			buf.Emit('\\')
			buf.Emit('t')
		default:
			emitUnicodeEscapeLiteral(buf, v)
		}
		return
	}

	if v >= 0xD800 && v <= 0xDBFF {
		// High surrogate: look for a following \u low surrogate to
		// combine into one astral codepoint without consuming it
		// unless it actually matches.
		if buf.Remaining() >= 6 && buf.Peek(0) == '\\' && buf.Peek(1) == 'u' {
			if low, ok := peekHex4(buf, 2); ok && low >= 0xDC00 && low <= 0xDFFF {
				buf.Skip(6)
				cp := 0x10000 + (v-0xD800)<<10 + (low - 0xDC00)
				emitUTF8(buf, cp)
				return
			}
		}
		// Lone high surrogate: tolerated, emitted as a 3-byte UTF-8
		// sequence even though that's not valid UTF-8 on its own,
		// mirroring lighterjson.c's do_unicode tolerance.
		emitUTF8(buf, v)
		return
	}

	emitUTF8(buf, v)
}

func emitUnicodeEscapeLiteral(buf *Buffer, cp uint32) {
	buf.Emit('\\')
	buf.Emit('u')
	buf.Emit(hexLower[(cp>>12)&0xF])
	buf.Emit(hexLower[(cp>>8)&0xF])
	buf.Emit(hexLower[(cp>>4)&0xF])
	buf.Emit(hexLower[cp&0xF])
}

func emitUTF8(buf *Buffer, cp uint32) {
	switch {
	case cp < 0x80:
		buf.Emit(byte(cp))
	case cp < 0x800:
		buf.Emit(byte(0xC0 | (cp>>6)&0x1F))
		buf.Emit(byte(0x80 | cp&0x3F))
	case cp < 0x10000:
		buf.Emit(byte(0xE0 | (cp>>12)&0x0F))
		buf.Emit(byte(0x80 | (cp>>6)&0x3F))
		buf.Emit(byte(0x80 | cp&0x3F))
	default:
		buf.Emit(byte(0xF0 | (cp>>18)&0x07))
		buf.Emit(byte(0x80 | (cp>>12)&0x3F))
		buf.Emit(byte(0x80 | (cp>>6)&0x3F))
		buf.Emit(byte(0x80 | cp&0x3F))
	}
}
