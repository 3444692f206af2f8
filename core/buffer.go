package core

// Buffer is the three-cursor compacting byte buffer the whole engine is
// built on: read is the next byte to examine, write is the next position
// to emit into, and flush marks the start of a pending passthrough run
// that hasn't been physically moved down to write yet. The invariant
// 0 <= write <= flush <= read <= end holds at every call boundary.
//
// Because write never runs ahead of read, a downward memmove of a
// pending run is always safe, and so is writing a literal byte at write
// once the bytes it would overwrite have already been read.
type Buffer struct {
	data  []byte
	end   int
	read  int
	write int
	flush int
}

// NewBuffer wraps data for in-place minification. The returned Buffer
// owns no memory of its own; data is rewritten in place.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data, end: len(data)}
}

// Bytes returns the full underlying slice, for components (the Number
// Canonicaliser) that need to scan ahead by absolute offset.
func (b *Buffer) Bytes() []byte { return b.data }

// End returns the exclusive upper bound of valid input.
func (b *Buffer) End() int { return b.end }

// Pos returns the current read offset.
func (b *Buffer) Pos() int { return b.read }

// WritePos returns the current write offset.
func (b *Buffer) WritePos() int { return b.write }

// Done reports whether the read cursor has reached the end of input.
func (b *Buffer) Done() bool { return b.read >= b.end }

// Remaining returns the number of unread bytes.
func (b *Buffer) Remaining() int { return b.end - b.read }

// Cur returns the byte at the read cursor. Callers must check Done first.
func (b *Buffer) Cur() byte { return b.data[b.read] }

// Peek returns the byte at read+offset, or 0 if that position falls
// outside [0, end). Used for bounded lookahead in the String Rewriter
// and Number Canonicaliser.
func (b *Buffer) Peek(offset int) byte {
	i := b.read + offset
	if i < 0 || i >= b.end {
		return 0
	}
	return b.data[i]
}

// PeekSlice returns the n unread bytes starting at read. The caller must
// have already verified Remaining() >= n.
func (b *Buffer) PeekSlice(n int) []byte {
	return b.data[b.read : b.read+n]
}

// Skip advances read by n, dropping any bytes between the old read and
// read+n from the output. It first commits the pending passthrough span
// [flush, read) by compacting it down to write.
func (b *Buffer) Skip(n int) {
	length := b.read - b.flush
	if length > 0 {
		copy(b.data[b.write:b.write+length], b.data[b.flush:b.read])
	}
	b.write += length
	b.read += n
	if b.read > b.end {
		b.read = b.end
	}
	b.flush = b.read
}

// Pass accepts the next k bytes into the output by leaving them in the
// pending passthrough span; they are compacted down on the next Skip.
func (b *Buffer) Pass(k int) {
	b.read += k
	if b.read > b.end {
		b.read = b.end
	}
}

// Emit writes a literal byte at write and advances write. The caller
// must ensure any pending passthrough has already been committed (via a
// prior Skip) so the literal cannot alias unread input.
func (b *Buffer) Emit(c byte) {
	b.data[b.write] = c
	b.write++
}

// EmitBytes writes a literal run of bytes at write, under the same
// aliasing contract as Emit.
func (b *Buffer) EmitBytes(bs []byte) {
	copy(b.data[b.write:], bs)
	b.write += len(bs)
}

// Finish commits any remaining pending passthrough and returns the
// length of the valid minified prefix, i.e. the new file size.
func (b *Buffer) Finish() int {
	b.Skip(0)
	return b.write
}
