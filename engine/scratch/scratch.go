// Package scratch provides a per-frame byte buffer for building short
// strings (widget labels, numbers) without allocating every frame.
//
// Strings returned by View stay valid until the next Reset. Reset once per
// frame, after everything that holds a view has been drawn.
package scratch

import (
	"strconv"
	"unsafe"
)

type Buffer struct {
	buf []byte
}

func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer length without freeing memory.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

func (b *Buffer) Len() int { return len(b.buf) }
func (b *Buffer) Cap() int { return cap(b.buf) }

// Mark returns a bookmark to later slice the output.
func (b *Buffer) Mark() int { return len(b.buf) }

// Builder appends to the buffer from a mark. Chain calls and finish with View or String.
type Builder struct {
	b    *Buffer
	mark int
}

// F starts a new string at the end of the buffer.
func (b *Buffer) F() Builder { return Builder{b: b, mark: len(b.buf)} }

func (s Builder) Str(v string) Builder {
	s.b.buf = append(s.b.buf, v...)
	return s
}

func (s Builder) Int(v int) Builder {
	s.b.buf = strconv.AppendInt(s.b.buf, int64(v), 10)
	return s
}

func (s Builder) Float(v float32, prec int) Builder {
	s.b.buf = strconv.AppendFloat(s.b.buf, float64(v), 'f', prec, 32)
	return s
}

func (s Builder) Rune(r rune) Builder {
	s.b.buf = append(s.b.buf, string(r)...)
	return s
}

// String copies the built range (allocates).
func (s Builder) String() string { return string(s.b.buf[s.mark:]) }

// View returns a zero-copy string over the built range. Do not keep it past
// the next Reset.
func (s Builder) View() string {
	b := s.b.buf[s.mark:]
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
