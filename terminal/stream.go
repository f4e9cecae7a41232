// @lixen: #focus{sys[term,io,output]}
// @lixen: #interact{trigger[output,ansi]}
package terminal

import (
	"bufio"
	"errors"
	"io"
)

// ErrStreamClosed is returned by writes after Close
var ErrStreamClosed = errors.New("terminal: stream closed")

// minStreamBuffer is the floor for the batch buffer size
const minStreamBuffer = 4096

// Stream batches colored glyph output and hands it to the underlying writer
// in a single write on Close. Close always emits the color reset first.
type Stream struct {
	writer  *bufio.Writer
	counter countingWriter

	// Style state for coalescing
	Coalesce  bool
	lastFg    RGB
	lastValid bool

	closed bool
}

// countingWriter tracks what actually reached the underlying writer
type countingWriter struct {
	w      io.Writer
	bytes  int64
	writes int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.bytes += int64(n)
	c.writes++
	return n, err
}

// NewStream creates a stream over w. sizeHint is the expected output size in
// bytes; when it is an upper bound, w receives exactly one write.
func NewStream(w io.Writer, sizeHint int) *Stream {
	if sizeHint < minStreamBuffer {
		sizeHint = minStreamBuffer
	}
	s := &Stream{}
	s.counter.w = w
	s.writer = bufio.NewWriterSize(&s.counter, sizeHint)
	return s
}

// StreamSize returns an upper bound in bytes for cells colored glyphs plus
// newlines separators and the final reset
func StreamSize(cells, newlines int) int {
	return cells*(MaxFgSeqLen+4) + newlines*(MaxFgSeqLen+1) + ResetSeqLen
}

// SetFg queues a foreground color change
// With Coalesce set, a color equal to the previous one is not re-emitted
func (s *Stream) SetFg(fg RGB) error {
	if s.closed {
		return ErrStreamClosed
	}
	if s.Coalesce && s.lastValid && fg == s.lastFg {
		return nil
	}
	writeFgRGB(s.writer, fg)
	s.lastFg = fg
	s.lastValid = true
	return nil
}

// WriteGlyph queues a single rune
func (s *Stream) WriteGlyph(r rune) error {
	if s.closed {
		return ErrStreamClosed
	}
	if r < 0x80 {
		return s.writer.WriteByte(byte(r))
	}
	_, err := s.writer.WriteRune(r)
	return err
}

// Close writes the reset sequence and flushes. Safe to call multiple times;
// only the first call writes.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.writer.Write(csiSGR0)
	s.lastValid = false
	return s.writer.Flush()
}

// Buffered returns the number of bytes queued but not yet written
func (s *Stream) Buffered() int {
	return s.writer.Buffered()
}

// Written returns bytes delivered to the underlying writer
func (s *Stream) Written() int64 {
	return s.counter.bytes
}

// Writes returns how many Write calls reached the underlying writer
func (s *Stream) Writes() int {
	return s.counter.writes
}
