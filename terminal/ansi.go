// @focus: #terminal { ansi }
package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during emission)
var (
	csiSGR0  = []byte("\x1b[0m")
	csiFgRGB = []byte("\x1b[38;2;") // followed by R;G;B;m
)

const (
	// MaxFgSeqLen is the longest foreground sequence: ESC[38;2;255;255;255m
	MaxFgSeqLen = 19
	// ResetSeqLen is the length of ESC[0m
	ResetSeqLen = 4
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeFgRGB writes a complete true color foreground sequence
func writeFgRGB(w *bufio.Writer, fg RGB) {
	w.Write(csiFgRGB)
	writeInt(w, int(fg.R))
	w.WriteByte(';')
	writeInt(w, int(fg.G))
	w.WriteByte(';')
	writeInt(w, int(fg.B))
	w.WriteByte('m')
}

// FgSequence returns the foreground sequence for c as a string
// Convenience for tests and diagnostics; the hot path writes through a Stream
func FgSequence(c RGB) string {
	var b []byte
	b = append(b, csiFgRGB...)
	b = appendInt(b, int(c.R))
	b = append(b, ';')
	b = appendInt(b, int(c.G))
	b = append(b, ';')
	b = appendInt(b, int(c.B))
	return string(append(b, 'm'))
}

// ResetSequence returns the SGR reset sequence
func ResetSequence() string {
	return string(csiSGR0)
}

func appendInt(b []byte, n int) []byte {
	if n >= 100 {
		b = append(b, byte(n/100)+'0')
	}
	if n >= 10 {
		b = append(b, byte(n/10%10)+'0')
	}
	return append(b, byte(n%10)+'0')
}
