// @focus: #sys { term }
// Package terminal provides direct ANSI output for 24-bit colored glyph streams.
//
// Features:
//   - True color (24-bit) foreground sequences written without allocation
//   - Batched output: a Stream buffers everything and flushes once on Close
//   - Guaranteed color reset on Close, including after write errors
//   - Emergency reset for panic recovery
//   - TTY detection and window size for diagnostics
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
