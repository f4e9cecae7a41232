package terminal

import (
	"io"
	"os"
)

// EmergencyReset restores default colors after a crash mid-stream
// Call this from panic recovery when the Stream cannot be closed normally
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
