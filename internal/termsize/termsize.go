package termsize

import (
	"github.com/containerd/console"
)

// DefaultSize returns the current terminal size, falling back to the
// given defaults when no terminal is attached or querying it fails.
func DefaultSize(w, h int) (width int, height int) {
	width, height = w, h
	defer func() {
		if r := recover(); r != nil {
			return
		}
	}()
	current := console.Current()
	if ws, err := current.Size(); err == nil {
		width, height = int(ws.Width), int(ws.Height)
	}
	return
}

// DefaultWidth returns the current terminal width with a fallback,
// for sizing divider lines.
func DefaultWidth(w int) int {
	width, _ := DefaultSize(w, 0)
	return width
}
