package recorder

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionActive is returned by Start when a session is already
	// installed.
	ErrSessionActive = errors.New("encoding session already active")

	// ErrNoSession is returned by SendFrame and Stop when no session is
	// installed.
	ErrNoSession = errors.New("no active encoding session")
)

// FrameSizeError reports a frame buffer whose length does not match the
// session geometry. The frame is rejected before any I/O so the pipe framing
// stays intact.
type FrameSizeError struct {
	Got      int
	Expected int
}

func (e *FrameSizeError) Error() string {
	return fmt.Sprintf("frame size mismatch: got %d bytes, expected %d", e.Got, e.Expected)
}
