// Package recorder owns the single active encoding session and serializes
// all access to it.
package recorder

import (
	"fmt"
	"sync"

	"github.com/user/framecast/pkg/ports"
)

// bytesPerPixel is the size of one interleaved 8-bit RGBA pixel.
const bytesPerPixel = 4

// session is the live state of one recording: the transcoder handle and the
// frame geometry fixed at start.
type session struct {
	sink   ports.TranscodeSession
	width  int
	height int
}

// frameBytes returns the exact buffer length the session accepts per frame.
func (s *session) frameBytes() int {
	return s.width * s.height * bytesPerPixel
}

// Recorder holds at most one active session and gates Start, SendFrame and
// Stop behind a single lock so no two operations observe the session
// concurrently. The lock is held across the pipe write and the process wait;
// frame sends are therefore serialized and never pipelined.
type Recorder struct {
	mu         sync.Mutex
	transcoder ports.Transcoder
	log        ports.Logger
	active     *session
}

// New creates a Recorder that launches sessions through the given
// transcoder.
func New(transcoder ports.Transcoder, log ports.Logger) *Recorder {
	return &Recorder{
		transcoder: transcoder,
		log:        log.WithComponent("recorder"),
	}
}

// Start launches a new encoding session. It fails with ErrSessionActive if a
// session is already installed; a failed launch leaves the slot empty.
func (r *Recorder) Start(cfg ports.TranscodeConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active != nil {
		return ErrSessionActive
	}

	sink, err := r.transcoder.Start(cfg)
	if err != nil {
		return err
	}

	r.active = &session{sink: sink, width: cfg.Width, height: cfg.Height}
	r.log.Debug("Session started: %dx%d at %d fps, %s to %s",
		cfg.Width, cfg.Height, cfg.FPS, string(cfg.Codec), cfg.OutputPath)
	return nil
}

// SendFrame validates one raw RGBA frame against the session geometry and
// writes it to the transcoder input. A size mismatch or a write failure
// leaves the session installed; the caller decides whether to retry another
// frame or stop.
func (r *Recorder) SendFrame(data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active == nil {
		return ErrNoSession
	}

	if expected := r.active.frameBytes(); len(data) != expected {
		return &FrameSizeError{Got: len(data), Expected: expected}
	}

	if err := r.active.sink.WriteFrame(data); err != nil {
		return fmt.Errorf("send frame: %w", err)
	}
	return nil
}

// Stop tears the session down: it removes the session from the slot, closes
// the transcoder input to signal end-of-stream, and blocks until the process
// exits. The slot is freed regardless of the outcome, so a new Start is
// always possible afterwards.
func (r *Recorder) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active == nil {
		return ErrNoSession
	}

	s := r.active
	r.active = nil

	if err := s.sink.CloseInput(); err != nil {
		return fmt.Errorf("close transcoder input: %w", err)
	}
	if err := s.sink.Wait(); err != nil {
		return err
	}

	r.log.Debug("Session finished")
	return nil
}

// Active reports whether a session is currently installed.
func (r *Recorder) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active != nil
}
