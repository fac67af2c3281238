// Package ffmpegcoder drives an external ffmpeg process over a stdin pipe.
package ffmpegcoder

import (
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/user/framecast/pkg/ports"
)

// Transcoder implements ports.Transcoder by spawning ffmpeg with raw RGBA
// input on stdin.
type Transcoder struct {
	binaryPath string // explicit override; empty means resolve
	log        ports.Logger
}

// New creates a Transcoder. binaryPath may be empty, in which case the
// binary is resolved via FFMPEG_PATH and the platform defaults.
func New(binaryPath string, log ports.Logger) *Transcoder {
	return &Transcoder{
		binaryPath: binaryPath,
		log:        log.WithComponent("ffmpeg"),
	}
}

// Start validates the configuration, resolves the ffmpeg binary and spawns
// it with stdin piped and stdout/stderr discarded.
func (t *Transcoder) Start(cfg ports.TranscodeConfig) (ports.TranscodeSession, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid frame geometry %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.FPS <= 0 {
		return nil, fmt.Errorf("invalid frame rate %d", cfg.FPS)
	}
	if cfg.OutputPath == "" {
		return nil, fmt.Errorf("output path is empty")
	}

	path := ResolveFFmpegPath(t.binaryPath)
	if path == "" {
		return nil, fmt.Errorf("ffmpeg binary not found: install ffmpeg or set FFMPEG_PATH")
	}

	if _, known := profiles[cfg.Codec]; !known {
		t.log.Debug("Unknown codec %q, falling back to %s", string(cfg.Codec), string(ports.CodecH264))
	}

	cmd := exec.Command(path, buildArgs(cfg)...)
	// Stdout and Stderr stay nil so the process writes to the null device
	// rather than inheriting our streams.

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg input pipe unavailable: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("spawn ffmpeg: %w", err)
	}

	t.log.Debug("Spawned %s (pid %d) encoding to %s", path, cmd.Process.Pid, cfg.OutputPath)

	return &Session{cmd: cmd, stdin: stdin}, nil
}

// Session is the handle to one running ffmpeg process: the process itself
// and the write end of its stdin pipe.
type Session struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

// WriteFrame writes one raw frame to ffmpeg's stdin. The buffer is flushed
// in full; a short write without an error is reported as io.ErrShortWrite.
func (s *Session) WriteFrame(data []byte) error {
	n, err := s.stdin.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("write to ffmpeg stdin: %w", err)
	}
	return nil
}

// CloseInput closes the stdin pipe. ffmpeg flushes its encoder state and
// finalizes the output container when it sees end-of-stream.
func (s *Session) CloseInput() error {
	return s.stdin.Close()
}

// Wait blocks until ffmpeg exits and translates a non-zero exit status into
// an error.
func (s *Session) Wait() error {
	err := s.cmd.Wait()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("ffmpeg exited with status %d", exitErr.ExitCode())
	}
	return fmt.Errorf("wait for ffmpeg: %w", err)
}

// Ensure the adapter implements the ports
var (
	_ ports.Transcoder       = (*Transcoder)(nil)
	_ ports.TranscodeSession = (*Session)(nil)
)
