package ports

// Codec selects the compression scheme the transcoder is invoked with.
type Codec string

const (
	// CodecH264 is a lossy, broadly compatible codec (libx264, slow preset,
	// CRF 18, 4:2:0). It is the default and the fallback for unrecognized
	// selectors.
	CodecH264 Codec = "h264"
	// CodecProRes is a high-quality intermediate codec (ProRes 422 HQ,
	// 4:2:2 at 10 bit).
	CodecProRes Codec = "prores"
	// CodecFFV1 is a lossless codec (level 3, range coder with large-context
	// modeling, 4:2:0).
	CodecFFV1 Codec = "ffv1"
)

// TranscodeConfig describes one encoding session. Width, Height and FPS must
// be strictly positive; Codec falls back to h264 when unrecognized.
type TranscodeConfig struct {
	OutputPath string
	Width      int
	Height     int
	FPS        int
	Codec      Codec
}

// Transcoder launches an external encoding process that consumes raw RGBA
// frames and produces an encoded video file.
type Transcoder interface {
	// Start spawns the transcoder process for the given configuration and
	// returns a session handle ready to accept frames.
	Start(cfg TranscodeConfig) (TranscodeSession, error)
}

// TranscodeSession is the handle to one running transcoder process. The
// session owns the process and its input pipe exclusively; it is not safe
// for concurrent use.
type TranscodeSession interface {
	// WriteFrame writes one complete raw frame to the process input. It
	// blocks while the operating system accepts the bytes; back-pressure
	// from a slow transcoder stalls the caller. The buffer is either
	// written in full or an error is returned.
	WriteFrame(data []byte) error

	// CloseInput closes the input pipe. This is the sole end-of-stream
	// signal: the transcoder flushes its encoder state and finalizes the
	// output container when it observes it.
	CloseInput() error

	// Wait blocks until the process exits. A non-zero exit status is
	// reported as an error.
	Wait() error
}
