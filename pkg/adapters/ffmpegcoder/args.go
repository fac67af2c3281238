package ffmpegcoder

import (
	"fmt"
	"strconv"

	"github.com/user/framecast/pkg/ports"
)

// profiles maps each codec selector to its encoder argument block.
var profiles = map[ports.Codec][]string{
	ports.CodecH264: {
		"-c:v", "libx264",
		"-preset", "slow",
		"-crf", "18", // visually near-lossless
		"-pix_fmt", "yuv420p",
	},
	ports.CodecProRes: {
		"-c:v", "prores_ks",
		"-profile:v", "3", // ProRes 422 HQ
		"-vendor", "apl0",
		"-pix_fmt", "yuv422p10le",
	},
	ports.CodecFFV1: {
		"-c:v", "ffv1",
		"-level", "3",
		"-coder", "1",
		"-context", "1",
		"-pix_fmt", "yuv420p",
	},
}

// profileFor returns the encoder arguments for the given codec. Unrecognized
// selectors fall back to the h264 profile rather than failing.
func profileFor(codec ports.Codec) []string {
	if args, ok := profiles[codec]; ok {
		return args
	}
	return profiles[ports.CodecH264]
}

// buildArgs assembles the full ffmpeg invocation for one session: raw RGBA
// frames on stdin, the selected codec profile, streaming-friendly metadata
// placement, and the destination path. Existing output files are always
// overwritten.
func buildArgs(cfg ports.TranscodeConfig) []string {
	args := []string{
		"-y", // overwrite

		// Input: uninterpreted RGBA pixels, width*height*4 bytes per frame
		"-f", "rawvideo",
		"-vcodec", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"-r", strconv.Itoa(cfg.FPS),
		"-i", "pipe:0", // read frames from stdin
	}

	args = append(args, profileFor(cfg.Codec)...)
	args = append(args, "-movflags", "+faststart")
	args = append(args, cfg.OutputPath)

	return args
}
