package ffmpegcoder

import (
	"reflect"
	"testing"

	"github.com/user/framecast/pkg/ports"
)

func TestBuildArgs_InputBlock(t *testing.T) {
	args := buildArgs(ports.TranscodeConfig{
		OutputPath: "out.mp4",
		Width:      640,
		Height:     360,
		FPS:        30,
		Codec:      ports.CodecH264,
	})

	wantPrefix := []string{
		"-y",
		"-f", "rawvideo",
		"-vcodec", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", "640x360",
		"-r", "30",
		"-i", "pipe:0",
	}
	if len(args) < len(wantPrefix) {
		t.Fatalf("args too short: %v", args)
	}
	if !reflect.DeepEqual(args[:len(wantPrefix)], wantPrefix) {
		t.Errorf("input block mismatch:\ngot  %v\nwant %v", args[:len(wantPrefix)], wantPrefix)
	}

	// Destination path is the final positional argument.
	if args[len(args)-1] != "out.mp4" {
		t.Errorf("expected output path last, got %v", args[len(args)-1])
	}
}

func TestBuildArgs_CodecProfiles(t *testing.T) {
	tests := []struct {
		name  string
		codec ports.Codec
		want  []string
	}{
		{
			name:  "h264",
			codec: ports.CodecH264,
			want:  []string{"-c:v", "libx264", "-preset", "slow", "-crf", "18", "-pix_fmt", "yuv420p"},
		},
		{
			name:  "prores",
			codec: ports.CodecProRes,
			want:  []string{"-c:v", "prores_ks", "-profile:v", "3", "-vendor", "apl0", "-pix_fmt", "yuv422p10le"},
		},
		{
			name:  "ffv1",
			codec: ports.CodecFFV1,
			want:  []string{"-c:v", "ffv1", "-level", "3", "-coder", "1", "-context", "1", "-pix_fmt", "yuv420p"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := buildArgs(ports.TranscodeConfig{
				OutputPath: "out.mov",
				Width:      64,
				Height:     64,
				FPS:        25,
				Codec:      tt.codec,
			})

			if !containsSequence(args, tt.want) {
				t.Errorf("codec block %v not found in %v", tt.want, args)
			}
			if !containsSequence(args, []string{"-movflags", "+faststart"}) {
				t.Errorf("faststart flag missing in %v", args)
			}
		})
	}
}

func TestBuildArgs_UnknownCodecFallsBackToH264(t *testing.T) {
	known := buildArgs(ports.TranscodeConfig{
		OutputPath: "out.mp4", Width: 64, Height: 64, FPS: 30,
		Codec: ports.CodecH264,
	})
	unknown := buildArgs(ports.TranscodeConfig{
		OutputPath: "out.mp4", Width: 64, Height: 64, FPS: 30,
		Codec: ports.Codec("unknownvalue"),
	})

	if !reflect.DeepEqual(known, unknown) {
		t.Errorf("unknown codec should produce the h264 invocation:\ngot  %v\nwant %v", unknown, known)
	}
}

func TestProfileFor(t *testing.T) {
	if got := profileFor(ports.CodecFFV1); got[1] != "ffv1" {
		t.Errorf("expected ffv1 profile, got %v", got)
	}
	if got := profileFor(ports.Codec("")); got[1] != "libx264" {
		t.Errorf("expected h264 fallback for empty selector, got %v", got)
	}
}

// containsSequence reports whether needle appears as a contiguous
// subsequence of haystack.
func containsSequence(haystack, needle []string) bool {
	if len(needle) == 0 {
		return true
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if reflect.DeepEqual(haystack[i:i+len(needle)], needle) {
			return true
		}
	}
	return false
}
