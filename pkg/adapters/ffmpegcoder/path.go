package ffmpegcoder

import (
	"os"
	"os/exec"
	"runtime"
)

// ResolveFFmpegPath resolves the ffmpeg executable path in the following order:
// 1. If explicitPath is non-empty, use it
// 2. If the FFMPEG_PATH environment variable is set, use it
// 3. Fall back to PATH lookup and per-platform default locations
//
// An empty result means no ffmpeg binary could be located.
func ResolveFFmpegPath(explicitPath string) string {
	// 1. Explicit path from the caller
	if explicitPath != "" {
		return explicitPath
	}

	// 2. FFMPEG_PATH environment variable
	if envPath := os.Getenv("FFMPEG_PATH"); envPath != "" {
		return envPath
	}

	// 3. System defaults
	return findSystemFFmpeg()
}

// findSystemFFmpeg searches for ffmpeg in PATH and the common install
// locations per platform.
func findSystemFFmpeg() string {
	var candidates []string

	switch runtime.GOOS {
	case "darwin":
		candidates = []string{
			"ffmpeg",
			"/opt/homebrew/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
		}
	case "linux":
		candidates = []string{
			"ffmpeg",
			"/usr/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
		}
	case "windows":
		candidates = []string{
			"ffmpeg.exe",
			`C:\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files\ffmpeg\bin\ffmpeg.exe`,
		}
	default:
		candidates = []string{"ffmpeg"}
	}

	for _, candidate := range candidates {
		if path := resolveExecutable(candidate); path != "" {
			return path
		}
	}

	return ""
}

// resolveExecutable checks if the given path/name exists as an executable.
// Full paths are stat'ed; bare command names are looked up in PATH.
func resolveExecutable(nameOrPath string) string {
	if len(nameOrPath) > 0 && (nameOrPath[0] == '/' || (len(nameOrPath) > 1 && nameOrPath[1] == ':')) {
		if _, err := os.Stat(nameOrPath); err == nil {
			return nameOrPath
		}
		return ""
	}

	if path, err := exec.LookPath(nameOrPath); err == nil {
		return path
	}

	return ""
}
