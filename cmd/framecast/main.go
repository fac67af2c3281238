// Package main provides the CLI entry point for framecast.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/framecast/pkg/adapters/ffmpegcoder"
	"github.com/user/framecast/pkg/adapters/ggsource"
	"github.com/user/framecast/pkg/adapters/logger"
	"github.com/user/framecast/pkg/adapters/mp4probe"
	"github.com/user/framecast/pkg/adapters/osfilesystem"
	"github.com/user/framecast/pkg/config"
	"github.com/user/framecast/pkg/ports"
	"github.com/user/framecast/pkg/recorder"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Record  RecordCmd  `cmd:"" help:"Encode a synthetic test pattern to a video file."`
	Probe   ProbeCmd   `cmd:"" help:"Inspect an encoded output file."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// RecordCmd defines the record subcommand.
type RecordCmd struct {
	// Required arguments
	Output string `arg:"" help:"Output video file path."`

	// Config file
	Config string `type:"path" help:"YAML config file with defaults."`

	// Geometry and timing
	Width      *int `short:"W" help:"Frame width in pixels (default: 640)."`
	Height     *int `short:"H" help:"Frame height in pixels (default: 360)."`
	FPS        *int `short:"r" help:"Frame rate (default: 30)."`
	DurationMs *int `help:"Clip duration in milliseconds (default: 3000)."`

	// Encoding
	Codec      *string `short:"c" help:"Codec: h264, prores or ffv1 (unrecognized values fall back to h264)."`
	FFmpegPath string  `help:"Path to ffmpeg executable (falls back to FFMPEG_PATH env, then system default)."`

	// Pattern style
	BackgroundColor *string `help:"Pattern background color (hex, e.g. #1a1a2e)."`
	AccentColor     *string `help:"Pattern accent color (hex, e.g. #4ade80)."`
	Supersample     *int    `help:"Supersampling factor for the pattern renderer (2 = render at 2x)."`

	// Verification
	Verify bool `help:"Probe the output file after encoding and print a summary."`

	// Logging
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// ProbeCmd defines the probe subcommand.
type ProbeCmd struct {
	Input string `arg:"" help:"Video file to inspect."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("framecast"),
		kong.Description("Encode raw RGBA frame streams into video files through ffmpeg."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the record command.
func (cmd *RecordCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cmd.LogLevel))
	}

	// Stop sending frames on SIGINT/SIGTERM and finalize what we have.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	fs := osfilesystem.New()
	if dir := filepath.Dir(cfg.OutputPath); dir != "" && dir != "." {
		if err := fs.MkdirAll(dir); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	source, err := ggsource.New(cfg.Width, cfg.Height, cfg.FPS, ggsource.Options{
		Background:  config.ParseColor(cfg.BackgroundColor),
		Accent:      config.ParseColor(cfg.AccentColor),
		Supersample: cfg.Supersample,
	})
	if err != nil {
		return err
	}

	rec := recorder.New(ffmpegcoder.New(cfg.FFmpegPath, log), log)

	log.Info(l10n.F("Recording %dms of %s to %s...", cfg.DurationMs, cfg.Codec, cfg.OutputPath))

	if err := rec.Start(ports.TranscodeConfig{
		OutputPath: cfg.OutputPath,
		Width:      cfg.Width,
		Height:     cfg.Height,
		FPS:        cfg.FPS,
		Codec:      ports.Codec(cfg.Codec),
	}); err != nil {
		return err
	}

	total := cfg.DurationMs * cfg.FPS / 1000
	sent := 0
frames:
	for i := 0; i < total; i++ {
		select {
		case <-sigCh:
			log.Warn(l10n.T("Interrupted, finalizing output..."))
			break frames
		default:
		}

		buf, err := source.Frame(i)
		if err != nil {
			_ = rec.Stop()
			return fmt.Errorf("render frame %d: %w", i, err)
		}
		if err := rec.SendFrame(buf); err != nil {
			_ = rec.Stop()
			return fmt.Errorf("send frame %d: %w", i, err)
		}
		sent++
	}

	if err := rec.Stop(); err != nil {
		return err
	}

	log.Info(l10n.F("Encoded %d frames", sent))
	log.Info(l10n.F("Output saved to %s", cfg.OutputPath))

	if cmd.Verify {
		info, err := mp4probe.File(cfg.OutputPath)
		if err != nil {
			return fmt.Errorf("verify output: %w", err)
		}
		printProbe(cfg.OutputPath, info)
	}

	return nil
}

// buildConfig merges the config file (if any) with CLI overrides.
func (cmd *RecordCmd) buildConfig() (config.Config, error) {
	cfg := config.Defaults()
	if cmd.Config != "" {
		loaded, err := config.LoadFromFile(cmd.Config)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	cfg.OutputPath = cmd.Output
	if cmd.Width != nil {
		cfg.Width = *cmd.Width
	}
	if cmd.Height != nil {
		cfg.Height = *cmd.Height
	}
	if cmd.FPS != nil {
		cfg.FPS = *cmd.FPS
	}
	if cmd.DurationMs != nil {
		cfg.DurationMs = *cmd.DurationMs
	}
	if cmd.Codec != nil {
		cfg.Codec = *cmd.Codec
	}
	if cmd.FFmpegPath != "" {
		cfg.FFmpegPath = cmd.FFmpegPath
	}
	if cmd.BackgroundColor != nil {
		cfg.BackgroundColor = *cmd.BackgroundColor
	}
	if cmd.AccentColor != nil {
		cfg.AccentColor = *cmd.AccentColor
	}
	if cmd.Supersample != nil {
		cfg.Supersample = *cmd.Supersample
	}

	return cfg, nil
}

// Run executes the probe command.
func (cmd *ProbeCmd) Run() error {
	info, err := mp4probe.File(cmd.Input)
	if err != nil {
		return err
	}
	printProbe(cmd.Input, info)
	return nil
}

func printProbe(path string, info *mp4probe.Info) {
	fmt.Println(l10n.F("File: %s", path))
	fmt.Println(l10n.F("Codec: %s", info.Codec))
	fmt.Println(l10n.F("Dimensions: %dx%d", info.Width, info.Height))
	fmt.Println(l10n.F("Frames: %d", info.FrameCount))
	fmt.Println(l10n.F("Faststart: %t", info.FastStart))
	fmt.Println(l10n.F("Fragmented: %t", info.Fragmented))
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("framecast version %s", version))
	return nil
}
