// Package main provides localization for the framecast CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Commands
		"Encode a synthetic test pattern to a video file.": "合成テストパターンを動画ファイルにエンコード",
		"Inspect an encoded output file.":                  "エンコード済み出力ファイルを検査",
		"Show version information.":                        "バージョン情報を表示",

		// Runtime messages
		"Recording %dms of %s to %s...": "%dms の %s を %s に記録中...",
		"Encoded %d frames":             "%d フレームをエンコードしました",
		"Output saved to %s":            "出力を %s に保存しました",

		// Probe output
		"File: %s":          "ファイル: %s",
		"Codec: %s":         "コーデック: %s",
		"Dimensions: %dx%d": "解像度: %dx%d",
		"Frames: %d":        "フレーム数: %d",
		"Faststart: %t":     "ファストスタート: %t",
		"Fragmented: %t":    "フラグメント化: %t",

		// Version command
		"framecast version %s": "framecast バージョン %s",
	})
}
