package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Recorder
		"Session started: %dx%d at %d fps, %s to %s": "セッション開始: %dx%d %d fps, %s → %s",
		"Session finished":                           "セッションが終了しました",

		// Transcoder
		"Spawned %s (pid %d) encoding to %s":   "%s を起動しました (pid %d) → %s",
		"Unknown codec %q, falling back to %s": "不明なコーデック %q のため %s を使用します",

		// Warnings
		"Interrupted, finalizing output...": "中断されました。出力を確定しています...",
	})
}
