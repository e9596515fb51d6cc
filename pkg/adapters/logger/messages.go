package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Sequence resolution
		"Resolved %s: %d frames (%s)": "%s を解決しました: %d フレーム (%s)",
		"No frames found at %s":       "%s にフレームが見つかりません",

		// Playback
		"Playing %d frames at %d fps":   "%d フレームを %d fps で再生中",
		"Playback paused":               "再生を一時停止しました",
		"Playback resumed":              "再生を再開しました",
		"Playback stopped":              "再生を停止しました",
		"Frame changed: %d":             "フレーム変更: %d",
		"Failed to read frame %s: %s":   "フレーム %s の読み込みに失敗しました: %s",
		"Failed to decode frame %s: %s": "フレーム %s のデコードに失敗しました: %s",

		// Export and contact sheet
		"Exporting %d frames to %s":            "%d フレームを %s にエクスポート中",
		"Exported %d frames":                   "%d フレームをエクスポートしました",
		"Rendering contact sheet (%d columns)": "コンタクトシートを描画中 (%d カラム)",
		"Contact sheet saved to %s":            "コンタクトシートを %s に保存しました",

		// Shutdown
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",
	})
}
