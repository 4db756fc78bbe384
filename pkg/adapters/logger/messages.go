package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Rendering %s wallpaper (%dx%d)...": "%s 壁紙をレンダリング中 (%dx%d)...",
		"Wallpaper saved to %s":             "壁紙を %s に保存しました",
		"Render completed in %d ms":         "レンダリングが %d ms で完了しました",
		"Mode not set, picked %s":           "モード未指定のため %s を選択しました",
		"Gradient variant not set, picked %s": "グラデーション種別未指定のため %s を選択しました",
		"Extracting colors from cover":      "カバー画像から色を抽出中",
		"Colors: %s / %s":                   "色: %s / %s",
		"Interrupted, shutting down...":     "中断されました。シャットダウン中...",

		// Palette
		"Quantizer failed, using histogram: %v":   "量子化に失敗したためヒストグラムを使用します: %v",
		"Quantizer found no colors, using histogram": "量子化で色が見つからないためヒストグラムを使用します",
		"Extracted %s / %s from %d swatches":      "%[3]d 色の候補から %[1]s / %[2]s を抽出しました",

		// Stages
		"Composing %s on %dx%d with %s / %s":      "%s を %dx%d に合成中 (%s / %s)",
		"Linear gradient %s -> %s over %d rows":   "線形グラデーション %s -> %s (%d 行)",
		"Radial gradient: %d rings, stroke %.0f px": "放射グラデーション: %d リング, 線幅 %.0f px",
		"Waveform: %d bars, scaled to %dx%d":      "波形: %d 本, %dx%d に縮小",
		"Rendered %d lines in %s (%dx%d)":         "%d 行を %s で描画しました (%dx%d)",
		"Squeezing text layer from %d to %d px":   "テキストレイヤーを %d から %d px に縮小",

		// Adapters
		"Fetching cover %s":                       "カバー画像を取得中 %s",
		"Cover cache hit: %s":                     "カバー画像のキャッシュを使用: %s",
		"Wrote %d bytes to %s":                    "%d バイトを %s に書き込みました",

		// Warnings
		"Debug output failed: %s":                 "デバッグ出力に失敗しました: %s",

		// Errors
		"Render failed: %s":                       "レンダリングに失敗しました: %s",
		"Nothing written: %s":                     "何も書き込みませんでした: %s",
		"Failed to write output: %s":              "出力の書き込みに失敗しました: %s",
	})
}
