// Package main provides localization for the syncwall CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Render desktop wallpapers from the song that is playing.": "再生中の曲からデスクトップ壁紙を生成します。",

		// Commands
		"Render a wallpaper for a song.":   "曲の壁紙をレンダリング",
		"Print the color pair of a cover.": "カバー画像の配色を表示",
		"Show version information.":        "バージョン情報を表示",

		// Render flags
		"Cover image path or http(s) URL.":                              "カバー画像のパスまたは http(s) URL",
		"Song title.":                                                   "曲名",
		"Artist name.":                                                  "アーティスト名",
		"Audio analysis JSON used by the waveform mode.":                "波形モードで使うオーディオ解析JSON",
		"Full lyrics file; the chorus or most repeated lines are shown.": "歌詞ファイル（サビまたは最も繰り返される行を表示）",
		"Track duration for the controller mode (e.g. 3m25s).":          "コントローラーモード用の曲の長さ（例: 3m25s）",
		"Layout mode (albumImage, gradient, blurred, waveform, lyric, controllerImage). Random when empty.": "レイアウトモード（albumImage, gradient, blurred, waveform, lyric, controllerImage）。未指定時はランダム",
		"Gradient variant (linear, radial). Random when empty.":         "グラデーション種別（linear, radial）。未指定時はランダム",
		"Seed for random mode and variant choice.":                      "モードと種別のランダム選択に使うシード",
		"Output PNG path (default: ImageCache/finalImage.png).":         "出力PNGパス（デフォルト: ImageCache/finalImage.png）",
		"YAML configuration file.":                                      "YAML設定ファイル",
		"Write a render summary to file (Markdown format).":             "レンダリングサマリーをファイルに出力（Markdown形式）",
		"Display preset (1080p, 1440p, 4k, ultrawide).":                 "ディスプレイプリセット（1080p, 1440p, 4k, ultrawide）",
		"Display width in pixels.":                                      "ディスプレイの幅（ピクセル）",
		"Display height in pixels.":                                     "ディスプレイの高さ（ピクセル）",
		"Primary color (hex) instead of extracting it from the cover.":   "カバーから抽出する代わりに使うプライマリカラー（16進数）",
		"Secondary color (hex) instead of extracting it from the cover.": "カバーから抽出する代わりに使うセカンダリカラー（16進数）",
		"TrueType font file.":                                           "TrueTypeフォントファイル",
		"Font size in points (default: 40).":                            "フォントサイズ（ポイント、デフォルト: 40）",

		// Debug flags
		"Enable debug output.":                           "デバッグ出力を有効化",
		"Directory for debug output (default: ./debug).": "デバッグ出力のディレクトリ（デフォルト: ./debug）",

		// Logging flags
		"Log level (debug, info, warn, error).": "ログレベル（debug, info, warn, error）",
		"Suppress all log output.":              "全てのログ出力を抑制",

		// Runtime messages
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",
		"Summary saved to %s":           "サマリーを %s に保存しました",
		"Failed to write summary: %s":   "サマリーの書き込みに失敗しました: %s",

		// Extract output
		"Primary:   %s":       "プライマリ:   %s",
		"Secondary: %s":       "セカンダリ:   %s",
		"Text:      %s":       "文字色:       %s",
		"Darker member is %s": "暗い方の色は %s",

		// Version
		"syncwall version %s": "syncwall バージョン %s",
		"modes: %s":           "モード: %s",

		// Summary content
		"Render Summary":  "レンダリングサマリー",
		"Track":           "曲",
		"Render":          "レンダリング",
		"Output":          "出力",
		"Item":            "項目",
		"Value":           "値",
		"Title":           "曲名",
		"Artist":          "アーティスト",
		"Mode":            "モード",
		"Gradient":        "グラデーション",
		"Primary Color":   "プライマリカラー",
		"Secondary Color": "セカンダリカラー",
		"Text Color":      "文字色",
		"File":            "ファイル",
		"Display":         "ディスプレイ",
		"File Size":       "ファイルサイズ",
		"Render Time":     "レンダリング時間",
		"Generated by":    "生成:",
	})
}
