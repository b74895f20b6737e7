// Package main provides localization for the pgmtool CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Process grayscale PGM images: point transforms, convolution, shape drawing.": "グレースケールPGM画像を処理: 点変換、畳み込み、図形描画。",

		// Subcommands
		"Apply brightness/contrast adjustment.":        "明るさ/コントラスト調整を適用。",
		"Apply gamma correction.":                      "ガンマ補正を適用。",
		"Apply a convolution kernel.":                  "畳み込みカーネルを適用。",
		"Draw a shape onto the image.":                 "画像に図形を描画。",
		"Extract a rectangular region.":                "矩形領域を抽出。",
		"Subtract one image from another pixel-wise.":  "画像をピクセル単位で減算。",
		"Export a PGM image as a PNG preview.":         "PGM画像をPNGプレビューとして出力。",
		"Compose two images side by side as PNG.":      "2つの画像を並べてPNGとして合成。",
		"Show version information.":                    "バージョン情報を表示。",

		// Common flags
		"Input PGM file path.":                                      "入力PGMファイルパス。",
		"Output PGM file path.":                                     "出力PGMファイルパス。",
		"Output PNG file path.":                                     "出力PNGファイルパス。",
		"YAML config file path.":                                    "YAML設定ファイルパス。",
		"Also write a PNG preview of the result to this path.":      "結果のPNGプレビューもこのパスに書き出す。",
		"Bound the preview's larger dimension (0 = full size).":     "プレビューの長辺を制限（0 = 原寸）。",
		"Log level (debug, info, warn, error).":                     "ログレベル（debug, info, warn, error）。",
		"Suppress all log output.":                                  "すべてのログ出力を抑制。",

		// Operation flags
		"Contrast factor (>1 expands spread, <1 compresses).":          "コントラスト係数（>1で拡大、<1で圧縮）。",
		"Brightness offset added to every pixel.":                      "全ピクセルに加算する明るさオフセット。",
		"Gamma exponent (<1 brightens, >1 darkens, must be > 0).":      "ガンマ指数（<1で明るく、>1で暗く、0より大きいこと）。",
		"Kernel name: a builtin preset or a config-defined kernel.":    "カーネル名: 組み込みプリセットまたは設定定義のカーネル。",
		"Shape to draw (line, circle, rect).":                          "描画する図形（line, circle, rect）。",
		"Grayscale value 0-255 (default from config, 255 otherwise).":  "グレースケール値 0-255（デフォルトは設定から、なければ255）。",
		"Circle radius (negative draws nothing).":                      "円の半径（負の値は何も描画しない）。",

		// Runtime messages
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",
		"pgmtool version %s":            "pgmtool バージョン %s",
	})
}
