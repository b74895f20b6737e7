package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Processing %s":        "%s を処理中",
		"Output saved to %s":   "出力を %s に保存しました",
		"Preview saved to %s":  "プレビューを %s に保存しました",
		"Pipeline completed":   "パイプラインが完了しました",

		// Decode stage
		"Decoding %d bytes of PGM data": "%d バイトのPGMデータをデコード中",
		"Decoded %dx%d image":           "%dx%d の画像をデコードしました",

		// Process stage
		"Applying %d operations":   "%d 個の操作を適用中",
		"Applying operation %d/%d": "操作を適用中 %d/%d",

		// Sketch stage
		"Drawing %d shapes":    "%d 個の図形を描画中",
		"Drawing shape %d/%d":  "図形を描画中 %d/%d",

		// Encode stage
		"Encoding %dx%d image": "%dx%d の画像をエンコード中",
		"Encoded %d bytes":     "%d バイトにエンコードしました",

		// Errors
		"Failed to read input: %s":   "入力の読み込みに失敗しました: %s",
		"Failed to decode image: %s": "画像のデコードに失敗しました: %s",
		"Failed to write output: %s": "出力の書き込みに失敗しました: %s",
	})
}
