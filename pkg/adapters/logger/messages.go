package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Reader
		"Reading %s":                        "%s を読み込み中",
		"Reading from standard input":       "標準入力から読み込み中",
		"Read %d bytes":                     "%d バイトを読み込みました",
		"Decoded %s image: %dx%d":           "%s 画像をデコードしました: %dx%d",
		"Resizing to %dx%d":                 "%dx%d へリサイズ中",
		"Emitted frame record for %s":       "%s のフレームレコードを出力しました",

		// Writer
		"No output FILES provided; frames will not be saved": "出力ファイルが指定されていません。フレームは保存されません",
		"Saved frame %d to %s":              "フレーム %d を %s に保存しました",
		"Skipping %s: %s":                   "%s をスキップします: %s",
		"Processed %d frames":               "%d フレームを処理しました",

		// Viewer
		"Viewer started":                    "ビューアを開始しました",
		"Displaying frame %d (%dx%d)":       "フレーム %d を表示中 (%dx%d)",
		"Input stream closed":               "入力ストリームが終了しました",

		// Shared stream handling
		"Skipping malformed record: %s":     "不正なレコードをスキップします: %s",
		"Stdin read error: %s":              "標準入力の読み込みエラー: %s",

		// Errors
		"Failed to fetch source: %s":        "ソースの取得に失敗しました: %s",
		"Failed to decode image: %s":        "画像のデコードに失敗しました: %s",
		"Failed to encode %s: %s":           "%s のエンコードに失敗しました: %s",
		"Failed to write %s: %s":            "%s の書き込みに失敗しました: %s",
	})
}
