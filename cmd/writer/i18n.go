// Package main provides localization for the framepipe-writer CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		"Save each incoming frame record to one or more image files.": "受信した各フレームレコードを1つ以上の画像ファイルとして保存します。",
		"Output file(s). Each incoming frame is saved to all of these paths; format is inferred from the extension (.png, .jpg, .bmp, ...).": "出力ファイル。各フレームはすべてのパスに保存され、形式は拡張子から推定されます (.png, .jpg, .bmp など)。",
		"Copy stdin to stdout (pass-through / tee).": "標準入力を標準出力へコピーします（パススルー / tee）。",
	})
}
