// Package main provides localization for the framepipe-reader CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		"Decode one image into a line-delimited frame record on stdout.": "1枚の画像をデコードし、行区切りのフレームレコードとして標準出力に書き出します。",
		"Input image file path or URL. Reads stdin when omitted.":        "入力画像のファイルパスまたはURL。省略時は標準入力から読み込みます。",
		"Desired output dimensions in WxH format (e.g. 1920x1080).":      "出力サイズを WxH 形式で指定 (例: 1920x1080)。",
		"Increase diagnostic detail (repeatable).":                       "診断出力を詳細化します（複数回指定可）。",
		"Enable debug output.":                                           "デバッグ出力を有効にします。",
		"Show the license and exit.":                                     "ライセンスを表示して終了します。",
		"Show version information and exit.":                             "バージョン情報を表示して終了します。",
	})
}
