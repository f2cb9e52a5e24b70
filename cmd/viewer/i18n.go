// Package main provides localization for the framepipe-viewer CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		"Render each incoming frame record in a window.": "受信した各フレームレコードをウィンドウに表示します。",
		"Copy stdin to stdout (pass-through / tee).":     "標準入力を標準出力へコピーします（パススルー / tee）。",
	})
}
