package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Level labels
		"DEBUG": "デバッグ",
		"INFO":  "情報",
		"WARN":  "警告",
		"ERROR": "エラー",
	})
}
