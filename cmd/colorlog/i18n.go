// Package main provides localization for the colorlog CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Translate legacy colour codes into ANSI escapes": "旧式のカラーコードをANSIエスケープに変換",

		// Translate command
		"Translate text, or each line of stdin, to ANSI":  "テキストまたは標準入力の各行をANSIに変換",
		"Remove colour codes instead of translating them": "変換せずにカラーコードを除去",

		// Log command
		"Decorate a message and write it to the configured sink": "メッセージを装飾して設定された出力先へ書き込む",
		"YAML configuration file":                                "YAML設定ファイル",
		"Prefix placed before every message":                     "すべてのメッセージの前に付けるプレフィックス",
		"Log level (debug, info, warn, error)":                   "ログレベル（debug, info, warn, error）",
		"Colour mode (auto, always, never)":                      "カラーモード（auto, always, never）",
		"Output (console, file, slog, quiet)":                    "出力先（console, file, slog, quiet）",
		"Log file path for file output":                          "ファイル出力時のログファイルパス",
		"Error text attached to the message":                     "メッセージに添付するエラーテキスト",
		"Message is required":                                    "メッセージが必要です",

		// Codes command
		"List the supported colour and format codes": "対応しているカラーコードと書式コードを一覧表示",
		"Do not render samples":                      "サンプルを表示しない",
	})
}
