package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var koPrinter = message.NewPrinter(language.Korean)

// FormatNumber groups digits the Korean way: 1000000 -> "1,000,000"
func FormatNumber(n int64) string {
	return koPrinter.Sprintf("%d", n)
}

// FormatWon appends the won suffix: 50000 -> "50,000원"
func FormatWon(n int64) string {
	return FormatNumber(n) + "원"
}
