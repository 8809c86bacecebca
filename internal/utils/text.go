package utils

import (
	"strings"
	"unicode/utf8"
)

// CleanText trims the input and drops NUL bytes and invalid UTF-8, neither of
// which a Postgres text column accepts.
func CleanText(input string) string {
	if strings.Contains(input, "\x00") || !utf8.ValidString(input) {
		input = strings.ToValidUTF8(input, "")
		input = strings.ReplaceAll(input, "\x00", "")
	}
	return strings.TrimSpace(input)
}
