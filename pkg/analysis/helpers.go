package analysis

import (
	"strings"
	"unicode"
)

// evidenceWindow is how many runes of surrounding context go into an
// issue's evidence snippet on each side of the match.
const evidenceWindow = 10

func isHan(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// snippet returns the match span plus surrounding context, derived from
// the actual rune offsets of the match.
func snippet(runes []rune, start, end int) string {
	lo := start - evidenceWindow
	if lo < 0 {
		lo = 0
	}
	hi := end + evidenceWindow
	if hi > len(runes) {
		hi = len(runes)
	}
	return string(runes[lo:hi])
}

// groupDigits inserts thousands separators from the right:
// "1234567" -> "1,234,567".
func groupDigits(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
