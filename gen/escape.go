package gen

import (
	"strconv"
	"strings"
)

// interpretEscapes decodes backslash escape sequences in generated text:
// the single-character escapes \n \t \r \a \b \f \v \0 \\ \' \", plus
// \xHH and \uHHHH code points. Malformed sequences are kept verbatim.
func interpretEscapes(text string) string {
	if !strings.ContainsRune(text, '\\') {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if text[i] != '\\' || i+1 >= len(text) {
			b.WriteByte(text[i])
			i++
			continue
		}
		switch text[i+1] {
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 'a':
			b.WriteByte('\a')
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'v':
			b.WriteByte('\v')
			i += 2
		case '0':
			b.WriteByte(0)
			i += 2
		case '\\', '\'', '"':
			b.WriteByte(text[i+1])
			i += 2
		case 'x':
			if n, ok := parseHex(text, i+2, 2); ok {
				b.WriteByte(byte(n))
				i += 4
			} else {
				b.WriteByte(text[i])
				i++
			}
		case 'u':
			if n, ok := parseHex(text, i+2, 4); ok {
				b.WriteRune(rune(n))
				i += 6
			} else {
				b.WriteByte(text[i])
				i++
			}
		default:
			b.WriteByte(text[i])
			i++
		}
	}
	return b.String()
}

// parseHex parses exactly width hex digits of s starting at from.
func parseHex(s string, from, width int) (uint64, bool) {
	if from+width > len(s) {
		return 0, false
	}
	n, err := strconv.ParseUint(s[from:from+width], 16, 32)
	if err != nil {
		return 0, false
	}
	return n, true
}
