// Package sanitize cleans user-supplied text before it is embedded in a prompt.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// instructionPatterns detects instruction-like phrases in user material.
var instructionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore\s+(all\s+|the\s+)?(previous|prior|above)\s+instructions`),
	regexp.MustCompile(`(?i)disregard\s+(all\s+|the\s+)?(previous|prior|above)\s+(instructions|rules)`),
	regexp.MustCompile(`(?i)reveal\s+(your\s+|the\s+)?system\s+prompt`),
}

// Field normalises a single-line field such as a topic: NFC form, control
// characters turned into spaces, outer whitespace trimmed. The value is
// otherwise embedded exactly as supplied.
func Field(s string) string {
	s = norm.NFC.String(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// Text normalises multi-line material such as a document to summarise or a
// chat question. Newlines and tabs survive; other control characters are
// dropped and instruction-like phrases are neutralised.
func Text(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return Neutralize(strings.TrimSpace(s))
}

// Neutralize wraps instruction-like phrases in 【】 so the model reads them as
// quoted material. Phrases that are already wrapped are left alone, so
// applying it twice changes nothing.
func Neutralize(s string) string {
	for _, pattern := range instructionPatterns {
		locs := pattern.FindAllStringIndex(s, -1)
		if len(locs) == 0 {
			continue
		}
		var sb strings.Builder
		last := 0
		for _, loc := range locs {
			start, end := loc[0], loc[1]
			sb.WriteString(s[last:start])
			if strings.HasSuffix(s[:start], "【") && strings.HasPrefix(s[end:], "】") {
				sb.WriteString(s[start:end])
			} else {
				sb.WriteString("【" + s[start:end] + "】")
			}
			last = end
		}
		sb.WriteString(s[last:])
		s = sb.String()
	}
	return s
}
