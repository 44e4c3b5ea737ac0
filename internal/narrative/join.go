// Sentence joining with punctuation and pacing rules per length tier.
package narrative

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SmartJoin assembles sentences into one string: each sentence is
// capitalized and terminated, then joined with spaces. Detailed narrations
// get paragraph breaks every few sentences for pacing.
func SmartJoin(sentences []string, length Length) string {
	cleaned := make([]string, 0, len(sentences))
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		cleaned = append(cleaned, terminate(capitalize(s)))
	}
	if len(cleaned) == 0 {
		return ""
	}

	if length == LengthDetailed && len(cleaned) > 3 {
		var b strings.Builder
		for i, s := range cleaned {
			if i > 0 {
				if i%3 == 0 {
					b.WriteString("\n\n")
				} else {
					b.WriteString(" ")
				}
			}
			b.WriteString(s)
		}
		return b.String()
	}

	return strings.Join(cleaned, " ")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func terminate(s string) string {
	switch r, _ := utf8.DecodeLastRuneInString(s); r {
	case '.', '!', '?', '…':
		return s
	}
	return s + "."
}
