package convention

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/stages-iut/convention-extractor/constants"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
	reAnySpace   = regexp.MustCompile(`\s+`)
	rePhoneJunk  = regexp.MustCompile(`[^0-9 +/]`)
)

// Normalize collapses noisy whitespace from the upstream text-layer reader.
// Conservative: keeps line breaks; collapses >2 newlines into a single blank line.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// CollapseSpaces flattens any whitespace run, newlines included, into a
// single space. Used on captured field values.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(reAnySpace.ReplaceAllString(s, " "))
}

// TruncateRunes caps s at max characters. When truncation happens the last
// character is the ellipsis marker, so the result is exactly max runes.
func TruncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + constants.Ellipsis
}

// CleanPhone strips everything but digits, spaces, '+' and '/'.
func CleanPhone(s string) string {
	return CollapseSpaces(rePhoneJunk.ReplaceAllString(s, ""))
}
