package convention

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	reFrenchDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	reISODate    = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

// ToISODate converts a DD/MM/YYYY date into YYYY-MM-DD by direct field
// reorder with zero-padding. Anything malformed (wrong separator,
// non-numeric parts, impossible day/month) reports ok=false; the caller
// leaves the field absent rather than failing.
func ToISODate(s string) (string, bool) {
	m := reFrenchDate.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return "", false
	}
	return fmt.Sprintf("%s-%02d-%02d", m[3], month, day), true
}

// FromISODate is the reverse mapping, YYYY-MM-DD back to DD/MM/YYYY.
func FromISODate(s string) (string, bool) {
	m := reISODate.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("%s/%s/%s", m[3], m[2], m[1]), true
}

// IsISODate reports whether s already has the canonical YYYY-MM-DD shape.
func IsISODate(s string) bool {
	return reISODate.MatchString(s)
}
