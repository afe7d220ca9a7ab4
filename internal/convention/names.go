package convention

import (
	"regexp"
	"strings"
	"unicode"
)

// Source documents sometimes cram "MARTIN Pierre" into a single field, or put
// the pair in the wrong box. Convention: surnames all-caps, given names
// mixed-case. The patterns below split on that casing signal.
var (
	// all-caps run, then a mixed-case run
	reUpperThenMixed = regexp.MustCompile(
		`^(\p{Lu}[\p{Lu}'’\-]*(?:\s+\p{Lu}[\p{Lu}'’\-]*)*)\s+(\p{Lu}\p{Ll}[\p{Ll}\p{Lu}'’ \-]*)$`)

	// mixed-case run, then an all-caps run (≥2 letters per caps word)
	reMixedThenUpper = regexp.MustCompile(
		`^(\p{Lu}\p{Ll}[\p{Ll}'’\-]*(?:[ \-]\p{Lu}[\p{Ll}'’\-]+)*)\s+(\p{Lu}[\p{Lu}'’\-]+(?:\s+\p{Lu}[\p{Lu}'’\-]+)*)$`)

	reCivility  = regexp.MustCompile(`^(?:M\.|Mme\.?|Mlle\.?|Monsieur|Madame)\s+(.+)$`)
	reUpperRun2 = regexp.MustCompile(`\p{Lu}{2}`)
)

// SplitName resolves a surname/given-name pair from possibly-merged source
// fields. Pure and idempotent: a pair that meets no split trigger is returned
// unchanged. Resolution happens once per source pair; callers must not
// re-split downstream.
func SplitName(nom, prenom string) (string, string) {
	nom = CollapseSpaces(nom)
	prenom = CollapseSpaces(prenom)

	switch {
	case nom != "" && prenom != "":
		// surname field holding "MARTIN Pierre"
		if strings.ContainsRune(nom, ' ') && containsLower(nom) {
			if m := reUpperThenMixed.FindStringSubmatch(nom); m != nil {
				return m[1], m[2]
			}
		}
		// given-name field holding "Pierre MARTIN" or "MARTIN Pierre"
		if strings.ContainsRune(prenom, ' ') && reUpperRun2.MatchString(prenom) {
			if m := reMixedThenUpper.FindStringSubmatch(prenom); m != nil {
				return m[2], m[1]
			}
			if m := reUpperThenMixed.FindStringSubmatch(prenom); m != nil {
				return m[1], m[2]
			}
		}
		return nom, prenom

	case nom != "":
		if n, p, ok := splitSingle(nom); ok {
			return n, p
		}
		return nom, ""

	case prenom != "":
		if n, p, ok := splitSingle(prenom); ok {
			return n, p
		}
		return "", prenom
	}
	return "", ""
}

// splitSingle strips an optional civility title, then tries the two casing
// patterns: all-caps first, mixed-case first. The title is removed before
// matching so it can never end up in the given-name field ("Monsieur Jean"
// is a title plus a given name, not a compound given name).
func splitSingle(s string) (string, string, bool) {
	if m := reCivility.FindStringSubmatch(s); m != nil {
		s = strings.TrimSpace(m[1])
	}
	if m := reUpperThenMixed.FindStringSubmatch(s); m != nil {
		return m[1], m[2], true
	}
	if m := reMixedThenUpper.FindStringSubmatch(s); m != nil {
		return m[2], m[1], true
	}
	return "", "", false
}

func containsLower(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}
