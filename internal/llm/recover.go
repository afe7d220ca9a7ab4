package llm

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/stages-iut/convention-extractor/constants"
	"github.com/stages-iut/convention-extractor/internal/convention"
)

// Recovery patterns, one pair per record field: a JSON-shaped `"field":
// "value"` pattern, and a loosely-labeled plain-text pattern built from the
// shared label vocabulary. Compiled once at package init.
var (
	jsonFieldPatterns  = map[string]*regexp.Regexp{}
	plainLabelPatterns = map[string][]*regexp.Regexp{}
)

func init() {
	for _, name := range convention.FieldNames {
		jsonFieldPatterns[name] = regexp.MustCompile(
			`"` + name + `"\s*:\s*"((?:[^"\\]|\\.)*)"`)
		for _, label := range convention.FieldLabels[name] {
			// \b is ASCII-only, so guard with a non-letter class instead:
			// "nom" must not match inside "prénom".
			plainLabelPatterns[name] = append(plainLabelPatterns[name], regexp.MustCompile(
				`(?i)(?:^|[^\p{L}])`+regexp.QuoteMeta(label)+`\s*[:=]\s*"?([^"\n,;{}]+)`))
		}
	}
}

// ParseReply converts a raw model reply into a record. Primary path: locate a
// {...} span and parse it as JSON; a parsed object is trusted as the complete
// record. Fallback: per-field regex recovery over the raw text, so a model
// that partially ignored the JSON-only instruction still yields fields. Never
// fails: the worst reply produces an empty record.
func ParseReply(reply string, logger *slog.Logger) (*convention.Record, []byte) {
	if logger == nil {
		logger = slog.Default()
	}

	if span, ok := ExtractJSONSpan(reply); ok {
		sanitized, _, err := NormalizeAndSanitizeJSON(span, logger)
		if err == nil {
			if vErr := ValidateJSONAgainstSchema(BuildConventionJSONSchema(), sanitized); vErr != nil {
				// advisory only: a parsed object is still used as-is
				logger.Warn("llm.parse.schema_mismatch", "error", vErr)
			}
			rec := &convention.Record{}
			err = json.Unmarshal(sanitized, rec)
			if err == nil {
				return rec, sanitized
			}
		}
		logger.Warn("llm.parse.json_span_unusable", "error", err)
	}

	logger.Warn("llm.parse.fallback_regex_recovery", "reply_len", len(reply))
	return RecoverFields(reply), nil
}

// ExtractJSONSpan finds the first balanced {...} span in s that is valid
// JSON. Markdown fences and surrounding prose are tolerated.
func ExtractJSONSpan(s string) ([]byte, bool) {
	for start := strings.IndexByte(s, '{'); start >= 0 && start < len(s); {
		depth := 0
		inString := false
		escaped := false
		for i := start; i < len(s); i++ {
			c := s[i]
			if escaped {
				escaped = false
				continue
			}
			if inString {
				switch c {
				case '\\':
					escaped = true
				case '"':
					inString = false
				}
				continue
			}
			switch c {
			case '"':
				inString = true
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					span := s[start : i+1]
					if json.Valid([]byte(span)) {
						return []byte(span), true
					}
					i = len(s) // abandon this span, try the next '{'
				}
			}
		}
		next := strings.IndexByte(s[start+1:], '{')
		if next < 0 {
			break
		}
		start = start + 1 + next
	}
	return nil, false
}

// RecoverFields is the field-by-field second chance: for each record field,
// try the JSON-shaped pattern first and the loose labeled pattern second. An
// unrecoverable field stays absent; the pass never fails as a whole.
func RecoverFields(reply string) *convention.Record {
	rec := &convention.Record{}
	fields := rec.FieldMap()

	for _, name := range convention.FieldNames {
		if m := jsonFieldPatterns[name].FindStringSubmatch(reply); m != nil {
			if v := cleanRecovered(unescapeJSON(m[1])); v != "" {
				*fields[name] = v
				continue
			}
		}
		for _, re := range plainLabelPatterns[name] {
			if m := re.FindStringSubmatch(reply); m != nil {
				if v := cleanRecovered(m[1]); v != "" {
					*fields[name] = v
					break
				}
			}
		}
	}
	return rec
}

// Postprocess applies the same finishing rules as the rule-based path:
// residual DD/MM/YYYY dates become ISO (anything else non-ISO is dropped so
// a populated date is always valid), the subject is truncated, and the
// supervisor name pair goes through the splitting heuristic once.
func Postprocess(rec *convention.Record) {
	fixDate := func(p *string) {
		if *p == "" || convention.IsISODate(*p) {
			return
		}
		if iso, ok := convention.ToISODate(*p); ok {
			*p = iso
		} else {
			*p = ""
		}
	}
	fixDate(&rec.DateDebut)
	fixDate(&rec.DateFin)

	if rec.Sujet != "" {
		rec.Sujet = convention.TruncateRunes(convention.CollapseSpaces(rec.Sujet), constants.MaxSujetLen)
	}
	if rec.Description != "" {
		rec.Description = convention.TruncateRunes(rec.Description, constants.MaxDescriptionLen)
	}

	rec.NomTuteur, rec.PrenomTuteur = convention.SplitName(rec.NomTuteur, rec.PrenomTuteur)
}

func unescapeJSON(s string) string {
	if unquoted, err := strconv.Unquote(`"` + s + `"`); err == nil {
		return unquoted
	}
	return s
}

func cleanRecovered(s string) string {
	s = convention.CollapseSpaces(s)
	s = strings.Trim(s, `"' `)
	if strings.EqualFold(s, "null") {
		return ""
	}
	return s
}
