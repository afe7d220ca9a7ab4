package convention

import (
	"strings"
)

// Rejection reasons surfaced verbatim to callers for user-facing display.
const (
	ReasonNoText        = "aucun texte exploitable dans le document"
	ReasonNotConvention = "le document ne ressemble pas à une convention de stage"
)

// Classification is the classifier verdict. Reason is empty when Valid.
type Classification struct {
	Valid  bool
	Reason string
}

// mandatoryTerms must ALL be present for the document to qualify at all.
var mandatoryTerms = []string{"convention", "stage"}

// indicatorTerms corroborate the mandatory pair; at least minIndicators of
// them must appear. Requiring all of them would reject legitimate documents
// with unusual phrasing; requiring none would accept anything mentioning
// "stage". Accent-insensitive spellings are listed where documents vary.
var indicatorTerms = [][]string{
	{"universit"},
	{"étudiant", "etudiant"},
	{"entreprise", "organisme"},
	{"tuteur"},
	{"stagiaire"},
	{"période de stage", "periode de stage"},
	{"date de début", "date de debut"},
	{"date de fin"},
}

const minIndicators = 3

// Classify decides whether text is plausibly an internship convention.
// Pure function of the text; no side effects.
func Classify(text string) Classification {
	if strings.TrimSpace(text) == "" {
		return Classification{Valid: false, Reason: ReasonNoText}
	}

	lower := strings.ToLower(text)

	for _, term := range mandatoryTerms {
		if !strings.Contains(lower, term) {
			return Classification{Valid: false, Reason: ReasonNotConvention}
		}
	}

	found := 0
	for _, variants := range indicatorTerms {
		for _, v := range variants {
			if strings.Contains(lower, v) {
				found++
				break
			}
		}
	}
	if found < minIndicators {
		return Classification{Valid: false, Reason: ReasonNotConvention}
	}

	return Classification{Valid: true}
}
