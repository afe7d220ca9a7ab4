package convention

import (
	"strings"

	"github.com/stages-iut/convention-extractor/constants"
)

// Extract runs the rule-based cascades over text and returns a best-effort
// record. It never fails: a field no pattern matched is simply left absent.
func Extract(text string) *Record {
	rec := &Record{}
	text = Normalize(text)
	if text == "" {
		return rec
	}
	fields := rec.FieldMap()

	for _, c := range documentCascades {
		if v, ok := c.Apply(text); ok {
			*fields[c.Field] = v
		}
	}

	// Student sub-fields are matched inside section 1 when the document has
	// numbered sections, against the whole text otherwise.
	studentText := text
	if m := reStudentSection.FindStringSubmatch(text); m != nil {
		studentText = m[1]
	}
	for _, c := range studentCascades {
		if v, ok := c.Apply(studentText); ok {
			*fields[c.Field] = v
		}
	}
	extractStudentName(rec, studentText, text)

	extractProgram(rec, text)
	extractSujet(rec, text)
	extractDescription(rec, text)
	extractDates(rec, text)
	extractOrganization(rec, text)
	extractSupervisor(rec, text)
	extractReferent(rec, text)

	return rec
}

func extractStudentName(rec *Record, studentText, fullText string) {
	// labeled pair inside the student section first
	for _, re := range reStudentNames[:2] {
		if m := re.FindStringSubmatch(studentText); m != nil {
			rec.Nom, rec.Prenom = SplitName(m[1], m[2])
			return
		}
	}
	// then the STAGIAIRE signature block at the end of the document
	if m := reStudentNames[2].FindStringSubmatch(fullText); m != nil {
		rec.Nom, rec.Prenom = SplitName(m[1], m[2])
	}
}

func extractProgram(rec *Record, text string) {
	// "B3 INFORMATIQUE"-style compound wins: the department is derived from
	// the spelled-out mention next to the level code.
	if m := reLevelCompound.FindStringSubmatch(text); m != nil {
		rec.Niveau = strings.ToUpper(m[1])
		if d, ok := constants.CanonicalDepartment(m[2]); ok {
			rec.Departement = string(d)
		}
	}
	if rec.Departement == "" {
		if m := reDepartement.FindStringSubmatch(text); m != nil {
			rec.Departement = strings.ToUpper(m[1])
		} else if m := reDeptBare.FindStringSubmatch(text); m != nil {
			rec.Departement = m[1]
		}
	}
	if rec.Niveau == "" {
		if m := reNiveau.FindStringSubmatch(text); m != nil && constants.IsLevel(m[1]) {
			rec.Niveau = strings.ToUpper(m[1])
		}
	}
}

func extractSujet(rec *Record, text string) {
	for _, re := range reSujet {
		if m := re.FindStringSubmatch(text); m != nil {
			if v := CollapseSpaces(m[1]); v != "" {
				rec.Sujet = TruncateRunes(v, constants.MaxSujetLen)
				return
			}
		}
	}
}

func extractDescription(rec *Record, text string) {
	var desc string
	for _, re := range reDescription {
		if m := re.FindStringSubmatch(text); m != nil {
			desc = m[1]
			break
		}
	}
	if desc == "" {
		// last resort: whatever sits between the subject marker and the
		// dates marker.
		if m := reDescBetween.FindStringSubmatch(text); m != nil {
			desc = m[1]
		}
	}
	if desc == "" {
		return
	}
	desc = rePercentMarker.ReplaceAllString(desc, " ")
	if v := CollapseSpaces(desc); v != "" {
		rec.Description = TruncateRunes(v, constants.MaxDescriptionLen)
	}
}

func extractDates(rec *Record, text string) {
	for _, re := range reDatePairs {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		// each bound converts independently; a malformed bound stays absent
		if iso, ok := ToISODate(m[1]); ok {
			rec.DateDebut = iso
		}
		if iso, ok := ToISODate(m[2]); ok {
			rec.DateFin = iso
		}
		return
	}
}

func extractOrganization(rec *Record, text string) {
	var window string
	if m := reOrgSection.FindStringSubmatch(text); m != nil {
		window = m[1]
	} else if m := reOrgFallback.FindStringSubmatch(text); m != nil {
		window = m[1]
	}
	if window == "" {
		return
	}
	fields := rec.FieldMap()
	for _, c := range organizationCascades {
		if v, ok := c.Apply(window); ok {
			*fields[c.Field] = v
		}
	}
}

func extractSupervisor(rec *Record, text string) {
	labelIdx := -1
	for _, re := range reTuteurNames {
		if loc := re.FindStringSubmatchIndex(text); loc != nil {
			m := re.FindStringSubmatch(text)
			rec.NomTuteur, rec.PrenomTuteur = SplitName(m[1], m[2])
			labelIdx = loc[0]
			break
		}
	}
	if labelIdx < 0 {
		return
	}

	fields := rec.FieldMap()
	window := sliceFrom(text, labelIdx, 400)
	for _, c := range supervisorCascades {
		if v, ok := c.Apply(window); ok {
			*fields[c.Field] = v
		}
	}

	// second attempt anchored to the resolved surname, for layouts where the
	// contact block sits away from the tutor label
	if rec.NomTuteur == "" {
		return
	}
	if i := strings.Index(text, rec.NomTuteur); i >= 0 && i != labelIdx {
		window = sliceFrom(text, i, 400)
		for _, c := range supervisorCascades {
			if *fields[c.Field] != "" {
				continue
			}
			if v, ok := c.Apply(window); ok {
				*fields[c.Field] = v
			}
		}
	}
}

func extractReferent(rec *Record, text string) {
	loc := reReferentName.FindStringSubmatchIndex(text)
	if loc == nil {
		return
	}
	m := reReferentName.FindStringSubmatch(text)
	rec.NomReferent, rec.PrenomReferent = SplitName(m[1], m[2])

	fields := rec.FieldMap()
	window := sliceFrom(text, loc[1], 200)
	for _, c := range referentCascades {
		if v, ok := c.Apply(window); ok {
			*fields[c.Field] = v
		}
	}
}

// sliceFrom returns the window of text starting at idx, capped at n bytes.
func sliceFrom(text string, idx, n int) string {
	if idx < 0 {
		idx = 0
	}
	end := idx + n
	if end > len(text) {
		end = len(text)
	}
	return text[idx:end]
}
