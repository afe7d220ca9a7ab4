package llm

import (
	"strings"
	"unicode/utf8"

	"github.com/stages-iut/convention-extractor/constants"
)

// BuildSystemPrompt composes the extraction instructions: one JSON object,
// the fixed field set, and the same per-field formatting rules the
// rule-based extractor enforces.
func BuildSystemPrompt() string {
	parts := []string{
		"You are a parser for French internship agreements (conventions de stage).",
		"Return ONLY one JSON object that matches the provided JSON Schema. No prose, no markdown.",
		"Field names are exactly: nom, prenom, email, numeroEtudiant, anneeUniversitaire, departement, niveau, sujet, description, dateDebut, dateFin, nomOrganisme, adresseOrganisme, telephoneOrganisme, emailOrganisme, nomSignataire, fonctionSignataire, nomTuteur, prenomTuteur, telephoneTuteur, emailTuteur, fonctionTuteur, nomReferent, prenomReferent, emailReferent.",
		"Dates must be ISO-8601 (YYYY-MM-DD); source documents write them DD/MM/YYYY.",
		"anneeUniversitaire must look like 2025/2026.",
		"departement is one of: " + strings.Join(constants.DepartmentStrings(), ", ") + ". niveau is one of: " + strings.Join(constants.LevelStrings(), ", ") + ".",
		"Keep sujet under 100 characters.",
		"Surnames are the ALL-CAPS part of a name, given names the mixed-case part; split 'MARTIN Pierre' into nom=MARTIN, prenom=Pierre.",
		"Use null for any field the document does not state. Never invent values.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the document text, truncated to a bounded prefix
// to cap cost and latency.
func BuildUserPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Texte de la convention :\n")
	if len(text) > constants.MaxPromptChars {
		cut := constants.MaxPromptChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		b.WriteString(text[:cut])
		b.WriteString(constants.Ellipsis)
	} else {
		b.WriteString(text)
	}
	return b.String()
}
