package convention

import (
	"regexp"
	"strings"
)

const emailPattern = `([A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,})`

// Cascade is the ordered pattern list for one record field. Patterns are
// tried in order against the relevant text window; the first one whose
// capture group matches wins. Later patterns exist for alternate phrasings
// and layouts. The tables are built once at init and never mutated.
type Cascade struct {
	Field    string
	Patterns []*regexp.Regexp
	Clean    func(string) string
}

// Apply walks the cascade and returns the first cleaned, non-empty capture.
func (c Cascade) Apply(text string) (string, bool) {
	for _, re := range c.Patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			v := CollapseSpaces(m[1])
			if c.Clean != nil {
				v = c.Clean(v)
			}
			if v != "" {
				return v, true
			}
		}
	}
	return "", false
}

func cleanAcademicYear(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "-", "/")
}

// documentCascades run against the whole normalized text (or the student
// window when one is found).
var documentCascades = []Cascade{
	{
		Field: "anneeUniversitaire",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)ann[ée]e\s+universitaire\s*:?\s*(\d{4}\s*[/\-]\s*\d{4})`),
			regexp.MustCompile(`(?i)\bann[ée]e\s*:?\s*(\d{4}\s*[/\-]\s*\d{4})`),
		},
		Clean: cleanAcademicYear,
	},
	{
		Field: "numeroEtudiant",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)n(?:°|um[ée]ro)\s*(?:d['’])?\s*[ée]tudiant(?:\(e\))?\s*:?\s*([A-Za-z0-9]+)`),
			regexp.MustCompile(`(?i)num\s*\.?\s*[ée]tudiant\s*:?\s*([A-Za-z0-9]+)`),
		},
	},
}

// studentCascades run against the student section when one is found, the
// whole document otherwise.
var studentCascades = []Cascade{
	{
		Field: "email",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:e-?mail|courriel)\s*(?:de\s+l['’][ée]tudiant(?:\(e\))?)?\s*:?\s*` + emailPattern),
			regexp.MustCompile(emailPattern),
		},
	},
}

// organizationCascades run only inside the host-organization window to avoid
// cross-contamination with the student or supervisor sections.
var organizationCascades = []Cascade{
	{
		Field: "nomOrganisme",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:nom|raison\s+sociale)\s*(?:de\s+l['’]organisme)?\s*:\s*([^\n]+)`),
			regexp.MustCompile(`(?i)organisme\s*:\s*([^\n]+)`),
		},
	},
	{
		Field: "adresseOrganisme",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)adresse\s*(?:du\s+si[èe]ge(?:\s+social)?)?\s*:\s*([^\n]+)`),
		},
	},
	{
		Field: "telephoneOrganisme",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)t[ée]l(?:[ée]phone)?\s*\.?\s*:\s*([0-9+][0-9 ()./+\-]{7,})`),
		},
		Clean: CleanPhone,
	},
	{
		Field: "emailOrganisme",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:e-?mail|courriel)\s*:?\s*` + emailPattern),
		},
	},
	{
		Field: "nomSignataire",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)repr[ée]sent[ée]e?\s+par\s*:?\s*([^\n,(]+)`),
			regexp.MustCompile(`(?i)signataire\s*:\s*([^\n]+)`),
		},
	},
	{
		Field: "fonctionSignataire",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:qualit[ée]|fonction)\s*(?:du\s+signataire)?\s*:\s*([^\n]+)`),
		},
	},
}

// supervisorCascades run inside the tutor window (anchored to the tutor
// label, or to the resolved surname as a second attempt).
var supervisorCascades = []Cascade{
	{
		Field: "telephoneTuteur",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)t[ée]l(?:[ée]phone)?\s*\.?\s*:\s*([0-9+][0-9 ()./+\-]{7,})`),
		},
		Clean: CleanPhone,
	},
	{
		Field: "emailTuteur",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:e-?mail|courriel)\s*:?\s*` + emailPattern),
			regexp.MustCompile(emailPattern),
		},
	},
	{
		Field: "fonctionTuteur",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)fonction\s*(?:du\s+tuteur)?\s*:\s*([^\n]+)`),
		},
	},
}

// referentCascades run inside the referent window.
var referentCascades = []Cascade{
	{
		Field: "emailReferent",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:e-?mail|courriel)\s*:?\s*` + emailPattern),
			regexp.MustCompile(emailPattern),
		},
	},
}

// Section windows. Organization sub-fields are matched only inside their
// window; name-pair and date patterns below capture two groups each.
var (
	reStudentSection = regexp.MustCompile(`(?is)\n\s*1\s*[-–]\s*L['’][ÉE]TUDIANT(.+?)(?:\n\s*\d\s*[-–]|\z)`)
	reOrgSection     = regexp.MustCompile(`(?is)\n\s*\d\s*[-–]\s*L['’]ORGANISME\s+D['’]ACCUEIL(.+?)(?:\n\s*\d\s*[-–]|\z)`)
	reOrgFallback    = regexp.MustCompile(`(?is)ORGANISME\s+D['’]ACCUEIL(.+?)(?:\n\s*\d\s*[-–]|\z)`)

	// student name: same-line pair, split-line pair, then the STAGIAIRE
	// signature block at the end of the document.
	reStudentNames = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^\s*nom\s*:\s*([^\n:]+?)\s+pr[ée]nom\s*:\s*([^\n]+)`),
		regexp.MustCompile(`(?im)^\s*nom\s*:\s*([^\n]+)\n\s*pr[ée]nom\s*:\s*([^\n]+)`),
		regexp.MustCompile(`STAGIAIRE\s*:?\s*\n?\s*(\p{Lu}[\p{Lu}'’\-]+(?:\s+\p{Lu}[\p{Lu}'’\-]+)*)\s+(\p{Lu}\p{Ll}[\p{Ll}'’\-]*)`),
	}

	// supervisor name: three phrasings, most specific first.
	reTuteurNames = []*regexp.Regexp{
		regexp.MustCompile(`(?i:nom\s+et\s+pr[ée]nom\s+du\s+tuteur\s+de\s+stage\s*:?)\s*(\p{Lu}[\p{Lu}'’\-]+)\s+([\p{L}'’\-]+)`),
		regexp.MustCompile(`(?i:tuteur\s+de\s+stage\s*:)\s*(\p{Lu}[\p{Lu}'’\-]+)\s+([\p{L}'’\-]+)`),
		regexp.MustCompile(`(?i:(?:ma[îi]tre\s+de\s+stage|tuteur\s+(?:en\s+)?entreprise)\s*:?)\s*(\p{Lu}[\p{Lu}'’\-]+)\s+([\p{L}'’\-]+)`),
	}

	reReferentName = regexp.MustCompile(`(?i:enseignant\s+r[ée]f[ée]rent\s*:?)\s*(\p{Lu}[\p{Lu}'’\-]+)\s+([\p{L}'’\-]+)`)

	// "Dates : du D1 au D2", tolerant of intervening text between the label
	// and the bounds; loose "du D1 au D2" as fallback.
	reDatePairs = []*regexp.Regexp{
		regexp.MustCompile(`(?is)\bdates?\s*:.{0,80}?\bdu\s+(\d{1,2}/\d{1,2}/\d{4}).{0,80}?\bau\s+(\d{1,2}/\d{1,2}/\d{4})`),
		regexp.MustCompile(`(?i)\bdu\s+(\d{1,2}/\d{1,2}/\d{4})\s+au\s+(\d{1,2}/\d{1,2}/\d{4})`),
	}

	// "B3 INFORMATIQUE"-style compound: level code then department mention.
	reLevelCompound = regexp.MustCompile(`(?i)\b(B[1-3]|M[1-2])\s+(INFORMATIQUE|INFO|GLT|GEA|TC|MMI|LOGISTIQUE\w*|MULTIM[ÉE]DIA\w*|TECHNIQUES?\s+DE\s+COMMERCIALISATION)`)
	reDepartement   = regexp.MustCompile(`(?i)\bd[ée]partement\s*:?\s*(INFO|GLT|GEA|TC|MMI)\b`)
	reDeptBare      = regexp.MustCompile(`\b(INFO|GLT|GEA|TC|MMI)\b`)
	reNiveau        = regexp.MustCompile(`(?i)\b(B[1-3]|M[1-2])\b`)

	// subject window, up to the dates marker.
	reSujet = []*regexp.Regexp{
		regexp.MustCompile(`(?is)SUJET\s+DE\s+STAGE\s*:?\s*(.+?)\s*(?:\n\s*dates?\s*:|\z)`),
		regexp.MustCompile(`(?i)sujet\s*:\s*([^\n]+)`),
	}

	// description, three descending-priority phrasings.
	reDescription = []*regexp.Regexp{
		regexp.MustCompile(`(?is)ACTIVIT[ÉE]S\s+CONFI[ÉE]ES\s*:?\s*(.+?)(?:\n\s*\d\s*[-–]\s|\z)`),
		regexp.MustCompile(`(?is)\bDESCRIPTION\s*:?\s*(.+?)(?:\n\s*\d\s*[-–]\s|\z)`),
		regexp.MustCompile(`(?is)\b(?:missions?|t[âa]ches)\s*(?:confi[ée]es)?\s*:?\s*(.+?)(?:\n\s*\d\s*[-–]\s|\z)`),
	}
	// last resort: the text between the subject marker and the dates marker.
	reDescBetween = regexp.MustCompile(`(?is)SUJET\s+DE\s+STAGE\s*:?[^\n]*\n(.+?)\n\s*dates?\s*:`)

	// leading "60% :"-style workload markers inside descriptions.
	rePercentMarker = regexp.MustCompile(`(?m)(?:^|\s)\d{1,3}\s*%\s*:?\s*`)
)

// FieldLabels maps each record field to the loosely-labeled spellings the
// reply-recovery pass accepts when the model ignored the JSON instruction.
// Accent-less variants are listed because model output is inconsistent.
var FieldLabels = map[string][]string{
	"nom":                {"nom de l'étudiant", "nom de l'etudiant", "nom"},
	"prenom":             {"prénom", "prenom"},
	"email":              {"e-mail", "email", "courriel"},
	"numeroEtudiant":     {"numéro étudiant", "numero etudiant", "n° étudiant"},
	"anneeUniversitaire": {"année universitaire", "annee universitaire"},
	"departement":        {"département", "departement"},
	"niveau":             {"niveau"},
	"sujet":              {"sujet de stage", "sujet"},
	"description":        {"description", "activités confiées", "missions"},
	"dateDebut":          {"date de début", "date de debut", "début du stage"},
	"dateFin":            {"date de fin", "fin du stage"},
	"nomOrganisme":       {"nom de l'organisme", "organisme d'accueil", "organisme", "entreprise"},
	"adresseOrganisme":   {"adresse de l'organisme", "adresse"},
	"telephoneOrganisme": {"téléphone de l'organisme", "telephone", "téléphone", "tél"},
	"emailOrganisme":     {"e-mail de l'organisme", "email de l'organisme"},
	"nomSignataire":      {"représenté par", "represente par", "signataire"},
	"fonctionSignataire": {"qualité du signataire", "fonction du signataire"},
	"nomTuteur":          {"nom du tuteur", "tuteur de stage", "tuteur"},
	"prenomTuteur":       {"prénom du tuteur", "prenom du tuteur"},
	"telephoneTuteur":    {"téléphone du tuteur", "telephone du tuteur"},
	"emailTuteur":        {"e-mail du tuteur", "email du tuteur"},
	"fonctionTuteur":     {"fonction du tuteur"},
	"nomReferent":        {"enseignant référent", "enseignant referent", "référent"},
	"prenomReferent":     {"prénom du référent", "prenom du referent"},
	"emailReferent":      {"e-mail du référent", "email du referent"},
}
