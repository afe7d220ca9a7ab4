package convention

import (
	"strings"
	"testing"
	"unicode/utf8"
)

const sampleConvention = `CONVENTION DE STAGE
Année universitaire : 2025/2026

1 - L'ÉTUDIANT
Nom : DUPONT
Prénom : Marie
N° étudiant : 22107345
E-mail : marie.dupont@etu.univ.fr
Formation : B3 INFORMATIQUE

2 - L'ORGANISME D'ACCUEIL
Nom de l'organisme : ACME Solutions
Adresse : 12 rue des Lilas, 54000 Nancy
Téléphone : 03 83 12 34 56
E-mail : contact@acme.fr
Représenté par : Jean MOREAU
Qualité du signataire : Directeur

3 - LE STAGE
SUJET DE STAGE : Développement d'une application web de suivi des conventions
Dates : du 05/01/2026 au 28/02/2026
ACTIVITÉS CONFIÉES :
60% : Développement backend
40% : Tests et documentation

4 - ENCADREMENT
Nom et prénom du tuteur de stage : MARTIN Pierre
Fonction : Chef de projet
Téléphone : 06 12 34 56 78
E-mail : pierre.martin@acme.fr
Enseignant référent : BERNARD Sophie
E-mail : sophie.bernard@univ.fr
`

func TestExtract_FullDocument(t *testing.T) {
	rec := Extract(sampleConvention)

	want := map[string]string{
		"nom":                "DUPONT",
		"prenom":             "Marie",
		"email":              "marie.dupont@etu.univ.fr",
		"numeroEtudiant":     "22107345",
		"anneeUniversitaire": "2025/2026",
		"departement":        "INFO",
		"niveau":             "B3",
		"sujet":              "Développement d'une application web de suivi des conventions",
		"dateDebut":          "2026-01-05",
		"dateFin":            "2026-02-28",
		"nomOrganisme":       "ACME Solutions",
		"adresseOrganisme":   "12 rue des Lilas, 54000 Nancy",
		"telephoneOrganisme": "03 83 12 34 56",
		"emailOrganisme":     "contact@acme.fr",
		"nomSignataire":      "Jean MOREAU",
		"fonctionSignataire": "Directeur",
		"nomTuteur":          "MARTIN",
		"prenomTuteur":       "Pierre",
		"fonctionTuteur":     "Chef de projet",
		"telephoneTuteur":    "06 12 34 56 78",
		"emailTuteur":        "pierre.martin@acme.fr",
		"nomReferent":        "BERNARD",
		"prenomReferent":     "Sophie",
		"emailReferent":      "sophie.bernard@univ.fr",
	}
	fields := rec.FieldMap()
	for name, w := range want {
		if got := *fields[name]; got != w {
			t.Errorf("%s = %q, want %q", name, got, w)
		}
	}
}

func TestExtract_DescriptionStripsPercentMarkers(t *testing.T) {
	rec := Extract(sampleConvention)
	if strings.Contains(rec.Description, "%") {
		t.Errorf("description still carries percent markers: %q", rec.Description)
	}
	if !strings.Contains(rec.Description, "Développement backend") ||
		!strings.Contains(rec.Description, "Tests et documentation") {
		t.Errorf("description lost content: %q", rec.Description)
	}
}

func TestExtract_DatesScenario(t *testing.T) {
	text := `Convention de stage, université, étudiant, tuteur.
Dates : du 05/01/2026 au 28/02/2026`
	rec := Extract(text)
	if rec.DateDebut != "2026-01-05" {
		t.Errorf("dateDebut = %q, want 2026-01-05", rec.DateDebut)
	}
	if rec.DateFin != "2026-02-28" {
		t.Errorf("dateFin = %q, want 2026-02-28", rec.DateFin)
	}
}

func TestExtract_MalformedDateBoundStaysAbsent(t *testing.T) {
	rec := Extract("Dates : du 99/99/2026 au 28/02/2026")
	if rec.DateDebut != "" {
		t.Errorf("malformed start bound should stay absent, got %q", rec.DateDebut)
	}
	if rec.DateFin != "2026-02-28" {
		t.Errorf("dateFin = %q, want 2026-02-28", rec.DateFin)
	}
}

func TestExtract_TuteurScenario(t *testing.T) {
	rec := Extract("Nom et prénom du tuteur de stage : MARTIN Pierre")
	if rec.NomTuteur != "MARTIN" || rec.PrenomTuteur != "Pierre" {
		t.Fatalf("tuteur = (%q, %q), want (MARTIN, Pierre)", rec.NomTuteur, rec.PrenomTuteur)
	}
}

func TestExtract_SujetTruncation(t *testing.T) {
	long := strings.Repeat("a", 150)
	rec := Extract("SUJET DE STAGE : " + long + "\nDates : du 05/01/2026 au 28/02/2026")
	if n := utf8.RuneCountInString(rec.Sujet); n != 100 {
		t.Fatalf("sujet is %d runes, want exactly 100", n)
	}
	if !strings.HasSuffix(rec.Sujet, "…") {
		t.Fatalf("truncated sujet must end with the ellipsis marker: %q", rec.Sujet)
	}

	short := "Refonte du site web"
	rec = Extract("SUJET DE STAGE : " + short + "\nDates : du 05/01/2026 au 28/02/2026")
	if rec.Sujet != short {
		t.Fatalf("short sujet must pass through unchanged, got %q", rec.Sujet)
	}
}

func TestExtract_DescriptionBetweenMarkersFallback(t *testing.T) {
	// no ACTIVITÉS/DESCRIPTION/Missions block: the text between the subject
	// marker and the dates marker is the last resort
	text := `SUJET DE STAGE : Refonte du site
Mise en place du nouveau thème et migration du contenu.
Dates : du 05/01/2026 au 28/02/2026`
	rec := Extract(text)
	if !strings.Contains(rec.Description, "migration du contenu") {
		t.Errorf("fallback description not extracted: %q", rec.Description)
	}
}

func TestExtract_StagiaireBlockFallback(t *testing.T) {
	// no labeled Nom/Prénom pair; the signature block resolves the student
	text := `Fait à Nancy.
Le STAGIAIRE
DURAND Paul`
	rec := Extract(text)
	if rec.Nom != "DURAND" || rec.Prenom != "Paul" {
		t.Fatalf("student = (%q, %q), want (DURAND, Paul)", rec.Nom, rec.Prenom)
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	rec := Extract("   \n  ")
	if !rec.IsEmpty() {
		t.Fatal("empty input must produce an empty record")
	}
}

func TestExtract_NoMatchesProducesEmptyRecordNotError(t *testing.T) {
	rec := Extract("Texte sans aucun champ reconnaissable.")
	if rec == nil {
		t.Fatal("extractor must always return a record")
	}
	if !rec.IsEmpty() {
		t.Fatalf("unexpected fields extracted: %+v", rec)
	}
}

func TestExtract_PhoneCleaning(t *testing.T) {
	text := `2 - L'ORGANISME D'ACCUEIL
Nom de l'organisme : ACME
Téléphone : 03.83.12.34.56 (standard)
3 - LE STAGE`
	rec := Extract(text)
	if strings.ContainsAny(rec.TelephoneOrganisme, ".()") {
		t.Errorf("phone not cleaned: %q", rec.TelephoneOrganisme)
	}
	if rec.TelephoneOrganisme != "0383123456" {
		t.Errorf("telephoneOrganisme = %q, want %q", rec.TelephoneOrganisme, "0383123456")
	}
}
