package convention

// Record is the structured output of one extraction call. Every field is
// independently optional; an absent field is the empty string, never an
// error. JSON names are the camelCase labels the form layer binds to.
type Record struct {
	// student
	Nom            string `json:"nom,omitempty"`
	Prenom         string `json:"prenom,omitempty"`
	Email          string `json:"email,omitempty"`
	NumeroEtudiant string `json:"numeroEtudiant,omitempty"`

	// period / program
	AnneeUniversitaire string `json:"anneeUniversitaire,omitempty"` // YYYY/YYYY
	Departement        string `json:"departement,omitempty"`        // INFO, GLT, GEA, TC, MMI
	Niveau             string `json:"niveau,omitempty"`             // B1–B3, M1–M2
	Sujet              string `json:"sujet,omitempty"`              // ≤100 chars
	Description        string `json:"description,omitempty"`        // ≤5000 chars

	// dates, YYYY-MM-DD once populated
	DateDebut string `json:"dateDebut,omitempty"`
	DateFin   string `json:"dateFin,omitempty"`

	// host organization
	NomOrganisme       string `json:"nomOrganisme,omitempty"`
	AdresseOrganisme   string `json:"adresseOrganisme,omitempty"`
	TelephoneOrganisme string `json:"telephoneOrganisme,omitempty"`
	EmailOrganisme     string `json:"emailOrganisme,omitempty"`
	NomSignataire      string `json:"nomSignataire,omitempty"`
	FonctionSignataire string `json:"fonctionSignataire,omitempty"`

	// company-side supervisor
	NomTuteur       string `json:"nomTuteur,omitempty"`
	PrenomTuteur    string `json:"prenomTuteur,omitempty"`
	TelephoneTuteur string `json:"telephoneTuteur,omitempty"`
	EmailTuteur     string `json:"emailTuteur,omitempty"`
	FonctionTuteur  string `json:"fonctionTuteur,omitempty"`

	// academic referent
	NomReferent    string `json:"nomReferent,omitempty"`
	PrenomReferent string `json:"prenomReferent,omitempty"`
	EmailReferent  string `json:"emailReferent,omitempty"`
}

// FieldNames lists the JSON field names in declaration order. Shared by the
// prompt builder, the JSON-Schema builder and the reply-recovery pass.
var FieldNames = []string{
	"nom", "prenom", "email", "numeroEtudiant",
	"anneeUniversitaire", "departement", "niveau", "sujet", "description",
	"dateDebut", "dateFin",
	"nomOrganisme", "adresseOrganisme", "telephoneOrganisme", "emailOrganisme",
	"nomSignataire", "fonctionSignataire",
	"nomTuteur", "prenomTuteur", "telephoneTuteur", "emailTuteur", "fonctionTuteur",
	"nomReferent", "prenomReferent", "emailReferent",
}

// FieldMap exposes the record's fields by JSON name so generic code (the
// recovery pass, tests) can read and assign them without reflection.
func (r *Record) FieldMap() map[string]*string {
	return map[string]*string{
		"nom":                &r.Nom,
		"prenom":             &r.Prenom,
		"email":              &r.Email,
		"numeroEtudiant":     &r.NumeroEtudiant,
		"anneeUniversitaire": &r.AnneeUniversitaire,
		"departement":        &r.Departement,
		"niveau":             &r.Niveau,
		"sujet":              &r.Sujet,
		"description":        &r.Description,
		"dateDebut":          &r.DateDebut,
		"dateFin":            &r.DateFin,
		"nomOrganisme":       &r.NomOrganisme,
		"adresseOrganisme":   &r.AdresseOrganisme,
		"telephoneOrganisme": &r.TelephoneOrganisme,
		"emailOrganisme":     &r.EmailOrganisme,
		"nomSignataire":      &r.NomSignataire,
		"fonctionSignataire": &r.FonctionSignataire,
		"nomTuteur":          &r.NomTuteur,
		"prenomTuteur":       &r.PrenomTuteur,
		"telephoneTuteur":    &r.TelephoneTuteur,
		"emailTuteur":        &r.EmailTuteur,
		"fonctionTuteur":     &r.FonctionTuteur,
		"nomReferent":        &r.NomReferent,
		"prenomReferent":     &r.PrenomReferent,
		"emailReferent":      &r.EmailReferent,
	}
}

// IsEmpty reports whether no field at all was populated.
func (r *Record) IsEmpty() bool {
	for _, p := range r.FieldMap() {
		if *p != "" {
			return false
		}
	}
	return true
}
