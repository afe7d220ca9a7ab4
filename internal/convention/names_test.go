package convention

import "testing"

func TestSplitName_TrustedPair(t *testing.T) {
	nom, prenom := SplitName("MARTIN", "Pierre")
	if nom != "MARTIN" || prenom != "Pierre" {
		t.Fatalf("got (%q, %q)", nom, prenom)
	}
	// idempotence: a second application must not move anything
	nom2, prenom2 := SplitName(nom, prenom)
	if nom2 != nom || prenom2 != prenom {
		t.Fatalf("second application changed the pair: (%q, %q)", nom2, prenom2)
	}
}

func TestSplitName_MultiWordSurnameNoLowercase(t *testing.T) {
	// spaces but no lowercase letter: no split trigger
	nom, prenom := SplitName("DE LA TOUR", "Anne")
	if nom != "DE LA TOUR" || prenom != "Anne" {
		t.Fatalf("got (%q, %q)", nom, prenom)
	}
}

func TestSplitName_MergedIntoSurnameField(t *testing.T) {
	nom, prenom := SplitName("MARTIN Pierre", "")
	if nom != "MARTIN" || prenom != "Pierre" {
		t.Fatalf("got (%q, %q)", nom, prenom)
	}
}

func TestSplitName_MergedReversedOrder(t *testing.T) {
	nom, prenom := SplitName("", "Pierre MARTIN")
	if nom != "MARTIN" || prenom != "Pierre" {
		t.Fatalf("got (%q, %q)", nom, prenom)
	}
}

func TestSplitName_CivilityPrefix(t *testing.T) {
	cases := []struct {
		in          string
		nom, prenom string
	}{
		{"Madame MARTIN Pierre", "MARTIN", "Pierre"},
		{"M. DURAND Paul", "DURAND", "Paul"},
		{"Monsieur Jean DUPONT", "DUPONT", "Jean"},
		{"Mme Sophie BERNARD", "BERNARD", "Sophie"},
		{"Monsieur Jean-Pierre DUPONT", "DUPONT", "Jean-Pierre"},
	}
	for _, c := range cases {
		nom, prenom := SplitName(c.in, "")
		if nom != c.nom || prenom != c.prenom {
			t.Errorf("SplitName(%q) = (%q, %q), want (%q, %q)", c.in, nom, prenom, c.nom, c.prenom)
		}
	}
}

func TestSplitName_BothFieldsMergedSurname(t *testing.T) {
	// the surname field holds the whole pair; casing resolves it
	nom, prenom := SplitName("DUPONT Marie", "Marie")
	if nom != "DUPONT" || prenom != "Marie" {
		t.Fatalf("got (%q, %q)", nom, prenom)
	}
}

func TestSplitName_GivenNameFieldHoldsPair(t *testing.T) {
	nom, prenom := SplitName("", "MARTIN Pierre")
	if nom != "MARTIN" || prenom != "Pierre" {
		t.Fatalf("got (%q, %q)", nom, prenom)
	}
}

func TestSplitName_UnsplittableSingleField(t *testing.T) {
	// all-caps single token: returned unsplit under its original role
	nom, prenom := SplitName("MARTIN", "")
	if nom != "MARTIN" || prenom != "" {
		t.Fatalf("got (%q, %q)", nom, prenom)
	}
	nom, prenom = SplitName("", "Pierre")
	if nom != "" || prenom != "Pierre" {
		t.Fatalf("got (%q, %q)", nom, prenom)
	}
}

func TestSplitName_AccentedNames(t *testing.T) {
	nom, prenom := SplitName("LEFÈVRE Jérôme", "")
	if nom != "LEFÈVRE" || prenom != "Jérôme" {
		t.Fatalf("got (%q, %q)", nom, prenom)
	}
}

func TestSplitName_Empty(t *testing.T) {
	nom, prenom := SplitName("", "")
	if nom != "" || prenom != "" {
		t.Fatalf("got (%q, %q)", nom, prenom)
	}
}
