package llm

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stages-iut/convention-extractor/constants"
)

func TestBuildSystemPrompt_NamesEveryField(t *testing.T) {
	p := BuildSystemPrompt()
	for _, name := range []string{"nom", "prenom", "dateDebut", "dateFin", "emailReferent"} {
		if !strings.Contains(p, name) {
			t.Errorf("system prompt missing field name %q", name)
		}
	}
	if !strings.Contains(p, "INFO") || !strings.Contains(p, "B3") {
		t.Error("system prompt missing vocabulary enums")
	}
}

func TestBuildUserPrompt_ShortTextUnchanged(t *testing.T) {
	got := BuildUserPrompt("texte court")
	if got != "Texte de la convention :\ntexte court" {
		t.Errorf("got %q", got)
	}
}

func TestBuildUserPrompt_Truncates(t *testing.T) {
	long := strings.Repeat("a", constants.MaxPromptChars+500)
	got := BuildUserPrompt(long)
	body := strings.TrimPrefix(got, "Texte de la convention :\n")
	if !strings.HasSuffix(body, constants.Ellipsis) {
		t.Fatal("truncated prompt must end with the ellipsis marker")
	}
	if len(body) != constants.MaxPromptChars+len(constants.Ellipsis) {
		t.Errorf("body length = %d", len(body))
	}
}

func TestBuildUserPrompt_NeverSplitsARune(t *testing.T) {
	long := strings.Repeat("é", constants.MaxPromptChars) // 2 bytes each
	got := BuildUserPrompt(long)
	if !utf8.ValidString(got) {
		t.Fatal("truncation split a multi-byte rune")
	}
}
