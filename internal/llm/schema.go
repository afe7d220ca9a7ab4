package llm

import (
	"github.com/stages-iut/convention-extractor/constants"
	"github.com/stages-iut/convention-extractor/internal/convention"
)

// BuildConventionJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. Passed to the model as a structured-output constraint and used
// locally as an advisory check on the reply. No field is required: absence is
// never an error here.
func BuildConventionJSONSchema() map[string]any {
	props := map[string]any{}
	for _, name := range convention.FieldNames {
		props[name] = map[string]any{"type": []string{"string", "null"}}
	}

	isoDate := map[string]any{"type": []string{"string", "null"}, "pattern": `^\d{4}-\d{2}-\d{2}$`}
	props["dateDebut"] = isoDate
	props["dateFin"] = isoDate
	props["anneeUniversitaire"] = map[string]any{"type": []string{"string", "null"}, "pattern": `^\d{4}/\d{4}$`}
	props["departement"] = map[string]any{"enum": appendNull(constants.DepartmentStrings())}
	props["niveau"] = map[string]any{"enum": appendNull(constants.LevelStrings())}
	props["sujet"] = map[string]any{"type": []string{"string", "null"}, "maxLength": constants.MaxSujetLen}
	props["description"] = map[string]any{"type": []string{"string", "null"}, "maxLength": constants.MaxDescriptionLen}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}

func appendNull(values []string) []any {
	out := make([]any, 0, len(values)+1)
	for _, v := range values {
		out = append(out, v)
	}
	return append(out, nil)
}
