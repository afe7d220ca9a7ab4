package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/stages-iut/convention-extractor/internal/convention"
)

// NormalizeAndSanitizeJSON
// - Renames known field synonyms (nomEntreprise -> nomOrganisme)
// - Drops null/empty values
// - Coerces numeric values to strings (numeroEtudiant often comes back as a number)
// - Removes unknown keys (strict additionalProperties = false friendliness)
// - Trims every remaining string
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)
	renamed := func(from, to string) {
		if v, ok := m[from]; ok {
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->"+to)
		}
	}

	// 1) rename synonyms the model likes to produce
	renamed("nomEntreprise", "nomOrganisme")
	renamed("adresseEntreprise", "adresseOrganisme")
	renamed("telephoneEntreprise", "telephoneOrganisme")
	renamed("dateDeDebut", "dateDebut")
	renamed("dateDeFin", "dateFin")
	renamed("numEtudiant", "numeroEtudiant")

	known := make(map[string]struct{}, len(convention.FieldNames))
	for _, name := range convention.FieldNames {
		known[name] = struct{}{}
	}

	for k, v := range maps.Clone(m) {
		// 2) remove unknown keys
		if _, ok := known[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
			continue
		}
		// 3) drop nulls, coerce scalars, trim strings
		switch t := v.(type) {
		case nil:
			delete(m, k)
			dropped = append(dropped, k+"(null)")
		case float64:
			if t == float64(int64(t)) {
				m[k] = fmt.Sprintf("%d", int64(t))
			} else {
				m[k] = fmt.Sprintf("%v", t)
			}
		case bool:
			delete(m, k)
			dropped = append(dropped, k+"(type)")
		case string:
			s := strings.TrimSpace(t)
			if s == "" || strings.EqualFold(s, "null") {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			} else {
				m[k] = s
			}
		default:
			// arrays/objects have no place in a flat record
			delete(m, k)
			dropped = append(dropped, k+"(type)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}
