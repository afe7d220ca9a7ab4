package llm

import (
	"context"

	"github.com/stages-iut/convention-extractor/internal/convention"
)

// ConventionExtractor is the interface callers of the model-assisted path
// depend on. The []byte is the JSON the record was decoded from (sanitized
// model output, or nil when the recovery pass had to be used), kept for
// caller-side audit.
type ConventionExtractor interface {
	ExtractConvention(ctx context.Context, text string) (*convention.Record, []byte, error)
}
