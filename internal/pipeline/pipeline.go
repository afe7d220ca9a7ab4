package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stages-iut/convention-extractor/internal/common"
	"github.com/stages-iut/convention-extractor/internal/convention"
	"github.com/stages-iut/convention-extractor/internal/llm"
)

// Config holds behavior flags for one pipeline instance.
type Config struct {
	// UseModel routes extraction through the model-assisted path. Requires a
	// ConventionExtractor; the default path is offline and deterministic.
	UseModel bool
}

// Pipeline runs classification and one extraction path over document text.
// Stateless between calls; safe for concurrent use.
type Pipeline struct {
	log   *slog.Logger
	cfg   Config
	model llm.ConventionExtractor
}

func New(logger *slog.Logger, cfg Config, model llm.ConventionExtractor) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{log: logger, cfg: cfg, model: model}
}

// Run classifies text and, when accepted, extracts a best-effort record.
// Rejections and transport failures return a typed error; missing fields
// never do — the caller treats the record as a pre-fill needing review.
func (p *Pipeline) Run(ctx context.Context, text string) (*convention.Record, error) {
	rid := uuid.New().String()
	start := time.Now()

	p.log.Info("extract.start",
		"req_id", rid,
		"text_len", len(text),
		"use_model", p.cfg.UseModel && p.model != nil,
	)

	if cls := convention.Classify(text); !cls.Valid {
		p.log.Warn("extract.rejected", "req_id", rid, "reason", cls.Reason)
		cause := common.ErrInvalidDocument
		if cls.Reason == convention.ReasonNoText {
			cause = common.ErrEmptyInput
		}
		return nil, common.NewAppError("INVALID_DOCUMENT", cls.Reason, cause)
	}

	var rec *convention.Record
	if p.cfg.UseModel && p.model != nil {
		var err error
		rec, _, err = p.model.ExtractConvention(ctx, text)
		if err != nil {
			p.log.Error("extract.model_error", "req_id", rid, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds())
			return nil, err
		}
	} else {
		rec = convention.Extract(text)
	}

	p.log.Info("extract.ok",
		"req_id", rid,
		"empty", rec.IsEmpty(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, nil
}
