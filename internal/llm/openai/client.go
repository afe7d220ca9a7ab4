package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stages-iut/convention-extractor/internal/common"
	"github.com/stages-iut/convention-extractor/internal/convention"
	"github.com/stages-iut/convention-extractor/internal/llm"
)

// ExtractConvention implements llm.ConventionExtractor with one text-only
// chat/completions call. The document classifier runs first: rejected text
// never produces a request. The request is bounded by cfg.Timeout via
// context cancellation, and a timeout is surfaced as a distinct error from
// other transport failures.
func (c *Client) ExtractConvention(ctx context.Context, text string) (*convention.Record, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(text),
	)

	if cls := convention.Classify(text); !cls.Valid {
		cause := common.ErrInvalidDocument
		if cls.Reason == convention.ReasonNoText {
			cause = common.ErrEmptyInput
		}
		c.log.Warn("llm.extract.rejected", "req_id", rid, "reason", cls.Reason)
		return nil, nil, common.NewAppError("INVALID_DOCUMENT", cls.Reason, cause)
	}

	text = convention.Normalize(text)
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildSystemPrompt()},
			{"role": "user", "content": llm.BuildUserPrompt(text)},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(llm.BuildConventionJSONSchema())},
		},
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, status, err := llm.PostJSON(reqCtx, c.http, endpoint, body, headers, c.log)
	if err != nil {
		elapsed := time.Since(start).Milliseconds()
		if errors.Is(err, context.DeadlineExceeded) || reqCtx.Err() == context.DeadlineExceeded {
			c.log.Error("llm.extract.timeout", "req_id", rid, "elapsed_ms", elapsed)
			return nil, nil, common.NewAppError("LLM_TIMEOUT",
				fmt.Sprintf("no completion within %s", c.cfg.Timeout), common.ErrTimeout)
		}
		c.log.Error("llm.extract.http_error", "req_id", rid, "status", status, "error", err, "elapsed_ms", elapsed)
		return nil, nil, common.NewAppError("LLM_HTTP",
			fmt.Sprintf("completion request failed (status %d)", status), common.ErrTransport)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return nil, nil, common.NewAppError("LLM_DECODE", "malformed completion envelope", common.ErrTransport)
	}
	if len(cc.Choices) == 0 || strings.TrimSpace(cc.Choices[0].Message.Content) == "" {
		c.log.Error("llm.extract.empty_completion", "req_id", rid)
		return nil, nil, common.NewAppError("LLM_EMPTY", "model returned an empty completion", common.ErrEmptyCompletion)
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)

	rec, recJSON := llm.ParseReply(content, c.log)
	llm.Postprocess(rec)

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"empty", rec.IsEmpty(),
		"raw_bytes", len(recJSON),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, recJSON, nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
