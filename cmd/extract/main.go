package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/stages-iut/convention-extractor/internal/common"
	"github.com/stages-iut/convention-extractor/internal/llm/openai"
	"github.com/stages-iut/convention-extractor/internal/pipeline"
)

// extract reads convention text from a file (or stdin) and prints the
// pre-fill record as JSON. The binary is a harness around the core; the
// record still needs human review before anything is persisted.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	in := flag.String("in", "", "path to the extracted document text (default: stdin)")
	useModel := flag.Bool("llm", false, "use the model-assisted extractor")
	model := flag.String("model", "", "override OPENAI_MODEL")
	timeout := flag.Duration("timeout", 0, "override OPENAI_TIMEOUT")
	flag.Parse()

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if *model != "" {
		cfg.LLM.Model = *model
	}
	if *timeout > 0 {
		cfg.LLM.Timeout = *timeout
	}

	text, err := readInput(*in)
	if err != nil {
		logger.Error("read input", "error", err)
		os.Exit(1)
	}

	var client *openai.Client
	if *useModel {
		if err := cfg.ValidateLLM(); err != nil {
			logger.Error("llm config", "error", err)
			os.Exit(2)
		}
		client = openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	}

	p := pipeline.New(logger, pipeline.Config{UseModel: *useModel}, client)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	rec, err := p.Run(ctx, text)
	if err != nil {
		// hard failure: the form must be filled manually
		logger.Error("extraction failed", "error", err)
		fmt.Fprintln(os.Stderr, "could not pre-fill automatically, please fill the form manually")
		os.Exit(1)
	}

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		logger.Error("encode record", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func readInput(path string) (string, error) {
	if path == "" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}
