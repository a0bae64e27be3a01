package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/poiesic/assessrec/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/xeipuuv/gojsonschema"
)

// Reranker implements ai.Reranker using OpenAI-compatible chat APIs.
type Reranker struct {
	client llms.Model
	schema *gojsonschema.Schema
	logger *slog.Logger
}

// rankingWire matches the JSON structure the LLM is instructed to emit.
type rankingWire struct {
	Ranking []int `json:"ranking"`
}

// newReranker is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newReranker(config *ai.Config) (*Reranker, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ChatHost),
		openai.WithToken("none"),
		openai.WithModel(config.ChatModel),
	)
	if err != nil {
		return nil, err
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(rerankResponseSchema))
	if err != nil {
		return nil, fmt.Errorf("compiling rerank schema: %w", err)
	}

	return &Reranker{
		client: client,
		schema: schema,
		logger: slog.Default().With("component", "openai-reranker"),
	}, nil
}

// NewReranker creates a shortlist reranker using the provided configuration.
//
// Returns ai.Reranker interface to enforce abstraction.
func NewReranker(config *ai.Config) (ai.Reranker, error) {
	return newReranker(config)
}

// Rerank asks the LLM to order the candidates by relevance and returns up to
// k indices into candidates. Out-of-range or duplicate indices from the
// model make the whole response invalid; the caller keeps its own ordering.
func (r *Reranker) Rerank(ctx context.Context, query string, candidates []ai.CandidateSummary, k int) ([]int, error) {
	if len(candidates) == 0 || k <= 0 {
		return nil, nil
	}

	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(buildRerankPrompt(query, candidates, k))},
		},
	}

	var wire rankingWire
	var lastErr error
	for attempt := 0; attempt < maxParseAttempts; attempt++ {
		response, err := r.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			r.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			return nil, fmt.Errorf("model returned no choices")
		}

		raw := repairJSON(extractJSON(response.Choices[0].Content))

		if lastErr = r.validate(raw); lastErr != nil {
			r.logger.Warn("invalid rerank response", "attempt", attempt+1, "err", lastErr)
			continue
		}

		if lastErr = json.Unmarshal([]byte(raw), &wire); lastErr != nil {
			r.logger.Warn("error parsing rerank response", "attempt", attempt+1, "err", lastErr)
			continue
		}

		if lastErr = checkIndices(wire.Ranking, len(candidates)); lastErr != nil {
			r.logger.Warn("rejecting rerank response", "attempt", attempt+1, "err", lastErr)
			continue
		}

		break
	}

	if lastErr != nil {
		r.logger.Error("failed to obtain valid ranking after retries", "err", lastErr)
		return nil, lastErr
	}

	ranking := wire.Ranking
	if len(ranking) > k {
		ranking = ranking[:k]
	}
	return ranking, nil
}

func (r *Reranker) validate(raw string) error {
	result, err := r.schema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return err
	}
	if !result.Valid() {
		return fmt.Errorf("response violates schema")
	}
	return nil
}

// checkIndices rejects rankings that reference candidates out of range or
// more than once.
func checkIndices(ranking []int, n int) error {
	seen := make(map[int]bool, len(ranking))
	for _, idx := range ranking {
		if idx < 0 || idx >= n {
			return fmt.Errorf("index %d out of range [0,%d)", idx, n)
		}
		if seen[idx] {
			return fmt.Errorf("index %d appears more than once", idx)
		}
		seen[idx] = true
	}
	return nil
}
