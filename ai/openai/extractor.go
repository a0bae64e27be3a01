// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/assessrec/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/xeipuuv/gojsonschema"
)

// maxParseAttempts bounds the retry loop for malformed LLM JSON.
const maxParseAttempts = 3

// RequirementExtractor implements ai.RequirementExtractor using
// OpenAI-compatible chat APIs.
type RequirementExtractor struct {
	client llms.Model
	schema *gojsonschema.Schema
	logger *slog.Logger
}

// requirementsWire matches the JSON structure the LLM is instructed to emit.
type requirementsWire struct {
	Skills     []string `json:"skills"`
	SoftSkills []string `json:"soft_skills"`
	TestTypes  []string `json:"test_types"`
	KeyFocus   string   `json:"key_focus"`
}

// newRequirementExtractor is an internal constructor that returns the
// concrete type. Used by Provider to manage the instance.
func newRequirementExtractor(config *ai.Config) (*RequirementExtractor, error) {
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

	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(requirementsResponseSchema))
	if err != nil {
		return nil, fmt.Errorf("compiling requirements schema: %w", err)
	}

	return &RequirementExtractor{
		client: client,
		schema: schema,
		logger: slog.Default().With("component", "openai-extractor"),
	}, nil
}

// NewRequirementExtractor creates a query understanding service using the
// provided configuration.
//
// Returns ai.RequirementExtractor interface to enforce abstraction.
func NewRequirementExtractor(config *ai.Config) (ai.RequirementExtractor, error) {
	return newRequirementExtractor(config)
}

// ExtractRequirements analyzes a hiring query with an LLM and returns the
// structured requirements it expresses. The response is schema-validated
// before use; persistent malformation is an error the caller falls back on.
func (e *RequirementExtractor) ExtractRequirements(ctx context.Context, query string) (*ai.Requirements, error) {
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(buildRequirementsPrompt())},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(query)},
		},
	}

	var wire requirementsWire
	var lastErr error
	for attempt := 0; attempt < maxParseAttempts; attempt++ {
		response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			e.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			e.logger.Debug("no choices returned from model")
			return nil, fmt.Errorf("model returned no choices")
		}

		raw := repairJSON(extractJSON(response.Choices[0].Content))

		if lastErr = e.validate(raw); lastErr != nil {
			e.logger.Warn("invalid extractor response",
				"attempt", attempt+1,
				"response", raw,
				"err", lastErr)
			continue
		}

		if lastErr = json.Unmarshal([]byte(raw), &wire); lastErr != nil {
			e.logger.Warn("error parsing extractor response",
				"attempt", attempt+1,
				"response", raw,
				"err", lastErr)
			continue
		}

		break
	}

	if lastErr != nil {
		e.logger.Error("failed to parse extractor response after retries", "err", lastErr)
		return nil, lastErr
	}

	reqs := &ai.Requirements{
		Skills:     cleanTerms(wire.Skills),
		SoftSkills: cleanTerms(wire.SoftSkills),
		TestTypes:  cleanCodes(wire.TestTypes),
		KeyFocus:   wire.KeyFocus,
	}

	e.logger.Debug("extracted requirements",
		"skills", len(reqs.Skills),
		"softSkills", len(reqs.SoftSkills),
		"focus", reqs.KeyFocus)
	return reqs, nil
}

func (e *RequirementExtractor) validate(raw string) error {
	result, err := e.schema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return err
	}
	if !result.Valid() {
		descs := make([]string, 0, len(result.Errors()))
		for _, re := range result.Errors() {
			descs = append(descs, re.String())
		}
		return fmt.Errorf("response violates schema: %s", strings.Join(descs, "; "))
	}
	return nil
}

// cleanTerms lowercases, trims, and dedupes keyword lists from the model.
func cleanTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		term = strings.Join(strings.Fields(strings.ToLower(term)), " ")
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		out = append(out, term)
	}
	return out
}

// cleanCodes keeps only known test type codes, deduplicated, order preserved.
func cleanCodes(codes []string) []string {
	known := make(map[string]bool, len(ai.TestTypeCodes))
	for _, c := range ai.TestTypeCodes {
		known[c] = true
	}

	out := make([]string, 0, len(codes))
	seen := make(map[string]bool, len(codes))
	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if !known[c] || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
