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


package assessrec

import (
	"context"
	"log/slog"

	"github.com/poiesic/assessrec/ai"
	"github.com/poiesic/assessrec/ai/openai"
	"github.com/poiesic/assessrec/catalog"
	"github.com/poiesic/assessrec/eval"
	"github.com/poiesic/assessrec/index"
	"github.com/poiesic/assessrec/recommend"
	"github.com/poiesic/assessrec/skills"
)

// Health is a point-in-time readiness report.
type Health struct {
	Status      string
	CatalogSize int
}

// System wires the catalog, skill extractor, index, and engine into one
// ready-to-query facade.
type System struct {
	cat      *catalog.Catalog
	engine   *recommend.Engine
	provider ai.AIProvider
	logger   *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*systemOptions)

type systemOptions struct {
	aiConfig   *ai.Config
	provider   ai.AIProvider
	dictionary *skills.Dictionary
	embedIndex bool
}

// WithAIConfig enables the OpenAI-compatible provider with this config.
func WithAIConfig(cfg *ai.Config) SystemOption {
	return func(o *systemOptions) {
		o.aiConfig = cfg
	}
}

// WithProvider injects a pre-built AI provider, typically a mock in tests.
// Takes precedence over WithAIConfig.
func WithProvider(provider ai.AIProvider) SystemOption {
	return func(o *systemOptions) {
		o.provider = provider
	}
}

// WithDictionary overrides the default skill dictionary.
func WithDictionary(dict skills.Dictionary) SystemOption {
	return func(o *systemOptions) {
		o.dictionary = &dict
	}
}

// WithEmbeddingIndex indexes the catalog with dense embeddings from the AI
// provider instead of TF-IDF. Requires an AI provider.
func WithEmbeddingIndex() SystemOption {
	return func(o *systemOptions) {
		o.embedIndex = true
	}
}

// New builds a System over an already-loaded catalog and rebuilds the
// index so the first Recommend is served from a complete snapshot.
func New(ctx context.Context, cat *catalog.Catalog, opts ...SystemOption) (*System, error) {
	options := &systemOptions{}
	for _, opt := range opts {
		opt(options)
	}

	dict := skills.Default()
	if options.dictionary != nil {
		dict = *options.dictionary
	}
	extractor, err := skills.NewExtractor(dict)
	if err != nil {
		return nil, err
	}

	provider := options.provider
	if provider == nil && options.aiConfig != nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	engineOpts := []recommend.Option{}
	if provider != nil {
		engineOpts = append(engineOpts, recommend.WithAIProvider(provider))
		if options.aiConfig != nil {
			engineOpts = append(engineOpts, recommend.WithAITimeout(options.aiConfig.RequestTimeout))
		}
	}
	if options.embedIndex {
		if provider == nil {
			return nil, index.ErrVectorizerRequired
		}
		embedder := provider.Embedder()
		engineOpts = append(engineOpts, recommend.WithVectorizer(func() index.Vectorizer {
			v, _ := index.NewEmbeddingVectorizer(embedder)
			return v
		}))
	}

	engine, err := recommend.NewEngine(cat, extractor, engineOpts...)
	if err != nil {
		return nil, err
	}
	if err := engine.Rebuild(ctx); err != nil {
		return nil, err
	}

	return &System{
		cat:      cat,
		engine:   engine,
		provider: provider,
		logger:   slog.Default().With("component", "system"),
	}, nil
}

// NewFromFile loads a scraper JSON catalog and builds a System over it.
func NewFromFile(ctx context.Context, path string, opts ...SystemOption) (*System, error) {
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return New(ctx, cat, opts...)
}

// NewFromRepository reads the catalog back from a repository snapshot and
// builds a System over it.
func NewFromRepository(ctx context.Context, repo catalog.Repository, opts ...SystemOption) (*System, error) {
	cat, err := catalog.LoadRepository(ctx, repo)
	if err != nil {
		return nil, err
	}
	return New(ctx, cat, opts...)
}

// Recommend returns up to k assessments for the query, best first.
func (s *System) Recommend(ctx context.Context, query string, k int) ([]recommend.Candidate, error) {
	return s.engine.Recommend(ctx, query, k)
}

// Engine exposes the underlying engine, e.g. for evaluation runs.
func (s *System) Engine() *recommend.Engine {
	return s.engine
}

// NewEvalRunner creates an evaluation runner over this system's engine.
func (s *System) NewEvalRunner(opts ...eval.RunnerOption) (*eval.Runner, error) {
	return eval.NewRunner(s.engine, opts...)
}

// Rebuild reindexes the catalog. Queries in flight keep the old snapshot.
func (s *System) Rebuild(ctx context.Context) error {
	return s.engine.Rebuild(ctx)
}

// Health reports readiness and catalog size.
func (s *System) Health() Health {
	return Health{
		Status:      "ok",
		CatalogSize: s.cat.Len(),
	}
}

// Close releases the AI provider, if any.
func (s *System) Close() error {
	if s.provider != nil {
		if err := s.provider.Close(); err != nil {
			s.logger.Error("error closing AI provider", "err", err)
			return err
		}
	}
	return nil
}
