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


// Package ai provides abstractions for the AI services used by the
// recommendation pipeline.
//
// Three interfaces cover the optional AI surface:
//
//   - Embedder: generates vector embeddings from text
//   - RequirementExtractor: distills a hiring query into structured requirements
//   - Reranker: reorders a candidate shortlist by relevance
//
// All three are strictly advisory. The recommendation engine produces a
// complete, deterministic answer from lexical analysis alone; AI services
// refine it when they respond in time, and any error, timeout, or malformed
// response falls back to the lexical answer. Nothing in this package is on
// the hot path of correctness.
//
// # Implementation Packages
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external services
//
// Public constructors (openai.NewProvider, openai.NewEmbedder) return
// interface types to enforce abstraction. Mock constructors return concrete
// types so tests can inject behavior and assert call counts.
//
// # Usage Example
//
//	config := ai.NewConfig(ai.WithHost("http://localhost:11434"))
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	reqs, err := provider.RequirementExtractor().ExtractRequirements(ctx,
//	    "java developers who can collaborate with business teams")
package ai
