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


package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/poiesic/assessrec/ai"
	"github.com/poiesic/assessrec/catalog"
	"github.com/poiesic/assessrec/core"
	"github.com/poiesic/assessrec/index"
	"github.com/poiesic/assessrec/skills"
)

const (
	// MaxK is the largest result count a caller may request.
	MaxK = 10

	// minRetrieved floors the retrieval depth so small k still sees enough
	// of the catalog for balancing.
	minRetrieved = 30

	// categoryBonus is the score added per skill category shared between
	// the query profile and a candidate profile.
	categoryBonus = 0.3

	// technicalShare is the fraction of result slots reserved for
	// technical candidates when the query asks for both skill classes.
	technicalShare = 0.6
)

// Candidate is one scored recommendation.
type Candidate struct {
	Assessment core.Assessment

	// Similarity is the vector similarity of the query to this item, in [0,1].
	Similarity float64

	// SkillBonus is categoryBonus times the number of shared categories.
	SkillBonus float64

	// FinalScore is Similarity + SkillBonus. A ranking key, not a
	// probability; it exceeds 1.0 whenever bonuses apply.
	FinalScore float64

	position int // original catalog position, tiebreaker
}

// snapshot is the immutable state one Rebuild produces. Queries read a
// whole snapshot or none of it.
type snapshot struct {
	catalog  *catalog.Catalog
	index    *index.Index
	profiles []skills.Profile // by catalog position
}

// Engine runs the retrieval and ranking pipeline. It is safe for concurrent
// queries; Rebuild swaps in a fresh snapshot atomically.
type Engine struct {
	cat        *catalog.Catalog
	extractor  *skills.Extractor
	vectorizer func() index.Vectorizer
	provider   ai.AIProvider
	aiTimeout  time.Duration
	snap       atomic.Pointer[snapshot]
	logger     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithVectorizer sets the factory used to create a vectorizer per Rebuild.
// A factory is needed because lexical vectorizers carry fitted state that
// must not leak across snapshots. Default creates a TF-IDF vectorizer.
func WithVectorizer(factory func() index.Vectorizer) Option {
	return func(e *Engine) error {
		if factory != nil {
			e.vectorizer = factory
		}
		return nil
	}
}

// WithAIProvider enables the query understanding and rerank stages.
// A nil provider leaves both stages off.
func WithAIProvider(provider ai.AIProvider) Option {
	return func(e *Engine) error {
		e.provider = provider
		return nil
	}
}

// WithAITimeout bounds each AI adapter call. Default is 30s.
func WithAITimeout(d time.Duration) Option {
	return func(e *Engine) error {
		if d > 0 {
			e.aiTimeout = d
		}
		return nil
	}
}

// NewEngine creates an engine over the catalog. Call Rebuild before the
// first Recommend.
func NewEngine(cat *catalog.Catalog, extractor *skills.Extractor, opts ...Option) (*Engine, error) {
	if cat == nil {
		return nil, ErrCatalogRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}

	e := &Engine{
		cat:        cat,
		extractor:  extractor,
		vectorizer: func() index.Vectorizer { return index.NewTFIDF() },
		aiTimeout:  30 * time.Second,
		logger:     slog.Default().With("component", "engine"),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Rebuild vectorizes the catalog and precomputes per-item skill profiles,
// then swaps the new snapshot in. In-flight queries finish on the old one.
func (e *Engine) Rebuild(ctx context.Context) error {
	idx, err := index.Build(ctx, e.cat, e.vectorizer())
	if err != nil {
		return fmt.Errorf("rebuilding index: %w", err)
	}

	items := e.cat.Items()
	profiles := make([]skills.Profile, len(items))
	for i := range items {
		profiles[i] = e.extractor.Extract(items[i].Name + " " + items[i].Description)
	}

	e.snap.Store(&snapshot{
		catalog:  e.cat,
		index:    idx,
		profiles: profiles,
	})
	e.logger.Info("snapshot rebuilt", "method", idx.Method(), "items", len(items))
	return nil
}

// Recommend returns up to k assessments for the query, best first.
func (e *Engine) Recommend(ctx context.Context, query string, k int) ([]Candidate, error) {
	return e.RecommendWithMonitor(ctx, query, k, nil)
}

// RecommendWithMonitor runs Recommend with pipeline observation hooks.
// The monitor receives callbacks at each stage of the pipeline.
func (e *Engine) RecommendWithMonitor(ctx context.Context, query string, k int, monitor Monitor) ([]Candidate, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if k < 1 || k > MaxK {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidK, k, MaxK)
	}

	snap := e.snap.Load()
	if snap == nil {
		return nil, ErrNotReady
	}
	if snap.catalog.Len() == 0 {
		return []Candidate{}, nil
	}

	monitor.Start(query, k)

	// 1. Lexical query profile, optionally augmented by the AI extractor.
	profile := e.extractor.Extract(query)
	if e.provider != nil {
		profile = e.augmentProfile(ctx, query, profile, monitor)
	}
	monitor.AfterProfile(profile)

	// 2. Retrieve the shortlist.
	depth := 3 * k
	if depth < minRetrieved {
		depth = minRetrieved
	}
	matches, err := snap.index.Query(ctx, query, depth)
	if err != nil {
		return nil, err
	}
	monitor.AfterRetrieval(matches)

	// 3. Score: similarity plus a fixed bonus per shared skill category.
	cands := make([]Candidate, len(matches))
	for i, m := range matches {
		bonus := categoryBonus * float64(skills.SharedCategories(profile, snap.profiles[m.Position]))
		cands[i] = Candidate{
			Assessment: snap.catalog.At(m.Position),
			Similarity: m.Similarity,
			SkillBonus: bonus,
			FinalScore: m.Similarity + bonus,
			position:   m.Position,
		}
	}
	sortByScore(cands)

	// 4. Optional AI rerank of the shortlist.
	if e.provider != nil {
		cands = e.rerank(ctx, query, cands, monitor)
	}

	// 5. Category balance, then truncate to k.
	results := balance(cands, snap, profile, k, monitor)

	monitor.Finish(results)
	return results, nil
}

// augmentProfile folds AI-extracted requirement terms into the lexical
// profile. Failures leave the profile untouched.
func (e *Engine) augmentProfile(ctx context.Context, query string, profile skills.Profile, monitor Monitor) skills.Profile {
	aiCtx, cancel := context.WithTimeout(ctx, e.aiTimeout)
	defer cancel()

	reqs, err := e.provider.RequirementExtractor().ExtractRequirements(aiCtx, query)
	if err != nil {
		e.logger.Warn("requirement extraction failed, using lexical profile", "err", err)
		return profile
	}
	if reqs == nil {
		return profile
	}
	monitor.AfterRequirements(reqs)

	terms := make([]string, 0, len(reqs.Skills)+len(reqs.SoftSkills))
	terms = append(terms, reqs.Skills...)
	terms = append(terms, reqs.SoftSkills...)
	if len(terms) == 0 {
		return profile
	}
	return skills.Merge(profile, e.extractor.Extract(strings.Join(terms, " ")))
}

// rerank lets the AI provider reorder the shortlist. Any failure, including
// out-of-range or duplicate indices, keeps the score ordering.
func (e *Engine) rerank(ctx context.Context, query string, cands []Candidate, monitor Monitor) []Candidate {
	if len(cands) < 2 {
		return cands
	}

	summaries := make([]ai.CandidateSummary, len(cands))
	for i, c := range cands {
		summaries[i] = ai.CandidateSummary{
			Name:        c.Assessment.Name,
			Description: c.Assessment.Description,
		}
	}

	aiCtx, cancel := context.WithTimeout(ctx, e.aiTimeout)
	defer cancel()

	order, err := e.provider.Reranker().Rerank(aiCtx, query, summaries, len(cands))
	if err != nil {
		e.logger.Warn("rerank failed, keeping score order", "err", err)
		return cands
	}
	if len(order) == 0 {
		return cands
	}
	for _, idx := range order {
		if idx < 0 || idx >= len(cands) {
			e.logger.Warn("rerank returned out-of-range index, keeping score order", "index", idx)
			return cands
		}
	}
	monitor.AfterRerank(order)

	reordered := make([]Candidate, 0, len(cands))
	taken := make([]bool, len(cands))
	for _, idx := range order {
		if taken[idx] {
			e.logger.Warn("rerank returned duplicate index, keeping score order", "index", idx)
			return cands
		}
		taken[idx] = true
		reordered = append(reordered, cands[idx])
	}
	for i, c := range cands {
		if !taken[i] {
			reordered = append(reordered, c)
		}
	}
	return reordered
}

// candidateClass buckets a candidate for balancing.
type candidateClass int

const (
	classTechnical candidateClass = iota
	classSoft
	classOther
)

func classify(a core.Assessment, p skills.Profile) candidateClass {
	if a.TestType == core.TestTypeKnowledge || p.HasTechnicalClass() {
		return classTechnical
	}
	if a.TestType == core.TestTypePersonality || p.HasSoftClass() {
		return classSoft
	}
	return classOther
}

// balance selects k candidates. Mixed queries reserve a technical majority
// so one strong class cannot crowd out the other; everything else is a plain
// prefix of the current ordering.
func balance(cands []Candidate, snap *snapshot, profile skills.Profile, k int, monitor Monitor) []Candidate {
	mixed := profile.HasTechnicalClass() && profile.HasSoftClass()
	if !mixed {
		if len(cands) > k {
			cands = cands[:k]
		}
		return cands
	}

	// ceil(technicalShare * k) technical slots, the rest soft.
	nTech := (k*3 + 4) / 5
	nSoft := k - nTech

	var technical, soft []Candidate
	for _, c := range cands {
		switch classify(c.Assessment, snap.profiles[c.position]) {
		case classTechnical:
			technical = append(technical, c)
		case classSoft:
			soft = append(soft, c)
		}
	}

	selected := make([]Candidate, 0, k)
	inSelection := make(map[int]bool, k)
	take := func(from []Candidate, n int) {
		for _, c := range from {
			if n == 0 {
				return
			}
			if !inSelection[c.position] {
				inSelection[c.position] = true
				selected = append(selected, c)
				n--
			}
		}
	}

	take(technical, nTech)
	techTaken := len(selected)
	take(soft, nSoft)
	monitor.AfterBalance(techTaken, len(selected)-techTaken)

	// Top up any shortfall from the full shortlist.
	if len(selected) < k {
		take(cands, k-len(selected))
	}

	sortByScore(selected)
	if len(selected) > k {
		selected = selected[:k]
	}
	return selected
}

// sortByScore orders candidates by final score descending, ties broken by
// original catalog position so results are stable run to run.
func sortByScore(cands []Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].FinalScore != cands[j].FinalScore {
			return cands[i].FinalScore > cands[j].FinalScore
		}
		return cands[i].position < cands[j].position
	})
}
