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


package eval

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/assessrec/recommend"
)

// Recommender is the slice of the engine the runner needs. Queries are
// independent and the engine is read-only during evaluation, so they can
// run concurrently.
type Recommender interface {
	Recommend(ctx context.Context, query string, k int) ([]recommend.Candidate, error)
}

// Runner generates predictions for every ground-truth query on a worker
// pool and scores them.
type Runner struct {
	recommender Recommender
	poolSize    int
	logger      *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner) error

// WithPoolSize sets the worker pool size for concurrent prediction.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) RunnerOption {
	return func(r *Runner) error {
		if size < 1 {
			size = 1
		}
		r.poolSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRunner creates an evaluation runner over the recommender.
func NewRunner(recommender Recommender, opts ...RunnerOption) (*Runner, error) {
	if recommender == nil {
		return nil, ErrRecommenderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	r := &Runner{
		recommender: recommender,
		poolSize:    poolSize,
		logger:      slog.Default().With("component", "eval-runner"),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Predict generates top-k predictions for every query. A query whose
// recommendation fails is logged and scored with an empty prediction; one
// bad query must not sink an evaluation run.
func (r *Runner) Predict(ctx context.Context, queries []string, k int) (Predictions, error) {
	pool, err := ants.NewPool(r.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	predictions := make(Predictions, len(queries))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, query := range queries {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			results, err := r.recommender.Recommend(ctx, query, k)
			if err != nil {
				r.logger.Warn("prediction failed", "query", query, "err", err)
				return
			}

			keys := make([]string, len(results))
			for i, c := range results {
				keys[i] = c.Assessment.Key
			}

			mu.Lock()
			predictions[query] = keys
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			wg.Wait()
			return nil, submitErr
		}
	}

	wg.Wait()
	return predictions, nil
}

// Evaluate predicts for every ground-truth query and scores recall@k.
func (r *Runner) Evaluate(ctx context.Context, truth GroundTruth, k int) (Summary, error) {
	if k < 1 {
		return Summary{}, ErrInvalidK
	}

	queries := make([]string, 0, len(truth))
	for q := range truth {
		queries = append(queries, q)
	}

	predictions, err := r.Predict(ctx, queries, k)
	if err != nil {
		return Summary{}, err
	}

	summary, err := MeanRecallAtK(predictions, truth, k)
	if err != nil {
		return Summary{}, err
	}

	r.logger.Info("evaluation complete",
		"k", k,
		"meanRecall", summary.Mean,
		"evaluated", summary.Evaluated,
		"skipped", summary.Skipped)
	return summary, nil
}
