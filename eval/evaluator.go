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
	"math"
	"sort"
)

// Predictions maps a query to its ranked assessment keys, best first.
type Predictions map[string][]string

// GroundTruth maps a query to the set of assessment keys judged relevant.
type GroundTruth map[string][]string

// Summary aggregates per-query recall@k across an evaluation run.
type Summary struct {
	Mean   float64
	Min    float64
	Max    float64
	Median float64
	StdDev float64 // population standard deviation

	// Evaluated is the number of queries that entered the mean.
	Evaluated int

	// Skipped counts queries whose relevant set was empty. They carry no
	// signal and are excluded from every statistic.
	Skipped int
}

// MeanRecallAtK computes recall@k per ground-truth query and aggregates.
// Recall for one query is |top-k predictions ∩ relevant| / |relevant|.
// Queries with no predictions score 0; queries with an empty relevant set
// are skipped. Queries are iterated in sorted order, so the result is
// deterministic for a given input.
func MeanRecallAtK(predictions Predictions, truth GroundTruth, k int) (Summary, error) {
	if k < 1 {
		return Summary{}, ErrInvalidK
	}

	queries := make([]string, 0, len(truth))
	for q := range truth {
		queries = append(queries, q)
	}
	sort.Strings(queries)

	var summary Summary
	recalls := make([]float64, 0, len(queries))
	for _, q := range queries {
		relevant := truth[q]
		if len(relevant) == 0 {
			summary.Skipped++
			continue
		}
		recalls = append(recalls, recallAtK(predictions[q], relevant, k))
	}

	summary.Evaluated = len(recalls)
	if summary.Evaluated == 0 {
		return summary, nil
	}

	summary.Min = recalls[0]
	summary.Max = recalls[0]
	var sum float64
	for _, r := range recalls {
		sum += r
		if r < summary.Min {
			summary.Min = r
		}
		if r > summary.Max {
			summary.Max = r
		}
	}
	summary.Mean = sum / float64(len(recalls))

	var variance float64
	for _, r := range recalls {
		d := r - summary.Mean
		variance += d * d
	}
	summary.StdDev = math.Sqrt(variance / float64(len(recalls)))

	sorted := make([]float64, len(recalls))
	copy(sorted, recalls)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		summary.Median = sorted[mid]
	} else {
		summary.Median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return summary, nil
}

// recallAtK scores one query. Duplicate relevant keys count once.
func recallAtK(predicted, relevant []string, k int) float64 {
	relevantSet := make(map[string]bool, len(relevant))
	for _, key := range relevant {
		relevantSet[key] = true
	}

	if len(predicted) > k {
		predicted = predicted[:k]
	}

	hits := 0
	seen := make(map[string]bool, len(predicted))
	for _, key := range predicted {
		if relevantSet[key] && !seen[key] {
			hits++
			seen[key] = true
		}
	}

	return float64(hits) / float64(len(relevantSet))
}
