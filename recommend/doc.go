// Package recommend runs the retrieval and ranking pipeline: query
// profiling, shortlist retrieval from the index, skill-category bonus
// scoring, optional AI refinement, and category balancing for mixed
// technical/soft queries.
//
// The engine is deterministic without an AI provider and degrades to that
// deterministic path whenever the provider errors or times out.
package recommend
