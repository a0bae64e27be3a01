// Package mock provides test doubles for the ai interfaces.
//
// Defaults are deterministic: the embedder hashes text into a fixed vector,
// the extractor scans for a small keyword table, and the reranker returns
// the identity ordering. Tests inject custom behavior through the exported
// function fields.
package mock
