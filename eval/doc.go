// Package eval measures recommendation quality as recall@k against a
// ground-truth judgment set. Scoring is pure and deterministic; prediction
// generation runs on a worker pool since queries are independent and the
// engine is read-only.
package eval
