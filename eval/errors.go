package eval

import "errors"

var (
	// ErrGroundTruth indicates the ground truth source is missing or malformed.
	ErrGroundTruth = errors.New("ground truth data source error")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrRecommenderRequired is returned when NewRunner is called without a
	// recommender.
	ErrRecommenderRequired = errors.New("recommender required")
)
