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

import "errors"

var (
	// ErrEmptyQuery is returned when the query is empty or whitespace.
	ErrEmptyQuery = errors.New("query must not be empty")

	// ErrInvalidK is returned when k is outside [1, MaxK].
	ErrInvalidK = errors.New("k out of range")

	// ErrNotReady is returned when Recommend is called before the first
	// successful Rebuild.
	ErrNotReady = errors.New("engine has no snapshot, call Rebuild first")

	// ErrCatalogRequired is returned when NewEngine is called without a catalog.
	ErrCatalogRequired = errors.New("catalog required")

	// ErrExtractorRequired is returned when NewEngine is called without a
	// skill extractor.
	ErrExtractorRequired = errors.New("skill extractor required")
)
