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


package index

import "errors"

var (
	// ErrCatalogRequired is returned when Build is called without a catalog.
	ErrCatalogRequired = errors.New("catalog required")

	// ErrVectorizerRequired is returned when Build is called without a vectorizer.
	ErrVectorizerRequired = errors.New("vectorizer required")

	// ErrNotFitted is returned when Transform is called before FitTransform.
	ErrNotFitted = errors.New("vectorizer not fitted")

	// ErrVectorCount is returned when a vectorizer yields a different number
	// of vectors than documents.
	ErrVectorCount = errors.New("vector count mismatch")
)
