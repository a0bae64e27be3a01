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


package catalog

import "errors"

var (
	// ErrDataSource indicates the catalog source is missing or malformed.
	// Fatal at load time; the store never retries.
	ErrDataSource = errors.New("catalog data source error")

	// ErrDuplicateKey indicates two catalog records share a key.
	ErrDuplicateKey = errors.New("duplicate catalog key")

	// ErrEmptyCatalog indicates a source that parsed but contained no records.
	ErrEmptyCatalog = errors.New("catalog contains no records")

	// ErrNotFound indicates a repository lookup for an absent key.
	ErrNotFound = errors.New("assessment not found")
)
