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


// Package skills detects categorical skill signals in free text via
// dictionary keyword matching.
//
// The dictionary is versioned and statically validated at startup rather
// than trusted implicitly; matching is case-insensitive and word-bounded on
// normalized text. Extraction is total and deterministic, which keeps the
// ranking pipeline reproducible. Profiles derived here bias the ranker in
// two ways: a fixed score bonus per category shared between the query and a
// candidate, and the technical/soft category-balance policy.
package skills
