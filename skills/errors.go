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


package skills

import "errors"

var (
	// ErrDictionaryVersion is returned when a dictionary has no version.
	ErrDictionaryVersion = errors.New("dictionary version required")

	// ErrDictionaryEmpty is returned when a dictionary has no usable entries.
	ErrDictionaryEmpty = errors.New("dictionary has no entries")

	// ErrUnknownCategory is returned for a category outside the known set.
	ErrUnknownCategory = errors.New("unknown skill category")

	// ErrInvalidKeyword is returned for keywords that are empty, not
	// lowercase, or not single-spaced.
	ErrInvalidKeyword = errors.New("invalid keyword")
)
