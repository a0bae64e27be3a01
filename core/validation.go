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


package core

import "fmt"

// ValidateAssessment validates an Assessment according to catalog rules.
//
// Validation rules:
//   - Key must not be empty
//   - Name must not be empty
//   - Duration must be >= 0 or DurationUnknown
//   - TestType must be a known code (unknown is allowed)
//
// NOT validated:
//   - Description (may legitimately be empty in the scraper output)
//   - Key uniqueness (enforced by the catalog, which sees all items)
func ValidateAssessment(a *Assessment) error {
	if a == nil {
		return fmt.Errorf("%w: assessment is nil", ErrInvalidAssessment)
	}

	if a.Key == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAssessment, ErrEmptyKey)
	}

	if a.Name == "" {
		return fmt.Errorf("%w: %w (key %q)", ErrInvalidAssessment, ErrEmptyName, a.Key)
	}

	if a.Duration < 0 && a.Duration != DurationUnknown {
		return fmt.Errorf("%w: %w (key %q)", ErrInvalidAssessment, ErrNegativeDuration, a.Key)
	}

	if !a.TestType.Valid() {
		return fmt.Errorf("%w: %w %q (key %q)", ErrInvalidAssessment, ErrInvalidTestType, a.TestType, a.Key)
	}

	return nil
}
