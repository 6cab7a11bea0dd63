// Copyright 2025 SG AI Team
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

// ValidateSchoolRecord validates a SchoolRecord according to domain rules.
//
// Validation rules:
//   - ID must be present (non-zero)
//   - Name must not be empty
//
// NOT validated: Rank (0 is a valid "unranked" value), location fields
// (upstream frequently leaves them blank).
func ValidateSchoolRecord(record *SchoolRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidSchoolRecord)
	}

	if record.ID == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSchoolRecord, ErrMissingID)
	}

	if record.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSchoolRecord, ErrEmptyName)
	}

	return nil
}

// ValidateProgramRecord validates a ProgramRecord according to domain rules.
//
// Validation rules:
//   - ID must be present (non-zero)
//   - Name must not be empty
//
// NOT validated: SchoolID (a program record may outlive its school row in
// edge cases; resolution skips dangling references instead of erroring).
func ValidateProgramRecord(record *ProgramRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidProgramRecord)
	}

	if record.ID == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProgramRecord, ErrMissingID)
	}

	if record.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProgramRecord, ErrEmptyName)
	}

	return nil
}
