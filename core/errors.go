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

import "errors"

// Domain validation errors
var (
	// ErrInvalidSchoolRecord indicates a SchoolRecord failed validation.
	ErrInvalidSchoolRecord = errors.New("invalid school record")

	// ErrInvalidProgramRecord indicates a ProgramRecord failed validation.
	ErrInvalidProgramRecord = errors.New("invalid program record")

	// ErrMissingID indicates the record identifier is absent.
	ErrMissingID = errors.New("identifier is required")

	// ErrEmptyName indicates the record name is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrNegativeLength indicates a serialized collection carried a
	// negative length prefix.
	ErrNegativeLength = errors.New("negative length")
)
