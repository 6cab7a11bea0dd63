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


package storage

import (
	"context"

	"github.com/SG-AI-Team/search-bar/core"
)

// SchoolRepository provides operations for managing denormalized school
// records. Implementations must be thread-safe and support concurrent access.
type SchoolRepository interface {
	// PutSchoolRecords stores one or more school records, replacing any
	// existing record with the same ID.
	PutSchoolRecords(ctx context.Context, records ...*core.SchoolRecord) error

	// GetSchoolRecord retrieves a single school record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetSchoolRecord(ctx context.Context, id core.ID) (*core.SchoolRecord, error)

	// CountSchoolRecords returns the number of stored school records.
	CountSchoolRecords(ctx context.Context) (int, error)

	// Close closes the storage backend and releases resources.
	Close() error
}

// ProgramRepository provides operations for managing denormalized program
// records. Implementations must be thread-safe and support concurrent access.
type ProgramRepository interface {
	// PutProgramRecords stores one or more program records, replacing any
	// existing record with the same ID.
	PutProgramRecords(ctx context.Context, records ...*core.ProgramRecord) error

	// GetProgramRecord retrieves a single program record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetProgramRecord(ctx context.Context, id core.ID) (*core.ProgramRecord, error)

	// CountProgramRecords returns the number of stored program records.
	CountProgramRecords(ctx context.Context) (int, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
