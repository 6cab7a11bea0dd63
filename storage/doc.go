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


// Package storage provides the storage abstraction layer for the search bar.
//
// This package defines repository interfaces that decouple storage
// implementation from business logic. The repositories hold the denormalized
// school and program records the search pipeline resolves result IDs
// against; different backends (BadgerDB, in-memory, etc.) can be used
// interchangeably.
//
// # Architecture
//
// The storage layer follows the Repository pattern:
//
//   - SchoolRepository: Operations for denormalized school records
//   - ProgramRepository: Operations for denormalized program records
//
// Records are serialized with the MUS binary format (see the core package
// serializers) before being written to the backend.
//
// # Usage
//
// Create repositories backed by BadgerDB:
//
//	backend, err := badger.OpenBackend("/path/to/db", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//
//	schools, err := badger.NewSchoolRepository(backend)
//	programs, err := badger.NewProgramRepository(backend)
//
// Use in tests with in-memory storage:
//
//	schools, programs, backend, err := badger.NewMemoryRepositories()
//	defer backend.Close()
package storage
