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


package badger

import "github.com/SG-AI-Team/search-bar/storage"

// NewMemoryRepositories creates in-memory school and program repositories for testing.
// Returns schoolRepo, programRepo, backend, and error.
// Caller must close the backend when done.
func NewMemoryRepositories() (storage.SchoolRepository, storage.ProgramRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, err
	}

	schoolRepo, err := NewSchoolRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, err
	}

	programRepo, err := NewProgramRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, err
	}

	return schoolRepo, programRepo, backend, nil
}
