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


package mock

import (
	"context"

	"github.com/SG-AI-Team/search-bar/ai"
	"github.com/SG-AI-Team/search-bar/core"
)

// SpecializationFlagger is a test double for ai.SpecializationFlagger.
// It allows custom behavior injection via function fields.
type SpecializationFlagger struct {
	// FlagSpecializationsFunc is called by FlagSpecializations if set.
	// If nil, no programs are flagged.
	FlagSpecializationsFunc func(ctx context.Context, fields *ai.QueryFields, programs []*core.ProgramRecord) ([]int, error)

	callCount int
}

// NewSpecializationFlagger creates a mock flagger with default flag-nothing behavior.
// Note: Returns concrete type to allow test assertions.
func NewSpecializationFlagger() *SpecializationFlagger {
	return &SpecializationFlagger{}
}

// FlagSpecializations flags no programs unless FlagSpecializationsFunc is set.
func (m *SpecializationFlagger) FlagSpecializations(ctx context.Context, fields *ai.QueryFields, programs []*core.ProgramRecord) ([]int, error) {
	m.callCount++

	if m.FlagSpecializationsFunc != nil {
		return m.FlagSpecializationsFunc(ctx, fields, programs)
	}
	return nil, nil
}

// CallCount returns the number of times FlagSpecializations was called.
func (m *SpecializationFlagger) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *SpecializationFlagger) Reset() {
	m.callCount = 0
	m.FlagSpecializationsFunc = nil
}
