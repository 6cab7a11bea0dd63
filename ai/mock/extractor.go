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
)

// FieldExtractor is a test double for ai.FieldExtractor.
// It allows custom behavior injection via function fields.
type FieldExtractor struct {
	// ExtractFieldsFunc is called by ExtractFields if set.
	// If nil, returns empty fields marked valid.
	ExtractFieldsFunc func(ctx context.Context, query string) (*ai.QueryFields, error)

	callCount int
}

// NewFieldExtractor creates a mock field extractor with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewFieldExtractor() *FieldExtractor {
	return &FieldExtractor{}
}

// ExtractFields returns empty valid fields unless ExtractFieldsFunc is set.
func (m *FieldExtractor) ExtractFields(ctx context.Context, query string) (*ai.QueryFields, error) {
	m.callCount++

	if m.ExtractFieldsFunc != nil {
		return m.ExtractFieldsFunc(ctx, query)
	}
	return &ai.QueryFields{IsValid: true}, nil
}

// CallCount returns the number of times ExtractFields was called.
func (m *FieldExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *FieldExtractor) Reset() {
	m.callCount = 0
	m.ExtractFieldsFunc = nil
}
