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

	"github.com/tmc/langchaingo/schema"

	"github.com/SG-AI-Team/search-bar/ai"
)

// RelevanceClassifier is a test double for ai.RelevanceClassifier.
// It allows custom behavior injection via function fields.
type RelevanceClassifier struct {
	// ClassifyFunc is called by Classify if set.
	// If nil, all candidates are kept.
	ClassifyFunc func(ctx context.Context, query string, candidates []schema.Document, fields *ai.QueryFields) ([]schema.Document, error)

	callCount int
}

// NewRelevanceClassifier creates a mock classifier with default keep-all behavior.
// Note: Returns concrete type to allow test assertions.
func NewRelevanceClassifier() *RelevanceClassifier {
	return &RelevanceClassifier{}
}

// Classify returns all candidates unless ClassifyFunc is set.
func (m *RelevanceClassifier) Classify(ctx context.Context, query string, candidates []schema.Document, fields *ai.QueryFields) ([]schema.Document, error) {
	m.callCount++

	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, query, candidates, fields)
	}
	return candidates, nil
}

// CallCount returns the number of times Classify was called.
func (m *RelevanceClassifier) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *RelevanceClassifier) Reset() {
	m.callCount = 0
	m.ClassifyFunc = nil
}
