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

import "context"

// Corrector is a test double for ai.QueryCorrector.
// It allows custom behavior injection via function fields.
type Corrector struct {
	// CorrectQueryFunc is called by CorrectQuery if set.
	// If nil, the query passes through unchanged.
	CorrectQueryFunc func(ctx context.Context, query string) (string, error)

	callCount int
}

// NewCorrector creates a mock corrector with default pass-through behavior.
// Note: Returns concrete type to allow test assertions.
func NewCorrector() *Corrector {
	return &Corrector{}
}

// CorrectQuery returns the query unchanged unless CorrectQueryFunc is set.
func (m *Corrector) CorrectQuery(ctx context.Context, query string) (string, error) {
	m.callCount++

	if m.CorrectQueryFunc != nil {
		return m.CorrectQueryFunc(ctx, query)
	}
	return query, nil
}

// CallCount returns the number of times CorrectQuery was called.
func (m *Corrector) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *Corrector) Reset() {
	m.callCount = 0
	m.CorrectQueryFunc = nil
}
