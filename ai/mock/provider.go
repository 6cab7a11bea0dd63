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

import "github.com/SG-AI-Team/search-bar/ai"

// Provider is a test double for ai.Provider.
// It aggregates mock corrector, extractor, classifier, and flagger instances.
type Provider struct {
	corrector  *Corrector
	extractor  *FieldExtractor
	classifier *RelevanceClassifier
	flagger    *SpecializationFlagger
}

// NewProvider creates a new mock provider with default mock services.
//
// Returns ai.Provider interface for consistency with production constructors.
// Use GetCorrector()/GetFieldExtractor()/GetRelevanceClassifier()/
// GetSpecializationFlagger() to access concrete types for test assertions.
func NewProvider() ai.Provider {
	return &Provider{
		corrector:  NewCorrector(),
		extractor:  NewFieldExtractor(),
		classifier: NewRelevanceClassifier(),
		flagger:    NewSpecializationFlagger(),
	}
}

// NewProviderWithServices creates a mock provider with custom mock services.
// This allows full control over the behavior of each service.
func NewProviderWithServices(corrector *Corrector, extractor *FieldExtractor, classifier *RelevanceClassifier, flagger *SpecializationFlagger) ai.Provider {
	return &Provider{
		corrector:  corrector,
		extractor:  extractor,
		classifier: classifier,
		flagger:    flagger,
	}
}

// QueryCorrector returns the mock corrector.
func (p *Provider) QueryCorrector() ai.QueryCorrector {
	return p.corrector
}

// FieldExtractor returns the mock extractor.
func (p *Provider) FieldExtractor() ai.FieldExtractor {
	return p.extractor
}

// RelevanceClassifier returns the mock classifier.
func (p *Provider) RelevanceClassifier() ai.RelevanceClassifier {
	return p.classifier
}

// SpecializationFlagger returns the mock flagger.
func (p *Provider) SpecializationFlagger() ai.SpecializationFlagger {
	return p.flagger
}

// Close is a no-op for mock provider.
func (p *Provider) Close() error {
	return nil
}

// GetCorrector returns the underlying mock corrector for test assertions.
func (p *Provider) GetCorrector() *Corrector {
	return p.corrector
}

// GetFieldExtractor returns the underlying mock extractor for test assertions.
func (p *Provider) GetFieldExtractor() *FieldExtractor {
	return p.extractor
}

// GetRelevanceClassifier returns the underlying mock classifier for test assertions.
func (p *Provider) GetRelevanceClassifier() *RelevanceClassifier {
	return p.classifier
}

// GetSpecializationFlagger returns the underlying mock flagger for test assertions.
func (p *Provider) GetSpecializationFlagger() *SpecializationFlagger {
	return p.flagger
}
