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


package openai

import (
	"log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/SG-AI-Team/search-bar/ai"
)

// Provider implements ai.Provider using OpenAI-compatible services.
// It manages corrector, extractor, classifier, and flagger instances.
type Provider struct {
	config     *ai.Config
	corrector  *Corrector
	extractor  *FieldExtractor
	classifier *RelevanceClassifier
	flagger    *SpecializationFlagger
	logger     *slog.Logger
}

// newChatModel creates an OpenAI-compatible chat client for the given model.
func newChatModel(config *ai.Config, model string) (llms.Model, error) {
	return openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.Token),
		openai.WithModel(model),
	)
}

// NewProvider creates a new AI provider with OpenAI-compatible services.
// The config is validated and normalized before use.
//
// Returns ai.Provider interface (not *Provider) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *ai.Config) (ai.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	corrector, err := newCorrector(config)
	if err != nil {
		return nil, err
	}

	extractor, err := newFieldExtractor(config)
	if err != nil {
		return nil, err
	}

	classifier, err := newRelevanceClassifier(config)
	if err != nil {
		return nil, err
	}

	flagger, err := newSpecializationFlagger(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:     config,
		corrector:  corrector,
		extractor:  extractor,
		classifier: classifier,
		flagger:    flagger,
		logger:     slog.Default().With("component", "openai-provider"),
	}, nil
}

// QueryCorrector returns the typo-correction service.
func (p *Provider) QueryCorrector() ai.QueryCorrector {
	return p.corrector
}

// FieldExtractor returns the intent-field extraction service.
func (p *Provider) FieldExtractor() ai.FieldExtractor {
	return p.extractor
}

// RelevanceClassifier returns the relevance classification service.
func (p *Provider) RelevanceClassifier() ai.RelevanceClassifier {
	return p.classifier
}

// SpecializationFlagger returns the specialization flagging service.
func (p *Provider) SpecializationFlagger() ai.SpecializationFlagger {
	return p.flagger
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}
