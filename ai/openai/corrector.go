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
	"context"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/SG-AI-Team/search-bar/ai"
)

// Corrector implements ai.QueryCorrector using OpenAI-compatible chat APIs.
type Corrector struct {
	client llms.Model
	logger *slog.Logger
}

// newCorrector is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newCorrector(config *ai.Config) (*Corrector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newChatModel(config, config.CorrectorModel)
	if err != nil {
		return nil, err
	}

	return &Corrector{
		client: client,
		logger: slog.Default().With("component", "openai-corrector"),
	}, nil
}

// NewCorrector creates a new query corrector using the provided configuration.
//
// Returns ai.QueryCorrector interface to enforce abstraction.
func NewCorrector(config *ai.Config) (ai.QueryCorrector, error) {
	return newCorrector(config)
}

// CorrectQuery rewrites the query into clean English using an LLM.
// An empty input returns an empty string without a model call.
func (c *Corrector) CorrectQuery(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", nil
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(correctionPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(query),
			},
		},
	}

	response, err := c.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		c.logger.Error("failed to generate content", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		c.logger.Debug("no choices returned from model")
		return query, nil
	}

	corrected := strings.TrimSpace(response.Choices[0].Content)
	corrected = strings.Trim(corrected, `"`)
	if corrected == "" {
		return query, nil
	}

	c.logger.Debug("corrected query", "input", query, "output", corrected)
	return corrected, nil
}
