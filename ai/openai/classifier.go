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
	"strconv"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/SG-AI-Team/search-bar/ai"
)

// RelevanceClassifier implements ai.RelevanceClassifier using
// OpenAI-compatible chat APIs.
type RelevanceClassifier struct {
	client llms.Model
	logger *slog.Logger
}

// newRelevanceClassifier is an internal constructor that returns the
// concrete type. Used by Provider to manage the instance.
func newRelevanceClassifier(config *ai.Config) (*RelevanceClassifier, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newChatModel(config, config.ClassifierModel)
	if err != nil {
		return nil, err
	}

	return &RelevanceClassifier{
		client: client,
		logger: slog.Default().With("component", "openai-classifier"),
	}, nil
}

// NewRelevanceClassifier creates a new relevance classifier using the
// provided configuration.
//
// Returns ai.RelevanceClassifier interface to enforce abstraction.
func NewRelevanceClassifier(config *ai.Config) (ai.RelevanceClassifier, error) {
	return newRelevanceClassifier(config)
}

// Classify asks an LLM which candidates answer the query and returns the
// selected subset in candidate order.
func (c *RelevanceClassifier) Classify(ctx context.Context, query string, candidates []schema.Document, fields *ai.QueryFields) ([]schema.Document, error) {
	if len(candidates) == 0 {
		return []schema.Document{}, nil
	}

	prompt := buildClassificationPrompt(query, candidates, fields)
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := c.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		c.logger.Error("failed to generate content", "err", err)
		return nil, err
	}

	if len(response.Choices) < 1 {
		c.logger.Debug("no choices returned from model, keeping all candidates")
		return candidates, nil
	}

	selected := parseSelection(response.Choices[0].Content, len(candidates))
	c.logger.Debug("classified candidates",
		"total", len(candidates),
		"selected", len(selected))

	result := make([]schema.Document, 0, len(selected))
	for _, i := range selected {
		result = append(result, candidates[i])
	}
	return result, nil
}

// parseSelection interprets the model's reply as a candidate selection.
// "ALL" selects everything; "NONE", "NO RELEVANT DOCUMENTS", or an empty
// reply selects nothing. Any other reply is read as a delimited list of
// 0-based indices; indices outside [0, n) are ignored.
func parseSelection(reply string, n int) []int {
	reply = strings.TrimSpace(reply)
	reply = strings.Trim(reply, "[]")
	reply = strings.TrimSpace(reply)

	switch strings.ToUpper(reply) {
	case "ALL":
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return all
	case "", "NONE", "NO RELEVANT DOCUMENTS":
		return []int{}
	}

	seen := make(map[int]bool, n)
	indices := make([]int, 0, n)
	for _, part := range strings.Split(reply, ",") {
		part = strings.TrimSpace(part)
		i, err := strconv.Atoi(part)
		if err != nil || i < 0 || i >= n || seen[i] {
			continue
		}
		seen[i] = true
		indices = append(indices, i)
	}
	return indices
}
