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
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/SG-AI-Team/search-bar/ai"
	"github.com/SG-AI-Team/search-bar/core"
)

// SpecializationFlagger implements ai.SpecializationFlagger using
// OpenAI-compatible chat APIs.
type SpecializationFlagger struct {
	client llms.Model
	logger *slog.Logger
}

// newSpecializationFlagger is an internal constructor that returns the
// concrete type. Used by Provider to manage the instance.
func newSpecializationFlagger(config *ai.Config) (*SpecializationFlagger, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newChatModel(config, config.FlaggerModel)
	if err != nil {
		return nil, err
	}

	return &SpecializationFlagger{
		client: client,
		logger: slog.Default().With("component", "openai-flagger"),
	}, nil
}

// NewSpecializationFlagger creates a new specialization flagger using the
// provided configuration.
//
// Returns ai.SpecializationFlagger interface to enforce abstraction.
func NewSpecializationFlagger(config *ai.Config) (ai.SpecializationFlagger, error) {
	return newSpecializationFlagger(config)
}

// FlagSpecializations asks an LLM which programs answer the user's intent
// through a specialization track and returns their 0-based indices.
func (f *SpecializationFlagger) FlagSpecializations(ctx context.Context, fields *ai.QueryFields, programs []*core.ProgramRecord) ([]int, error) {
	if len(programs) == 0 {
		return nil, nil
	}

	prompt := buildSpecializationPrompt(fields, programs)
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := f.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		f.logger.Error("failed to generate content", "err", err)
		return nil, err
	}

	if len(response.Choices) < 1 {
		f.logger.Debug("no choices returned from model, flagging nothing")
		return nil, nil
	}

	indices := parseIndexList(response.Choices[0].Content, len(programs))
	f.logger.Debug("flagged specializations",
		"total", len(programs),
		"flagged", len(indices))
	return indices, nil
}

// parseIndexList interprets the model's reply as a JSON array of 0-based
// indices. An empty reply, "[]", "null", "NONE", or a reply that does not
// parse flags nothing; indices outside [0, n) are ignored.
func parseIndexList(reply string, n int) []int {
	reply = strings.TrimSpace(stripCodeFences(reply))

	switch strings.ToUpper(reply) {
	case "", "[]", "NULL", "NONE":
		return nil
	}

	var raw []int
	if err := json.Unmarshal([]byte(reply), &raw); err != nil {
		return nil
	}

	seen := make(map[int]bool, n)
	indices := make([]int, 0, len(raw))
	for _, i := range raw {
		if i < 0 || i >= n || seen[i] {
			continue
		}
		seen[i] = true
		indices = append(indices, i)
	}
	return indices
}
