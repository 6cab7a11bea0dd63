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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SG-AI-Team/search-bar/ai"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no fences", `{"is_valid": true}`, `{"is_valid": true}`},
		{"json fence", "```json\n{\"is_valid\": true}\n```", `{"is_valid": true}`},
		{"bare fence", "```\n{\"is_valid\": true}\n```", `{"is_valid": true}`},
		{"surrounding whitespace", "  {\"is_valid\": true}  ", `{"is_valid": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFences(tt.input))
		})
	}
}

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"valid untouched",
			`{"school": "Alpha", "is_valid": true}`,
			`{"school": "Alpha", "is_valid": true}`,
		},
		{
			"missing opening quote after brace",
			`{school": "Alpha"}`,
			`{"school": "Alpha"}`,
		},
		{
			"missing opening quote after comma",
			`{"school": "Alpha", is_valid": true}`,
			`{"school": "Alpha", "is_valid": true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repairJSON(tt.input))
		})
	}
}

func TestRepairedOutputParses(t *testing.T) {
	raw := stripCodeFences("```json\n{school\": \"Alpha Business School\", \"is_valid\": true}\n```")
	raw = repairJSON(raw)

	var fields ai.QueryFields
	require.NoError(t, json.Unmarshal([]byte(raw), &fields))
	require.NotNil(t, fields.School)
	assert.Equal(t, "Alpha Business School", *fields.School)
	assert.True(t, fields.IsValid)
}
