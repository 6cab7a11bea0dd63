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


package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
	assert.Equal(t, "none", cfg.Token)
	assert.Equal(t, "gpt-4o-mini", cfg.CorrectorModel)
	assert.Equal(t, "gpt-4o-mini", cfg.ExtractorModel)
	assert.Equal(t, "gpt-4o-mini", cfg.ClassifierModel)
	assert.Equal(t, "gpt-4o-mini", cfg.FlaggerModel)
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithHost("https://api.example.com/v1"),
		WithToken("sk-test"),
		WithModel("gpt-4o"),
		WithClassifierModel("gpt-4o-mini"),
	)

	assert.Equal(t, "https://api.example.com/v1", cfg.Host)
	assert.Equal(t, "sk-test", cfg.Token)
	assert.Equal(t, "gpt-4o", cfg.CorrectorModel)
	assert.Equal(t, "gpt-4o", cfg.ExtractorModel)
	assert.Equal(t, "gpt-4o-mini", cfg.ClassifierModel)
	assert.Equal(t, "gpt-4o", cfg.FlaggerModel)
}

func TestConfig_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		wantHost string
	}{
		{"appends v1", "https://api.example.com", "https://api.example.com/v1"},
		{"strips trailing slash", "https://api.example.com/", "https://api.example.com/v1"},
		{"already canonical", "https://api.example.com/v1", "https://api.example.com/v1"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Host: tt.host}
			cfg.Normalize()
			assert.Equal(t, tt.wantHost, cfg.Host)
		})
	}
}

func TestConfig_Normalize_EmptyToken(t *testing.T) {
	cfg := &Config{Host: "https://api.example.com/v1"}
	cfg.Normalize()
	assert.Equal(t, "none", cfg.Token)
}

func TestConfig_Validate(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Validate())

	assert.Error(t, (&Config{}).Validate())
	assert.Error(t, (&Config{Host: "https://api.example.com"}).Validate())
	assert.Error(t, (&Config{
		Host:           "https://api.example.com",
		CorrectorModel: "gpt-4o-mini",
		ExtractorModel: "gpt-4o-mini",
	}).Validate())
	assert.Error(t, (&Config{
		Host:            "https://api.example.com",
		CorrectorModel:  "gpt-4o-mini",
		ExtractorModel:  "gpt-4o-mini",
		ClassifierModel: "gpt-4o-mini",
	}).Validate())
}
