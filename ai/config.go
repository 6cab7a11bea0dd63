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
	"errors"
	"strings"
)

// Config holds configuration for the language-model collaborators.
type Config struct {
	// Host is the base URL for the OpenAI-compatible chat API.
	// Example: "http://localhost:11434/v1" for a local server.
	Host string

	// Token authenticates against the chat API.
	// Use "none" for local services that don't require authentication.
	Token string

	// CorrectorModel is the model identifier for typo correction.
	CorrectorModel string

	// ExtractorModel is the model identifier for intent-field extraction.
	ExtractorModel string

	// ClassifierModel is the model identifier for relevance classification.
	ClassifierModel string

	// FlaggerModel is the model identifier for specialization flagging.
	FlaggerModel string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithHost sets the chat API host URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithToken sets the chat API token.
func WithToken(token string) ConfigOption {
	return func(c *Config) {
		c.Token = token
	}
}

// WithModel sets the same model identifier for all three collaborators.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.CorrectorModel = model
		c.ExtractorModel = model
		c.ClassifierModel = model
		c.FlaggerModel = model
	}
}

// WithCorrectorModel sets the typo-correction model identifier.
func WithCorrectorModel(model string) ConfigOption {
	return func(c *Config) {
		c.CorrectorModel = model
	}
}

// WithExtractorModel sets the field-extraction model identifier.
func WithExtractorModel(model string) ConfigOption {
	return func(c *Config) {
		c.ExtractorModel = model
	}
}

// WithClassifierModel sets the relevance-classification model identifier.
func WithClassifierModel(model string) ConfigOption {
	return func(c *Config) {
		c.ClassifierModel = model
	}
}

// WithFlaggerModel sets the specialization-flagging model identifier.
func WithFlaggerModel(model string) ConfigOption {
	return func(c *Config) {
		c.FlaggerModel = model
	}
}

// DefaultConfig returns a Config with sensible defaults for a local
// OpenAI-compatible service.
func DefaultConfig() *Config {
	return &Config{
		Host:            "http://localhost:11434/v1",
		Token:           "none",
		CorrectorModel:  "gpt-4o-mini",
		ExtractorModel:  "gpt-4o-mini",
		ClassifierModel: "gpt-4o-mini",
		FlaggerModel:    "gpt-4o-mini",
	}
}

// NewConfig creates a Config with default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in canonical form: the host
// carries the /v1 suffix required by OpenAI-compatible APIs, and an
// empty token falls back to "none" for unauthenticated local services.
func (c *Config) Normalize() {
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/")
		c.Host = c.Host + "/v1"
	}
	if c.Token == "" {
		c.Token = "none"
	}
}

// Validate checks that the configuration is valid and complete.
// It normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Host == "" {
		return errors.New("ai config: Host is required")
	}
	if c.CorrectorModel == "" {
		return errors.New("ai config: CorrectorModel is required")
	}
	if c.ExtractorModel == "" {
		return errors.New("ai config: ExtractorModel is required")
	}
	if c.ClassifierModel == "" {
		return errors.New("ai config: ClassifierModel is required")
	}
	if c.FlaggerModel == "" {
		return errors.New("ai config: FlaggerModel is required")
	}
	return nil
}
