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


// Package ai provides abstractions for the language-model collaborators
// used by the search bar.
//
// This package defines interfaces for the four model-backed operations a
// search pass depends on: typo correction, intent-field extraction,
// relevance classification, and specialization flagging. It follows the
// dependency inversion principle, allowing the search pipeline to depend
// on abstractions rather than concrete implementations.
//
// # Design Principles
//
// The package is designed around five key interfaces:
//
//   - QueryCorrector: Rewrites raw queries into clean English
//   - FieldExtractor: Extracts structured intent fields from a query
//   - RelevanceClassifier: Selects the relevant subset of candidates
//   - SpecializationFlagger: Marks programs matching via a specialization
//   - Provider: Aggregates the services for convenient initialization
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider) return INTERFACE types to
// enforce abstraction and prevent accidental coupling to concrete
// implementations.
//
//	provider, err := openai.NewProvider(config)  // returns ai.Provider
//
// Test utility constructors in ai/mock return CONCRETE types to enable
// behavior injection via exported Func fields and call-count assertions.
//
//	corrector := mock.NewCorrector()       // returns *mock.Corrector
//	corrector.CorrectQueryFunc = func(...) // needs concrete type
//	count := corrector.CallCount()         // test assertion
//
// # Usage Example
//
//	config := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434"),
//	    ai.WithModel("qwen2.5:3b"),
//	)
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	corrected, err := provider.QueryCorrector().CorrectQuery(ctx, "mashine lerning in germny")
//	fields, err := provider.FieldExtractor().ExtractFields(ctx, corrected)
//
// # Degradation Contract
//
// Callers treat every error from these services as advisory: a failed
// correction falls back to the raw query, a failed extraction to empty
// fields, a failed classification to the unclassified candidate list,
// and a failed flagging to an unflagged page. A search never fails
// because a model call did.
package ai
