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

import (
	"context"
	"sort"

	"github.com/SG-AI-Team/search-bar/filter"
	"github.com/SG-AI-Team/search-bar/vector"
	"github.com/tmc/langchaingo/schema"
)

// Index is a deterministic test double for vector.Index.
// It serves seeded documents in distance order and honors predicates via
// the in-process filter evaluator. Behavior can be overridden per call
// through the Func fields.
type Index struct {
	// Docs are the seeded candidates, in the relevance order the fake
	// "embedding space" would produce.
	Docs []vector.ScoredDocument

	// SimilaritySearchFunc overrides SimilaritySearch if set.
	SimilaritySearchFunc func(ctx context.Context, query string, k int, p filter.Predicate) ([]vector.ScoredDocument, error)

	// MMRSearchFunc overrides MMRSearch if set.
	MMRSearchFunc func(ctx context.Context, query string, k, fetchK int, lambda float64, p filter.Predicate) ([]schema.Document, error)

	similarityCalls int
	mmrCalls        int
}

var _ vector.Index = (*Index)(nil)

// NewIndex creates a mock index seeded with the given documents.
func NewIndex(docs ...vector.ScoredDocument) *Index {
	return &Index{Docs: docs}
}

// SimilaritySearch returns the k closest seeded documents matching the predicate.
func (m *Index) SimilaritySearch(ctx context.Context, query string, k int, p filter.Predicate) ([]vector.ScoredDocument, error) {
	m.similarityCalls++

	if m.SimilaritySearchFunc != nil {
		return m.SimilaritySearchFunc(ctx, query, k, p)
	}

	matched := make([]vector.ScoredDocument, 0, len(m.Docs))
	for _, sd := range m.Docs {
		if !filter.Matches(p.Where, sd.Document.Metadata) {
			continue
		}
		if !filter.MatchesContent(p.WhereDocument, sd.Document.PageContent) {
			continue
		}
		matched = append(matched, sd)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Distance < matched[j].Distance
	})

	if k > 0 && len(matched) > k {
		matched = matched[:k]
	}
	return matched, nil
}

// MMRSearch returns up to k matching documents in seeded order.
// The mock does not model diversity; seeded order stands in for the
// relevance/diversity tradeoff.
func (m *Index) MMRSearch(ctx context.Context, query string, k, fetchK int, lambda float64, p filter.Predicate) ([]schema.Document, error) {
	m.mmrCalls++

	if m.MMRSearchFunc != nil {
		return m.MMRSearchFunc(ctx, query, k, fetchK, lambda, p)
	}

	matched := make([]schema.Document, 0, len(m.Docs))
	for _, sd := range m.Docs {
		if fetchK > 0 && len(matched) >= fetchK {
			break
		}
		if !filter.Matches(p.Where, sd.Document.Metadata) {
			continue
		}
		if !filter.MatchesContent(p.WhereDocument, sd.Document.PageContent) {
			continue
		}
		matched = append(matched, sd.Document)
	}

	if k > 0 && len(matched) > k {
		matched = matched[:k]
	}
	return matched, nil
}

// SimilarityCalls returns how many times SimilaritySearch was invoked.
func (m *Index) SimilarityCalls() int {
	return m.similarityCalls
}

// MMRCalls returns how many times MMRSearch was invoked.
func (m *Index) MMRCalls() int {
	return m.mmrCalls
}
