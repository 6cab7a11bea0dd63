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


package vector

import (
	"context"

	"github.com/SG-AI-Team/search-bar/filter"
	"github.com/tmc/langchaingo/schema"
)

// ScoredDocument pairs an indexed document with its distance to the
// query embedding as reported by the nearest-neighbor service.
// Similarity is 1 - Distance.
type ScoredDocument struct {
	Document schema.Document
	Distance float64
}

// Index is the nearest-neighbor service boundary. Implementations wrap
// an external vector database; the embedding model and index mechanics
// are opaque to this module. Predicates are passed as structured trees
// and evaluated by the service.
//
// Implementations must be safe for concurrent use.
type Index interface {
	// SimilaritySearch returns up to k documents ordered by ascending
	// distance to the query, restricted by the predicate.
	SimilaritySearch(ctx context.Context, query string, k int, p filter.Predicate) ([]ScoredDocument, error)

	// MMRSearch over-fetches fetchK candidates and selects k of them
	// with maximal-marginal-relevance semantics, balancing relevance
	// against diversity via lambda (1 = pure relevance, 0 = pure
	// diversity), restricted by the predicate.
	MMRSearch(ctx context.Context, query string, k, fetchK int, lambda float64, p filter.Predicate) ([]schema.Document, error)
}
