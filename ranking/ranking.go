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


package ranking

import (
	"sort"

	"github.com/SG-AI-Team/search-bar/vector"
	"github.com/tmc/langchaingo/schema"
)

// Default weights for the hybrid score.
const (
	DefaultSimWeight  = 0.7
	DefaultRankWeight = 0.3
)

// Rank orders candidates by combining vector similarity with the
// external authority ranking.
//
// Candidates with a known authority rank (rank > 0) always precede
// unranked candidates, ordered by raw rank ascending; the unranked tier
// is ordered by hybrid score descending. The hybrid score
// (simWeight*similarity + rankWeight*rankNorm) is computed for every
// candidate and stored in metadata, but only orders the unranked tier.
//
// Ranking degradation is non-fatal: an empty candidate set returns an
// empty slice, and candidates with unusable metadata sort with zero
// scores rather than failing the retrieval.
func Rank(candidates []vector.ScoredDocument, rankWeight, simWeight float64) []schema.Document {
	if len(candidates) == 0 {
		return []schema.Document{}
	}

	docs := make([]schema.Document, 0, len(candidates))
	similarities := make([]float64, 0, len(candidates))
	ranks := make([]float64, 0, len(candidates))

	maxRank := 0.0
	for _, candidate := range candidates {
		doc := candidate.Document
		doc.Metadata = vector.CloneMetadata(candidate.Document)

		similarity := 1 - candidate.Distance
		doc.Metadata[vector.MetaSimilarity] = similarity

		rank := vector.FloatMeta(doc, vector.MetaRank)
		if rank > maxRank {
			maxRank = rank
		}

		docs = append(docs, doc)
		similarities = append(similarities, similarity)
		ranks = append(ranks, rank)
	}

	for i := range docs {
		rankNorm := ranks[i]
		if maxRank > 0 {
			rankNorm = ranks[i] / maxRank
		}
		docs[i].Metadata[vector.MetaHybridScore] = simWeight*similarities[i] + rankWeight*rankNorm
	}

	ranked := make([]schema.Document, 0, len(docs))
	unranked := make([]schema.Document, 0, len(docs))
	for i, doc := range docs {
		if ranks[i] > 0 {
			ranked = append(ranked, doc)
		} else {
			unranked = append(unranked, doc)
		}
	}

	// Lower rank number = better. Hybrid score does not reorder this tier.
	sort.SliceStable(ranked, func(i, j int) bool {
		return vector.FloatMeta(ranked[i], vector.MetaRank) < vector.FloatMeta(ranked[j], vector.MetaRank)
	})

	sort.SliceStable(unranked, func(i, j int) bool {
		return vector.FloatMeta(unranked[i], vector.MetaHybridScore) > vector.FloatMeta(unranked[j], vector.MetaHybridScore)
	})

	return append(ranked, unranked...)
}
