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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/schema"

	"github.com/SG-AI-Team/search-bar/vector"
)

func candidate(name string, rank any, distance float64) vector.ScoredDocument {
	meta := map[string]any{"name": name}
	if rank != nil {
		meta[vector.MetaRank] = rank
	}
	return vector.ScoredDocument{
		Document: schema.Document{PageContent: name, Metadata: meta},
		Distance: distance,
	}
}

func names(docs []schema.Document) []string {
	out := make([]string, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.PageContent)
	}
	return out
}

func TestRank_Empty(t *testing.T) {
	docs := Rank(nil, DefaultRankWeight, DefaultSimWeight)
	assert.Empty(t, docs)
}

func TestRank_Tiering(t *testing.T) {
	// Ranks (5, 0, 2) with similarities (0.1, 0.9, 0.5): the ranked tier
	// goes first ordered by raw rank, the unranked candidate last despite
	// its top similarity.
	candidates := []vector.ScoredDocument{
		candidate("rank5", float64(5), 0.9),
		candidate("unranked", nil, 0.1),
		candidate("rank2", float64(2), 0.5),
	}

	docs := Rank(candidates, DefaultRankWeight, DefaultSimWeight)
	require.Len(t, docs, 3)
	assert.Equal(t, []string{"rank2", "rank5", "unranked"}, names(docs))
}

func TestRank_UnrankedTierByHybridScore(t *testing.T) {
	candidates := []vector.ScoredDocument{
		candidate("far", nil, 0.8),
		candidate("near", nil, 0.1),
		candidate("middle", nil, 0.5),
	}

	docs := Rank(candidates, DefaultRankWeight, DefaultSimWeight)
	assert.Equal(t, []string{"near", "middle", "far"}, names(docs))
}

func TestRank_MetadataEnrichment(t *testing.T) {
	candidates := []vector.ScoredDocument{
		candidate("a", float64(1), 0.25),
		candidate("b", float64(4), 0.5),
	}

	docs := Rank(candidates, DefaultRankWeight, DefaultSimWeight)
	require.Len(t, docs, 2)

	// rank 1 of maxRank 4 normalizes to 0.25; similarity = 1 - 0.25.
	first := docs[0]
	assert.InDelta(t, 0.75, vector.FloatMeta(first, vector.MetaSimilarity), 1e-9)
	assert.InDelta(t, 0.7*0.75+0.3*0.25, vector.FloatMeta(first, vector.MetaHybridScore), 1e-9)

	// The input documents' metadata is not mutated.
	assert.NotContains(t, candidates[0].Document.Metadata, vector.MetaHybridScore)
}

func TestRank_Deterministic(t *testing.T) {
	candidates := []vector.ScoredDocument{
		candidate("a", float64(3), 0.4),
		candidate("b", nil, 0.2),
		candidate("c", float64(1), 0.6),
	}

	first := names(Rank(candidates, DefaultRankWeight, DefaultSimWeight))
	second := names(Rank(candidates, DefaultRankWeight, DefaultSimWeight))
	assert.Equal(t, first, second)
}
