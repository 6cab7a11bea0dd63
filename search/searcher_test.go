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


package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/schema"

	"github.com/SG-AI-Team/search-bar/ai"
	aimock "github.com/SG-AI-Team/search-bar/ai/mock"
	"github.com/SG-AI-Team/search-bar/core"
	"github.com/SG-AI-Team/search-bar/filter"
	"github.com/SG-AI-Team/search-bar/storage"
	"github.com/SG-AI-Team/search-bar/storage/badger"
	"github.com/SG-AI-Team/search-bar/vector"
	vecmock "github.com/SG-AI-Team/search-bar/vector/mock"
)

func schoolDoc(schoolID core.ID, content string, distance float64) vector.ScoredDocument {
	return vector.ScoredDocument{
		Document: schema.Document{
			PageContent: content,
			Metadata:    map[string]any{vector.MetaSchoolID: schoolID.String()},
		},
		Distance: distance,
	}
}

func programDoc(programID, schoolID core.ID, content string, distance float64) vector.ScoredDocument {
	return vector.ScoredDocument{
		Document: schema.Document{
			PageContent: content,
			Metadata: map[string]any{
				vector.MetaSchoolID:  schoolID.String(),
				vector.MetaProgramID: programID.String(),
			},
		},
		Distance: distance,
	}
}

func seedRepos(t *testing.T) (storage.SchoolRepository, storage.ProgramRepository) {
	t.Helper()
	schoolRepo, programRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	ctx := context.Background()
	require.NoError(t, schoolRepo.PutSchoolRecords(ctx,
		&core.SchoolRecord{ID: 1, Name: "Alpha Business School", Country: "France", Rank: 12, ProgramCount: 2},
		&core.SchoolRecord{ID: 2, Name: "Beta Institute", Country: "Germany", ProgramCount: 1},
	))
	require.NoError(t, programRepo.PutProgramRecords(ctx,
		&core.ProgramRecord{ID: 42, SchoolID: 1, SchoolName: "Alpha Business School", Name: "MSc Finance", Type: "MSc"},
		&core.ProgramRecord{ID: 43, SchoolID: 2, SchoolName: "Beta Institute", Name: "MSc Data Science", Type: "MSc"},
	))
	return schoolRepo, programRepo
}

func TestNewSearcher_RequiredArgs(t *testing.T) {
	schoolRepo, programRepo := seedRepos(t)
	index := vecmock.NewIndex()

	_, err := NewSearcher(index, nil, schoolRepo, programRepo)
	assert.ErrorIs(t, err, ErrProviderRequired)

	_, err = NewSearcher(index, aimock.NewProvider(), nil, programRepo)
	assert.ErrorIs(t, err, ErrSchoolRepositoryRequired)

	_, err = NewSearcher(index, aimock.NewProvider(), schoolRepo, nil)
	assert.ErrorIs(t, err, ErrProgramRepositoryRequired)
}

func TestSearch_NilIndexReturnsEmptyPage(t *testing.T) {
	schoolRepo, programRepo := seedRepos(t)

	searcher, err := NewSearcher(nil, aimock.NewProvider(), schoolRepo, programRepo)
	require.NoError(t, err)

	page, err := searcher.Search(context.Background(), Request{
		Query:              "finance",
		Scope:              ScopePrograms,
		ExcludedProgramIDs: []core.ID{42},
	})
	require.NoError(t, err)

	assert.Empty(t, page.Results)
	assert.Empty(t, page.ProgramIDs)
	// The request's exclusion state survives untouched.
	assert.Equal(t, []core.ID{42}, page.ExcludedProgramIDs)
}

func TestSearch_ProgramsScope(t *testing.T) {
	schoolRepo, programRepo := seedRepos(t)
	index := vecmock.NewIndex(
		programDoc(42, 1, "MSc Finance at Alpha", 0.1),
		programDoc(43, 2, "MSc Data Science at Beta", 0.2),
	)

	searcher, err := NewSearcher(index, aimock.NewProvider(), schoolRepo, programRepo)
	require.NoError(t, err)

	page, err := searcher.Search(context.Background(), Request{Query: "master in finance", Scope: ScopePrograms})
	require.NoError(t, err)

	require.Len(t, page.Results, 2)
	assert.Equal(t, "MSc Finance", page.Results[0].Program.Name)
	assert.Equal(t, "MSc Data Science", page.Results[1].Program.Name)
	assert.Equal(t, []core.ID{42, 43}, page.ProgramIDs)
	assert.Empty(t, page.SchoolIDs)
	assert.Equal(t, []core.ID{42, 43}, page.ExcludedProgramIDs)

	// Programs retrieval goes through the diversity-aware path.
	assert.Equal(t, 1, index.MMRCalls())
	assert.Zero(t, index.SimilarityCalls())
}

func TestSearch_SchoolsScopeUsesSimilarityPath(t *testing.T) {
	schoolRepo, programRepo := seedRepos(t)
	alpha := schoolDoc(1, "Alpha Business School, Paris", 0.2)
	alpha.Document.Metadata[vector.MetaRank] = float64(12)
	beta := schoolDoc(2, "Beta Institute, Berlin", 0.1)
	index := vecmock.NewIndex(beta, alpha)

	searcher, err := NewSearcher(index, aimock.NewProvider(), schoolRepo, programRepo)
	require.NoError(t, err)

	page, err := searcher.Search(context.Background(), Request{Query: "business school", Scope: ScopeSchools})
	require.NoError(t, err)

	assert.Equal(t, 1, index.SimilarityCalls())
	assert.Zero(t, index.MMRCalls())

	// Ranked candidates come first: Alpha carries rank 12, Beta is unranked.
	require.Len(t, page.Results, 2)
	assert.Equal(t, "Alpha Business School", page.Results[0].School.Name)
	assert.Equal(t, "Beta Institute", page.Results[1].School.Name)
}

func TestSearch_EmptyQuerySchoolsBrowsesCatalog(t *testing.T) {
	schoolRepo, programRepo := seedRepos(t)

	var gotK int
	index := vecmock.NewIndex()
	index.SimilaritySearchFunc = func(ctx context.Context, query string, k int, p filter.Predicate) ([]vector.ScoredDocument, error) {
		gotK = k
		return nil, nil
	}

	searcher, err := NewSearcher(index, aimock.NewProvider(), schoolRepo, programRepo)
	require.NoError(t, err)

	_, err = searcher.Search(context.Background(), Request{Query: "", Scope: ScopeSchools})
	require.NoError(t, err)
	assert.Equal(t, defaultAllSchoolsK, gotK)
}

func TestSearch_Dedup(t *testing.T) {
	schoolRepo, programRepo := seedRepos(t)
	index := vecmock.NewIndex(
		programDoc(42, 1, "MSc Finance, September intake", 0.1),
		programDoc(42, 1, "MSc Finance, January intake", 0.2),
		programDoc(43, 2, "MSc Data Science", 0.3),
	)

	searcher, err := NewSearcher(index, aimock.NewProvider(), schoolRepo, programRepo)
	require.NoError(t, err)

	page, err := searcher.Search(context.Background(), Request{Query: "finance", Scope: ScopePrograms})
	require.NoError(t, err)

	assert.Equal(t, []core.ID{42, 43}, page.ProgramIDs)
	assert.Len(t, page.Results, 2)
}

func TestSearch_AllScopeEmitsSchoolsAndPrograms(t *testing.T) {
	schoolRepo, programRepo := seedRepos(t)
	index := vecmock.NewIndex(
		programDoc(42, 1, "MSc Finance at Alpha", 0.1),
		programDoc(43, 2, "MSc Data Science at Beta", 0.2),
	)

	searcher, err := NewSearcher(index, aimock.NewProvider(), schoolRepo, programRepo)
	require.NoError(t, err)

	page, err := searcher.Search(context.Background(), Request{Query: "masters in europe"})
	require.NoError(t, err)

	assert.Equal(t, []core.ID{1, 2}, page.SchoolIDs)
	assert.Equal(t, []core.ID{42, 43}, page.ProgramIDs)
	require.Len(t, page.Results, 4)
	assert.NotNil(t, page.Results[0].School)
	assert.NotNil(t, page.Results[1].Program)
}

func TestSearch_LoadMoreExcludesSeenIDs(t *testing.T) {
	schoolRepo, programRepo := seedRepos(t)
	index := vecmock.NewIndex(
		programDoc(42, 1, "MSc Finance", 0.1),
		programDoc(43, 2, "MSc Data Science", 0.2),
	)

	searcher, err := NewSearcher(index, aimock.NewProvider(), schoolRepo, programRepo)
	require.NoError(t, err)

	ctx := context.Background()
	first, err := searcher.Search(ctx, Request{Query: "masters", Scope: ScopePrograms})
	require.NoError(t, err)
	require.Equal(t, []core.ID{42, 43}, first.ProgramIDs)

	second, err := searcher.Search(ctx, Request{
		Query:              "masters",
		Scope:              ScopePrograms,
		LoadMore:           true,
		ExcludedProgramIDs: first.ExcludedProgramIDs,
	})
	require.NoError(t, err)

	assert.Empty(t, second.ProgramIDs, "a continuation must not repeat identifiers")
	assert.Equal(t, []core.ID{42, 43}, second.ExcludedProgramIDs)
}

func TestSearch_FilterQueryRestrictsToSeenIDs(t *testing.T) {
	schoolRepo, programRepo := seedRepos(t)
	index := vecmock.NewIndex(
		programDoc(42, 1, "MSc Finance", 0.1),
		programDoc(43, 2, "MSc Data Science", 0.2),
	)

	searcher, err := NewSearcher(index, aimock.NewProvider(), schoolRepo, programRepo)
	require.NoError(t, err)

	page, err := searcher.Search(context.Background(), Request{
		Query:              "finance",
		Scope:              ScopePrograms,
		FilterQuery:        true,
		ExcludedProgramIDs: []core.ID{42},
	})
	require.NoError(t, err)

	assert.Equal(t, []core.ID{42}, page.ProgramIDs)
}

func TestSearch_ShortQuerySkipsCorrectionAndClassification(t *testing.T) {
	schoolRepo, programRepo := seedRepos(t)
	index := vecmock.NewIndex(programDoc(42, 1, "MSc Finance", 0.1))

	provider := aimock.NewProvider().(*aimock.Provider)
	searcher, err := NewSearcher(index, provider, schoolRepo, programRepo)
	require.NoError(t, err)

	_, err = searcher.Search(context.Background(), Request{Query: "ai", Scope: ScopePrograms})
	require.NoError(t, err)

	assert.Zero(t, provider.GetCorrector().CallCount())
	assert.Zero(t, provider.GetRelevanceClassifier().CallCount())
	// Field extraction always runs.
	assert.Equal(t, 1, provider.GetFieldExtractor().CallCount())
}

func TestSearch_ClassificationGateUsesCorrectedQuery(t *testing.T) {
	schoolRepo, programRepo := seedRepos(t)
	index := vecmock.NewIndex(programDoc(42, 1, "MSc Finance", 0.1))

	// A long query collapsing to a short corrected form must skip
	// classification just like a raw short query would.
	corrector := aimock.NewCorrector()
	corrector.CorrectQueryFunc = func(ctx context.Context, query string) (string, error) {
		return "ai", nil
	}
	classifier := aimock.NewRelevanceClassifier()

	searcher, err := NewSearcher(index,
		aimock.NewProviderWithServices(corrector, aimock.NewFieldExtractor(), classifier, aimock.NewSpecializationFlagger()),
		schoolRepo, programRepo)
	require.NoError(t, err)

	page, err := searcher.Search(context.Background(), Request{Query: "artificial intelligence", Scope: ScopePrograms})
	require.NoError(t, err)

	assert.Equal(t, 1, corrector.CallCount())
	assert.Zero(t, classifier.CallCount())
	assert.Len(t, page.Results, 1)
}

func TestSearch_SpecializationFlagApplied(t *testing.T) {
	schoolRepo, programRepo := seedRepos(t)
	index := vecmock.NewIndex(
		programDoc(42, 1, "MSc Finance", 0.1),
		programDoc(43, 2, "MSc Data Science", 0.2),
	)

	var seen []*core.ProgramRecord
	flagger := aimock.NewSpecializationFlagger()
	flagger.FlagSpecializationsFunc = func(ctx context.Context, fields *ai.QueryFields, programs []*core.ProgramRecord) ([]int, error) {
		seen = programs
		return []int{1, 5}, nil
	}

	searcher, err := NewSearcher(index,
		aimock.NewProviderWithServices(aimock.NewCorrector(), aimock.NewFieldExtractor(), aimock.NewRelevanceClassifier(), flagger),
		schoolRepo, programRepo)
	require.NoError(t, err)

	page, err := searcher.Search(context.Background(), Request{Query: "machine learning", Scope: ScopePrograms})
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, core.ID(42), seen[0].ID)
	assert.Equal(t, core.ID(43), seen[1].ID)

	// Index 1 flags the second program; the out-of-range index is ignored.
	require.Len(t, page.Results, 2)
	assert.False(t, page.Results[0].IsSpecialization)
	assert.True(t, page.Results[1].IsSpecialization)
	assert.Equal(t, 1, flagger.CallCount())
}

func TestSearch_SpecializationFlagSkipsSchoolResults(t *testing.T) {
	schoolRepo, programRepo := seedRepos(t)
	index := vecmock.NewIndex(
		programDoc(42, 1, "MSc Finance", 0.1),
	)

	flagger := aimock.NewSpecializationFlagger()
	flagger.FlagSpecializationsFunc = func(ctx context.Context, fields *ai.QueryFields, programs []*core.ProgramRecord) ([]int, error) {
		return []int{0}, nil
	}

	searcher, err := NewSearcher(index,
		aimock.NewProviderWithServices(aimock.NewCorrector(), aimock.NewFieldExtractor(), aimock.NewRelevanceClassifier(), flagger),
		schoolRepo, programRepo)
	require.NoError(t, err)

	page, err := searcher.Search(context.Background(), Request{Query: "finance", Scope: ScopeAll})
	require.NoError(t, err)

	// The flag lands on the program entry, never on its school entry.
	require.Len(t, page.Results, 2)
	for _, result := range page.Results {
		if result.School != nil {
			assert.False(t, result.IsSpecialization)
		}
		if result.Program != nil {
			assert.True(t, result.IsSpecialization)
		}
	}
}

func TestSearch_CollaboratorFailuresDegrade(t *testing.T) {
	schoolRepo, programRepo := seedRepos(t)
	index := vecmock.NewIndex(programDoc(42, 1, "MSc Finance", 0.1))

	corrector := aimock.NewCorrector()
	corrector.CorrectQueryFunc = func(ctx context.Context, query string) (string, error) {
		return "", errors.New("model unavailable")
	}
	extractor := aimock.NewFieldExtractor()
	extractor.ExtractFieldsFunc = func(ctx context.Context, query string) (*ai.QueryFields, error) {
		return nil, errors.New("model unavailable")
	}
	classifier := aimock.NewRelevanceClassifier()
	classifier.ClassifyFunc = func(ctx context.Context, query string, candidates []schema.Document, fields *ai.QueryFields) ([]schema.Document, error) {
		return nil, errors.New("model unavailable")
	}
	flagger := aimock.NewSpecializationFlagger()
	flagger.FlagSpecializationsFunc = func(ctx context.Context, fields *ai.QueryFields, programs []*core.ProgramRecord) ([]int, error) {
		return nil, errors.New("model unavailable")
	}

	searcher, err := NewSearcher(index,
		aimock.NewProviderWithServices(corrector, extractor, classifier, flagger),
		schoolRepo, programRepo)
	require.NoError(t, err)

	page, err := searcher.Search(context.Background(), Request{Query: "finance", Scope: ScopePrograms})
	require.NoError(t, err)

	// Every failure falls back: raw query, no fields, all candidates
	// kept, nothing flagged.
	require.Len(t, page.Results, 1)
	assert.Equal(t, core.ID(42), page.Results[0].Program.ID)
	assert.False(t, page.Results[0].IsSpecialization)
}

func TestSearch_IndexFailureYieldsEmptyPage(t *testing.T) {
	schoolRepo, programRepo := seedRepos(t)

	index := vecmock.NewIndex()
	index.MMRSearchFunc = func(ctx context.Context, query string, k, fetchK int, lambda float64, p filter.Predicate) ([]schema.Document, error) {
		return nil, errors.New("index unavailable")
	}

	searcher, err := NewSearcher(index, aimock.NewProvider(), schoolRepo, programRepo)
	require.NoError(t, err)

	page, err := searcher.Search(context.Background(), Request{Query: "finance", Scope: ScopePrograms})
	require.NoError(t, err)
	assert.Empty(t, page.Results)
}

func TestSearch_ClassifierSelectionApplied(t *testing.T) {
	schoolRepo, programRepo := seedRepos(t)
	index := vecmock.NewIndex(
		programDoc(42, 1, "MSc Finance", 0.1),
		programDoc(43, 2, "MSc Data Science", 0.2),
	)

	classifier := aimock.NewRelevanceClassifier()
	classifier.ClassifyFunc = func(ctx context.Context, query string, candidates []schema.Document, fields *ai.QueryFields) ([]schema.Document, error) {
		return candidates[:1], nil
	}

	searcher, err := NewSearcher(index,
		aimock.NewProviderWithServices(aimock.NewCorrector(), aimock.NewFieldExtractor(), classifier, aimock.NewSpecializationFlagger()),
		schoolRepo, programRepo)
	require.NoError(t, err)

	page, err := searcher.Search(context.Background(), Request{Query: "finance", Scope: ScopePrograms})
	require.NoError(t, err)

	assert.Equal(t, []core.ID{42}, page.ProgramIDs)
	assert.Len(t, page.Raw, 1)
}

func TestSearch_MissingParentRecordSkipped(t *testing.T) {
	schoolRepo, programRepo := seedRepos(t)
	index := vecmock.NewIndex(
		programDoc(999, 1, "Orphaned program", 0.1),
		programDoc(42, 1, "MSc Finance", 0.2),
	)

	searcher, err := NewSearcher(index, aimock.NewProvider(), schoolRepo, programRepo)
	require.NoError(t, err)

	page, err := searcher.Search(context.Background(), Request{Query: "finance", Scope: ScopePrograms})
	require.NoError(t, err)

	assert.Equal(t, []core.ID{42}, page.ProgramIDs)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "MSc Finance", page.Results[0].Program.Name)
}

func TestSearch_Options(t *testing.T) {
	schoolRepo, programRepo := seedRepos(t)

	var gotK, gotFetchK int
	var gotLambda float64
	index := vecmock.NewIndex()
	index.MMRSearchFunc = func(ctx context.Context, query string, k, fetchK int, lambda float64, p filter.Predicate) ([]schema.Document, error) {
		gotK, gotFetchK, gotLambda = k, fetchK, lambda
		return nil, nil
	}

	searcher, err := NewSearcher(index, aimock.NewProvider(), schoolRepo, programRepo,
		WithK(5), WithFetchK(10), WithLambda(0.8))
	require.NoError(t, err)

	_, err = searcher.Search(context.Background(), Request{Query: "finance", Scope: ScopePrograms})
	require.NoError(t, err)
	assert.Equal(t, 5, gotK)
	assert.Equal(t, 10, gotFetchK)
	assert.InDelta(t, 0.8, gotLambda, 1e-9)
}
