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
	"log/slog"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tmc/langchaingo/schema"

	"github.com/SG-AI-Team/search-bar/ai"
	"github.com/SG-AI-Team/search-bar/core"
	"github.com/SG-AI-Team/search-bar/filter"
	"github.com/SG-AI-Team/search-bar/ranking"
	"github.com/SG-AI-Team/search-bar/storage"
	"github.com/SG-AI-Team/search-bar/vector"
)

// Scope selects which entity class a search returns.
type Scope string

const (
	ScopeSchools  Scope = "schools"
	ScopePrograms Scope = "programs"
	ScopeAll      Scope = "all"
)

const (
	// Queries shorter than this skip typo correction and relevance
	// classification entirely.
	shortQueryThreshold = 3

	defaultK           = 15
	defaultFetchK      = 30
	defaultLambda      = 0.4
	defaultAllSchoolsK = 1000
	defaultCallTimeout = 15 * time.Second
)

// Request carries one search round. Exclusion sets are owned by the
// caller and passed by value each round; the searcher never mutates them.
type Request struct {
	// Query is the raw user input.
	Query string

	// Scope selects schools, programs, or both. Empty means ScopeAll.
	Scope Scope

	// ExcludedSchoolIDs and ExcludedProgramIDs carry the identifiers
	// already shown to the caller. On a LoadMore round they are
	// excluded from retrieval; on a FilterQuery round they restrict it.
	ExcludedSchoolIDs  []core.ID
	ExcludedProgramIDs []core.ID

	// LoadMore marks a pagination continuation.
	LoadMore bool

	// FilterQuery marks a refinement round: the query re-ranks within
	// the previously returned identifiers instead of the whole index.
	FilterQuery bool

	// Filters are caller-supplied filter statements (see filter.Compile).
	Filters []filter.Statement
}

// Result is one resolved entry of a result page. Exactly one of the two
// record fields is set.
type Result struct {
	School  *core.SchoolRecord  `json:"school,omitempty"`
	Program *core.ProgramRecord `json:"program,omitempty"`

	// IsSpecialization marks a program that answers the query through
	// one of its specialization tracks rather than its name.
	IsSpecialization bool `json:"is_specialization,omitempty"`
}

// Page is the outcome of one search round.
type Page struct {
	// Results in retrieval order, deduplicated first-seen.
	Results []Result

	// SchoolIDs and ProgramIDs are the identifiers emitted on this page.
	SchoolIDs  []core.ID
	ProgramIDs []core.ID

	// ExcludedSchoolIDs and ExcludedProgramIDs are the request's
	// exclusion sets unioned with every identifier just emitted; pass
	// them back on the next LoadMore round.
	ExcludedSchoolIDs  []core.ID
	ExcludedProgramIDs []core.ID

	// Raw holds the post-classification candidate documents.
	Raw []schema.Document
}

// Searcher orchestrates one retrieval session round: typo correction,
// intent extraction, predicate compilation, candidate retrieval, relevance
// classification, and parent-record resolution.
type Searcher struct {
	index       vector.Index
	corrector   ai.QueryCorrector
	extractor   ai.FieldExtractor
	classifier  ai.RelevanceClassifier
	flagger     ai.SpecializationFlagger
	schoolRepo  storage.SchoolRepository
	programRepo storage.ProgramRepository

	k           int
	fetchK      int
	lambda      float64
	simWeight   float64
	rankWeight  float64
	allSchoolsK int
	callTimeout time.Duration
	logger      *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithK sets the result page size.
// Default is 15.
func WithK(k int) Option {
	return func(s *Searcher) error {
		if k > 0 {
			s.k = k
		}
		return nil
	}
}

// WithFetchK sets the MMR over-fetch size.
// Default is 30.
func WithFetchK(fetchK int) Option {
	return func(s *Searcher) error {
		if fetchK > 0 {
			s.fetchK = fetchK
		}
		return nil
	}
}

// WithLambda sets the MMR relevance/diversity balance.
// Default is 0.4.
func WithLambda(lambda float64) Option {
	return func(s *Searcher) error {
		if lambda >= 0 && lambda <= 1 {
			s.lambda = lambda
		}
		return nil
	}
}

// WithWeights sets the hybrid ranking weights for the schools path.
// Defaults are 0.3 for rank and 0.7 for similarity.
func WithWeights(rankWeight, simWeight float64) Option {
	return func(s *Searcher) error {
		s.rankWeight = rankWeight
		s.simWeight = simWeight
		return nil
	}
}

// WithCallTimeout bounds each external collaborator call.
// Default is 15 seconds.
func WithCallTimeout(timeout time.Duration) Option {
	return func(s *Searcher) error {
		if timeout > 0 {
			s.callTimeout = timeout
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher. A nil index is accepted: every
// search then returns a well-formed empty page, which keeps the server
// bootable before the vector index is provisioned.
func NewSearcher(
	index vector.Index,
	provider ai.Provider,
	schoolRepo storage.SchoolRepository,
	programRepo storage.ProgramRepository,
	opts ...Option,
) (*Searcher, error) {
	if provider == nil {
		return nil, ErrProviderRequired
	}
	if schoolRepo == nil {
		return nil, ErrSchoolRepositoryRequired
	}
	if programRepo == nil {
		return nil, ErrProgramRepositoryRequired
	}

	s := &Searcher{
		index:       index,
		corrector:   provider.QueryCorrector(),
		extractor:   provider.FieldExtractor(),
		classifier:  provider.RelevanceClassifier(),
		flagger:     provider.SpecializationFlagger(),
		schoolRepo:  schoolRepo,
		programRepo: programRepo,
		k:           defaultK,
		fetchK:      defaultFetchK,
		lambda:      defaultLambda,
		simWeight:   ranking.DefaultSimWeight,
		rankWeight:  ranking.DefaultRankWeight,
		allSchoolsK: defaultAllSchoolsK,
		callTimeout: defaultCallTimeout,
		logger:      slog.Default().With("component", "searcher"),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search executes one retrieval round. Collaborator failures degrade
// (original query, unfiltered candidates, empty page) rather than
// propagate; the returned page is always well-formed.
func (s *Searcher) Search(ctx context.Context, req Request) (*Page, error) {
	scope := req.Scope
	if scope == "" {
		scope = ScopeAll
	}

	page := &Page{
		ExcludedSchoolIDs:  slices.Clone(req.ExcludedSchoolIDs),
		ExcludedProgramIDs: slices.Clone(req.ExcludedProgramIDs),
	}

	if s.index == nil {
		s.logger.Warn("search called without a vector index, returning empty page")
		return page, nil
	}

	query := strings.TrimSpace(req.Query)
	short := utf8.RuneCountInString(query) < shortQueryThreshold

	corrected := s.correct(ctx, query, short)
	fields := s.extract(ctx, corrected)
	pred := s.buildPredicate(req, scope, corrected, fields)

	docs := s.retrieve(ctx, scope, corrected, pred)
	// Correction may shrink the query below the threshold, so the
	// classification gate is judged on the corrected form.
	shortCorrected := utf8.RuneCountInString(corrected) < shortQueryThreshold
	docs = s.classify(ctx, corrected, docs, fields, shortCorrected)
	page.Raw = docs

	s.resolve(ctx, scope, docs, page)
	s.flagSpecializations(ctx, fields, page)

	page.ExcludedSchoolIDs = unionIDs(page.ExcludedSchoolIDs, page.SchoolIDs)
	page.ExcludedProgramIDs = unionIDs(page.ExcludedProgramIDs, page.ProgramIDs)

	s.logger.Debug("search round complete",
		"scope", scope,
		"query", query,
		"corrected", corrected,
		"candidates", len(docs),
		"results", len(page.Results))

	return page, nil
}

// correct runs typo correction. Short queries pass through unchanged,
// and a corrector failure falls back to the raw query.
func (s *Searcher) correct(ctx context.Context, query string, short bool) string {
	if short {
		return query
	}

	cctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	corrected, err := s.corrector.CorrectQuery(cctx, query)
	if err != nil {
		s.logger.Warn("query correction failed, using raw query", "err", err)
		return query
	}
	corrected = strings.TrimSpace(corrected)
	if corrected == "" {
		return query
	}
	return corrected
}

// extract pulls structured intent fields. A failure yields nil fields,
// which downstream treats as "no constraint".
func (s *Searcher) extract(ctx context.Context, query string) *ai.QueryFields {
	ectx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	fields, err := s.extractor.ExtractFields(ectx, query)
	if err != nil {
		s.logger.Warn("field extraction failed, continuing without fields", "err", err)
		return nil
	}
	return fields
}

// buildPredicate compiles caller filters and ANDs in the derived
// double-diploma predicate plus the scope-aware exclusion or inclusion
// predicate.
func (s *Searcher) buildPredicate(req Request, scope Scope, corrected string, fields *ai.QueryFields) filter.Predicate {
	pred := filter.Compile(req.Filters)

	where := []filter.Expr{pred.Where}
	if fields != nil {
		where = append(where, filter.DoubleDiploma(fields.IsDoubleDiploma))
	}

	schoolIDs, programIDs := scopedIDs(scope, req.ExcludedSchoolIDs, req.ExcludedProgramIDs)
	if req.FilterQuery && corrected != "" {
		where = append(where, filter.IncludeIDs(schoolIDs, programIDs))
	} else if req.LoadMore {
		where = append(where, filter.ExcludeIDs(schoolIDs, programIDs))
	}

	pred.Where = filter.AllOf(where...)
	return pred
}

// retrieve fetches candidates: the hybrid-ranked similarity path for
// schools, the diversity-aware MMR path for programs and mixed scopes.
// Index failures degrade to no candidates.
func (s *Searcher) retrieve(ctx context.Context, scope Scope, corrected string, pred filter.Predicate) []schema.Document {
	rctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	if scope == ScopeSchools {
		k := s.k
		if corrected == "" {
			// An empty query browses the full school catalog.
			k = s.allSchoolsK
		}
		scored, err := s.index.SimilaritySearch(rctx, corrected, k, pred)
		if err != nil {
			s.logger.Error("similarity search failed", "err", err)
			return nil
		}
		return ranking.Rank(scored, s.rankWeight, s.simWeight)
	}

	docs, err := s.index.MMRSearch(rctx, corrected, s.k, s.fetchK, s.lambda, pred)
	if err != nil {
		s.logger.Error("mmr search failed", "err", err)
		return nil
	}
	return docs
}

// classify filters candidates by relevance. Short queries and classifier
// failures pass every candidate through.
func (s *Searcher) classify(ctx context.Context, corrected string, docs []schema.Document, fields *ai.QueryFields, short bool) []schema.Document {
	if short || len(docs) == 0 {
		return docs
	}

	cctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	selected, err := s.classifier.Classify(cctx, corrected, docs, fields)
	if err != nil {
		s.logger.Warn("relevance classification failed, keeping all candidates", "err", err)
		return docs
	}
	return selected
}

// resolve walks candidates in order, deduplicates first-seen per
// identifier, and resolves identifiers to persisted parent records.
// Candidates missing an identifier or lacking a parent record are
// silently skipped.
func (s *Searcher) resolve(ctx context.Context, scope Scope, docs []schema.Document, page *Page) {
	seenSchools := make(map[core.ID]bool)
	seenPrograms := make(map[core.ID]bool)

	for _, doc := range docs {
		if scope == ScopeSchools || scope == ScopeAll {
			if id, ok := vector.IDMeta(doc, vector.MetaSchoolID); ok && !seenSchools[id] {
				record, err := s.schoolRepo.GetSchoolRecord(ctx, id)
				if err == nil {
					seenSchools[id] = true
					page.Results = append(page.Results, Result{School: record})
					page.SchoolIDs = append(page.SchoolIDs, id)
				}
			}
		}
		if scope == ScopePrograms || scope == ScopeAll {
			if id, ok := vector.IDMeta(doc, vector.MetaProgramID); ok && !seenPrograms[id] {
				record, err := s.programRepo.GetProgramRecord(ctx, id)
				if err == nil {
					seenPrograms[id] = true
					page.Results = append(page.Results, Result{Program: record})
					page.ProgramIDs = append(page.ProgramIDs, id)
				}
			}
		}
	}
}

// flagSpecializations marks resolved program results that match the
// user's intent through a specialization track. A flagger failure
// leaves the page unflagged; the pass never fails a search.
func (s *Searcher) flagSpecializations(ctx context.Context, fields *ai.QueryFields, page *Page) {
	var programs []*core.ProgramRecord
	var at []int
	for i, result := range page.Results {
		if result.Program != nil {
			programs = append(programs, result.Program)
			at = append(at, i)
		}
	}
	if len(programs) == 0 {
		return
	}

	fctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	indices, err := s.flagger.FlagSpecializations(fctx, fields, programs)
	if err != nil {
		s.logger.Warn("specialization flagging failed, leaving results unflagged", "err", err)
		return
	}
	for _, idx := range indices {
		if idx >= 0 && idx < len(at) {
			page.Results[at[idx]].IsSpecialization = true
		}
	}
}

// scopedIDs narrows the caller's identifier sets to the ones the scope
// retrieves over.
func scopedIDs(scope Scope, schoolIDs, programIDs []core.ID) ([]core.ID, []core.ID) {
	switch scope {
	case ScopeSchools:
		return schoolIDs, nil
	case ScopePrograms:
		return nil, programIDs
	default:
		return schoolIDs, programIDs
	}
}

// unionIDs appends the ids missing from base, preserving order.
func unionIDs(base, ids []core.ID) []core.ID {
	seen := make(map[core.ID]bool, len(base))
	for _, id := range base {
		seen[id] = true
	}
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			base = append(base, id)
		}
	}
	return base
}
