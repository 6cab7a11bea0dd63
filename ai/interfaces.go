package ai

import (
	"context"

	"github.com/tmc/langchaingo/schema"

	"github.com/SG-AI-Team/search-bar/core"
)

// QueryCorrector rewrites a free-text query into clean English,
// fixing typos and transliterating where needed.
// Implementations must be thread-safe for concurrent use.
type QueryCorrector interface {
	// CorrectQuery returns the rewritten query. An empty input returns
	// an empty string. Callers treat an error as "use the original
	// query"; correction failure never fails a search.
	CorrectQuery(ctx context.Context, query string) (string, error)
}

// FieldExtractor pulls structured intent fields out of a query.
// Implementations must be thread-safe for concurrent use.
type FieldExtractor interface {
	// ExtractFields analyzes the query and returns the recognized
	// fields. Implementations must tolerate incidental code-fence
	// wrapping around the model output before parsing it.
	ExtractFields(ctx context.Context, query string) (*QueryFields, error)
}

// RelevanceClassifier selects the subset of candidates that actually
// answer the query. Implementations must be thread-safe for concurrent use.
type RelevanceClassifier interface {
	// Classify returns the relevant subset of candidates, preserving
	// candidate order. The model replies with "ALL", "NONE", or a
	// comma- or bracket-delimited list of 0-based candidate indices;
	// out-of-range indices are ignored without erroring.
	Classify(ctx context.Context, query string, candidates []schema.Document, fields *QueryFields) ([]schema.Document, error)
}

// SpecializationFlagger marks final program results that answer the
// query through a specialization track rather than the program itself.
// Implementations must be thread-safe for concurrent use.
type SpecializationFlagger interface {
	// FlagSpecializations returns the 0-based indices of programs that
	// match via a specialization. An empty reply, "NONE", "[]", or
	// "null" from the model means no flags; out-of-range indices are
	// ignored. Callers treat an error as "flag nothing"; the pass never
	// fails a search.
	FlagSpecializations(ctx context.Context, fields *QueryFields, programs []*core.ProgramRecord) ([]int, error)
}

// Provider aggregates the language-model collaborators for convenient
// initialization and lifecycle management.
type Provider interface {
	// QueryCorrector returns the typo-correction service.
	QueryCorrector() QueryCorrector

	// FieldExtractor returns the intent-field extraction service.
	FieldExtractor() FieldExtractor

	// RelevanceClassifier returns the relevance classification service.
	RelevanceClassifier() RelevanceClassifier

	// SpecializationFlagger returns the specialization annotation service.
	SpecializationFlagger() SpecializationFlagger

	// Close releases resources held by the provider and its services.
	Close() error
}
