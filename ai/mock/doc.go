// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.QueryCorrector,
// ai.FieldExtractor, ai.RelevanceClassifier, ai.SpecializationFlagger, and
// ai.Provider for use in unit tests. The mocks allow tests to run without external AI service
// dependencies and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	provider := mock.NewProvider()
//	corrected, err := provider.QueryCorrector().CorrectQuery(ctx, "test")
//
//	// Custom behavior injection
//	corrector := mock.NewCorrector()
//	corrector.CorrectQueryFunc = func(ctx context.Context, query string) (string, error) {
//	    return "corrected " + query, nil
//	}
//
//	// Check call counts
//	count := corrector.CallCount()
//
// # Default Behavior
//
// The mock implementations provide sensible defaults:
//
//   - Corrector: Passes the query through unchanged
//   - FieldExtractor: Returns empty fields marked valid
//   - RelevanceClassifier: Keeps every candidate
//   - SpecializationFlagger: Flags nothing
//   - Provider: Aggregates the four mocks above
package mock
