package ingestion

import "errors"

var (
	// ErrFetcherRequired is returned when an entity fetcher is not provided.
	ErrFetcherRequired = errors.New("entity fetcher required")

	// ErrSchoolRepositoryRequired is returned when a school repository is not provided.
	ErrSchoolRepositoryRequired = errors.New("school repository required")

	// ErrProgramRepositoryRequired is returned when a program repository is not provided.
	ErrProgramRepositoryRequired = errors.New("program repository required")

	// ErrFetchFailed indicates an upstream entity fetch failed.
	ErrFetchFailed = errors.New("entity fetch failed")

	// ErrInvalidMaxAttempts is returned when retry is configured with a
	// non-positive attempt count.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be > 0")
)
