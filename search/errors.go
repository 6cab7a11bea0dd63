package search

import "errors"

var (
	// ErrProviderRequired is returned when an AI provider is not provided.
	ErrProviderRequired = errors.New("AI provider required")

	// ErrSchoolRepositoryRequired is returned when a school repository is not provided.
	ErrSchoolRepositoryRequired = errors.New("school repository required")

	// ErrProgramRepositoryRequired is returned when a program repository is not provided.
	ErrProgramRepositoryRequired = errors.New("program repository required")
)
