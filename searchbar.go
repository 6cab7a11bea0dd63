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


package searchbar

import (
	"log/slog"

	"github.com/SG-AI-Team/search-bar/ai"
	"github.com/SG-AI-Team/search-bar/ai/openai"
	"github.com/SG-AI-Team/search-bar/ingestion"
	"github.com/SG-AI-Team/search-bar/search"
	"github.com/SG-AI-Team/search-bar/storage"
	"github.com/SG-AI-Team/search-bar/storage/badger"
	"github.com/SG-AI-Team/search-bar/vector"
)

// Service wires the storage backend, AI provider, and vector index into
// ready-to-use searchers and ingestion pipelines.
type Service struct {
	backend     *badger.Backend
	schoolRepo  storage.SchoolRepository
	programRepo storage.ProgramRepository
	provider    ai.Provider
	index       vector.Index
	logger      *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig *ai.Config
	index    vector.Index
}

// WithAIConfig sets the configuration for the LLM collaborators.
// Default is ai.DefaultConfig().
func WithAIConfig(config *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithIndex sets the vector index the searchers retrieve from. Without
// one, searches return well-formed empty pages.
func WithIndex(index vector.Index) ServiceOption {
	return func(o *serviceOptions) {
		o.index = index
	}
}

// NewService opens the storage backend at filePath and constructs the
// service's collaborators.
func NewService(filePath string, opts ...ServiceOption) (*Service, error) {
	options := &serviceOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	schoolRepo, err := badger.NewSchoolRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	programRepo, err := badger.NewProgramRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Service{
		backend:     backend,
		schoolRepo:  schoolRepo,
		programRepo: programRepo,
		provider:    provider,
		index:       options.index,
		logger:      slog.Default(),
	}, nil
}

// Close releases the service's resources.
func (s *Service) Close() error {
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// SchoolRepository returns the school record repository.
func (s *Service) SchoolRepository() storage.SchoolRepository {
	return s.schoolRepo
}

// ProgramRepository returns the program record repository.
func (s *Service) ProgramRepository() storage.ProgramRepository {
	return s.programRepo
}

// NewSearcher creates a searcher over the service's collaborators.
func (s *Service) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(s.index, s.provider, s.schoolRepo, s.programRepo, opts...)
}

// NewIngestionPipeline creates an ingestion pipeline persisting into the
// service's repositories.
func (s *Service) NewIngestionPipeline(fetcher ingestion.EntityFetcher, opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(fetcher, s.schoolRepo, s.programRepo, opts...)
}
