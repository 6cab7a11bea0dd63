package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/SG-AI-Team/search-bar/core"
	"github.com/SG-AI-Team/search-bar/storage"
)

const (
	defaultFetchAttempts  = 3
	defaultFetchBaseDelay = 500 * time.Millisecond
)

// Pipeline orchestrates the refresh of the searchable record set: it pulls
// the raw entity graph, applies the cascade filter, denormalizes parent
// records, and persists them.
type Pipeline struct {
	fetcher       EntityFetcher
	schoolRepo    storage.SchoolRepository
	programRepo   storage.ProgramRepository
	fetchPool     *ants.Pool
	fetchAttempts int
	logger        *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent fetching.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.fetchPool != nil {
			p.fetchPool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.fetchPool = pool
		return nil
	}
}

// WithFetchAttempts sets how many times each entity fetch is attempted.
// Default is 3.
func WithFetchAttempts(attempts int) Option {
	return func(p *Pipeline) error {
		if attempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		p.fetchAttempts = attempts
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	fetcher EntityFetcher,
	schoolRepo storage.SchoolRepository,
	programRepo storage.ProgramRepository,
	opts ...Option,
) (*Pipeline, error) {
	if fetcher == nil {
		return nil, ErrFetcherRequired
	}
	if schoolRepo == nil {
		return nil, ErrSchoolRepositoryRequired
	}
	if programRepo == nil {
		return nil, ErrProgramRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		fetcher:       fetcher,
		schoolRepo:    schoolRepo,
		programRepo:   programRepo,
		fetchPool:     pool,
		fetchAttempts: defaultFetchAttempts,
		logger:        slog.Default().With("component", "ingestion"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Report summarizes an ingestion run.
type Report struct {
	// Attempted counts entities fetched per type, before filtering.
	Attempted map[string]int

	// Kept counts entities that survived the cascade filter, per type.
	Kept map[string]int

	// FailedTypes lists entity types whose fetch failed after retries.
	// Failed types contribute zero entities; the run itself still succeeds.
	FailedTypes []string

	// Schools and Programs are the persisted record counts.
	Schools  int
	Programs int
}

// Run executes a full ingestion pass: fetch, filter, denormalize, persist.
// A failed fetch of one entity type degrades that type to empty rather than
// failing the run; persistence errors do fail the run.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		graph  core.Graph
		failed []string
	)

	fetch := func(name string, op func() error) {
		wg.Add(1)
		submitErr := p.fetchPool.Submit(func() {
			defer wg.Done()
			err := RetryWithBackoff(ctx, op, p.fetchAttempts, defaultFetchBaseDelay)
			if err != nil {
				p.logger.Error("entity fetch failed", "type", name, "err", err)
				mu.Lock()
				failed = append(failed, name)
				mu.Unlock()
			}
		})
		if submitErr != nil {
			wg.Done()
			p.logger.Error("failed to submit fetch task", "type", name, "err", submitErr)
			mu.Lock()
			failed = append(failed, name)
			mu.Unlock()
		}
	}

	fetch("schools", func() error {
		schools, err := p.fetcher.FetchSchools(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		graph.Schools = schools
		mu.Unlock()
		return nil
	})
	fetch("programs", func() error {
		programs, err := p.fetcher.FetchPrograms(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		graph.Programs = programs
		mu.Unlock()
		return nil
	})
	fetch("years", func() error {
		years, err := p.fetcher.FetchYears(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		graph.Years = years
		mu.Unlock()
		return nil
	})
	fetch("intakes", func() error {
		intakes, err := p.fetcher.FetchIntakes(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		graph.Intakes = intakes
		mu.Unlock()
		return nil
	})
	fetch("specializations", func() error {
		specs, err := p.fetcher.FetchSpecializations(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		graph.Specializations = specs
		mu.Unlock()
		return nil
	})

	wg.Wait()

	report := &Report{
		Attempted:   graphCounts(graph),
		FailedTypes: failed,
	}

	filtered := FilterGraph(graph)
	report.Kept = graphCounts(filtered)

	schools, programs := BuildParentRecords(filtered)
	if len(schools) > 0 {
		if err := p.schoolRepo.PutSchoolRecords(ctx, schools...); err != nil {
			return report, err
		}
	}
	if len(programs) > 0 {
		if err := p.programRepo.PutProgramRecords(ctx, programs...); err != nil {
			return report, err
		}
	}
	report.Schools = len(schools)
	report.Programs = len(programs)

	p.logger.Info("ingestion complete",
		"schools", report.Schools,
		"programs", report.Programs,
		"failed_types", len(report.FailedTypes))

	return report, nil
}

// Release releases resources including the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.fetchPool != nil {
		p.fetchPool.Release()
	}
}

func graphCounts(g core.Graph) map[string]int {
	return map[string]int{
		"schools":         len(g.Schools),
		"programs":        len(g.Programs),
		"years":           len(g.Years),
		"intakes":         len(g.Intakes),
		"specializations": len(g.Specializations),
	}
}
