// Package ingestion provides pipeline orchestration for refreshing the
// searchable record set.
//
// The Pipeline type manages the ingestion workflow, including:
//   - Fetching the raw entity graph from the upstream platform
//   - Cascade-filtering test fixtures, archived entities, and orphans
//   - Denormalizing parent school and program records
//   - Persisting the records to storage
//
// Entity types are fetched concurrently using a worker pool, each with
// retry and exponential backoff. A fetch that still fails after retries
// degrades that entity type to empty rather than failing the run.
package ingestion
