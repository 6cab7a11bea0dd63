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


package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SG-AI-Team/search-bar/core"
)

// EntityFetcher pulls the raw entity graph from the upstream platform.
// Implementations must be thread-safe; the pipeline fetches entity types
// concurrently.
type EntityFetcher interface {
	FetchSchools(ctx context.Context) ([]core.School, error)
	FetchPrograms(ctx context.Context) ([]core.Program, error)
	FetchYears(ctx context.Context) ([]core.Year, error)
	FetchIntakes(ctx context.Context) ([]core.Intake, error)
	FetchSpecializations(ctx context.Context) ([]core.Specialization, error)
}

// HTTPFetcher implements EntityFetcher against the platform's agent API.
type HTTPFetcher struct {
	baseURL   string
	client    *http.Client
	authorize func(*http.Request)
}

var _ EntityFetcher = (*HTTPFetcher)(nil)

// FetcherOption configures an HTTPFetcher.
type FetcherOption func(*HTTPFetcher)

// WithHTTPClient sets a custom HTTP client.
// Default is a client with a 30 second timeout.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *HTTPFetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// WithBearerToken sets a static bearer token for the Authorization header.
func WithBearerToken(token string) FetcherOption {
	return func(f *HTTPFetcher) {
		f.authorize = func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

// WithAuthorizer sets a custom request authorizer. Useful when tokens are
// rotated out of band.
func WithAuthorizer(fn func(*http.Request)) FetcherOption {
	return func(f *HTTPFetcher) {
		f.authorize = fn
	}
}

// NewHTTPFetcher creates a fetcher for the given API base URL.
func NewHTTPFetcher(baseURL string, opts ...FetcherOption) *HTTPFetcher {
	f := &HTTPFetcher{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchSchools retrieves all schools.
func (f *HTTPFetcher) FetchSchools(ctx context.Context) ([]core.School, error) {
	return fetchList[core.School](ctx, f, "agent/all-schools")
}

// FetchPrograms retrieves all programs.
func (f *HTTPFetcher) FetchPrograms(ctx context.Context) ([]core.Program, error) {
	return fetchList[core.Program](ctx, f, "agent/all-programs")
}

// FetchYears retrieves all academic years.
func (f *HTTPFetcher) FetchYears(ctx context.Context) ([]core.Year, error) {
	return fetchList[core.Year](ctx, f, "agent/all-years")
}

// FetchIntakes retrieves all program intakes.
func (f *HTTPFetcher) FetchIntakes(ctx context.Context) ([]core.Intake, error) {
	return fetchList[core.Intake](ctx, f, "agent/all-program-intakes")
}

// FetchSpecializations retrieves all program specializations.
func (f *HTTPFetcher) FetchSpecializations(ctx context.Context) ([]core.Specialization, error) {
	return fetchList[core.Specialization](ctx, f, "agent/all-program-specializations")
}

// fetchList GETs an endpoint and decodes the entity list. The API returns
// either a bare JSON array or an object wrapping it under "data".
func fetchList[T any](ctx context.Context, f *HTTPFetcher, endpoint string) ([]T, error) {
	url := f.baseURL + "/" + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if f.authorize != nil {
		f.authorize(req)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: GET %s returned %d", ErrFetchFailed, endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var list []T
	if err := json.Unmarshal(body, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrFetchFailed, endpoint, err)
	}
	return wrapped.Data, nil
}
