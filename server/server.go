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


package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/SG-AI-Team/search-bar/core"
	"github.com/SG-AI-Team/search-bar/filter"
	"github.com/SG-AI-Team/search-bar/search"
)

// SearchRequest is the POST /search payload.
type SearchRequest struct {
	UserInput        string             `json:"user_input"`
	SearchFilter     string             `json:"search_filter"` // schools | programs | all
	SchoolIDs        []core.ID          `json:"school_ids"`
	ProgramIDs       []core.ID          `json:"program_ids"`
	IsFilterQuery    bool               `json:"is_filter_query"`
	FilterStatements []filter.Statement `json:"filter_statements"`
}

// SearchPage is one search pass of the response.
type SearchPage struct {
	Results             []search.Result `json:"results"`
	GeneratedSchoolIDs  []core.ID       `json:"generated_school_ids"`
	GeneratedProgramIDs []core.ID       `json:"generated_program_ids"`
}

// SearchResponse carries both passes: the first page and an eagerly
// computed continuation page seeded with the first page's exclusions.
type SearchResponse struct {
	SearchResults []SearchPage `json:"search_results"`
}

// Server exposes the searcher over HTTP.
type Server struct {
	searcher *search.Searcher
	router   chi.Router
	logger   *slog.Logger
}

// NewServer creates the HTTP API server.
func NewServer(searcher *search.Searcher, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default().With("component", "server")
	}

	s := &Server{
		searcher: searcher,
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Post("/search", s.handleSearch)
	r.Get("/healthz", s.handleHealth)

	s.router = r
	return s
}

// Handler returns the HTTP handler for mounting or serving.
func (s *Server) Handler() http.Handler {
	return s.router
}

// handleSearch runs the query twice: the first page, then a continuation
// pass seeded with the first page's exclusion sets, so the client has the
// next page ready without a round trip.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	scope := search.Scope(req.SearchFilter)
	switch scope {
	case search.ScopeSchools, search.ScopePrograms, search.ScopeAll, "":
	default:
		writeError(w, http.StatusBadRequest, "unknown search_filter: "+req.SearchFilter)
		return
	}

	// Identifier sets in the request mark a continuation unless this is
	// a refinement round, where they restrict retrieval instead.
	loadMore := !req.IsFilterQuery && (len(req.SchoolIDs) > 0 || len(req.ProgramIDs) > 0)

	first, err := s.searcher.Search(r.Context(), search.Request{
		Query:              req.UserInput,
		Scope:              scope,
		ExcludedSchoolIDs:  req.SchoolIDs,
		ExcludedProgramIDs: req.ProgramIDs,
		LoadMore:           loadMore,
		FilterQuery:        req.IsFilterQuery,
		Filters:            req.FilterStatements,
	})
	if err != nil {
		s.logger.Error("search failed", "err", err)
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}

	second, err := s.searcher.Search(r.Context(), search.Request{
		Query:              req.UserInput,
		Scope:              scope,
		ExcludedSchoolIDs:  first.ExcludedSchoolIDs,
		ExcludedProgramIDs: first.ExcludedProgramIDs,
		LoadMore:           true,
		Filters:            req.FilterStatements,
	})
	if err != nil {
		s.logger.Error("continuation search failed", "err", err)
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}

	writeJSON(w, http.StatusOK, SearchResponse{
		SearchResults: []SearchPage{pageToDTO(first), pageToDTO(second)},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func pageToDTO(page *search.Page) SearchPage {
	dto := SearchPage{
		Results:             page.Results,
		GeneratedSchoolIDs:  page.SchoolIDs,
		GeneratedProgramIDs: page.ProgramIDs,
	}
	if dto.Results == nil {
		dto.Results = []search.Result{}
	}
	if dto.GeneratedSchoolIDs == nil {
		dto.GeneratedSchoolIDs = []core.ID{}
	}
	if dto.GeneratedProgramIDs == nil {
		dto.GeneratedProgramIDs = []core.ID{}
	}
	return dto
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
