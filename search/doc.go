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


// Package search provides the retrieval session controller.
//
// The Searcher type implements one search round as a multi-stage pipeline:
//   - Typo correction and intent-field extraction via LLM collaborators
//   - Filter compilation into attribute and content predicates
//   - Candidate retrieval (hybrid-ranked for schools, MMR for programs)
//   - Relevance classification of the candidate set
//   - First-seen deduplication and parent-record resolution
//
// Pagination state lives with the caller: each Page returns updated
// exclusion sets that the caller passes back on the next LoadMore round,
// so no identifier repeats across pages of one session.
//
// Collaborator failures degrade rather than fail the round; callers
// always receive a well-formed (possibly empty) page.
package search
