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


// Package filter compiles user filter statements into composite boolean
// predicates over document attributes and document content.
//
// A compiled Predicate separates the two evaluation mechanisms the
// nearest-neighbor service supports:
//
//   - Where: structured attribute comparisons ($eq, $ne, $in, $nin,
//     $gte, $lte) evaluated against document metadata
//   - WhereDocument: case-insensitive regexes evaluated against the
//     document's rendered text
//
// Compilation is a pure function of its input: statements for the same
// category accumulate, fee values collapse into a single min/max range,
// and multi-valued categories become disjunctions. The Matches and
// MatchesContent helpers evaluate predicate trees in-process for tests
// and the mock index.
package filter
