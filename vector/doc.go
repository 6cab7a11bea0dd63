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


// Package vector defines the nearest-neighbor service boundary.
//
// The retrieval pipeline consumes a vector index through the Index
// interface and never sees embeddings or index internals. Documents are
// langchaingo schema.Document values whose metadata carries the
// structured attributes listed in this package; helpers here read that
// metadata tolerantly, since values cross a JSON boundary.
//
// The vector/mock subpackage provides a deterministic in-process index
// for tests.
package vector
