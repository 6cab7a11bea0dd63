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


package core

import (
	"encoding/binary"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Upstream assigns integer identifiers; 0 means "absent".
type ID int64

// String returns the stringified identifier used as the lookup key
// in the persisted parent-record tables.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs, which keeps
// re-ingested documents stable in the vector index.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// ParseID converts a loosely typed identifier value into an ID.
// Index metadata and upstream payloads carry identifiers as JSON numbers,
// strings, or json.Number depending on the producer.
// Returns (0, false) when the value cannot be interpreted as an identifier.
func ParseID(value any) (ID, bool) {
	switch v := value.(type) {
	case ID:
		return v, v != 0
	case int:
		return ID(v), v != 0
	case int64:
		return ID(v), v != 0
	case float64:
		return ID(v), v != 0
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return ID(n), n != 0
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil || n == 0 {
			return 0, false
		}
		return ID(n), true
	default:
		return 0, false
	}
}

// UnmarshalJSON accepts identifiers encoded as numbers or numeric strings.
// Null and unparsable values decode to 0 (absent) rather than erroring,
// matching the permissive ingestion policy.
func (id *ID) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, _ := ParseID(raw)
	*id = parsed
	return nil
}

// ArchiveFlag is an archival marker tolerant of the multiple truthy
// encodings observed upstream: boolean true, "true", "True", 1, and "1".
// Every other value, including absence, means "not archived".
type ArchiveFlag struct {
	value any
}

// Archive constructs a flag from a raw value. Useful in tests.
func Archive(value any) ArchiveFlag {
	return ArchiveFlag{value: value}
}

// Bool reports whether the flag holds one of the recognized truthy encodings.
func (f ArchiveFlag) Bool() bool {
	switch v := f.value.(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "True" || v == "1"
	case float64:
		return v == 1
	case int:
		return v == 1
	case json.Number:
		return v.String() == "1"
	default:
		return false
	}
}

// UnmarshalJSON keeps whatever encoding the upstream used.
func (f *ArchiveFlag) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &f.value)
}

// MarshalJSON round-trips the original encoding.
func (f ArchiveFlag) MarshalJSON() ([]byte, error) {
	if f.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// School is a top-level entity in the graph.
type School struct {
	ID       ID          `json:"school_id"`
	Name     string      `json:"school_name"`
	Country  string      `json:"country"`
	City     string      `json:"city"`
	Rank     int         `json:"rank"` // authority rank, lower is better; 0 = unranked
	Archived ArchiveFlag `json:"archive"`
}

// Program belongs to a School.
type Program struct {
	ID       ID          `json:"program_id"`
	SchoolID ID          `json:"school_id"`
	Name     string      `json:"program_name"`
	Type     string      `json:"program_type"`
	Duration string      `json:"duration"`
	Archived ArchiveFlag `json:"archive"`
}

// Year scopes intakes and specializations to an academic year of a Program.
type Year struct {
	ID        ID          `json:"year_id"`
	ProgramID ID          `json:"program_id"`
	Name      string      `json:"name"`
	Archived  ArchiveFlag `json:"archive"`
}

// Intake is an admission window for a Program, optionally year-scoped.
type Intake struct {
	ID        ID          `json:"intake_id"`
	ProgramID ID          `json:"program_id"`
	YearID    ID          `json:"year_id"` // 0 = not year-scoped
	Name      string      `json:"intake_name"`
	Archived  ArchiveFlag `json:"archive"`
}

// Specialization is a track within a Program, optionally year-scoped.
type Specialization struct {
	ID        ID          `json:"specialization_id"`
	ProgramID ID          `json:"program_id"`
	YearID    ID          `json:"year_id"` // 0 = not year-scoped
	Name      string      `json:"specialization"`
	Archived  ArchiveFlag `json:"archive"`
}

// Graph is the denormalized entity forest pulled from upstream.
// Programs reference Schools; Years reference Programs; Intakes and
// Specializations reference Programs and optionally Years.
type Graph struct {
	Schools         []School
	Programs        []Program
	Years           []Year
	Intakes         []Intake
	Specializations []Specialization
}

// SchoolRecord is the persisted parent record resolved for school results.
// Built once from the filtered graph; immutable afterwards.
type SchoolRecord struct {
	ID           ID
	Name         string
	Country      string
	City         string
	Rank         int
	ProgramCount int
}

// ProgramRecord is the persisted parent record resolved for program results.
type ProgramRecord struct {
	ID              ID
	SchoolID        ID
	SchoolName      string
	Name            string
	Type            string
	Duration        string
	Intakes         []string
	Specializations []string
}
