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


package storage

import (
	"github.com/SG-AI-Team/search-bar/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalSchoolRecord serializes a SchoolRecord to bytes.
func MarshalSchoolRecord(record *core.SchoolRecord) []byte {
	buf := make([]byte, core.SchoolRecordMUS.Size(*record))
	core.SchoolRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalSchoolRecord deserializes a SchoolRecord from bytes.
func UnmarshalSchoolRecord(data []byte) (*core.SchoolRecord, error) {
	record, _, err := core.SchoolRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarshalProgramRecord serializes a ProgramRecord to bytes.
func MarshalProgramRecord(record *core.ProgramRecord) []byte {
	buf := make([]byte, core.ProgramRecordMUS.Size(*record))
	core.ProgramRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalProgramRecord deserializes a ProgramRecord from bytes.
func UnmarshalProgramRecord(data []byte) (*core.ProgramRecord, error) {
	record, _, err := core.ProgramRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
