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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SG-AI-Team/search-bar/core"
)

func TestMarshalID_RoundTrip(t *testing.T) {
	for _, id := range []core.ID{0, 1, 42, -7, 1 << 40} {
		got, err := UnmarshalID(MarshalID(id))
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestMarshalSchoolRecord_RoundTrip(t *testing.T) {
	record := &core.SchoolRecord{
		ID:           17,
		Name:         "Technical University of Munich",
		Country:      "Germany",
		City:         "Munich",
		Rank:         37,
		ProgramCount: 112,
	}

	got, err := UnmarshalSchoolRecord(MarshalSchoolRecord(record))
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestMarshalProgramRecord_RoundTrip(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		record := &core.ProgramRecord{
			ID:              1042,
			SchoolID:        17,
			SchoolName:      "Technical University of Munich",
			Name:            "MSc Data Engineering",
			Type:            "master",
			Duration:        "2 years",
			Intakes:         []string{"Winter 2026", "Summer 2027"},
			Specializations: []string{"Machine Learning", "Distributed Systems"},
		}

		got, err := UnmarshalProgramRecord(MarshalProgramRecord(record))
		require.NoError(t, err)
		assert.Equal(t, record, got)
	})

	t.Run("empty rollups", func(t *testing.T) {
		record := &core.ProgramRecord{ID: 5, SchoolID: 1, Name: "BA History"}

		got, err := UnmarshalProgramRecord(MarshalProgramRecord(record))
		require.NoError(t, err)
		assert.Equal(t, record.ID, got.ID)
		assert.Empty(t, got.Intakes)
		assert.Empty(t, got.Specializations)
	})
}

func TestUnmarshalSchoolRecord_Truncated(t *testing.T) {
	data := MarshalSchoolRecord(&core.SchoolRecord{ID: 17, Name: "MIT"})
	_, err := UnmarshalSchoolRecord(data[:2])
	assert.Error(t, err)
}
