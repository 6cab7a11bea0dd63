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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SG-AI-Team/search-bar/core"
)

func TestBuildParentRecords(t *testing.T) {
	g := core.Graph{
		Schools: []core.School{
			{ID: 1, Name: "Alpha Business School", Country: "France", City: "Paris", Rank: 12},
			{ID: 2, Name: "Beta Institute", Country: "Germany", City: "Berlin"},
		},
		Programs: []core.Program{
			{ID: 10, SchoolID: 1, Name: "MSc Finance", Type: "MSc", Duration: "2 years"},
			{ID: 11, SchoolID: 1, Name: "MBA", Type: "MBA", Duration: "1 year"},
			{ID: 12, SchoolID: 2, Name: "MSc Data Science", Type: "MSc", Duration: "2 years"},
		},
		Intakes: []core.Intake{
			{ID: 200, ProgramID: 10, Name: "September"},
			{ID: 201, ProgramID: 10, Name: "January"},
		},
		Specializations: []core.Specialization{
			{ID: 300, ProgramID: 10, Name: "Corporate Finance"},
			{ID: 301, ProgramID: 12, Name: "Machine Learning"},
		},
	}

	schools, programs := BuildParentRecords(g)

	require.Len(t, schools, 2)
	assert.Equal(t, &core.SchoolRecord{
		ID:           1,
		Name:         "Alpha Business School",
		Country:      "France",
		City:         "Paris",
		Rank:         12,
		ProgramCount: 2,
	}, schools[0])
	assert.Equal(t, 1, schools[1].ProgramCount)

	require.Len(t, programs, 3)
	assert.Equal(t, "Alpha Business School", programs[0].SchoolName)
	assert.ElementsMatch(t, []string{"September", "January"}, programs[0].Intakes)
	assert.Equal(t, []string{"Corporate Finance"}, programs[0].Specializations)

	assert.Empty(t, programs[1].Intakes)
	assert.Empty(t, programs[1].Specializations)

	assert.Equal(t, "Beta Institute", programs[2].SchoolName)
	assert.Equal(t, []string{"Machine Learning"}, programs[2].Specializations)
}

func TestBuildParentRecords_EmptyGraph(t *testing.T) {
	schools, programs := BuildParentRecords(core.Graph{})
	assert.Empty(t, schools)
	assert.Empty(t, programs)
}

func TestBuildParentRecords_UnknownSchool(t *testing.T) {
	g := core.Graph{
		Programs: []core.Program{{ID: 10, SchoolID: 99, Name: "MSc Finance"}},
	}

	_, programs := BuildParentRecords(g)

	require.Len(t, programs, 1)
	assert.Empty(t, programs[0].SchoolName)
}
