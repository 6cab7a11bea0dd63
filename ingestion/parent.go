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
	"github.com/SG-AI-Team/search-bar/core"
)

// BuildParentRecords denormalizes a filtered graph into the school and
// program records the search pipeline resolves result IDs against.
// The input is expected to be referentially closed (see FilterGraph);
// programs referencing unknown schools get an empty school name.
func BuildParentRecords(g core.Graph) ([]*core.SchoolRecord, []*core.ProgramRecord) {
	schoolNames := make(map[core.ID]string, len(g.Schools))
	programCounts := make(map[core.ID]int, len(g.Schools))
	for _, school := range g.Schools {
		schoolNames[school.ID] = school.Name
	}
	for _, program := range g.Programs {
		programCounts[program.SchoolID]++
	}

	intakesByProgram := make(map[core.ID][]string)
	for _, intake := range g.Intakes {
		intakesByProgram[intake.ProgramID] = append(intakesByProgram[intake.ProgramID], intake.Name)
	}
	specsByProgram := make(map[core.ID][]string)
	for _, spec := range g.Specializations {
		specsByProgram[spec.ProgramID] = append(specsByProgram[spec.ProgramID], spec.Name)
	}

	schools := make([]*core.SchoolRecord, 0, len(g.Schools))
	for _, school := range g.Schools {
		schools = append(schools, &core.SchoolRecord{
			ID:           school.ID,
			Name:         school.Name,
			Country:      school.Country,
			City:         school.City,
			Rank:         school.Rank,
			ProgramCount: programCounts[school.ID],
		})
	}

	programs := make([]*core.ProgramRecord, 0, len(g.Programs))
	for _, program := range g.Programs {
		programs = append(programs, &core.ProgramRecord{
			ID:              program.ID,
			SchoolID:        program.SchoolID,
			SchoolName:      schoolNames[program.SchoolID],
			Name:            program.Name,
			Type:            program.Type,
			Duration:        program.Duration,
			Intakes:         intakesByProgram[program.ID],
			Specializations: specsByProgram[program.ID],
		})
	}

	return schools, programs
}
