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
	"strings"

	"github.com/SG-AI-Team/search-bar/core"
)

// FilterGraph drops test fixtures, archived entities, and entities whose
// parents were dropped. The result is referentially closed: every surviving
// child references a surviving parent. Applying FilterGraph to its own
// output returns the same graph.
func FilterGraph(g core.Graph) core.Graph {
	out := core.Graph{}

	// Test fixtures go first; the archive flag of a test entity is never
	// consulted.
	activeSchools := make(map[core.ID]bool, len(g.Schools))
	for _, school := range g.Schools {
		if isTestName(school.Name) {
			continue
		}
		if school.Archived.Bool() {
			continue
		}
		activeSchools[school.ID] = true
		out.Schools = append(out.Schools, school)
	}

	activePrograms := make(map[core.ID]bool, len(g.Programs))
	for _, program := range g.Programs {
		if isTestName(program.Name) {
			continue
		}
		if program.Archived.Bool() {
			continue
		}
		if !activeSchools[program.SchoolID] {
			continue
		}
		activePrograms[program.ID] = true
		out.Programs = append(out.Programs, program)
	}

	activeYears := make(map[core.ID]bool, len(g.Years))
	for _, year := range g.Years {
		if isTestName(year.Name) {
			continue
		}
		if year.Archived.Bool() {
			continue
		}
		if !activePrograms[year.ProgramID] {
			continue
		}
		activeYears[year.ID] = true
		out.Years = append(out.Years, year)
	}

	for _, intake := range g.Intakes {
		if isTestName(intake.Name) {
			continue
		}
		if intake.Archived.Bool() {
			continue
		}
		if !activePrograms[intake.ProgramID] {
			continue
		}
		// A zero YearID means the intake is not year-scoped.
		if intake.YearID != 0 && !activeYears[intake.YearID] {
			continue
		}
		out.Intakes = append(out.Intakes, intake)
	}

	for _, spec := range g.Specializations {
		if isTestName(spec.Name) {
			continue
		}
		if spec.Archived.Bool() {
			continue
		}
		if !activePrograms[spec.ProgramID] {
			continue
		}
		if spec.YearID != 0 && !activeYears[spec.YearID] {
			continue
		}
		out.Specializations = append(out.Specializations, spec)
	}

	return out
}

// isTestName reports whether a name marks the entity as a test fixture.
// The match is case-insensitive and catches "test" anywhere in the name.
func isTestName(name string) bool {
	return strings.Contains(strings.ToLower(name), "test")
}
