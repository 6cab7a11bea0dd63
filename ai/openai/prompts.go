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


package openai

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/schema"

	"github.com/SG-AI-Team/search-bar/ai"
	"github.com/SG-AI-Team/search-bar/core"
)

const correctionPrompt = `You clean up search queries for a study-abroad platform. Users search for
universities, academic programs, degree levels, cities, and countries.

Rewrite the user's query into clean English:
- Fix spelling and typing mistakes ("mashine lerning" -> "machine learning").
- Transliterate or translate non-English text into English.
- Expand obvious abbreviations ("cs" -> "computer science", "msc" -> "master of science").
- Keep proper nouns (university names, cities) intact, correcting only their spelling.
- Do NOT add words the user did not ask for, and do NOT answer the query.

Respond with the rewritten query only. No preamble, no quotes, no explanation.
If the input is already clean, return it unchanged.`

const extractionResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "school": {"type": ["string", "null"]},
    "degree_level": {"type": "array", "items": {"type": "string"}},
    "is_double_diploma": {"type": ["boolean", "null"]},
    "is_valid": {"type": "boolean"}
  },
  "required": ["is_valid"],
  "additionalProperties": false
}`

const extractionPromptTemplate = `Extract structured search intent from a study-abroad query and return it as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- "school": the university name if one is explicitly mentioned, otherwise null.
- "degree_level": degree levels mentioned in the query, lowercase (e.g. "bachelor", "master", "phd"). Empty array when none.
- "is_double_diploma": true if the user asks for double-diploma/dual-degree programs, false if they ask to exclude them, null if not mentioned.
- "is_valid": false only when the query is meaningless for finding schools or programs (gibberish, greetings, off-topic chatter); true otherwise.
- Do not invent fields the query does not contain.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "double degree masters in data science at TU Munich"
Output:
{"school":"TU Munich","degree_level":["master"],"is_double_diploma":true,"is_valid":true}

Example:
Input: "asdkjh qwe"
Output:
{"school":null,"degree_level":[],"is_double_diploma":null,"is_valid":false}`

const classificationPromptTemplate = `You judge which search results actually answer a study-abroad query.

Query: %s
%s
Candidates (numbered from 0):
%s

Pick the candidates that genuinely match what the query asks for. Be strict:
a candidate that merely shares a keyword but is about a different subject,
degree level, or location does not match.

Respond with exactly one of:
- "ALL" if every candidate matches.
- "NONE" if no candidate matches.
- A comma-separated list of matching candidate numbers, e.g. "0, 2, 5".

No preamble, no explanation.`

const specializationPromptTemplate = `You review study-abroad search results. Each program below carries its
name and the specialization tracks it offers.

The user's extracted intent:
%s
Programs (numbered from 0):
%s

Identify the programs that satisfy the user's subject of interest through
one of their specialization tracks rather than through the program name
itself. A program whose name already covers the subject does not count.

Respond with a JSON array of the matching program numbers, e.g. [0, 2].
Respond with [] if no program matches through a specialization.
No preamble, no markdown, no explanation.`

func buildExtractionPrompt() string {
	return fmt.Sprintf(extractionPromptTemplate, extractionResponseSchema)
}

func buildClassificationPrompt(query string, candidates []schema.Document, fields *ai.QueryFields) string {
	var hints strings.Builder
	if fields != nil {
		if fields.School != nil && *fields.School != "" {
			fmt.Fprintf(&hints, "The user asked for the school %q.\n", *fields.School)
		}
		if len(fields.DegreeLevels) > 0 {
			fmt.Fprintf(&hints, "The user asked for the degree level(s): %s.\n", strings.Join(fields.DegreeLevels, ", "))
		}
		if fields.IsDoubleDiploma != nil {
			if *fields.IsDoubleDiploma {
				hints.WriteString("The user asked for double-diploma programs.\n")
			} else {
				hints.WriteString("The user asked to exclude double-diploma programs.\n")
			}
		}
	}

	var list strings.Builder
	for i, doc := range candidates {
		fmt.Fprintf(&list, "%d. %s\n", i, strings.TrimSpace(doc.PageContent))
	}

	return fmt.Sprintf(classificationPromptTemplate, query, hints.String(), list.String())
}

func buildSpecializationPrompt(fields *ai.QueryFields, programs []*core.ProgramRecord) string {
	var hints strings.Builder
	if fields != nil {
		if fields.School != nil && *fields.School != "" {
			fmt.Fprintf(&hints, "The user asked for the school %q.\n", *fields.School)
		}
		if len(fields.DegreeLevels) > 0 {
			fmt.Fprintf(&hints, "The user asked for the degree level(s): %s.\n", strings.Join(fields.DegreeLevels, ", "))
		}
	}
	if hints.Len() == 0 {
		hints.WriteString("No structured intent was extracted from the query.\n")
	}

	var list strings.Builder
	for i, program := range programs {
		fmt.Fprintf(&list, "%d. %s", i, program.Name)
		if len(program.Specializations) > 0 {
			fmt.Fprintf(&list, " (specializations: %s)", strings.Join(program.Specializations, ", "))
		}
		list.WriteByte('\n')
	}

	return fmt.Sprintf(specializationPromptTemplate, hints.String(), list.String())
}
