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


package filter

import (
	"regexp"
	"strings"
)

// Matches evaluates an attribute expression against document metadata.
// A nil expression matches everything. Regex leaves never match here;
// they belong to content evaluation.
//
// The production index evaluates predicates itself; this evaluator backs
// the in-process test index and predicate unit tests.
func Matches(e Expr, metadata map[string]any) bool {
	switch v := e.(type) {
	case nil:
		return true
	case And:
		for _, child := range v {
			if !Matches(child, metadata) {
				return false
			}
		}
		return true
	case Or:
		for _, child := range v {
			if Matches(child, metadata) {
				return true
			}
		}
		return false
	case Cmp:
		return matchCmp(v, metadata)
	default:
		return false
	}
}

// MatchesContent evaluates a content expression against rendered text.
// A nil expression matches everything. A regex that fails to compile
// matches nothing.
func MatchesContent(e Expr, content string) bool {
	switch v := e.(type) {
	case nil:
		return true
	case And:
		for _, child := range v {
			if !MatchesContent(child, content) {
				return false
			}
		}
		return true
	case Or:
		for _, child := range v {
			if MatchesContent(child, content) {
				return true
			}
		}
		return false
	case Regex:
		re, err := regexp.Compile(v.Pattern)
		if err != nil {
			return false
		}
		return re.MatchString(content)
	default:
		return false
	}
}

func matchCmp(c Cmp, metadata map[string]any) bool {
	value, present := metadata[c.Field]

	switch c.Op {
	case OpEq:
		return present && valueEqual(value, c.Value)
	case OpNe:
		// Absent fields satisfy a mismatch.
		return !present || !valueEqual(value, c.Value)
	case OpIn:
		if !present {
			return false
		}
		for _, candidate := range listValues(c.Value) {
			if valueEqual(value, candidate) {
				return true
			}
		}
		return false
	case OpNin:
		if !present {
			return true
		}
		for _, candidate := range listValues(c.Value) {
			if valueEqual(value, candidate) {
				return false
			}
		}
		return true
	case OpGte:
		got, ok1 := toFloat(value)
		want, ok2 := toFloat(c.Value)
		return present && ok1 && ok2 && got >= want
	case OpLte:
		got, ok1 := toFloat(value)
		want, ok2 := toFloat(c.Value)
		return present && ok1 && ok2 && got <= want
	default:
		return false
	}
}

func listValues(value any) []any {
	if list, ok := value.([]any); ok {
		return list
	}
	return []any{value}
}

// valueEqual compares metadata values loosely: numerically when both
// sides parse as numbers, otherwise as trimmed strings. Metadata crosses
// a JSON boundary, so "42" and 42 must compare equal.
func valueEqual(a, b any) bool {
	fa, okA := toFloat(a)
	fb, okB := toFloat(b)
	if okA && okB {
		return fa == fb
	}
	return strings.TrimSpace(stringValue(a)) == strings.TrimSpace(stringValue(b))
}
