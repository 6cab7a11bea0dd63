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
	"encoding/json"
	"fmt"
	"strconv"
)

// Recognized filter categories. Anything else in a statement is ignored.
const (
	CategoryProgramType     = "program_type"
	CategoryDuration        = "duration"
	CategoryFee             = "fee"
	CategoryProgramLanguage = "program_language"
	CategoryEntryLevel      = "entry_level"
	CategoryCity            = "city"
	CategoryCountry         = "country"
	CategoryIntake          = "intake"
	CategorySchoolName      = "school_name"
)

// Metadata field names shared with the index documents.
const (
	FieldSchoolID      = "school_id"
	FieldProgramID     = "program_id"
	FieldFee           = "fee"
	FieldDoubleDiploma = "is_double_diploma"
)

// Content labels: the rendered document text prefixes each value with
// its category label, so content predicates anchor on the label.
var contentLabels = map[string]string{
	CategoryProgramLanguage: "program language",
	CategoryEntryLevel:      "entry level",
	CategoryCity:            "city",
	CategoryCountry:         "country",
	CategoryIntake:          "intake",
}

// Statement maps a filter category to one value or a list of values.
type Statement map[string]any

// Predicate is a compiled filter: Where applies to structured document
// attributes and is evaluated by the index's metadata engine;
// WhereDocument applies to the document's free-text content.
type Predicate struct {
	Where         Expr
	WhereDocument Expr
}

// IsEmpty reports whether the predicate carries no constraints.
func (p Predicate) IsEmpty() bool {
	return p.Where == nil && p.WhereDocument == nil
}

// Compile turns filter statements into a composite predicate pair.
//
// All statement values are grouped by category first (list values are
// flattened), then each category compiles independently:
//
//   - program_type, duration, school_name: equality for one value,
//     set membership for several.
//   - fee: a single closed range spanning the min and max of every
//     supplied fee value, regardless of how many statements carried fees.
//   - program_language, entry_level, city, country, intake: content
//     regexes; several values OR together, each independently sufficient.
//
// Compile is pure and never fails: identical statements always produce
// an identical tree, and an empty statement list produces an empty
// predicate.
func Compile(statements []Statement) Predicate {
	grouped, order := groupValues(statements)

	var where []Expr
	var whereDocument []Expr

	for _, category := range order {
		values := grouped[category]
		if len(values) == 0 {
			continue
		}

		switch category {
		case CategoryProgramType, CategoryDuration, CategorySchoolName:
			if len(values) == 1 {
				where = append(where, Eq(category, values[0]))
			} else {
				where = append(where, In(category, values))
			}

		case CategoryFee:
			if expr := feeRange(values); expr != nil {
				where = append(where, expr)
			}

		case CategoryProgramLanguage, CategoryEntryLevel, CategoryCity, CategoryCountry, CategoryIntake:
			label := contentLabels[category]
			regexes := make([]Expr, 0, len(values))
			for _, v := range values {
				regexes = append(regexes, ContentRegex(label, stringValue(v)))
			}
			whereDocument = append(whereDocument, AnyOf(regexes...))
		}
	}

	return Predicate{
		Where:         AllOf(where...),
		WhereDocument: AllOf(whereDocument...),
	}
}

// DoubleDiploma derives the internal double-diploma predicate from the
// extracted intent. The index stores the flag as a stringified boolean.
// Tri-state: true requires the flag, false rejects it (documents without
// the flag pass), nil imposes nothing.
func DoubleDiploma(want *bool) Expr {
	if want == nil {
		return nil
	}
	if *want {
		return Eq(FieldDoubleDiploma, "True")
	}
	return Ne(FieldDoubleDiploma, "True")
}

// groupValues accumulates statement values per category, preserving the
// first-seen category order so compilation stays deterministic.
func groupValues(statements []Statement) (map[string][]any, []string) {
	grouped := make(map[string][]any)
	order := make([]string, 0, len(statements))

	for _, statement := range statements {
		for _, category := range statementCategories(statement) {
			if _, seen := grouped[category]; !seen {
				order = append(order, category)
			}
			grouped[category] = append(grouped[category], flatten(statement[category])...)
		}
	}

	return grouped, order
}

// statementCategories returns a statement's categories in a stable order.
// Statements normally carry a single category, but map iteration order
// must not leak into the compiled tree when they carry more.
func statementCategories(statement Statement) []string {
	known := []string{
		CategoryProgramType, CategoryDuration, CategoryFee,
		CategoryProgramLanguage, CategoryEntryLevel,
		CategoryCity, CategoryCountry, CategoryIntake,
		CategorySchoolName,
	}
	categories := make([]string, 0, len(statement))
	for _, category := range known {
		if _, ok := statement[category]; ok {
			categories = append(categories, category)
		}
	}
	return categories
}

// flatten expands list-valued statement entries into individual values.
func flatten(value any) []any {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, flatten(item)...)
		}
		return out
	case []string:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, item)
		}
		return out
	case []float64:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, item)
		}
		return out
	case []int:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, item)
		}
		return out
	default:
		return []any{v}
	}
}

// feeRange collapses every supplied fee value into one min/max span.
// Non-numeric values are skipped; no numeric values yields no predicate.
func feeRange(values []any) Expr {
	var min, max float64
	found := false
	for _, v := range values {
		f, ok := toFloat(v)
		if !ok {
			continue
		}
		if !found {
			min, max = f, f
			found = true
			continue
		}
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}
	if !found {
		return nil
	}
	return Range(FieldFee, min, max)
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func stringValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
