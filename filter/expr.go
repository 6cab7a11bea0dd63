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

	"github.com/SG-AI-Team/search-bar/core"
)

// Op is a comparison operator in a predicate leaf.
type Op string

// Operators understood by the nearest-neighbor service.
const (
	OpEq  Op = "$eq"
	OpNe  Op = "$ne"
	OpIn  Op = "$in"
	OpNin Op = "$nin"
	OpGte Op = "$gte"
	OpLte Op = "$lte"
)

// Expr is a node of a boolean predicate tree. Trees are passed to the
// nearest-neighbor service as opaque structured values via Tree().
type Expr interface {
	// Tree renders the node in the wire shape the index consumes.
	Tree() map[string]any
}

// Cmp is a single field comparison leaf.
type Cmp struct {
	Field string
	Op    Op
	Value any
}

// Tree renders {"field": {"$op": value}}.
func (c Cmp) Tree() map[string]any {
	return map[string]any{c.Field: map[string]any{string(c.Op): c.Value}}
}

// And is a conjunction of sub-expressions.
type And []Expr

// Tree renders {"$and": [...]}.
func (a And) Tree() map[string]any {
	children := make([]any, 0, len(a))
	for _, e := range a {
		children = append(children, e.Tree())
	}
	return map[string]any{"$and": children}
}

// Or is a disjunction of sub-expressions.
type Or []Expr

// Tree renders {"$or": [...]}.
func (o Or) Tree() map[string]any {
	children := make([]any, 0, len(o))
	for _, e := range o {
		children = append(children, e.Tree())
	}
	return map[string]any{"$or": children}
}

// Regex is a content predicate leaf, evaluated against a document's
// free-text rendering rather than its structured attributes.
type Regex struct {
	Pattern string
}

// Tree renders {"$regex": pattern}.
func (r Regex) Tree() map[string]any {
	return map[string]any{"$regex": r.Pattern}
}

// Eq builds an exact attribute match.
func Eq(field string, value any) Expr {
	return Cmp{Field: field, Op: OpEq, Value: value}
}

// Ne builds an attribute mismatch. Documents missing the field match.
func Ne(field string, value any) Expr {
	return Cmp{Field: field, Op: OpNe, Value: value}
}

// In builds set membership over the given values.
func In(field string, values []any) Expr {
	return Cmp{Field: field, Op: OpIn, Value: values}
}

// Nin builds set exclusion over the given values.
// Documents missing the field match.
func Nin(field string, values []any) Expr {
	return Cmp{Field: field, Op: OpNin, Value: values}
}

// Range builds a closed numeric range min <= field <= max.
func Range(field string, min, max float64) Expr {
	return And{
		Cmp{Field: field, Op: OpLte, Value: max},
		Cmp{Field: field, Op: OpGte, Value: min},
	}
}

// ContentRegex builds a case-insensitive content predicate requiring
// label followed (anywhere later) by value. The value is quoted so user
// input cannot change the pattern's structure.
func ContentRegex(label, value string) Expr {
	return Regex{Pattern: "(?i)" + label + ".*" + regexp.QuoteMeta(value)}
}

// AllOf combines expressions with AND, skipping nils.
// Returns nil for no expressions and the expression itself for one,
// so predicate trees stay as flat as the index expects.
func AllOf(exprs ...Expr) Expr {
	return combine(exprs, func(kept []Expr) Expr { return And(kept) })
}

// AnyOf combines expressions with OR, skipping nils.
func AnyOf(exprs ...Expr) Expr {
	return combine(exprs, func(kept []Expr) Expr { return Or(kept) })
}

func combine(exprs []Expr, wrap func([]Expr) Expr) Expr {
	kept := make([]Expr, 0, len(exprs))
	for _, e := range exprs {
		if e != nil {
			kept = append(kept, e)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	default:
		return wrap(kept)
	}
}

// ExcludeIDs builds the pagination exclusion predicate: documents whose
// school or program identifier was already returned must not reappear.
// Either slice may be empty; both empty yields nil (no constraint).
func ExcludeIDs(schoolIDs, programIDs []core.ID) Expr {
	var exprs []Expr
	if len(schoolIDs) > 0 {
		exprs = append(exprs, Nin(FieldSchoolID, idValues(schoolIDs)))
	}
	if len(programIDs) > 0 {
		exprs = append(exprs, Nin(FieldProgramID, idValues(programIDs)))
	}
	return AllOf(exprs...)
}

// IncludeIDs builds the filter-refinement inclusion predicate: restrict
// candidates to previously returned school/program identifiers.
func IncludeIDs(schoolIDs, programIDs []core.ID) Expr {
	var exprs []Expr
	if len(schoolIDs) > 0 {
		exprs = append(exprs, In(FieldSchoolID, idValues(schoolIDs)))
	}
	if len(programIDs) > 0 {
		exprs = append(exprs, In(FieldProgramID, idValues(programIDs)))
	}
	return AllOf(exprs...)
}

func idValues(ids []core.ID) []any {
	values := make([]any, 0, len(ids))
	for _, id := range ids {
		values = append(values, id.String())
	}
	return values
}
