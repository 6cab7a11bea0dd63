package ai

// QueryFields is the structured intent extracted from a query.
//
// Fields are optional: a nil pointer means "not mentioned". Unknown
// fields in the model output are ignored for forward compatibility.
type QueryFields struct {
	// School is a school name explicitly mentioned in the query.
	School *string `json:"school,omitempty"`

	// DegreeLevels are degree levels mentioned in the query
	// (e.g. "bachelor", "master").
	DegreeLevels []string `json:"degree_level,omitempty"`

	// IsDoubleDiploma is set when the query asks for (or against)
	// double-diploma programs; nil when the query does not say.
	IsDoubleDiploma *bool `json:"is_double_diploma,omitempty"`

	// IsValid is false when the model judged the query meaningless
	// for school/program retrieval.
	IsValid bool `json:"is_valid"`
}
