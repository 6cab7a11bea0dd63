package vector

import (
	"fmt"

	"github.com/SG-AI-Team/search-bar/core"
	"github.com/tmc/langchaingo/schema"
)

// Metadata keys carried by indexed documents.
const (
	MetaSchoolID       = "school_id"
	MetaProgramID      = "program_id"
	MetaCountry        = "country"
	MetaDuration       = "duration"
	MetaProgramType    = "program_type"
	MetaFee            = "fee"
	MetaRank           = "rank"
	MetaSpecialization = "specialization"
	MetaDoubleDiploma  = "is_double_diploma"

	// Populated during ranking.
	MetaSimilarity  = "similarity_score"
	MetaHybridScore = "hybrid_score"
)

// StringMeta reads a metadata value as a string. Missing keys yield "".
func StringMeta(doc schema.Document, key string) string {
	value, ok := doc.Metadata[key]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// FloatMeta reads a metadata value as a float64.
// Missing or non-numeric values yield 0.
func FloatMeta(doc schema.Document, key string) float64 {
	value, ok := doc.Metadata[key]
	if !ok {
		return 0
	}
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// IDMeta reads a metadata value as an entity identifier.
// Returns (0, false) when the key is missing or unparsable.
func IDMeta(doc schema.Document, key string) (core.ID, bool) {
	value, ok := doc.Metadata[key]
	if !ok {
		return 0, false
	}
	return core.ParseID(value)
}

// CloneMetadata copies a document's metadata map so enrichment during
// ranking cannot alias state owned by the index.
func CloneMetadata(doc schema.Document) map[string]any {
	cloned := make(map[string]any, len(doc.Metadata)+2)
	for k, v := range doc.Metadata {
		cloned[k] = v
	}
	return cloned
}
