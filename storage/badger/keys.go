package badger

import (
	"fmt"

	"github.com/SG-AI-Team/search-bar/core"
)

// Key prefixes for different data types
const (
	schoolRecordPrefix  = "schrec"
	programRecordPrefix = "prgrec"
)

// makeSchoolRecordKey generates a key for a school record by ID.
func makeSchoolRecordKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", schoolRecordPrefix, id))
}

// makeProgramRecordKey generates a key for a program record by ID.
func makeProgramRecordKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", programRecordPrefix, id))
}
