package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a fixed-width identifier for catalog entities, derived from the
// entity's canonical key. Storage backends use it for compact keys.
type ID uint64

// IDFromKey generates a deterministic ID from a catalog key using BLAKE2b
// hashing. Identical keys always produce identical IDs.
func IDFromKey(key string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(key))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// TestType is the catalog's assessment category code.
type TestType string

const (
	// TestTypeUnknown means the catalog source did not carry a category.
	TestTypeUnknown TestType = ""
	// TestTypeKnowledge covers knowledge and hard-skill tests.
	TestTypeKnowledge TestType = "K"
	// TestTypePersonality covers personality and behavior tests.
	TestTypePersonality TestType = "P"
	// TestTypeCognitive covers cognitive ability and reasoning tests.
	TestTypeCognitive TestType = "C"
	// TestTypeSimulation covers job simulation exercises.
	TestTypeSimulation TestType = "S"
)

// ParseTestType maps catalog source spellings onto a TestType.
// Unrecognized values map to TestTypeUnknown rather than failing, since the
// category is optional in the catalog schema.
func ParseTestType(s string) TestType {
	switch s {
	case "K", "k", "Knowledge & Skills", "knowledge":
		return TestTypeKnowledge
	case "P", "p", "Personality & Behavior", "personality":
		return TestTypePersonality
	case "C", "c", "Cognitive", "cognitive":
		return TestTypeCognitive
	case "S", "s", "Simulations", "simulation":
		return TestTypeSimulation
	default:
		return TestTypeUnknown
	}
}

// Valid reports whether the TestType is one of the known codes.
func (t TestType) Valid() bool {
	switch t {
	case TestTypeUnknown, TestTypeKnowledge, TestTypePersonality, TestTypeCognitive, TestTypeSimulation:
		return true
	}
	return false
}

// DurationUnknown marks an assessment whose duration the catalog source did
// not report. Distinct from 0, which would be a real (if odd) duration.
const DurationUnknown = -1

// Assessment is a single catalog product. Immutable after catalog load;
// the indexer and ranker reference assessments by Key and never mutate them.
type Assessment struct {
	Key             string // canonical catalog URL, unique within a catalog
	Name            string
	Description     string
	TestType        TestType
	Duration        int // minutes, or DurationUnknown
	AdaptiveSupport bool
	RemoteSupport   bool
}

// ID returns the assessment's derived fixed-width identifier.
func (a *Assessment) ID() ID {
	return IDFromKey(a.Key)
}
