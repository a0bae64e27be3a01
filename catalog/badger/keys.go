package badger

import (
	"encoding/binary"

	"github.com/poiesic/assessrec/core"
)

// Key prefixes for the catalog store
const (
	assessmentPosPrefix = "asmpos"
	assessmentKeyPrefix = "asmkey"
)

// makePositionKey generates a key for an assessment by catalog position.
// Positions are written BigEndian so lexicographic iteration preserves
// source order.
func makePositionKey(position int) []byte {
	prefix := assessmentPosPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(position))
	return buf
}

// makeKeyIndexKey generates the secondary index key mapping an assessment
// key (its URL) to its catalog position. The URL is folded to its derived
// core.ID so index keys are fixed width regardless of URL length.
func makeKeyIndexKey(key string) []byte {
	prefix := assessmentKeyPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(core.IDFromKey(key)))
	return buf
}

// positionFromValue decodes a position stored in a key-index value.
func positionFromValue(val []byte) uint64 {
	return binary.BigEndian.Uint64(val)
}

// positionValue encodes a position for a key-index value.
func positionValue(position int) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(position))
	return buf
}
