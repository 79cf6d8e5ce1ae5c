package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/varnhold/lexent/core"
)

// Key prefixes for different data types
const (
	documentPrefix         = "docrec"
	documentPositionPrefix = "docpos"
	documentPositionRev    = "docposr"
	documentPositionSeq    = "docposseq"
)

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentPrefix, id))
}

// makePositionKey generates a composite key for the insertion-order index.
// Format: prefix:position
func makePositionKey(position uint64) []byte {
	prefix := documentPositionPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], position)
	return buf
}

// makePositionRevKey generates a key from document ID to its position
// index entry, so deletions can clean up the insertion-order index.
func makePositionRevKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentPositionRev, id))
}
