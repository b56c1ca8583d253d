package record

import (
	"encoding"
	"github.com/gostonefire/hashdb/internal/utils"
)

// FixedRecord - Interface for any record type stored in a hash file.
//
// MarshalBinary must return at most the record size of the file, the hash file zero pads it to exactly that
// width. UnmarshalBinary must accept a buffer of the file's record size, including an all zero buffer which
// decodes to the empty sentinel.
type FixedRecord interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler

	// Key - Returns the fixed width key, used both as hash input and for equality.
	// A key of only zero or space bytes marks the record as the empty sentinel.
	Key() []byte

	// Empty - Returns a new empty sentinel record of the same concrete type
	Empty() FixedRecord
}

// IsEmpty - Returns true if the record is the empty sentinel, i.e. its key is blank
func IsEmpty(record FixedRecord) bool {
	return utils.IsBlank(record.Key())
}
