package hashfunc

// Internal - Identifies one of the built-in hash algorithms. The id is stored in the hash file header
// so that an existing file is always reopened with the algorithm it was created with.
type Internal uint8

const (
	// External - No built-in algorithm, the caller supplies a HashAlgorithm on every create and open
	External Internal = iota
	// CharSum - Sum of key bytes modulo table size
	CharSum
	// CRC32 - crc32.ChecksumIEEE of the key modulo table size, the default
	CRC32
	// XXHash - xxhash.Sum64 of the key modulo table size
	XXHash
)

// String - Returns the name of the algorithm as used in configuration
func (I Internal) String() string {
	switch I {
	case External:
		return "external"
	case CharSum:
		return "charsum"
	case CRC32:
		return "crc32"
	case XXHash:
		return "xxhash"
	default:
		return "unknown"
	}
}

// ParseInternal - Returns the built-in algorithm matching name, ok is false if there is none
func ParseInternal(name string) (internal Internal, ok bool) {
	for _, i := range []Internal{CharSum, CRC32, XXHash} {
		if i.String() == name {
			return i, true
		}
	}
	return
}

// HashAlgorithm - Interface that permits an implementation using the hash file to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called both when creating a new hash file and when opening an existing one. Hence, if a custom
	// hash algorithm already has a table size it will be overwritten by the max hash of the file.
	//   - tableSize is the number of buckets the hash file addresses
	SetTableSize(tableSize int64)

	// HashFunc - Given key it generates an RBN between 0 and table size - 1.
	// It must be deterministic for a given key and table size. Any number returned outside the
	// table size will be reported as an invalid location down stream.
	HashFunc(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting
	GetTableSize() int64
}
