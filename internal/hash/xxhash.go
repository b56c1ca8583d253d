package hash

import "github.com/cespare/xxhash/v2"

// XXHashAlgorithm - Bucket selection using the 64-bit xxHash of the key, bucket = hash % tableSize.
// Spreads short similar keys (such as sequential vehicle ids) better than the char sum.
type XXHashAlgorithm struct {
	tableSize int64
}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm(tableSize int64) *XXHashAlgorithm {
	ha := &XXHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm
func (X *XXHashAlgorithm) SetTableSize(tableSize int64) {
	X.tableSize = tableSize
}

// HashFunc - Given key it generates an RBN between 0 and table size - 1
func (X *XXHashAlgorithm) HashFunc(key []byte) int64 {
	return bucket(xxhash.Sum64(key), X.tableSize)
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (X *XXHashAlgorithm) GetTableSize() int64 {
	return X.tableSize
}
