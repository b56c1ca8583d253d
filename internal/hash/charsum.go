package hash

// CharSumHashAlgorithm - Classic student-file hash: the sum of all key bytes modulo the table size.
// Zero padding in a fixed width key adds nothing, so a key hashes the same regardless of its padding.
type CharSumHashAlgorithm struct {
	tableSize int64
}

// NewCharSumHashAlgorithm - Returns a pointer to a new CharSumHashAlgorithm instance
func NewCharSumHashAlgorithm(tableSize int64) *CharSumHashAlgorithm {
	ha := &CharSumHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm
func (C *CharSumHashAlgorithm) SetTableSize(tableSize int64) {
	C.tableSize = tableSize
}

// HashFunc - Given key it generates an RBN between 0 and table size - 1
func (C *CharSumHashAlgorithm) HashFunc(key []byte) int64 {
	var sum uint64
	for _, b := range key {
		sum += uint64(b)
	}
	return bucket(sum, C.tableSize)
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (C *CharSumHashAlgorithm) GetTableSize() int64 {
	return C.tableSize
}
