package hash

import (
	"fmt"
	"github.com/gostonefire/hashdb/hashfunc"
)

// NewInternalHashAlgorithm - Returns a new instance of the built-in algorithm identified by internal,
// with its table size set to tableSize.
func NewInternalHashAlgorithm(internal hashfunc.Internal, tableSize int64) (hashAlgorithm hashfunc.HashAlgorithm, err error) {
	switch internal {
	case hashfunc.CharSum:
		hashAlgorithm = NewCharSumHashAlgorithm(tableSize)
	case hashfunc.CRC32:
		hashAlgorithm = NewCRC32HashAlgorithm(tableSize)
	case hashfunc.XXHash:
		hashAlgorithm = NewXXHashAlgorithm(tableSize)
	default:
		err = fmt.Errorf("no built-in hash algorithm with id %d", internal)
	}

	return
}

// bucket - Reduces a hash value to a bucket in the range 0 to tableSize - 1
func bucket(h uint64, tableSize int64) int64 {
	if tableSize <= 0 {
		return 0
	}
	return int64(h % uint64(tableSize))
}
