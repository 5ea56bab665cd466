package hash

import (
	"github.com/Gabriel-Freitas-S/analise-hash/internal/utils"
)

// DivisionHashAlgorithm - Bucket selection by the division method, bucket = |key| mod tableSize.
// It distributes well when the table size is a prime not too close to a power of 2.
type DivisionHashAlgorithm struct {
	linearProbing
}

// NewDivisionHashAlgorithm - Returns a pointer to a new DivisionHashAlgorithm instance
func NewDivisionHashAlgorithm(tableSize int64) *DivisionHashAlgorithm {
	ha := &DivisionHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (D *DivisionHashAlgorithm) HashFunc1(key int64) int64 {
	return DivisionIndex(key, D.tableSize)
}

// DivisionIndex - Returns |key| mod capacity
func DivisionIndex(key, capacity int64) int64 {
	return int64(utils.Abs(key) % uint64(capacity))
}
