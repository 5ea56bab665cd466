package hash

import (
	"github.com/Gabriel-Freitas-S/analise-hash/hashfunc"
)

// NewHashAlgorithm - Returns the internal hash algorithm for the given kind, set up for tableSize
func NewHashAlgorithm(kind hashfunc.Kind, tableSize int64) hashfunc.HashAlgorithm {
	switch kind {
	case hashfunc.Multiplication:
		return NewMultiplicationHashAlgorithm(tableSize)
	default:
		return NewDivisionHashAlgorithm(tableSize)
	}
}

// linearProbing - Table size bookkeeping and the linear probe sequence shared by the internal algorithms
type linearProbing struct {
	tableSize int64
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the table will address
func (L *linearProbing) SetTableSize(tableSize int64) {
	L.tableSize = tableSize
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (L *linearProbing) GetTableSize() int64 {
	return L.tableSize
}

// ProbeIteration - Implements Linear Probing
func (L *linearProbing) ProbeIteration(hf1Value, iteration int64) int64 {
	return (hf1Value + iteration) % L.tableSize
}
