package hash

import (
	"github.com/Gabriel-Freitas-S/analise-hash/internal/conf"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/utils"
	"math"
)

// MultiplicationHashAlgorithm - Bucket selection by the multiplication method,
// bucket = floor(tableSize * frac(|key| * A)) where A is conf.MultiplicationConstant.
// The table size is not critical for this method.
type MultiplicationHashAlgorithm struct {
	linearProbing
}

// NewMultiplicationHashAlgorithm - Returns a pointer to a new MultiplicationHashAlgorithm instance
func NewMultiplicationHashAlgorithm(tableSize int64) *MultiplicationHashAlgorithm {
	ha := &MultiplicationHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (M *MultiplicationHashAlgorithm) HashFunc1(key int64) int64 {
	return MultiplicationIndex(key, M.tableSize)
}

// MultiplicationIndex - Returns floor(capacity * frac(|key| * A))
func MultiplicationIndex(key, capacity int64) int64 {
	product := float64(utils.Abs(key)) * conf.MultiplicationConstant
	fraction := product - math.Floor(product)

	index := int64(math.Floor(fraction * float64(capacity)))
	// fraction is below 1, rounding of the product may still land on capacity
	if index >= capacity {
		index = capacity - 1
	}

	return index
}
