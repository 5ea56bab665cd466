package hashfunc

import (
	"fmt"
	"strings"
)

// Kind - Selects which hash function a table uses to compute the home index of a key.
// The kind is given per call, so the same table can be addressed with either function as long as a key is
// searched and removed with the same kind it was inserted with.
type Kind int

const (
	// Division - h(k) = |k| mod m
	Division Kind = iota
	// Multiplication - h(k) = floor(m * frac(|k| * A))
	Multiplication
)

// Kinds - All hash function kinds, in a stable order
var Kinds = []Kind{Division, Multiplication}

// String - Returns the name of the hash function kind
func (K Kind) String() string {
	switch K {
	case Division:
		return "Division"
	case Multiplication:
		return "Multiplication"
	default:
		return fmt.Sprintf("Kind(%d)", int(K))
	}
}

// ParseKind - Parses a hash function kind from its name, case-insensitive. The short forms "div" and "mul" are
// accepted as well.
func ParseKind(name string) (kind Kind, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "division", "div":
		kind = Division
	case "multiplication", "mul":
		kind = Multiplication
	default:
		err = fmt.Errorf("unknown hash function kind %q", name)
	}

	return
}

// HashAlgorithm - Interface for index computation given an integer key and the table size.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	//   - tableSize is the number of buckets (or cells) the table will address
	SetTableSize(tableSize int64)

	// GetTableSize - Returns the table size the implemented hash function is supporting
	GetTableSize() int64

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1.
	// The sign of the key is discarded before hashing.
	HashFunc1(key int64) int64

	// ProbeIteration - Returns the index to inspect in a given probe iteration, starting from the home index
	// returned by HashFunc1. Iteration 0 is the home index itself.
	// The function is not used for the Separate Chaining Collision Resolution Technique.
	ProbeIteration(hf1Value, iteration int64) int64
}
