package dataset

import (
	"github.com/Gabriel-Freitas-S/analise-hash/crt"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/conf"
	"math"
	"math/rand"
)

// Generator - Produces pseudo random keys uniformly distributed in a closed range.
// A Generator is not safe for concurrent use, give every goroutine its own.
type Generator struct {
	rnd  *rand.Rand
	min  int64
	max  int64
	span uint64
}

// NewGenerator - Returns a pointer to a new Generator.
//   - seed makes the produced sequence reproducible, the same seed always gives the same keys
//   - min is the lowest key that can be produced
//   - max is the highest key that can be produced, it must be higher than min
//
// It returns:
//   - generator is a pointer to the created instance
//   - err is of type crt.InvalidConfiguration if min is not lower than max
func NewGenerator(seed, min, max int64) (generator *Generator, err error) {
	if min >= max {
		err = crt.NewInvalidConfiguration("min (%d) must be lower than max (%d)", min, max)
		return
	}

	generator = &Generator{
		rnd:  rand.New(rand.NewSource(seed)),
		min:  min,
		max:  max,
		span: uint64(max - min),
	}

	return
}

// NewDefaultGenerator - Returns a Generator over the key range used for work files
func NewDefaultGenerator(seed int64) *Generator {
	generator, _ := NewGenerator(seed, conf.MinKeyValue, conf.MaxKeyValue)
	return generator
}

// Unique - Returns n distinct keys in the order they were drawn.
// Above conf.UniqueGenerationLimit, or when the range holds fewer than n keys, duplicates are allowed and the
// call is the same as WithRepetition.
// It returns:
//   - keys is the produced sequence
//   - err is of type crt.InvalidConfiguration if n is 0 (zero)
func (G *Generator) Unique(n int) (keys []int64, err error) {
	if n <= 0 {
		err = crt.NewInvalidConfiguration("quantity must be higher than 0 (zero), got %d", n)
		return
	}

	if n > conf.UniqueGenerationLimit || uint64(n-1) > G.span {
		return G.WithRepetition(n)
	}

	seen := make(map[int64]struct{}, n)
	keys = make([]int64, 0, n)
	for len(keys) < n {
		key := G.next()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	return
}

// WithRepetition - Returns n keys where the same key may appear more than once
// It returns:
//   - keys is the produced sequence
//   - err is of type crt.InvalidConfiguration if n is 0 (zero)
func (G *Generator) WithRepetition(n int) (keys []int64, err error) {
	if n <= 0 {
		err = crt.NewInvalidConfiguration("quantity must be higher than 0 (zero), got %d", n)
		return
	}

	keys = make([]int64, n)
	for i := range keys {
		keys[i] = G.next()
	}

	return
}

// next - Returns a key in [min, max]. span is max-min as unsigned, so ranges wider than int64 can hold are drawn
// from the full 64 bits and wrapped back on min.
func (G *Generator) next() int64 {
	switch {
	case G.span < math.MaxInt64:
		return G.min + G.rnd.Int63n(int64(G.span)+1)
	case G.span == math.MaxUint64:
		return int64(G.rnd.Uint64())
	default:
		return G.min + int64(G.rnd.Uint64()%(G.span+1))
	}
}
