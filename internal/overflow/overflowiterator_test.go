//go:build unit

package overflow

import (
	"github.com/Gabriel-Freitas-S/analise-hash/crt"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/model"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRecords_Next(t *testing.T) {
	t.Run("iterates a chain head first", func(t *testing.T) {
		// Prepare
		slab := []model.Node{{}, {Key: 10, Next: 0}, {Key: 17, Next: 1}, {Key: 24, Next: 2}}
		iter := NewRecords(func(address int64) model.Node { return slab[address] }, 3)

		var keys, addresses []int64

		// Execute
		for iter.HasNext() {
			node, address, err := iter.Next()
			assert.NoError(t, err, "gets next node")
			keys = append(keys, node.Key)
			addresses = append(addresses, address)
		}

		// Check
		assert.Equal(t, []int64{24, 17, 10}, keys, "keys in chain order")
		assert.Equal(t, []int64{3, 2, 1}, addresses, "addresses in chain order")
	})

	t.Run("returns correct error when chain is exhausted", func(t *testing.T) {
		// Prepare
		iter := NewRecords(func(address int64) model.Node { return model.Node{} }, 0)

		// Execute
		_, _, err := iter.Next()

		// Check
		assert.False(t, iter.HasNext(), "empty chain has no next")
		assert.ErrorIs(t, err, crt.NoRecordFound{}, "get correct error")
	})
}
