//go:build unit

package hashtable

import (
	"github.com/Gabriel-Freitas-S/analise-hash/crt"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/storage/openaddressing"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/storage/separatechaining"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewHashTable(t *testing.T) {
	t.Run("creates a table for each technique", func(t *testing.T) {
		// Execute
		scTable, scErr := NewHashTable(crt.SeparateChaining, 7)
		oaTable, oaErr := NewHashTable(crt.LinearProbing, 11)

		// Check
		assert.NoError(t, scErr, "create separate chaining table")
		assert.IsType(t, &separatechaining.SCTable{}, scTable.storage, "separate chaining storage")
		assert.Equal(t, crt.SeparateChaining, scTable.CollisionResolutionTechnique(), "separate chaining technique")
		assert.Equal(t, int64(7), scTable.Capacity(), "separate chaining capacity")

		assert.NoError(t, oaErr, "create linear probing table")
		assert.IsType(t, &openaddressing.OATable{}, oaTable.storage, "linear probing storage")
		assert.Equal(t, crt.LinearProbing, oaTable.CollisionResolutionTechnique(), "linear probing technique")
		assert.Equal(t, int64(11), oaTable.Capacity(), "linear probing capacity")
		assert.Equal(t, "LinearProbing(capacity=11, size=0)", oaTable.String(), "description")
	})

	t.Run("fails on invalid parameters", func(t *testing.T) {
		tests := []struct {
			name     string
			crtType  int
			capacity int64
		}{
			{name: "unknown technique", crtType: 99, capacity: 10},
			{name: "zero capacity chaining", crtType: crt.SeparateChaining, capacity: 0},
			{name: "negative capacity probing", crtType: crt.LinearProbing, capacity: -1},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				// Execute
				hashTable, err := NewHashTable(test.crtType, test.capacity)

				// Check
				assert.ErrorIs(t, err, crt.InvalidConfiguration{}, "get correct error")
				assert.Nil(t, hashTable, "no table created")
			})
		}
	})
}
