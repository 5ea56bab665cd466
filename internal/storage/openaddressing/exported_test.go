//go:build unit

package openaddressing

import (
	"fmt"
	"github.com/Gabriel-Freitas-S/analise-hash/crt"
	"github.com/Gabriel-Freitas-S/analise-hash/hashfunc"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewOATable(t *testing.T) {
	t.Run("creates a new OATable instance", func(t *testing.T) {
		// Execute
		oaTable, err := NewOATable(10)

		// Check
		assert.NoError(t, err, "create new OATable instance")
		assert.Equal(t, int64(10), oaTable.Capacity(), "capacity preserved")
		assert.Len(t, oaTable.cells, 10, "one cell per slot")
		assert.True(t, oaTable.IsEmpty(), "table is empty")
		assert.Zero(t, oaTable.Tombstones(), "no tombstones")
		for i := int64(0); i < 10; i++ {
			assert.Equalf(t, model.CellEmpty, oaTable.Cell(i).State, "cell %d is empty", i)
		}
	})

	t.Run("fails on capacity that is not positive", func(t *testing.T) {
		for _, capacity := range []int64{0, -10} {
			// Execute
			oaTable, err := NewOATable(capacity)

			// Check
			assert.ErrorIsf(t, err, crt.InvalidConfiguration{}, "get correct error for capacity %d", capacity)
			assert.Nil(t, oaTable, "no table created")
		}
	})
}

func TestOATable_GetStorageParameters(t *testing.T) {
	t.Run("gets storage parameters", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(10)
		require.NoError(t, err, "create new OATable instance")
		_ = oaTable.Insert(1, hashfunc.Division)
		_ = oaTable.Insert(2, hashfunc.Division)
		_, _ = oaTable.Remove(2, hashfunc.Division)

		// Execute
		sp := oaTable.GetStorageParameters()

		// Check
		assert.Equal(t, crt.LinearProbing, sp.CollisionResolutionTechnique, "correct crt")
		assert.Equal(t, int64(10), sp.Capacity, "capacity preserved")
		assert.Equal(t, int64(1), sp.Size, "size preserved")
		assert.Equal(t, int64(1), sp.Tombstones, "tombstones preserved")
	})
}

func TestOATable_Insert(t *testing.T) {
	for _, kind := range hashfunc.Kinds {
		t.Run(fmt.Sprintf("inserts and finds keys for %s", kind), func(t *testing.T) {
			// Prepare
			oaTable, err := NewOATable(97)
			require.NoError(t, err, "create new OATable instance")

			keys := []int64{0, -1, 1, 42, -42, 97, 194, 1000000}

			for _, key := range keys {
				// Execute
				err = oaTable.Insert(key, kind)

				// Check
				assert.NoErrorf(t, err, "insert key %d", key)
				assert.Truef(t, oaTable.Search(key, kind), "finds key %d right after insert", key)
			}
			assert.Equal(t, int64(len(keys)), oaTable.Size(), "size equals distinct keys")
		})

		t.Run(fmt.Sprintf("does not insert duplicates for %s", kind), func(t *testing.T) {
			// Prepare
			oaTable, err := NewOATable(11)
			require.NoError(t, err, "create new OATable instance")

			// Execute
			for i := 0; i < 3; i++ {
				for _, key := range []int64{3, 14, 25} {
					err = oaTable.Insert(key, kind)
					assert.NoError(t, err, "insert key")
				}
			}

			// Check
			assert.Equal(t, int64(3), oaTable.Size(), "size equals distinct keys")
		})
	}

	t.Run("places colliding keys in the following cells", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(5)
		require.NoError(t, err, "create new OATable instance")

		// Execute
		for _, key := range []int64{2, 7, 12} {
			err = oaTable.Insert(key, hashfunc.Division)
			assert.NoError(t, err, "insert key")
		}

		// Check
		assert.Equal(t, model.Cell{State: model.CellOccupied, Key: 2}, oaTable.Cell(2), "home cell")
		assert.Equal(t, model.Cell{State: model.CellOccupied, Key: 7}, oaTable.Cell(3), "first probe step")
		assert.Equal(t, model.Cell{State: model.CellOccupied, Key: 12}, oaTable.Cell(4), "second probe step")
		assert.Equal(t, model.CellEmpty, oaTable.Cell(0).State, "first cell still empty")
		assert.False(t, oaTable.Search(17, hashfunc.Division), "probes 2, 3, 4 and stops at empty cell 0")
	})

	t.Run("wraps around at the end of the table", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(10)
		require.NoError(t, err, "create new OATable instance")

		// Execute
		for _, key := range []int64{9, 19, 29} {
			err = oaTable.Insert(key, hashfunc.Division)
			assert.NoError(t, err, "insert key")
		}

		// Check
		assert.Equal(t, int64(9), oaTable.Cell(9).Key, "home cell")
		assert.Equal(t, int64(19), oaTable.Cell(0).Key, "wrapped to first cell")
		assert.Equal(t, int64(29), oaTable.Cell(1).Key, "second cell")
		assert.True(t, oaTable.Search(29, hashfunc.Division), "finds wrapped key")
	})

	t.Run("fails without mutation when over the high-water mark", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(10)
		require.NoError(t, err, "create new OATable instance")

		var key int64
		for ; !oaTable.NeedsRehash(); key++ {
			err = oaTable.Insert(key, hashfunc.Division)
			require.NoErrorf(t, err, "insert key %d", key)
		}

		size := oaTable.Size()
		loadFactor := oaTable.LoadFactor()
		cells := make([]model.Cell, len(oaTable.cells))
		copy(cells, oaTable.cells)

		// Execute
		err = oaTable.Insert(key, hashfunc.Division)

		// Check
		assert.ErrorIs(t, err, crt.CapacityExceeded{}, "get correct error")
		assert.Equal(t, int64(6), size, "accepted inserts until occupancy passed 0.5")
		assert.Equal(t, size, oaTable.Size(), "size unchanged")
		assert.Equal(t, loadFactor, oaTable.LoadFactor(), "load factor unchanged")
		assert.Equal(t, cells, oaTable.cells, "cells unchanged")
		assert.False(t, oaTable.Search(key, hashfunc.Division), "key not inserted")
	})

	t.Run("accepts inserts at exactly the occupancy mark", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(10)
		require.NoError(t, err, "create new OATable instance")
		for key := int64(0); key < 5; key++ {
			require.NoError(t, oaTable.Insert(key, hashfunc.Division), "insert key")
		}
		require.Equal(t, 0.5, oaTable.OccupancyFactor(), "occupancy at the mark")

		// Execute
		err = oaTable.Insert(5, hashfunc.Division)

		// Check
		assert.NoError(t, err, "insert at the mark")
		assert.Equal(t, int64(6), oaTable.Size(), "size incremented")
	})

	t.Run("fails when tombstones push occupancy over its mark", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(10)
		require.NoError(t, err, "create new OATable instance")
		for key := int64(0); key < 6; key++ {
			require.NoError(t, oaTable.Insert(key, hashfunc.Division), "insert key")
		}
		for key := int64(0); key < 3; key++ {
			_, ok := oaTable.Remove(key, hashfunc.Division)
			require.True(t, ok, "remove key")
		}

		// Execute
		err = oaTable.Insert(100, hashfunc.Division)

		// Check
		assert.ErrorIs(t, err, crt.CapacityExceeded{}, "get correct error")
		assert.Equal(t, 0.3, oaTable.LoadFactor(), "load factor looks healthy")
		assert.Equal(t, 0.6, oaTable.OccupancyFactor(), "occupancy over its mark")
		assert.True(t, oaTable.NeedsRehash(), "rehash needed")
	})

	t.Run("reuses tombstones", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(10)
		require.NoError(t, err, "create new OATable instance")
		for _, key := range []int64{0, 10, 20} {
			require.NoError(t, oaTable.Insert(key, hashfunc.Division), "insert key")
		}
		_, ok := oaTable.Remove(10, hashfunc.Division)
		require.True(t, ok, "remove key")

		// Execute
		err = oaTable.Insert(30, hashfunc.Division)

		// Check
		assert.NoError(t, err, "insert key")
		assert.Equal(t, model.Cell{State: model.CellOccupied, Key: 30}, oaTable.Cell(1), "tombstone reused")
		assert.Zero(t, oaTable.Tombstones(), "tombstone counter decremented")
		assert.Equal(t, int64(3), oaTable.Size(), "size")
	})

	t.Run("does not store a key twice when it lies beyond a tombstone", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(10)
		require.NoError(t, err, "create new OATable instance")
		for _, key := range []int64{0, 10, 20} {
			require.NoError(t, oaTable.Insert(key, hashfunc.Division), "insert key")
		}
		_, ok := oaTable.Remove(0, hashfunc.Division)
		require.True(t, ok, "remove key")

		// Execute
		err = oaTable.Insert(20, hashfunc.Division)

		// Check
		assert.NoError(t, err, "insert existing key")
		assert.Equal(t, int64(2), oaTable.Size(), "size unchanged")
		assert.Equal(t, model.CellTombstone, oaTable.Cell(0).State, "tombstone left in place")
		assert.Equal(t, int64(1), oaTable.Tombstones(), "tombstone counter unchanged")
	})
}

func TestOATable_Remove(t *testing.T) {
	t.Run("leaves a tombstone and keeps later keys reachable", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(5)
		require.NoError(t, err, "create new OATable instance")
		for _, key := range []int64{2, 7, 12} {
			require.NoError(t, oaTable.Insert(key, hashfunc.Division), "insert key")
		}

		// Execute
		value, ok := oaTable.Remove(7, hashfunc.Division)

		// Check
		assert.True(t, ok, "key removed")
		assert.Equal(t, int64(7), value, "removed key returned")
		assert.False(t, oaTable.Search(7, hashfunc.Division), "removed key not found")
		assert.True(t, oaTable.Search(12, hashfunc.Division), "key beyond tombstone still found")
		assert.True(t, oaTable.Search(2, hashfunc.Division), "key before tombstone still found")
		assert.Equal(t, model.Cell{State: model.CellTombstone}, oaTable.Cell(3), "cell is a cleared tombstone")
		assert.Equal(t, int64(2), oaTable.Size(), "size decremented")
		assert.Equal(t, int64(1), oaTable.Tombstones(), "tombstone counter incremented")
	})

	t.Run("reports missing keys", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(5)
		require.NoError(t, err, "create new OATable instance")
		require.NoError(t, oaTable.Insert(2, hashfunc.Division), "insert key")

		// Execute
		_, okMissing := oaTable.Remove(7, hashfunc.Division)
		_, okFirst := oaTable.Remove(2, hashfunc.Division)
		_, okTwice := oaTable.Remove(2, hashfunc.Division)

		// Check
		assert.False(t, okMissing, "missing key not removed")
		assert.True(t, okFirst, "existing key removed")
		assert.False(t, okTwice, "key removed only once")
		assert.Equal(t, int64(1), oaTable.Tombstones(), "one tombstone")
	})

	t.Run("removes with the multiplication method", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(31)
		require.NoError(t, err, "create new OATable instance")
		for key := int64(1); key <= 15; key++ {
			require.NoError(t, oaTable.Insert(key*13, hashfunc.Multiplication), "insert key")
		}

		// Execute
		for key := int64(1); key <= 15; key += 2 {
			_, ok := oaTable.Remove(key*13, hashfunc.Multiplication)
			assert.Truef(t, ok, "removes key %d", key*13)
		}

		// Check
		for key := int64(1); key <= 15; key++ {
			assert.Equalf(t, key%2 == 0, oaTable.Search(key*13, hashfunc.Multiplication), "search key %d", key*13)
		}
		assert.Equal(t, int64(7), oaTable.Size(), "size")
		assert.Equal(t, int64(8), oaTable.Tombstones(), "tombstones")
	})
}

func TestOATable_Clear(t *testing.T) {
	t.Run("resets every cell and counter", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(10)
		require.NoError(t, err, "create new OATable instance")
		for key := int64(0); key < 5; key++ {
			require.NoError(t, oaTable.Insert(key, hashfunc.Division), "insert key")
		}
		_, _ = oaTable.Remove(1, hashfunc.Division)

		// Execute
		oaTable.Clear()

		// Check
		assert.True(t, oaTable.IsEmpty(), "table is empty")
		assert.Zero(t, oaTable.Tombstones(), "no tombstones")
		assert.Zero(t, oaTable.OccupancyFactor(), "no occupancy")
		assert.False(t, oaTable.NeedsRehash(), "no rehash needed")
		assert.Equal(t, make([]model.Cell, 10), oaTable.cells, "all cells empty")
	})
}

func TestOATable_Statistics(t *testing.T) {
	t.Run("finds one cluster of colliding keys", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(10)
		require.NoError(t, err, "create new OATable instance")
		for _, key := range []int64{0, 10, 20, 30, 40} {
			require.NoError(t, oaTable.Insert(key, hashfunc.Division), "insert key")
		}

		// Execute
		stats := oaTable.Statistics()

		// Check
		assert.Equal(t, int64(1), stats.Clusters, "one cluster")
		assert.Equal(t, int64(5), stats.LargestCluster, "largest cluster")
		assert.Equal(t, int64(15), stats.TotalProbes, "1 + 2 + 3 + 4 + 5 probes")
		assert.Equal(t, 3.0, stats.MeanProbes, "mean probes")
		assert.Equal(t, int64(5), stats.MaxProbes, "max probes")
	})

	t.Run("treats a run across the end of the table as one cluster", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(10)
		require.NoError(t, err, "create new OATable instance")
		for _, key := range []int64{8, 18, 28, 38} {
			require.NoError(t, oaTable.Insert(key, hashfunc.Division), "insert key")
		}

		// Execute
		stats := oaTable.Statistics()

		// Check
		assert.Equal(t, int64(1), stats.Clusters, "one cluster")
		assert.Equal(t, int64(4), stats.LargestCluster, "largest cluster")
		assert.Equal(t, int64(4), stats.MaxProbes, "probes counted across the end")
	})

	t.Run("measures probes from the division home index", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(10)
		require.NoError(t, err, "create new OATable instance")
		require.NoError(t, oaTable.Insert(1, hashfunc.Multiplication), "insert key")
		require.Equal(t, int64(6), oaTable.HomeIndex(1, hashfunc.Multiplication), "multiplication home index")

		// Execute
		stats := oaTable.Statistics()

		// Check
		assert.Equal(t, int64(6), stats.TotalProbes, "cell 6 is 6 probes from division home index 1")
	})

	t.Run("is zero for an empty table", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(10)
		require.NoError(t, err, "create new OATable instance")

		// Execute
		stats := oaTable.Statistics()

		// Check
		assert.Equal(t, model.ProbeStatistics{}, stats, "zero statistics")
	})

	t.Run("counts tombstone runs when every key is removed", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(10)
		require.NoError(t, err, "create new OATable instance")
		for _, key := range []int64{0, 10, 20} {
			require.NoError(t, oaTable.Insert(key, hashfunc.Division), "insert key")
		}
		for _, key := range []int64{0, 10, 20} {
			_, ok := oaTable.Remove(key, hashfunc.Division)
			require.True(t, ok, "remove key")
		}

		// Execute
		stats := oaTable.Statistics()

		// Check
		assert.True(t, oaTable.IsEmpty(), "no keys left")
		assert.Zero(t, stats.TotalProbes, "no probes")
		assert.Zero(t, stats.MaxProbes, "no max probes")
		assert.Equal(t, int64(1), stats.Clusters, "tombstones form one cluster")
		assert.Equal(t, int64(3), stats.LargestCluster, "largest cluster")
	})
}

func TestOATable_probingForSet(t *testing.T) {
	t.Run("fails when probing exhausts the table", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(4)
		require.NoError(t, err, "create new OATable instance")
		for i := range oaTable.cells {
			oaTable.cells[i] = model.Cell{State: model.CellOccupied, Key: int64(i)}
		}

		// Execute
		_, err = oaTable.probingForSet(100, hashfunc.Division)

		// Check
		assert.ErrorIs(t, err, crt.CapacityExceeded{}, "get correct error")
	})

	t.Run("falls back to a tombstone when there is no empty cell", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(4)
		require.NoError(t, err, "create new OATable instance")
		for i := range oaTable.cells {
			oaTable.cells[i] = model.Cell{State: model.CellOccupied, Key: int64(i)}
		}
		oaTable.cells[2] = model.Cell{State: model.CellTombstone}

		// Execute
		index, err := oaTable.probingForSet(100, hashfunc.Division)

		// Check
		assert.NoError(t, err, "finds a cell")
		assert.Equal(t, int64(2), index, "tombstone cell")
	})

	t.Run("search stops after one full turn", func(t *testing.T) {
		// Prepare
		oaTable, err := NewOATable(4)
		require.NoError(t, err, "create new OATable instance")
		for i := range oaTable.cells {
			oaTable.cells[i] = model.Cell{State: model.CellTombstone}
		}

		// Execute
		found := oaTable.Search(3, hashfunc.Division)

		// Check
		assert.False(t, found, "not found among tombstones")
	})
}
