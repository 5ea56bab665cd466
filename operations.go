package hashtable

import (
	"errors"
	"github.com/Gabriel-Freitas-S/analise-hash/crt"
	"github.com/Gabriel-Freitas-S/analise-hash/hashfunc"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/storage/openaddressing"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/storage/separatechaining"
)

// Insert - Adds key to the table, inserting a key already present changes nothing.
//   - key is any int64, the sign is ignored when hashing
//   - kind is the hash function to compute the home index with
//
// It returns:
//   - err is of type crt.CapacityExceeded if a linear probing table is over its load limits, the table is then left untouched
func (H *HashTable) Insert(key int64, kind hashfunc.Kind) (err error) {
	return H.storage.Insert(key, kind)
}

// InsertAll - Inserts keys in order and stops at the first failure.
// It returns:
//   - inserted is the number of keys handed to the table before stopping, duplicates included
//   - err is the error that stopped the insertion, typically of type crt.CapacityExceeded
func (H *HashTable) InsertAll(keys []int64, kind hashfunc.Kind) (inserted int, err error) {
	for _, key := range keys {
		err = H.storage.Insert(key, kind)
		if err != nil {
			return
		}
		inserted++
	}

	return
}

// Search - Returns true if key is in the table. The same kind as used at insertion must be given.
func (H *HashTable) Search(key int64, kind hashfunc.Kind) bool {
	return H.storage.Search(key, kind)
}

// Remove - Removes key from the table.
// It returns:
//   - value is the removed key
//   - ok is false if the key was not in the table
func (H *HashTable) Remove(key int64, kind hashfunc.Kind) (value int64, ok bool) {
	return H.storage.Remove(key, kind)
}

// LoadFactor - Returns number of keys divided by capacity
func (H *HashTable) LoadFactor() float64 {
	return H.storage.LoadFactor()
}

// OccupancyFactor - Returns number of keys and tombstones divided by capacity.
// For separate chaining, having no tombstones, it equals LoadFactor.
func (H *HashTable) OccupancyFactor() float64 {
	if oaTable, ok := H.storage.(*openaddressing.OATable); ok {
		return oaTable.OccupancyFactor()
	}

	return H.storage.LoadFactor()
}

// NeedsRehash - Returns true if a linear probing table has passed one of its load limits.
// Separate chaining tables never need rehash.
func (H *HashTable) NeedsRehash() bool {
	if oaTable, ok := H.storage.(*openaddressing.OATable); ok {
		return oaTable.NeedsRehash()
	}

	return false
}

// Clear - Removes every key and resets the table to its initial empty state
func (H *HashTable) Clear() {
	H.storage.Clear()
}

// Size - Returns number of keys in the table
func (H *HashTable) Size() int64 {
	return H.storage.Size()
}

// IsEmpty - Returns true if the table holds no keys
func (H *HashTable) IsEmpty() bool {
	return H.storage.IsEmpty()
}

// Capacity - Returns number of buckets or cells
func (H *HashTable) Capacity() int64 {
	return H.storage.Capacity()
}

// Stat - Walks through the entire table and produces a HashTableStat struct with information.
// It does not change the table.
func (H *HashTable) Stat() (hashTableStat HashTableStat) {
	sp := H.storage.GetStorageParameters()

	hashTableStat = HashTableStat{
		CollisionResolutionTechnique: sp.CollisionResolutionTechnique,
		Capacity:                     sp.Capacity,
		Size:                         sp.Size,
		Tombstones:                   sp.Tombstones,
		LoadFactor:                   H.storage.LoadFactor(),
	}

	switch s := H.storage.(type) {
	case *separatechaining.SCTable:
		stats := s.Statistics()
		hashTableStat.Chaining = &stats
	case *openaddressing.OATable:
		stats := s.Statistics()
		hashTableStat.Probing = &stats
	}

	return
}

// IsCapacityExceeded - Returns true if err, or any error it wraps, is of type crt.CapacityExceeded
func IsCapacityExceeded(err error) bool {
	return errors.Is(err, crt.CapacityExceeded{})
}
