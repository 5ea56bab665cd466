package hashtable

import (
	"fmt"
	"github.com/Gabriel-Freitas-S/analise-hash/crt"
	"github.com/Gabriel-Freitas-S/analise-hash/hashfunc"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/model"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/storage/openaddressing"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/storage/separatechaining"
)

// Storage - Interface for any table implementation
type Storage interface {
	Insert(key int64, kind hashfunc.Kind) (err error)
	Search(key int64, kind hashfunc.Kind) bool
	Remove(key int64, kind hashfunc.Kind) (value int64, ok bool)
	LoadFactor() float64
	Size() int64
	IsEmpty() bool
	Capacity() int64
	Clear()
	GetStorageParameters() (params model.StorageParameters)
}

// HashTableStat - Statistics on the overall usage and distribution of keys
//   - CollisionResolutionTechnique is the technique of the table, crt.SeparateChaining or crt.LinearProbing
//   - Capacity is the number of buckets or cells
//   - Size is the number of keys stored
//   - Tombstones is the number of removed keys still taking up a cell, always 0 (zero) for separate chaining
//   - LoadFactor is Size divided by Capacity
//   - Chaining holds bucket distribution for separate chaining, nil otherwise
//   - Probing holds probing cost and clustering for linear probing, nil otherwise
type HashTableStat struct {
	CollisionResolutionTechnique int
	Capacity                     int64
	Size                         int64
	Tombstones                   int64
	LoadFactor                   float64
	Chaining                     *model.ChainStatistics
	Probing                      *model.ProbeStatistics
}

// HashTable - The main implementation struct
type HashTable struct {
	storage Storage
	crtType int
}

// NewHashTable - Returns a new empty hash table with fixed capacity.
//   - crtType is the collision resolution technique, either crt.SeparateChaining or crt.LinearProbing
//   - capacity is the number of buckets (separate chaining) or cells (linear probing), it never changes
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - err is of type crt.InvalidConfiguration if crtType or capacity is not valid
func NewHashTable(crtType int, capacity int64) (hashTable *HashTable, err error) {
	var s Storage

	switch crtType {
	case crt.SeparateChaining:
		s, err = newSCStorage(capacity)
	case crt.LinearProbing:
		s, err = newOAStorage(capacity)
	default:
		err = crt.NewInvalidConfiguration("unknown collision resolution technique %d", crtType)
	}
	if err != nil {
		return
	}

	hashTable = &HashTable{
		storage: s,
		crtType: crtType,
	}

	return
}

// newSCStorage - Avoids handing a typed nil pointer over as a non nil Storage
func newSCStorage(capacity int64) (s Storage, err error) {
	scTable, err := separatechaining.NewSCTable(capacity)
	if err != nil {
		return
	}

	return scTable, nil
}

// newOAStorage - Avoids handing a typed nil pointer over as a non nil Storage
func newOAStorage(capacity int64) (s Storage, err error) {
	oaTable, err := openaddressing.NewOATable(capacity)
	if err != nil {
		return
	}

	return oaTable, nil
}

// CollisionResolutionTechnique - Returns the technique the table was created with
func (H *HashTable) CollisionResolutionTechnique() int {
	return H.crtType
}

// String - Returns a short description of the table
func (H *HashTable) String() string {
	return fmt.Sprintf("%s(capacity=%d, size=%d)", crt.Name(H.crtType), H.storage.Capacity(), H.storage.Size())
}
