package openaddressing

import (
	"github.com/Gabriel-Freitas-S/analise-hash/crt"
	"github.com/Gabriel-Freitas-S/analise-hash/hashfunc"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/conf"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/hash"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/model"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/storage"
)

// OATable - Represents an implementation of the Open Addressing Collision Resolution Technique with linear probing.
// Every cell holds at most one key. In case of a collision, it probes through the table cell by cell, wrapping around
// at the end, looking for an available cell. Removed keys leave a tombstone so that probe sequences passing the
// cell stay intact (lazy deletion).
// The table accepts no more keys once conf.MaxLoadFactor or conf.MaxOccupancyFactor is exceeded, it never resizes
// itself, NeedsRehash tells an owner when a bigger table is due.
type OATable struct {
	cells          []model.Cell
	capacity       int64
	nOccupied      int64
	nDeleted       int64
	hashAlgorithms map[hashfunc.Kind]hashfunc.HashAlgorithm
}

// NewOATable - Returns a pointer to a new instance of Open Addressing table implementation.
//   - capacity is the number of cells, it must be higher than 0 (zero)
//
// It returns:
//   - oaTable which is a pointer to the created instance
//   - err which is of type crt.InvalidConfiguration if capacity is not valid
func NewOATable(capacity int64) (oaTable *OATable, err error) {
	if capacity <= 0 {
		err = crt.NewInvalidConfiguration("capacity must be a positive value higher than 0 (zero), got %d", capacity)
		return
	}

	hashAlgorithms := make(map[hashfunc.Kind]hashfunc.HashAlgorithm, len(hashfunc.Kinds))
	for _, kind := range hashfunc.Kinds {
		hashAlgorithms[kind] = hash.NewHashAlgorithm(kind, capacity)
	}

	oaTable = &OATable{
		cells:          make([]model.Cell, capacity),
		capacity:       capacity,
		hashAlgorithms: hashAlgorithms,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from OATable
func (Q *OATable) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.LinearProbing,
		Capacity:                     Q.capacity,
		Size:                         Q.nOccupied,
		Tombstones:                   Q.nDeleted,
	}

	return
}

// Insert - Adds key to the table unless it is already there.
// It returns:
//   - err is of type crt.CapacityExceeded if a load threshold is exceeded or no available cell was found, the table is then left untouched
func (Q *OATable) Insert(key int64, kind hashfunc.Kind) (err error) {
	if Q.NeedsRehash() {
		err = crt.NewCapacityExceeded("load factor %.2f or occupancy factor %.2f above limit, rehash needed",
			Q.LoadFactor(), Q.OccupancyFactor())
		return
	}

	index, err := Q.probingForSet(key, kind)
	if err != nil {
		return
	}

	// Key already in the table
	if !Q.cells[index].Available() {
		return
	}

	fromState := Q.cells[index].State
	Q.cells[index] = model.Cell{State: model.CellOccupied, Key: key}
	Q.updateUtilizationInfo(fromState, model.CellOccupied)

	return
}

// Search - Returns true if key is in the table
func (Q *OATable) Search(key int64, kind hashfunc.Kind) bool {
	_, found := Q.probingForGet(key, kind)
	return found
}

// Remove - Marks the cell holding key as a tombstone.
// It returns:
//   - value is the removed key
//   - ok is false if the key was not in the table
func (Q *OATable) Remove(key int64, kind hashfunc.Kind) (value int64, ok bool) {
	index, found := Q.probingForGet(key, kind)
	if !found {
		return
	}

	value = Q.cells[index].Key
	Q.cells[index] = model.Cell{State: model.CellTombstone}
	Q.updateUtilizationInfo(model.CellOccupied, model.CellTombstone)

	return value, true
}

// LoadFactor - Returns number of occupied cells divided by capacity
func (Q *OATable) LoadFactor() float64 {
	return float64(Q.nOccupied) / float64(Q.capacity)
}

// OccupancyFactor - Returns number of occupied and tombstone cells divided by capacity
func (Q *OATable) OccupancyFactor() float64 {
	return float64(Q.nOccupied+Q.nDeleted) / float64(Q.capacity)
}

// NeedsRehash - Returns true if either the load factor or the occupancy factor is above its limit.
// The table does not act on this itself.
func (Q *OATable) NeedsRehash() bool {
	return Q.LoadFactor() > conf.MaxLoadFactor || Q.OccupancyFactor() > conf.MaxOccupancyFactor
}

// Size - Returns number of keys in the table
func (Q *OATable) Size() int64 {
	return Q.nOccupied
}

// Tombstones - Returns number of cells holding a tombstone
func (Q *OATable) Tombstones() int64 {
	return Q.nDeleted
}

// IsEmpty - Returns true if the table holds no keys
func (Q *OATable) IsEmpty() bool {
	return Q.nOccupied == 0
}

// Capacity - Returns number of cells
func (Q *OATable) Capacity() int64 {
	return Q.capacity
}

// Cell - Returns a copy of the cell at index, an index outside the table gives an empty cell
func (Q *OATable) Cell(index int64) model.Cell {
	if index < 0 || index >= Q.capacity {
		return model.Cell{}
	}

	return Q.cells[index]
}

// HomeIndex - Returns the index probing for key starts at with the given hash function kind
func (Q *OATable) HomeIndex(key int64, kind hashfunc.Kind) int64 {
	return Q.getHashAlgorithm(kind).HashFunc1(key)
}

// Clear - Resets every cell to empty and zeroes the counters
func (Q *OATable) Clear() {
	for i := range Q.cells {
		Q.cells[i] = model.Cell{}
	}
	Q.nOccupied = 0
	Q.nDeleted = 0
}

// Statistics - Returns probing cost and clustering of the current layout.
// Probe counts are always measured from the division method home index, whichever kind placed the keys, so that
// runs with different hash functions stay comparable.
// Tombstones take part in clusters, so a table whose keys were all removed can still report clusters.
func (Q *OATable) Statistics() model.ProbeStatistics {
	homeIndex := func(key int64) int64 { return hash.DivisionIndex(key, Q.capacity) }

	return storage.ProbeStatistics(Q.cells, homeIndex)
}
