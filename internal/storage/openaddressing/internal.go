package openaddressing

import (
	"github.com/Gabriel-Freitas-S/analise-hash/crt"
	"github.com/Gabriel-Freitas-S/analise-hash/hashfunc"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/model"
)

// getHashAlgorithm - Returns the hash algorithm for a kind. Unknown kinds fall back to the division method.
func (Q *OATable) getHashAlgorithm(kind hashfunc.Kind) hashfunc.HashAlgorithm {
	hashAlgorithm, ok := Q.hashAlgorithms[kind]
	if !ok {
		hashAlgorithm = Q.hashAlgorithms[hashfunc.Division]
	}

	return hashAlgorithm
}

// probingForGet - Is the Linear Probing Collision Resolution Technique algorithm for finding a key.
// Probing stops at the first empty cell, tombstones are passed since the key may have been placed beyond them.
func (Q *OATable) probingForGet(key int64, kind hashfunc.Kind) (index int64, found bool) {
	hashAlgorithm := Q.getHashAlgorithm(kind)
	hf1Value := hashAlgorithm.HashFunc1(key)

	for i := int64(0); i < Q.capacity; i++ {
		index = hashAlgorithm.ProbeIteration(hf1Value, i)

		switch cell := Q.cells[index]; cell.State {
		case model.CellEmpty:
			return
		case model.CellOccupied:
			if cell.Key == key {
				found = true
				return
			}
		case model.CellTombstone:
		}
	}

	return
}

// probingForSet - Is the Linear Probing Collision Resolution Technique algorithm for finding a cell for a key.
// The first tombstone on the way is remembered but probing goes on until an empty cell, or the key itself, is met so
// that a key placed beyond the tombstone is never stored twice.
// It returns:
//   - index is the cell holding key if it is already in the table, otherwise the cell to store it in
//   - err is of type crt.CapacityExceeded if the whole table was probed without finding an available cell
func (Q *OATable) probingForSet(key int64, kind hashfunc.Kind) (index int64, err error) {
	var deletedIndex int64
	var hasCached bool

	hashAlgorithm := Q.getHashAlgorithm(kind)
	hf1Value := hashAlgorithm.HashFunc1(key)

	for i := int64(0); i < Q.capacity; i++ {
		probe := hashAlgorithm.ProbeIteration(hf1Value, i)

		switch cell := Q.cells[probe]; cell.State {
		case model.CellEmpty:
			if hasCached {
				index = deletedIndex
			} else {
				index = probe
			}
			return

		case model.CellOccupied:
			if cell.Key == key {
				index = probe
				return
			}

		case model.CellTombstone:
			if !hasCached {
				deletedIndex = probe
				hasCached = true
			}
		}
	}

	if hasCached {
		index = deletedIndex
		return
	}

	err = crt.NewCapacityExceeded("no available cell found after probing all %d cells", Q.capacity)
	return
}

// updateUtilizationInfo - Updates the occupied and tombstone counters given a cell state transition
func (Q *OATable) updateUtilizationInfo(fromState, toState model.CellState) {
	if fromState == toState {
		return
	}

	switch fromState {
	case model.CellOccupied:
		Q.nOccupied--
	case model.CellTombstone:
		Q.nDeleted--
	case model.CellEmpty:
	}

	switch toState {
	case model.CellOccupied:
		Q.nOccupied++
	case model.CellTombstone:
		Q.nDeleted++
	case model.CellEmpty:
	}
}
