package model

import "fmt"

// CellState - State of a cell in an open addressing table
type CellState uint8

const (
	// CellEmpty - State indicating a cell that has never been in use
	CellEmpty CellState = iota
	// CellOccupied - State indicating a cell that holds a live key
	CellOccupied
	// CellTombstone - State indicating a cell that has been in use but whose key was removed
	CellTombstone
)

// String - Returns the name of the cell state
func (C CellState) String() string {
	switch C {
	case CellEmpty:
		return "Empty"
	case CellOccupied:
		return "Occupied"
	case CellTombstone:
		return "Tombstone"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(C))
	}
}

// Cell - Represents one cell in an open addressing table
type Cell struct {
	State CellState
	Key   int64
}

// Available - Returns true if the cell can take a new key, that is if it is empty or a tombstone
func (C Cell) Available() bool {
	return C.State == CellEmpty || C.State == CellTombstone
}

// Node - Represents one node in a separate chaining bucket.
// Nodes are addressed by their position in the node slab, where address 0 means "no node".
type Node struct {
	Key  int64
	Next int64
}

// ChainStatistics - Distribution of keys over the buckets of a separate chaining table
//   - EmptyBuckets is the number of buckets with no chain
//   - LongestChain is the length of the longest chain
//   - MeanChainLength is the mean chain length over non-empty buckets
//   - TotalCollisions is the sum over buckets of chain length - 1
type ChainStatistics struct {
	EmptyBuckets    int64
	LongestChain    int64
	MeanChainLength float64
	TotalCollisions int64
}

// ProbeStatistics - Probing cost and clustering of an open addressing table
//   - TotalProbes is the sum over occupied cells of the probes needed to reach the cell from its division method home index
//   - MeanProbes is TotalProbes divided by the number of occupied cells
//   - MaxProbes is the highest probe count of any occupied cell
//   - Clusters is the number of contiguous runs of non-empty cells longer than one cell
//   - LargestCluster is the length of the longest such run
type ProbeStatistics struct {
	TotalProbes    int64
	MeanProbes     float64
	MaxProbes      int64
	Clusters       int64
	LargestCluster int64
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	CollisionResolutionTechnique int
	Capacity                     int64
	Size                         int64
	Tombstones                   int64
}
