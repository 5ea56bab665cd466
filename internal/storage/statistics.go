package storage

import (
	"github.com/Gabriel-Freitas-S/analise-hash/internal/model"
)

// ChainStatistics - Computes the distribution of keys over buckets given the chain length of every bucket.
// A chain of length n means n-1 keys collided with the first one.
func ChainStatistics(chainLengths []int64) (stats model.ChainStatistics) {
	var nonEmpty, total int64

	for _, length := range chainLengths {
		if length == 0 {
			stats.EmptyBuckets++
			continue
		}

		nonEmpty++
		total += length
		stats.TotalCollisions += length - 1
		if length > stats.LongestChain {
			stats.LongestChain = length
		}
	}

	if nonEmpty > 0 {
		stats.MeanChainLength = float64(total) / float64(nonEmpty)
	}

	return
}

// ProbeStatistics - Computes probing cost and clustering over the cells of an open addressing table.
// The probe count of an occupied cell is the number of cells visited walking forward from the key's home index,
// given by homeIndex, to the cell itself, both included.
//   - cells is the cell array of the table
//   - homeIndex returns the home index of a key
//
// Clusters are counted even when no cell is occupied, runs made of tombstones only still count.
func ProbeStatistics(cells []model.Cell, homeIndex func(key int64) int64) (stats model.ProbeStatistics) {
	capacity := int64(len(cells))

	var occupied int64
	for i, cell := range cells {
		if cell.State != model.CellOccupied {
			continue
		}

		probes := ProbeDistance(homeIndex(cell.Key), int64(i), capacity) + 1
		stats.TotalProbes += probes
		if probes > stats.MaxProbes {
			stats.MaxProbes = probes
		}
		occupied++
	}

	if occupied > 0 {
		stats.MeanProbes = float64(stats.TotalProbes) / float64(occupied)
	}

	stats.Clusters, stats.LargestCluster = Clusters(cells)

	return
}

// ProbeDistance - Returns the number of linear probe steps from home to position in a table of given capacity
func ProbeDistance(home, position, capacity int64) int64 {
	distance := position - home
	if distance < 0 {
		distance += capacity
	}

	return distance
}

// Clusters - Finds maximal runs of non-empty (occupied or tombstone) cells, treating the table as circular so a run
// that passes the last index and continues at the first is one run. Runs longer than one cell are clusters.
// It returns:
//   - clusters is the number of runs longer than one cell
//   - largest is the length of the longest of those runs, 0 if there are none
func Clusters(cells []model.Cell) (clusters, largest int64) {
	capacity := int64(len(cells))

	start := int64(-1)
	for i, cell := range cells {
		if cell.State == model.CellEmpty {
			start = int64(i)
			break
		}
	}

	// No empty cell, the whole table is one run
	if start < 0 {
		if capacity > 1 {
			clusters = 1
			largest = capacity
		}
		return
	}

	// Walk one full turn starting right after an empty cell, the turn ends on that same empty cell
	var run int64
	for n := int64(1); n <= capacity; n++ {
		if cells[(start+n)%capacity].State != model.CellEmpty {
			run++
			continue
		}

		if run > 1 {
			clusters++
			if run > largest {
				largest = run
			}
		}
		run = 0
	}

	return
}
