package benchmark

import (
	"context"
	"errors"
	hashtable "github.com/Gabriel-Freitas-S/analise-hash"
	"github.com/Gabriel-Freitas-S/analise-hash/crt"
	"github.com/Gabriel-Freitas-S/analise-hash/hashfunc"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/conf"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/utils"
	"time"
)

// Dataset - Named sequence of keys to insert
type Dataset struct {
	Name string
	Keys []int64
}

// Result - Outcome of timing one table against one dataset
//   - Technique is the collision resolution technique name
//   - Dataset is the dataset name and DatasetSize its number of keys
//   - TableSize is the table capacity
//   - Hash is the hash function name
//   - InsertMs and SearchMs are wall clock milliseconds for inserting the dataset and searching the search keys
//   - Inserted is the number of keys handed to the table before it refused more, Stopped tells it refused
//   - Found is the number of search keys found
//   - Collisions is TotalCollisions for separate chaining and probes beyond the home cell for linear probing
//   - LoadFactor is the load factor after insertion
//   - Longest is the longest chain for separate chaining and the largest cluster for linear probing
type Result struct {
	Technique   string
	Dataset     string
	DatasetSize int
	TableSize   int64
	Hash        string
	InsertMs    float64
	SearchMs    float64
	Inserted    int
	Stopped     bool
	Found       int
	Collisions  int64
	LoadFactor  float64
	Longest     int64
}

// Runner - Times separate chaining tables for every table size and hash kind, and one linear probing table per
// hash kind sized after the dataset.
type Runner struct {
	TableSizes []int64
	Kinds      []hashfunc.Kind
	now        func() time.Time
}

// NewRunner - Returns a pointer to a Runner using conf.DefaultTableSizes and every hash kind
func NewRunner() *Runner {
	return &Runner{
		TableSizes: conf.DefaultTableSizes,
		Kinds:      hashfunc.Kinds,
		now:        time.Now,
	}
}

// OpenTableSize - Returns the capacity of the linear probing table for a dataset of n keys, the smallest prime
// keeping the table under conf.MaxOccupancyFactor once every key is in
func OpenTableSize(n int) int64 {
	return utils.NextPrime(int64(2*n + 1))
}

// Run - Times every dataset, results come in dataset order, then separate chaining by table size and kind, then
// linear probing by kind.
// It returns:
//   - results is one Result per timed table
//   - err is the context error if ctx is done before all runs are made, results then holds the runs made so far
func (R *Runner) Run(ctx context.Context, datasets []Dataset, search []int64) (results []Result, err error) {
	for _, dataset := range datasets {
		for _, tableSize := range R.TableSizes {
			for _, kind := range R.Kinds {
				if err = ctx.Err(); err != nil {
					return
				}

				var result Result
				result, err = R.runOne(crt.SeparateChaining, tableSize, kind, dataset, search)
				if err != nil {
					return
				}
				results = append(results, result)
			}
		}

		for _, kind := range R.Kinds {
			if err = ctx.Err(); err != nil {
				return
			}

			var result Result
			result, err = R.runOne(crt.LinearProbing, OpenTableSize(len(dataset.Keys)), kind, dataset, search)
			if err != nil {
				return
			}
			results = append(results, result)
		}
	}

	return
}

// runOne - Creates a table, inserts the dataset, searches the search keys and collects statistics
func (R *Runner) runOne(crtType int, tableSize int64, kind hashfunc.Kind, dataset Dataset, search []int64) (result Result, err error) {
	hashTable, err := hashtable.NewHashTable(crtType, tableSize)
	if err != nil {
		return
	}

	result = Result{
		Technique:   crt.Name(crtType),
		Dataset:     dataset.Name,
		DatasetSize: len(dataset.Keys),
		TableSize:   tableSize,
		Hash:        kind.String(),
	}

	start := R.now()
	result.Inserted, err = hashTable.InsertAll(dataset.Keys, kind)
	result.InsertMs = milliseconds(R.now().Sub(start))
	if err != nil {
		if !errors.Is(err, crt.CapacityExceeded{}) {
			return
		}
		result.Stopped = true
		err = nil
	}

	start = R.now()
	for _, key := range search {
		if hashTable.Search(key, kind) {
			result.Found++
		}
	}
	result.SearchMs = milliseconds(R.now().Sub(start))

	stat := hashTable.Stat()
	result.LoadFactor = stat.LoadFactor
	switch {
	case stat.Chaining != nil:
		result.Collisions = stat.Chaining.TotalCollisions
		result.Longest = stat.Chaining.LongestChain
	case stat.Probing != nil:
		result.Collisions = stat.Probing.TotalProbes - stat.Size
		result.Longest = stat.Probing.LargestCluster
	}

	return
}

// milliseconds - Returns d as fractional milliseconds
func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
