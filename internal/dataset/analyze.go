package dataset

import (
	"encoding/binary"
	"github.com/cespare/xxhash/v2"
	"path/filepath"
)

// Info - Descriptive statistics of a dataset
//   - Name is the base name of the dataset file
//   - Quantity is the number of keys
//   - Min and Max are the lowest and highest key
//   - Mean is the arithmetic mean of the keys
//   - Duplicates is the number of keys that repeat an earlier key
//   - Digest is the xxhash64 of the key sequence, equal digests mean equal datasets
type Info struct {
	Name       string
	Quantity   int
	Min        int64
	Max        int64
	Mean       float64
	Duplicates int
	Digest     uint64
}

// HasDuplicates - Returns true if any key appears more than once
func (I Info) HasDuplicates() bool {
	return I.Duplicates > 0
}

// Analyze - Loads fileName and computes its Info
func Analyze(fileName string) (info Info, err error) {
	result, err := Load(fileName)
	if err != nil {
		return
	}

	info = Describe(result.Keys)
	info.Name = filepath.Base(fileName)

	return
}

// Describe - Computes Info over keys, keys must not be empty
func Describe(keys []int64) (info Info) {
	if len(keys) == 0 {
		return
	}

	info.Quantity = len(keys)
	info.Min = keys[0]
	info.Max = keys[0]

	digest := xxhash.New()
	buf := make([]byte, 8)
	seen := make(map[int64]struct{}, len(keys))
	var sum float64

	for _, key := range keys {
		if key < info.Min {
			info.Min = key
		}
		if key > info.Max {
			info.Max = key
		}
		sum += float64(key)

		if _, ok := seen[key]; ok {
			info.Duplicates++
		} else {
			seen[key] = struct{}{}
		}

		binary.LittleEndian.PutUint64(buf, uint64(key))
		_, _ = digest.Write(buf)
	}

	info.Mean = sum / float64(len(keys))
	info.Digest = digest.Sum64()

	return
}
