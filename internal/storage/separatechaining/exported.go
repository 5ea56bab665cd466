package separatechaining

import (
	"github.com/Gabriel-Freitas-S/analise-hash/crt"
	"github.com/Gabriel-Freitas-S/analise-hash/hashfunc"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/hash"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/model"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/storage"
)

// SCTable - Represents an implementation of the Separate Chaining Collision Resolution Technique.
// Every bucket holds a singly linked chain of keys. Chain nodes live in one slab where a node refers to its
// successor by slab address, address 0 meaning end of chain. Unlinked nodes are kept on a free list for reuse.
// There is no upper bound on the load factor, chains just grow.
type SCTable struct {
	buckets          []int64
	nodes            []model.Node
	freeNodes        []int64
	capacity         int64
	numberOfElements int64
	hashAlgorithms   map[hashfunc.Kind]hashfunc.HashAlgorithm
}

// NewSCTable - Returns a pointer to a new instance of Separate Chaining table implementation.
//   - capacity is the number of buckets, it must be higher than 0 (zero)
//
// It returns:
//   - scTable which is a pointer to the created instance
//   - err which is of type crt.InvalidConfiguration if capacity is not valid
func NewSCTable(capacity int64) (scTable *SCTable, err error) {
	if capacity <= 0 {
		err = crt.NewInvalidConfiguration("capacity must be a positive value higher than 0 (zero), got %d", capacity)
		return
	}

	hashAlgorithms := make(map[hashfunc.Kind]hashfunc.HashAlgorithm, len(hashfunc.Kinds))
	for _, kind := range hashfunc.Kinds {
		hashAlgorithms[kind] = hash.NewHashAlgorithm(kind, capacity)
	}

	scTable = &SCTable{
		buckets:        make([]int64, capacity),
		nodes:          make([]model.Node, 1),
		capacity:       capacity,
		hashAlgorithms: hashAlgorithms,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from SCTable
func (S *SCTable) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.SeparateChaining,
		Capacity:                     S.capacity,
		Size:                         S.numberOfElements,
	}

	return
}

// Insert - Adds key to the table unless it is already there. New keys are put at the head of the bucket chain.
// It never fails, the error return is there to conform with tables that can get full.
func (S *SCTable) Insert(key int64, kind hashfunc.Kind) (err error) {
	if S.Search(key, kind) {
		return
	}

	bucketNo := S.getBucketNo(key, kind)
	address := S.newNode(key, S.buckets[bucketNo])
	S.buckets[bucketNo] = address
	S.numberOfElements++

	return
}

// Search - Returns true if key is in the table
func (S *SCTable) Search(key int64, kind hashfunc.Kind) bool {
	iter := S.getChain(S.getBucketNo(key, kind))
	for iter.HasNext() {
		node, _, _ := iter.Next()
		if node.Key == key {
			return true
		}
	}

	return false
}

// Remove - Unlinks key from its bucket chain.
// It returns:
//   - value is the removed key
//   - ok is false if the key was not in the table
func (S *SCTable) Remove(key int64, kind hashfunc.Kind) (value int64, ok bool) {
	bucketNo := S.getBucketNo(key, kind)

	var previous int64
	iter := S.getChain(bucketNo)
	for iter.HasNext() {
		node, address, _ := iter.Next()
		if node.Key != key {
			previous = address
			continue
		}

		if previous == 0 {
			S.buckets[bucketNo] = node.Next
		} else {
			S.nodes[previous].Next = node.Next
		}
		S.releaseNode(address)
		S.numberOfElements--

		return key, true
	}

	return
}

// LoadFactor - Returns number of keys divided by number of buckets, it may well exceed 1
func (S *SCTable) LoadFactor() float64 {
	return float64(S.numberOfElements) / float64(S.capacity)
}

// Size - Returns number of keys in the table
func (S *SCTable) Size() int64 {
	return S.numberOfElements
}

// IsEmpty - Returns true if the table holds no keys
func (S *SCTable) IsEmpty() bool {
	return S.numberOfElements == 0
}

// Capacity - Returns number of buckets
func (S *SCTable) Capacity() int64 {
	return S.capacity
}

// Clear - Drops all chains and resets the table to its initial empty state
func (S *SCTable) Clear() {
	for i := range S.buckets {
		S.buckets[i] = 0
	}
	S.nodes = S.nodes[:1]
	S.freeNodes = nil
	S.numberOfElements = 0
}

// Statistics - Walks every bucket chain and returns the distribution of keys over buckets
func (S *SCTable) Statistics() model.ChainStatistics {
	chainLengths := make([]int64, S.capacity)
	for bucketNo := range S.buckets {
		chainLengths[bucketNo] = S.chainLength(int64(bucketNo))
	}

	return storage.ChainStatistics(chainLengths)
}

// Chain - Returns the keys of a bucket in chain order, head first. A bucket number outside the table gives nil.
func (S *SCTable) Chain(bucketNo int64) (keys []int64) {
	if bucketNo < 0 || bucketNo >= S.capacity {
		return
	}

	iter := S.getChain(bucketNo)
	for iter.HasNext() {
		node, _, _ := iter.Next()
		keys = append(keys, node.Key)
	}

	return
}

// BucketNo - Returns which bucket the given key maps to with the given hash function kind
func (S *SCTable) BucketNo(key int64, kind hashfunc.Kind) int64 {
	return S.getBucketNo(key, kind)
}
