package separatechaining

import (
	"github.com/Gabriel-Freitas-S/analise-hash/hashfunc"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/model"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/overflow"
)

// getBucketNo - Returns the bucket a key maps to. Unknown kinds fall back to the division method.
func (S *SCTable) getBucketNo(key int64, kind hashfunc.Kind) int64 {
	hashAlgorithm, ok := S.hashAlgorithms[kind]
	if !ok {
		hashAlgorithm = S.hashAlgorithms[hashfunc.Division]
	}

	return hashAlgorithm.HashFunc1(key)
}

// getChain - Returns an iterator over the chain of a bucket
func (S *SCTable) getChain(bucketNo int64) *overflow.Records {
	return overflow.NewRecords(S.getNode, S.buckets[bucketNo])
}

// getNode - Returns the node at a slab address
func (S *SCTable) getNode(address int64) model.Node {
	return S.nodes[address]
}

// chainLength - Returns number of nodes in the chain of a bucket
func (S *SCTable) chainLength(bucketNo int64) (length int64) {
	iter := S.getChain(bucketNo)
	for iter.HasNext() {
		_, _, _ = iter.Next()
		length++
	}

	return
}

// newNode - Stores a node in the slab, reusing a released address if there is one, and returns its address
func (S *SCTable) newNode(key, next int64) (address int64) {
	node := model.Node{Key: key, Next: next}

	if n := len(S.freeNodes); n > 0 {
		address = S.freeNodes[n-1]
		S.freeNodes = S.freeNodes[:n-1]
		S.nodes[address] = node
		return
	}

	address = int64(len(S.nodes))
	S.nodes = append(S.nodes, node)

	return
}

// releaseNode - Clears a node that has been unlinked and puts its address on the free list
func (S *SCTable) releaseNode(address int64) {
	S.nodes[address] = model.Node{}
	S.freeNodes = append(S.freeNodes, address)
}
