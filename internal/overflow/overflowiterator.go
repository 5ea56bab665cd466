package overflow

import (
	"github.com/Gabriel-Freitas-S/analise-hash/crt"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/model"
)

// Records - Is used to iterate over the nodes of a bucket chain one by one.
type Records struct {
	getNodeFunc func(int64) model.Node
	nodeAddress int64
}

// NewRecords - Returns a pointer to a new Records struct
//   - getNodeFunc returns the node stored at an address
//   - nodeAddress is the address of the chain head, 0 for an empty chain
func NewRecords(getNodeFunc func(int64) model.Node, nodeAddress int64) *Records {

	return &Records{
		getNodeFunc: getNodeFunc,
		nodeAddress: nodeAddress,
	}
}

// HasNext - Returns true if there are more nodes to be fetched from a call to Next.
func (O *Records) HasNext() bool {
	return O.nodeAddress != 0
}

// Next - Returns next node in the chain.
// It returns:
//   - node is the next node in the chain.
//   - address is the slab address of the returned node.
//   - err is an error of type crt.NoRecordFound if there are no more nodes when calling this function.
func (O *Records) Next() (node model.Node, address int64, err error) {
	if O.nodeAddress == 0 {
		err = crt.NoRecordFound{}
		return
	}

	address = O.nodeAddress
	node = O.getNodeFunc(address)

	O.nodeAddress = node.Next

	return
}
