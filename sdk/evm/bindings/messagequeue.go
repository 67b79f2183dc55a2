// Package bindings wraps the read-only contract surface this module touches.
// The wrappers are hand-written against minimal ABI fragments; only view
// methods are bound since the module never submits transactions.
package bindings

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// MessageQueueMetaData contains all meta data concerning the MessageQueue contract.
var MessageQueueMetaData = &bind.MetaData{
	ABI: `[{"type":"function","name":"getCrossDomainMessage","stateMutability":"view","inputs":[{"name":"_queueIndex","type":"uint256"}],"outputs":[{"name":"","type":"bytes32"}]},{"type":"function","name":"pendingQueueIndex","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]}]`,
}

// MessageQueueCaller is a read-only binding to the base-layer message queue
// contract.
type MessageQueueCaller struct {
	contract *bind.BoundContract
}

// NewMessageQueueCaller creates a new read-only instance of the MessageQueue
// contract, bound to a specific deployed contract.
func NewMessageQueueCaller(address common.Address, caller bind.ContractCaller) (*MessageQueueCaller, error) {
	parsed, err := MessageQueueMetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	return &MessageQueueCaller{
		contract: bind.NewBoundContract(address, *parsed, caller, nil, nil),
	}, nil
}

// GetCrossDomainMessage is a free data retrieval call binding the contract
// method getCrossDomainMessage(uint256).
func (c *MessageQueueCaller) GetCrossDomainMessage(opts *bind.CallOpts, queueIndex *big.Int) ([32]byte, error) {
	var out []any
	err := c.contract.Call(opts, &out, "getCrossDomainMessage", queueIndex)
	if err != nil {
		return [32]byte{}, err
	}

	return *abi.ConvertType(out[0], new([32]byte)).(*[32]byte), nil
}

// PendingQueueIndex is a free data retrieval call binding the contract method
// pendingQueueIndex().
func (c *MessageQueueCaller) PendingQueueIndex(opts *bind.CallOpts) (*big.Int, error) {
	var out []any
	err := c.contract.Call(opts, &out, "pendingQueueIndex")
	if err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}
