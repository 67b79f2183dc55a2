package bindings

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// ERC20MetaData contains all meta data concerning the ERC20 contract.
var ERC20MetaData = &bind.MetaData{
	ABI: `[{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"_owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}]`,
}

// ERC20Caller is a read-only binding to a token contract on either layer.
type ERC20Caller struct {
	contract *bind.BoundContract
}

// NewERC20Caller creates a new read-only instance of the ERC20 contract,
// bound to a specific deployed contract.
func NewERC20Caller(address common.Address, caller bind.ContractCaller) (*ERC20Caller, error) {
	parsed, err := ERC20MetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	return &ERC20Caller{
		contract: bind.NewBoundContract(address, *parsed, caller, nil, nil),
	}, nil
}

// BalanceOf is a free data retrieval call binding the contract method
// balanceOf(address).
func (c *ERC20Caller) BalanceOf(opts *bind.CallOpts, owner common.Address) (*big.Int, error) {
	var out []any
	err := c.contract.Call(opts, &out, "balanceOf", owner)
	if err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}
