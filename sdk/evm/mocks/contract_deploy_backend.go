// Package mocks provides a testify mock of the contract backend used by the
// evm package tests.
package mocks

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
)

// ContractDeployBackend mocks bind.ContractBackend and bind.DeployBackend.
type ContractDeployBackend struct {
	mock.Mock
}

func (m *ContractDeployBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	args := m.Called(ctx, contract, blockNumber)

	var r0 []byte
	if args.Get(0) != nil {
		r0 = args.Get(0).([]byte)
	}

	return r0, args.Error(1)
}

func (m *ContractDeployBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	args := m.Called(ctx, call, blockNumber)

	var r0 []byte
	if args.Get(0) != nil {
		r0 = args.Get(0).([]byte)
	}

	return r0, args.Error(1)
}

func (m *ContractDeployBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*gethtypes.Header, error) {
	args := m.Called(ctx, number)

	var r0 *gethtypes.Header
	if args.Get(0) != nil {
		r0 = args.Get(0).(*gethtypes.Header)
	}

	return r0, args.Error(1)
}

func (m *ContractDeployBackend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	args := m.Called(ctx, account)

	var r0 []byte
	if args.Get(0) != nil {
		r0 = args.Get(0).([]byte)
	}

	return r0, args.Error(1)
}

func (m *ContractDeployBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	args := m.Called(ctx, account)

	return args.Get(0).(uint64), args.Error(1)
}

func (m *ContractDeployBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)

	var r0 *big.Int
	if args.Get(0) != nil {
		r0 = args.Get(0).(*big.Int)
	}

	return r0, args.Error(1)
}

func (m *ContractDeployBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)

	var r0 *big.Int
	if args.Get(0) != nil {
		r0 = args.Get(0).(*big.Int)
	}

	return r0, args.Error(1)
}

func (m *ContractDeployBackend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	args := m.Called(ctx, call)

	return args.Get(0).(uint64), args.Error(1)
}

func (m *ContractDeployBackend) SendTransaction(ctx context.Context, tx *gethtypes.Transaction) error {
	args := m.Called(ctx, tx)

	return args.Error(0)
}

func (m *ContractDeployBackend) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]gethtypes.Log, error) {
	args := m.Called(ctx, query)

	var r0 []gethtypes.Log
	if args.Get(0) != nil {
		r0 = args.Get(0).([]gethtypes.Log)
	}

	return r0, args.Error(1)
}

func (m *ContractDeployBackend) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- gethtypes.Log) (ethereum.Subscription, error) {
	args := m.Called(ctx, query, ch)

	var r0 ethereum.Subscription
	if args.Get(0) != nil {
		r0 = args.Get(0).(ethereum.Subscription)
	}

	return r0, args.Error(1)
}

func (m *ContractDeployBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*gethtypes.Receipt, error) {
	args := m.Called(ctx, txHash)

	var r0 *gethtypes.Receipt
	if args.Get(0) != nil {
		r0 = args.Get(0).(*gethtypes.Receipt)
	}

	return r0, args.Error(1)
}
