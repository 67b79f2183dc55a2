package evm

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/rollup-tools/crossq/sdk"
	sdkerrors "github.com/rollup-tools/crossq/sdk/errors"
	"github.com/rollup-tools/crossq/sdk/evm/bindings"
	"github.com/rollup-tools/crossq/types"
)

var _ sdk.Inspector = (*Inspector)(nil)

// Inspector is an Inspector implementation for EVM chains, giving read access
// to the state of the base-layer message queue contract. Each method is
// stateless and idempotent; the Inspector holds no state beyond its client.
type Inspector struct {
	client ContractDeployBackend
}

// NewInspector creates a new Inspector for evm chains.
func NewInspector(client ContractDeployBackend) *Inspector {
	return &Inspector{client: client}
}

// GetCrossDomainMessage correlates a base-layer enqueue transaction with its
// rollup-side message commitment. It locates the QueueTransaction log in the
// transaction's receipt, decodes the queue index from it, then resolves that
// index through the queue contract. The three steps are sequential; each
// depends on the prior result.
func (i *Inspector) GetCrossDomainMessage(ctx context.Context, queueAddress string, txHash common.Hash) (types.CrossDomainMessage, error) {
	queueAddr := common.HexToAddress(queueAddress)

	entry, err := LocateQueueTransactionLog(ctx, i.client, txHash, queueAddr)
	if err != nil {
		return types.CrossDomainMessage{}, err
	}

	event, err := DecodeQueueTransactionData(entry.Data)
	if err != nil {
		return types.CrossDomainMessage{}, err
	}

	queue, err := bindings.NewMessageQueueCaller(queueAddr, i.client)
	if err != nil {
		return types.CrossDomainMessage{}, err
	}

	commitment, err := queue.GetCrossDomainMessage(
		&bind.CallOpts{Context: ctx}, new(big.Int).SetUint64(event.QueueIndex))
	if err != nil {
		return types.CrossDomainMessage{}, sdkerrors.NewContractCallError("getCrossDomainMessage", err)
	}

	return types.CrossDomainMessage{
		QueueIndex: event.QueueIndex,
		Commitment: common.Hash(commitment),
	}, nil
}

// GetPendingQueueIndex reads the next unprocessed queue position from the
// queue contract. Single call, no retry, no caching.
func (i *Inspector) GetPendingQueueIndex(ctx context.Context, queueAddress string) (*big.Int, error) {
	queue, err := bindings.NewMessageQueueCaller(common.HexToAddress(queueAddress), i.client)
	if err != nil {
		return nil, err
	}

	index, err := queue.PendingQueueIndex(&bind.CallOpts{Context: ctx})
	if err != nil {
		return nil, sdkerrors.NewContractCallError("pendingQueueIndex", err)
	}

	return index, nil
}
