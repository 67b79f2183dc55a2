// Package crossq verifies and inspects cross-chain state for a two-layer
// rollup network. It correlates base-layer enqueue transactions with their
// rollup-side message commitments and confirms bridging or funding operations
// by polling token balances.
//
// Every operation is a read-only query against already-mined transactions or
// existing contract state; nothing here signs or submits transactions.
package crossq

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rollup-tools/crossq/sdk/evm"
	"github.com/rollup-tools/crossq/types"
)

// ResolveCrossDomainMessage locates the QueueTransaction log emitted by the
// message queue contract in the receipt of txHash, and resolves the queue
// index it carries to the rollup-side message commitment.
func ResolveCrossDomainMessage(ctx context.Context, conn types.ConnectionDescriptor, queueAddress, txHash string) (types.CrossDomainMessage, error) {
	if err := ValidateAddress(queueAddress); err != nil {
		return types.CrossDomainMessage{}, err
	}
	if err := ValidateTransactionHash(txHash); err != nil {
		return types.CrossDomainMessage{}, err
	}

	client, err := evm.NewClient(ctx, conn)
	if err != nil {
		return types.CrossDomainMessage{}, err
	}
	defer client.Close()

	return evm.NewInspector(client).GetCrossDomainMessage(ctx, queueAddress, common.HexToHash(txHash))
}

// PendingQueueIndex reads the next unprocessed queue position from the
// message queue contract.
func PendingQueueIndex(ctx context.Context, conn types.ConnectionDescriptor, queueAddress string) (*big.Int, error) {
	if err := ValidateAddress(queueAddress); err != nil {
		return nil, err
	}

	client, err := evm.NewClient(ctx, conn)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	return evm.NewInspector(client).GetPendingQueueIndex(ctx, queueAddress)
}

// AwaitBalance polls balanceOf(holder) on the token contract at tokenAddress
// until a positive balance appears or the policy's attempt budget runs out.
// Exhaustion is reported in the result, not as an error.
func AwaitBalance(ctx context.Context, conn types.ConnectionDescriptor, holder, tokenAddress string, policy types.BalancePollPolicy) (types.BalancePollResult, error) {
	if err := ValidateAddress(holder); err != nil {
		return types.BalancePollResult{}, err
	}
	if err := ValidateAddress(tokenAddress); err != nil {
		return types.BalancePollResult{}, err
	}

	client, err := evm.NewClient(ctx, conn)
	if err != nil {
		return types.BalancePollResult{}, err
	}
	defer client.Close()

	poller := evm.NewBalancePoller(client, tokenAddress)

	return poller.AwaitBalance(ctx, common.HexToAddress(holder), policy)
}
