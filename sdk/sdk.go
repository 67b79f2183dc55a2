// Package sdk defines the chain-agnostic interfaces implemented per chain
// family. Only the EVM implementation ships today; the interfaces keep the
// calling layer independent of it.
package sdk

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rollup-tools/crossq/types"
)

// Inspector reads cross-domain message state from a base-layer message queue
// contract. All operations are read-only and stateless across calls.
type Inspector interface {
	GetCrossDomainMessage(ctx context.Context, queueAddress string, txHash common.Hash) (types.CrossDomainMessage, error)
	GetPendingQueueIndex(ctx context.Context, queueAddress string) (*big.Int, error)
}

// BalanceWatcher polls a token balance until it turns positive or the policy's
// attempt budget runs out.
type BalanceWatcher interface {
	AwaitBalance(ctx context.Context, holder common.Address, policy types.BalancePollPolicy) (types.BalancePollResult, error)
}
