package evm

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	sdkerrors "github.com/rollup-tools/crossq/sdk/errors"
)

// LocateQueueTransactionLog fetches the receipt for txHash and returns the
// first log entry, in emission order, emitted by the queue contract. Address
// comparison is on the canonical 20-byte form, so textual casing of either
// input is irrelevant. The scan always walks the full log list; absence of a
// matching entry is an error, not a default.
func LocateQueueTransactionLog(ctx context.Context, client bind.DeployBackend, txHash common.Hash, queueAddress common.Address) (*gethtypes.Log, error) {
	receipt, err := client.TransactionReceipt(ctx, txHash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, sdkerrors.NewTransactionNotFoundError()
		}

		return nil, fmt.Errorf("unable to fetch receipt for %s: %w", txHash, err)
	}
	if receipt == nil {
		return nil, sdkerrors.NewTransactionNotFoundError()
	}

	var found *gethtypes.Log
	for _, entry := range receipt.Logs {
		if entry.Address == queueAddress && found == nil {
			found = entry
		}
	}
	if found == nil {
		return nil, sdkerrors.NewQueueTransactionNotFoundError()
	}

	return found, nil
}
