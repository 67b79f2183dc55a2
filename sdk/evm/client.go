package evm

import (
	"context"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	sdkerrors "github.com/rollup-tools/crossq/sdk/errors"
	"github.com/rollup-tools/crossq/types"
)

// NewClient builds a read-only chain client from a connection descriptor. The
// endpoint scheme selects the transport; http(s) and ws(s) are served behind
// the same returned client. WebSocket endpoints are dialed eagerly, so an
// unreachable socket endpoint fails here, while HTTP endpoint failures
// surface lazily on the first call.
//
// Clients are constructed per operation and not pooled.
func NewClient(ctx context.Context, conn types.ConnectionDescriptor) (*ethclient.Client, error) {
	if err := conn.Validate(); err != nil {
		return nil, sdkerrors.NewConnectionError(conn.Endpoint, err)
	}

	var opts []rpc.ClientOption
	if conn.AuthToken != "" {
		opts = append(opts, rpc.WithHeader("Authorization", "Bearer "+conn.AuthToken))
	}

	rpcClient, err := rpc.DialOptions(ctx, conn.Endpoint, opts...)
	if err != nil {
		return nil, sdkerrors.NewConnectionError(conn.Endpoint, err)
	}

	return ethclient.NewClient(rpcClient), nil
}
