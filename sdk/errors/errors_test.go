package sdkerrors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Transaction not found", NewTransactionNotFoundError().Error())
	assert.Equal(t, "QueueTransaction event not found", NewQueueTransactionNotFoundError().Error())
}

func TestConnectionError(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")
	err := NewConnectionError("http://localhost:8545", cause)

	assert.Equal(t, `unable to connect to "http://localhost:8545": dial tcp: connection refused`, err.Error())
	require.ErrorIs(t, err, cause)
}

func TestDecodeError(t *testing.T) {
	t.Parallel()

	cause := errors.New("abi: cannot marshal in to go type")
	err := NewDecodeError(cause)

	assert.Equal(t, "unable to decode event data: abi: cannot marshal in to go type", err.Error())
	require.ErrorIs(t, err, cause)
}

func TestContractCallError(t *testing.T) {
	t.Parallel()

	cause := errors.New("execution reverted")
	err := NewContractCallError("getCrossDomainMessage", cause)

	assert.Equal(t, "contract call getCrossDomainMessage failed: execution reverted", err.Error())
	require.ErrorIs(t, err, cause)
}

func TestCancelledError(t *testing.T) {
	t.Parallel()

	err := NewCancelledError(context.Canceled)

	assert.Equal(t, "balance poll cancelled: context canceled", err.Error())
	require.ErrorIs(t, err, context.Canceled)
}
