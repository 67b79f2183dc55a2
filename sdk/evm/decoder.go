package evm

import (
	"fmt"
	"math/big"

	abiutil "github.com/rollup-tools/crossq/internal/utils/abi"
	sdkerrors "github.com/rollup-tools/crossq/sdk/errors"
)

// queueTransactionSchema is the data layout of the queue contract's
// QueueTransaction event. None of the fields are indexed, so the whole tuple
// lives in the log's data payload. Field boundaries are schema-fixed, not
// self-describing.
const queueTransactionSchema = `[{"type":"uint256"},{"type":"uint64"},{"type":"uint256"},{"type":"bytes"}]`

// QueueTransactionEvent is the decoded payload of a QueueTransaction log
// entry. QueueIndex is the position the message was assigned in the enqueue
// sequence.
type QueueTransactionEvent struct {
	ChainID    *big.Int
	QueueIndex uint64
	GasLimit   *big.Int
	Data       []byte
}

// DecodeQueueTransactionData decodes a raw QueueTransaction payload. A
// payload whose length or encoding does not match the schema fails with a
// DecodeError.
func DecodeQueueTransactionData(payload []byte) (QueueTransactionEvent, error) {
	values, err := abiutil.Decode(queueTransactionSchema, payload)
	if err != nil {
		return QueueTransactionEvent{}, sdkerrors.NewDecodeError(err)
	}
	if len(values) != 4 {
		return QueueTransactionEvent{}, sdkerrors.NewDecodeError(
			fmt.Errorf("expected 4 fields, got %d", len(values)))
	}

	chainID, ok := values[0].(*big.Int)
	if !ok {
		return QueueTransactionEvent{}, sdkerrors.NewDecodeError(
			fmt.Errorf("chainId has unexpected type %T", values[0]))
	}
	queueIndex, ok := values[1].(uint64)
	if !ok {
		return QueueTransactionEvent{}, sdkerrors.NewDecodeError(
			fmt.Errorf("queueIndex has unexpected type %T", values[1]))
	}
	gasLimit, ok := values[2].(*big.Int)
	if !ok {
		return QueueTransactionEvent{}, sdkerrors.NewDecodeError(
			fmt.Errorf("gasLimit has unexpected type %T", values[2]))
	}
	data, ok := values[3].([]byte)
	if !ok {
		return QueueTransactionEvent{}, sdkerrors.NewDecodeError(
			fmt.Errorf("data has unexpected type %T", values[3]))
	}

	return QueueTransactionEvent{
		ChainID:    chainID,
		QueueIndex: queueIndex,
		GasLimit:   gasLimit,
		Data:       data,
	}, nil
}
