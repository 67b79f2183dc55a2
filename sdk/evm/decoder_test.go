package evm

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	abiutil "github.com/rollup-tools/crossq/internal/utils/abi"
	sdkerrors "github.com/rollup-tools/crossq/sdk/errors"
)

func TestDecodeQueueTransactionData_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give QueueTransactionEvent
	}{
		{
			name: "typical payload",
			give: QueueTransactionEvent{
				ChainID:    big.NewInt(1088),
				QueueIndex: 42,
				GasLimit:   big.NewInt(1_900_000),
				Data:       []byte{0xde, 0xad, 0xbe, 0xef},
			},
		},
		{
			name: "zero queue index and empty data",
			give: QueueTransactionEvent{
				ChainID:    big.NewInt(1),
				QueueIndex: 0,
				GasLimit:   big.NewInt(0),
				Data:       []byte{},
			},
		},
		{
			name: "large word values",
			give: QueueTransactionEvent{
				ChainID:    new(big.Int).Lsh(big.NewInt(1), 255),
				QueueIndex: 1<<64 - 1,
				GasLimit:   new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)),
				Data:       make([]byte, 100),
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			payload, err := abiutil.Encode(queueTransactionSchema,
				tt.give.ChainID, tt.give.QueueIndex, tt.give.GasLimit, tt.give.Data)
			require.NoError(t, err)

			got, err := DecodeQueueTransactionData(payload)
			require.NoError(t, err)

			opts := cmp.Options{
				cmp.Comparer(func(x, y *big.Int) bool { return x.Cmp(y) == 0 }),
				cmpopts.EquateEmpty(),
			}
			if diff := cmp.Diff(tt.give, got, opts); diff != "" {
				t.Errorf("decoded event mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeQueueTransactionData_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give []byte
	}{
		{
			name: "empty payload",
			give: []byte{},
		},
		{
			name: "truncated payload",
			give: make([]byte, 3*32), // three head words, missing the bytes tail
		},
		{
			name: "garbage offset",
			give: func() []byte {
				payload, err := abiutil.Encode(queueTransactionSchema,
					big.NewInt(1), uint64(2), big.NewInt(3), []byte{0x04})
				require.NoError(t, err)
				payload[96+31] = 0xff // corrupt the bytes offset word
				return payload[:len(payload)-32]
			}(),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeQueueTransactionData(tt.give)

			require.Error(t, err)

			var decodeErr *sdkerrors.DecodeError
			assert.ErrorAs(t, err, &decodeErr)
		})
	}
}
