package abi

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		giveABI    string
		giveValues []any
		want       string
		wantError  bool
	}{
		{
			name:    "success: encode single uint256",
			giveABI: `[{"type":"uint256"}]`,
			giveValues: []any{
				big.NewInt(30), // 30 in uint256
			},
			want: "000000000000000000000000000000000000000000000000000000000000001e",
		},
		{
			name:       "success: encode address",
			giveABI:    `[{"type":"address"}]`,
			giveValues: []any{common.HexToAddress("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")},
			want:       "0000000000000000000000005b38da6a701c568545dcfcb03fcb875f56beddc4",
		},
		{
			name:       "success: encode bytes",
			giveABI:    `[{"type":"bytes"}]`,
			giveValues: []any{[]byte{0xde, 0xad, 0xbe, 0xef}},
			want: "0000000000000000000000000000000000000000000000000000000000000020" + // offset (32 bytes)
				"0000000000000000000000000000000000000000000000000000000000000004" + // length (4 bytes)
				"deadbeef00000000000000000000000000000000000000000000000000000000",
		},
		{
			name:      "failure: invalid ABI string",
			giveABI:   `[{"type":"invalid"}]`,
			wantError: true,
		},
		{
			name:       "failure: missing values",
			giveABI:    `[{"type":"uint256"}]`,
			giveValues: []any{},
			wantError:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Encode(tt.giveABI, tt.giveValues...)

			if tt.wantError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)

				wantBytes, err := hex.DecodeString(tt.want)
				require.NoError(t, err)
				assert.Equal(t, wantBytes, got)
			}
		})
	}
}

func Test_Decode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		giveABI   string
		giveData  string
		want      []any
		wantError bool
	}{
		{
			name:     "success: decode single uint256",
			giveABI:  `[{"type":"uint256"}]`,
			giveData: "000000000000000000000000000000000000000000000000000000000000001e", // 30 in uint256
			want: []any{
				big.NewInt(30),
			},
		},
		{
			name:     "success: decode uint64",
			giveABI:  `[{"type":"uint64"}]`,
			giveData: "000000000000000000000000000000000000000000000000000000000000002a", // 42 in uint64
			want:     []any{uint64(42)},
		},
		{
			name:      "failure: truncated data",
			giveABI:   `[{"type":"uint256"}]`,
			giveData:  "00000000000000000000000000000000", // Too short for uint256
			wantError: true,
		},
		{
			name:      "failure: invalid ABI string",
			giveABI:   `[{"type":"invalid"}]`,
			giveData:  "000000000000000000000000000000000000000000000000000000000000001e",
			wantError: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := hex.DecodeString(tt.giveData)
			require.NoError(t, err)

			got, err := Decode(tt.giveABI, data)

			if tt.wantError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
