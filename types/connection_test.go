package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionDescriptor_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    ConnectionDescriptor
		wantErr bool
	}{
		{
			name: "success: http endpoint",
			give: ConnectionDescriptor{Endpoint: "http://localhost:8545"},
		},
		{
			name: "success: websocket endpoint with auth token",
			give: ConnectionDescriptor{Endpoint: "wss://rollup.example.com/rpc", AuthToken: "s3cret"},
		},
		{
			name:    "failure: missing endpoint",
			give:    ConnectionDescriptor{},
			wantErr: true,
		},
		{
			name:    "failure: not a URL",
			give:    ConnectionDescriptor{Endpoint: "not a url"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.give.Validate()

			if tt.wantErr {
				require.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
