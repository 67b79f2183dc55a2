package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	chainsel "github.com/smartcontractkit/chain-selectors"
	"github.com/spf13/cobra"

	"github.com/rollup-tools/crossq/types"
)

// resolveConnection builds a connection descriptor from the persistent flags.
// An explicit --rpc-url wins; otherwise a --preset name or raw --selector is
// resolved through chain selectors to a RPC_URL_<selector> variable from the
// environment or a .env file.
func resolveConnection(cmd *cobra.Command) (types.ConnectionDescriptor, error) {
	rpcURL, err := cmd.Flags().GetString("rpc-url")
	if err != nil {
		return types.ConnectionDescriptor{}, err
	}
	authToken, err := cmd.Flags().GetString("auth-token")
	if err != nil {
		return types.ConnectionDescriptor{}, err
	}

	if rpcURL != "" {
		return types.ConnectionDescriptor{Endpoint: rpcURL, AuthToken: authToken}, nil
	}

	preset, err := cmd.Flags().GetString("preset")
	if err != nil {
		return types.ConnectionDescriptor{}, err
	}
	selector, err := cmd.Flags().GetUint64("selector")
	if err != nil {
		return types.ConnectionDescriptor{}, err
	}

	switch {
	case preset != "":
		endpoint, err := endpointForPreset(preset)
		if err != nil {
			return types.ConnectionDescriptor{}, err
		}

		return types.ConnectionDescriptor{Endpoint: endpoint, AuthToken: authToken}, nil
	case selector != 0:
		endpoint, err := endpointForSelector(selector)
		if err != nil {
			return types.ConnectionDescriptor{}, err
		}

		return types.ConnectionDescriptor{Endpoint: endpoint, AuthToken: authToken}, nil
	default:
		return types.ConnectionDescriptor{}, errors.New("one of --rpc-url, --preset or --selector is required")
	}
}

func endpointForPreset(preset string) (string, error) {
	chainID, err := chainsel.ChainIdFromName(preset)
	if err != nil {
		return "", fmt.Errorf("unknown preset %q: %w", preset, err)
	}

	selector, err := chainsel.SelectorFromChainId(chainID)
	if err != nil {
		return "", fmt.Errorf("no selector for preset %q: %w", preset, err)
	}

	return endpointForSelector(selector)
}

func endpointForSelector(selector uint64) (string, error) {
	// Load .env file; a missing file is fine if the variable is already set
	_ = godotenv.Load(".env")

	if _, exists := chainsel.ChainBySelector(selector); !exists {
		return "", fmt.Errorf("unknown chain selector %d", selector)
	}

	rpcKey := fmt.Sprintf("RPC_URL_%d", selector)
	endpoint := os.Getenv(rpcKey)
	if endpoint == "" {
		return "", errors.New(rpcKey + " not found in environment or .env file")
	}

	return endpoint, nil
}
