package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rollup-tools/crossq/sdk"
)

func buildCrossqCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "crossq",
		Short: "Inspect cross-chain message state on a two-layer rollup",
		Long: `crossq correlates base-layer enqueue transactions with their rollup-side
message commitments and confirms bridging operations by polling token balances.

Endpoints come from --rpc-url, or from a named --preset resolved through a
RPC_URL_<selector> variable in the environment or a .env file.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}

			ctx := context.WithValue(cmd.Context(), sdk.ContextLoggerValue, sdk.Logger(logger.Sugar()))
			cmd.SetContext(ctx)

			return nil
		},
	}

	cmd.PersistentFlags().String("rpc-url", "", "RPC endpoint to connect to; takes precedence over --preset and --selector")
	cmd.PersistentFlags().String("preset", "", "Named network preset resolved to a RPC_URL_<selector> environment variable")
	cmd.PersistentFlags().Uint64("selector", 0, "Chain selector for the command to connect to")
	cmd.PersistentFlags().String("auth-token", "", "Bearer token attached to every RPC request")

	cmd.AddCommand(buildResolveCmd())
	cmd.AddCommand(buildPendingIndexCmd())
	cmd.AddCommand(buildAwaitBalanceCmd())

	return &cmd
}
