package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rollup-tools/crossq"
	"github.com/rollup-tools/crossq/internal/utils/safecast"
	"github.com/rollup-tools/crossq/types"
)

func buildAwaitBalanceCmd() *cobra.Command {
	var (
		holder       string
		tokenAddress string
		maxAttempts  int
		interval     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "await-balance",
		Short: "Poll a token balance until it turns positive or the attempt budget runs out",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := resolveConnection(cmd)
			if err != nil {
				return err
			}

			attempts, err := safecast.IntToUint(maxAttempts)
			if err != nil {
				return fmt.Errorf("invalid --max-attempts: %w", err)
			}

			policy := types.BalancePollPolicy{MaxAttempts: attempts, Interval: types.NewDuration(interval)}
			if err := policy.Validate(); err != nil {
				return fmt.Errorf("invalid poll policy: %w", err)
			}

			result, err := crossq.AwaitBalance(cmd.Context(), conn, holder, tokenAddress, policy)
			if err != nil {
				fmt.Printf("Error polling balance: %s\n", err)
				return err
			}

			if result.Exhausted {
				fmt.Printf("Balance still zero after %d attempts\n", result.Attempts)
				return nil
			}

			fmt.Printf("Balance %s arrived after %d attempt(s)\n", result.Balance, result.Attempts)

			return nil
		},
	}

	cmd.Flags().StringVar(&holder, "holder", "", "Address whose token balance to watch")
	cmd.Flags().StringVar(&tokenAddress, "token", "", "Address of the token contract")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", int(types.DefaultBalancePollAttempts), "Number of balance checks before giving up")
	cmd.Flags().DurationVar(&interval, "interval", types.DefaultBalancePollInterval, "Delay between balance checks")
	cmd.MarkFlagRequired("holder")
	cmd.MarkFlagRequired("token")

	return cmd
}
