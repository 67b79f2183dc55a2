package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rollup-tools/crossq"
)

func buildResolveCmd() *cobra.Command {
	var (
		queueAddress string
		txHash       string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve an enqueue transaction to its cross-domain message commitment",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := resolveConnection(cmd)
			if err != nil {
				return err
			}

			msg, err := crossq.ResolveCrossDomainMessage(cmd.Context(), conn, queueAddress, txHash)
			if err != nil {
				fmt.Printf("Error resolving cross-domain message: %s\n", err)
				return err
			}

			fmt.Printf("Queue index: %d\n", msg.QueueIndex)
			fmt.Printf("Commitment:  %s\n", msg.Commitment.Hex())

			return nil
		},
	}

	cmd.Flags().StringVar(&queueAddress, "queue", "", "Address of the message queue contract")
	cmd.Flags().StringVar(&txHash, "tx", "", "Hash of the enqueue transaction to resolve")
	cmd.MarkFlagRequired("queue")
	cmd.MarkFlagRequired("tx")

	return cmd
}
