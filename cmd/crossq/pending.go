package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rollup-tools/crossq"
)

func buildPendingIndexCmd() *cobra.Command {
	var queueAddress string

	cmd := &cobra.Command{
		Use:   "pending-index",
		Short: "Read the next unprocessed queue position from the message queue contract",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := resolveConnection(cmd)
			if err != nil {
				return err
			}

			index, err := crossq.PendingQueueIndex(cmd.Context(), conn, queueAddress)
			if err != nil {
				fmt.Printf("Error reading pending queue index: %s\n", err)
				return err
			}

			fmt.Printf("Pending queue index: %s\n", index)

			return nil
		},
	}

	cmd.Flags().StringVar(&queueAddress, "queue", "", "Address of the message queue contract")
	cmd.MarkFlagRequired("queue")

	return cmd
}
