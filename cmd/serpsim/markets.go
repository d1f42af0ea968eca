package main

import "github.com/spf13/cobra"

func marketsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "markets",
		Short: "List supported markets, languages and devices",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			renderMarkets(cmd.OutOrStdout())
		},
	}
}
