package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <query>",
		Short: "Write an SEO analysis for a results summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, _ := cmd.Flags().GetString("summary")
			if summary == "" {
				return fmt.Errorf("--summary flag is required")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			analysis, err := a.research().Analyze(cmd.Context(), args[0], summary)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), analysis+"\n")
			renderCost(cmd.OutOrStdout(), a.costs.Summary())
			return nil
		},
	}
	cmd.Flags().StringP("summary", "s", "", "summary of the results page")
	return cmd
}
