package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leofalp/serpsim/core/cost"
	"github.com/leofalp/serpsim/core/research"
)

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Simulate the results page for a search term",
		Long: `Simulate the Google results page for a search term in a market.

Example:
  serpsim search "curso de violão" --market pt --device mobile
  serpsim search "marketing digital" --lat -23.55 --lng -46.63 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			market, _ := cmd.Flags().GetString("market")
			device, _ := cmd.Flags().GetString("device")
			language, _ := cmd.Flags().GetString("language")
			asJSON, _ := cmd.Flags().GetBool("json")
			analyze, _ := cmd.Flags().GetBool("analyze")

			if market == "" {
				market = a.cfg.Defaults.Market
			}
			params, err := research.ForMarket(args[0], market)
			if err != nil {
				return err
			}
			params.Device = firstNonEmpty(device, a.cfg.Defaults.Device)
			params.Language = firstNonEmpty(language, a.cfg.Defaults.Language)

			var loc *research.UserLocation
			if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng") {
				lat, _ := cmd.Flags().GetFloat64("lat")
				lng, _ := cmd.Flags().GetFloat64("lng")
				loc = &research.UserLocation{Latitude: lat, Longitude: lng}
			}

			svc := a.research()
			result, err := svc.Simulate(cmd.Context(), params, loc)
			if err != nil {
				return err
			}

			var analysis string
			if analyze && result.Summary != "" {
				if analysis, err = svc.Analyze(cmd.Context(), params.Query, result.Summary); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, struct {
					Parameters research.SearchParameters `json:"parameters"`
					Result     any                       `json:"result"`
					Analysis   string                    `json:"analysis,omitempty"`
					Cost       cost.Summary              `json:"cost"`
				}{params, result, analysis, a.costs.Summary()})
			}

			renderResult(out, params.Query, result)
			if analysis != "" {
				fmt.Fprintln(out, analysis+"\n")
			}
			renderCost(out, a.costs.Summary())
			return nil
		},
	}

	cmd.Flags().StringP("market", "m", "", "target market code (see `serpsim markets`)")
	cmd.Flags().StringP("device", "d", "", "device: all, desktop, mobile, tablet")
	cmd.Flags().StringP("language", "l", "", "results language: pt, en, es, de, fr")
	cmd.Flags().Float64("lat", 0, "searcher latitude for maps grounding")
	cmd.Flags().Float64("lng", 0, "searcher longitude for maps grounding")
	cmd.Flags().Bool("json", false, "print the parsed result as JSON")
	cmd.Flags().Bool("analyze", false, "follow up with an SEO analysis of the summary")
	return cmd
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
