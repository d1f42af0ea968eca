package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leofalp/serpsim/core/serp"
)

type parsedFile struct {
	Path   string            `json:"path"`
	Result serp.ParsedResult `json:"result"`
}

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "Parse saved model replies without calling the API",
		Long: `Parse one or more text files holding raw model replies and print the
structured results. Files are parsed concurrently; output keeps argument order.

Example:
  serpsim parse reply.txt
  serpsim parse replies/*.txt --json --repair
  serpsim parse big-reply.txt --concurrent`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repair, _ := cmd.Flags().GetBool("repair")
			asJSON, _ := cmd.Flags().GetBool("json")
			jobs, _ := cmd.Flags().GetInt("jobs")
			concurrent, _ := cmd.Flags().GetBool("concurrent")

			var opts []serp.Option
			if repair {
				opts = append(opts, serp.WithPayloadRepair())
			}
			if concurrent {
				opts = append(opts, serp.WithConcurrentParsing())
			}

			results, err := parseFiles(args, jobs, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, results)
			}
			for _, r := range results {
				renderResult(out, r.Path, r.Result)
			}
			return nil
		},
	}
	cmd.Flags().Bool("repair", false, "repair malformed trend JSON before decoding")
	cmd.Flags().Bool("json", false, "print results as JSON")
	cmd.Flags().IntP("jobs", "j", 4, "files parsed in parallel")
	cmd.Flags().Bool("concurrent", false, "also parse the regions of each file in parallel")
	return cmd
}

// parseFiles reads and parses every path with at most jobs files in flight.
// Results keep the order of paths; the first read error is returned.
func parseFiles(paths []string, jobs int, opts ...serp.Option) ([]parsedFile, error) {
	results := make([]parsedFile, len(paths))

	var g errgroup.Group
	g.SetLimit(max(jobs, 1))
	for i, path := range paths {
		g.Go(func() error {
			data, err := os.ReadFile(filepath.Clean(path))
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			text := strings.TrimPrefix(string(data), "\ufeff")
			results[i] = parsedFile{Path: path, Result: serp.Parse(text, nil, opts...)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
