// Command serpsim simulates Google results pages for a search term with a
// grounded Gemini model, then offers SEO analysis, an assistant chat and
// image editing around it.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "serpsim",
		Short: "Simulated search results pages for SEO research",
		Long: `serpsim asks a grounded Gemini model to simulate the Google results page
for a search term in a given market, and turns the reply into structured data:
search volume, CPC estimate, ads, organic results, a summary and a trend.

Configuration is read from ~/.config/serpsim/config.yaml (or $SERPSIM_CONFIG);
GEMINI_API_KEY may also come from a .env file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(editImageCmd())
	rootCmd.AddCommand(marketsCmd())
	rootCmd.AddCommand(configCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
