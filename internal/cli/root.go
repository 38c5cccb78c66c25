package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "wsearch",
		Short: "Word search puzzle generator",
		Long: `wsearch generates word search puzzles and talks to the wordsearch JSON API.

The generate command builds a puzzle locally with no server. The puzzle and
wordlist commands operate against a running server.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			client = NewClient(cfg.ServerURL)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: WSEARCH_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newPuzzleCmd())
	rootCmd.AddCommand(newWordListCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
