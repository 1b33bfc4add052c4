package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bilmem-net/ai-hediye/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	output   string
	logLevel string
}

var rootCmd = &cobra.Command{
	Use:   "hediyectl",
	Short: "Gift recommendation toolkit",
	Long:  "hediyectl scores the curated catalog offline, queries a running\nrecommendation server and looks up market prices.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		logging.Init(logging.Config{Level: rootFlags.logLevel, Format: "console"})
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&rootFlags.output, "output", "o", "yaml", "Output format: yaml or json")
	pf.StringVar(&rootFlags.logLevel, "log-level", "warn", "Log level")

	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
