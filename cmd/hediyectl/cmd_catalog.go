package main

import (
	"github.com/spf13/cobra"

	"github.com/bilmem-net/ai-hediye/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the curated fallback catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return render(cmd.OutOrStdout(), catalog.Seed())
	},
}
