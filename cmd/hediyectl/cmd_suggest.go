package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bilmem-net/ai-hediye/internal/catalog"
	"github.com/bilmem-net/ai-hediye/internal/recommend"
)

var suggestFlags stateFlags

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Score the curated catalog without calling the AI provider",
	RunE:  runSuggest,
}

func init() {
	suggestFlags.register(suggestCmd)
	_ = suggestCmd.MarkFlagRequired("recipient")
	_ = suggestCmd.MarkFlagRequired("closeness")
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	st, err := suggestFlags.state()
	if err != nil {
		return err
	}
	products, err := catalog.NewService(catalog.NewInMemoryRepository(catalog.Seed()))
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	return render(cmd.OutOrStdout(), recommend.Score(st, products.List()))
}
