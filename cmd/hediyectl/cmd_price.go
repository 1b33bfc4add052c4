package main

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bilmem-net/ai-hediye/internal/enrich"
)

var priceFlags struct {
	apiKey  string
	timeout time.Duration
}

var priceCmd = &cobra.Command{
	Use:   "price <product title>",
	Short: "Average the market price of a product across shopping results",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPrice,
}

func init() {
	f := priceCmd.Flags()
	f.StringVar(&priceFlags.apiKey, "serpapi-key", os.Getenv("SERPAPI_KEY"), "SerpAPI key (defaults to $SERPAPI_KEY)")
	f.DurationVar(&priceFlags.timeout, "timeout", 15*time.Second, "Lookup timeout")
}

func runPrice(cmd *cobra.Command, args []string) error {
	if priceFlags.apiKey == "" {
		return errors.New("a SerpAPI key is required")
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), priceFlags.timeout)
	defer cancel()

	result, err := enrich.NewSerpAPIPriceProvider(priceFlags.apiKey).Prices(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), result)
}
