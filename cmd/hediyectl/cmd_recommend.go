package main

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/bilmem-net/ai-hediye/internal/recommend"
)

var recommendFlags struct {
	stateFlags
	server  string
	timeout time.Duration
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Ask a running server for AI recommendations",
	RunE:  runRecommend,
}

func init() {
	recommendFlags.register(recommendCmd)
	f := recommendCmd.Flags()
	f.StringVar(&recommendFlags.server, "server", "http://localhost:8080", "Base URL of the recommendation server")
	f.DurationVar(&recommendFlags.timeout, "timeout", 60*time.Second, "Request timeout")
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	st, err := recommendFlags.state()
	if err != nil {
		return err
	}
	if !st.Complete() {
		return recommend.ErrInvalidState
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), recommendFlags.timeout)
	defer cancel()

	client := recommend.NewClient(recommendFlags.server, &http.Client{Timeout: recommendFlags.timeout})
	recs, err := client.Recommend(ctx, st)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), recs)
}
