package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("ai", "ok"))
	ObserveRecommendation("ok", time.Now().Add(-time.Second))

	if got := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("ai", "ok")); got != before+1 {
		t.Fatalf("expected counter %v, got %v", before+1, got)
	}
	if n := testutil.CollectAndCount(RecommendationDuration); n != 1 {
		t.Fatalf("expected histogram to be collected, got %d", n)
	}
}
