package analytics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTracker(t *testing.T) (*Tracker, *time.Time, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	tr, err := New(Config{Debounce: time.Second, MaxEvents: 3, Registerer: reg})
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Close() })
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return now }
	tr.started = now
	return tr, &now, reg
}

func TestDebounce(t *testing.T) {
	tr, now, _ := newTracker(t)
	step := 2

	ok, err := tr.Track(WizardStepView, &Params{StepNumber: &step})
	require.NoError(t, err)
	assert.True(t, ok)

	*now = now.Add(500 * time.Millisecond)
	ok, _ = tr.Track(WizardStepView, &Params{StepNumber: &step})
	assert.False(t, ok, "identical event within the debounce interval")

	other := 3
	ok, _ = tr.Track(WizardStepView, &Params{StepNumber: &other})
	assert.True(t, ok, "different params are a different event")

	*now = now.Add(time.Second)
	ok, _ = tr.Track(WizardStepView, &Params{StepNumber: &step})
	assert.True(t, ok)
	assert.Len(t, tr.Events(), 3)
}

func TestUnknownEventRejected(t *testing.T) {
	tr, _, _ := newTracker(t)
	_, err := tr.Track("checkout", nil)
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestQueueIsBounded(t *testing.T) {
	tr, now, _ := newTracker(t)
	for _, n := range []EventName{HomeView, HeroCTAClick, WizardStart, WizardComplete} {
		_, err := tr.Track(n, nil)
		require.NoError(t, err)
		*now = now.Add(time.Millisecond)
	}
	events := tr.Events()
	require.Len(t, events, 3)
	assert.Equal(t, HeroCTAClick, events[0].Name)
}

func TestTrackPageView(t *testing.T) {
	tr, _, reg := newTracker(t)
	assert.True(t, tr.TrackPageView("results"))
	assert.False(t, tr.TrackPageView("blog"))
	require.Len(t, tr.Events(), 1)
	assert.Equal(t, ResultsView, tr.Events()[0].Name)
	assert.Equal(t, 1.0, testutil.ToFloat64(tr.counter.WithLabelValues(string(ResultsView))))

	n, err := testutil.GatherAndCount(reg, "hediye_events_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestClearAndDuration(t *testing.T) {
	tr, now, _ := newTracker(t)
	_, _ = tr.Track(HomeView, nil)
	tr.Clear()
	assert.Empty(t, tr.Events())
	ok, _ := tr.Track(HomeView, nil)
	assert.True(t, ok, "clear also resets debounce memory")

	*now = now.Add(90 * time.Second)
	assert.Equal(t, 90*time.Second, tr.SessionDuration())
}

func TestBudgetBucket(t *testing.T) {
	cases := map[float64]string{
		0: "0-1000", 1000: "0-1000", 1000.5: "1000-3000", 3000: "1000-3000",
		5000: "3000-7000", 7000: "3000-7000", 15000: "7000+",
	}
	for budget, want := range cases {
		assert.Equal(t, want, BudgetBucket(budget), budget)
	}
}

func TestTrackersAreIndependent(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := New(Config{Registerer: reg})
	require.NoError(t, err)
	require.NoError(t, a.Close())

	b, err := New(Config{Registerer: reg})
	require.NoError(t, err, "closing a tracker releases its collector")
	defer b.Close()
	_, _ = b.Track(HomeView, nil)
	assert.Empty(t, a.Events())
}
