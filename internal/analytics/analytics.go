// Package analytics records anonymous funnel events for the gift wizard.
package analytics

import (
	"errors"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bilmem-net/ai-hediye/internal/logging"
)

type EventName string

const (
	HomeView           EventName = "home_view"
	HeroCTAClick       EventName = "hero_cta_click"
	WizardStart        EventName = "wizard_start"
	WizardStepView     EventName = "wizard_step_view"
	WizardStepComplete EventName = "wizard_step_complete"
	WizardBackClick    EventName = "wizard_back_click"
	WizardComplete     EventName = "wizard_complete"
	ResultsView        EventName = "results_view"
	ProductCardView    EventName = "product_card_view"
	ProductCTAClick    EventName = "product_cta_click"
	AITooltipOpen      EventName = "ai_tooltip_open"
	SharePanelOpen     EventName = "share_panel_open"
	ShareAction        EventName = "share_action"
	ResultsError       EventName = "results_error"
	NoResults          EventName = "no_results"
)

var knownEvents = map[EventName]bool{
	HomeView: true, HeroCTAClick: true,
	WizardStart: true, WizardStepView: true, WizardStepComplete: true, WizardBackClick: true, WizardComplete: true,
	ResultsView: true, ProductCardView: true, ProductCTAClick: true, AITooltipOpen: true, SharePanelOpen: true, ShareAction: true,
	ResultsError: true, NoResults: true,
}

// Valid reports whether n is a known event name.
func (n EventName) Valid() bool { return knownEvents[n] }

var pageViews = map[string]EventName{
	"home":    HomeView,
	"wizard":  WizardStart,
	"results": ResultsView,
}

var ErrUnknownEvent = errors.New("unknown analytics event")

// Params carries the anonymous attributes an event may have.
type Params struct {
	StepNumber    *int   `json:"step_number,omitempty" validate:"omitempty,min=1,max=5"`
	ProductIndex  *int   `json:"product_index,omitempty" validate:"omitempty,min=0"`
	ShareType     string `json:"share_type,omitempty" validate:"omitempty,oneof=copy whatsapp x"`
	ErrorType     string `json:"error_type,omitempty" validate:"omitempty,max=64"`
	DurationMs    *int64 `json:"duration_ms,omitempty" validate:"omitempty,min=0"`
	InterestCount *int   `json:"interest_count,omitempty" validate:"omitempty,min=0,max=3"`
	BudgetBucket  string `json:"budget_bucket,omitempty" validate:"omitempty,oneof=0-1000 1000-3000 3000-7000 7000+"`
}

type Event struct {
	Name      EventName `json:"name"`
	Params    *Params   `json:"params,omitempty"`
	Timestamp int64     `json:"timestamp"`
}

// BudgetBucket groups a budget into a coarse anonymous range.
func BudgetBucket(budget float64) string {
	switch {
	case budget <= 1000:
		return "0-1000"
	case budget <= 3000:
		return "1000-3000"
	case budget <= 7000:
		return "3000-7000"
	default:
		return "7000+"
	}
}

type Config struct {
	// Debounce drops an identical event seen again within this interval.
	Debounce time.Duration
	// MaxEvents bounds the in-memory queue; the oldest events are dropped.
	MaxEvents int
	// Registerer receives the event counter. Nil skips metrics.
	Registerer prometheus.Registerer
}

func DefaultConfig() Config {
	return Config{Debounce: time.Second, MaxEvents: 1000}
}

// Tracker is a process-scoped event recorder. Create it with New and release
// it with Close.
type Tracker struct {
	mu      sync.Mutex
	cfg     Config
	queue   []Event
	last    map[string]time.Time
	started time.Time
	counter *prometheus.CounterVec
	now     func() time.Time
}

func New(cfg Config) (*Tracker, error) {
	if cfg.Debounce <= 0 {
		cfg.Debounce = time.Second
	}
	if cfg.MaxEvents <= 0 {
		cfg.MaxEvents = 1000
	}
	t := &Tracker{cfg: cfg, last: make(map[string]time.Time), now: time.Now}
	t.started = t.now()
	if cfg.Registerer != nil {
		t.counter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hediye_events_total",
			Help: "Total number of accepted analytics events",
		}, []string{"name"})
		if err := cfg.Registerer.Register(t.counter); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Close unregisters the tracker's metrics.
func (t *Tracker) Close() error {
	if t.counter != nil && t.cfg.Registerer != nil {
		t.cfg.Registerer.Unregister(t.counter)
	}
	return nil
}

// Track queues an event unless an identical one was accepted within the
// debounce interval. It reports whether the event was recorded.
func (t *Tracker) Track(name EventName, params *Params) (bool, error) {
	if !name.Valid() {
		return false, ErrUnknownEvent
	}
	key, err := eventKey(name, params)
	if err != nil {
		return false, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if last, ok := t.last[key]; ok && now.Sub(last) < t.cfg.Debounce {
		return false, nil
	}
	t.last[key] = now
	t.sweep(now)

	t.queue = append(t.queue, Event{Name: name, Params: params, Timestamp: now.UnixMilli()})
	if over := len(t.queue) - t.cfg.MaxEvents; over > 0 {
		t.queue = append([]Event(nil), t.queue[over:]...)
	}
	if t.counter != nil {
		t.counter.WithLabelValues(string(name)).Inc()
	}
	logging.Debug().Str("event", string(name)).Msg("analytics event")
	return true, nil
}

// sweep forgets debounce keys that can no longer suppress anything.
func (t *Tracker) sweep(now time.Time) {
	if len(t.last) < 4*t.cfg.MaxEvents {
		return
	}
	for k, ts := range t.last {
		if now.Sub(ts) >= t.cfg.Debounce {
			delete(t.last, k)
		}
	}
}

func eventKey(name EventName, params *Params) (string, error) {
	if params == nil {
		params = &Params{}
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	return string(name) + "_" + string(raw), nil
}

// TrackPageView maps a page name to its view event. Unknown pages are ignored.
func (t *Tracker) TrackPageView(page string) bool {
	name, ok := pageViews[page]
	if !ok {
		return false
	}
	recorded, _ := t.Track(name, nil)
	return recorded
}

// SessionDuration is the time since the tracker was created.
func (t *Tracker) SessionDuration() time.Duration {
	return t.now().Sub(t.started)
}

// Events returns a copy of the queue.
func (t *Tracker) Events() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Event, len(t.queue))
	copy(out, t.queue)
	return out
}

// Clear empties the queue and the debounce memory.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.queue = nil
	t.last = make(map[string]time.Time)
}
