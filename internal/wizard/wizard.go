package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/bilmem-net/ai-hediye/internal/logging"
)

// Wizard is the single source of truth for one session's input. Every
// mutation except Load is persisted under the session key before listeners
// are notified.
type Wizard struct {
	store    Store
	key      string
	state    State
	onChange func(State)
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithOnChange registers a listener called after each persisted mutation.
func WithOnChange(fn func(State)) Option {
	return func(w *Wizard) { w.onChange = fn }
}

// Open hydrates the wizard for sessionID from store. A missing or malformed
// snapshot yields the default state.
func Open(ctx context.Context, store Store, sessionID string, opts ...Option) *Wizard {
	w := &Wizard{store: store, key: SessionKey(sessionID), state: DefaultState()}
	for _, opt := range opts {
		opt(w)
	}
	w.Load(hydrate(ctx, store, w.key))
	return w
}

func hydrate(ctx context.Context, store Store, key string) State {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("failed to load wizard state")
		}
		return DefaultState()
	}
	var s State
	if err := json.Unmarshal(raw, &s); err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("key", key).Msg("discarding unparsable wizard state")
		return DefaultState()
	}
	if !s.wellFormed() {
		logging.Ctx(ctx).Debug().Str("key", key).Msg("discarding malformed wizard state")
		return DefaultState()
	}
	if s.Interests == nil {
		s.Interests = []string{}
	}
	return s
}

// State returns a copy of the current state.
func (w *Wizard) State() State { return w.state.Clone() }

// CanProceed reports whether the current step is satisfied.
func (w *Wizard) CanProceed() bool { return w.state.CanProceed() }

func (w *Wizard) SetRecipient(ctx context.Context, r Recipient) error {
	return w.dispatch(ctx, func(s State) State { return s.WithRecipient(r) })
}

func (w *Wizard) SetCloseness(ctx context.Context, c Closeness) error {
	return w.dispatch(ctx, func(s State) State { return s.WithCloseness(c) })
}

func (w *Wizard) SetBudget(ctx context.Context, b float64) error {
	return w.dispatch(ctx, func(s State) State { return s.WithBudget(b) })
}

func (w *Wizard) SetOccasion(ctx context.Context, o *Occasion) error {
	return w.dispatch(ctx, func(s State) State { return s.WithOccasion(o) })
}

func (w *Wizard) ToggleInterest(ctx context.Context, interest string) error {
	return w.dispatch(ctx, func(s State) State { return s.ToggleInterest(interest) })
}

func (w *Wizard) Next(ctx context.Context) error {
	return w.dispatch(ctx, State.Next)
}

func (w *Wizard) Prev(ctx context.Context) error {
	return w.dispatch(ctx, State.Prev)
}

// Reset restores the defaults and erases the persisted snapshot.
func (w *Wizard) Reset(ctx context.Context) error {
	w.state = DefaultState()
	if err := w.store.Delete(ctx, w.key); err != nil {
		return fmt.Errorf("erase wizard state: %w", err)
	}
	w.notify()
	return nil
}

// Load replaces the whole state verbatim without persisting it.
func (w *Wizard) Load(snapshot State) {
	w.state = snapshot.Clone()
}

func (w *Wizard) dispatch(ctx context.Context, fn func(State) State) error {
	w.state = fn(w.state)
	raw, err := json.Marshal(w.state)
	if err != nil {
		return fmt.Errorf("encode wizard state: %w", err)
	}
	if err := w.store.Put(ctx, w.key, raw); err != nil {
		return fmt.Errorf("persist wizard state: %w", err)
	}
	w.notify()
	return nil
}

func (w *Wizard) notify() {
	if w.onChange != nil {
		w.onChange(w.state.Clone())
	}
}
