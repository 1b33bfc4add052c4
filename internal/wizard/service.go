package wizard

import (
	"context"

	"github.com/bilmem-net/ai-hediye/internal/logging"
)

// Service opens per-session wizards on top of a durable Store.
type Service struct {
	store    Store
	onChange func(sessionID string, s State)
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// OnChange registers a listener for every persisted mutation of any session.
func (s *Service) OnChange(fn func(sessionID string, st State)) {
	s.onChange = fn
}

// Open hydrates the wizard of one session.
func (s *Service) Open(ctx context.Context, sessionID string) *Wizard {
	opts := []Option{}
	if s.onChange != nil {
		opts = append(opts, WithOnChange(func(st State) { s.onChange(sessionID, st) }))
	}
	return Open(ctx, s.store, sessionID, opts...)
}

// State returns the hydrated state of one session without mutating it.
func (s *Service) State(ctx context.Context, sessionID string) State {
	st := s.Open(ctx, sessionID).State()
	logging.Ctx(ctx).Debug().Int("step", st.CurrentStep).Msg("wizard state read")
	return st
}
