package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bilmem-net/ai-hediye/internal/recommend"
	"github.com/bilmem-net/ai-hediye/internal/wizard"
)

// stateFlags collects wizard answers from the command line.
type stateFlags struct {
	recipient string
	closeness string
	budget    float64
	interests []string
	occasion  string
}

func (s *stateFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&s.recipient, "recipient", "", "Recipient id (anne, baba, sevgili-es, ...)")
	f.StringVar(&s.closeness, "closeness", "", "Closeness id (yakin, normal, resmi)")
	f.Float64Var(&s.budget, "budget", wizard.DefaultBudget, "Budget in TRY")
	f.StringSliceVar(&s.interests, "interest", nil, "Interest id, repeatable (max 3)")
	f.StringVar(&s.occasion, "occasion", "", "Occasion id (optional)")
}

// state replays the flags through the wizard transitions so the same
// clamping and limits apply as in the web flow.
func (s *stateFlags) state() (wizard.State, error) {
	st := wizard.DefaultState()
	if s.recipient != "" {
		r := wizard.Recipient(s.recipient)
		if !r.Valid() {
			return st, fmt.Errorf("%w: unknown recipient %q", recommend.ErrInvalidState, s.recipient)
		}
		st = st.WithRecipient(r)
	}
	if s.closeness != "" {
		c := wizard.Closeness(s.closeness)
		if !c.Valid() {
			return st, fmt.Errorf("%w: unknown closeness %q", recommend.ErrInvalidState, s.closeness)
		}
		st = st.WithCloseness(c)
	}
	if s.occasion != "" {
		o := wizard.Occasion(s.occasion)
		if !o.Valid() {
			return st, fmt.Errorf("%w: unknown occasion %q", recommend.ErrInvalidState, s.occasion)
		}
		st = st.WithOccasion(&o)
	}
	if len(s.interests) > wizard.MaxInterests {
		return st, fmt.Errorf("%w: at most %d interests", recommend.ErrInvalidState, wizard.MaxInterests)
	}
	for _, in := range s.interests {
		st = st.ToggleInterest(in)
	}
	st = st.WithBudget(s.budget)
	st.CurrentStep = wizard.MaxStep
	return st, nil
}

func render(w io.Writer, v any) error {
	switch rootFlags.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", rootFlags.output)
	}
}
