package wizard

import "slices"

// Recipient is who the gift is for.
type Recipient string

const (
	RecipientPartner   Recipient = "sevgili-es"
	RecipientFriend    Recipient = "arkadas"
	RecipientMother    Recipient = "anne"
	RecipientFather    Recipient = "baba"
	RecipientSibling   Recipient = "kardes"
	RecipientColleague Recipient = "is-arkadasi"
)

// Recipients lists every supported recipient in display order.
var Recipients = []Recipient{
	RecipientPartner, RecipientFriend, RecipientMother,
	RecipientFather, RecipientSibling, RecipientColleague,
}

func (r Recipient) Valid() bool { return slices.Contains(Recipients, r) }

// Closeness is the relationship intimacy level.
type Closeness string

const (
	ClosenessClose  Closeness = "yakin"
	ClosenessNormal Closeness = "normal"
	ClosenessFormal Closeness = "resmi"
)

var ClosenessLevels = []Closeness{ClosenessClose, ClosenessNormal, ClosenessFormal}

func (c Closeness) Valid() bool { return slices.Contains(ClosenessLevels, c) }

// Rank orders closeness levels: resmi < normal < yakin. Unknown values rank 0.
func (c Closeness) Rank() int {
	switch c {
	case ClosenessFormal:
		return 1
	case ClosenessNormal:
		return 2
	case ClosenessClose:
		return 3
	}
	return 0
}

// Occasion is the optional reason for the gift.
type Occasion string

const (
	OccasionBirthday    Occasion = "dogum-gunu"
	OccasionNewYear     Occasion = "yilbasi"
	OccasionValentines  Occasion = "sevgililer-gunu"
	OccasionGraduation  Occasion = "mezuniyet"
	OccasionJustGesture Occasion = "sadece-jest"
)

var Occasions = []Occasion{
	OccasionBirthday, OccasionNewYear, OccasionValentines,
	OccasionGraduation, OccasionJustGesture,
}

func (o Occasion) Valid() bool { return slices.Contains(Occasions, o) }

const (
	MinStep       = 1
	MaxStep       = 5
	MaxInterests  = 3
	DefaultBudget = 1000
)

// State is the five-field user input collected by the wizard.
// Nil pointers encode "not chosen yet" and serialize as JSON null.
type State struct {
	CurrentStep int        `json:"currentStep"`
	Recipient   *Recipient `json:"recipient"`
	Closeness   *Closeness `json:"closeness"`
	Budget      float64    `json:"budget"`
	Interests   []string   `json:"interests"`
	Occasion    *Occasion  `json:"occasion"`
}

// DefaultState is the state of a fresh session.
func DefaultState() State {
	return State{
		CurrentStep: MinStep,
		Budget:      DefaultBudget,
		Interests:   []string{},
	}
}

// Clone returns a deep copy so callers can't alias the interest slice.
func (s State) Clone() State {
	out := s
	out.Interests = append([]string{}, s.Interests...)
	if s.Recipient != nil {
		r := *s.Recipient
		out.Recipient = &r
	}
	if s.Closeness != nil {
		c := *s.Closeness
		out.Closeness = &c
	}
	if s.Occasion != nil {
		o := *s.Occasion
		out.Occasion = &o
	}
	return out
}

func (s State) WithRecipient(r Recipient) State {
	out := s.Clone()
	out.Recipient = &r
	return out
}

func (s State) WithCloseness(c Closeness) State {
	out := s.Clone()
	out.Closeness = &c
	return out
}

func (s State) WithBudget(b float64) State {
	out := s.Clone()
	out.Budget = b
	return out
}

// WithOccasion sets the occasion; nil clears it.
func (s State) WithOccasion(o *Occasion) State {
	out := s.Clone()
	out.Occasion = nil
	if o != nil {
		v := *o
		out.Occasion = &v
	}
	return out
}

// ToggleInterest removes the interest if present, appends it while fewer than
// MaxInterests are selected, and otherwise leaves the state unchanged.
func (s State) ToggleInterest(interest string) State {
	out := s.Clone()
	if i := slices.Index(out.Interests, interest); i >= 0 {
		out.Interests = slices.Delete(out.Interests, i, i+1)
		return out
	}
	if len(out.Interests) < MaxInterests {
		out.Interests = append(out.Interests, interest)
	}
	return out
}

func (s State) Next() State {
	out := s.Clone()
	out.CurrentStep = min(s.CurrentStep+1, MaxStep)
	return out
}

func (s State) Prev() State {
	out := s.Clone()
	out.CurrentStep = max(s.CurrentStep-1, MinStep)
	return out
}

// CanProceed reports whether the current step has enough input to move on.
func (s State) CanProceed() bool {
	switch s.CurrentStep {
	case 1:
		return s.Recipient != nil
	case 2:
		return s.Closeness != nil
	case 3:
		return s.Budget > 0
	case 4:
		return len(s.Interests) > 0
	case 5:
		return true
	default:
		return false
	}
}

// Complete reports whether every required field is set.
func (s State) Complete() bool {
	return s.Recipient != nil && s.Closeness != nil && s.Budget > 0 && len(s.Interests) > 0
}

// wellFormed rejects snapshots that could not have been produced by the transitions.
func (s State) wellFormed() bool {
	if s.CurrentStep < MinStep || s.CurrentStep > MaxStep {
		return false
	}
	if s.Budget <= 0 || len(s.Interests) > MaxInterests {
		return false
	}
	for i, v := range s.Interests {
		if slices.Contains(s.Interests[i+1:], v) {
			return false
		}
	}
	if s.Recipient != nil && !s.Recipient.Valid() {
		return false
	}
	if s.Closeness != nil && !s.Closeness.Valid() {
		return false
	}
	if s.Occasion != nil && !s.Occasion.Valid() {
		return false
	}
	return true
}
