// Package widget is the catalog of deck widgets shared by the TUI sidebar
// and the HTTP API.
package widget

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tinytelemetry/widgetdeck/internal/calc"
	"github.com/tinytelemetry/widgetdeck/internal/form"
	"github.com/tinytelemetry/widgetdeck/internal/model"
)

// Kind groups widgets by how a front end drives them.
type Kind int

const (
	// KindForm widgets are a form.Evaluator and need no custom UI.
	KindForm Kind = iota
	// KindInteractive widgets have their own state machine.
	KindInteractive
	// KindTracker widgets persist a value under one store key.
	KindTracker
)

func (k Kind) String() string {
	switch k {
	case KindInteractive:
		return "interactive"
	case KindTracker:
		return "tracker"
	default:
		return "form"
	}
}

// Deps are the collaborators widget constructors may use.
type Deps struct {
	KV     model.KV
	Rand   calc.Rand
	Now    func() time.Time
	Logger *zap.Logger

	// TickInterval drives the stopwatch.
	TickInterval time.Duration
}

// WithDefaults fills unset collaborators. KV is left as is.
func (d Deps) WithDefaults() Deps {
	if d.Rand == nil {
		d.Rand = calc.DefaultRand()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.TickInterval <= 0 {
		d.TickInterval = model.DefaultTickInterval
	}
	return d
}

// Spec describes one widget. NewForm is set only for KindForm; StoreKey only
// for KindTracker and widgets that persist alongside their game (jokes).
type Spec struct {
	ID          string
	Title       string
	Description string
	Kind        Kind
	StoreKey    string
	NewForm     func(Deps) form.Evaluator
}

// Registry keeps widgets in catalog order.
type Registry struct {
	specs []Spec
	byID  map[string]int
}

// NewRegistry rejects duplicate or empty ids and form widgets without a
// constructor.
func NewRegistry(specs ...Spec) (*Registry, error) {
	r := &Registry{byID: make(map[string]int, len(specs))}
	for _, s := range specs {
		if s.ID == "" {
			return nil, fmt.Errorf("widget %q: empty id", s.Title)
		}
		if _, dup := r.byID[s.ID]; dup {
			return nil, fmt.Errorf("widget %q: duplicate id", s.ID)
		}
		if s.Kind == KindForm && s.NewForm == nil {
			return nil, fmt.Errorf("widget %q: form widget without constructor", s.ID)
		}
		r.byID[s.ID] = len(r.specs)
		r.specs = append(r.specs, s)
	}
	return r, nil
}

// All returns every widget in catalog order.
func (r *Registry) All() []Spec {
	out := make([]Spec, len(r.specs))
	copy(out, r.specs)
	return out
}

// Forms returns the KindForm widgets in catalog order.
func (r *Registry) Forms() []Spec {
	var out []Spec
	for _, s := range r.specs {
		if s.Kind == KindForm {
			out = append(out, s)
		}
	}
	return out
}

func (r *Registry) Lookup(id string) (Spec, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Spec{}, false
	}
	return r.specs[i], true
}

func (r *Registry) Len() int { return len(r.specs) }
