package form

import "sort"

// Mode controls when a widget re-evaluates.
type Mode int

const (
	// Reactive widgets re-evaluate after every input change.
	Reactive Mode = iota
	// OnSubmit widgets evaluate only on an explicit action.
	OnSubmit
)

func (m Mode) String() string {
	if m == OnSubmit {
		return "on-submit"
	}
	return "reactive"
}

// Field binds one input of a typed form. Set stores the raw string without
// checking it; Get returns the stored raw string.
type Field struct {
	Name        string
	Label       string
	Placeholder string
	Get         func() string
	Set         func(string)
}

// Status is what the result renderer shows.
type Status int

const (
	// StatusPending means nothing has been evaluated yet.
	StatusPending Status = iota
	// StatusOk means the last evaluation produced a result.
	StatusOk
	// StatusInvalid means the last evaluation failed validation.
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusOk:
		return "ok"
	case StatusInvalid:
		return "invalid"
	default:
		return "pending"
	}
}

// Outcome is a rendered evaluation: result lines when Ok, the Invalid
// message otherwise.
type Outcome struct {
	Status  Status
	Lines   []string
	Message string
}

// Pending is the neutral outcome shown before the first evaluation.
func Pending() Outcome { return Outcome{Status: StatusPending} }

// Render turns a validation result into an Outcome, running format only on
// Ok results.
func Render[T any](r Result[T], format func(T) []string) Outcome {
	v, ok := r.Value()
	if !ok {
		return Outcome{Status: StatusInvalid, Message: r.Reason()}
	}
	return Outcome{Status: StatusOk, Lines: format(v)}
}

// Evaluator is implemented by every form-driven widget.
type Evaluator interface {
	Fields() []Field
	Mode() Mode
	Evaluate() Outcome
	Reset()
}

// Apply sets the named raw values on the evaluator's fields and reports
// any names that matched no field.
func Apply(e Evaluator, values map[string]string) (unknown []string) {
	fields := e.Fields()
	known := make(map[string]Field, len(fields))
	for _, f := range fields {
		known[f.Name] = f
	}
	for name, raw := range values {
		f, ok := known[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		f.Set(raw)
	}
	sort.Strings(unknown)
	return unknown
}
