package calc

import (
	"fmt"

	"github.com/tinytelemetry/widgetdeck/internal/form"
)

const (
	MsgRandomMin   = "Please enter a valid minimum"
	MsgRandomMax   = "Please enter a valid maximum"
	MsgRandomOrder = "Minimum must be less than maximum"

	randomBound = 1_000_000_000
)

// RandomForm is the random number generator's raw input.
type RandomForm struct {
	min string
	max string
	rng Rand
}

// NewRandomForm returns a form drawing from rng; nil means DefaultRand.
func NewRandomForm(rng Rand) *RandomForm {
	if rng == nil {
		rng = DefaultRand()
	}
	return &RandomForm{rng: rng}
}

func (f *RandomForm) SetMin(v string) { f.min = v }
func (f *RandomForm) SetMax(v string) { f.max = v }
func (f *RandomForm) Reset()          { f.min, f.max = "", "" }
func (f *RandomForm) Mode() form.Mode { return form.OnSubmit }

func (f *RandomForm) Fields() []form.Field {
	return []form.Field{
		{Name: "min", Label: "Minimum", Placeholder: "1", Get: func() string { return f.min }, Set: f.SetMin},
		{Name: "max", Label: "Maximum", Placeholder: "100", Get: func() string { return f.max }, Set: f.SetMax},
	}
}

type RandomRange struct {
	Min int
	Max int
}

func (f *RandomForm) Validate() form.Result[RandomRange] {
	lo, err := form.IntRange(f.min, -randomBound, randomBound, MsgRandomMin)
	if err != nil {
		return form.Fail[RandomRange](err)
	}
	hi, err := form.IntRange(f.max, -randomBound, randomBound, MsgRandomMax)
	if err != nil {
		return form.Fail[RandomRange](err)
	}
	if err := form.StrictlyLess(lo, hi, MsgRandomOrder); err != nil {
		return form.Fail[RandomRange](err)
	}
	return form.Ok(RandomRange{Min: lo, Max: hi})
}

// RandomInt draws uniformly from the closed range [r.Min, r.Max].
func RandomInt(rng Rand, r RandomRange) int {
	return r.Min + rng.IntN(r.Max-r.Min+1)
}

func (f *RandomForm) Evaluate() form.Outcome {
	return form.Render(f.Validate(), func(r RandomRange) []string {
		return []string{fmt.Sprintf("%d", RandomInt(f.rng, r))}
	})
}
