package calc

import (
	"fmt"

	"github.com/tinytelemetry/widgetdeck/internal/form"
)

const (
	MsgBMIWeight = "Please enter a valid weight"
	MsgBMIHeight = "Please enter a valid height"
)

type BMIForm struct {
	weight string
	height string
}

func (f *BMIForm) SetWeight(v string) { f.weight = v }
func (f *BMIForm) SetHeight(v string) { f.height = v }
func (f *BMIForm) Reset()             { *f = BMIForm{} }
func (f *BMIForm) Mode() form.Mode    { return form.OnSubmit }

func (f *BMIForm) Fields() []form.Field {
	return []form.Field{
		{Name: "weight", Label: "Weight (kg)", Placeholder: "70", Get: func() string { return f.weight }, Set: f.SetWeight},
		{Name: "height", Label: "Height (cm)", Placeholder: "175", Get: func() string { return f.height }, Set: f.SetHeight},
	}
}

type BMIInput struct {
	WeightKg float64
	HeightCm float64
}

type BMIResult struct {
	Index    float64
	Category string
}

func (f *BMIForm) Validate() form.Result[BMIInput] {
	w, err := form.PositiveNumber(f.weight, MsgBMIWeight)
	if err != nil {
		return form.Fail[BMIInput](err)
	}
	h, err := form.PositiveNumber(f.height, MsgBMIHeight)
	if err != nil {
		return form.Fail[BMIInput](err)
	}
	return form.Ok(BMIInput{WeightKg: w, HeightCm: h})
}

func BMI(in BMIInput) BMIResult {
	m := in.HeightCm / 100
	idx := round(in.WeightKg/(m*m), 1)
	return BMIResult{Index: idx, Category: bmiCategory(idx)}
}

func bmiCategory(idx float64) string {
	switch {
	case idx < 18.5:
		return "Underweight"
	case idx < 25:
		return "Normal weight"
	case idx < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

func (f *BMIForm) Evaluate() form.Outcome {
	return form.Render(form.Map(f.Validate(), BMI), func(r BMIResult) []string {
		return []string{fmt.Sprintf("BMI %.1f (%s)", r.Index, r.Category)}
	})
}
