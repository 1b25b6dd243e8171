package calc

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tinytelemetry/widgetdeck/internal/form"
)

const (
	MsgConvertCategory = "Please choose a category: length, weight or temperature"
	MsgConvertValue    = "Please enter a valid number"
	MsgConvertTooLarge = "Value must be between -1000000000000 and 1000000000000"
)

// Unit factors are relative to each category's base unit (metre, kilogram).
var (
	lengthUnits = map[string]float64{
		"mm": 0.001, "cm": 0.01, "m": 1, "km": 1000,
		"in": 0.0254, "ft": 0.3048, "yd": 0.9144, "mi": 1609.344,
	}
	weightUnits = map[string]float64{
		"mg": 1e-6, "g": 0.001, "kg": 1, "t": 1000,
		"oz": 0.028349523125, "lb": 0.45359237,
	}
	temperatureUnits = map[string]float64{"c": 1, "f": 1, "k": 1}
)

var categories = map[string]map[string]float64{
	"length":      lengthUnits,
	"weight":      weightUnits,
	"temperature": temperatureUnits,
}

// ConvertCategories lists the converter's tabs in display order.
func ConvertCategories() []string {
	return []string{"length", "weight", "temperature"}
}

// ConvertUnits lists the units of a category, sorted.
func ConvertUnits(category string) []string {
	units := categories[category]
	out := make([]string, 0, len(units))
	for u := range units {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}

type ConvertForm struct {
	category string
	from     string
	to       string
	value    string
}

func (f *ConvertForm) SetCategory(v string) { f.category = v }
func (f *ConvertForm) SetFrom(v string)     { f.from = v }
func (f *ConvertForm) SetTo(v string)       { f.to = v }
func (f *ConvertForm) SetValue(v string)    { f.value = v }
func (f *ConvertForm) Reset()               { *f = ConvertForm{} }
func (f *ConvertForm) Mode() form.Mode      { return form.Reactive }

func (f *ConvertForm) Fields() []form.Field {
	return []form.Field{
		{Name: "category", Label: "Category", Placeholder: "length", Get: func() string { return f.category }, Set: f.SetCategory},
		{Name: "from", Label: "From unit", Placeholder: "km", Get: func() string { return f.from }, Set: f.SetFrom},
		{Name: "to", Label: "To unit", Placeholder: "mi", Get: func() string { return f.to }, Set: f.SetTo},
		{Name: "value", Label: "Value", Placeholder: "10", Get: func() string { return f.value }, Set: f.SetValue},
	}
}

type ConvertInput struct {
	Category string
	From     string
	To       string
	Value    float64
}

func (f *ConvertForm) Validate() form.Result[ConvertInput] {
	cat := strings.ToLower(strings.TrimSpace(f.category))
	units, ok := categories[cat]
	if !ok {
		return form.Invalid[ConvertInput](MsgConvertCategory)
	}
	from := strings.ToLower(strings.TrimSpace(f.from))
	if _, ok := units[from]; !ok {
		return form.Invalid[ConvertInput](unitMessage(cat))
	}
	to := strings.ToLower(strings.TrimSpace(f.to))
	if _, ok := units[to]; !ok {
		return form.Invalid[ConvertInput](unitMessage(cat))
	}
	v, err := form.Number(f.value, MsgConvertValue)
	if err != nil {
		return form.Fail[ConvertInput](err)
	}
	if _, err := form.AtMost(v, form.MaxMagnitude, MsgConvertTooLarge); err != nil {
		return form.Fail[ConvertInput](err)
	}
	return form.Ok(ConvertInput{Category: cat, From: from, To: to, Value: v})
}

func unitMessage(category string) string {
	return fmt.Sprintf("Unit must be one of: %s", strings.Join(ConvertUnits(category), ", "))
}

// Convert converts in.Value between units of one category.
func Convert(in ConvertInput) float64 {
	if in.Category == "temperature" {
		return round(fromCelsius(toCelsius(in.Value, in.From), in.To), 4)
	}
	units := categories[in.Category]
	return round(in.Value*units[in.From]/units[in.To], 6)
}

func toCelsius(v float64, unit string) float64 {
	switch unit {
	case "f":
		return (v - 32) * 5 / 9
	case "k":
		return v - 273.15
	default:
		return v
	}
}

func fromCelsius(c float64, unit string) float64 {
	switch unit {
	case "f":
		return c*9/5 + 32
	case "k":
		return c + 273.15
	default:
		return c
	}
}

func (f *ConvertForm) Evaluate() form.Outcome {
	r := f.Validate()
	in, _ := r.Value()
	return form.Render(form.Map(r, Convert), func(out float64) []string {
		return []string{fmt.Sprintf("%s %s = %s %s",
			strconv.FormatFloat(in.Value, 'f', -1, 64), in.From,
			strconv.FormatFloat(out, 'f', -1, 64), in.To)}
	})
}
