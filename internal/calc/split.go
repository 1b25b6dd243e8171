package calc

import (
	"fmt"

	"github.com/tinytelemetry/widgetdeck/internal/form"
)

const (
	MsgSplitTotal  = "Please enter a valid total amount"
	MsgSplitPeople = "Number of people must be greater than 0"
)

// SplitForm is the expense splitter's raw input.
type SplitForm struct {
	total  string
	people string
}

func (f *SplitForm) SetTotal(v string)  { f.total = v }
func (f *SplitForm) SetPeople(v string) { f.people = v }
func (f *SplitForm) Reset()             { *f = SplitForm{} }
func (f *SplitForm) Mode() form.Mode    { return form.OnSubmit }

func (f *SplitForm) Fields() []form.Field {
	return []form.Field{
		{Name: "total", Label: "Total amount", Placeholder: "100.00", Get: func() string { return f.total }, Set: f.SetTotal},
		{Name: "people", Label: "Number of people", Placeholder: "4", Get: func() string { return f.people }, Set: f.SetPeople},
	}
}

// SplitInput is the validated splitter input.
type SplitInput struct {
	Total  float64
	People int
}

func (f *SplitForm) Validate() form.Result[SplitInput] {
	total, err := form.PositiveNumber(f.total, MsgSplitTotal)
	if err != nil {
		return form.Fail[SplitInput](err)
	}
	people, err := form.PositiveInteger(f.people, MsgSplitPeople)
	if err != nil {
		return form.Fail[SplitInput](err)
	}
	return form.Ok(SplitInput{Total: total, People: people})
}

// Split returns each person's share rounded to cents.
func Split(in SplitInput) float64 {
	return round(in.Total/float64(in.People), 2)
}

func (f *SplitForm) Evaluate() form.Outcome {
	return form.Render(form.Map(f.Validate(), Split), func(share float64) []string {
		return []string{fmt.Sprintf("Each person pays %.2f", share)}
	})
}
