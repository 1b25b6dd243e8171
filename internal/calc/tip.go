package calc

import (
	"fmt"

	"github.com/tinytelemetry/widgetdeck/internal/form"
)

const (
	MsgTipBill    = "Please enter a valid bill amount"
	MsgTipPercent = "Tip percentage must be zero or more"
	MsgTipPeople  = "Number of people must be greater than 0"
)

// TipForm is the tip calculator's raw input.
type TipForm struct {
	bill    string
	percent string
	people  string
}

func (f *TipForm) SetBill(v string)    { f.bill = v }
func (f *TipForm) SetPercent(v string) { f.percent = v }
func (f *TipForm) SetPeople(v string)  { f.people = v }
func (f *TipForm) Reset()              { *f = TipForm{} }
func (f *TipForm) Mode() form.Mode     { return form.Reactive }

func (f *TipForm) Fields() []form.Field {
	return []form.Field{
		{Name: "bill", Label: "Bill", Placeholder: "48.50", Get: func() string { return f.bill }, Set: f.SetBill},
		{Name: "percent", Label: "Tip %", Placeholder: "15", Get: func() string { return f.percent }, Set: f.SetPercent},
		{Name: "people", Label: "People", Placeholder: "2", Get: func() string { return f.people }, Set: f.SetPeople},
	}
}

type TipInput struct {
	Bill    float64
	Percent float64
	People  int
}

type TipResult struct {
	Tip       float64
	Total     float64
	PerPerson float64
}

func (f *TipForm) Validate() form.Result[TipInput] {
	bill, err := form.PositiveNumber(f.bill, MsgTipBill)
	if err != nil {
		return form.Fail[TipInput](err)
	}
	pct, err := form.NonNegativeNumber(f.percent, MsgTipPercent)
	if err != nil {
		return form.Fail[TipInput](err)
	}
	people, err := form.PositiveInteger(f.people, MsgTipPeople)
	if err != nil {
		return form.Fail[TipInput](err)
	}
	return form.Ok(TipInput{Bill: bill, Percent: pct, People: people})
}

func Tip(in TipInput) TipResult {
	tip := in.Bill * in.Percent / 100
	total := in.Bill + tip
	return TipResult{
		Tip:       round(tip, 2),
		Total:     round(total, 2),
		PerPerson: round(total/float64(in.People), 2),
	}
}

func (f *TipForm) Evaluate() form.Outcome {
	return form.Render(form.Map(f.Validate(), Tip), func(r TipResult) []string {
		return []string{
			fmt.Sprintf("Tip:        %.2f", r.Tip),
			fmt.Sprintf("Total:      %.2f", r.Total),
			fmt.Sprintf("Per person: %.2f", r.PerPerson),
		}
	})
}
