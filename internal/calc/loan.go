package calc

import (
	"fmt"
	"math"

	"github.com/tinytelemetry/widgetdeck/internal/form"
)

const (
	MsgLoanPrincipal = "Please enter a valid loan amount"
	MsgLoanRate      = "Interest rate must be zero or more"
	MsgLoanYears     = "Loan term must be between 1 and 50 years"
	MsgLoanTooLarge  = "Loan amount must be at most 1000000000000"
	MsgLoanRateMax   = "Interest rate must be at most 1000%"

	maxLoanRatePct = 1000
)

type LoanForm struct {
	principal string
	rate      string
	years     string
}

func (f *LoanForm) SetPrincipal(v string) { f.principal = v }
func (f *LoanForm) SetRate(v string)      { f.rate = v }
func (f *LoanForm) SetYears(v string)     { f.years = v }
func (f *LoanForm) Reset()                { *f = LoanForm{} }
func (f *LoanForm) Mode() form.Mode       { return form.OnSubmit }

func (f *LoanForm) Fields() []form.Field {
	return []form.Field{
		{Name: "principal", Label: "Amount", Placeholder: "200000", Get: func() string { return f.principal }, Set: f.SetPrincipal},
		{Name: "rate", Label: "Annual rate %", Placeholder: "4.5", Get: func() string { return f.rate }, Set: f.SetRate},
		{Name: "years", Label: "Years", Placeholder: "30", Get: func() string { return f.years }, Set: f.SetYears},
	}
}

type LoanInput struct {
	Principal float64
	RatePct   float64
	Years     int
}

type LoanResult struct {
	Monthly       float64
	TotalInterest float64
}

func (f *LoanForm) Validate() form.Result[LoanInput] {
	p, err := form.PositiveNumber(f.principal, MsgLoanPrincipal)
	if err != nil {
		return form.Fail[LoanInput](err)
	}
	if _, err := form.AtMost(p, form.MaxMagnitude, MsgLoanTooLarge); err != nil {
		return form.Fail[LoanInput](err)
	}
	r, err := form.NonNegativeNumber(f.rate, MsgLoanRate)
	if err != nil {
		return form.Fail[LoanInput](err)
	}
	if _, err := form.AtMost(r, maxLoanRatePct, MsgLoanRateMax); err != nil {
		return form.Fail[LoanInput](err)
	}
	y, err := form.IntRange(f.years, 1, 50, MsgLoanYears)
	if err != nil {
		return form.Fail[LoanInput](err)
	}
	return form.Ok(LoanInput{Principal: p, RatePct: r, Years: y})
}

// Loan computes the fixed monthly payment of an amortized loan.
func Loan(in LoanInput) LoanResult {
	n := float64(in.Years * 12)
	r := in.RatePct / 100 / 12
	var monthly float64
	if r == 0 {
		monthly = in.Principal / n
	} else {
		monthly = in.Principal * r / (1 - math.Pow(1+r, -n))
	}
	return LoanResult{
		Monthly:       round(monthly, 2),
		TotalInterest: round(monthly*n-in.Principal, 2),
	}
}

func (f *LoanForm) Evaluate() form.Outcome {
	return form.Render(form.Map(f.Validate(), Loan), func(r LoanResult) []string {
		return []string{
			fmt.Sprintf("Monthly payment: %.2f", r.Monthly),
			fmt.Sprintf("Total interest:  %.2f", r.TotalInterest),
		}
	})
}
