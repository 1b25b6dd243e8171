package calc

import (
	"fmt"
	"time"

	"github.com/tinytelemetry/widgetdeck/internal/form"
)

const MsgAgeBirth = "Please enter a valid date of birth"

// AgeForm is the age calculator's raw input. Today comes from the injected
// clock so validation stays deterministic for a given day.
type AgeForm struct {
	birth string
	now   func() time.Time
}

// NewAgeForm returns a form using now as its clock; nil means time.Now.
func NewAgeForm(now func() time.Time) *AgeForm {
	if now == nil {
		now = time.Now
	}
	return &AgeForm{now: now}
}

func (f *AgeForm) SetBirth(v string) { f.birth = v }
func (f *AgeForm) Reset()            { f.birth = "" }
func (f *AgeForm) Mode() form.Mode   { return form.OnSubmit }

func (f *AgeForm) Fields() []form.Field {
	return []form.Field{
		{Name: "birth", Label: "Date of birth", Placeholder: form.DateLayout, Get: func() string { return f.birth }, Set: f.SetBirth},
	}
}

type AgeInput struct {
	Birth time.Time
	Today time.Time
}

// Age is a calendar age plus the wait until the next birthday.
type Age struct {
	Years          int
	Months         int
	Days           int
	DaysToBirthday int
}

func (f *AgeForm) Validate() form.Result[AgeInput] {
	today := form.Day(f.now())
	birth, err := form.PastDate(f.birth, today, MsgAgeBirth)
	if err != nil {
		return form.Fail[AgeInput](err)
	}
	return form.Ok(AgeInput{Birth: birth, Today: today})
}

// AgeOn computes the calendar age on in.Today. A birth day missing from a
// shorter month counts as that month's last day, so 01-31 plus one month is
// the end of February.
func AgeOn(in AgeInput) Age {
	by, bm, _ := in.Birth.Date()
	ty, tm, _ := in.Today.Date()

	total := (ty-by)*12 + int(tm) - int(bm)
	anchor := monthsAfter(in.Birth, total)
	if anchor.After(in.Today) {
		total--
		anchor = monthsAfter(in.Birth, total)
	}
	years, months := total/12, total%12
	days := int(in.Today.Sub(anchor).Hours() / 24)

	next := monthsAfter(in.Birth, (ty-by)*12)
	if next.Before(in.Today) {
		next = monthsAfter(in.Birth, (ty-by+1)*12)
	}

	return Age{
		Years:          years,
		Months:         months,
		Days:           days,
		DaysToBirthday: int(next.Sub(in.Today).Hours() / 24),
	}
}

// monthsAfter returns the date n months after birth, clamping the day to the
// length of the target month.
func monthsAfter(birth time.Time, n int) time.Time {
	y, m, d := birth.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	last := first.AddDate(0, 1, -1).Day()
	return first.AddDate(0, 0, min(d, last)-1)
}

func (f *AgeForm) Evaluate() form.Outcome {
	return form.Render(form.Map(f.Validate(), AgeOn), func(a Age) []string {
		lines := []string{fmt.Sprintf("%d years, %d months, %d days", a.Years, a.Months, a.Days)}
		if a.DaysToBirthday == 0 {
			lines = append(lines, "Happy birthday!")
		} else {
			lines = append(lines, fmt.Sprintf("Next birthday in %d days", a.DaysToBirthday))
		}
		return lines
	})
}
