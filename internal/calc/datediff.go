package calc

import (
	"fmt"
	"time"

	"github.com/tinytelemetry/widgetdeck/internal/form"
)

const (
	MsgDateStart = "Please enter a valid start date"
	MsgDateEnd   = "Please enter a valid end date"
	MsgDateOrder = "End date must not be before start date"
)

type DateDiffForm struct {
	start string
	end   string
}

func (f *DateDiffForm) SetStart(v string) { f.start = v }
func (f *DateDiffForm) SetEnd(v string)   { f.end = v }
func (f *DateDiffForm) Reset()            { *f = DateDiffForm{} }
func (f *DateDiffForm) Mode() form.Mode   { return form.Reactive }

func (f *DateDiffForm) Fields() []form.Field {
	return []form.Field{
		{Name: "start", Label: "Start date", Placeholder: form.DateLayout, Get: func() string { return f.start }, Set: f.SetStart},
		{Name: "end", Label: "End date", Placeholder: form.DateLayout, Get: func() string { return f.end }, Set: f.SetEnd},
	}
}

// DateSpan is a validated pair of calendar days, End not before Start.
type DateSpan struct {
	Start time.Time
	End   time.Time
}

type DateDiff struct {
	Days  int
	Weeks int
	Rest  int
}

func (f *DateDiffForm) Validate() form.Result[DateSpan] {
	s, err := form.Date(f.start, MsgDateStart)
	if err != nil {
		return form.Fail[DateSpan](err)
	}
	e, err := form.Date(f.end, MsgDateEnd)
	if err != nil {
		return form.Fail[DateSpan](err)
	}
	if e.Before(s) {
		return form.Invalid[DateSpan](MsgDateOrder)
	}
	return form.Ok(DateSpan{Start: s, End: e})
}

// DaysBetween counts whole days from Start to End.
func DaysBetween(in DateSpan) DateDiff {
	days := int(in.End.Sub(in.Start).Hours() / 24)
	return DateDiff{Days: days, Weeks: days / 7, Rest: days % 7}
}

func (f *DateDiffForm) Evaluate() form.Outcome {
	return form.Render(form.Map(f.Validate(), DaysBetween), func(d DateDiff) []string {
		return []string{
			fmt.Sprintf("%d days", d.Days),
			fmt.Sprintf("%d weeks and %d days", d.Weeks, d.Rest),
		}
	})
}
