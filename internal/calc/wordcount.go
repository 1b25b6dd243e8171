package calc

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tinytelemetry/widgetdeck/internal/form"
)

const (
	MsgWordCountText = "Please enter some text"
	wordsPerMinute   = 200
)

type WordCountForm struct {
	text string
}

func (f *WordCountForm) SetText(v string) { f.text = v }
func (f *WordCountForm) Reset()           { f.text = "" }
func (f *WordCountForm) Mode() form.Mode  { return form.Reactive }

func (f *WordCountForm) Fields() []form.Field {
	return []form.Field{
		{Name: "text", Label: "Text", Placeholder: "Type or paste text", Get: func() string { return f.text }, Set: f.SetText},
	}
}

type TextStats struct {
	Words          int
	Characters     int
	NonSpace       int
	Sentences      int
	ReadingMinutes int
}

func (f *WordCountForm) Validate() form.Result[string] {
	if _, err := form.Required(f.text, MsgWordCountText); err != nil {
		return form.Fail[string](err)
	}
	return form.Ok(f.text)
}

// CountText computes word, character and sentence counts. A sentence is a
// run of text terminated by '.', '!' or '?', plus a trailing unterminated run.
func CountText(text string) TextStats {
	st := TextStats{
		Words:      len(strings.Fields(text)),
		Characters: utf8.RuneCountInString(text),
	}
	inSentence := false
	for _, r := range text {
		if !unicode.IsSpace(r) {
			st.NonSpace++
		}
		switch {
		case r == '.' || r == '!' || r == '?':
			if inSentence {
				st.Sentences++
				inSentence = false
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			inSentence = true
		}
	}
	if inSentence {
		st.Sentences++
	}
	st.ReadingMinutes = (st.Words + wordsPerMinute - 1) / wordsPerMinute
	return st
}

func (f *WordCountForm) Evaluate() form.Outcome {
	return form.Render(form.Map(f.Validate(), CountText), func(st TextStats) []string {
		return []string{
			fmt.Sprintf("Words:      %d", st.Words),
			fmt.Sprintf("Characters: %d (%d without spaces)", st.Characters, st.NonSpace),
			fmt.Sprintf("Sentences:  %d", st.Sentences),
			fmt.Sprintf("Reading:    ~%d min", st.ReadingMinutes),
		}
	})
}
