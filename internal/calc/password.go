package calc

import (
	"github.com/tinytelemetry/widgetdeck/internal/form"
)

const (
	MsgPasswordLength  = "Password length must be between 4 and 128"
	MsgPasswordDigits  = "Include digits must be yes or no"
	MsgPasswordSymbols = "Include symbols must be yes or no"

	letterSet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitSet  = "0123456789"
	symbolSet = "!@#$%^&*()-_=+[]{};:,.?"
)

type PasswordForm struct {
	length  string
	digits  string
	symbols string
	rng     Rand
}

func NewPasswordForm(rng Rand) *PasswordForm {
	if rng == nil {
		rng = DefaultRand()
	}
	return &PasswordForm{rng: rng}
}

func (f *PasswordForm) SetLength(v string)  { f.length = v }
func (f *PasswordForm) SetDigits(v string)  { f.digits = v }
func (f *PasswordForm) SetSymbols(v string) { f.symbols = v }
func (f *PasswordForm) Reset()              { f.length, f.digits, f.symbols = "", "", "" }
func (f *PasswordForm) Mode() form.Mode     { return form.OnSubmit }

func (f *PasswordForm) Fields() []form.Field {
	return []form.Field{
		{Name: "length", Label: "Length", Placeholder: "16", Get: func() string { return f.length }, Set: f.SetLength},
		{Name: "digits", Label: "Digits (y/n)", Placeholder: "y", Get: func() string { return f.digits }, Set: f.SetDigits},
		{Name: "symbols", Label: "Symbols (y/n)", Placeholder: "n", Get: func() string { return f.symbols }, Set: f.SetSymbols},
	}
}

type PasswordSpec struct {
	Length  int
	Digits  bool
	Symbols bool
}

func (f *PasswordForm) Validate() form.Result[PasswordSpec] {
	n, err := form.IntRange(f.length, 4, 128, MsgPasswordLength)
	if err != nil {
		return form.Fail[PasswordSpec](err)
	}
	digits, err := form.YesNo(f.digits, MsgPasswordDigits)
	if err != nil {
		return form.Fail[PasswordSpec](err)
	}
	symbols, err := form.YesNo(f.symbols, MsgPasswordSymbols)
	if err != nil {
		return form.Fail[PasswordSpec](err)
	}
	return form.Ok(PasswordSpec{Length: n, Digits: digits, Symbols: symbols})
}

// GeneratePassword draws spec.Length characters. Every enabled class
// contributes at least one character; positions are then shuffled.
func GeneratePassword(rng Rand, spec PasswordSpec) string {
	classes := []string{letterSet}
	if spec.Digits {
		classes = append(classes, digitSet)
	}
	if spec.Symbols {
		classes = append(classes, symbolSet)
	}
	pool := ""
	for _, c := range classes {
		pool += c
	}

	out := make([]byte, 0, spec.Length)
	for _, c := range classes {
		out = append(out, c[rng.IntN(len(c))])
	}
	for len(out) < spec.Length {
		out = append(out, pool[rng.IntN(len(pool))])
	}
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

func (f *PasswordForm) Evaluate() form.Outcome {
	return form.Render(f.Validate(), func(spec PasswordSpec) []string {
		return []string{GeneratePassword(f.rng, spec)}
	})
}
