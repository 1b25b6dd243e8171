package calc

import "github.com/tinytelemetry/widgetdeck/internal/form"

// Emojis is the picker's fixed set.
var Emojis = []string{
	"😀", "😂", "😍", "🤔", "😎", "🥳", "😴", "🤯",
	"👍", "🙌", "🎉", "🔥", "🌈", "🍕", "🚀", "🐱",
}

// EmojiPicker draws one emoji uniformly from Emojis on each evaluation.
type EmojiPicker struct {
	rng Rand
}

func NewEmojiPicker(rng Rand) *EmojiPicker {
	if rng == nil {
		rng = DefaultRand()
	}
	return &EmojiPicker{rng: rng}
}

func (p *EmojiPicker) Fields() []form.Field { return nil }
func (p *EmojiPicker) Mode() form.Mode      { return form.OnSubmit }
func (p *EmojiPicker) Reset()               {}

// PickEmoji returns a uniform draw from Emojis.
func PickEmoji(rng Rand) string {
	return Emojis[rng.IntN(len(Emojis))]
}

func (p *EmojiPicker) Evaluate() form.Outcome {
	return form.Outcome{Status: form.StatusOk, Lines: []string{PickEmoji(p.rng)}}
}
