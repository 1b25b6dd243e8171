package tracker

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/tinytelemetry/widgetdeck/internal/form"
	"github.com/tinytelemetry/widgetdeck/internal/model"
	"github.com/tinytelemetry/widgetdeck/internal/store"
)

const (
	MsgMoodRange = "Mood must be between 1 and 5"
	MinMood      = 1
	MaxMood      = 5
)

// MoodLabels names each mood value; index 0 is unused.
var MoodLabels = [MaxMood + 1]string{"", "Awful", "Bad", "Okay", "Good", "Great"}

// Mood records one mood per calendar day under model.KeyMood.
type Mood struct {
	repo *store.Repository[model.MoodLog]
	log  model.MoodLog
	env  Env
}

func NewMood(kv model.KV, env Env) *Mood {
	env = env.withDefaults()
	return &Mood{
		repo: store.NewRepository[model.MoodLog](kv, model.KeyMood, env.Logger),
		log:  model.MoodLog{},
		env:  env,
	}
}

func (m *Mood) Load(ctx context.Context) {
	log, err := m.repo.Load(ctx)
	if err != nil {
		m.env.Logger.Warn("load failed, starting empty", zap.String("key", model.KeyMood), zap.Error(err))
	}
	m.log = model.MoodLog{}
	for day, v := range log {
		if _, err := time.Parse(form.DateLayout, day); err != nil || v < MinMood || v > MaxMood {
			m.env.Logger.Warn("dropping invalid mood entry", zap.String("day", day), zap.Int("mood", v))
			continue
		}
		m.log[day] = v
	}
}

// SetToday records mood for the current day, replacing any earlier value.
func (m *Mood) SetToday(ctx context.Context, raw string) error {
	return m.Set(ctx, form.Day(m.env.Now()).Format(form.DateLayout), raw)
}

// Set validates raw as a mood and stores it for day (YYYY-MM-DD).
func (m *Mood) Set(ctx context.Context, day, raw string) error {
	if _, err := form.Date(day, "Please enter a valid date"); err != nil {
		return err
	}
	v, err := form.IntRange(raw, MinMood, MaxMood, MsgMoodRange)
	if err != nil {
		return err
	}
	next := make(model.MoodLog, len(m.log)+1)
	for k, x := range m.log {
		next[k] = x
	}
	next[day] = v
	if err := m.repo.Save(ctx, next); err != nil {
		return err
	}
	m.log = next
	return nil
}

// Today returns today's mood, or 0 when none is recorded.
func (m *Mood) Today() int {
	return m.log[form.Day(m.env.Now()).Format(form.DateLayout)]
}

// Counts returns how many days were recorded at each mood value.
func (m *Mood) Counts() [MaxMood + 1]int {
	var c [MaxMood + 1]int
	for _, v := range m.log {
		if v >= MinMood && v <= MaxMood {
			c[v]++
		}
	}
	return c
}

// Average returns the mean recorded mood, or 0 with no entries.
func (m *Mood) Average() float64 {
	if len(m.log) == 0 {
		return 0
	}
	sum := 0
	for _, v := range m.log {
		sum += v
	}
	return float64(sum) / float64(len(m.log))
}

// Days lists recorded days, most recent first.
func (m *Mood) Days() []string {
	days := make([]string, 0, len(m.log))
	for d := range m.log {
		days = append(days, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	return days
}

// On returns the mood recorded for day.
func (m *Mood) On(day string) int { return m.log[day] }
