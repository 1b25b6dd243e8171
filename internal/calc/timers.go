package calc

import (
	"fmt"
	"time"

	"github.com/tinytelemetry/widgetdeck/internal/form"
)

// Stopwatch counts fixed-interval ticks while running. Every Start returns
// a new generation; ticks carrying an older generation are ignored, which
// is how a stopped (or restarted) watch drops its pending callback.
type Stopwatch struct {
	interval time.Duration
	ticks    int
	running  bool
	gen      int
}

func NewStopwatch(interval time.Duration) *Stopwatch {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Stopwatch{interval: interval}
}

func (s *Stopwatch) Interval() time.Duration { return s.interval }
func (s *Stopwatch) Running() bool           { return s.running }

// Start resumes counting and returns the generation its ticks must carry.
func (s *Stopwatch) Start() int {
	if !s.running {
		s.running = true
		s.gen++
	}
	return s.gen
}

func (s *Stopwatch) Stop() {
	if s.running {
		s.running = false
		s.gen++
	}
}

func (s *Stopwatch) Reset() {
	s.Stop()
	s.ticks = 0
}

// Tick advances the count when gen is current. It reports whether the
// caller should schedule another tick.
func (s *Stopwatch) Tick(gen int) bool {
	if !s.running || gen != s.gen {
		return false
	}
	s.ticks++
	return true
}

func (s *Stopwatch) Elapsed() time.Duration {
	return time.Duration(s.ticks) * s.interval
}

// FormatElapsed renders d as mm:ss.t.
func FormatElapsed(d time.Duration) string {
	tenths := int(d / (100 * time.Millisecond))
	return fmt.Sprintf("%02d:%02d.%d", tenths/600, (tenths/10)%60, tenths%10)
}

const (
	MsgCountdownSeconds = "Please enter a number of seconds between 1 and 86400"
	maxCountdownSeconds = 86400
)

// CountdownForm holds the countdown's start value.
type CountdownForm struct {
	seconds string
}

func (f *CountdownForm) SetSeconds(v string) { f.seconds = v }
func (f *CountdownForm) Reset()              { f.seconds = "" }
func (f *CountdownForm) Mode() form.Mode     { return form.OnSubmit }

func (f *CountdownForm) Fields() []form.Field {
	return []form.Field{
		{Name: "seconds", Label: "Seconds", Placeholder: "60", Get: func() string { return f.seconds }, Set: f.SetSeconds},
	}
}

func (f *CountdownForm) Validate() form.Result[int] {
	n, err := form.IntRange(f.seconds, 1, maxCountdownSeconds, MsgCountdownSeconds)
	if err != nil {
		return form.Fail[int](err)
	}
	return form.Ok(n)
}

// Countdown decrements once per second-tick until it reaches zero.
type Countdown struct {
	remaining int
	running   bool
	finished  bool
	gen       int
}

// Start arms the countdown and returns the generation for its ticks.
func (c *Countdown) Start(seconds int) int {
	c.remaining = seconds
	c.running = seconds > 0
	c.finished = false
	c.gen++
	return c.gen
}

func (c *Countdown) Stop() {
	c.running = false
	c.gen++
}

// Reset stops the countdown and clears it. Pending ticks stay stale.
func (c *Countdown) Reset() {
	c.Stop()
	c.remaining = 0
	c.finished = false
}

// Tick decrements when gen is current and reports whether to keep ticking.
func (c *Countdown) Tick(gen int) bool {
	if !c.running || gen != c.gen {
		return false
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		c.finished = true
		return false
	}
	return true
}

func (c *Countdown) Remaining() int { return c.remaining }
func (c *Countdown) Running() bool  { return c.running }

// Done reports that the last started run reached zero.
func (c *Countdown) Done() bool { return c.finished }
