package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/widgetdeck/internal/form"
	"github.com/tinytelemetry/widgetdeck/internal/tracker"
	"github.com/tinytelemetry/widgetdeck/internal/widget"
)

const moodRecentDays = 7

var moodColors = [tracker.MaxMood + 1]lipgloss.Color{"", "196", "208", "226", "118", "42"}

type moodPage struct {
	spec    widget.Spec
	mood    *tracker.Mood
	loaded  bool
	message string
}

func newMoodPage(spec widget.Spec, mood *tracker.Mood) *moodPage {
	return &moodPage{spec: spec, mood: mood}
}

func (p *moodPage) ID() string    { return p.spec.ID }
func (p *moodPage) Title() string { return p.spec.Title }
func (p *moodPage) Hints() string { return "1-5 set today's mood" }

func (p *moodPage) Init() tea.Cmd {
	if !p.loaded {
		p.mood.Load(context.Background())
		p.loaded = true
	}
	return nil
}

func (p *moodPage) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || km.Type != tea.KeyRunes || len(km.Runes) != 1 {
		return nil
	}
	r := km.Runes[0]
	if r < '0' || r > '9' {
		return nil
	}
	p.message = ""
	err := p.mood.SetToday(context.Background(), string(r))
	switch {
	case err == nil:
	case form.IsValidation(err):
		p.message = err.Error()
	default:
		return reportErr(err)
	}
	return nil
}

func (p *moodPage) View(width, height int) string {
	today := "Not recorded yet"
	if v := p.mood.Today(); v > 0 {
		today = fmt.Sprintf("%d (%s)", v, tracker.MoodLabels[v])
	}
	lines := []string{
		pageHeader(p.spec.Title, p.spec.Description),
		labelStyle.Render("Today: ") + okStyle.Render(today),
		inlineError(p.message),
		"",
		p.renderChart(width, max(6, height/2-2)),
		p.renderLegend(),
	}
	if avg := p.mood.Average(); avg > 0 {
		lines = append(lines, "", hintStyle.Render(fmt.Sprintf("Average %.1f over %d days", avg, len(p.mood.Days()))))
	}
	lines = append(lines, p.renderRecent())
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderChart draws how many days were logged at each mood value.
func (p *moodPage) renderChart(width, height int) string {
	counts := p.mood.Counts()
	if len(p.mood.Days()) == 0 {
		return placeholderStyle.Render("No moods logged yet. Press 1-5.")
	}
	bc := barchart.New(min(width, 40), height,
		barchart.WithBarGap(2),
		barchart.WithBarWidth(4),
	)
	for v := tracker.MinMood; v <= tracker.MaxMood; v++ {
		style := lipgloss.NewStyle().Foreground(moodColors[v]).Background(moodColors[v])
		bc.Push(barchart.BarData{
			Label: strconv.Itoa(v),
			Values: []barchart.BarValue{
				{Name: tracker.MoodLabels[v], Value: float64(counts[v]), Style: style},
			},
		})
	}
	bc.Draw()
	return bc.View()
}

func (p *moodPage) renderLegend() string {
	parts := make([]string, 0, tracker.MaxMood)
	for v := tracker.MinMood; v <= tracker.MaxMood; v++ {
		parts = append(parts, lipgloss.NewStyle().Foreground(moodColors[v]).Render(fmt.Sprintf("%d %s", v, tracker.MoodLabels[v])))
	}
	return strings.Join(parts, "  ")
}

func (p *moodPage) renderRecent() string {
	days := p.mood.Days()
	if len(days) > moodRecentDays {
		days = days[:moodRecentDays]
	}
	rows := make([]string, 0, len(days))
	for _, d := range days {
		v := p.mood.On(d)
		rows = append(rows, hintStyle.Render(d)+"  "+lipgloss.NewStyle().Foreground(moodColors[v]).Render(strings.Repeat("●", v)))
	}
	return strings.Join(rows, "\n")
}
