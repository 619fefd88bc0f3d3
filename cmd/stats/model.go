package main

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/uhey77/portfolio/internal/content"
	"github.com/uhey77/portfolio/internal/counter"
)

// frameInterval matches a 60 Hz display.
var frameInterval = time.Duration(harmonica.FPS(60) * float64(time.Second))

var (
	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Width(10).
			Align(lipgloss.Right).
			Foreground(lipgloss.Color("#6cc3ff"))

	labelStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#d0e6ff"})

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
)

type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type statRow struct {
	id       string
	label    string
	target   int
	suffix   string
	duration time.Duration
	task     *counter.Task
	frame    counter.Frame
}

// model plays every stat counter as if the rows scrolled into view one
// after another, each row taking reveal to become fully visible.
type model struct {
	rows      []statRow
	activator *counter.Activator
	start     time.Time
	stagger   time.Duration
	reveal    time.Duration
}

func newModel(site *content.Site, lang string, start time.Time) model {
	rows := make([]statRow, 0, len(site.Stats))
	for _, st := range site.Stats {
		target, suffix, d := counter.ParseAttrs(st.Value, st.Suffix, st.Duration)
		rows = append(rows, statRow{
			id:       st.ID,
			label:    st.Label.In(lang),
			target:   target,
			suffix:   suffix,
			duration: d,
			frame:    counter.Frame{Text: "0" + suffix},
		})
	}
	return model{
		rows:      rows,
		activator: counter.NewActivator(counter.DefaultThreshold),
		start:     start,
		stagger:   400 * time.Millisecond,
		reveal:    500 * time.Millisecond,
	}
}

func (m model) Init() tea.Cmd {
	return frameCmd()
}

// visibleRatio is how much of row i is on screen at elapsed.
func (m model) visibleRatio(i int, elapsed time.Duration) float64 {
	shown := elapsed - time.Duration(i)*m.stagger
	if shown <= 0 {
		return 0
	}
	return min(float64(shown)/float64(m.reveal), 1)
}

func (m model) advance(now time.Time) (model, bool) {
	elapsed := now.Sub(m.start)
	running := false
	for i := range m.rows {
		row := &m.rows[i]
		if row.task == nil && m.activator.Observe(row.id, m.visibleRatio(i, elapsed)) {
			row.task = counter.NewTask(row.target, row.suffix, row.duration, elapsed)
		}
		if row.task == nil {
			running = true
			continue
		}
		if row.task.Done() {
			continue
		}
		frame, more := row.task.Advance(elapsed)
		row.frame = frame
		running = running || more
	}
	return m, running
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case frameMsg:
		next, running := m.advance(time.Time(msg))
		if running {
			return next, frameCmd()
		}
		return next, nil
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	for _, row := range m.rows {
		b.WriteString(valueStyle.Render(row.frame.Text))
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("q: quit"))
	return b.String()
}
