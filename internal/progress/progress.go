// Package progress shows a fixed-length progress bar before the report.
// It paces the output only; it does not track any real work.
package progress

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	Total    = 6
	Interval = 400 * time.Millisecond

	description = "Gathering info"
	barWidth    = 40
)

type tickMsg struct{}

type model struct {
	bar       progress.Model
	completed int
	total     int
	interval  time.Duration
}

func newModel(total int, interval time.Duration) model {
	return model{
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(barWidth),
			progress.WithoutPercentage(),
		),
		total:    total,
		interval: interval,
	}
}

func (m model) Init() tea.Cmd {
	return m.tick()
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); !ok {
		return m, nil
	}
	m.completed++
	if m.completed >= m.total {
		m.completed = m.total
		return m, tea.Quit
	}
	return m, m.tick()
}

func (m model) View() string {
	ratio := float64(m.completed) / float64(m.total)
	return fmt.Sprintf("%s %s %3.0f%% %d/%d\n",
		description, m.bar.ViewAs(ratio), ratio*100, m.completed, m.total)
}

// Run draws the bar to w, advancing one unit per Interval until Total
func Run(ctx context.Context, w io.Writer) error {
	return run(ctx, w, Total, Interval)
}

func run(ctx context.Context, w io.Writer, total int, interval time.Duration) error {
	p := tea.NewProgram(newModel(total, interval),
		tea.WithContext(ctx),
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("progress bar interrupted: %w", err)
	}
	return nil
}
