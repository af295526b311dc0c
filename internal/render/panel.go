package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// panel is a bordered box. Title and subtitle sit in the top and bottom edges.
type panel struct {
	border     lipgloss.Border
	edge       lipgloss.Style
	titleStyle lipgloss.Style
	title      string
	subtitle   string
	// width is the outer width; zero fits the content
	width int
}

func (p panel) render(body string) string {
	lines := strings.Split(body, "\n")

	inner := lipgloss.Width(body) + 2
	for _, label := range []string{p.title, p.subtitle} {
		if label == "" {
			continue
		}
		if w := lipgloss.Width(label) + 4; w > inner {
			inner = w
		}
	}
	if p.width-2 > inner {
		inner = p.width - 2
	}

	var b strings.Builder
	b.WriteString(p.edge.Render(p.border.TopLeft))
	b.WriteString(p.rule(p.border.Top, p.title, inner))
	b.WriteString(p.edge.Render(p.border.TopRight))
	b.WriteByte('\n')

	left := p.edge.Render(p.border.Left)
	right := p.edge.Render(p.border.Right)
	for _, line := range lines {
		pad := inner - 2 - lipgloss.Width(line)
		b.WriteString(left)
		b.WriteByte(' ')
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", pad+1))
		b.WriteString(right)
		b.WriteByte('\n')
	}

	b.WriteString(p.edge.Render(p.border.BottomLeft))
	b.WriteString(p.rule(p.border.Bottom, p.subtitle, inner))
	b.WriteString(p.edge.Render(p.border.BottomRight))
	return b.String()
}

// rule draws an edge of width columns with label centred in it
func (p panel) rule(fill, label string, width int) string {
	if label == "" {
		return p.edge.Render(strings.Repeat(fill, width))
	}
	label = " " + label + " "
	lw := lipgloss.Width(label)
	before := (width - lw) / 2
	after := width - lw - before
	return p.edge.Render(strings.Repeat(fill, before)) +
		p.titleStyle.Render(label) +
		p.edge.Render(strings.Repeat(fill, after))
}
