package render

import "github.com/charmbracelet/lipgloss"

// Named colours map onto the basic ANSI palette
var colors = map[string]lipgloss.Color{
	"black":   lipgloss.Color("0"),
	"red":     lipgloss.Color("1"),
	"green":   lipgloss.Color("2"),
	"yellow":  lipgloss.Color("3"),
	"blue":    lipgloss.Color("4"),
	"magenta": lipgloss.Color("5"),
	"cyan":    lipgloss.Color("6"),
	"white":   lipgloss.Color("7"),
}

var (
	roundedBorder = lipgloss.RoundedBorder()
	squareBorder  = lipgloss.NormalBorder()
	doubleBorder  = lipgloss.DoubleBorder()
)

// maxCellWidth caps a single table cell, in terminal columns
const maxCellWidth = 64

func (c *Console) color(name string) lipgloss.TerminalColor {
	if col, ok := colors[name]; ok {
		return col
	}
	return lipgloss.NoColor{}
}

// bold returns the bold style in the named colour
func (c *Console) bold(name string) lipgloss.Style {
	return c.r.NewStyle().Bold(true).Foreground(c.color(name))
}
