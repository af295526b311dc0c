package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"
	"github.com/spf13/cast"

	"sysinspector/internal/system"
)

// KeyValueTable prints a two-column table of fields inside a panel of the same colour
func (c *Console) KeyValueTable(title string, fields system.Fields, colorName string) {
	rows := lo.Map(fields, func(f system.Field, _ int) []string {
		return []string{c.cell(f.Key), c.cell(f.Value)}
	})

	t := table.New().
		Border(doubleBorder).
		BorderStyle(c.r.NewStyle().Foreground(c.color(colorName))).
		StyleFunc(c.cellStyle).
		Rows(rows...)

	c.printTable(title, t, colorName)
}

// DiskTable prints one row per partition
func (c *Console) DiskTable(entries []system.DiskEntry) {
	rows := lo.Map(entries, func(e system.DiskEntry, _ int) []string {
		return []string{c.cell(e.Device), e.Total, e.Used, e.Free, e.Percent}
	})

	t := table.New().
		Border(roundedBorder).
		BorderStyle(c.bold("cyan")).
		Headers("Device", "Total", "Used", "Free", "Usage %").
		StyleFunc(c.cellStyle).
		Rows(rows...)

	c.printTable("Disk Usage", t, "cyan")
}

// GPUInfo prints the device table, or the failure message in a red panel
func (c *Console) GPUInfo(result system.GPUResult) {
	if result.Failed() {
		p := panel{
			border:     roundedBorder,
			edge:       c.bold("red"),
			titleStyle: c.bold("red"),
			title:      "GPU Info",
		}
		c.println(p.render(c.bold("red").Render(result.Message())))
		return
	}

	rows := lo.Map(result.Devices(), func(d system.GPUDevice, _ int) []string {
		return []string{c.cell(d.Name), c.cell(d.Driver), d.Memory, d.Utilization}
	})

	t := table.New().
		Border(squareBorder).
		BorderStyle(c.bold("green")).
		Headers("Name", "Driver", "Memory", "Utilization").
		StyleFunc(c.cellStyle).
		Rows(rows...)

	c.printTable("GPU Info", t, "green")
}

// printTable centres a bold title over the table and wraps both in a panel
func (c *Console) printTable(title string, t *table.Table, colorName string) {
	body := lipgloss.JoinVertical(lipgloss.Center,
		c.bold(colorName).Render(title),
		t.String(),
	)
	p := panel{
		border: roundedBorder,
		edge:   c.bold(colorName),
	}
	c.println(p.render(body))
}

func (c *Console) cellStyle(row, col int) lipgloss.Style {
	if row == table.HeaderRow {
		return c.r.NewStyle().Bold(true).Padding(0, 1)
	}
	return c.r.NewStyle().Padding(0, 1)
}

// cell stringifies v and truncates it to the cell width limit
func (c *Console) cell(v any) string {
	return runewidth.Truncate(cast.ToString(v), maxCellWidth, "…")
}
