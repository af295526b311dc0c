// Package render draws collector results as bordered terminal panels and tables.
package render

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const defaultWidth = 80

// Console is the single output handle all rendering goes through
type Console struct {
	out   io.Writer
	r     *lipgloss.Renderer
	width int
	now   func() time.Time
}

// Option customises a Console
type Option func(*Console)

// WithWidth fixes the width used by full-width panels
func WithWidth(width int) Option {
	return func(c *Console) {
		if width > 0 {
			c.width = width
		}
	}
}

// WithClock replaces the wall clock used by the header
func WithClock(now func() time.Time) Option {
	return func(c *Console) { c.now = now }
}

// WithColorProfile forces a colour profile instead of detecting one
func WithColorProfile(profile termenv.Profile) Option {
	return func(c *Console) { c.r.SetColorProfile(profile) }
}

// NewConsole returns a Console writing to out
func NewConsole(out io.Writer, opts ...Option) *Console {
	c := &Console{
		out:   out,
		r:     lipgloss.NewRenderer(out),
		width: terminalWidth(out),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Writer returns the underlying output
func (c *Console) Writer() io.Writer {
	return c.out
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
