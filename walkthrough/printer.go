package walkthrough

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/collections/text"
)

// printer writes walkthrough lines and remembers the first write error.
type printer struct {
	w       io.Writer
	config  *Config
	heading *color.Color
	err     error
}

func newPrinter(w io.Writer, config *Config) *printer {
	if config == nil {
		config = DefaultConfig()
	}
	heading := color.New(color.FgBlue, color.Bold)
	if config.Colored {
		heading.EnableColor()
	} else {
		heading.DisableColor()
	}
	return &printer{w: w, config: config, heading: heading}
}

// section prints a heading, underlined to the display width of the title.
func (p *printer) section(title string) {
	if p.err != nil {
		return
	}
	T().Debugf("walkthrough: section %q", title)
	width := text.FromLiteral(title).Width(p.config.Context)
	width = min(max(width, 1), p.config.LineWidth)
	if _, err := p.heading.Fprintf(p.w, "\n%s\n%s\n", title, strings.Repeat("=", width)); err != nil {
		p.err = err
	}
}

func (p *printer) linef(format string, args ...any) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.w, format+"\n", args...); err != nil {
		p.err = err
	}
}
