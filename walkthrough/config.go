package walkthrough

import (
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config controls the appearance of the walkthrough output.
type Config struct {
	LineWidth int            // width of section rules, in ‘en’s
	Colored   bool           // color section headings
	Context   *uax11.Context // context for measuring display widths
}

// DefaultConfig returns a config for non-interactive output: no colors and
// a line width of 65.
func DefaultConfig() *Config {
	return &Config{
		LineWidth: 65,
		Context:   uax11.LatinContext,
	}
}

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are switched on
// for terminals only.
func ConfigFromTerminal() *Config {
	config := DefaultConfig()
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colored = !color.NoColor
		w, _, err := term.GetSize(fd)
		if err == nil {
			if w > 65 {
				config.LineWidth = 65
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	}
	config.Context = uax11.ContextFromEnvironment()
	T().P("walkthrough", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
