package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/dyluth/creational/internal/trace"
)

func init() {
	// Force color output even when not connected to TTY
	// Users can disable with NO_COLOR environment variable
	if os.Getenv("NO_COLOR") == "" {
		color.NoColor = false
	}
}

var (
	// Color definitions
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan, color.Bold)
)

// Printer renders trace events and CLI messages to a pair of writers.
// It implements trace.Sink, so a Printer can be handed straight to trace.New.
type Printer struct {
	out      io.Writer
	errOut   io.Writer
	headings int
}

// New creates a printer writing normal output to out and errors to errOut
func New(out, errOut io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Printer{out: out, errOut: errOut}
}

// Emit renders one trace event as a single line.
// Headings are separated from the previous section by a blank line.
func (p *Printer) Emit(e trace.Event) {
	switch e.Level {
	case trace.LevelHeading:
		if p.headings > 0 {
			fmt.Fprintln(p.out)
		}
		p.headings++
		cyan.Fprintf(p.out, "=== %s ===\n", e.Message)
	case trace.LevelWarn:
		p.Warning("%s\n", e.Message)
	case trace.LevelError:
		red.Fprintf(p.out, "%s\n", e.Message)
	default:
		p.Info("%s\n", e.Message)
	}
}

// Info prints an informational message in the default color
func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Warning prints a warning message in yellow with a warning emoji prefix
func (p *Printer) Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		yellow.Fprintf(p.out, "⚠️  %s", msg)
	} else {
		yellow.Fprint(p.out, msg)
	}
}

// Error creates a formatted error message with title, explanation, and suggestions
// Prints the formatted error to the error writer and returns a simple error for Cobra
func (p *Printer) Error(title string, explanation string, suggestions []string) error {
	red.Fprintf(p.errOut, "%s\n\n", title)

	fmt.Fprintf(p.errOut, "%s\n", explanation)

	if len(suggestions) > 0 {
		fmt.Fprintf(p.errOut, "\n")
		if len(suggestions) == 1 {
			fmt.Fprintf(p.errOut, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(p.errOut, "Either:\n")
			for i, suggestion := range suggestions {
				fmt.Fprintf(p.errOut, "  %d. %s\n", i+1, suggestion)
			}
		}
	}

	// Return simple error for Cobra (won't be printed due to SilenceErrors)
	return fmt.Errorf("%s", title)
}
