package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyluth/creational/internal/trace"
)

func newTestPrinter(t *testing.T) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	previous := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = previous })

	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	return New(out, errOut), out, errOut
}

func TestError(t *testing.T) {
	t.Run("returns error with title", func(t *testing.T) {
		p, _, errOut := newTestPrinter(t)
		err := p.Error("Test Error", "This is a test error", []string{})
		require.Error(t, err)
		require.Equal(t, "Test Error", err.Error())
		assert.Contains(t, errOut.String(), "This is a test error")
	})

	t.Run("prints a single suggestion without numbering", func(t *testing.T) {
		p, _, errOut := newTestPrinter(t)
		err := p.Error("Test Error", "Explanation", []string{"Try this fix"})
		require.Error(t, err)
		assert.Contains(t, errOut.String(), "Try this fix")
		assert.NotContains(t, errOut.String(), "Either:")
	})

	t.Run("numbers multiple suggestions", func(t *testing.T) {
		p, out, errOut := newTestPrinter(t)
		err := p.Error("Test Error", "Explanation", []string{
			"First option",
			"Second option",
		})
		require.Error(t, err)
		assert.Contains(t, errOut.String(), "Either:")
		assert.Contains(t, errOut.String(), "  1. First option")
		assert.Contains(t, errOut.String(), "  2. Second option")
		assert.Empty(t, out.String(), "errors go to the error writer only")
	})
}

func TestEmit(t *testing.T) {
	p, out, _ := newTestPrinter(t)
	tr := trace.New(p)

	tr.Heading("Factory Method Demo")
	tr.Info("Sending SMS to someone: hi")
	tr.Heading("Singleton Demo")
	tr.Warn("Connection already established")
	tr.Error("Error: no connection established")

	want := strings.Join([]string{
		"=== Factory Method Demo ===",
		"Sending SMS to someone: hi",
		"",
		"=== Singleton Demo ===",
		"⚠️  Connection already established",
		"Error: no connection established",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}
