package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/asciisketch/pkg/errors"
	"github.com/matzehuels/asciisketch/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleHeader      = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printError prints an error message.
func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printWarnings prints each layout warning with its input line, if known.
func printWarnings(w io.Writer, warnings []errors.Warning) {
	for _, warn := range warnings {
		if warn.Line > 0 {
			printWarning(w, "line %d: %s", warn.Line, warn.Message)
			continue
		}
		printWarning(w, "%s", warn.Message)
	}
}

// PrintError prints err the way commands report failures, without the code
// prefix.
func PrintError(w io.Writer, err error) {
	printError(w, "%s", errors.UserMessage(err))
}

// =============================================================================
// Stats Display
// =============================================================================

// renderStats formats a result's statistics as a table.
func renderStats(r *pipeline.Result) string {
	s := r.Stats
	rows := [][]string{
		{"mode", r.Mode.String()},
		{"kind", r.Kind},
		{"elements", strconv.Itoa(s.Elements)},
		{"connections", strconv.Itoa(s.Connections)},
		{"size", fmt.Sprintf("%dx%d", s.Width, s.Height)},
		{"warnings", strconv.Itoa(len(r.Warnings))},
	}
	if r.Kind == "flowchart" {
		rows = append(rows,
			[]string{"layers", strconv.Itoa(s.Layers)},
			[]string{"feedback", strconv.Itoa(s.Feedback)},
			[]string{"crossings", strconv.Itoa(s.Crossings)},
		)
	}
	rows = append(rows, []string{"collisions", strconv.Itoa(s.Collisions)})

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Stat", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 1 {
				return StyleNumber
			}
			return StyleDim
		})
	return t.Render()
}
