package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cleardef/pkg/definitions"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary values
	colorGreen  = lipgloss.Color("35")  // Green - harvested components
	colorYellow = lipgloss.Color("220") // Amber - pending components
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleCoordinate = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue      = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim        = lipgloss.NewStyle().Foreground(colorDim)
	stylePending    = lipgloss.NewStyle().Foreground(colorYellow)
	styleHarvested  = lipgloss.NewStyle().Foreground(colorGreen)
	styleError      = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// Rendering
// =============================================================================

// renderDefinition formats one definition as a short multi-line summary.
func renderDefinition(def definitions.Definition) string {
	var b strings.Builder

	b.WriteString(styleCoordinate.Render(def.Coordinates.String()))
	b.WriteString("\n")

	if !def.Harvested() {
		b.WriteString("  " + stylePending.Render("pending") + styleDim.Render(" · not yet processed by the service") + "\n")
		return b.String()
	}

	b.WriteString("  " + styleHarvested.Render("harvested") + "\n")
	if def.Licensed != nil {
		declared := def.Licensed.Declared
		if declared == "" {
			declared = "(none declared)"
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", styleDim.Render("license:"), styleValue.Render(declared)))
	}
	if def.Described != nil {
		b.WriteString(fmt.Sprintf("  %s %s\n", styleDim.Render("released:"),
			styleValue.Render(def.Described.ReleaseDate.Format("2006-01-02"))))
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", styleDim.Render("score:"),
		styleValue.Render(fmt.Sprintf("%d (tool %d)", def.Scores.Effective, def.Scores.Tool))))
	b.WriteString(fmt.Sprintf("  %s %s\n", styleDim.Render("files:"),
		styleValue.Render(fmt.Sprintf("%d", len(def.Files)))))

	return b.String()
}

// renderError formats an error line for command output.
func renderError(err error) string {
	return styleError.Render("✗ ") + err.Error()
}
