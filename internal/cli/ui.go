package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleLabel   = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
)

// printTitle prints a bold section heading.
func printTitle(format string, args ...any) {
	fmt.Println(styleTitle.Render(fmt.Sprintf(format, args...)))
}

// printSuccess prints a success line with a check mark.
func printSuccess(format string, args ...any) {
	fmt.Printf("%s %s\n", styleSuccess.Render(iconSuccess), fmt.Sprintf(format, args...))
}

// printDetail prints a muted detail line, indented under the line above.
func printDetail(format string, args ...any) {
	fmt.Printf("  %s\n", styleDim.Render(fmt.Sprintf(format, args...)))
}

// printStat prints an aligned label/value pair with the value highlighted.
func printStat(label string, value any) {
	fmt.Printf("  %s %s\n", styleLabel.Render(fmt.Sprintf("%-12s", label)), styleNumber.Render(fmt.Sprint(value)))
}
