package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette. 256-color codes so output looks the same on most terminals.
var (
	colorAccent = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorAmber  = lipgloss.Color("220")
	colorLabel  = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	// StyleTitle renders headings, such as the BINGO header of "show".
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// StyleDim renders muted text and table borders.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleKey         = lipgloss.NewStyle().Foreground(colorLabel).Width(10)
)

// status line prefixes
var (
	prefixOK   = lipgloss.NewStyle().Foreground(colorGreen).Render("✓")
	prefixWarn = lipgloss.NewStyle().Foreground(colorAmber).Render("!")
	prefixNote = lipgloss.NewStyle().Foreground(colorLabel).Render("›")
)

func status(w io.Writer, prefix, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

func printSuccess(w io.Writer, format string, args ...any) { status(w, prefixOK, format, args...) }
func printWarning(w io.Writer, format string, args ...any) { status(w, prefixWarn, format, args...) }
func printInfo(w io.Writer, format string, args ...any)    { status(w, prefixNote, format, args...) }

// printDetail prints an indented, dimmed line under a status line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintf(w, "  %s %s\n", styleKey.Render(key), value)
}
