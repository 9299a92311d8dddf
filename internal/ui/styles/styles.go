package styles

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
)

// Symbols - Unicode with ASCII fallbacks
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
	SymbolArrow   = "→"
	SymbolChevron = "›"
	SymbolPlus    = "+"
)

var forceNoColor atomic.Bool

// SetNoColor disables colors regardless of the environment (--no-color)
func SetNoColor(v bool) {
	forceNoColor.Store(v)
}

// NoColor checks if colors should be disabled
func NoColor() bool {
	return forceNoColor.Load() || os.Getenv("NO_COLOR") != "" || os.Getenv("GRIDSHEET_NO_COLOR") != ""
}

// IsAccessible checks if accessibility mode is enabled
// When enabled: no scroll animation
func IsAccessible() bool {
	return os.Getenv("GRIDSHEET_ACCESSIBLE") == "1" || os.Getenv("GRIDSHEET_ACCESSIBLE") == "true"
}

// Base text styles
var (
	Bold      = lipgloss.NewStyle().Bold(true)
	Dim       = lipgloss.NewStyle().Foreground(Muted)
	Underline = lipgloss.NewStyle().Underline(true)
)

// Semantic styles - use these instead of raw colors
var (
	// Message types
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)

	// Chrome
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(TextPrimary)
	BreadcrumbDim  = lipgloss.NewStyle().Foreground(TextSecondary)
	ButtonStyle    = lipgloss.NewStyle().Padding(0, 1).Foreground(TextPrimary)
	PrimaryButton  = lipgloss.NewStyle().Padding(0, 1).Background(Accent).Foreground(TextPrimary).Bold(true)
	TabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(TextSecondary)
	ActiveTabStyle = lipgloss.NewStyle().Padding(0, 2).Background(Accent).Foreground(TextPrimary).Bold(true)

	// Grid
	HeaderCell   = lipgloss.NewStyle().Bold(true).Foreground(TextPrimary).Background(BgBorder)
	GutterCell   = lipgloss.NewStyle().Foreground(Muted)
	ActiveCell   = lipgloss.NewStyle().Background(Accent).Foreground(TextPrimary)
	SelectedCell = lipgloss.NewStyle().Background(BgHighlight).Foreground(TextPrimary)
	LinkStyle    = lipgloss.NewStyle().Foreground(ColorLink).Underline(true)

	// Help bar
	HelpKey   = lipgloss.NewStyle().Foreground(Accent)
	HelpValue = lipgloss.NewStyle().Foreground(Muted)
)

// ═══════════════════════════════════════════════════════════════════════════
// Render functions - centralized formatting with NoColor support
// ═══════════════════════════════════════════════════════════════════════════

// Render applies a style if colors are enabled
func Render(s lipgloss.Style, text string) string {
	if NoColor() {
		return text
	}
	return s.Render(text)
}

// StatusStyle returns the pill style for a job status
func StatusStyle(status string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch status {
	case "In-process":
		return base.Foreground(ColorInProcess)
	case "Need to start":
		return base.Foreground(ColorNeedToStart)
	case "Complete":
		return base.Foreground(ColorComplete)
	case "Blocked":
		return base.Foreground(ColorBlocked)
	default:
		return base.Foreground(TextSecondary)
	}
}

// PriorityStyle returns the label style for a priority
func PriorityStyle(priority string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch priority {
	case "High":
		return base.Foreground(ColorHigh)
	case "Medium":
		return base.Foreground(ColorMedium)
	case "Low":
		return base.Foreground(ColorLow)
	default:
		return lipgloss.NewStyle()
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Message formatters - structured output
// ═══════════════════════════════════════════════════════════════════════════

// SuccessMsg formats a success message with checkmark
func SuccessMsg(msg string) string {
	symbol := SymbolSuccess
	if NoColor() {
		symbol = "+"
	}
	return fmt.Sprintf("%s %s", Render(SuccessStyle, symbol), msg)
}

// ErrorMsg formats an error message
func ErrorMsg(title string) string {
	return Render(ErrorStyle, "Error: "+title)
}

// WarningMsg formats a warning message
func WarningMsg(msg string) string {
	symbol := SymbolWarning
	if NoColor() {
		symbol = "!"
	}
	return fmt.Sprintf("%s %s", Render(WarningStyle, symbol), msg)
}

// InfoMsg formats an info message
func InfoMsg(msg string) string {
	return Render(InfoStyle, msg)
}

// MutedMsg formats muted/secondary text
func MutedMsg(msg string) string {
	return Render(MutedStyle, msg)
}

// HelpLine formats a help line (key description)
func HelpLine(key, description string) string {
	return fmt.Sprintf("%s %s", Render(HelpKey, key), Render(HelpValue, description))
}

// Boldf formats and renders bold text
func Boldf(format string, a ...any) string { return Render(Bold, fmt.Sprintf(format, a...)) }

// Errorf formats and renders error-colored text
func Errorf(format string, a ...any) string { return Render(ErrorStyle, fmt.Sprintf(format, a...)) }

// Successf formats and renders success-colored text
func Successf(format string, a ...any) string {
	return Render(SuccessStyle, fmt.Sprintf(format, a...))
}

// Warningf formats and renders warning-colored text
func Warningf(format string, a ...any) string {
	return Render(WarningStyle, fmt.Sprintf(format, a...))
}

// Mute renders muted text
func Mute(s string) string { return Render(MutedStyle, s) }
