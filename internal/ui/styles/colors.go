package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
// Dark mode optimized, semantic colors
var (
	// Primary semantic colors
	Accent  = lipgloss.Color("#4F46E5") // indigo-600 - primary actions, active cell
	Success = lipgloss.Color("#10B981") // emerald-500 - success, complete
	Warning = lipgloss.Color("#F59E0B") // amber-500 - warnings, need to start
	Error   = lipgloss.Color("#EF4444") // red-500 - errors, blocked, high priority
	Info    = lipgloss.Color("#3B82F6") // blue-500 - info, in progress, links
	Muted   = lipgloss.Color("#6B7280") // gray-500 - secondary text

	// Text colors
	TextPrimary   = lipgloss.Color("#F9FAFB") // gray-50 - main text
	TextSecondary = lipgloss.Color("#9CA3AF") // gray-400 - descriptions

	// Background colors
	BgHighlight = lipgloss.Color("#1F2937") // gray-800 - selected cells
	BgBorder    = lipgloss.Color("#374151") // gray-700 - borders, header row
)

// Semantic color aliases for clarity
var (
	// Status pills
	ColorInProcess   = Info
	ColorNeedToStart = Warning
	ColorComplete    = Success
	ColorBlocked     = Error

	// Priority labels
	ColorHigh   = Error
	ColorMedium = lipgloss.Color("#F97316") // orange-500
	ColorLow    = Muted

	ColorLink = Info
)
