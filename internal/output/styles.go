package output

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all console output.
const (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorError     = lipgloss.Color("#EF4444")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorHighlight = lipgloss.Color("#06B6D4")
)

var (
	// TitleStyle is for the intro banner.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SectionStyle is for section and table headers.
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)

	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	BoldStyle    = lipgloss.NewStyle().Bold(true)

	// CmdStyle highlights commands and compressed sizes.
	CmdStyle    = lipgloss.NewStyle().Foreground(ColorHighlight)
	ActionStyle = lipgloss.NewStyle().Foreground(ColorHighlight)
)
