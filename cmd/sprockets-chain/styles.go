// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all CLI output. Tuned for dark terminal backgrounds.
const (
	// ColorPrimary is purple - used for titles and entry points.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for subtitles and de-emphasized content.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for success states and checkmarks.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - used for errors and failures.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for warnings and stubbed files.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for keys, commands and directives.
	ColorHighlight = lipgloss.Color("#3B82F6")

	// ColorVerbose is light gray - used for tree branches and verbose details.
	ColorVerbose = lipgloss.Color("#9CA3AF")
)

var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages and positive indicators.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages and caution indicators.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for configuration keys, command names and code.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// VerboseStyle is for verbose output and supplementary information.
	VerboseStyle = lipgloss.NewStyle().
			Foreground(ColorVerbose)

	treeRootStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	treeEnumeratorStyle = lipgloss.NewStyle().
				Foreground(ColorVerbose).
				MarginRight(1)

	treeDirectiveStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight)

	treeStubStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Strikethrough(true)
)
