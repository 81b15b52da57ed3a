// SPDX-License-Identifier: MPL-2.0

package cli

import "github.com/charmbracelet/lipgloss"

// Color palette - shared hex colors for consistent theming across the three
// binaries. Chosen for dark terminal backgrounds with good contrast.
const (
	// ColorSuccess is green - used for successful invocation outcomes.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - used for failures and non-2xx outcomes.
	ColorError = lipgloss.Color("#EF4444")

	// ColorMuted is gray - used for separators and supplementary details.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorHighlight is blue - used for target paths and endpoint names.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// SuccessStyle is for success messages and positive indicators.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// MutedStyle is for separators and de-emphasized content.
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// TargetStyle is for dotted target paths and endpoints.
	TargetStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)
