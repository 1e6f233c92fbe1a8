package theme

import "charm.land/lipgloss/v2"

// Styles contains pre-built lipgloss styles shared across the TUI.
type Styles struct {
	HeaderTitle lipgloss.Style
	Label       lipgloss.Style
	ErrorText   lipgloss.Style
	SuccessText lipgloss.Style
	Muted       lipgloss.Style
}
