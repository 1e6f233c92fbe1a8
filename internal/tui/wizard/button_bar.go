package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tourdeck/tourdeck/internal/tui/theme"
)

// ButtonID identifies which button was activated.
type ButtonID int

const (
	ButtonBack ButtonID = iota
	ButtonNext
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
)

// Button represents a single button in the button bar.
type Button struct {
	ID    ButtonID
	Label string
	State ButtonState
}

// ButtonBar manages a set of buttons with focus tracking.
// focusIndex is -1 while the step content holds focus.
type ButtonBar struct {
	buttons    []Button
	focusIndex int
	width      int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons:    buttons,
		focusIndex: -1,
		width:      modalContentWidth,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// FocusFirst focuses the first enabled button.
func (b *ButtonBar) FocusFirst() {
	for i, btn := range b.buttons {
		if btn.State != ButtonDisabled {
			b.focusIndex = i
			return
		}
	}
	b.focusIndex = -1
}

// FocusLast focuses the last enabled button.
func (b *ButtonBar) FocusLast() {
	for i := len(b.buttons) - 1; i >= 0; i-- {
		if b.buttons[i].State != ButtonDisabled {
			b.focusIndex = i
			return
		}
	}
	b.focusIndex = -1
}

// FocusNext moves focus to the next enabled button.
// Returns false when focus runs off the end of the bar.
func (b *ButtonBar) FocusNext() bool {
	for i := b.focusIndex + 1; i < len(b.buttons); i++ {
		if b.buttons[i].State != ButtonDisabled {
			b.focusIndex = i
			return true
		}
	}
	return false
}

// FocusPrev moves focus to the previous enabled button.
// Returns false when focus runs off the front of the bar.
func (b *ButtonBar) FocusPrev() bool {
	for i := b.focusIndex - 1; i >= 0; i-- {
		if b.buttons[i].State != ButtonDisabled {
			b.focusIndex = i
			return true
		}
	}
	return false
}

// Blur removes button focus.
func (b *ButtonBar) Blur() {
	b.focusIndex = -1
}

// FocusedButton returns the ID of the focused button, or -1 if none.
func (b *ButtonBar) FocusedButton() ButtonID {
	if b.focusIndex < 0 || b.focusIndex >= len(b.buttons) {
		return ButtonID(-1)
	}
	return b.buttons[b.focusIndex].ID
}

// Render renders the button bar with proper spacing and styling.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	t := theme.Current()

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBase)).
		Background(lipgloss.Color(t.BgSurface0)).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	disabledStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgMuted)).
		Background(lipgloss.Color(t.BgMantle)).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	focusedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.BgBase)).
		Background(lipgloss.Color(t.Secondary)).
		Bold(true).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	var rendered []string
	for i, btn := range b.buttons {
		switch {
		case i == b.focusIndex:
			rendered = append(rendered, focusedStyle.Render(btn.Label))
		case btn.State == ButtonDisabled:
			rendered = append(rendered, disabledStyle.Render(btn.Label))
		default:
			rendered = append(rendered, normalStyle.Render(btn.Label))
		}
	}

	result := strings.Join(rendered, "")
	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, result)
}

// CreateBackNextButtons creates the standard Back/Next button set.
func CreateBackNextButtons(backEnabled bool, nextLabel string) []Button {
	backState := ButtonNormal
	if !backEnabled {
		backState = ButtonDisabled
	}
	return []Button{
		{ID: ButtonBack, Label: "← Back", State: backState},
		{ID: ButtonNext, Label: nextLabel, State: ButtonNormal},
	}
}
