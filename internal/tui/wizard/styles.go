package wizard

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tourdeck/tourdeck/internal/tui/theme"
)

// Modal layout constants
const (
	modalWidth        = 76                                                       // Total modal width including border
	modalPadding      = 2                                                        // Horizontal padding on each side
	modalBorderWidth  = 1                                                        // Border width on each side
	modalContentWidth = modalWidth - (modalPadding * 2) - (modalBorderWidth * 2) // 70
)

// inputStyles builds the shared textinput styling from the active theme.
func inputStyles() textinput.Styles {
	t := theme.Current()
	return textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	}
}

// newInput builds a textinput with the shared styling applied.
func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.SetStyles(inputStyles())
	ti.SetWidth(modalContentWidth - 10)
	return ti
}

// renderLabel renders a form field label, highlighted when focused.
func renderLabel(text string, focused bool) string {
	t := theme.Current()
	if focused {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)).Bold(true).Render(text)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)).Render(text)
}

// renderFieldError renders a validation error line under a field.
func renderFieldError(msg string) string {
	t := theme.Current()
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)).Render("✗ " + msg)
}

// renderSelect renders a cycling select control showing the active option.
func renderSelect(options []string, idx int, focused bool) string {
	t := theme.Current()
	var b strings.Builder
	for i, opt := range options {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == idx {
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(t.BgBase)).
				Background(lipgloss.Color(t.Secondary)).
				Padding(0, 1)
			if !focused {
				style = style.Background(lipgloss.Color(t.BgSurface2)).
					Foreground(lipgloss.Color(t.FgBase))
			}
			b.WriteString(style.Render(opt))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)).Padding(0, 1).Render(opt))
		}
	}
	return b.String()
}

// renderHintBar renders a hint bar with the given key-description pairs.
// Example: renderHintBar("tab", "next field", "enter", "save", "esc", "back")
func renderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	t := theme.Current()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted))
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgSurface2))

	var result string
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			result += " " + sepStyle.Render("•") + " "
		}
		result += keyStyle.Render(pairs[i]) + " " + descStyle.Render(pairs[i+1])
	}
	return result
}

// renderProgress renders the step indicator dots with the current step label.
func renderProgress(current int) string {
	t := theme.Current()
	var b strings.Builder
	for i := 0; i < StepCount; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		if i == current {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)).Render("●"))
		} else if i < current {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Render("●"))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)).Render("○"))
		}
	}
	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)).
		Render(stepLabel(current)))
	return b.String()
}
