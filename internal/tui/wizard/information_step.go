package wizard

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/tourdeck/tourdeck/internal/catalog"
)

// highlightRow is one editable highlight (title + description pair).
type highlightRow struct {
	title       textinput.Model
	description textinput.Model
}

func newHighlightRow(h catalog.Highlight) highlightRow {
	row := highlightRow{
		title:       newInput("Highlight title"),
		description: newInput("Highlight description"),
	}
	row.title.SetValue(h.Title)
	row.description.SetValue(h.Description)
	return row
}

// InformationStep edits the free-text information section and its
// highlight list. At least one highlight row is always present.
type InformationStep struct {
	description textarea.Model
	highlights  []highlightRow

	// focusIndex 0 is the textarea; highlight fields follow in pairs.
	focusIndex int
	err        string
	width      int
	height     int
}

// NewInformationStep creates the information form, prefilled from the draft.
func NewInformationStep(info *catalog.Information) *InformationStep {
	ta := textarea.New()
	ta.Placeholder = "What should travellers know about this tour?"
	ta.CharLimit = 2000
	ta.SetHeight(5)
	ta.SetWidth(modalContentWidth - 10)
	ta.Focus()

	s := &InformationStep{description: ta}

	if info != nil {
		s.description.SetValue(info.InfoDescription)
		for _, h := range info.Highlights {
			s.highlights = append(s.highlights, newHighlightRow(h))
		}
	}
	if len(s.highlights) == 0 {
		s.highlights = append(s.highlights, newHighlightRow(catalog.Highlight{}))
	}
	return s
}

// Init initializes the information step.
func (s *InformationStep) Init() tea.Cmd {
	return textarea.Blink
}

// SetSize updates the dimensions for the information step.
func (s *InformationStep) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// fieldCount is the total focusable field count: textarea + 2 per highlight.
func (s *InformationStep) fieldCount() int {
	return 1 + len(s.highlights)*2
}

// Focus gives focus to the first field.
func (s *InformationStep) Focus() {
	s.focusIndex = 0
	s.updateFocus()
}

// FocusLast gives focus to the last field.
func (s *InformationStep) FocusLast() {
	s.focusIndex = s.fieldCount() - 1
	s.updateFocus()
}

// Blur removes focus from all fields.
func (s *InformationStep) Blur() {
	s.focusIndex = -1
	s.updateFocus()
}

func (s *InformationStep) updateFocus() {
	s.description.Blur()
	for i := range s.highlights {
		s.highlights[i].title.Blur()
		s.highlights[i].description.Blur()
	}

	if s.focusIndex == 0 {
		s.description.Focus()
		return
	}
	if s.focusIndex > 0 {
		row := (s.focusIndex - 1) / 2
		if row < len(s.highlights) {
			if (s.focusIndex-1)%2 == 0 {
				s.highlights[row].title.Focus()
			} else {
				s.highlights[row].description.Focus()
			}
		}
	}
}

// focusedRow returns the highlight row index under focus, or -1.
func (s *InformationStep) focusedRow() int {
	if s.focusIndex < 1 {
		return -1
	}
	return (s.focusIndex - 1) / 2
}

// Update handles messages for the information step.
func (s *InformationStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab":
			if s.focusIndex == s.fieldCount()-1 {
				return func() tea.Msg { return TabExitForwardMsg{} }
			}
			s.focusIndex++
			s.updateFocus()
			return nil
		case "shift+tab":
			if s.focusIndex == 0 {
				return func() tea.Msg { return TabExitBackwardMsg{} }
			}
			s.focusIndex--
			s.updateFocus()
			return nil
		case "ctrl+a":
			s.highlights = append(s.highlights, newHighlightRow(catalog.Highlight{}))
			s.focusIndex = s.fieldCount() - 2 // Title of the new row
			s.updateFocus()
			return nil
		case "ctrl+r":
			// Removing below one row is refused, the section needs a highlight.
			if row := s.focusedRow(); row >= 0 && len(s.highlights) > 1 {
				s.highlights = append(s.highlights[:row], s.highlights[row+1:]...)
				if s.focusIndex >= s.fieldCount() {
					s.focusIndex = s.fieldCount() - 1
				}
				s.updateFocus()
			}
			return nil
		case "ctrl+d":
			return s.Submit()
		case "enter":
			if s.focusIndex != 0 {
				return s.Submit()
			}
		}
		s.err = ""
	}

	var cmd tea.Cmd
	if s.focusIndex == 0 {
		s.description, cmd = s.description.Update(msg)
		return cmd
	}
	if row := s.focusedRow(); row >= 0 && row < len(s.highlights) {
		if (s.focusIndex-1)%2 == 0 {
			s.highlights[row].title, cmd = s.highlights[row].title.Update(msg)
		} else {
			s.highlights[row].description, cmd = s.highlights[row].description.Update(msg)
		}
	}
	return cmd
}

// Submit validates the section and emits InformationSubmittedMsg on success.
func (s *InformationStep) Submit() tea.Cmd {
	info := catalog.Information{
		InfoDescription: strings.TrimSpace(s.description.Value()),
	}
	for _, row := range s.highlights {
		info.Highlights = append(info.Highlights, catalog.Highlight{
			Title:       strings.TrimSpace(row.title.Value()),
			Description: strings.TrimSpace(row.description.Value()),
		})
	}

	if err := catalog.ValidateInformation(&info); err != nil {
		s.err = err.Error()
		return nil
	}
	s.err = ""
	return func() tea.Msg {
		return InformationSubmittedMsg{Information: info}
	}
}

// View renders the information step.
func (s *InformationStep) View() string {
	var b strings.Builder

	b.WriteString(renderLabel("Information", s.focusIndex == 0))
	b.WriteString("\n")
	b.WriteString(s.description.View())
	b.WriteString("\n\n")

	for i, row := range s.highlights {
		titleIdx := 1 + i*2
		b.WriteString(renderLabel(fmt.Sprintf("Highlight %d", i+1),
			s.focusIndex == titleIdx || s.focusIndex == titleIdx+1))
		b.WriteString("\n")
		b.WriteString(row.title.View())
		b.WriteString("\n")
		b.WriteString(row.description.View())
		b.WriteString("\n")
	}

	if s.err != "" {
		b.WriteString("\n")
		b.WriteString(renderFieldError(s.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHintBar(
		"tab", "next field",
		"ctrl+a", "add highlight",
		"ctrl+r", "remove highlight",
		"ctrl+d", "save & continue",
	))

	return b.String()
}
