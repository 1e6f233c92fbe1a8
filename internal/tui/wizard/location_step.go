package wizard

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/tourdeck/tourdeck/internal/catalog"
)

// LocationStep edits the flat location section.
type LocationStep struct {
	title             textinput.Model
	firstDescription  textinput.Model
	mapEmbed          textinput.Model
	secondDescription textinput.Model

	focusIndex int
	err        string
	width      int
	height     int
}

// NewLocationStep creates the location form, prefilled from the draft.
func NewLocationStep(loc *catalog.Location) *LocationStep {
	s := &LocationStep{
		title:             newInput("e.g. 'Cyclades archipelago'"),
		firstDescription:  newInput("Opening description"),
		mapEmbed:          newInput("https://www.google.com/maps/embed?..."),
		secondDescription: newInput("Closing description"),
	}
	if loc != nil {
		s.title.SetValue(loc.Title)
		s.firstDescription.SetValue(loc.FirstDescription)
		s.mapEmbed.SetValue(loc.MapEmbed)
		s.secondDescription.SetValue(loc.SecondDescription)
	}
	s.title.Focus()
	return s
}

// Init initializes the location step.
func (s *LocationStep) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize updates the dimensions for the location step.
func (s *LocationStep) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *LocationStep) inputs() []*textinput.Model {
	return []*textinput.Model{
		&s.title, &s.firstDescription, &s.mapEmbed, &s.secondDescription,
	}
}

// Focus gives focus to the first field.
func (s *LocationStep) Focus() {
	s.focusIndex = 0
	s.updateFocus()
}

// FocusLast gives focus to the last field.
func (s *LocationStep) FocusLast() {
	s.focusIndex = len(s.inputs()) - 1
	s.updateFocus()
}

// Blur removes focus from all fields.
func (s *LocationStep) Blur() {
	s.focusIndex = -1
	s.updateFocus()
}

func (s *LocationStep) updateFocus() {
	for i, in := range s.inputs() {
		if i == s.focusIndex {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// Update handles messages for the location step.
func (s *LocationStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab":
			if s.focusIndex == len(s.inputs())-1 {
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
		case "enter":
			return s.Submit()
		}
		s.err = ""
	}

	var cmd tea.Cmd
	if s.focusIndex >= 0 && s.focusIndex < len(s.inputs()) {
		in := s.inputs()[s.focusIndex]
		*in, cmd = in.Update(msg)
	}
	return cmd
}

// Submit validates the section and emits LocationSubmittedMsg on success.
func (s *LocationStep) Submit() tea.Cmd {
	loc := catalog.Location{
		Title:             strings.TrimSpace(s.title.Value()),
		FirstDescription:  strings.TrimSpace(s.firstDescription.Value()),
		MapEmbed:          strings.TrimSpace(s.mapEmbed.Value()),
		SecondDescription: strings.TrimSpace(s.secondDescription.Value()),
	}
	if err := catalog.ValidateLocation(&loc); err != nil {
		s.err = err.Error()
		return nil
	}
	s.err = ""
	return func() tea.Msg {
		return LocationSubmittedMsg{Location: loc}
	}
}

// View renders the location step.
func (s *LocationStep) View() string {
	var b strings.Builder

	labels := []string{"Location Title", "First Description", "Map Embed URL", "Second Description"}
	for i, in := range s.inputs() {
		b.WriteString(renderLabel(labels[i], s.focusIndex == i))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}

	if s.err != "" {
		b.WriteString(renderFieldError(s.err))
		b.WriteString("\n\n")
	}

	b.WriteString(renderHintBar(
		"tab", "next field",
		"enter", "save & continue",
		"esc", "back",
	))

	return b.String()
}
