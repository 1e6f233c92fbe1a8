package wizard

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/tourdeck/tourdeck/internal/catalog"
)

// dayRow is one editable itinerary day. Paragraphs are individual inputs;
// amenities are edited as a single comma-separated input.
type dayRow struct {
	title      textinput.Model
	paragraphs []textinput.Model
	amenities  textinput.Model
}

func newDayRow(d catalog.ItineraryDay) dayRow {
	row := dayRow{
		title:     newInput("Day title"),
		amenities: newInput("Amenities, comma separated"),
	}
	row.title.SetValue(d.Title)
	row.amenities.SetValue(strings.Join(d.Amenities, ", "))
	for _, p := range d.Description {
		in := newInput("What happens this day?")
		in.SetValue(p)
		row.paragraphs = append(row.paragraphs, in)
	}
	if len(row.paragraphs) == 0 {
		row.paragraphs = append(row.paragraphs, newInput("What happens this day?"))
	}
	return row
}

// fieldCount returns the focusable fields in this day: title + paragraphs + amenities.
func (r *dayRow) fieldCount() int {
	return 2 + len(r.paragraphs)
}

// PlanStep edits the itinerary section. Days keep sequential numbers;
// removing one renumbers the rest on submit.
type PlanStep struct {
	title textinput.Model
	days  []dayRow

	focusIndex int
	err        string
	width      int
	height     int
}

// NewPlanStep creates the plan form, prefilled from the draft.
func NewPlanStep(plan *catalog.TourPlan) *PlanStep {
	s := &PlanStep{
		title: newInput("e.g. 'Seven days, three islands'"),
	}
	s.title.Focus()

	if plan != nil {
		s.title.SetValue(plan.Title)
		for _, d := range plan.Itinerary {
			s.days = append(s.days, newDayRow(d))
		}
	}
	if len(s.days) == 0 {
		s.days = append(s.days, newDayRow(catalog.ItineraryDay{}))
	}
	return s
}

// Init initializes the plan step.
func (s *PlanStep) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize updates the dimensions for the plan step.
func (s *PlanStep) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *PlanStep) fieldCount() int {
	n := 1
	for i := range s.days {
		n += s.days[i].fieldCount()
	}
	return n
}

// locate maps focusIndex to the day and field within it.
// Returns day=-1 for the plan title. para is -1 for the day title,
// len(paragraphs) for amenities, else the paragraph index.
func (s *PlanStep) locate() (day, para int) {
	if s.focusIndex <= 0 {
		return -1, 0
	}
	idx := s.focusIndex - 1
	for i := range s.days {
		n := s.days[i].fieldCount()
		if idx < n {
			switch {
			case idx == 0:
				return i, -1
			case idx <= len(s.days[i].paragraphs):
				return i, idx - 1
			default:
				return i, len(s.days[i].paragraphs)
			}
		}
		idx -= n
	}
	return -1, 0
}

// Focus gives focus to the first field.
func (s *PlanStep) Focus() {
	s.focusIndex = 0
	s.updateFocus()
}

// FocusLast gives focus to the last field.
func (s *PlanStep) FocusLast() {
	s.focusIndex = s.fieldCount() - 1
	s.updateFocus()
}

// Blur removes focus from all fields.
func (s *PlanStep) Blur() {
	s.focusIndex = -1
	s.updateFocus()
}

func (s *PlanStep) updateFocus() {
	s.title.Blur()
	for i := range s.days {
		s.days[i].title.Blur()
		s.days[i].amenities.Blur()
		for j := range s.days[i].paragraphs {
			s.days[i].paragraphs[j].Blur()
		}
	}
	if s.focusIndex < 0 {
		return
	}

	day, para := s.locate()
	if day == -1 {
		s.title.Focus()
		return
	}
	switch {
	case para == -1:
		s.days[day].title.Focus()
	case para == len(s.days[day].paragraphs):
		s.days[day].amenities.Focus()
	default:
		s.days[day].paragraphs[para].Focus()
	}
}

// Update handles messages for the plan step.
func (s *PlanStep) Update(msg tea.Msg) tea.Cmd {
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
			s.days = append(s.days, newDayRow(catalog.ItineraryDay{}))
			s.focusIndex = s.fieldCount() - s.days[len(s.days)-1].fieldCount()
			s.updateFocus()
			return nil
		case "ctrl+r":
			// The itinerary keeps at least one day.
			if day, _ := s.locate(); day >= 0 && len(s.days) > 1 {
				s.days = append(s.days[:day], s.days[day+1:]...)
				if s.focusIndex >= s.fieldCount() {
					s.focusIndex = s.fieldCount() - 1
				}
				s.updateFocus()
			}
			return nil
		case "ctrl+p":
			if day, _ := s.locate(); day >= 0 {
				s.days[day].paragraphs = append(s.days[day].paragraphs,
					newInput("What happens this day?"))
				s.updateFocus()
			}
			return nil
		case "ctrl+x":
			// Each day keeps at least one paragraph.
			if day, para := s.locate(); day >= 0 && para >= 0 &&
				para < len(s.days[day].paragraphs) && len(s.days[day].paragraphs) > 1 {
				s.days[day].paragraphs = append(
					s.days[day].paragraphs[:para], s.days[day].paragraphs[para+1:]...)
				s.updateFocus()
			}
			return nil
		case "enter":
			return s.Submit()
		}
		s.err = ""
	}

	var cmd tea.Cmd
	day, para := s.locate()
	if day == -1 {
		s.title, cmd = s.title.Update(msg)
		return cmd
	}
	switch {
	case para == -1:
		s.days[day].title, cmd = s.days[day].title.Update(msg)
	case para == len(s.days[day].paragraphs):
		s.days[day].amenities, cmd = s.days[day].amenities.Update(msg)
	default:
		s.days[day].paragraphs[para], cmd = s.days[day].paragraphs[para].Update(msg)
	}
	return cmd
}

// Submit validates the section and emits PlanSubmittedMsg on success.
// Day numbers are assigned sequentially from the current row order.
func (s *PlanStep) Submit() tea.Cmd {
	plan := catalog.TourPlan{
		Title: strings.TrimSpace(s.title.Value()),
	}
	for i := range s.days {
		day := catalog.ItineraryDay{
			Day:   i + 1,
			Title: strings.TrimSpace(s.days[i].title.Value()),
		}
		for j := range s.days[i].paragraphs {
			if v := strings.TrimSpace(s.days[i].paragraphs[j].Value()); v != "" {
				day.Description = append(day.Description, v)
			}
		}
		for _, a := range strings.Split(s.days[i].amenities.Value(), ",") {
			if a = strings.TrimSpace(a); a != "" {
				day.Amenities = append(day.Amenities, a)
			}
		}
		plan.Itinerary = append(plan.Itinerary, day)
	}

	if err := catalog.ValidateTourPlan(&plan); err != nil {
		s.err = err.Error()
		return nil
	}
	s.err = ""
	return func() tea.Msg {
		return PlanSubmittedMsg{Plan: plan}
	}
}

// View renders the plan step.
func (s *PlanStep) View() string {
	var b strings.Builder

	b.WriteString(renderLabel("Plan Title", s.focusIndex == 0))
	b.WriteString("\n")
	b.WriteString(s.title.View())
	b.WriteString("\n\n")

	for i := range s.days {
		focusedDay, _ := s.locate()
		b.WriteString(renderLabel(fmt.Sprintf("Day %d", i+1), focusedDay == i))
		b.WriteString("\n")
		b.WriteString(s.days[i].title.View())
		b.WriteString("\n")
		for j := range s.days[i].paragraphs {
			b.WriteString(s.days[i].paragraphs[j].View())
			b.WriteString("\n")
		}
		b.WriteString(s.days[i].amenities.View())
		b.WriteString("\n")
	}

	if s.err != "" {
		b.WriteString("\n")
		b.WriteString(renderFieldError(s.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHintBar(
		"ctrl+a", "add day",
		"ctrl+r", "remove day",
		"ctrl+p", "add paragraph",
		"enter", "save & continue",
	))

	return b.String()
}
