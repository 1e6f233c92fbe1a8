package wizard

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/tourdeck/tourdeck/internal/catalog"
)

// Field indices for the basic step focus order.
const (
	fieldName = iota
	fieldDescription
	fieldPrice
	fieldPriceUnit
	fieldParticipants
	fieldParticipantType
	fieldRating
	fieldReviewCount
	fieldDestination
	fieldDepartureDate
	fieldImage
	basicFieldCount
)

// Option lists for the cycling selects.
var (
	priceUnits       = []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD"}
	participantTypes = []string{"person", "group", "couple"}
)

// BasicStep edits the scalar tour fields that seed a new draft.
type BasicStep struct {
	name          textinput.Model
	description   textarea.Model
	price         textinput.Model
	participants  textinput.Model
	rating        textinput.Model
	reviewCount   textinput.Model
	destination   textinput.Model
	departureDate textinput.Model
	image         textinput.Model

	priceUnitIdx       int
	participantTypeIdx int

	focusIndex int
	fieldErrs  map[int]string
	err        string
	width      int
	height     int
}

// NewBasicStep creates the basic form, prefilled from the current draft.
func NewBasicStep(t catalog.Tour) *BasicStep {
	s := &BasicStep{
		name:          newInput("e.g. 'Island Hopping in the Cyclades'"),
		price:         newInput("0.00"),
		participants:  newInput("1-100"),
		rating:        newInput("0.0-5.0"),
		reviewCount:   newInput("0"),
		destination:   newInput("e.g. 'Cyclades, Greece'"),
		departureDate: newInput("YYYY-MM-DD"),
		image:         newInput("https://... (.jpg .png .webp .gif)"),
		fieldErrs:     map[int]string{},
	}

	s.name.CharLimit = 100

	ta := textarea.New()
	ta.Placeholder = "Describe the tour (20-1000 characters)..."
	ta.CharLimit = 1000
	ta.SetHeight(4)
	ta.SetWidth(modalContentWidth - 10)
	s.description = ta

	if t.Name != "" {
		s.name.SetValue(t.Name)
	}
	if t.Description != "" {
		s.description.SetValue(t.Description)
	}
	if t.Price != 0 {
		s.price.SetValue(strconv.FormatFloat(t.Price, 'f', -1, 64))
	}
	if t.Participants != 0 {
		s.participants.SetValue(strconv.Itoa(t.Participants))
	}
	if t.Rating != 0 {
		s.rating.SetValue(strconv.FormatFloat(t.Rating, 'f', -1, 64))
	}
	if t.ReviewCount != 0 {
		s.reviewCount.SetValue(strconv.Itoa(t.ReviewCount))
	}
	if t.Destination != "" {
		s.destination.SetValue(t.Destination)
	}
	if t.DepartureDate != "" {
		s.departureDate.SetValue(t.DepartureDate)
	}
	if t.Image != "" {
		s.image.SetValue(t.Image)
	}
	for i, u := range priceUnits {
		if u == t.PriceUnit {
			s.priceUnitIdx = i
		}
	}
	for i, pt := range participantTypes {
		if pt == t.ParticipantType {
			s.participantTypeIdx = i
		}
	}

	s.name.Focus()
	return s
}

// Init initializes the basic step.
func (s *BasicStep) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize updates the dimensions for the basic step.
func (s *BasicStep) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Focus gives focus to the first field.
func (s *BasicStep) Focus() {
	s.focusIndex = fieldName
	s.updateFocus()
}

// FocusLast gives focus to the last field.
func (s *BasicStep) FocusLast() {
	s.focusIndex = fieldImage
	s.updateFocus()
}

// Blur removes focus from all fields.
func (s *BasicStep) Blur() {
	s.focusIndex = -1
	s.updateFocus()
}

func (s *BasicStep) isSelect(idx int) bool {
	return idx == fieldPriceUnit || idx == fieldParticipantType
}

// Update handles messages for the basic step.
func (s *BasicStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab":
			if s.focusIndex == basicFieldCount-1 {
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
			if s.focusIndex != fieldDescription {
				return s.Submit()
			}
		case "left", "right", " ":
			if s.isSelect(s.focusIndex) {
				s.cycleSelect(keyMsg.String() != "left")
				return nil
			}
		}
		delete(s.fieldErrs, s.focusIndex)
		s.err = ""
	}

	var cmd tea.Cmd
	switch s.focusIndex {
	case fieldName:
		s.name, cmd = s.name.Update(msg)
	case fieldDescription:
		s.description, cmd = s.description.Update(msg)
	case fieldPrice:
		s.price, cmd = s.price.Update(msg)
	case fieldParticipants:
		s.participants, cmd = s.participants.Update(msg)
	case fieldRating:
		s.rating, cmd = s.rating.Update(msg)
	case fieldReviewCount:
		s.reviewCount, cmd = s.reviewCount.Update(msg)
	case fieldDestination:
		s.destination, cmd = s.destination.Update(msg)
	case fieldDepartureDate:
		s.departureDate, cmd = s.departureDate.Update(msg)
	case fieldImage:
		s.image, cmd = s.image.Update(msg)
	}
	return cmd
}

func (s *BasicStep) cycleSelect(forward bool) {
	delta := 1
	if !forward {
		delta = -1
	}
	switch s.focusIndex {
	case fieldPriceUnit:
		s.priceUnitIdx = (s.priceUnitIdx + delta + len(priceUnits)) % len(priceUnits)
	case fieldParticipantType:
		s.participantTypeIdx = (s.participantTypeIdx + delta + len(participantTypes)) % len(participantTypes)
	}
}

func (s *BasicStep) updateFocus() {
	s.name.Blur()
	s.description.Blur()
	s.price.Blur()
	s.participants.Blur()
	s.rating.Blur()
	s.reviewCount.Blur()
	s.destination.Blur()
	s.departureDate.Blur()
	s.image.Blur()

	switch s.focusIndex {
	case fieldName:
		s.name.Focus()
	case fieldDescription:
		s.description.Focus()
	case fieldPrice:
		s.price.Focus()
	case fieldParticipants:
		s.participants.Focus()
	case fieldRating:
		s.rating.Focus()
	case fieldReviewCount:
		s.reviewCount.Focus()
	case fieldDestination:
		s.destination.Focus()
	case fieldDepartureDate:
		s.departureDate.Focus()
	case fieldImage:
		s.image.Focus()
	}
}

// Submit parses and validates the form, emitting BasicSubmittedMsg on success.
func (s *BasicStep) Submit() tea.Cmd {
	t, ok := s.parse()
	if !ok {
		return nil
	}
	if err := catalog.ValidateBasic(&t); err != nil {
		s.err = err.Error()
		return nil
	}
	s.err = ""
	return func() tea.Msg {
		return BasicSubmittedMsg{Tour: t}
	}
}

// parse collects field values into a partial tour. Numeric parse failures
// are recorded as per-field errors.
func (s *BasicStep) parse() (catalog.Tour, bool) {
	s.fieldErrs = map[int]string{}
	ok := true

	t := catalog.Tour{
		Name:            strings.TrimSpace(s.name.Value()),
		Description:     strings.TrimSpace(s.description.Value()),
		PriceUnit:       priceUnits[s.priceUnitIdx],
		ParticipantType: participantTypes[s.participantTypeIdx],
		Destination:     strings.TrimSpace(s.destination.Value()),
		DepartureDate:   strings.TrimSpace(s.departureDate.Value()),
		Image:           strings.TrimSpace(s.image.Value()),
	}

	// The departure date defaults to today when left blank.
	if t.DepartureDate == "" {
		t.DepartureDate = time.Now().Format("2006-01-02")
	}

	if v := strings.TrimSpace(s.price.Value()); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.fieldErrs[fieldPrice] = "price must be a number"
			ok = false
		} else {
			t.Price = f
		}
	}
	if v := strings.TrimSpace(s.participants.Value()); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.fieldErrs[fieldParticipants] = "participants must be a whole number"
			ok = false
		} else {
			t.Participants = n
		}
	}
	if v := strings.TrimSpace(s.rating.Value()); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.fieldErrs[fieldRating] = "rating must be a number"
			ok = false
		} else {
			t.Rating = f
		}
	}
	if v := strings.TrimSpace(s.reviewCount.Value()); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.fieldErrs[fieldReviewCount] = "review count must be a whole number"
			ok = false
		} else {
			t.ReviewCount = n
		}
	}

	return t, ok
}

// View renders the basic step.
func (s *BasicStep) View() string {
	var b strings.Builder

	s.writeField(&b, fieldName, "Tour Name", s.name.View())
	s.writeField(&b, fieldDescription, "Description", s.description.View())
	s.writeField(&b, fieldPrice, "Price", s.price.View())
	s.writeField(&b, fieldPriceUnit, "Currency",
		renderSelect(priceUnits, s.priceUnitIdx, s.focusIndex == fieldPriceUnit))
	s.writeField(&b, fieldParticipants, "Max Participants", s.participants.View())
	s.writeField(&b, fieldParticipantType, "Priced Per",
		renderSelect(participantTypes, s.participantTypeIdx, s.focusIndex == fieldParticipantType))
	s.writeField(&b, fieldRating, "Rating", s.rating.View())
	s.writeField(&b, fieldReviewCount, "Review Count", s.reviewCount.View())
	s.writeField(&b, fieldDestination, "Destination", s.destination.View())
	s.writeField(&b, fieldDepartureDate, "Departure Date (optional)", s.departureDate.View())
	s.writeField(&b, fieldImage, "Cover Image URL", s.image.View())

	if s.err != "" {
		b.WriteString("\n")
		b.WriteString(renderFieldError(s.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHintBar(
		"tab", "next field",
		"←/→", "pick option",
		"enter", "save & continue",
		"esc", "cancel",
	))

	return b.String()
}

func (s *BasicStep) writeField(b *strings.Builder, idx int, label, control string) {
	b.WriteString(renderLabel(label, s.focusIndex == idx))
	b.WriteString("\n")
	b.WriteString(control)
	b.WriteString("\n")
	if msg, ok := s.fieldErrs[idx]; ok {
		b.WriteString(renderFieldError(msg))
		b.WriteString("\n")
	}
}

func stepLabel(step int) string {
	names := [StepCount]string{
		"Basic Information",
		"Information & Highlights",
		"Tour Plan",
		"Location",
		"Gallery",
		"Review & Finalize",
	}
	if step < 0 || step >= StepCount {
		return ""
	}
	return fmt.Sprintf("Step %d of %d: %s", step+1, StepCount, names[step])
}
