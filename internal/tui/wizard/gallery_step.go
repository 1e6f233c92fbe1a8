package wizard

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tourdeck/tourdeck/internal/catalog"
	"github.com/tourdeck/tourdeck/internal/tui/theme"
)

// GalleryStep edits the gallery section: span hints on stored images,
// removals, and staging local files for upload. Staged files are only
// read and sent when the step saves.
type GalleryStep struct {
	description textinput.Model
	pathInput   textinput.Model

	existing []catalog.GalleryImage
	pending  []catalog.GalleryUpload
	removed  []string

	maxImages  int
	focusIndex int
	err        string
	width      int
	height     int
}

// NewGalleryStep creates the gallery form, prefilled from the draft.
func NewGalleryStep(g *catalog.Gallery, maxImages int) *GalleryStep {
	s := &GalleryStep{
		description: newInput("A short gallery description"),
		pathInput:   newInput("Path to a local image file, enter to stage"),
		maxImages:   maxImages,
	}
	if g != nil {
		s.description.SetValue(g.GalleryDescription)
		s.existing = append(s.existing, g.Images...)
	}
	s.description.Focus()
	return s
}

// Init initializes the gallery step.
func (s *GalleryStep) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize updates the dimensions for the gallery step.
func (s *GalleryStep) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Focus order: description, existing entries, pending entries, path input.
func (s *GalleryStep) fieldCount() int {
	return 2 + len(s.existing) + len(s.pending)
}

func (s *GalleryStep) pathFieldIndex() int {
	return s.fieldCount() - 1
}

// focusedEntry returns the focused entry split into existing/pending index.
// Both are -1 when focus is on an input field.
func (s *GalleryStep) focusedEntry() (existingIdx, pendingIdx int) {
	idx := s.focusIndex - 1
	if idx < 0 || s.focusIndex == s.pathFieldIndex() {
		return -1, -1
	}
	if idx < len(s.existing) {
		return idx, -1
	}
	return -1, idx - len(s.existing)
}

// Focus gives focus to the first field.
func (s *GalleryStep) Focus() {
	s.focusIndex = 0
	s.updateFocus()
}

// FocusLast gives focus to the last field.
func (s *GalleryStep) FocusLast() {
	s.focusIndex = s.pathFieldIndex()
	s.updateFocus()
}

// Blur removes focus from all fields.
func (s *GalleryStep) Blur() {
	s.focusIndex = -1
	s.updateFocus()
}

func (s *GalleryStep) updateFocus() {
	s.description.Blur()
	s.pathInput.Blur()
	switch s.focusIndex {
	case 0:
		s.description.Focus()
	case s.pathFieldIndex():
		s.pathInput.Focus()
	}
}

// Update handles messages for the gallery step.
func (s *GalleryStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		key := keyMsg.String()
		switch key {
		case "tab", "down":
			if s.focusIndex == s.pathFieldIndex() {
				if key == "tab" {
					return func() tea.Msg { return TabExitForwardMsg{} }
				}
				return nil
			}
			s.focusIndex++
			s.updateFocus()
			return nil
		case "shift+tab", "up":
			if s.focusIndex == 0 {
				if key == "shift+tab" {
					return func() tea.Msg { return TabExitBackwardMsg{} }
				}
				return nil
			}
			s.focusIndex--
			s.updateFocus()
			return nil
		case "left", "right", "shift+left", "shift+right":
			if cmd, handled := s.adjustSpan(key); handled {
				return cmd
			}
		case "ctrl+r":
			s.removeFocused()
			return nil
		case "enter":
			if s.focusIndex == s.pathFieldIndex() {
				s.stageUpload()
				return nil
			}
		case "ctrl+d":
			return s.Submit()
		}
		s.err = ""
	}

	var cmd tea.Cmd
	switch s.focusIndex {
	case 0:
		s.description, cmd = s.description.Update(msg)
	case s.pathFieldIndex():
		s.pathInput, cmd = s.pathInput.Update(msg)
	}
	return cmd
}

// adjustSpan cycles the span hints on the focused image entry.
// Spans wrap within 1..3.
func (s *GalleryStep) adjustSpan(key string) (tea.Cmd, bool) {
	ei, pi := s.focusedEntry()
	if ei < 0 && pi < 0 {
		return nil, false
	}

	cycle := func(v, delta int) int {
		if v == 0 {
			v = 1
		}
		v += delta
		if v > 3 {
			v = 1
		}
		if v < 1 {
			v = 3
		}
		return v
	}

	delta := 1
	if key == "left" || key == "shift+left" {
		delta = -1
	}
	row := strings.HasPrefix(key, "shift+")

	if ei >= 0 {
		if row {
			s.existing[ei].RowSpan = cycle(s.existing[ei].RowSpan, delta)
		} else {
			s.existing[ei].ColSpan = cycle(s.existing[ei].ColSpan, delta)
		}
	} else {
		if row {
			s.pending[pi].RowSpan = cycle(s.pending[pi].RowSpan, delta)
		} else {
			s.pending[pi].ColSpan = cycle(s.pending[pi].ColSpan, delta)
		}
	}
	return nil, true
}

// removeFocused drops the focused entry. Stored images are recorded for
// server-side deletion; staged files are simply unstaged.
func (s *GalleryStep) removeFocused() {
	ei, pi := s.focusedEntry()
	switch {
	case ei >= 0:
		if s.existing[ei].Image != "" {
			s.removed = append(s.removed, s.existing[ei].Image)
		}
		s.existing = append(s.existing[:ei], s.existing[ei+1:]...)
	case pi >= 0:
		s.pending = append(s.pending[:pi], s.pending[pi+1:]...)
	default:
		return
	}
	if s.focusIndex >= s.fieldCount() {
		s.focusIndex = s.fieldCount() - 1
	}
	s.updateFocus()
}

// stageUpload checks the path input and stages it as a pending upload.
// The cap counts surviving stored images plus staged files.
func (s *GalleryStep) stageUpload() {
	path := strings.TrimSpace(s.pathInput.Value())
	if path == "" {
		return
	}
	if s.maxImages > 0 && len(s.existing)+len(s.pending) >= s.maxImages {
		s.err = fmt.Sprintf("gallery is full (max %d images)", s.maxImages)
		return
	}
	if err := catalog.CheckImageFile(path); err != nil {
		s.err = err.Error()
		return
	}
	s.pending = append(s.pending, catalog.NewGalleryUpload(path))
	s.pathInput.SetValue("")
	s.err = ""
}

// Submit validates the section locally and emits GallerySubmittedMsg.
// Placeholder entries for staged files are added by the persistence layer.
func (s *GalleryStep) Submit() tea.Cmd {
	desc := strings.TrimSpace(s.description.Value())
	if desc == "" {
		s.err = "gallery description is required"
		return nil
	}
	if len(s.existing)+len(s.pending) == 0 {
		s.err = "the gallery needs at least one image"
		return nil
	}

	gallery := catalog.Gallery{
		GalleryDescription: desc,
		Images:             append([]catalog.GalleryImage(nil), s.existing...),
	}
	uploads := append([]catalog.GalleryUpload(nil), s.pending...)
	removed := append([]string(nil), s.removed...)

	s.err = ""
	return func() tea.Msg {
		return GallerySubmittedMsg{Gallery: gallery, Uploads: uploads, Removed: removed}
	}
}

// View renders the gallery step.
func (s *GalleryStep) View() string {
	t := theme.Current()
	var b strings.Builder

	b.WriteString(renderLabel("Gallery Description", s.focusIndex == 0))
	b.WriteString("\n")
	b.WriteString(s.description.View())
	b.WriteString("\n\n")

	b.WriteString(renderLabel(
		fmt.Sprintf("Images (%d of %d)", len(s.existing)+len(s.pending), s.maxImages),
		false))
	b.WriteString("\n")

	entryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase))
	focusedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.BgBase)).
		Background(lipgloss.Color(t.Secondary))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted))

	if len(s.existing)+len(s.pending) == 0 {
		b.WriteString(mutedStyle.Render("  (no images yet)"))
		b.WriteString("\n")
	}

	for i, img := range s.existing {
		line := fmt.Sprintf("  %s  %s", trimTail(img.Image, 44),
			spanHint(img.ColSpan, img.RowSpan))
		if ei, _ := s.focusedEntry(); ei == i {
			b.WriteString(focusedStyle.Render(line))
		} else {
			b.WriteString(entryStyle.Render(line))
		}
		b.WriteString("\n")
	}
	for i, up := range s.pending {
		line := fmt.Sprintf("  %s  %s %s", trimTail(up.Path, 40),
			spanHint(up.ColSpan, up.RowSpan), "(staged)")
		if _, pi := s.focusedEntry(); pi == i {
			b.WriteString(focusedStyle.Render(line))
		} else {
			b.WriteString(mutedStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderLabel("Add Image", s.focusIndex == s.pathFieldIndex()))
	b.WriteString("\n")
	b.WriteString(s.pathInput.View())
	b.WriteString("\n")

	if s.err != "" {
		b.WriteString("\n")
		b.WriteString(renderFieldError(s.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHintBar(
		"←/→", "col span",
		"shift+←/→", "row span",
		"ctrl+r", "remove",
		"ctrl+d", "save & continue",
	))

	return b.String()
}

func spanHint(col, row int) string {
	if col == 0 {
		col = 1
	}
	if row == 0 {
		row = 1
	}
	return fmt.Sprintf("[%dx%d]", col, row)
}

func trimTail(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "…" + s[len(s)-max+1:]
}
