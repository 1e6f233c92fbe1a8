package wizard

import (
	"os"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/editor"

	"github.com/tourdeck/tourdeck/internal/catalog"
	"github.com/tourdeck/tourdeck/internal/tui"
)

// ReviewStep shows the assembled draft as rendered markdown for a final
// read-through before finalization. The draft itself is not editable
// here; earlier steps own their sections.
type ReviewStep struct {
	viewport viewport.Model
	markdown string
	tmpFile  string
	width    int
	height   int
}

// NewReviewStep creates the review step from the current draft.
func NewReviewStep(draft catalog.Tour) *ReviewStep {
	vp := viewport.New(
		viewport.WithWidth(modalContentWidth),
		viewport.WithHeight(14),
	)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	md := tui.ComposeTourMarkdown(&draft)
	vp.SetContent(tui.RenderMarkdown(md, modalContentWidth))

	return &ReviewStep{
		viewport: vp,
		markdown: md,
		width:    modalContentWidth,
		height:   20,
	}
}

// Init initializes the review step.
func (s *ReviewStep) Init() tea.Cmd {
	return nil
}

// SetSize updates the dimensions for the review step.
func (s *ReviewStep) SetSize(width, height int) {
	s.width = width
	s.height = height

	s.viewport.SetWidth(width)
	viewportHeight := height - 2
	if viewportHeight < 5 {
		viewportHeight = 5
	}
	s.viewport.SetHeight(viewportHeight)
	s.viewport.SetContent(tui.RenderMarkdown(s.markdown, width))
}

// Focus is a no-op; the viewport has no input focus.
func (s *ReviewStep) Focus() {}

// Blur is a no-op; the viewport has no input focus.
func (s *ReviewStep) Blur() {}

// Update handles messages for the review step.
func (s *ReviewStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return func() tea.Msg { return FinalizeRequestedMsg{} }
		case "e":
			return s.openEditor()
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

// openEditor shows the draft summary in the user's $EDITOR. Changes made
// there are discarded; this is a reading convenience for long drafts.
func (s *ReviewStep) openEditor() tea.Cmd {
	tmpfile, err := os.CreateTemp("", "tourdeck_draft_*.md")
	if err != nil {
		return nil // Silently fail - editor not available
	}
	if _, err := tmpfile.WriteString(s.markdown); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return nil
	}
	_ = tmpfile.Close()
	s.tmpFile = tmpfile.Name()

	cmd, err := editor.Command("tourdeck", tmpfile.Name())
	if err != nil {
		_ = os.Remove(tmpfile.Name())
		return nil
	}

	tmp := tmpfile.Name()
	return tea.ExecProcess(cmd, func(error) tea.Msg {
		_ = os.Remove(tmp)
		return nil
	})
}

// View renders the review step.
func (s *ReviewStep) View() string {
	var b strings.Builder
	b.WriteString(s.viewport.View())
	b.WriteString("\n")
	b.WriteString(renderHintBar(
		"↑↓", "scroll",
		"e", "open in editor",
		"enter", "finalize",
		"esc", "back",
	))
	return b.String()
}
