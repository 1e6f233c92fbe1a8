// Package wizard implements the six-step tour creation flow. Each step is
// its own form component; this model routes messages between them, owns
// the draft store, and talks to the catalog service.
package wizard

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/tourdeck/tourdeck/internal/catalog"
	"github.com/tourdeck/tourdeck/internal/draft"
	"github.com/tourdeck/tourdeck/internal/logger"
	"github.com/tourdeck/tourdeck/internal/tui"
	"github.com/tourdeck/tourdeck/internal/tui/theme"
)

// Step indices, aliased from the draft store so both packages agree.
const (
	StepBasic       = draft.StepBasic
	StepInformation = draft.StepInformation
	StepTourPlan    = draft.StepTourPlan
	StepLocation    = draft.StepLocation
	StepGallery     = draft.StepGallery
	StepReview      = draft.StepReview

	StepCount = draft.StepCount
)

// blockedTargets maps a step whose precondition failed to the step shown
// instead. Targets cascade until a step's precondition holds.
var blockedTargets = map[int]int{
	StepInformation: StepBasic,
	StepTourPlan:    StepInformation,
	StepLocation:    StepTourPlan,
	StepGallery:     StepLocation,
	StepReview:      StepGallery,
}

// ErrCancelled is returned by Run when the user backs out of the wizard.
var ErrCancelled = errors.New("wizard cancelled")

// Service is the catalog persistence surface the wizard drives.
// *catalog.Client satisfies it.
type Service interface {
	CreateTour(ctx context.Context, draft *catalog.Tour) (*catalog.Tour, error)
	UpdateTour(ctx context.Context, id string, draft *catalog.Tour) (*catalog.Tour, error)
	UpdateGallery(ctx context.Context, id string, gallery *catalog.Gallery, uploads []catalog.GalleryUpload, removeImages []string) (*catalog.Tour, error)
	FinalizeTour(ctx context.Context, id string, draft *catalog.Tour) (*catalog.Tour, error)
}

// Model is the BubbleTea model for the creation wizard.
type Model struct {
	store            *draft.Store
	svc              Service
	ctx              context.Context
	maxGalleryImages int

	step      int
	saving    bool
	cancelled bool
	finished  bool
	finalTour catalog.Tour

	width  int
	height int

	basicStep    *BasicStep
	infoStep     *InformationStep
	planStep     *PlanStep
	locationStep *LocationStep
	galleryStep  *GalleryStep
	reviewStep   *ReviewStep

	buttonBar     *ButtonBar
	buttonFocused bool
	buttonBars    map[int]*ButtonBar

	toast *tui.Toast
}

// NewModel builds a wizard model starting at the requested step. Steps
// past 0 require a server-assigned draft id; a fresh store redirects the
// request back through blockedTargets.
func NewModel(svc Service, maxGalleryImages, startStep int) *Model {
	m := &Model{
		store:            draft.NewStore(),
		svc:              svc,
		ctx:              context.Background(),
		maxGalleryImages: maxGalleryImages,
		buttonBars:       map[int]*ButtonBar{},
		toast:            tui.NewToast(),
	}
	m.step = m.resolveStep(startStep)
	m.store.SetStep(m.step)
	return m
}

// resolveStep walks blockedTargets until it lands on a step whose
// precondition holds. Step 0 has no precondition. The store clamps the
// request and forces step 0 while the draft has no id.
func (m *Model) resolveStep(requested int) int {
	m.store.SetStep(requested)
	clamped := m.store.EffectiveStep()

	step := clamped
	for step > StepBasic && !m.stepReachable(step) {
		step = blockedTargets[step]
	}
	if step != requested {
		logger.Info("step %d blocked, starting at step %d", requested, step)
	}
	return step
}

// stepReachable reports whether a step's precondition is satisfied.
// Every step past 0 needs the draft to exist on the server.
func (m *Model) stepReachable(step int) bool {
	if step == StepBasic {
		return true
	}
	return m.store.HasID()
}

// Run drives the wizard to completion and returns the finalized tour.
// ErrCancelled is returned when the user backs out.
func Run(svc Service, maxGalleryImages, startStep int) (*catalog.Tour, error) {
	m := NewModel(svc, maxGalleryImages, startStep)

	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	wm, ok := finalModel.(*Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if wm.cancelled || !wm.finished {
		return nil, ErrCancelled
	}
	return &wm.finalTour, nil
}

// Init initializes the wizard model.
func (m *Model) Init() tea.Cmd {
	return m.initCurrentStep()
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		// Handle button-focused keyboard input
		if m.buttonFocused && m.buttonBar != nil {
			switch msg.String() {
			case "tab", "right":
				if !m.buttonBar.FocusNext() {
					m.buttonFocused = false
					m.buttonBar.Blur()
					m.focusStepContentFirst()
					return m, nil
				}
				return m, nil
			case "shift+tab", "left":
				if !m.buttonBar.FocusPrev() {
					m.buttonFocused = false
					m.buttonBar.Blur()
					m.focusStepContentLast()
					return m, nil
				}
				return m, nil
			case "enter", " ":
				return m.activateButton(m.buttonBar.FocusedButton())
			}
		}

		// Global keybindings
		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			m.store.Reset()
			return m, tea.Quit
		case "esc":
			if m.step == StepBasic {
				m.cancelled = true
				m.store.Reset()
				return m, tea.Quit
			}
			return m.goBack()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateCurrentStepSize()
		return m, nil

	case tui.ToastDismissMsg:
		return m, m.toast.Update(msg)

	case TabExitForwardMsg:
		m.buttonFocused = true
		m.blurStepContent()
		m.ensureButtonBar()
		m.buttonBar.FocusFirst()
		return m, nil

	case TabExitBackwardMsg:
		m.buttonFocused = true
		m.blurStepContent()
		m.ensureButtonBar()
		m.buttonBar.FocusLast()
		return m, nil

	case BasicSubmittedMsg:
		return m, m.saveBasic(msg.Tour)

	case InformationSubmittedMsg:
		return m, m.saveSection(catalog.Tour{Information: &msg.Information})

	case PlanSubmittedMsg:
		return m, m.saveSection(catalog.Tour{TourPlan: &msg.Plan})

	case LocationSubmittedMsg:
		return m, m.saveSection(catalog.Tour{Location: &msg.Location})

	case GallerySubmittedMsg:
		return m, m.saveGallery(msg)

	case FinalizeRequestedMsg:
		return m, m.finalize()

	case StepSavedMsg:
		return m.handleSaved(msg)
	}

	// Forward messages to current step
	return m, m.updateCurrentStep(msg)
}

// saveBasic persists the scalar fields: POST on a fresh draft, whole-draft
// PUT once an id exists. The payload is built from a merged copy; the
// store is only written once the server acknowledges.
func (m *Model) saveBasic(partial catalog.Tour) tea.Cmd {
	if m.saving {
		return nil
	}
	m.saving = true

	step := m.step
	snapshot := m.store.Merged(partial)
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		var (
			saved *catalog.Tour
			err   error
		)
		if snapshot.ID == "" {
			saved, err = svc.CreateTour(ctx, &snapshot)
		} else {
			saved, err = svc.UpdateTour(ctx, snapshot.ID, &snapshot)
		}
		return StepSavedMsg{Step: step, Tour: saved, Err: err}
	}
}

// saveSection PUTs the whole record with one section swapped in. The
// merge happens on a copy; a failed request leaves the store at the last
// acknowledged state while the step form keeps the entered values.
func (m *Model) saveSection(partial catalog.Tour) tea.Cmd {
	if m.saving {
		return nil
	}
	m.saving = true

	step := m.step
	snapshot := m.store.Merged(partial)
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		saved, err := svc.UpdateTour(ctx, snapshot.ID, &snapshot)
		return StepSavedMsg{Step: step, Tour: saved, Err: err}
	}
}

// saveGallery persists the gallery section with its staged files.
func (m *Model) saveGallery(msg GallerySubmittedMsg) tea.Cmd {
	if m.saving {
		return nil
	}
	m.saving = true

	step := m.step
	id := m.store.Tour().ID
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		saved, err := svc.UpdateGallery(ctx, id, &msg.Gallery, msg.Uploads, msg.Removed)
		return StepSavedMsg{Step: step, Tour: saved, Err: err}
	}
}

// finalize marks the draft visible in the catalog and quits on success.
func (m *Model) finalize() tea.Cmd {
	if m.saving {
		return nil
	}
	m.saving = true

	step := m.step
	snapshot := m.store.Tour()
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		saved, err := svc.FinalizeTour(ctx, snapshot.ID, &snapshot)
		return StepSavedMsg{Step: step, Tour: saved, Err: err}
	}
}

// handleSaved applies a persistence outcome. Results from a step the user
// has already left are dropped, but the in-flight slot is freed either
// way so later submits are not blocked forever.
func (m *Model) handleSaved(msg StepSavedMsg) (tea.Model, tea.Cmd) {
	m.saving = false

	if msg.Step != m.step {
		logger.Debug("dropping stale save result for step %d (now on %d)", msg.Step, m.step)
		return m, nil
	}

	if msg.Err != nil {
		// Server and transport messages surface verbatim; the step form
		// keeps the entered values so the user can retry.
		return m, m.toast.Show(msg.Err.Error(), true)
	}

	// The acknowledged record overwrites the draft wholesale so
	// server-side normalization sticks, zeroed fields included.
	m.store.Replace(*msg.Tour)

	if m.step == StepReview {
		m.finished = true
		m.finalTour = *msg.Tour
		m.store.Reset()
		return m, tea.Quit
	}

	m.step++
	m.store.SetStep(m.step)
	m.buttonFocused = false
	m.buttonBar = nil
	return m, tea.Batch(m.toast.Show("saved", false), m.initCurrentStep())
}

// goBack moves one step back without touching the server.
func (m *Model) goBack() (tea.Model, tea.Cmd) {
	if m.step <= StepBasic {
		return m, nil
	}
	m.step--
	m.store.SetStep(m.step)
	m.buttonFocused = false
	m.buttonBar = nil
	return m, m.initCurrentStep()
}

// initCurrentStep builds the step component from the stored draft.
func (m *Model) initCurrentStep() tea.Cmd {
	t := m.store.Tour()
	var cmd tea.Cmd
	switch m.step {
	case StepBasic:
		m.basicStep = NewBasicStep(t)
		cmd = m.basicStep.Init()
	case StepInformation:
		m.infoStep = NewInformationStep(t.Information)
		cmd = m.infoStep.Init()
	case StepTourPlan:
		m.planStep = NewPlanStep(t.TourPlan)
		cmd = m.planStep.Init()
	case StepLocation:
		m.locationStep = NewLocationStep(t.Location)
		cmd = m.locationStep.Init()
	case StepGallery:
		m.galleryStep = NewGalleryStep(t.Gallery, m.maxGalleryImages)
		cmd = m.galleryStep.Init()
	case StepReview:
		m.reviewStep = NewReviewStep(t)
		cmd = m.reviewStep.Init()
	}
	m.updateCurrentStepSize()
	return cmd
}

// updateCurrentStep forwards a message to the current step component.
func (m *Model) updateCurrentStep(msg tea.Msg) tea.Cmd {
	switch m.step {
	case StepBasic:
		if m.basicStep != nil {
			return m.basicStep.Update(msg)
		}
	case StepInformation:
		if m.infoStep != nil {
			return m.infoStep.Update(msg)
		}
	case StepTourPlan:
		if m.planStep != nil {
			return m.planStep.Update(msg)
		}
	case StepLocation:
		if m.locationStep != nil {
			return m.locationStep.Update(msg)
		}
	case StepGallery:
		if m.galleryStep != nil {
			return m.galleryStep.Update(msg)
		}
	case StepReview:
		if m.reviewStep != nil {
			return m.reviewStep.Update(msg)
		}
	}
	return nil
}

// getModalContentSize returns the internal content dimensions for the modal.
func (m *Model) getModalContentSize() (width, height int) {
	width = modalContentWidth
	height = m.height - 4
	if height < 20 {
		height = 20
	}
	if height > 44 {
		height = 44
	}
	height -= 10
	if height < 10 {
		height = 10
	}
	return width, height
}

// updateCurrentStepSize updates the size of the current step.
func (m *Model) updateCurrentStepSize() {
	w, h := m.getModalContentSize()
	switch m.step {
	case StepBasic:
		if m.basicStep != nil {
			m.basicStep.SetSize(w, h)
		}
	case StepInformation:
		if m.infoStep != nil {
			m.infoStep.SetSize(w, h)
		}
	case StepTourPlan:
		if m.planStep != nil {
			m.planStep.SetSize(w, h)
		}
	case StepLocation:
		if m.locationStep != nil {
			m.locationStep.SetSize(w, h)
		}
	case StepGallery:
		if m.galleryStep != nil {
			m.galleryStep.SetSize(w, h)
		}
	case StepReview:
		if m.reviewStep != nil {
			m.reviewStep.SetSize(w, h)
		}
	}
}

// hasButtons reports whether the step uses the shared Back/Next bar.
// The review step drives its own navigation.
func (m *Model) hasButtons() bool {
	return m.step != StepReview
}

// ensureButtonBar creates the button bar if needed, cached per step so
// focus state survives re-renders.
func (m *Model) ensureButtonBar() {
	if cached, ok := m.buttonBars[m.step]; ok {
		m.buttonBar = cached
		return
	}
	nextLabel := "Next →"
	if m.step == StepGallery {
		nextLabel = "Save Gallery →"
	}
	bar := NewButtonBar(CreateBackNextButtons(m.step > StepBasic, nextLabel))
	m.buttonBars[m.step] = bar
	m.buttonBar = bar
}

// activateButton handles button activation.
func (m *Model) activateButton(id ButtonID) (tea.Model, tea.Cmd) {
	switch id {
	case ButtonBack:
		return m.goBack()
	case ButtonNext:
		return m, m.submitCurrentStep()
	}
	return m, nil
}

// submitCurrentStep runs the current step's local validation and submit.
func (m *Model) submitCurrentStep() tea.Cmd {
	switch m.step {
	case StepBasic:
		if m.basicStep != nil {
			return m.basicStep.Submit()
		}
	case StepInformation:
		if m.infoStep != nil {
			return m.infoStep.Submit()
		}
	case StepTourPlan:
		if m.planStep != nil {
			return m.planStep.Submit()
		}
	case StepLocation:
		if m.locationStep != nil {
			return m.locationStep.Submit()
		}
	case StepGallery:
		if m.galleryStep != nil {
			return m.galleryStep.Submit()
		}
	}
	return nil
}

func (m *Model) focusStepContentFirst() {
	switch m.step {
	case StepBasic:
		if m.basicStep != nil {
			m.basicStep.Focus()
		}
	case StepInformation:
		if m.infoStep != nil {
			m.infoStep.Focus()
		}
	case StepTourPlan:
		if m.planStep != nil {
			m.planStep.Focus()
		}
	case StepLocation:
		if m.locationStep != nil {
			m.locationStep.Focus()
		}
	case StepGallery:
		if m.galleryStep != nil {
			m.galleryStep.Focus()
		}
	}
}

func (m *Model) focusStepContentLast() {
	switch m.step {
	case StepBasic:
		if m.basicStep != nil {
			m.basicStep.FocusLast()
		}
	case StepInformation:
		if m.infoStep != nil {
			m.infoStep.FocusLast()
		}
	case StepTourPlan:
		if m.planStep != nil {
			m.planStep.FocusLast()
		}
	case StepLocation:
		if m.locationStep != nil {
			m.locationStep.FocusLast()
		}
	case StepGallery:
		if m.galleryStep != nil {
			m.galleryStep.FocusLast()
		}
	}
}

func (m *Model) blurStepContent() {
	switch m.step {
	case StepBasic:
		if m.basicStep != nil {
			m.basicStep.Blur()
		}
	case StepInformation:
		if m.infoStep != nil {
			m.infoStep.Blur()
		}
	case StepTourPlan:
		if m.planStep != nil {
			m.planStep.Blur()
		}
	case StepLocation:
		if m.locationStep != nil {
			m.locationStep.Blur()
		}
	case StepGallery:
		if m.galleryStep != nil {
			m.galleryStep.Blur()
		}
	}
}

// View renders the wizard.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 || m.height == 0 {
		view.Content = lipgloss.NewLayer("")
		return view
	}

	content := m.renderCurrentStep()
	centered := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(centered).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	if m.toast.IsVisible() {
		uv.NewStyledString(m.toast.View(m.width, m.height)).Draw(canvas, uv.Rectangle{
			Min: uv.Position{X: 0, Y: 0},
			Max: uv.Position{X: m.width, Y: m.height},
		})
	}

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// renderCurrentStep renders the modal for the current step.
func (m *Model) renderCurrentStep() string {
	t := theme.Current()

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Primary)).
		MarginBottom(1).
		Render("Create Tour")

	progress := renderProgress(m.step)

	var stepContent string
	switch m.step {
	case StepBasic:
		if m.basicStep != nil {
			stepContent = m.basicStep.View()
		}
	case StepInformation:
		if m.infoStep != nil {
			stepContent = m.infoStep.View()
		}
	case StepTourPlan:
		if m.planStep != nil {
			stepContent = m.planStep.View()
		}
	case StepLocation:
		if m.locationStep != nil {
			stepContent = m.locationStep.View()
		}
	case StepGallery:
		if m.galleryStep != nil {
			stepContent = m.galleryStep.View()
		}
	case StepReview:
		if m.reviewStep != nil {
			stepContent = m.reviewStep.View()
		}
	}

	var buttonBarContent string
	if m.hasButtons() {
		m.ensureButtonBar()
		buttonBarContent = m.buttonBar.Render()
	}

	saving := ""
	if m.saving {
		saving = lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Render("saving...")
	}

	parts := []string{title, progress, "", stepContent}
	if buttonBarContent != "" {
		parts = append(parts, "", buttonBarContent)
	}
	if saving != "" {
		parts = append(parts, "", saving)
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	modalStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Padding(1, modalPadding).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.BorderDefault))

	return modalStyle.Render(content)
}
