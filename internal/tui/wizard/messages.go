package wizard

import "github.com/tourdeck/tourdeck/internal/catalog"

// BasicSubmittedMsg is sent when the basic-information form validates locally.
// Tour carries only the scalar fields the form edits.
type BasicSubmittedMsg struct {
	Tour catalog.Tour
}

// InformationSubmittedMsg is sent when the information form validates locally.
type InformationSubmittedMsg struct {
	Information catalog.Information
}

// PlanSubmittedMsg is sent when the tour plan form validates locally.
type PlanSubmittedMsg struct {
	Plan catalog.TourPlan
}

// LocationSubmittedMsg is sent when the location form validates locally.
type LocationSubmittedMsg struct {
	Location catalog.Location
}

// GallerySubmittedMsg is sent when the gallery form validates locally.
// Gallery.Images holds the surviving stored images with their span edits,
// Uploads the staged local files, Removed the URLs to delete server-side.
type GallerySubmittedMsg struct {
	Gallery catalog.Gallery
	Uploads []catalog.GalleryUpload
	Removed []string
}

// FinalizeRequestedMsg is sent when the user confirms the draft on review.
type FinalizeRequestedMsg struct{}

// StepSavedMsg carries the outcome of a persistence call. Step records
// which step issued the request so stale responses can be dropped after
// the user has navigated away.
type StepSavedMsg struct {
	Step int
	Tour *catalog.Tour
	Err  error
}

// TabExitForwardMsg is sent when Tab is pressed on the last input.
// Parent should move focus to buttons.
type TabExitForwardMsg struct{}

// TabExitBackwardMsg is sent when Shift+Tab is pressed on the first input.
// Parent should move focus to buttons (from end).
type TabExitBackwardMsg struct{}
