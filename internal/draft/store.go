// Package draft holds the in-memory tour draft assembled by the creation
// wizard. The draft lives only for the wizard session: it is never written
// to disk, and restarting the program intentionally loses progress.
package draft

import (
	"sync"

	"github.com/tourdeck/tourdeck/internal/catalog"
	"github.com/tourdeck/tourdeck/internal/logger"
)

// Steps in the creation wizard.
const (
	StepBasic       = 0
	StepInformation = 1
	StepTourPlan    = 2
	StepLocation    = 3
	StepGallery     = 4
	StepReview      = 5

	StepCount = 6
)

// Store is the single home for wizard state: the accumulating tour record
// and the current step index. All writes go through Merge/SetStep/Reset;
// step controllers never mutate the record directly.
type Store struct {
	mu   sync.Mutex
	tour catalog.Tour
	step int
}

// NewStore creates an empty store at step 0.
func NewStore() *Store {
	return &Store{}
}

// Tour returns a copy of the current draft. Callers mutate the copy freely
// when assembling an update payload.
func (s *Store) Tour() catalog.Tour {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tour
}

// Merge shallow-merges partial into the stored draft: every field set in
// partial replaces the stored value, every unset field is preserved. A set
// id never changes - once the server assigns one, later merges cannot move
// the draft to a different resource.
func (s *Store) Merge(partial catalog.Tour) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mergeTour(&s.tour, partial)
}

// Merged returns partial merged into a copy of the stored draft, leaving
// the store untouched. Save payloads are built this way: the store only
// ever holds state the server has acknowledged.
func (s *Store) Merged(partial catalog.Tour) catalog.Tour {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.tour
	mergeTour(&out, partial)
	return out
}

// Replace overwrites the draft with the server's acknowledged record,
// zeroed fields included. A set id still never changes.
func (s *Store) Replace(record catalog.Tour) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tour.ID != "" && record.ID != s.tour.ID {
		if record.ID != "" {
			logger.Warn("ignoring attempt to change draft id %s -> %s", s.tour.ID, record.ID)
		}
		record.ID = s.tour.ID
	}
	s.tour = record
}

func mergeTour(dst *catalog.Tour, partial catalog.Tour) {
	if partial.ID != "" && dst.ID == "" {
		dst.ID = partial.ID
	} else if partial.ID != "" && partial.ID != dst.ID {
		logger.Warn("ignoring attempt to change draft id %s -> %s", dst.ID, partial.ID)
	}

	if partial.Name != "" {
		dst.Name = partial.Name
	}
	if partial.Description != "" {
		dst.Description = partial.Description
	}
	if partial.Price != 0 {
		dst.Price = partial.Price
	}
	if partial.PriceUnit != "" {
		dst.PriceUnit = partial.PriceUnit
	}
	if partial.Participants != 0 {
		dst.Participants = partial.Participants
	}
	if partial.ParticipantType != "" {
		dst.ParticipantType = partial.ParticipantType
	}
	if partial.Rating != 0 {
		dst.Rating = partial.Rating
	}
	if partial.ReviewCount != 0 {
		dst.ReviewCount = partial.ReviewCount
	}
	if partial.Destination != "" {
		dst.Destination = partial.Destination
	}
	if partial.DepartureDate != "" {
		dst.DepartureDate = partial.DepartureDate
	}
	if partial.Image != "" {
		dst.Image = partial.Image
	}
	if partial.Information != nil {
		dst.Information = partial.Information
	}
	if partial.TourPlan != nil {
		dst.TourPlan = partial.TourPlan
	}
	if partial.Location != nil {
		dst.Location = partial.Location
	}
	if partial.Gallery != nil {
		dst.Gallery = partial.Gallery
	}
	if partial.Status != "" {
		dst.Status = partial.Status
	}
	if partial.CreatedAt != "" {
		dst.CreatedAt = partial.CreatedAt
	}
	if partial.UpdatedAt != "" {
		dst.UpdatedAt = partial.UpdatedAt
	}
	if partial.Revision != 0 {
		dst.Revision = partial.Revision
	}
}

// Step returns the stored step index.
func (s *Store) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// SetStep stores a step index. No bounds validation happens here; callers
// supply 0..5.
func (s *Store) SetStep(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = n
}

// HasID reports whether the server has assigned an id yet. Steps 1-5 are
// blocked until it has.
func (s *Store) HasID() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tour.ID != ""
}

// EffectiveStep derives the step the wizard may actually show: the stored
// step index is only trusted while the draft backs it. Without an id the
// only legal step is 0.
func (s *Store) EffectiveStep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tour.ID == "" {
		return StepBasic
	}
	if s.step < 0 {
		return StepBasic
	}
	if s.step >= StepCount {
		return StepReview
	}
	return s.step
}

// Reset clears the draft and the step index. Called on successful
// finalization and on explicit cancellation, never on failure.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tour = catalog.Tour{}
	s.step = 0
}
