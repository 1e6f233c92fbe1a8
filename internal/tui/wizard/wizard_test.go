package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourdeck/tourdeck/internal/catalog"
)

// fakeService records persistence calls and plays back the server-side
// record the way the catalog API would.
type fakeService struct {
	failWith error

	created   int
	updated   int
	galleries int
	finalized int

	record      catalog.Tour
	lastDraft   catalog.Tour
	lastGallery catalog.Gallery
	lastUploads []catalog.GalleryUpload
	lastRemoved []string
}

func (f *fakeService) CreateTour(_ context.Context, draft *catalog.Tour) (*catalog.Tour, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.created++
	f.lastDraft = *draft

	f.record = *draft
	f.record.ID = "srv-0001"
	f.record.CreatedAt = "2024-01-15T10:30:00.000Z"
	out := f.record
	return &out, nil
}

func (f *fakeService) UpdateTour(_ context.Context, id string, draft *catalog.Tour) (*catalog.Tour, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.updated++
	f.lastDraft = *draft

	created := f.record.CreatedAt
	f.record = *draft
	f.record.ID = id
	f.record.CreatedAt = created
	f.record.UpdatedAt = "2024-01-15T11:00:00.000Z"
	out := f.record
	return &out, nil
}

func (f *fakeService) UpdateGallery(_ context.Context, id string, gallery *catalog.Gallery, uploads []catalog.GalleryUpload, removeImages []string) (*catalog.Tour, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.galleries++
	f.lastGallery = *gallery
	f.lastUploads = uploads
	f.lastRemoved = removeImages

	// The server stores staged files and returns the full record with
	// URLs assigned to them.
	stored := catalog.Gallery{
		GalleryDescription: gallery.GalleryDescription,
		Images:             append([]catalog.GalleryImage(nil), gallery.Images...),
	}
	for range uploads {
		stored.Images = append(stored.Images,
			catalog.GalleryImage{Image: "https://res.cloudinary.com/tourdeck/stored.jpg", ColSpan: 1, RowSpan: 1})
	}
	f.record.ID = id
	f.record.Gallery = &stored
	out := f.record
	return &out, nil
}

func (f *fakeService) FinalizeTour(_ context.Context, id string, draft *catalog.Tour) (*catalog.Tour, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.finalized++
	f.record = *draft
	f.record.ID = id
	f.record.Status = "draft"
	out := f.record
	return &out, nil
}

func validBasic() catalog.Tour {
	return catalog.Tour{
		Name:            "Island Hopping in the Cyclades",
		Description:     "Seven days sailing between Naxos, Paros and Santorini.",
		Price:           1290,
		PriceUnit:       "EUR",
		Participants:    12,
		ParticipantType: "person",
		Rating:          4.5,
		Destination:     "Cyclades, Greece",
		Image:           "https://example.com/cover.jpg",
	}
}

func validInformation() catalog.Information {
	return catalog.Information{
		InfoDescription: "A relaxed sailing itinerary.",
		Highlights:      []catalog.Highlight{{Title: "Catamaran", Description: "Skippered"}},
	}
}

// createdModel returns a model that has completed step 0 against svc.
func createdModel(t *testing.T, svc *fakeService) *Model {
	t.Helper()
	m := NewModel(svc, 10, 0)
	m.Init()

	_, cmd := m.Update(BasicSubmittedMsg{Tour: validBasic()})
	require.NotNil(t, cmd, "step 0 submit should issue a save")
	m.Update(cmd())
	require.True(t, m.store.HasID(), "setup: draft should carry the server id")
	return m
}

func TestStartStepRedirectsWithoutDraft(t *testing.T) {
	// Without a server-assigned id every later step falls back to step 0.
	for requested := StepInformation; requested <= StepReview; requested++ {
		m := NewModel(&fakeService{}, 10, requested)
		assert.Equal(t, StepBasic, m.step, "start step %d", requested)
	}
}

func TestStartStepClampsOutOfRange(t *testing.T) {
	assert.Equal(t, StepBasic, NewModel(&fakeService{}, 10, 99).step)
	assert.Equal(t, StepBasic, NewModel(&fakeService{}, 10, -3).step)
}

func TestBasicSubmitCreatesDraftAndAdvances(t *testing.T) {
	svc := &fakeService{}
	m := NewModel(svc, 10, 0)
	m.Init()

	_, cmd := m.Update(BasicSubmittedMsg{Tour: validBasic()})
	require.NotNil(t, cmd)
	assert.True(t, m.saving, "model should be marked saving while the request runs")

	saved, ok := cmd().(StepSavedMsg)
	require.True(t, ok, "expected StepSavedMsg")
	require.NoError(t, saved.Err)
	assert.Equal(t, 1, svc.created)

	m.Update(saved)
	assert.False(t, m.saving, "saving flag should clear on result")
	assert.Equal(t, StepInformation, m.step)
	assert.True(t, m.store.HasID(), "store should carry the server-assigned id")
}

func TestBasicResubmitUsesWholeDraftPut(t *testing.T) {
	svc := &fakeService{}
	m := createdModel(t, svc)

	// Go back and resubmit: must PUT, not POST again.
	m.goBack()
	edited := validBasic()
	edited.Name = "Island Hopping Deluxe"
	_, cmd := m.Update(BasicSubmittedMsg{Tour: edited})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, 1, svc.created)
	assert.Equal(t, 1, svc.updated)
	assert.Equal(t, "srv-0001", svc.lastDraft.ID)
}

func TestSectionSaveSendsEntireMergedDraft(t *testing.T) {
	svc := &fakeService{}
	m := createdModel(t, svc)

	_, cmd := m.Update(InformationSubmittedMsg{Information: validInformation()})
	require.NotNil(t, cmd)
	m.Update(cmd())

	// The PUT body must carry the scalar fields from step 0 alongside the
	// new section.
	assert.NotEmpty(t, svc.lastDraft.Name, "update payload lost the basic fields")
	assert.NotNil(t, svc.lastDraft.Information, "update payload missing the information section")
	assert.Equal(t, StepTourPlan, m.step)
}

func TestSaveFailureStaysOnStepWithoutTouchingStore(t *testing.T) {
	svc := &fakeService{}
	m := createdModel(t, svc)

	svc.failWith = &catalog.Error{Kind: catalog.KindServerMessage, Detail: "duplicate tour name", Status: 409}
	_, cmd := m.Update(InformationSubmittedMsg{Information: validInformation()})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, StepInformation, m.step, "a failed save must not advance")
	assert.False(t, m.saving, "saving flag should clear on failure")
	assert.Contains(t, m.toast.GetMessage(), "duplicate tour name", "server message surfaces verbatim")

	// The store holds only acknowledged state; the section was never
	// written to it.
	assert.Nil(t, m.store.Tour().Information, "a failed save must not leave an optimistic section behind")

	// Retry succeeds once the server recovers.
	svc.failWith = nil
	_, cmd = m.Update(InformationSubmittedMsg{Information: validInformation()})
	require.NotNil(t, cmd, "retry after failure should issue a new save")
	m.Update(cmd())
	assert.Equal(t, StepTourPlan, m.step)
	assert.NotNil(t, m.store.Tour().Information)
}

func TestStaleSaveResultDropped(t *testing.T) {
	svc := &fakeService{}
	m := createdModel(t, svc)
	require.Equal(t, StepInformation, m.step)

	// A result tagged with a step the user already left is ignored.
	stale := StepSavedMsg{Step: StepBasic, Tour: &catalog.Tour{ID: "srv-0001", Name: "Stale"}}
	m.Update(stale)
	assert.Equal(t, StepInformation, m.step, "stale result must not move the wizard")
	assert.NotEqual(t, "Stale", m.store.Tour().Name, "stale result must not mutate the draft")
}

func TestBackDuringSaveDoesNotWedgeWizard(t *testing.T) {
	svc := &fakeService{}
	m := createdModel(t, svc)

	// Submit step 1, then navigate back before the result arrives.
	_, cmd := m.Update(InformationSubmittedMsg{Information: validInformation()})
	require.NotNil(t, cmd)
	require.True(t, m.saving)
	m.goBack()
	require.Equal(t, StepBasic, m.step)

	// The late result is dropped, but the in-flight slot is freed.
	m.Update(cmd())
	assert.Equal(t, StepBasic, m.step, "late result must not move the wizard")
	assert.False(t, m.saving, "late result must free the in-flight slot")

	// The wizard stays usable: the next submit goes out normally.
	_, cmd = m.Update(BasicSubmittedMsg{Tour: validBasic()})
	require.NotNil(t, cmd, "submits after a dropped result must not be ignored")
	m.Update(cmd())
	assert.Equal(t, StepInformation, m.step)
}

func TestSubmitWhileSavingIgnored(t *testing.T) {
	svc := &fakeService{}
	m := NewModel(svc, 10, 0)
	m.Init()
	m.saving = true

	assert.Nil(t, m.saveBasic(validBasic()), "second submit should be dropped while a request is in flight")
	assert.Nil(t, m.saveSection(catalog.Tour{Information: &catalog.Information{}}))
	assert.Nil(t, m.finalize())
}

func TestSaveResponseReplacesDraftWholesale(t *testing.T) {
	svc := &fakeService{}
	m := createdModel(t, svc)
	require.Equal(t, 4.5, m.store.Tour().Rating)

	// The server normalized rating away; the acknowledged record wins,
	// zeroed fields included.
	normalized := m.store.Tour()
	normalized.Rating = 0
	m.Update(StepSavedMsg{Step: m.step, Tour: &normalized})

	assert.Equal(t, float64(0), m.store.Tour().Rating, "server-cleared fields must not survive in the store")
}

func TestGallerySaveForwardsUploadsAndRemovals(t *testing.T) {
	svc := &fakeService{}
	m := createdModel(t, svc)
	m.step = StepGallery
	m.store.SetStep(StepGallery)
	m.initCurrentStep()

	msg := GallerySubmittedMsg{
		Gallery: catalog.Gallery{
			GalleryDescription: "Snapshots",
			Images:             []catalog.GalleryImage{{Image: "https://a.example/1.jpg", ColSpan: 2, RowSpan: 1}},
		},
		Removed: []string{"https://a.example/old.jpg"},
	}
	_, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	m.Update(cmd())

	require.Equal(t, 1, svc.galleries)
	require.Len(t, svc.lastRemoved, 1)
	assert.Equal(t, "https://a.example/old.jpg", svc.lastRemoved[0])
	assert.Equal(t, StepReview, m.step)

	// The returned record carried the whole draft; earlier sections stay.
	got := m.store.Tour()
	assert.Equal(t, "Island Hopping in the Cyclades", got.Name)
	require.NotNil(t, got.Gallery)
	assert.Len(t, got.Gallery.Images, 1)
}

func TestFinalizeResetsStoreAndFinishes(t *testing.T) {
	svc := &fakeService{}
	m := createdModel(t, svc)
	m.step = StepReview
	m.store.SetStep(StepReview)
	m.initCurrentStep()

	_, cmd := m.Update(FinalizeRequestedMsg{})
	require.NotNil(t, cmd)
	saved := cmd().(StepSavedMsg)
	require.NoError(t, saved.Err)
	m.Update(saved)

	assert.True(t, m.finished, "wizard should be finished")
	assert.Equal(t, "draft", m.finalTour.Status)
	assert.False(t, m.store.HasID(), "store should be reset after finalization")
}

func TestGoBackDoesNotTouchServer(t *testing.T) {
	svc := &fakeService{}
	m := createdModel(t, svc)

	updatedBefore := svc.updated
	m.goBack()
	assert.Equal(t, StepBasic, m.step)
	assert.Equal(t, updatedBefore, svc.updated, "going back must not issue requests")

	// Basic form is prefilled from the draft.
	assert.Equal(t, "Island Hopping in the Cyclades", m.basicStep.name.Value())
}
