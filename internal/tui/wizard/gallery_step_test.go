package wizard

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourdeck/tourdeck/internal/catalog"
)

func testGallery() *catalog.Gallery {
	return &catalog.Gallery{
		GalleryDescription: "Snapshots",
		Images: []catalog.GalleryImage{
			{Image: "https://a.example/1.jpg", ColSpan: 1, RowSpan: 1},
			{Image: "https://a.example/2.jpg", ColSpan: 2, RowSpan: 1},
		},
	}
}

func TestGalleryStepCapRejectedWithoutNetwork(t *testing.T) {
	s := NewGalleryStep(testGallery(), 2)
	s.focusIndex = s.pathFieldIndex()
	s.updateFocus()
	s.pathInput.SetValue("/tmp/some-image.jpg")

	// The cap check fires before the file is even inspected.
	s.stageUpload()
	assert.Empty(t, s.pending, "upload staged past the gallery cap")
	assert.NotEmpty(t, s.err, "expected a cap error message")
}

func TestGalleryStepRemoveTracksStoredImages(t *testing.T) {
	s := NewGalleryStep(testGallery(), 10)

	// Focus the first stored image and remove it.
	s.focusIndex = 1
	s.updateFocus()
	s.Update(tea.KeyPressMsg{Text: "ctrl+r"})

	require.Len(t, s.existing, 1)
	require.Len(t, s.removed, 1)
	assert.Equal(t, "https://a.example/1.jpg", s.removed[0])

	cmd := s.Submit()
	require.NotNil(t, cmd, "submit failed: %s", s.err)
	msg := cmd().(GallerySubmittedMsg)
	assert.Len(t, msg.Removed, 1)
	assert.Len(t, msg.Gallery.Images, 1)
}

func TestGalleryStepSpanAdjustWraps(t *testing.T) {
	s := NewGalleryStep(testGallery(), 10)
	s.focusIndex = 1
	s.updateFocus()

	s.Update(tea.KeyPressMsg{Text: "right"})
	assert.Equal(t, 2, s.existing[0].ColSpan)
	s.Update(tea.KeyPressMsg{Text: "right"})
	s.Update(tea.KeyPressMsg{Text: "right"})
	assert.Equal(t, 1, s.existing[0].ColSpan, "colSpan wraps 3 -> 1")

	s.Update(tea.KeyPressMsg{Text: "shift+right"})
	assert.Equal(t, 2, s.existing[0].RowSpan)
}

func TestGalleryStepSubmitRequiresDescriptionAndImage(t *testing.T) {
	s := NewGalleryStep(nil, 10)

	assert.Nil(t, s.Submit(), "empty gallery must not submit")

	s.description.SetValue("Snapshots")
	assert.Nil(t, s.Submit(), "gallery without images must not submit")

	s.existing = append(s.existing, catalog.GalleryImage{Image: "https://a.example/1.jpg"})
	assert.NotNil(t, s.Submit(), "valid gallery should submit: %s", s.err)
}

func TestGalleryStepRemoveUnstagesPendingWithoutTracking(t *testing.T) {
	s := NewGalleryStep(testGallery(), 10)
	s.pending = append(s.pending, catalog.NewGalleryUpload("/tmp/new.jpg"))

	// Focus the pending entry (after the two stored ones).
	s.focusIndex = 3
	s.updateFocus()
	s.Update(tea.KeyPressMsg{Text: "ctrl+r"})

	assert.Empty(t, s.pending)
	assert.Empty(t, s.removed, "unstaging a local file must not mark a server removal")
}
