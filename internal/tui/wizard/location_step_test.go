package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourdeck/tourdeck/internal/catalog"
)

func TestLocationStepPrefillsFromDraft(t *testing.T) {
	s := NewLocationStep(&catalog.Location{
		Title:             "Cyclades archipelago",
		FirstDescription:  "Opening",
		MapEmbed:          "https://www.google.com/maps/embed?pb=x",
		SecondDescription: "Closing",
	})
	assert.Equal(t, "https://www.google.com/maps/embed?pb=x", s.mapEmbed.Value())
}

func TestLocationStepSubmitRequiresValidEmbed(t *testing.T) {
	s := NewLocationStep(nil)
	s.title.SetValue("Cyclades")
	s.firstDescription.SetValue("Opening")
	s.mapEmbed.SetValue("not a url")
	s.secondDescription.SetValue("Closing")

	assert.Nil(t, s.Submit(), "invalid embed URL must not submit")
	assert.NotEmpty(t, s.err, "expected a validation error")

	s.mapEmbed.SetValue("https://www.google.com/maps/embed?pb=x")
	cmd := s.Submit()
	require.NotNil(t, cmd, "valid form should submit")
	msg, ok := cmd().(LocationSubmittedMsg)
	require.True(t, ok, "expected LocationSubmittedMsg")
	assert.Equal(t, "Cyclades", msg.Location.Title)
}
