package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tourdeck/tourdeck/internal/catalog"
	"github.com/tourdeck/tourdeck/internal/tui/testfixtures"
)

func TestComposeTourMarkdownFullDraft(t *testing.T) {
	md := ComposeTourMarkdown(testfixtures.FullTour())

	for _, want := range []string{
		"# Island Hopping in the Cyclades",
		"## Basic Information",
		"## Information",
		"## Tour Plan",
		"### Day 1: Arrival in Naxos",
		"### Day 2: Sail to Paros",
		"## Location",
		"## Gallery",
		"(grid 2x1)",
	} {
		assert.Contains(t, md, want)
	}
}

func TestComposeTourMarkdownSkipsEmptySections(t *testing.T) {
	md := ComposeTourMarkdown(testfixtures.BasicTour())

	assert.NotContains(t, md, "## Tour Plan", "unset plan section is skipped")
	assert.NotContains(t, md, "## Gallery", "unset gallery section is skipped")
	assert.Contains(t, md, "## Basic Information", "basic section always renders")
}

func TestRenderTourListShowsCountAndEntries(t *testing.T) {
	out := RenderTourList(testfixtures.TourList(), testfixtures.TestTermWidth)

	assert.Contains(t, out, "Our Tours (2)")
	assert.Contains(t, out, "Island Hopping in the Cyclades")
	assert.Contains(t, out, "Dolomites Hut to Hut")
	assert.Contains(t, out, "[draft]", "status marker renders")
}

func TestRenderTourListEmpty(t *testing.T) {
	out := RenderTourList(&catalog.TourListResponse{Success: true}, testfixtures.TestTermWidth)
	assert.Contains(t, out, "No tours available")
}

func TestRenderBookings(t *testing.T) {
	out := RenderBookings(testfixtures.Bookings(), testfixtures.TestTermWidth)

	assert.Contains(t, out, "Booked Tours (2)")
	assert.Contains(t, out, "Maria Kline")
	assert.Contains(t, out, "tickets 2")
}

func TestRenderMarkdownFallbackWraps(t *testing.T) {
	out := wrapText(strings.Repeat("word ", 30), 20)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 20, "line exceeds width: %q", line)
	}
}
