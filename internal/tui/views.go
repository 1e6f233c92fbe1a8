package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tourdeck/tourdeck/internal/catalog"
	"github.com/tourdeck/tourdeck/internal/tui/theme"
)

// ComposeTourMarkdown builds a markdown recomposition of every section the
// tour record carries. Sections that are not set yet are skipped, so the
// same composition serves the wizard review step and the detail view.
func ComposeTourMarkdown(t *catalog.Tour) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t.Name)

	b.WriteString("## Basic Information\n\n")
	fmt.Fprintf(&b, "- **Destination:** %s\n", t.Destination)
	fmt.Fprintf(&b, "- **Price:** %.2f %s (per %s)\n", t.Price, t.PriceUnit, t.ParticipantType)
	fmt.Fprintf(&b, "- **Participants:** %d\n", t.Participants)
	fmt.Fprintf(&b, "- **Rating:** %.1f/5 (%d reviews)\n", t.Rating, t.ReviewCount)
	if t.DepartureDate != "" {
		fmt.Fprintf(&b, "- **Departure:** %s\n", t.DepartureDate)
	}
	if t.Image != "" {
		fmt.Fprintf(&b, "- **Cover image:** %s\n", t.Image)
	}
	fmt.Fprintf(&b, "\n%s\n", t.Description)

	if info := t.Information; info != nil {
		b.WriteString("\n## Information\n\n")
		fmt.Fprintf(&b, "%s\n\n", info.InfoDescription)
		for _, h := range info.Highlights {
			fmt.Fprintf(&b, "- **%s:** %s\n", h.Title, h.Description)
		}
	}

	if plan := t.TourPlan; plan != nil {
		b.WriteString("\n## Tour Plan\n\n")
		fmt.Fprintf(&b, "%s\n", plan.Title)
		for _, day := range plan.Itinerary {
			fmt.Fprintf(&b, "\n### Day %d: %s\n\n", day.Day, day.Title)
			for _, p := range day.Description {
				fmt.Fprintf(&b, "- %s\n", p)
			}
			if len(day.Amenities) > 0 {
				fmt.Fprintf(&b, "\nAmenities: %s\n", strings.Join(day.Amenities, ", "))
			}
		}
	}

	if loc := t.Location; loc != nil {
		b.WriteString("\n## Location\n\n")
		fmt.Fprintf(&b, "**%s**\n\n", loc.Title)
		fmt.Fprintf(&b, "%s\n\n", loc.FirstDescription)
		fmt.Fprintf(&b, "Map: %s\n\n", loc.MapEmbed)
		fmt.Fprintf(&b, "%s\n", loc.SecondDescription)
	}

	if g := t.Gallery; g != nil {
		b.WriteString("\n## Gallery\n\n")
		fmt.Fprintf(&b, "%s\n\n", g.GalleryDescription)
		for i, img := range g.Images {
			col, row := img.ColSpan, img.RowSpan
			if col == 0 {
				col = 1
			}
			if row == 0 {
				row = 1
			}
			fmt.Fprintf(&b, "%d. %s (grid %dx%d)\n", i+1, img.Image, col, row)
		}
	}

	if t.Status != "" {
		fmt.Fprintf(&b, "\nStatus: %s\n", t.Status)
	}

	return b.String()
}

// RenderTourList renders the catalog listing as styled terminal output.
func RenderTourList(resp *catalog.TourListResponse, width int) string {
	th := theme.Current()
	var b strings.Builder

	b.WriteString(th.S().HeaderTitle.Render(fmt.Sprintf("Our Tours (%d)", resp.Count)))
	b.WriteString("\n")
	if resp.Message != "" {
		b.WriteString(th.S().Muted.Render(resp.Message))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(resp.Data) == 0 {
		b.WriteString(th.S().Muted.Render("No tours available. Create one with: tourdeck create"))
		b.WriteString("\n")
		return b.String()
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(th.BorderDefault)).
		Padding(0, 1).
		Width(clampWidth(width-4, 40, 100))

	for _, tour := range resp.Data {
		var card strings.Builder
		card.WriteString(th.S().HeaderTitle.Render(tour.Name))
		fmt.Fprintf(&card, "  %s\n", th.S().Muted.Render(tour.ID))
		fmt.Fprintf(&card, "%s\n", th.S().Label.Render(tour.Destination))
		desc := tour.Description
		if len(desc) > 120 {
			desc = desc[:117] + "..."
		}
		fmt.Fprintf(&card, "%s\n", desc)
		fmt.Fprintf(&card, "%s  %s",
			th.S().SuccessText.Render(fmt.Sprintf("%.2f %s", tour.Price, tour.PriceUnit)),
			th.S().Muted.Render(fmt.Sprintf("★ %.1f (%d)", tour.Rating, tour.ReviewCount)))
		if tour.Status != "" {
			fmt.Fprintf(&card, "  %s", th.S().Muted.Render("["+tour.Status+"]"))
		}
		b.WriteString(cardStyle.Render(card.String()))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderTourDetail renders one tour as glamour markdown.
func RenderTourDetail(t *catalog.Tour, width int) string {
	return RenderMarkdown(ComposeTourMarkdown(t), width)
}

// RenderBookings renders the booked-tours listing.
func RenderBookings(resp *catalog.BookingListResponse, width int) string {
	th := theme.Current()
	var b strings.Builder

	b.WriteString(th.S().HeaderTitle.Render(fmt.Sprintf("Booked Tours (%d)", resp.Count)))
	b.WriteString("\n\n")

	if len(resp.Data) == 0 {
		b.WriteString(th.S().Muted.Render("No bookings yet."))
		b.WriteString("\n")
		return b.String()
	}

	rowStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(th.BorderDefault)).
		Width(clampWidth(width-2, 40, 100))

	for _, bk := range resp.Data {
		var row strings.Builder
		fmt.Fprintf(&row, "%s  %s\n", th.S().Label.Render(bk.CustomerName), th.S().Muted.Render(bk.CustomerEmail))
		if bk.CustomerPhone != "" {
			fmt.Fprintf(&row, "%s\n", th.S().Muted.Render(bk.CustomerPhone))
		}
		fmt.Fprintf(&row, "tour %s  tickets %d  total %s",
			bk.ServiceID, bk.NumberOfTicket,
			th.S().SuccessText.Render(fmt.Sprintf("%.2f", bk.TotalPrice)))
		if bk.Status != "" {
			fmt.Fprintf(&row, "  %s", th.S().Muted.Render("["+bk.Status+"]"))
		}
		b.WriteString(rowStyle.Render(row.String()))
		b.WriteString("\n")
	}

	return b.String()
}

func clampWidth(w, min, max int) int {
	if w < min {
		return min
	}
	if w > max {
		return max
	}
	return w
}
