// Package testfixtures holds shared fixtures for the TUI test suites.
package testfixtures

import (
	"github.com/tourdeck/tourdeck/internal/catalog"
)

// Fixed test values for consistent fixtures
const (
	FixedTourID    = "665f1a2b3c4d5e6f70819203"
	FixedTourName  = "Island Hopping in the Cyclades"
	FixedCreatedAt = "2024-01-15T10:30:00.000Z"
)

// BasicTour returns a tour with only the first-step fields populated,
// the shape a draft has right after creation.
func BasicTour() *catalog.Tour {
	return &catalog.Tour{
		ID:              FixedTourID,
		Name:            FixedTourName,
		Description:     "Seven days sailing between Naxos, Paros and Santorini with local guides.",
		Price:           1290,
		PriceUnit:       "EUR",
		Participants:    12,
		ParticipantType: "person",
		Rating:          4.5,
		ReviewCount:     0,
		Destination:     "Cyclades, Greece",
		DepartureDate:   "2024-06-01",
		Image:           "https://images.unsplash.com/photo-1570077188670-island",
		Status:          "pending",
		CreatedAt:       FixedCreatedAt,
		UpdatedAt:       FixedCreatedAt,
	}
}

// FullTour returns a tour with every section populated, the shape a
// draft has when the review step opens.
func FullTour() *catalog.Tour {
	t := BasicTour()
	t.Information = &catalog.Information{
		InfoDescription: "A relaxed sailing itinerary with plenty of swim stops.",
		Highlights: []catalog.Highlight{
			{Title: "Skippered catamaran", Description: "No sailing experience needed"},
			{Title: "Small groups", Description: "Twelve guests maximum"},
		},
	}
	t.TourPlan = &catalog.TourPlan{
		Title: "Seven days, three islands",
		Itinerary: []catalog.ItineraryDay{
			{
				Day:         1,
				Title:       "Arrival in Naxos",
				Description: []string{"Marina check-in and welcome dinner"},
				Amenities:   []string{"Dinner", "Transfer"},
			},
			{
				Day:         2,
				Title:       "Sail to Paros",
				Description: []string{"Morning sail", "Afternoon free in Naoussa"},
				Amenities:   []string{"Breakfast", "Lunch"},
			},
		},
	}
	t.Location = &catalog.Location{
		Title:             "Cyclades archipelago",
		FirstDescription:  "The route threads the central Aegean between Naxos and Santorini.",
		MapEmbed:          "https://www.google.com/maps/embed?pb=cyclades",
		SecondDescription: "Departures run from the Naxos marina, a short walk from the ferry port.",
	}
	t.Gallery = &catalog.Gallery{
		GalleryDescription: "Snapshots from last season's crossings.",
		Images: []catalog.GalleryImage{
			{Image: "https://res.cloudinary.com/tourdeck/naxos.jpg", ColSpan: 2, RowSpan: 1},
			{Image: "https://res.cloudinary.com/tourdeck/paros.jpg", ColSpan: 1, RowSpan: 1},
		},
	}
	return t
}

// TourList returns a listing response with two tours.
func TourList() *catalog.TourListResponse {
	second := BasicTour()
	second.ID = "665f1a2b3c4d5e6f70819204"
	second.Name = "Dolomites Hut to Hut"
	second.Destination = "Dolomites, Italy"
	second.Price = 840
	second.Status = "draft"
	return &catalog.TourListResponse{
		Success: true,
		Count:   2,
		Message: "services retrieved",
		Data:    []catalog.Tour{*FullTour(), *second},
	}
}

// Bookings returns a booking listing response with two bookings.
func Bookings() *catalog.BookingListResponse {
	return &catalog.BookingListResponse{
		Success: true,
		Count:   2,
		Data: []catalog.Booking{
			{
				ID:             "7750aa2b3c4d5e6f70819301",
				ServiceID:      FixedTourID,
				CustomerName:   "Maria Kline",
				CustomerEmail:  "maria@example.com",
				CustomerPhone:  "+30 694 000 0000",
				NumberOfTicket: 2,
				TotalPrice:     2580,
				Status:         "confirmed",
			},
			{
				ID:             "7750aa2b3c4d5e6f70819302",
				ServiceID:      FixedTourID,
				CustomerName:   "Jonas Wirth",
				CustomerEmail:  "jonas@example.com",
				NumberOfTicket: 1,
				TotalPrice:     1290,
				Status:         "pending",
			},
		},
	}
}
