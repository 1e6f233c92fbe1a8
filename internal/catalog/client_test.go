package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() *Tour {
	return &Tour{
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

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestCreateTourAssignsID(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method

		var body Tour
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Empty(t, body.ID, "create must not carry an id")

		body.ID = "665f1a2b3c4d5e6f70819203"
		body.CreatedAt = "2024-01-15T10:30:00.000Z"
		respond(w, http.StatusCreated, TourResponse{Success: true, Data: body})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	saved, err := c.CreateTour(context.Background(), validDraft())
	require.NoError(t, err)

	assert.Equal(t, "POST", gotMethod)
	assert.Equal(t, "/services", gotPath)
	assert.Equal(t, "665f1a2b3c4d5e6f70819203", saved.ID)
	assert.Equal(t, "Island Hopping in the Cyclades", saved.Name)
}

func TestCreateTourValidatesBeforeSending(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	draft := validDraft()
	draft.Image = "not-a-url"

	_, err := c.CreateTour(context.Background(), draft)
	require.Error(t, err)

	var catErr *Error
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, KindValidation, catErr.Kind)
	assert.Zero(t, requests, "invalid draft must never reach the wire")
}

func TestUpdateTourSendsWholeDraft(t *testing.T) {
	var body Tour
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/services/abc123", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		respond(w, http.StatusOK, TourResponse{Success: true, Data: body})
	}))
	defer srv.Close()

	draft := validDraft()
	draft.ID = "abc123"
	draft.Information = &Information{
		InfoDescription: "A relaxed itinerary.",
		Highlights:      []Highlight{{Title: "Catamaran", Description: "Skippered"}},
	}

	c := NewClient(srv.URL, time.Second)
	_, err := c.UpdateTour(context.Background(), "abc123", draft)
	require.NoError(t, err)

	// The PUT body carries the entire merged record, not just the new section.
	assert.Equal(t, "Island Hopping in the Cyclades", body.Name)
	require.NotNil(t, body.Information)
	assert.Equal(t, "A relaxed itinerary.", body.Information.InfoDescription)
}

func TestUpdateTourRequiresID(t *testing.T) {
	c := NewClient("http://localhost:1", time.Second)
	_, err := c.UpdateTour(context.Background(), "", validDraft())
	var catErr *Error
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, KindValidation, catErr.Kind)
}

func TestServerMessageSurfacedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusBadRequest, TourResponse{Success: false, Message: "a tour with this name already exists"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.CreateTour(context.Background(), validDraft())
	require.Error(t, err)

	var catErr *Error
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, KindServerMessage, catErr.Kind)
	assert.Equal(t, "a tour with this name already exists", err.Error())
}

func TestPayloadTooLargeClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusRequestEntityTooLarge, TourResponse{Success: false})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.CreateTour(context.Background(), validDraft())

	var catErr *Error
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, KindPayloadTooLarge, catErr.Kind)
}

func TestTimeoutClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		respond(w, http.StatusOK, TourResponse{Success: true})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 50*time.Millisecond)
	_, err := c.CreateTour(context.Background(), validDraft())
	require.Error(t, err)

	var catErr *Error
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, KindTimeout, catErr.Kind)
}

func TestNetworkErrorClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Connection refused from here on.

	c := NewClient(srv.URL, time.Second)
	_, err := c.CreateTour(context.Background(), validDraft())
	require.Error(t, err)

	var catErr *Error
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, KindNetwork, catErr.Kind)
}

func TestUpdateGalleryMultipart(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "Naxos Marina.png")
	// Minimal PNG header so the file is a plausible image.
	require.NoError(t, os.WriteFile(imgPath, []byte("\x89PNG\r\n\x1a\nfake"), 0644))

	var (
		gotDescription string
		gotGallery     Gallery
		gotRemoved     []string
		gotFiles       []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/services/abc123", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(32<<20))

		gotDescription = r.FormValue("galleryDescription")
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("gallery")), &gotGallery))
		if v := r.FormValue("removeImages"); v != "" {
			require.NoError(t, json.Unmarshal([]byte(v), &gotRemoved))
		}
		for _, fh := range r.MultipartForm.File["galleryFiles"] {
			gotFiles = append(gotFiles, fh.Filename)
		}

		stored := Tour{ID: "abc123", Gallery: &Gallery{
			GalleryDescription: gotDescription,
			Images: []GalleryImage{
				{Image: "https://a.example/kept.jpg", ColSpan: 2, RowSpan: 1},
				{Image: "https://res.cloudinary.com/tourdeck/naxos-marina.png", ColSpan: 1, RowSpan: 1},
			},
		}}
		respond(w, http.StatusOK, TourResponse{Success: true, Data: stored})
	}))
	defer srv.Close()

	gallery := &Gallery{
		GalleryDescription: "Snapshots",
		Images:             []GalleryImage{{Image: "https://a.example/kept.jpg", ColSpan: 2, RowSpan: 1}},
	}
	uploads := []GalleryUpload{NewGalleryUpload(imgPath)}
	removed := []string{"https://a.example/old.jpg"}

	c := NewClient(srv.URL, time.Second)
	saved, err := c.UpdateGallery(context.Background(), "abc123", gallery, uploads, removed)
	require.NoError(t, err)

	assert.Equal(t, "Snapshots", gotDescription)
	// Span metadata: one stored image plus one placeholder for the upload.
	require.Len(t, gotGallery.Images, 2)
	assert.Equal(t, "https://a.example/kept.jpg", gotGallery.Images[0].Image)
	assert.Empty(t, gotGallery.Images[1].Image, "upload placeholder carries no URL")
	assert.Equal(t, []string{"https://a.example/old.jpg"}, gotRemoved)
	require.Len(t, gotFiles, 1)
	assert.Equal(t, "naxos-marina.png", gotFiles[0])

	// The response replaces the gallery, including the stored upload URL.
	require.NotNil(t, saved.Gallery)
	assert.Len(t, saved.Gallery.Images, 2)
}

func TestUpdateGalleryRejectsEmptyLocally(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.UpdateGallery(context.Background(), "abc123", &Gallery{GalleryDescription: "x"}, nil, nil)
	require.Error(t, err)

	var catErr *Error
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, KindValidation, catErr.Kind)
	assert.Zero(t, requests)
}

func TestFinalizeTourSetsDraftStatus(t *testing.T) {
	var body Tour
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		respond(w, http.StatusOK, TourResponse{Success: true, Data: body})
	}))
	defer srv.Close()

	draft := validDraft()
	draft.ID = "abc123"

	c := NewClient(srv.URL, time.Second)
	saved, err := c.FinalizeTour(context.Background(), "abc123", draft)
	require.NoError(t, err)

	assert.Equal(t, "draft", body.Status)
	assert.Equal(t, "draft", saved.Status)
	// The caller's draft is not mutated.
	assert.Empty(t, draft.Status)
}

func TestListToursAndBookings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/services":
			respond(w, http.StatusOK, TourListResponse{
				Success: true, Count: 1, Message: "services retrieved",
				Data: []Tour{{ID: "abc123", Name: "Island Hopping"}},
			})
		case "/booking":
			respond(w, http.StatusOK, BookingListResponse{
				Success: true, Count: 1,
				Data: []Booking{{ID: "b1", ServiceID: "abc123", CustomerName: "Maria", NumberOfTicket: 2}},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	tours, err := c.ListTours(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, tours.Count)
	assert.Equal(t, "services retrieved", tours.Message)

	bookings, err := c.ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings.Data, 1)
	assert.Equal(t, 2, bookings.Data[0].NumberOfTicket)
}
