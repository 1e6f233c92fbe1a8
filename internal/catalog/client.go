package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tourdeck/tourdeck/internal/logger"
)

// Client is the persistence adapter for the remote catalog API. Every tour
// mutation goes through it: create on step 0, whole-record updates on steps
// 1-4, finalize on step 5. Responses carry the server's authoritative record,
// which callers merge back into the draft store.
type Client struct {
	http *resty.Client
}

// NewClient builds a client for the given base URL (e.g.
// "http://localhost:5000/api/v1"). The timeout applies to every call; the
// image-bearing calls depend on it to classify stalls as timeouts.
func NewClient(baseURL string, timeout time.Duration) *Client {
	hc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: hc}
}

// CreateTour creates the catalog resource from the step-0 scalar fields.
// The returned record carries the server-assigned id the rest of the wizard
// keys on.
func (c *Client) CreateTour(ctx context.Context, draft *Tour) (*Tour, error) {
	if err := ValidateBasic(draft); err != nil {
		return nil, err
	}

	var result TourResponse
	var apiErr TourResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(draft).
		SetResult(&result).
		SetError(&apiErr).
		Post("/services")
	if err != nil {
		return nil, classifyTransport(err)
	}
	if resp.IsError() {
		return nil, classifyStatus(resp.StatusCode(), apiErr.Message)
	}

	logger.Info("created tour %s (%s)", result.Data.ID, result.Data.Name)
	return &result.Data, nil
}

// UpdateTour replaces the server record with the complete merged draft.
// The server contract expects the whole record on each partial update, so
// callers must pass the full accumulated draft with one section swapped in.
func (c *Client) UpdateTour(ctx context.Context, id string, draft *Tour) (*Tour, error) {
	if id == "" {
		return nil, validationError("tour id is not set - complete the basic information step first")
	}

	var result TourResponse
	var apiErr TourResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(draft).
		SetResult(&result).
		SetError(&apiErr).
		Put("/services/" + id)
	if err != nil {
		return nil, classifyTransport(err)
	}
	if resp.IsError() {
		return nil, classifyStatus(resp.StatusCode(), apiErr.Message)
	}

	logger.Debug("updated tour %s", id)
	return &result.Data, nil
}

// UpdateGallery performs the multipart gallery update: the description, the
// span metadata for existing images plus placeholders for the new ones, the
// removal list, and the raw files under the galleryFiles field. The response
// contains server-assigned URLs for the uploaded images.
func (c *Client) UpdateGallery(ctx context.Context, id string, gallery *Gallery, uploads []GalleryUpload, removeImages []string) (*Tour, error) {
	if id == "" {
		return nil, validationError("tour id is not set - complete the basic information step first")
	}

	// Merge placeholders for pending uploads into the span metadata.
	merged := Gallery{
		GalleryDescription: gallery.GalleryDescription,
		Images:             append([]GalleryImage{}, gallery.Images...),
	}
	for _, up := range uploads {
		merged.Images = append(merged.Images, GalleryImage{
			ColSpan: up.ColSpan,
			RowSpan: up.RowSpan,
		})
	}
	if err := ValidateGallery(&merged); err != nil {
		return nil, err
	}

	galleryJSON, err := json.Marshal(merged)
	if err != nil {
		return nil, validationError(fmt.Sprintf("encoding gallery: %v", err))
	}

	formData := map[string]string{
		"galleryDescription": merged.GalleryDescription,
		"gallery":            string(galleryJSON),
	}
	if len(removeImages) > 0 {
		removeJSON, err := json.Marshal(removeImages)
		if err != nil {
			return nil, validationError(fmt.Sprintf("encoding removal list: %v", err))
		}
		formData["removeImages"] = string(removeJSON)
	}

	req := c.http.R().
		SetContext(ctx).
		SetMultipartFormData(formData)

	for _, up := range uploads {
		f, err := os.Open(up.Path)
		if err != nil {
			return nil, validationError(fmt.Sprintf("opening %s: %v", up.Path, err))
		}
		defer f.Close()
		req.SetMultipartField("galleryFiles", up.UploadName(), "application/octet-stream", f)
	}

	var result TourResponse
	var apiErr TourResponse
	resp, err := req.
		SetResult(&result).
		SetError(&apiErr).
		Put("/services/" + id)
	if err != nil {
		return nil, classifyTransport(err)
	}
	if resp.IsError() {
		return nil, classifyStatus(resp.StatusCode(), apiErr.Message)
	}

	logger.Info("updated gallery for tour %s (%d uploads, %d removals)", id, len(uploads), len(removeImages))
	return &result.Data, nil
}

// FinalizeTour transitions the record out of the implicit incomplete state
// by writing status "draft" on top of the full accumulated record.
func (c *Client) FinalizeTour(ctx context.Context, id string, draft *Tour) (*Tour, error) {
	if id == "" {
		return nil, validationError("tour id is not set - nothing to finalize")
	}

	final := *draft
	final.Status = "draft"
	return c.UpdateTour(ctx, id, &final)
}

// ListTours fetches the catalog listing.
func (c *Client) ListTours(ctx context.Context) (*TourListResponse, error) {
	var result TourListResponse
	var apiErr TourListResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&apiErr).
		Get("/services")
	if err != nil {
		return nil, classifyTransport(err)
	}
	if resp.IsError() {
		return nil, classifyStatus(resp.StatusCode(), apiErr.Message)
	}
	return &result, nil
}

// GetTour fetches a single tour by id.
func (c *Client) GetTour(ctx context.Context, id string) (*Tour, error) {
	if id == "" {
		return nil, validationError("tour id is required")
	}

	var result TourResponse
	var apiErr TourResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&apiErr).
		Get("/services/" + id)
	if err != nil {
		return nil, classifyTransport(err)
	}
	if resp.IsError() {
		return nil, classifyStatus(resp.StatusCode(), apiErr.Message)
	}
	return &result.Data, nil
}

// ListBookings fetches the booked-tours listing.
func (c *Client) ListBookings(ctx context.Context) (*BookingListResponse, error) {
	var result BookingListResponse
	var apiErr BookingListResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&apiErr).
		Get("/booking")
	if err != nil {
		return nil, classifyTransport(err)
	}
	if resp.IsError() {
		return nil, classifyStatus(resp.StatusCode(), apiErr.Message)
	}
	return &result, nil
}
