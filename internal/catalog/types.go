// Package catalog holds the tour catalog data model and the REST client
// used to create, update and finalize tours against the remote catalog API.
package catalog

// Highlight is one named selling point in a tour's information section.
type Highlight struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// Information is the free-text description plus highlights section (step 1).
type Information struct {
	InfoDescription string      `json:"infoDescription" validate:"required"`
	Highlights      []Highlight `json:"highlights" validate:"min=1,dive"`
}

// ItineraryDay is a single day in the tour plan. Day numbers are 1-based.
type ItineraryDay struct {
	Day         int      `json:"day" validate:"min=1"`
	Title       string   `json:"title" validate:"required"`
	Description []string `json:"description" validate:"min=1,dive,required"`
	Amenities   []string `json:"amenities" validate:"min=1,dive,required"`
}

// TourPlan is the itinerary section (step 2).
type TourPlan struct {
	Title     string         `json:"title" validate:"required"`
	Itinerary []ItineraryDay `json:"itinerary" validate:"min=1,dive"`
}

// Location is the flat location section (step 3). All fields required.
type Location struct {
	Title             string `json:"title" validate:"required"`
	FirstDescription  string `json:"first_description" validate:"required"`
	MapEmbed          string `json:"mapEmbed" validate:"required,url"`
	SecondDescription string `json:"second_description" validate:"required"`
}

// GalleryImage is one stored gallery image with its grid span hints.
// Image is empty for placeholder entries whose file is uploaded alongside;
// the server fills in the URL after storing the asset.
type GalleryImage struct {
	Image   string `json:"image,omitempty"`
	ColSpan int    `json:"colSpan,omitempty" validate:"omitempty,min=1,max=3"`
	RowSpan int    `json:"rowSpan,omitempty" validate:"omitempty,min=1,max=3"`
}

// Gallery is the gallery section (step 4).
type Gallery struct {
	GalleryDescription string         `json:"galleryDescription" validate:"required"`
	Images             []GalleryImage `json:"images" validate:"min=1,dive"`
}

// Tour is the full catalog record the wizard assembles incrementally.
// ID is server-assigned on create and immutable afterwards. CreatedAt,
// UpdatedAt and Revision are server-managed and round-tripped unchanged.
type Tour struct {
	ID              string `json:"_id,omitempty"`
	Name            string `json:"name" validate:"required,min=3,max=100"`
	Description     string `json:"description" validate:"required,min=20,max=1000"`
	Price           float64 `json:"price" validate:"min=0"`
	PriceUnit       string  `json:"priceUnit" validate:"required"`
	Participants    int     `json:"participants" validate:"min=1,max=100"`
	ParticipantType string  `json:"participantType" validate:"required"`
	Rating          float64 `json:"rating" validate:"min=0,max=5"`
	ReviewCount     int     `json:"reviewCount" validate:"min=0"`
	Destination     string  `json:"destination" validate:"required,min=3"`
	DepartureDate   string  `json:"departure_date,omitempty"`
	Image           string  `json:"image" validate:"required,imageurl"`

	Information *Information `json:"information,omitempty"`
	TourPlan    *TourPlan    `json:"tourPlan,omitempty"`
	Location    *Location    `json:"location,omitempty"`
	Gallery     *Gallery     `json:"gallery,omitempty"`

	// Status stays empty ("incomplete") until finalization sets it to "draft".
	Status string `json:"status,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	Revision  int    `json:"__v,omitempty"`
}

// Booking is one booked-tour record from GET /booking.
type Booking struct {
	ID             string  `json:"_id"`
	ServiceID      string  `json:"serviceId"`
	UserID         string  `json:"userId,omitempty"`
	CustomerName   string  `json:"customerName"`
	CustomerEmail  string  `json:"customerEmail"`
	CustomerPhone  string  `json:"customerPhone,omitempty"`
	NumberOfTicket int     `json:"NumberOfTicket"`
	TotalPrice     float64 `json:"totalPrice"`
	Status         string  `json:"status,omitempty"`
	CreatedAt      string  `json:"createdAt,omitempty"`
}

// TourResponse is the API envelope returned by create/update/get.
type TourResponse struct {
	Success bool   `json:"success"`
	Data    Tour   `json:"data"`
	Message string `json:"message"`
}

// TourListResponse is the API envelope returned by the listing endpoint.
type TourListResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Data    []Tour `json:"data"`
	Message string `json:"message"`
}

// BookingListResponse is the API envelope returned by the bookings endpoint.
type BookingListResponse struct {
	Success bool      `json:"success"`
	Count   int       `json:"count"`
	Data    []Booking `json:"data"`
	Message string    `json:"message"`
}
