package catalog

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// imageURLPattern accepts direct links to common image formats, with an
// allow-list for hosts that serve images without a file extension.
var imageURLPattern = regexp.MustCompile(`(?i)^(https?://).+\.(jpg|jpeg|png|webp|gif)(\?.*)?$`)
var imageHostPattern = regexp.MustCompile(`(?i)unsplash\.com|res\.cloudinary\.com`)

// IsImageURL reports whether s plausibly resolves to an image resource.
func IsImageURL(s string) bool {
	return imageURLPattern.MatchString(s) || imageHostPattern.MatchString(s)
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func sectionValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// "imageurl" backs the Tour.Image tag.
		_ = validate.RegisterValidation("imageurl", func(fl validator.FieldLevel) bool {
			return IsImageURL(fl.Field().String())
		})
	})
	return validate
}

// fieldMessages turns validator output into one readable sentence. The step
// controllers produce their own inline per-field errors; this gate exists so
// an incomplete structural shape can never reach the wire.
func fieldMessages(section string, err error) *Error {
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) && len(invalid) > 0 {
		fe := invalid[0]
		return validationError(section + ": field " + fe.Field() + " failed rule " + fe.Tag())
	}
	return validationError(section + ": " + err.Error())
}

// ValidateBasic checks the step-0 scalar group before create is attempted.
func ValidateBasic(t *Tour) error {
	if err := sectionValidator().StructPartial(t,
		"Name", "Description", "Price", "PriceUnit", "Participants",
		"ParticipantType", "Rating", "ReviewCount", "Destination", "Image",
	); err != nil {
		return fieldMessages("basic info", err)
	}
	return nil
}

// ValidateInformation checks the step-1 section shape.
func ValidateInformation(info *Information) error {
	if info == nil {
		return validationError("information section is missing")
	}
	if err := sectionValidator().Struct(info); err != nil {
		return fieldMessages("information", err)
	}
	return nil
}

// ValidateTourPlan checks the step-2 section shape.
func ValidateTourPlan(plan *TourPlan) error {
	if plan == nil {
		return validationError("tour plan section is missing")
	}
	if err := sectionValidator().Struct(plan); err != nil {
		return fieldMessages("tour plan", err)
	}
	return nil
}

// ValidateLocation checks the step-3 section shape.
func ValidateLocation(loc *Location) error {
	if loc == nil {
		return validationError("location section is missing")
	}
	if err := sectionValidator().Struct(loc); err != nil {
		return fieldMessages("location", err)
	}
	return nil
}

// ValidateGallery checks the step-4 section shape. Placeholder entries with
// an empty Image are legal here; their URLs arrive with the server response.
func ValidateGallery(g *Gallery) error {
	if g == nil {
		return validationError("gallery section is missing")
	}
	if strings.TrimSpace(g.GalleryDescription) == "" {
		return validationError("gallery: description is required")
	}
	if len(g.Images) == 0 {
		return validationError("gallery: at least one image is required")
	}
	for _, img := range g.Images {
		if img.ColSpan < 0 || img.ColSpan > 3 || img.RowSpan < 0 || img.RowSpan > 3 {
			return validationError("gallery: spans must be between 1 and 3")
		}
	}
	return nil
}
