// Package validation holds the rule sets that guard property and
// reservation writes. Rules run in declaration order and the first failure
// wins, so a payload with several bad fields reports the earliest one.
package validation

import (
	"net/url"
	"strings"

	"casabook/server/internal/apperrors"
	"casabook/server/internal/models"
)

// ValidateProperty checks a candidate property payload. It is pure: no
// lookup is needed because properties reference nothing.
func ValidateProperty(input *models.PropertyInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return apperrors.NewValidationError("title is required")
	}
	if strings.TrimSpace(input.Address) == "" {
		return apperrors.NewValidationError("address is required")
	}
	if input.PricePerNight == nil {
		return apperrors.NewValidationError("price_per_night is required")
	}
	if *input.PricePerNight <= 0 {
		return apperrors.NewValidationError("price_per_night must be a positive number")
	}
	if input.Bedrooms != nil && *input.Bedrooms < 0 {
		return apperrors.NewValidationError("bedrooms must be greater than or equal to 0")
	}
	if input.Bathrooms != nil && *input.Bathrooms < 0 {
		return apperrors.NewValidationError("bathrooms must be greater than or equal to 0")
	}
	if input.MaxGuests != nil && *input.MaxGuests < 1 {
		return apperrors.NewValidationError("max_guests must be greater than or equal to 1")
	}
	if input.ImageURL != "" && !isValidURI(input.ImageURL) {
		return apperrors.NewValidationError("image_url must be a valid URI")
	}
	return nil
}

func isValidURI(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	return err == nil && u.Scheme != ""
}
