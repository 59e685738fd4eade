package validation

import (
	"regexp"
	"strings"
	"time"

	"casabook/server/internal/apperrors"
	"casabook/server/internal/models"
)

const dateLayout = "2006-01-02"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// now is swapped out in tests to pin the "not in the past" rule.
var now = time.Now

// PropertyLookup is the single storage dependency of reservation
// validation: the referential check on property_id.
type PropertyLookup interface {
	PropertyExists(id int64) (bool, error)
}

// ValidateReservation checks a candidate reservation payload. The
// structural rules run first; only when all of them pass does the
// referential property lookup hit the store, so a malformed property_id
// never triggers a query.
func ValidateReservation(input *models.ReservationInput, lookup PropertyLookup) error {
	if input.PropertyID == nil {
		return apperrors.NewValidationError("property_id is required")
	}
	if *input.PropertyID <= 0 {
		return apperrors.NewValidationError("property_id must be a positive integer")
	}
	if strings.TrimSpace(input.GuestName) == "" {
		return apperrors.NewValidationError("guest_name is required")
	}
	if strings.TrimSpace(input.GuestEmail) == "" {
		return apperrors.NewValidationError("guest_email is required")
	}
	if !emailPattern.MatchString(input.GuestEmail) {
		return apperrors.NewValidationError("guest_email must be a valid email address")
	}

	if input.CheckInDate == "" {
		return apperrors.NewValidationError("check_in_date is required")
	}
	checkIn, err := time.Parse(dateLayout, input.CheckInDate)
	if err != nil {
		return apperrors.NewValidationError("check_in_date must be a valid ISO date")
	}
	if checkIn.Before(today()) {
		return apperrors.NewValidationError("check_in_date cannot be in the past")
	}

	if input.CheckOutDate == "" {
		return apperrors.NewValidationError("check_out_date is required")
	}
	checkOut, err := time.Parse(dateLayout, input.CheckOutDate)
	if err != nil {
		return apperrors.NewValidationError("check_out_date must be a valid ISO date")
	}
	if !checkOut.After(checkIn) {
		return apperrors.NewValidationError("check_out_date must be after check_in_date")
	}

	if input.TotalPrice == nil {
		return apperrors.NewValidationError("total_price is required")
	}
	if *input.TotalPrice <= 0 {
		return apperrors.NewValidationError("total_price must be a positive number")
	}

	if input.Status != "" && !isValidStatus(input.Status) {
		return apperrors.NewValidationError("status must be one of pending, confirmed, cancelled")
	}

	exists, err := lookup.PropertyExists(*input.PropertyID)
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	if !exists {
		return apperrors.NewValidationError("invalid property_id: property does not exist")
	}

	return nil
}

func isValidStatus(status string) bool {
	switch status {
	case models.StatusPending, models.StatusConfirmed, models.StatusCancelled:
		return true
	}
	return false
}

// today is the current calendar date at UTC midnight, comparable with
// parsed check-in dates.
func today() time.Time {
	y, m, d := now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
