// Package promotion finds the advertisement discount that applies to a
// product at a given instant and computes discounted prices.
package promotion

import (
	"errors"
	"time"

	"github.com/mariam168/smart-shop-sub001/models"
)

var (
	ErrInvalidWindow     = errors.New("promotion: startDate must not be after endDate")
	ErrInvalidPercentage = errors.New("promotion: discountPercentage must be between 0 and 100")
	ErrInvalidType       = errors.New("promotion: unknown advertisement type")
)

// IsEffective reports whether ad applies at instant t: it is active and t lies
// inside its window, where a missing bound is open.
func IsEffective(ad *models.Advertisement, t time.Time) bool {
	if ad == nil || !ad.IsActive {
		return false
	}
	if ad.StartDate != nil && ad.StartDate.After(t) {
		return false
	}
	if ad.EndDate != nil && ad.EndDate.Before(t) {
		return false
	}
	return true
}

// ValidateWindow rejects a window whose start is after its end.
func ValidateWindow(start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return ErrInvalidWindow
	}
	return nil
}

func ValidatePercentage(pct float64) error {
	if pct < 0 || pct > 100 {
		return ErrInvalidPercentage
	}
	return nil
}

// Validate is the write-time check for an advertisement. Nothing is corrected
// silently; the first violation is returned.
func Validate(ad *models.Advertisement) error {
	if err := ad.Title.Validate(true); err != nil {
		return models.WrapValidationError("title", err)
	}
	if err := ValidatePercentage(ad.DiscountPercentage); err != nil {
		return models.WrapValidationError("discountPercentage", err)
	}
	if !ad.Type.Valid() {
		return models.WrapValidationError("type", ErrInvalidType)
	}
	if err := ValidateWindow(ad.StartDate, ad.EndDate); err != nil {
		return models.WrapValidationError("endDate", err)
	}
	return nil
}
