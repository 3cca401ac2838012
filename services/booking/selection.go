package booking

import (
	"math"
	"time"

	"urbanpilgrim/models"
)

// NewSelection builds the initial selection for an experience: quantity 1,
// the first offered occupancy, and the first future-dated package if one
// exists (no package otherwise).
func NewSelection(exp *models.Experience, now time.Time) models.BookingSelection {
	sel := models.BookingSelection{
		Occupancy: models.OccupancySingle,
		Quantity:  1,
	}
	if len(exp.OccupancyOptions) > 0 {
		sel.Occupancy = exp.OccupancyOptions[0]
	}
	sel.SelectedDateRange = exp.FirstFutureRange(now)
	return sel
}

// ApplyDateRange sets the selected package. The range must be one of the
// experience's available packages.
func ApplyDateRange(exp *models.Experience, sel *models.BookingSelection, r models.DateRange) error {
	if !exp.HasDateRange(r) {
		return NewValidationError("selected dates are not an available package for this experience")
	}
	sel.SelectedDateRange = &r
	return nil
}

// ApplyOccupancy sets the occupancy. Only values the experience offers are
// accepted.
func ApplyOccupancy(exp *models.Experience, sel *models.BookingSelection, o models.Occupancy) error {
	if !exp.HasOccupancy(o) {
		return NewValidationError("this occupancy is not offered for this experience")
	}
	sel.Occupancy = o
	return nil
}

// ChangeQuantity adjusts the quantity by delta. Quantity never drops below 1;
// there is no upper bound (remaining-capacity checks are a server concern
// downstream of the review hand-off).
func ChangeQuantity(sel *models.BookingSelection, delta int) {
	sel.Quantity += delta
	if sel.Quantity < 1 {
		sel.Quantity = 1
	}
}

// CurrentPrice returns the per-night price for the selected occupancy:
// the couple price when occupancy is Couple and it is set, the single price
// when occupancy is Single and it is set, otherwise the legacy flat price.
// Nil means "price on request".
func CurrentPrice(exp *models.Experience, occupancy models.Occupancy) *float64 {
	if occupancy == models.OccupancyCouple && exp.PriceCouple != nil {
		return exp.PriceCouple
	}
	if occupancy == models.OccupancySingle && exp.PriceSingle != nil {
		return exp.PriceSingle
	}
	if exp.Price != nil {
		return exp.Price
	}
	return nil
}

// Nights returns the number of billable nights for the selection. Without a
// package selection it defaults to 1. A same-day range still bills one night.
func Nights(sel *models.BookingSelection) int {
	if sel.SelectedDateRange == nil {
		return 1
	}
	nights := int(math.Ceil(sel.SelectedDateRange.To.Sub(sel.SelectedDateRange.From).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}

// TotalPrice computes perNight * nights * quantity, treating an entirely
// absent price as 0.
func TotalPrice(exp *models.Experience, sel *models.BookingSelection) float64 {
	perNight := 0.0
	if p := CurrentPrice(exp, sel.Occupancy); p != nil {
		perNight = *p
	}
	return perNight * float64(Nights(sel)) * float64(sel.Quantity)
}

// Quote assembles the derived price snapshot for a selection.
func Quote(exp *models.Experience, sel *models.BookingSelection) models.BookingQuote {
	return models.BookingQuote{
		PerNight: CurrentPrice(exp, sel.Occupancy),
		Nights:   Nights(sel),
		Quantity: sel.Quantity,
		Total:    TotalPrice(exp, sel),
	}
}
