package booking

import (
	"encoding/json"
	"fmt"
	"net/url"

	"urbanpilgrim/models"
)

// ReviewURL builds the booking-review hand-off URL. It carries the full
// selection snapshot as query parameters; nothing is persisted server-side
// here, confirmation and payment happen downstream.
func ReviewURL(baseURL, experienceID string, sel *models.BookingSelection) (string, error) {
	if sel.SelectedDateRange == nil {
		return "", ErrNoDateRange
	}

	dates, err := json.Marshal(sel.SelectedDateRange)
	if err != nil {
		return "", fmt.Errorf("failed to encode selected dates: %w", err)
	}

	q := url.Values{}
	q.Set("experienceId", experienceID)
	q.Set("occupancy", string(sel.Occupancy))
	q.Set("sessionCount", fmt.Sprintf("%d", sel.Quantity))
	q.Set("selectedDates", string(dates))

	return baseURL + "/booking/review?" + q.Encode(), nil
}

// LoginRedirectURL wraps a review URL so an unauthenticated user is bounced
// through login and back to the review screen with the selection preserved.
func LoginRedirectURL(baseURL, reviewURL string) string {
	q := url.Values{}
	q.Set("redirect", reviewURL)
	return baseURL + "/login?" + q.Encode()
}
