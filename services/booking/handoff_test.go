package booking

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urbanpilgrim/models"
)

func TestReviewURL(t *testing.T) {
	base := "https://urbanpilgrim.example"
	rng := models.DateRange{
		From: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 10, 4, 0, 0, 0, 0, time.UTC),
	}

	t.Run("fails without a package selection", func(t *testing.T) {
		sel := models.BookingSelection{Occupancy: models.OccupancySingle, Quantity: 1}

		_, err := ReviewURL(base, "exp-1", &sel)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "select a date package")
	})

	t.Run("carries the full selection snapshot", func(t *testing.T) {
		sel := models.BookingSelection{
			SelectedDateRange: &rng,
			Occupancy:         models.OccupancyCouple,
			Quantity:          2,
		}

		got, err := ReviewURL(base, "exp-1", &sel)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, base+"/booking/review?"))

		parsed, err := url.Parse(got)
		require.NoError(t, err)
		q := parsed.Query()
		assert.Equal(t, "exp-1", q.Get("experienceId"))
		assert.Equal(t, "Couple", q.Get("occupancy"))
		assert.Equal(t, "2", q.Get("sessionCount"))

		var decoded models.DateRange
		require.NoError(t, json.Unmarshal([]byte(q.Get("selectedDates")), &decoded))
		assert.True(t, decoded.From.Equal(rng.From))
		assert.True(t, decoded.To.Equal(rng.To))
	})
}

func TestLoginRedirectURL(t *testing.T) {
	base := "https://urbanpilgrim.example"
	review := base + "/booking/review?experienceId=exp-1&occupancy=Single"

	got := LoginRedirectURL(base, review)
	assert.True(t, strings.HasPrefix(got, base+"/login?"))

	parsed, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, review, parsed.Query().Get("redirect"))
}
