package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urbanpilgrim/models"
)

func fptr(v float64) *float64 { return &v }

func testExperience() *models.Experience {
	return &models.Experience{
		ID:               "exp-1",
		Name:             "Himalayan Silence Retreat",
		Location:         "Rishikesh",
		PriceSingle:      fptr(1000),
		PriceCouple:      fptr(1800),
		OccupancyOptions: []models.Occupancy{models.OccupancySingle, models.OccupancyCouple},
		AvailableDates: []models.DateRange{
			{
				From: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2026, 10, 4, 0, 0, 0, 0, time.UTC),
			},
			{
				From: time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2026, 11, 8, 0, 0, 0, 0, time.UTC),
			},
		},
	}
}

func TestChangeQuantity(t *testing.T) {
	t.Run("never drops below one", func(t *testing.T) {
		sel := models.BookingSelection{Quantity: 1}
		for i := 0; i < 5; i++ {
			ChangeQuantity(&sel, -1)
		}
		assert.Equal(t, 1, sel.Quantity)
	})

	t.Run("increments and decrements", func(t *testing.T) {
		sel := models.BookingSelection{Quantity: 1}
		ChangeQuantity(&sel, 1)
		ChangeQuantity(&sel, 1)
		assert.Equal(t, 3, sel.Quantity)
		ChangeQuantity(&sel, -1)
		assert.Equal(t, 2, sel.Quantity)
	})

	t.Run("large negative delta floors at one", func(t *testing.T) {
		sel := models.BookingSelection{Quantity: 4}
		ChangeQuantity(&sel, -100)
		assert.Equal(t, 1, sel.Quantity)
	})
}

func TestNights(t *testing.T) {
	t.Run("defaults to one without a selection", func(t *testing.T) {
		sel := models.BookingSelection{}
		assert.Equal(t, 1, Nights(&sel))
	})

	t.Run("same-day range bills one night", func(t *testing.T) {
		day := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
		sel := models.BookingSelection{
			SelectedDateRange: &models.DateRange{From: day, To: day},
		}
		assert.Equal(t, 1, Nights(&sel))
	})

	t.Run("three-day span is three nights", func(t *testing.T) {
		sel := models.BookingSelection{
			SelectedDateRange: &models.DateRange{
				From: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2026, 10, 4, 0, 0, 0, 0, time.UTC),
			},
		}
		assert.Equal(t, 3, Nights(&sel))
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		sel := models.BookingSelection{
			SelectedDateRange: &models.DateRange{
				From: time.Date(2026, 10, 1, 14, 0, 0, 0, time.UTC),
				To:   time.Date(2026, 10, 3, 10, 0, 0, 0, time.UTC),
			},
		}
		assert.Equal(t, 2, Nights(&sel))
	})
}

func TestCurrentPrice(t *testing.T) {
	t.Run("couple occupancy uses couple price", func(t *testing.T) {
		exp := testExperience()
		price := CurrentPrice(exp, models.OccupancyCouple)
		require.NotNil(t, price)
		assert.Equal(t, 1800.0, *price)
	})

	t.Run("single occupancy uses single price", func(t *testing.T) {
		exp := testExperience()
		price := CurrentPrice(exp, models.OccupancySingle)
		require.NotNil(t, price)
		assert.Equal(t, 1000.0, *price)
	})

	t.Run("falls back to legacy price regardless of occupancy", func(t *testing.T) {
		exp := testExperience()
		exp.PriceSingle = nil
		exp.PriceCouple = nil
		exp.Price = fptr(1500)

		for _, occ := range []models.Occupancy{models.OccupancySingle, models.OccupancyCouple} {
			price := CurrentPrice(exp, occ)
			require.NotNil(t, price)
			assert.Equal(t, 1500.0, *price)
		}
	})

	t.Run("couple without couple price skips to legacy", func(t *testing.T) {
		exp := testExperience()
		exp.PriceCouple = nil
		exp.Price = fptr(1500)

		price := CurrentPrice(exp, models.OccupancyCouple)
		require.NotNil(t, price)
		assert.Equal(t, 1500.0, *price)
	})

	t.Run("no price at all means price on request", func(t *testing.T) {
		exp := testExperience()
		exp.PriceSingle = nil
		exp.PriceCouple = nil
		exp.Price = nil
		assert.Nil(t, CurrentPrice(exp, models.OccupancySingle))
	})
}

func TestTotalPrice(t *testing.T) {
	t.Run("per-night times nights times quantity", func(t *testing.T) {
		exp := testExperience()
		sel := models.BookingSelection{
			SelectedDateRange: &exp.AvailableDates[0], // 3 nights
			Occupancy:         models.OccupancySingle,
			Quantity:          2,
		}
		assert.Equal(t, 6000.0, TotalPrice(exp, &sel))
	})

	t.Run("absent price yields zero total", func(t *testing.T) {
		exp := testExperience()
		exp.PriceSingle = nil
		exp.PriceCouple = nil
		sel := models.BookingSelection{
			SelectedDateRange: &exp.AvailableDates[0],
			Occupancy:         models.OccupancySingle,
			Quantity:          2,
		}
		assert.Equal(t, 0.0, TotalPrice(exp, &sel))
	})
}

func TestNewSelection(t *testing.T) {
	t.Run("defaults to first future range", func(t *testing.T) {
		exp := testExperience()
		now := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)

		sel := NewSelection(exp, now)
		require.NotNil(t, sel.SelectedDateRange)
		assert.Equal(t, exp.AvailableDates[1].From, sel.SelectedDateRange.From)
		assert.Equal(t, 1, sel.Quantity)
		assert.Equal(t, models.OccupancySingle, sel.Occupancy)
	})

	t.Run("no future range leaves selection empty", func(t *testing.T) {
		exp := testExperience()
		now := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)

		sel := NewSelection(exp, now)
		assert.Nil(t, sel.SelectedDateRange)
		assert.Equal(t, 1, sel.Quantity)
	})
}

func TestApplyDateRange(t *testing.T) {
	t.Run("accepts an offered package", func(t *testing.T) {
		exp := testExperience()
		sel := models.BookingSelection{Quantity: 1}
		require.NoError(t, ApplyDateRange(exp, &sel, exp.AvailableDates[0]))
		require.NotNil(t, sel.SelectedDateRange)
	})

	t.Run("rejects an unknown range", func(t *testing.T) {
		exp := testExperience()
		sel := models.BookingSelection{Quantity: 1}
		err := ApplyDateRange(exp, &sel, models.DateRange{
			From: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2026, 12, 4, 0, 0, 0, 0, time.UTC),
		})
		require.Error(t, err)
		assert.Nil(t, sel.SelectedDateRange)
	})
}

func TestApplyOccupancy(t *testing.T) {
	t.Run("rejects an occupancy the experience does not offer", func(t *testing.T) {
		exp := testExperience()
		exp.OccupancyOptions = []models.Occupancy{models.OccupancySingle}
		sel := models.BookingSelection{Occupancy: models.OccupancySingle, Quantity: 1}

		err := ApplyOccupancy(exp, &sel, models.OccupancyCouple)
		require.Error(t, err)
		assert.Equal(t, models.OccupancySingle, sel.Occupancy)
	})
}
