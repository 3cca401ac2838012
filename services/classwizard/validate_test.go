package classwizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"urbanpilgrim/models"
)

func iptr(v int) *int         { return &v }
func fptr(v float64) *float64 { return &v }
func tptr(v time.Time) *time.Time {
	return &v
}

// completeDraft builds a draft that satisfies every step predicate, with the
// online mode enabled.
func completeDraft() models.ClassDraft {
	return models.ClassDraft{
		Title:               "Morning Pranayama",
		Description:         "Breathwork for beginners",
		About:               "A gentle introduction to yogic breathing",
		Specialty:           "Yoga",
		GuideCertifications: []string{"RYT-200"},
		SkillsToLearn:       []string{"Anulom Vilom"},
		AboutSections: []models.AboutSection{
			{Header: "What you need", Paragraph: "A mat and a quiet corner"},
		},
		Modes: models.ClassModes{
			Online: models.ModeConfig{Enabled: true, MaxCapacity: iptr(20), Price: fptr(500)},
		},
		ScheduleConfig: models.ScheduleConfig{
			SelectedDays: []string{"Monday", "Wednesday"},
			TimeSlots: models.ModeTimeSlots{
				Online: []models.TimeSlot{{StartTime: "07:00", EndTime: "08:00"}},
			},
			DateRange: models.ScheduleRange{
				StartDate: tptr(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)),
				EndDate:   tptr(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)),
			},
		},
	}
}

func TestValidateStepBasicInfo(t *testing.T) {
	t.Run("all four fields required", func(t *testing.T) {
		d := completeDraft()
		assert.True(t, ValidateStep(&d, 1))

		d.Title = ""
		assert.False(t, ValidateStep(&d, 1))
	})

	t.Run("whitespace-only counts as empty", func(t *testing.T) {
		d := completeDraft()
		d.Specialty = "   "
		assert.False(t, ValidateStep(&d, 1))
	})
}

func TestValidateStepCredentials(t *testing.T) {
	t.Run("needs a non-blank certification and skill", func(t *testing.T) {
		d := completeDraft()
		assert.True(t, ValidateStep(&d, 2))

		d.GuideCertifications = []string{"", "  "}
		assert.False(t, ValidateStep(&d, 2))

		d.GuideCertifications = []string{"RYT-200"}
		d.SkillsToLearn = nil
		assert.False(t, ValidateStep(&d, 2))
	})
}

func TestValidateStepAboutSections(t *testing.T) {
	t.Run("every section needs header and paragraph", func(t *testing.T) {
		d := completeDraft()
		assert.True(t, ValidateStep(&d, 3))

		d.AboutSections = append(d.AboutSections, models.AboutSection{Header: "Empty"})
		assert.False(t, ValidateStep(&d, 3))
	})

	t.Run("no sections is valid", func(t *testing.T) {
		d := completeDraft()
		d.AboutSections = nil
		assert.True(t, ValidateStep(&d, 3))
	})
}

func TestValidateStepModes(t *testing.T) {
	t.Run("at least one mode must be enabled", func(t *testing.T) {
		d := completeDraft()
		d.Modes = models.ClassModes{}
		assert.False(t, ValidateStep(&d, 4))
	})

	t.Run("enabled online mode needs capacity and price", func(t *testing.T) {
		d := completeDraft()
		d.Modes.Online.Price = nil
		assert.False(t, ValidateStep(&d, 4))
	})

	t.Run("offline mode without a resolvable address fails", func(t *testing.T) {
		d := completeDraft()
		d.Modes.Offline = models.ModeConfig{Enabled: true, MaxCapacity: iptr(10), Price: fptr(800)}
		d.SelectedAddressID = ""
		d.IsNewAddress = false
		assert.False(t, ValidateStep(&d, 4))
	})

	t.Run("offline mode with an existing address id passes", func(t *testing.T) {
		d := completeDraft()
		d.Modes.Offline = models.ModeConfig{Enabled: true, MaxCapacity: iptr(10), Price: fptr(800)}
		d.SelectedAddressID = "addr-1"
		assert.True(t, ValidateStep(&d, 4))
	})

	t.Run("offline mode with a new inline address needs a street", func(t *testing.T) {
		d := completeDraft()
		d.Modes.Offline = models.ModeConfig{Enabled: true, MaxCapacity: iptr(10), Price: fptr(800)}
		d.IsNewAddress = true
		d.NewAddress = models.Address{City: "Mumbai"}
		assert.False(t, ValidateStep(&d, 4))

		d.NewAddress.Street = "12 Marine Drive"
		assert.True(t, ValidateStep(&d, 4))
	})

	t.Run("populated address without the flag does not count", func(t *testing.T) {
		d := completeDraft()
		d.Modes.Offline = models.ModeConfig{Enabled: true, MaxCapacity: iptr(10), Price: fptr(800)}
		d.IsNewAddress = false
		d.NewAddress = models.Address{Street: "12 Marine Drive"}
		assert.False(t, ValidateStep(&d, 4))
	})
}

func TestValidateStepSchedule(t *testing.T) {
	t.Run("needs days, both bounds, and slots per enabled mode", func(t *testing.T) {
		d := completeDraft()
		assert.True(t, ValidateStep(&d, 5))

		d.ScheduleConfig.SelectedDays = nil
		assert.False(t, ValidateStep(&d, 5))
	})

	t.Run("missing end date fails", func(t *testing.T) {
		d := completeDraft()
		d.ScheduleConfig.DateRange.EndDate = nil
		assert.False(t, ValidateStep(&d, 5))
	})

	t.Run("enabled mode without slots fails", func(t *testing.T) {
		d := completeDraft()
		d.ScheduleConfig.TimeSlots.Online = nil
		assert.False(t, ValidateStep(&d, 5))
	})

	t.Run("disabled mode needs no slots", func(t *testing.T) {
		d := completeDraft()
		d.ScheduleConfig.TimeSlots.Offline = nil
		assert.True(t, ValidateStep(&d, 5))
	})
}

func TestValidateStepPhotos(t *testing.T) {
	d := completeDraft()
	assert.True(t, ValidateStep(&d, 6), "photos step has no blocking predicate")
}

func TestValidateAll(t *testing.T) {
	d := completeDraft()
	assert.True(t, ValidateAll(&d))

	d.Description = ""
	assert.False(t, ValidateAll(&d))
}
