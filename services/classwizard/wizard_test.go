package classwizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urbanpilgrim/models"
)

func newSession() *models.WizardSession {
	return &models.WizardSession{
		SessionID: "sess-1",
		GuideID:   "guide-1",
		Step:      models.WizardFirstStep,
		Draft:     NewDraft(),
	}
}

func TestNext(t *testing.T) {
	t.Run("blocked by an incomplete step", func(t *testing.T) {
		s := newSession()

		Next(s)
		assert.Equal(t, 1, s.Step)
		assert.Equal(t, IncompleteStepMessage, s.Err)
	})

	t.Run("advances once the step is complete", func(t *testing.T) {
		s := newSession()
		s.Draft.Title = "Morning Pranayama"
		s.Draft.Description = "Breathwork for beginners"
		s.Draft.About = "A gentle introduction"
		s.Draft.Specialty = "Yoga"

		Next(s)
		assert.Equal(t, 2, s.Step)
		assert.Empty(t, s.Err)
	})

	t.Run("clamps at the last step", func(t *testing.T) {
		s := newSession()
		s.Draft = completeDraft()
		s.Step = models.WizardLastStep

		Next(s)
		assert.Equal(t, models.WizardLastStep, s.Step)
	})
}

func TestPrev(t *testing.T) {
	t.Run("moves back and clears the error", func(t *testing.T) {
		s := newSession()
		s.Step = 3
		s.Err = IncompleteStepMessage

		Prev(s)
		assert.Equal(t, 2, s.Step)
		assert.Empty(t, s.Err)
	})

	t.Run("clamps at the first step", func(t *testing.T) {
		s := newSession()

		Prev(s)
		assert.Equal(t, models.WizardFirstStep, s.Step)
	})
}

func TestStagePhotos(t *testing.T) {
	photo := func(i string) models.StagedPhoto {
		return models.StagedPhoto{PublicID: i, URL: "https://img/" + i}
	}

	t.Run("rejects a batch exceeding the cap whole", func(t *testing.T) {
		s := newSession()
		batch := []models.StagedPhoto{
			photo("1"), photo("2"), photo("3"), photo("4"), photo("5"), photo("6"),
		}

		err := StagePhotos(s, batch)
		require.Error(t, err)
		assert.Empty(t, s.Photos, "nothing from the rejected batch is kept")
	})

	t.Run("accepts up to the cap", func(t *testing.T) {
		s := newSession()
		batch := []models.StagedPhoto{
			photo("1"), photo("2"), photo("3"), photo("4"), photo("5"),
		}

		require.NoError(t, StagePhotos(s, batch))
		assert.Len(t, s.Photos, 5)
	})

	t.Run("counts already staged photos against the cap", func(t *testing.T) {
		s := newSession()
		require.NoError(t, StagePhotos(s, []models.StagedPhoto{photo("1"), photo("2"), photo("3")}))

		err := StagePhotos(s, []models.StagedPhoto{photo("4"), photo("5"), photo("6")})
		require.Error(t, err)
		assert.Len(t, s.Photos, 3)
	})
}

func TestReset(t *testing.T) {
	s := newSession()
	s.Draft = completeDraft()
	s.Step = models.WizardLastStep
	s.Submitted = true
	s.ClassID = "class-1"
	s.Photos = []models.StagedPhoto{{PublicID: "p"}}

	Reset(s)
	assert.Equal(t, models.WizardFirstStep, s.Step)
	assert.False(t, s.Submitted)
	assert.Empty(t, s.ClassID)
	assert.Empty(t, s.Photos)
	assert.Empty(t, s.Draft.Title)
}

func TestArrayPrimitives(t *testing.T) {
	t.Run("add, update, remove by index", func(t *testing.T) {
		list := []string{"a"}
		list = AddItem(list, "b")
		assert.Equal(t, []string{"a", "b"}, list)

		list = UpdateItem(list, 1, "c")
		assert.Equal(t, []string{"a", "c"}, list)

		list = RemoveItem(list, 0)
		assert.Equal(t, []string{"c"}, list)
	})

	t.Run("removal may empty the list", func(t *testing.T) {
		list := []models.AboutSection{{Header: "h", Paragraph: "p"}}
		list = RemoveItem(list, 0)
		assert.Empty(t, list)
	})

	t.Run("out-of-range indexes are ignored", func(t *testing.T) {
		list := []string{"a"}
		assert.Equal(t, []string{"a"}, UpdateItem(list, 5, "x"))
		assert.Equal(t, []string{"a"}, RemoveItem(list, -1))
	})
}
