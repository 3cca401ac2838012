package classwizard

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urbanpilgrim/models"
)

func buildForm(t *testing.T, write func(w *multipart.Writer)) *multipart.Form {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	write(w)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form
}

func TestParseClassForm(t *testing.T) {
	t.Run("round trips a complete draft", func(t *testing.T) {
		src := completeDraft()
		src.Difficulty = "Beginner"
		src.Timezone = "Asia/Kolkata"
		src.Tags = []string{"yoga", "breathwork"}

		form := buildForm(t, func(w *multipart.Writer) {
			require.NoError(t, WriteClassForm(w, &src))
		})

		got, photos, err := ParseClassForm(form)
		require.NoError(t, err)
		assert.Empty(t, photos)

		assert.Equal(t, src.Title, got.Title)
		assert.Equal(t, src.Specialty, got.Specialty)
		assert.Equal(t, src.Difficulty, got.Difficulty)
		assert.Equal(t, src.Tags, got.Tags)
		assert.Equal(t, src.GuideCertifications, got.GuideCertifications)
		assert.Equal(t, src.AboutSections, got.AboutSections)
		assert.True(t, got.Modes.Online.Enabled)
		require.NotNil(t, got.Modes.Online.Price)
		assert.Equal(t, 500.0, *got.Modes.Online.Price)
		assert.Equal(t, src.ScheduleConfig.SelectedDays, got.ScheduleConfig.SelectedDays)
	})

	t.Run("the flag decides the address source", func(t *testing.T) {
		src := completeDraft()
		src.IsNewAddress = true
		src.NewAddress = models.Address{Street: "12 Marine Drive", City: "Mumbai"}
		src.SelectedAddressID = "addr-should-not-travel"

		form := buildForm(t, func(w *multipart.Writer) {
			require.NoError(t, WriteClassForm(w, &src))
		})

		got, _, err := ParseClassForm(form)
		require.NoError(t, err)
		assert.True(t, got.IsNewAddress)
		assert.Equal(t, "12 Marine Drive", got.NewAddress.Street)
		assert.Empty(t, got.SelectedAddressID)
	})

	t.Run("rejects more photos than the cap", func(t *testing.T) {
		src := completeDraft()
		form := buildForm(t, func(w *multipart.Writer) {
			require.NoError(t, WriteClassForm(w, &src))
			for i := 0; i < 6; i++ {
				fw, err := w.CreateFormFile("photos", fmt.Sprintf("photo-%d.jpg", i))
				require.NoError(t, err)
				_, err = fw.Write([]byte("not-a-real-jpeg"))
				require.NoError(t, err)
			}
		})

		_, _, err := ParseClassForm(form)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "maximum of 5 photos")
	})

	t.Run("accepts photos up to the cap", func(t *testing.T) {
		src := completeDraft()
		form := buildForm(t, func(w *multipart.Writer) {
			require.NoError(t, WriteClassForm(w, &src))
			for i := 0; i < 5; i++ {
				fw, err := w.CreateFormFile("photos", fmt.Sprintf("photo-%d.jpg", i))
				require.NoError(t, err)
				_, err = fw.Write([]byte("not-a-real-jpeg"))
				require.NoError(t, err)
			}
		})

		_, photos, err := ParseClassForm(form)
		require.NoError(t, err)
		assert.Len(t, photos, 5)
	})

	t.Run("malformed nested JSON fails the parse", func(t *testing.T) {
		form := buildForm(t, func(w *multipart.Writer) {
			require.NoError(t, w.WriteField("title", "Broken"))
			require.NoError(t, w.WriteField("modes", "{not json"))
		})

		_, _, err := ParseClassForm(form)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid modes payload")
	})
}
