package classwizard

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strconv"

	"urbanpilgrim/models"
)

// The multipart contract for POST /api/wellness-guide-classes: scalar fields
// travel as plain form values, nested objects travel as JSON-stringified form
// values, and photos travel as repeated "photos" file parts. This file is the
// single place that convention lives.

// WriteClassForm serializes a draft into a multipart form following the wire
// contract. The counterpart of ParseClassForm.
func WriteClassForm(w *multipart.Writer, d *models.ClassDraft) error {
	scalars := map[string]string{
		"title":        d.Title,
		"description":  d.Description,
		"about":        d.About,
		"specialty":    d.Specialty,
		"difficulty":   d.Difficulty,
		"timezone":     d.Timezone,
		"isNewAddress": strconv.FormatBool(d.IsNewAddress),
	}
	for field, value := range scalars {
		if err := w.WriteField(field, value); err != nil {
			return fmt.Errorf("failed to write field %s: %w", field, err)
		}
	}

	jsonFields := map[string]interface{}{
		"guideCertifications": d.GuideCertifications,
		"skillsToLearn":       d.SkillsToLearn,
		"aboutSections":       d.AboutSections,
		"tags":                d.Tags,
		"modes":               d.Modes,
		"scheduleConfig":      d.ScheduleConfig,
	}
	for field, value := range jsonFields {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode field %s: %w", field, err)
		}
		if err := w.WriteField(field, string(data)); err != nil {
			return fmt.Errorf("failed to write field %s: %w", field, err)
		}
	}

	// Exactly one address source travels, decided by the flag, not by which
	// side happens to be populated.
	if d.IsNewAddress {
		data, err := json.Marshal(d.NewAddress)
		if err != nil {
			return fmt.Errorf("failed to encode newAddress: %w", err)
		}
		if err := w.WriteField("newAddress", string(data)); err != nil {
			return fmt.Errorf("failed to write newAddress: %w", err)
		}
	} else if d.SelectedAddressID != "" {
		if err := w.WriteField("selectedAddressId", d.SelectedAddressID); err != nil {
			return fmt.Errorf("failed to write selectedAddressId: %w", err)
		}
	}
	return nil
}

// ParseClassForm decodes a multipart form into a draft plus the photo file
// headers. Malformed JSON in any nested field fails the whole parse; photos
// beyond the cap are rejected here, before anything is uploaded.
func ParseClassForm(form *multipart.Form) (*models.ClassDraft, []*multipart.FileHeader, error) {
	d := NewDraft()

	d.Title = formValue(form, "title")
	d.Description = formValue(form, "description")
	d.About = formValue(form, "about")
	d.Specialty = formValue(form, "specialty")
	d.Difficulty = formValue(form, "difficulty")
	d.Timezone = formValue(form, "timezone")
	d.IsNewAddress = formValue(form, "isNewAddress") == "true"
	d.SelectedAddressID = formValue(form, "selectedAddressId")

	if err := jsonField(form, "guideCertifications", &d.GuideCertifications); err != nil {
		return nil, nil, err
	}
	if err := jsonField(form, "skillsToLearn", &d.SkillsToLearn); err != nil {
		return nil, nil, err
	}
	if err := jsonField(form, "aboutSections", &d.AboutSections); err != nil {
		return nil, nil, err
	}
	if err := jsonField(form, "tags", &d.Tags); err != nil {
		return nil, nil, err
	}
	if err := jsonField(form, "modes", &d.Modes); err != nil {
		return nil, nil, err
	}
	if err := jsonField(form, "scheduleConfig", &d.ScheduleConfig); err != nil {
		return nil, nil, err
	}
	if d.IsNewAddress {
		if err := jsonField(form, "newAddress", &d.NewAddress); err != nil {
			return nil, nil, err
		}
		// The flag decides the address source; a stray id is not transmitted.
		d.SelectedAddressID = ""
	}

	photos := form.File["photos"]
	if len(photos) > models.MaxClassPhotos {
		return nil, nil, ErrTooManyPhotos
	}
	return &d, photos, nil
}

func formValue(form *multipart.Form, field string) string {
	if values, ok := form.Value[field]; ok && len(values) > 0 {
		return values[0]
	}
	return ""
}

func jsonField(form *multipart.Form, field string, dst interface{}) error {
	raw := formValue(form, field)
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return NewWizardError(fmt.Sprintf("invalid %s payload", field))
	}
	return nil
}
