package classwizard

import (
	"strings"

	"urbanpilgrim/models"
)

// ValidateStep reports whether the draft satisfies the completeness predicate
// of the given step. Steps outside 1..6 never validate.
func ValidateStep(d *models.ClassDraft, step int) bool {
	switch step {
	case 1:
		return validateBasicInfo(d)
	case 2:
		return validateCredentials(d)
	case 3:
		return validateAboutSections(d)
	case 4:
		return validateModes(d)
	case 5:
		return validateSchedule(d)
	case 6:
		// Photos are optional; the cap is enforced at staging time.
		return true
	default:
		return false
	}
}

// ValidateAll reports whether every step's predicate holds. The submit path
// uses this: server-side, a draft can be edited at any step, so the gate that
// the linear UI provides is re-checked in full.
func ValidateAll(d *models.ClassDraft) bool {
	for step := models.WizardFirstStep; step <= models.WizardLastStep; step++ {
		if !ValidateStep(d, step) {
			return false
		}
	}
	return true
}

// Step 1: title, description, about and specialty all non-empty.
func validateBasicInfo(d *models.ClassDraft) bool {
	return !blank(d.Title) && !blank(d.Description) && !blank(d.About) && !blank(d.Specialty)
}

// Step 2: at least one non-blank certification and one non-blank skill.
func validateCredentials(d *models.ClassDraft) bool {
	return anyNonBlank(d.GuideCertifications) && anyNonBlank(d.SkillsToLearn)
}

// Step 3: every about-section has both a header and a paragraph.
func validateAboutSections(d *models.ClassDraft) bool {
	for _, s := range d.AboutSections {
		if blank(s.Header) || blank(s.Paragraph) {
			return false
		}
	}
	return true
}

// Step 4: at least one mode enabled; each enabled mode fully priced, and the
// offline mode needs a resolvable address.
func validateModes(d *models.ClassDraft) bool {
	online := d.Modes.Online
	offline := d.Modes.Offline

	if !online.Enabled && !offline.Enabled {
		return false
	}
	if online.Enabled && (online.MaxCapacity == nil || online.Price == nil) {
		return false
	}
	if offline.Enabled {
		if offline.MaxCapacity == nil || offline.Price == nil {
			return false
		}
		if !addressResolvable(d) {
			return false
		}
	}
	return true
}

// The address is resolvable from exactly one of the two sources: an existing
// address id, or an inline address with at least a street.
func addressResolvable(d *models.ClassDraft) bool {
	if d.SelectedAddressID != "" {
		return true
	}
	return d.IsNewAddress && !blank(d.NewAddress.Street)
}

// Step 5: days chosen, both schedule bounds set, and a non-empty slot list
// for each enabled mode.
func validateSchedule(d *models.ClassDraft) bool {
	sc := d.ScheduleConfig
	if len(sc.SelectedDays) == 0 {
		return false
	}
	if sc.DateRange.StartDate == nil || sc.DateRange.EndDate == nil {
		return false
	}
	if d.Modes.Online.Enabled && len(sc.TimeSlots.Online) == 0 {
		return false
	}
	if d.Modes.Offline.Enabled && len(sc.TimeSlots.Offline) == 0 {
		return false
	}
	return true
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func anyNonBlank(items []string) bool {
	for _, item := range items {
		if !blank(item) {
			return true
		}
	}
	return false
}
