package models

import "time"

// AboutSection is one header/paragraph block describing a class.
type AboutSection struct {
	Header    string `bson:"header" json:"header"`
	Paragraph string `bson:"paragraph" json:"paragraph"`
}

// ModeConfig describes one delivery mode (online or offline) of a class.
// MaxCapacity and Price are pointers so "not filled in yet" is distinguishable
// from zero while the wizard is in progress.
type ModeConfig struct {
	Enabled     bool     `bson:"enabled" json:"enabled"`
	MaxCapacity *int     `bson:"max_capacity,omitempty" json:"maxCapacity,omitempty"`
	Price       *float64 `bson:"price,omitempty" json:"price,omitempty"`
}

// ClassModes groups the two delivery modes.
type ClassModes struct {
	Online  ModeConfig `bson:"online" json:"online"`
	Offline ModeConfig `bson:"offline" json:"offline"`
}

// TimeSlot is one recurring slot in a class schedule.
type TimeSlot struct {
	StartTime string `bson:"start_time" json:"startTime"`
	EndTime   string `bson:"end_time" json:"endTime"`
}

// ModeTimeSlots holds the per-mode slot lists.
type ModeTimeSlots struct {
	Online  []TimeSlot `bson:"online" json:"online"`
	Offline []TimeSlot `bson:"offline" json:"offline"`
}

// ScheduleRange bounds the recurring schedule. Pointers: both ends must be
// chosen explicitly before the schedule step is complete.
type ScheduleRange struct {
	StartDate *time.Time `bson:"start_date,omitempty" json:"startDate,omitempty"`
	EndDate   *time.Time `bson:"end_date,omitempty" json:"endDate,omitempty"`
}

// ScheduleConfig is the recurring schedule of a class.
type ScheduleConfig struct {
	SelectedDays []string      `bson:"selected_days" json:"selectedDays"`
	TimeSlots    ModeTimeSlots `bson:"time_slots" json:"timeSlots"`
	DateRange    ScheduleRange `bson:"date_range" json:"dateRange"`
}

// Address is an inline venue address authored during class creation.
type Address struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	Pincode string `bson:"pincode,omitempty" json:"pincode,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

// ClassDraft is the nested payload the creation wizard accumulates across its
// six steps and submits once.
type ClassDraft struct {
	Title               string         `bson:"title" json:"title"`
	Description         string         `bson:"description" json:"description"`
	About               string         `bson:"about" json:"about"`
	Specialty           string         `bson:"specialty" json:"specialty"`
	Difficulty          string         `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	Timezone            string         `bson:"timezone,omitempty" json:"timezone,omitempty"`
	Tags                []string       `bson:"tags,omitempty" json:"tags,omitempty"`
	GuideCertifications []string       `bson:"guide_certifications" json:"guideCertifications"`
	SkillsToLearn       []string       `bson:"skills_to_learn" json:"skillsToLearn"`
	AboutSections       []AboutSection `bson:"about_sections" json:"aboutSections"`
	Modes               ClassModes     `bson:"modes" json:"modes"`
	ScheduleConfig      ScheduleConfig `bson:"schedule_config" json:"scheduleConfig"`
	IsNewAddress        bool           `bson:"is_new_address" json:"isNewAddress"`
	SelectedAddressID   string         `bson:"selected_address_id,omitempty" json:"selectedAddressId,omitempty"`
	NewAddress          Address        `bson:"new_address,omitempty" json:"newAddress,omitempty"`
}

// StagedPhoto is a photo uploaded while the wizard is in progress, waiting
// for the final submit.
type StagedPhoto struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// WellnessClass is the persisted record created when a wizard submit is
// accepted.
type WellnessClass struct {
	ID        string     `bson:"id" json:"id"`
	GuideID   string     `bson:"guide_id" json:"guideId"`
	Status    string     `bson:"status" json:"status"` // "pending_review" until an admin approves
	Draft     ClassDraft `bson:"draft,inline" json:"draft"`
	PhotoURLs []string   `bson:"photo_urls,omitempty" json:"photoUrls,omitempty"`
	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updatedAt"`
}

// Class status values.
const (
	ClassStatusPendingReview = "pending_review"
	ClassStatusApproved      = "approved"
	ClassStatusRejected      = "rejected"
)
