package types

import (
	"time"

	"github.com/google/uuid"
)

// MaxProfileSlides bounds how many slides a profile may carry.
const MaxProfileSlides = 3

// Slide is one content unit within a profile. Each slide carries its own
// media, independent of the other slides.
type Slide struct {
	ContentType     ContentType `json:"contentType"`
	Content         string      `json:"content,omitempty"`
	ImageURLs       []string    `json:"imageUrls,omitempty"`
	VideoURLs       []string    `json:"videoUrls,omitempty"`
	DurationSeconds int         `json:"durationSeconds"`
	Active          bool        `json:"active"`
}

// Profile is an ordered set of up to MaxProfileSlides slides assignable as a
// unit to one TV. It shares the three scheduling modes of ContentSchedule.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Slides      []Slide   `json:"slides"`
	Active      bool      `json:"active"`

	TimeSchedules  []TimeWindow `json:"timeSchedules,omitempty"`
	DailySchedule  bool         `json:"isDailySchedule"`
	DailyStartTime string       `json:"dailyStartTime,omitempty"`
	DailyEndTime   string       `json:"dailyEndTime,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// ProfileRequest is the admin submission payload for creating a profile.
type ProfileRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Slides      []Slide `json:"slides"`
	Active      bool    `json:"active"`

	TimeSchedules  []TimeWindow `json:"timeSchedules,omitempty"`
	DailySchedule  bool         `json:"isDailySchedule"`
	DailyStartTime string       `json:"dailyStartTime,omitempty"`
	DailyEndTime   string       `json:"dailyEndTime,omitempty"`
}

// Validate checks the profile request for structural validity.
func (r *ProfileRequest) Validate() error {
	if r.Title == "" {
		return &Error{Code: "InvalidProfile", Message: "title is required"}
	}
	if len(r.Slides) == 0 {
		return &Error{Code: "InvalidProfile", Message: "at least one slide is required"}
	}
	if len(r.Slides) > MaxProfileSlides {
		return &Error{Code: "InvalidProfile", Message: "a profile may carry at most 3 slides"}
	}
	for _, slide := range r.Slides {
		if !slide.ContentType.Valid() {
			return &Error{Code: "InvalidProfile", Message: "slide has unknown content type"}
		}
		switch {
		case slide.ContentType == ContentTypeText && slide.Content == "":
			return &Error{Code: "InvalidProfile", Message: "text slide requires content"}
		case slide.ContentType == ContentTypeEmbed && slide.Content == "":
			return &Error{Code: "InvalidProfile", Message: "embed slide requires content"}
		case slide.ContentType.IsImage() && len(slide.ImageURLs) == 0:
			return &Error{Code: "InvalidProfile", Message: "image slide requires at least one image"}
		case slide.ContentType == ContentTypeVideo && len(slide.VideoURLs) == 0:
			return &Error{Code: "InvalidProfile", Message: "video slide requires at least one video"}
		}
	}
	for _, w := range r.TimeSchedules {
		if err := w.Validate(); err != nil {
			return &Error{Code: "InvalidProfile", Message: err.Error()}
		}
	}
	if r.DailySchedule {
		if !ValidDailyTime(r.DailyStartTime) || !ValidDailyTime(r.DailyEndTime) {
			return &Error{Code: "InvalidProfile", Message: "daily times must be HH:MM"}
		}
	}
	return nil
}

// ProfileAssignment binds one TV to one profile. At most one active
// assignment per TV is meaningful to the resolver.
type ProfileAssignment struct {
	ID        uuid.UUID `json:"id"`
	TVName    string    `json:"tvName"`
	ProfileID uuid.UUID `json:"profileId"`
	Active    bool      `json:"active"`
	Profile   *Profile  `json:"profile,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AssignProfileRequest is the payload for assigning a profile to a TV.
type AssignProfileRequest struct {
	TVName    string    `json:"tvName"`
	ProfileID uuid.UUID `json:"profileId"`
}

// Validate checks the assignment request.
func (r *AssignProfileRequest) Validate() error {
	if r.TVName == "" {
		return &Error{Code: "InvalidAssignment", Message: "tvName is required"}
	}
	if r.ProfileID == uuid.Nil {
		return &Error{Code: "InvalidAssignment", Message: "profileId is required"}
	}
	return nil
}
