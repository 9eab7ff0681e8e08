// Package types contains the wire types shared by the notifmanager server,
// the admin CLI, and the TV display daemon.
package types

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// ContentType identifies what kind of content a schedule or slide carries.
type ContentType string

const (
	ContentTypeText        ContentType = "TEXT"
	ContentTypeImageSingle ContentType = "IMAGE_SINGLE"
	ContentTypeImageDual   ContentType = "IMAGE_DUAL"
	ContentTypeImageQuad   ContentType = "IMAGE_QUAD"
	ContentTypeVideo       ContentType = "VIDEO"
	ContentTypeEmbed       ContentType = "EMBED"
)

// IsImage reports whether the content type renders as an image grid.
func (c ContentType) IsImage() bool {
	return c == ContentTypeImageSingle || c == ContentTypeImageDual || c == ContentTypeImageQuad
}

// Valid reports whether c is a known content type.
func (c ContentType) Valid() bool {
	switch c {
	case ContentTypeText, ContentTypeImageSingle, ContentTypeImageDual,
		ContentTypeImageQuad, ContentTypeVideo, ContentTypeEmbed:
		return true
	}
	return false
}

// TimeWindow is one absolute start/end pair of a time-windowed schedule.
type TimeWindow struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// Validate checks that the window is well formed.
func (w TimeWindow) Validate() error {
	if !w.StartTime.Before(w.EndTime) {
		return fmt.Errorf("start time %s must be before end time %s",
			w.StartTime.Format(time.RFC3339), w.EndTime.Format(time.RFC3339))
	}
	return nil
}

var dailyTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidDailyTime reports whether s is an HH:MM time-of-day string.
func ValidDailyTime(s string) bool {
	return dailyTimePattern.MatchString(s)
}

// ContentSchedule is a unit of content assignable to one or more TVs.
//
// Exactly one scheduling mode is effective at evaluation time: immediate
// (no time constraints), time-windowed (one or more TimeSchedules pairs),
// or daily-recurring (DailyStartTime/DailyEndTime, which may wrap midnight).
type ContentSchedule struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	ContentType ContentType `json:"contentType"`
	Content     string      `json:"content,omitempty"`
	ImageURLs   []string    `json:"imageUrls,omitempty"`
	VideoURLs   []string    `json:"videoUrls,omitempty"`
	TargetTVs   []string    `json:"targetTVs"`
	Active      bool        `json:"active"`

	TimeSchedules []TimeWindow `json:"timeSchedules,omitempty"`

	// StartTime/EndTime mirror the first time window for older consumers
	// that predate multi-window schedules.
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`

	DailySchedule  bool   `json:"isDailySchedule"`
	DailyStartTime string `json:"dailyStartTime,omitempty"`
	DailyEndTime   string `json:"dailyEndTime,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Immediate reports whether the schedule has no time constraints at all.
// The legacy single start/end pair counts as a time window.
func (s *ContentSchedule) Immediate() bool {
	if len(s.TimeSchedules) > 0 || s.DailySchedule {
		return false
	}
	return s.StartTime == nil || s.EndTime == nil
}

// ContentScheduleRequest is the admin submission payload for creating or
// updating a content schedule.
type ContentScheduleRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	ContentType ContentType `json:"contentType"`
	Content     string      `json:"content,omitempty"`
	ImageURLs   []string    `json:"imageUrls,omitempty"`
	VideoURLs   []string    `json:"videoUrls,omitempty"`
	TargetTVs   []string    `json:"targetTVs"`
	Active      bool        `json:"active"`

	TimeSchedules []TimeWindow `json:"timeSchedules,omitempty"`
	StartTime     *time.Time   `json:"startTime"`
	EndTime       *time.Time   `json:"endTime"`

	DailySchedule  bool   `json:"isDailySchedule"`
	DailyStartTime string `json:"dailyStartTime,omitempty"`
	DailyEndTime   string `json:"dailyEndTime,omitempty"`
}

// Validate checks the request for structural validity. It mirrors the
// admin-form checks so a bad payload is rejected before anything is stored.
func (r *ContentScheduleRequest) Validate() error {
	if r.Title == "" {
		return &Error{Code: "InvalidSchedule", Message: "title is required"}
	}
	if len(r.TargetTVs) == 0 {
		return &Error{Code: "InvalidSchedule", Message: "at least one target TV is required"}
	}
	if !r.ContentType.Valid() {
		return &Error{Code: "InvalidSchedule", Message: fmt.Sprintf("unknown content type %q", r.ContentType)}
	}
	switch {
	case r.ContentType == ContentTypeText && r.Content == "":
		return &Error{Code: "InvalidSchedule", Message: "text content is required"}
	case r.ContentType == ContentTypeEmbed && r.Content == "":
		return &Error{Code: "InvalidSchedule", Message: "embed content is required"}
	case r.ContentType.IsImage() && len(r.ImageURLs) == 0:
		return &Error{Code: "InvalidSchedule", Message: fmt.Sprintf("%s requires at least one image", r.ContentType)}
	case r.ContentType == ContentTypeVideo && len(r.VideoURLs) == 0:
		return &Error{Code: "InvalidSchedule", Message: "video content requires at least one video"}
	}
	if r.DailySchedule && len(r.TimeSchedules) > 0 {
		return &Error{Code: "InvalidSchedule", Message: "daily and time-windowed scheduling are mutually exclusive"}
	}
	for _, w := range r.TimeSchedules {
		if err := w.Validate(); err != nil {
			return &Error{Code: "InvalidSchedule", Message: err.Error()}
		}
	}
	if r.DailySchedule {
		if !ValidDailyTime(r.DailyStartTime) || !ValidDailyTime(r.DailyEndTime) {
			return &Error{Code: "InvalidSchedule", Message: "daily times must be HH:MM"}
		}
	}
	return nil
}

// Error is a structured API error carried in response bodies.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

func (e *Error) Error() string {
	return e.Message
}

// UploadResponse is returned by the multipart upload endpoint.
type UploadResponse struct {
	FileURL string `json:"fileUrl"`
}
