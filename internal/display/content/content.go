// Package content defines the resolved-content value a TV renders and the
// legacy cached shapes kept for backward compatibility.
package content

import (
	"reflect"

	"github.com/google/uuid"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
)

// Kind discriminates the resolved content variants.
type Kind string

const (
	// KindProfile is an assigned multi-slide profile.
	KindProfile Kind = "profile"
	// KindSchedule is a content schedule returned by the server.
	KindSchedule Kind = "schedule"
	// KindLegacyFile is the pre-migration locally cached file shape.
	KindLegacyFile Kind = "legacy-file"
	// KindLegacyEmbed is the pre-migration locally cached embed shape.
	KindLegacyEmbed Kind = "legacy-embed"
)

// Resolved is the single active content value for a TV. A nil *Resolved
// means there is nothing to show beyond the built-in info/message slides.
// Values are replaced wholesale on change, never mutated in place.
type Resolved struct {
	Kind     Kind
	Profile  *ProfileContent
	Schedule *types.ContentSchedule
	Legacy   *LegacyContent
}

// ProfileContent wraps an active profile assignment for rendering.
type ProfileContent struct {
	ProfileID    uuid.UUID
	AssignmentID uuid.UUID
	Title        string
	Slides       []types.Slide
}

// LegacyImage is one image of the pre-migration cached file shape.
type LegacyImage struct {
	Name    string `json:"name"`
	DataURL string `json:"dataUrl"`
}

// LegacyContent is the locally cached content shape written before the
// schedule backend existed. KindLegacyFile carries Name/DataURL or Images;
// KindLegacyEmbed carries Content.
type LegacyContent struct {
	Type    string        `json:"type"`
	Name    string        `json:"name,omitempty"`
	DataURL string        `json:"dataUrl,omitempty"`
	Images  []LegacyImage `json:"images,omitempty"`
	Content string        `json:"content,omitempty"`
}

// FromLegacy wraps a cached legacy entry as resolved content.
func FromLegacy(l *LegacyContent) *Resolved {
	if l == nil {
		return nil
	}
	kind := KindLegacyFile
	if l.Type == "embed" {
		kind = KindLegacyEmbed
	}
	return &Resolved{Kind: kind, Legacy: l}
}

// FromAssignment wraps an active profile assignment as resolved content.
func FromAssignment(a *types.ProfileAssignment) *Resolved {
	if a == nil || a.Profile == nil {
		return nil
	}
	return &Resolved{
		Kind: KindProfile,
		Profile: &ProfileContent{
			ProfileID:    a.ProfileID,
			AssignmentID: a.ID,
			Title:        a.Profile.Title,
			Slides:       a.Profile.Slides,
		},
	}
}

// FromSchedule wraps a content schedule as resolved content.
func FromSchedule(s *types.ContentSchedule) *Resolved {
	if s == nil {
		return nil
	}
	return &Resolved{Kind: KindSchedule, Schedule: s}
}

// Equal reports structural equality of two resolved values. The rendering
// loop only reacts when this is false, which keeps the rotation index stable
// across polls that return identical content.
func (r *Resolved) Equal(o *Resolved) bool {
	if r == nil || o == nil {
		return r == o
	}
	return reflect.DeepEqual(r, o)
}

// SlideCount returns the number of rotation slides the value contributes:
// the profile slide count in profile mode, one custom slide otherwise.
func (r *Resolved) SlideCount() int {
	if r == nil {
		return 0
	}
	if r.Kind == KindProfile {
		return len(r.Profile.Slides)
	}
	return 1
}

// KindOf is a nil-safe accessor used for transition logging.
func KindOf(r *Resolved) Kind {
	if r == nil {
		return "none"
	}
	return r.Kind
}
