// Package render maps resolved content and rotation indices to the frame a
// screen front-end draws. It is pure dispatch; no state, no business logic
// beyond choosing the variant for the current content kind.
package render

import "time"

// FrameKind discriminates the renderable frame variants.
type FrameKind string

const (
	FrameInfo    FrameKind = "info"
	FrameMessage FrameKind = "message"
	FrameCustom  FrameKind = "custom"
	FrameSlide   FrameKind = "profile-slide"
)

// CustomKind discriminates the custom/slide content body.
type CustomKind string

const (
	CustomText        CustomKind = "text"
	CustomEmbed       CustomKind = "embed"
	CustomImages      CustomKind = "images"
	CustomVideo       CustomKind = "video"
	CustomLegacyFile  CustomKind = "legacy-file"
	CustomLegacyEmbed CustomKind = "legacy-embed"
)

// Frame is one renderable content node. Exactly one of the variant fields
// matching Kind is set.
type Frame struct {
	Kind    FrameKind     `json:"kind"`
	Info    *InfoFrame    `json:"info,omitempty"`
	Message *MessageFrame `json:"message,omitempty"`
	Custom  *CustomFrame  `json:"custom,omitempty"`

	// SlideIndex is set for FrameSlide and identifies the profile slide.
	SlideIndex int `json:"slideIndex,omitempty"`
}

// InfoFrame is the environmental conditions slide.
type InfoFrame struct {
	Temperature float64   `json:"temperature"`
	Pressure    float64   `json:"pressure"`
	Humidity    float64   `json:"humidity"`
	Now         time.Time `json:"now"`
}

// MessageFrame is the rotating informational text slide.
type MessageFrame struct {
	Text string `json:"text"`
}

// CustomFrame is the body of a custom-content or profile slide.
//
// Content carries raw markup for CustomEmbed and CustomLegacyEmbed; it is
// rendered without sanitization, so it must only ever come from
// authenticated admins.
type CustomFrame struct {
	Kind    CustomKind `json:"contentKind"`
	Title   string     `json:"title,omitempty"`
	Content string     `json:"content,omitempty"`

	// Images is the current image set, padded with empty slots to the
	// nominal set size so the grid layout stays stable.
	Images []string `json:"images,omitempty"`

	// Video is the currently playing playlist entry.
	Video string `json:"video,omitempty"`
}
