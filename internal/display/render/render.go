package render

import (
	"time"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/content"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/mediaset"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/rotation"
)

// Env is the environmental snapshot the info and message slides render.
type Env struct {
	Temperature float64
	Pressure    float64
	Humidity    float64
	Now         time.Time
	Message     string
}

// State carries the rotation indices feeding one render pass.
type State struct {
	SlideIndex    int
	ImageSetIndex int
	VideoSetIndex int
}

// Render produces the frame for the given resolved content and indices.
//
// In profile mode the slide index maps directly to the profile's slides; in
// non-profile mode slide 0 is the info display, slide 1 the message display,
// and slide 2 the resolved custom content. An index pointing at content
// that no longer exists falls back to the info slide instead of rendering
// nothing.
func Render(resolved *content.Resolved, state State, env Env) Frame {
	if resolved != nil && resolved.Kind == content.KindProfile {
		slides := resolved.Profile.Slides
		idx := state.SlideIndex
		if idx < 0 || idx >= len(slides) {
			return infoFrame(env)
		}
		body := slideBody(slides[idx], state)
		return Frame{Kind: FrameSlide, SlideIndex: idx, Custom: body}
	}

	idx := state.SlideIndex
	if resolved == nil && idx == rotation.SlideCustom {
		idx = rotation.SlideInfo
	}
	switch idx {
	case rotation.SlideMessage:
		return Frame{Kind: FrameMessage, Message: &MessageFrame{Text: env.Message}}
	case rotation.SlideCustom:
		return Frame{Kind: FrameCustom, Custom: customBody(resolved, state)}
	default:
		return infoFrame(env)
	}
}

func infoFrame(env Env) Frame {
	return Frame{Kind: FrameInfo, Info: &InfoFrame{
		Temperature: env.Temperature,
		Pressure:    env.Pressure,
		Humidity:    env.Humidity,
		Now:         env.Now,
	}}
}

func customBody(resolved *content.Resolved, state State) *CustomFrame {
	if resolved == nil {
		return &CustomFrame{Kind: CustomText}
	}
	switch resolved.Kind {
	case content.KindSchedule:
		return scheduleBody(resolved.Schedule, state)
	case content.KindLegacyFile:
		return legacyFileBody(resolved.Legacy)
	case content.KindLegacyEmbed:
		return &CustomFrame{Kind: CustomLegacyEmbed, Content: resolved.Legacy.Content}
	default:
		return &CustomFrame{Kind: CustomText}
	}
}

func scheduleBody(s *types.ContentSchedule, state State) *CustomFrame {
	switch {
	case s.ContentType == types.ContentTypeText:
		return &CustomFrame{Kind: CustomText, Title: s.Title, Content: s.Content}
	case s.ContentType == types.ContentTypeEmbed:
		return &CustomFrame{Kind: CustomEmbed, Content: s.Content}
	case s.ContentType.IsImage():
		return &CustomFrame{
			Kind:   CustomImages,
			Title:  s.Title,
			Images: imageSet(s.ImageURLs, s.ContentType, state.ImageSetIndex),
		}
	case s.ContentType == types.ContentTypeVideo:
		return &CustomFrame{
			Kind:  CustomVideo,
			Title: s.Title,
			Video: videoAt(s.VideoURLs, state.VideoSetIndex),
		}
	default:
		return &CustomFrame{Kind: CustomText, Title: s.Title}
	}
}

func slideBody(slide types.Slide, state State) *CustomFrame {
	switch {
	case slide.ContentType == types.ContentTypeText:
		return &CustomFrame{Kind: CustomText, Content: slide.Content}
	case slide.ContentType == types.ContentTypeEmbed:
		return &CustomFrame{Kind: CustomEmbed, Content: slide.Content}
	case slide.ContentType.IsImage():
		return &CustomFrame{
			Kind:   CustomImages,
			Images: imageSet(slide.ImageURLs, slide.ContentType, state.ImageSetIndex),
		}
	case slide.ContentType == types.ContentTypeVideo:
		return &CustomFrame{
			Kind:  CustomVideo,
			Video: videoAt(slide.VideoURLs, state.VideoSetIndex),
		}
	default:
		return &CustomFrame{Kind: CustomText}
	}
}

func legacyFileBody(l *content.LegacyContent) *CustomFrame {
	frame := &CustomFrame{Kind: CustomLegacyFile, Title: l.Name}
	if len(l.Images) > 0 {
		frame.Images = make([]string, len(l.Images))
		for i, img := range l.Images {
			frame.Images[i] = img.DataURL
		}
	} else if l.DataURL != "" {
		frame.Images = []string{l.DataURL}
	}
	return frame
}

func imageSet(urls []string, ct types.ContentType, setIndex int) []string {
	sets := mediaset.ImageSets(urls, ct)
	if len(sets) == 0 {
		return nil
	}
	if setIndex < 0 || setIndex >= len(sets) {
		setIndex = 0
	}
	return mediaset.PadSet(sets[setIndex], mediaset.ImagesPerSet(ct))
}

func videoAt(urls []string, index int) string {
	if len(urls) == 0 {
		return ""
	}
	if index < 0 || index >= len(urls) {
		index = 0
	}
	return urls[index]
}
