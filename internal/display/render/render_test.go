package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/content"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/rotation"
)

func testEnv() Env {
	return Env{
		Temperature: 23.8,
		Pressure:    1010.75,
		Humidity:    50,
		Now:         time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		Message:     "Welcome!",
	}
}

func TestRender_InfoAndMessage(t *testing.T) {
	env := testEnv()

	frame := Render(nil, State{SlideIndex: rotation.SlideInfo}, env)
	require.Equal(t, FrameInfo, frame.Kind)
	assert.Equal(t, 23.8, frame.Info.Temperature)

	frame = Render(nil, State{SlideIndex: rotation.SlideMessage}, env)
	require.Equal(t, FrameMessage, frame.Kind)
	assert.Equal(t, "Welcome!", frame.Message.Text)
}

func TestRender_CustomIndexWithoutContent(t *testing.T) {
	frame := Render(nil, State{SlideIndex: rotation.SlideCustom}, testEnv())
	assert.Equal(t, FrameInfo, frame.Kind)
}

func TestRender_TextSchedule(t *testing.T) {
	resolved := content.FromSchedule(&types.ContentSchedule{
		Title:       "Notice",
		ContentType: types.ContentTypeText,
		Content:     "The elevator is down",
	})

	frame := Render(resolved, State{SlideIndex: rotation.SlideCustom}, testEnv())
	require.Equal(t, FrameCustom, frame.Kind)
	assert.Equal(t, CustomText, frame.Custom.Kind)
	assert.Equal(t, "The elevator is down", frame.Custom.Content)
}

func TestRender_ImageScheduleSetSelection(t *testing.T) {
	resolved := content.FromSchedule(&types.ContentSchedule{
		ContentType: types.ContentTypeImageQuad,
		ImageURLs:   []string{"a", "b", "c", "d", "e", "f"},
	})

	frame := Render(resolved, State{SlideIndex: rotation.SlideCustom, ImageSetIndex: 1}, testEnv())
	require.Equal(t, FrameCustom, frame.Kind)
	require.Equal(t, CustomImages, frame.Custom.Kind)

	// Second set has two images, padded to the quad layout.
	assert.Equal(t, []string{"e", "f", "", ""}, frame.Custom.Images)
}

func TestRender_ImageSetIndexOutOfRange(t *testing.T) {
	resolved := content.FromSchedule(&types.ContentSchedule{
		ContentType: types.ContentTypeImageSingle,
		ImageURLs:   []string{"a"},
	})

	frame := Render(resolved, State{SlideIndex: rotation.SlideCustom, ImageSetIndex: 7}, testEnv())
	assert.Equal(t, []string{"a"}, frame.Custom.Images)
}

func TestRender_VideoSchedule(t *testing.T) {
	resolved := content.FromSchedule(&types.ContentSchedule{
		ContentType: types.ContentTypeVideo,
		VideoURLs:   []string{"v1", "v2"},
	})

	frame := Render(resolved, State{SlideIndex: rotation.SlideCustom, VideoSetIndex: 1}, testEnv())
	require.Equal(t, CustomVideo, frame.Custom.Kind)
	assert.Equal(t, "v2", frame.Custom.Video)
}

func TestRender_ProfileSlide(t *testing.T) {
	resolved := content.FromAssignment(&types.ProfileAssignment{
		Profile: &types.Profile{
			Title: "Lobby",
			Slides: []types.Slide{
				{ContentType: types.ContentTypeText, Content: "first"},
				{ContentType: types.ContentTypeEmbed, Content: "https://example.com"},
			},
		},
	})

	frame := Render(resolved, State{SlideIndex: 1}, testEnv())
	require.Equal(t, FrameSlide, frame.Kind)
	assert.Equal(t, 1, frame.SlideIndex)
	assert.Equal(t, CustomEmbed, frame.Custom.Kind)
}

func TestRender_ProfileIndexPastEndFallsBackToInfo(t *testing.T) {
	resolved := content.FromAssignment(&types.ProfileAssignment{
		Profile: &types.Profile{
			Slides: []types.Slide{{ContentType: types.ContentTypeText, Content: "only"}},
		},
	})

	frame := Render(resolved, State{SlideIndex: 4}, testEnv())
	assert.Equal(t, FrameInfo, frame.Kind)
}

func TestRender_LegacyContent(t *testing.T) {
	file := content.FromLegacy(&content.LegacyContent{
		Type:    "file",
		Name:    "poster",
		DataURL: "data:image/png;base64,xyz",
	})
	frame := Render(file, State{SlideIndex: rotation.SlideCustom}, testEnv())
	require.Equal(t, CustomLegacyFile, frame.Custom.Kind)
	assert.Equal(t, []string{"data:image/png;base64,xyz"}, frame.Custom.Images)

	embed := content.FromLegacy(&content.LegacyContent{Type: "embed", Content: "<iframe/>"})
	frame = Render(embed, State{SlideIndex: rotation.SlideCustom}, testEnv())
	assert.Equal(t, CustomLegacyEmbed, frame.Custom.Kind)
}
