package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifctl/util"
)

// newCreateCommand creates a command for creating a profile
func newCreateCommand() *cobra.Command {
	var (
		filename    string
		description string
		inactive    bool
	)

	cmd := &cobra.Command{
		Use:   "create TITLE -f FILE",
		Short: "Create a slide profile",
		Long: `Create a slide profile from a slide definition file.

The file holds the slide list in YAML or JSON. Each slide has a
contentType, a duration in seconds, and the content fields the type
needs. A profile carries at most three slides.

Example file:

  slides:
    - contentType: TEXT
      content: "Lobby open 8-18"
      durationSeconds: 10
      active: true
    - contentType: IMAGE_SINGLE
      imageUrls: ["/files/poster.png"]
      durationSeconds: 15
      active: true`,
		Example: `  notifctl profile create "Lobby rotation" -f lobby.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadProfileFile(filename)
			if err != nil {
				return err
			}
			req.Title = args[0]
			if description != "" {
				req.Description = description
			}
			req.Active = !inactive

			client, err := util.GetClient()
			if err != nil {
				return err
			}

			prof, err := client.CreateProfile(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("error creating profile: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Profile %q created with %d slides (id %s)\n",
				prof.Title, len(prof.Slides), prof.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filename, "filename", "f", "", "Slide definition file, YAML or JSON (required)")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "Create the profile as inactive")

	_ = cmd.MarkFlagRequired("filename")

	return cmd
}

// profileFile is the on-disk slide definition format. It mirrors the
// request payload with explicit yaml keys so the same field names work
// in both YAML and JSON files.
type profileFile struct {
	Description string      `json:"description" yaml:"description"`
	Slides      []slideFile `json:"slides" yaml:"slides"`
}

type slideFile struct {
	ContentType     string   `json:"contentType" yaml:"contentType"`
	Content         string   `json:"content" yaml:"content"`
	ImageURLs       []string `json:"imageUrls" yaml:"imageUrls"`
	VideoURLs       []string `json:"videoUrls" yaml:"videoUrls"`
	DurationSeconds int      `json:"durationSeconds" yaml:"durationSeconds"`
	Active          *bool    `json:"active" yaml:"active"`
}

// loadProfileFile reads a slide definition file into a profile request.
func loadProfileFile(path string) (*types.ProfileRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	var file profileFile
	if strings.HasSuffix(path, ".json") {
		err = json.Unmarshal(data, &file)
	} else {
		err = yaml.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	req := &types.ProfileRequest{Description: file.Description}
	for _, s := range file.Slides {
		active := true
		if s.Active != nil {
			active = *s.Active
		}
		req.Slides = append(req.Slides, types.Slide{
			ContentType:     types.ContentType(strings.ToUpper(s.ContentType)),
			Content:         s.Content,
			ImageURLs:       s.ImageURLs,
			VideoURLs:       s.VideoURLs,
			DurationSeconds: s.DurationSeconds,
			Active:          active,
		})
	}
	return req, nil
}
