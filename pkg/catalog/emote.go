package catalog

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/ecbingo/ecbingo/pkg/errors"
)

// cdnURL is the Discord CDN pattern used when an emote record has no url.
const cdnURL = "https://cdn.discordapp.com/emojis/%s.%s?v=1"

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_]{2,32}$`)

// Emote is the subset of an Emote Collector record the board needs.
type Emote struct {
	Name     string      `json:"name"`
	ID       json.Number `json:"id"`
	Animated bool        `json:"animated"`
	URL      string      `json:"url,omitempty"`
}

// ImageURL returns where the emote's image can be downloaded.
func (e *Emote) ImageURL() string {
	if e.URL != "" {
		return e.URL
	}
	ext := "png"
	if e.Animated {
		ext = "gif"
	}
	return fmt.Sprintf(cdnURL, e.ID, ext)
}

// ValidateName checks that name looks like a Discord emote name.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid emote name %q: want 2-32 letters, digits or underscores", name)
	}
	return nil
}
