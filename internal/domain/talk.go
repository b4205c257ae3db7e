package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Talk is a recorded talk as exposed by the talks API
type Talk struct {
	ID          int64         `json:"id"`
	Slug        string        `json:"slug"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Event       string        `json:"event,omitempty"`
	Speakers    []Speaker     `json:"speakers,omitempty"`
	Languages   []string      `json:"languages,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Duration    time.Duration `json:"duration,omitempty"`
	RecordedAt  time.Time     `json:"recordedAt,omitzero"`
	VideoURL    string        `json:"videoUrl,omitempty"`
}

// Speaker is a person presenting a talk
type Speaker struct {
	Name string `json:"name"`
	Bio  string `json:"bio,omitempty"`
}

// SpeakerNames returns the speaker names in presentation order
func (t Talk) SpeakerNames() []string {
	names := make([]string, 0, len(t.Speakers))
	for _, s := range t.Speakers {
		names = append(names, s.Name)
	}
	return names
}

// HasTranscriptLanguage reports whether the talk lists code among its transcript languages.
// Codes are matched ignoring case and surrounding whitespace.
func (t Talk) HasTranscriptLanguage(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}
	return slices.ContainsFunc(t.Languages, func(l string) bool {
		return strings.EqualFold(strings.TrimSpace(l), code)
	})
}

// Clone returns a deep copy so cached talks cannot be mutated through returned values
func (t Talk) Clone() Talk {
	c := t
	c.Speakers = slices.Clone(t.Speakers)
	c.Languages = slices.Clone(t.Languages)
	c.Tags = slices.Clone(t.Tags)
	return c
}

// ValidateSlug checks that slug is usable as a cache key and a single URL path segment
func ValidateSlug(slug string) error {
	if strings.TrimSpace(slug) == "" {
		return fmt.Errorf("%w: empty slug", ErrInvalidSlug)
	}
	if strings.Contains(slug, "/") {
		return fmt.Errorf("%w: %q contains '/'", ErrInvalidSlug, slug)
	}
	return nil
}
