package talksapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/javaBin/talks-browser/internal/domain"
)

// TalkResponse is a talk record as served by the talks API
type TalkResponse struct {
	ID          int64             `json:"id"`
	Slug        string            `json:"slug"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Event       string            `json:"event"`
	Speakers    []SpeakerResponse `json:"speakers"`
	Languages   []string          `json:"languages"`
	Tags        []string          `json:"tags"`
	// Duration is in seconds
	Duration   int          `json:"duration"`
	RecordedAt FlexibleTime `json:"recordedAt"`
	VideoURL   string       `json:"videoUrl"`
}

// SpeakerResponse is a speaker as embedded in a talk record
type SpeakerResponse struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

// TalksAPIResponse is the wrapped list form some API versions return
type TalksAPIResponse struct {
	Talks []TalkResponse `json:"talks"`
}

// FlexibleTime accepts RFC 3339 timestamps, plain dates, empty strings and null
type FlexibleTime struct {
	time.Time
}

var flexibleTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// UnmarshalJSON implements json.Unmarshaler
func (ft *FlexibleTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		ft.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("time must be a string: %w", err)
	}
	if s == "" {
		ft.Time = time.Time{}
		return nil
	}

	for _, layout := range flexibleTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			ft.Time = t
			return nil
		}
	}

	return fmt.Errorf("unrecognised time format: %q", s)
}

// MarshalJSON implements json.Marshaler
func (ft FlexibleTime) MarshalJSON() ([]byte, error) {
	if ft.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ft.Format(time.RFC3339))
}

// MapTalk converts an API talk record to the domain model
func MapTalk(r TalkResponse) domain.Talk {
	speakers := make([]domain.Speaker, 0, len(r.Speakers))
	for _, s := range r.Speakers {
		speakers = append(speakers, domain.Speaker{
			Name: s.Name,
			Bio:  s.Bio,
		})
	}

	return domain.Talk{
		ID:          r.ID,
		Slug:        r.Slug,
		Title:       r.Title,
		Description: r.Description,
		Event:       r.Event,
		Speakers:    speakers,
		Languages:   r.Languages,
		Tags:        r.Tags,
		Duration:    time.Duration(r.Duration) * time.Second,
		RecordedAt:  r.RecordedAt.Time,
		VideoURL:    r.VideoURL,
	}
}

// MapTalks converts a list of API talk records, preserving order
func MapTalks(rs []TalkResponse) []domain.Talk {
	talks := make([]domain.Talk, 0, len(rs))
	for _, r := range rs {
		talks = append(talks, MapTalk(r))
	}
	return talks
}
