package domain

import (
	"fmt"
	"strings"
)

// TranscriptFormat names the representation a transcript is rendered in
type TranscriptFormat string

const (
	FormatText TranscriptFormat = "txt"
	FormatSRT  TranscriptFormat = "srt"
	FormatVTT  TranscriptFormat = "vtt"
)

// KnownFormats lists the formats the talks API is known to serve
var KnownFormats = []TranscriptFormat{FormatText, FormatSRT, FormatVTT}

// Validate accepts any single path segment; the API decides what it can render.
func (f TranscriptFormat) Validate() error {
	s := string(f)
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: empty format", ErrInvalidFormat)
	}
	if strings.Contains(s, "/") {
		return fmt.Errorf("%w: %q contains '/'", ErrInvalidFormat, s)
	}
	return nil
}

func (f TranscriptFormat) String() string {
	return string(f)
}
