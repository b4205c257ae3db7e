package domain

import "errors"

var (
	// ErrTalkNotFound is returned when the API has no talk for a slug
	ErrTalkNotFound = errors.New("talk not found")

	// ErrTranscriptNotFound is returned when the API has no transcript for the requested talk, format and languages
	ErrTranscriptNotFound = errors.New("transcript not found")

	ErrInvalidSlug     = errors.New("invalid slug")
	ErrInvalidLanguage = errors.New("invalid language code")
	ErrInvalidFormat   = errors.New("invalid transcript format")
)
