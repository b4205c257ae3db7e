package ports

import (
	"context"

	"github.com/javaBin/talks-browser/internal/domain"
)

// TalkSource defines the interface for reading talks and transcripts from the talks API.
// This is implemented by the talksapi adapter.
type TalkSource interface {
	// GetTalk retrieves a single talk by its slug
	GetTalk(ctx context.Context, slug string) (*domain.Talk, error)

	// GetNewestTalks retrieves up to limit talks, newest first
	GetNewestTalks(ctx context.Context, limit int) ([]domain.Talk, error)

	// GetTranscript retrieves the transcript of a talk in the given format,
	// restricted to the given language codes
	GetTranscript(ctx context.Context, talkID int64, format domain.TranscriptFormat, languages []string) (string, error)
}
