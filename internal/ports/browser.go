package ports

import (
	"context"

	"github.com/javaBin/talks-browser/internal/domain"
)

// Listener is notified whenever browsing state changes.
// Listeners read the new state back from the TalkBrowser.
type Listener interface {
	OnChange()
}

// Unsubscriber removes a previously registered Listener
type Unsubscriber interface {
	Unsubscribe()
}

// TalkBrowser defines the state the UI layer renders from.
// This is implemented by the app layer TalkStore.
type TalkBrowser interface {
	// GetBySlug fetches a talk (or serves it from cache) and makes it current
	GetBySlug(ctx context.Context, slug string) (domain.Talk, error)

	// GetNewest returns the newest talks, fetched at most once
	GetNewest(ctx context.Context) ([]domain.Talk, error)

	// GetTranscript fetches the transcript of the current talk for the selected languages
	GetTranscript(ctx context.Context, format domain.TranscriptFormat) (string, error)

	// SelectLanguage toggles a language in the selection
	SelectLanguage(code string) error

	Current() (domain.Talk, bool)
	Transcript() string
	SelectedLanguages() []string

	Subscribe(l Listener) Unsubscriber
}
