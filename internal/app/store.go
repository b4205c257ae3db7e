package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/javaBin/talks-browser/internal/config"
	"github.com/javaBin/talks-browser/internal/domain"
	"github.com/javaBin/talks-browser/internal/ports"
	"golang.org/x/sync/singleflight"
)

// ErrNoCurrentTalk is returned when a transcript is requested before any talk was fetched
var ErrNoCurrentTalk = errors.New("no current talk selected")

// TalkStore holds the browsing state the UI renders from: cached talks, the newest
// talks, the current talk, its last fetched transcript and the selected languages.
// Listeners are notified after every state change.
type TalkStore struct {
	source ports.TalkSource
	logger *slog.Logger

	talks    *expirable.LRU[string, cachedTalk]
	cacheTTL time.Duration
	now      func() time.Time
	group    singleflight.Group

	newestLimit     int
	defaultLanguage string

	mu         sync.RWMutex
	newest     []domain.Talk
	current    *domain.Talk
	transcript string
	languages  []string

	listeners *listenerRegistry
}

// cachedTalk is a talk in the slug cache; a zero expires never expires
type cachedTalk struct {
	talk    domain.Talk
	expires time.Time
}

// NewTalkStore creates a new TalkStore, receiving context as first parameter
// to retrieve configuration, along with the talk source it reads from.
func NewTalkStore(ctx context.Context, source ports.TalkSource) *TalkStore {
	cfg := config.GetConfig(ctx)
	return NewTalkStoreWithConfig(
		source,
		cfg.Cache.Size,
		cfg.Cache.TTL,
		cfg.TalksAPI.NewestLimit,
		cfg.Transcript.DefaultLanguage,
	)
}

// NewTalkStoreWithConfig creates a new TalkStore with explicit configuration.
// A cacheSize of 0 leaves the talk cache unbounded and a cacheTTL of 0 never expires entries.
func NewTalkStoreWithConfig(
	source ports.TalkSource,
	cacheSize int,
	cacheTTL time.Duration,
	newestLimit int,
	defaultLanguage string,
) *TalkStore {
	logger := slog.Default().With("component", "store")
	// Expiry is checked on lookup; a zero TTL keeps the LRU from starting a cleanup goroutine
	return &TalkStore{
		source:          source,
		logger:          logger,
		talks:           expirable.NewLRU[string, cachedTalk](cacheSize, nil, 0),
		cacheTTL:        max(cacheTTL, 0),
		now:             time.Now,
		newestLimit:     newestLimit,
		defaultLanguage: defaultLanguage,
		listeners:       newListenerRegistry(logger),
	}
}

// GetBySlug returns the talk for slug and makes it the current talk.
// Cached talks are served without a request; a miss fetches the talk, caches it
// and notifies listeners. Concurrent misses for the same slug share one request.
func (s *TalkStore) GetBySlug(ctx context.Context, slug string) (domain.Talk, error) {
	if err := domain.ValidateSlug(slug); err != nil {
		return domain.Talk{}, err
	}

	if talk, ok := s.lookup(slug); ok {
		s.logger.DebugContext(ctx, "talk served from cache", "slug", slug)
		if s.setCurrent(talk) {
			s.Inform()
		}
		return talk.Clone(), nil
	}

	v, err, shared := s.group.Do("talk:"+slug, func() (any, error) {
		talk, err := s.source.GetTalk(ctx, slug)
		if err != nil {
			return nil, err
		}

		s.remember(talk.Slug, *talk)
		if talk.Slug != slug {
			s.remember(slug, *talk)
		}

		s.setCurrent(*talk)
		s.Inform()
		return *talk, nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch talk", "slug", slug, "error", err)
		return domain.Talk{}, fmt.Errorf("failed to get talk %s: %w", slug, err)
	}

	talk := v.(domain.Talk)
	s.logger.DebugContext(ctx, "talk fetched", "slug", slug, "talkID", talk.ID, "shared", shared)
	return talk.Clone(), nil
}

// GetNewest returns the newest talks. The list is fetched once and then served
// from memory for the lifetime of the store; an empty result is not cached.
func (s *TalkStore) GetNewest(ctx context.Context) ([]domain.Talk, error) {
	if talks, ok := s.cachedNewest(); ok {
		return talks, nil
	}

	_, err, _ := s.group.Do("newest", func() (any, error) {
		// Double-check after winning the flight
		if _, ok := s.cachedNewest(); ok {
			return nil, nil
		}

		talks, err := s.source.GetNewestTalks(ctx, s.newestLimit)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.newest = talks
		s.mu.Unlock()

		s.logger.InfoContext(ctx, "newest talks cached", "count", len(talks))
		return nil, nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch newest talks", "error", err)
		return nil, fmt.Errorf("failed to get newest talks: %w", err)
	}

	talks, _ := s.cachedNewest()
	return talks, nil
}

// GetTranscript fetches the transcript of the current talk in format for the selected
// languages (or the default language when none are selected), stores it and notifies listeners.
func (s *TalkStore) GetTranscript(ctx context.Context, format domain.TranscriptFormat) (string, error) {
	if err := format.Validate(); err != nil {
		return "", err
	}

	s.mu.RLock()
	current := s.current
	languages := s.transcriptLanguagesLocked()
	s.mu.RUnlock()

	if current == nil {
		s.logger.WarnContext(ctx, "transcript requested without a current talk")
		return "", ErrNoCurrentTalk
	}

	text, err := s.source.GetTranscript(ctx, current.ID, format, languages)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch transcript",
			"talkID", current.ID,
			"format", format,
			"languages", languages,
			"error", err,
		)
		return "", fmt.Errorf("failed to get transcript for %s: %w", current.Slug, err)
	}

	s.mu.Lock()
	s.transcript = text
	s.mu.Unlock()

	s.Inform()
	return text, nil
}

// SelectLanguage toggles code in the language selection and notifies listeners.
// Codes are kept exactly as given (trimmed) and sent to the API unchanged;
// codes that cannot form a lang query value leave the selection unchanged.
func (s *TalkStore) SelectLanguage(code string) error {
	code, err := domain.CleanLanguageCode(code)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if i := slices.Index(s.languages, code); i >= 0 {
		s.languages = slices.Delete(s.languages, i, i+1)
	} else {
		s.languages = append(s.languages, code)
	}
	s.mu.Unlock()

	s.Inform()
	return nil
}

// Subscribe registers l for change notifications. Subscribing the same listener
// again returns the existing subscription.
func (s *TalkStore) Subscribe(l ports.Listener) ports.Unsubscriber {
	return s.listeners.add(l)
}

// Inform notifies every listener in registration order
func (s *TalkStore) Inform() {
	s.listeners.notify()
}

// ListenerCount returns the number of registered listeners
func (s *TalkStore) ListenerCount() int {
	return s.listeners.count()
}

// Current returns the current talk, if any
func (s *TalkStore) Current() (domain.Talk, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return domain.Talk{}, false
	}
	return s.current.Clone(), true
}

// Transcript returns the last fetched transcript
func (s *TalkStore) Transcript() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transcript
}

// SelectedLanguages returns the selected language codes in selection order
func (s *TalkStore) SelectedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.languages)
}

// IsLanguageSelected reports whether code is part of the selection
func (s *TalkStore) IsLanguageSelected(code string) bool {
	code, err := domain.CleanLanguageCode(code)
	if err != nil {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.languages, code)
}

// TranscriptLanguages returns the languages a transcript request would ask for
func (s *TalkStore) TranscriptLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transcriptLanguagesLocked()
}

// Cached returns a cached talk without fetching it or changing the current talk
func (s *TalkStore) Cached(slug string) (domain.Talk, bool) {
	entry, ok := s.talks.Peek(slug)
	if !ok || s.expired(entry) {
		return domain.Talk{}, false
	}
	return entry.talk.Clone(), true
}

// CachedCount returns the number of cached slugs that have not expired
func (s *TalkStore) CachedCount() int {
	count := 0
	for _, entry := range s.talks.Values() {
		if !s.expired(entry) {
			count++
		}
	}
	return count
}

// lookup returns a live cache entry and marks it recently used; expired entries are dropped
func (s *TalkStore) lookup(slug string) (domain.Talk, bool) {
	entry, ok := s.talks.Get(slug)
	if !ok {
		return domain.Talk{}, false
	}
	if s.expired(entry) {
		s.talks.Remove(slug)
		return domain.Talk{}, false
	}
	return entry.talk, true
}

func (s *TalkStore) remember(slug string, talk domain.Talk) {
	entry := cachedTalk{talk: talk}
	if s.cacheTTL > 0 {
		entry.expires = s.now().Add(s.cacheTTL)
	}
	s.talks.Add(slug, entry)
}

func (s *TalkStore) expired(entry cachedTalk) bool {
	return !entry.expires.IsZero() && !s.now().Before(entry.expires)
}

func (s *TalkStore) transcriptLanguagesLocked() []string {
	if len(s.languages) == 0 {
		return []string{s.defaultLanguage}
	}
	return slices.Clone(s.languages)
}

// setCurrent makes talk current and reports whether the current talk changed
func (s *TalkStore) setCurrent(talk domain.Talk) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := s.current == nil || s.current.ID != talk.ID || s.current.Slug != talk.Slug
	c := talk.Clone()
	s.current = &c
	return changed
}

func (s *TalkStore) cachedNewest() ([]domain.Talk, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.newest) == 0 {
		return nil, false
	}

	talks := make([]domain.Talk, len(s.newest))
	for i, t := range s.newest {
		talks[i] = t.Clone()
	}
	return talks, true
}
