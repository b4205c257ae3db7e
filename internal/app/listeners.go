package app

import (
	"log/slog"
	"reflect"
	"slices"
	"sync"

	"github.com/javaBin/talks-browser/internal/ports"
)

// ListenerFunc adapts a plain function to ports.Listener.
//
// Functions are not comparable, so subscribing the same ListenerFunc twice
// registers it twice and it runs twice per Inform. Use a pointer type
// implementing ports.Listener when subscriptions must be deduplicated.
type ListenerFunc func()

// OnChange calls f()
func (f ListenerFunc) OnChange() {
	f()
}

// Subscription is the handle returned by Subscribe
type Subscription struct {
	id       uint64
	listener ports.Listener
	registry *listenerRegistry
	once     sync.Once
}

// Unsubscribe removes the listener; calling it more than once is a no-op
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.registry.remove(s.id)
	})
}

type listenerRegistry struct {
	mu     sync.Mutex
	nextID uint64
	subs   []*Subscription
	logger *slog.Logger
}

func newListenerRegistry(logger *slog.Logger) *listenerRegistry {
	return &listenerRegistry{logger: logger}
}

func (r *listenerRegistry) add(l ports.Listener) *Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l == nil {
		// Never notified; unsubscribing is harmless
		return &Subscription{registry: r}
	}

	for _, sub := range r.subs {
		if sameListener(sub.listener, l) {
			return sub
		}
	}

	r.nextID++
	sub := &Subscription{
		id:       r.nextID,
		listener: l,
		registry: r,
	}
	r.subs = append(r.subs, sub)
	return sub
}

func (r *listenerRegistry) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subs = slices.DeleteFunc(r.subs, func(sub *Subscription) bool {
		return sub.id == id
	})
}

// notify calls every listener in registration order outside the lock, so
// listeners may read the store or (un)subscribe. A panicking listener is
// logged and does not stop the others.
func (r *listenerRegistry) notify() {
	r.mu.Lock()
	subs := slices.Clone(r.subs)
	r.mu.Unlock()

	for _, sub := range subs {
		r.call(sub)
	}
}

func (r *listenerRegistry) call(sub *Subscription) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("listener panicked",
				"subscription", sub.id,
				"panic", rec,
			)
		}
	}()
	sub.listener.OnChange()
}

func (r *listenerRegistry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// sameListener compares listeners by identity where Go allows it
func sameListener(a, b ports.Listener) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
