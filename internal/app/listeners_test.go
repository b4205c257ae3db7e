package app

import (
	"context"
	"testing"

	"github.com/javaBin/talks-browser/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTalkStore_Subscribe(t *testing.T) {
	t.Run("same listener twice is notified once", func(t *testing.T) {
		store := newTestStore(&mockTalkSource{})
		listener := &countingListener{}

		first := store.Subscribe(listener)
		second := store.Subscribe(listener)
		store.Inform()

		assert.Same(t, first, second)
		assert.Equal(t, 1, listener.count())
		assert.Equal(t, 1, store.ListenerCount())
	})

	t.Run("distinct listeners are notified in registration order", func(t *testing.T) {
		store := newTestStore(&mockTalkSource{})
		var order []string

		store.Subscribe(ListenerFunc(func() { order = append(order, "first") }))
		store.Subscribe(ListenerFunc(func() { order = append(order, "second") }))
		store.Subscribe(ListenerFunc(func() { order = append(order, "third") }))
		store.Inform()

		assert.Equal(t, []string{"first", "second", "third"}, order)
	})

	t.Run("same ListenerFunc twice is registered twice", func(t *testing.T) {
		store := newTestStore(&mockTalkSource{})
		calls := 0
		f := ListenerFunc(func() { calls++ })

		first := store.Subscribe(f)
		second := store.Subscribe(f)
		store.Inform()

		assert.NotSame(t, first, second)
		assert.Equal(t, 2, calls)
		assert.Equal(t, 2, store.ListenerCount())

		first.Unsubscribe()
		store.Inform()
		assert.Equal(t, 3, calls)
	})

	t.Run("unsubscribe stops notifications", func(t *testing.T) {
		store := newTestStore(&mockTalkSource{})
		listener := &countingListener{}

		sub := store.Subscribe(listener)
		store.Inform()
		sub.Unsubscribe()
		sub.Unsubscribe()
		store.Inform()

		assert.Equal(t, 1, listener.count())
		assert.Equal(t, 0, store.ListenerCount())
	})

	t.Run("resubscribing after unsubscribe registers again", func(t *testing.T) {
		store := newTestStore(&mockTalkSource{})
		listener := &countingListener{}

		store.Subscribe(listener).Unsubscribe()
		store.Subscribe(listener)
		store.Inform()

		assert.Equal(t, 1, listener.count())
	})

	t.Run("panicking listener does not stop the others", func(t *testing.T) {
		store := newTestStore(&mockTalkSource{})
		before := &countingListener{}
		after := &countingListener{}

		store.Subscribe(before)
		store.Subscribe(ListenerFunc(func() { panic("render failed") }))
		store.Subscribe(after)

		assert.NotPanics(t, store.Inform)
		assert.Equal(t, 1, before.count())
		assert.Equal(t, 1, after.count())
	})

	t.Run("listener may read the store while notified", func(t *testing.T) {
		source := &mockTalkSource{
			getTalkFunc: talksBySlug(domain.Talk{ID: 7, Slug: "talk-1", Title: "X"}),
		}
		store := newTestStore(source)
		var seen []string

		store.Subscribe(ListenerFunc(func() {
			if talk, ok := store.Current(); ok {
				seen = append(seen, talk.Title)
			}
			seen = append(seen, store.SelectedLanguages()...)
		}))

		_, err := store.GetBySlug(context.Background(), "talk-1")
		require.NoError(t, err)
		require.NoError(t, store.SelectLanguage("no"))

		assert.Equal(t, []string{"X", "X", "no"}, seen)
	})

	t.Run("listener may unsubscribe itself", func(t *testing.T) {
		store := newTestStore(&mockTalkSource{})
		calls := 0
		var sub interface{ Unsubscribe() }
		sub = store.Subscribe(ListenerFunc(func() {
			calls++
			sub.Unsubscribe()
		}))

		store.Inform()
		store.Inform()

		assert.Equal(t, 1, calls)
	})

	t.Run("nil listener is ignored", func(t *testing.T) {
		store := newTestStore(&mockTalkSource{})

		sub := store.Subscribe(nil)

		require.NotNil(t, sub)
		assert.Equal(t, 0, store.ListenerCount())
		assert.NotPanics(t, sub.Unsubscribe)
		assert.NotPanics(t, store.Inform)
	})
}

func TestSameListener(t *testing.T) {
	a := &countingListener{}
	b := &countingListener{}
	f := ListenerFunc(func() {})

	assert.True(t, sameListener(a, a))
	assert.False(t, sameListener(a, b))
	assert.False(t, sameListener(f, f), "functions are never considered equal")
	assert.False(t, sameListener(a, f))
}
