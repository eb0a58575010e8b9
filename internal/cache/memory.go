package cache

import (
	gocache "github.com/patrickmn/go-cache"
)

// Memo is an in-memory store scoped to a single verification. Entries never
// expire and no janitor goroutine is started, so a Memo can be dropped
// without being closed.
type Memo[T any] struct {
	cache *gocache.Cache
}

// NewMemo creates an empty memo
func NewMemo[T any]() *Memo[T] {
	return &Memo[T]{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get retrieves the value stored for url
func (m *Memo[T]) Get(url string) (T, bool) {
	var zero T
	val, found := m.cache.Get(Key(url))
	if !found {
		return zero, false
	}
	typed, ok := val.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Set stores a value for url
func (m *Memo[T]) Set(url string, value T) {
	m.cache.Set(Key(url), value, gocache.NoExpiration)
}

// Len returns the number of stored entries
func (m *Memo[T]) Len() int {
	return m.cache.ItemCount()
}
