package client

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// successAlertTTL is how long a success alert stays visible.
const successAlertTTL = 3 * time.Second

// ListFunc fetches the full entity list from the server.
type ListFunc[T any] func(ctx context.Context) ([]T, error)

// ResourceStore caches one entity list. Every mutation invalidates it by
// full re-fetch; there is no incremental patching.
type ResourceStore[T any] struct {
	mu    sync.Mutex
	fetch ListFunc[T]

	items    []T
	isLoaded bool
	errMsg   string

	alert         string
	alertDeadline time.Time

	onUnauthorized func()
	now            func() time.Time
}

// NewResourceStore creates a store backed by the given fetch function.
// onUnauthorized is invoked when a load hits a 401; it must not be nil
// for authenticated resources.
func NewResourceStore[T any](fetch ListFunc[T], onUnauthorized func()) *ResourceStore[T] {
	return &ResourceStore[T]{
		fetch:          fetch,
		onUnauthorized: onUnauthorized,
		now:            time.Now,
	}
}

// Load replaces the whole list with the server's copy.
//
// On 401 the unauthorized handler runs exactly once and no error banner
// is recorded. On any other failure the error message is recorded and
// the store still counts as loaded, so callers render an empty state
// rather than spin forever. No automatic retries.
func (s *ResourceStore[T]) Load(ctx context.Context) error {
	items, err := s.fetch(ctx)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			if s.onUnauthorized != nil {
				s.onUnauthorized()
			}

			return err
		}

		s.mu.Lock()
		s.errMsg = userMessage(err)
		s.isLoaded = true
		s.mu.Unlock()

		return err
	}

	s.mu.Lock()
	s.items = items
	s.isLoaded = true
	s.errMsg = ""
	s.mu.Unlock()

	return nil
}

// Items returns the cached list.
func (s *ResourceStore[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.items
}

// Find returns the first cached item matching the predicate.
func (s *ResourceStore[T]) Find(match func(T) bool) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if match(item) {
			return item, true
		}
	}

	var zero T

	return zero, false
}

// IsLoaded reports whether a load has completed. It is a one-way latch:
// once true it never resets within the store's lifetime.
func (s *ResourceStore[T]) IsLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.isLoaded
}

// ErrorMessage returns the current error banner, or "". Errors persist
// until the next successful action.
func (s *ResourceStore[T]) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.errMsg
}

// SetError records an error banner without touching the cached list.
func (s *ResourceStore[T]) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errMsg = msg
}

// SetAlert records a transient success alert.
func (s *ResourceStore[T]) SetAlert(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alert = msg
	s.alertDeadline = s.now().Add(successAlertTTL)
	s.errMsg = ""
}

// Alert returns the current success alert, or "" once it has expired.
func (s *ResourceStore[T]) Alert() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.alert == "" || s.now().After(s.alertDeadline) {
		return ""
	}

	return s.alert
}

// userMessage extracts the server-provided message when present, else a
// generic localized fallback.
func userMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return "Terjadi kesalahan. Silakan coba lagi."
}
