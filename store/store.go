// Package store is the local cache tier: durable-enough, synchronous
// key-value storage used as an offline fallback and as a write-through
// cache in front of the remote backend.
//
// Key layout matters: whole collections live under a single key per entity
// family, while comments and progress are partitioned (per lesson, per
// user) so unrelated data is never loaded together.
package store

import (
	"encoding/json"
	"errors"
)

// ErrCapacityExceeded is returned when a write does not fit in the store.
// Callers distinguish it from transport failures and tell the user to link
// large media instead of embedding it.
var ErrCapacityExceeded = errors.New("local store capacity exceeded")

const (
	KeyCourses      = "courses"
	KeyProfiles     = "profiles"
	KeyTheme        = "theme_config"
	KeyLayout       = "layout_blocks"
	KeyWebhooks     = "webhook_subscriptions"
	KeyCommentIndex = "comments:index"
)

// CommentsKey returns the per-lesson comment partition key.
func CommentsKey(lessonID string) string { return "comments:" + lessonID }

// ProgressKey returns the per-user progress partition key.
func ProgressKey(userID string) string { return "progress:" + userID }

// Store is a synchronous key-value bag. Set must fail with
// ErrCapacityExceeded when the underlying storage is full.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Remove(key string)
}

// GetJSON reads and decodes one value. A missing key or an undecodable
// value both report absent.
func GetJSON[T any](s Store, key string) (T, bool) {
	var v T
	raw, ok := s.Get(key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false
	}
	return v, true
}

// SetJSON encodes and writes one value.
func SetJSON[T any](s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, raw)
}
