// Package resolver turns a free-text query or direct link into a playable
// track descriptor. Implementations hide where the media comes from; the
// playback session only sees a Track.
package resolver

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound means no media matched the query.
	ErrNotFound = errors.New("no matching track found")
)

// Track is a resolved media descriptor. Immutable once produced.
type Track struct {
	Title     string
	URL       string // canonical page URL, shown to users
	StreamURL string // direct media URL consumed by the voice transport
	Duration  time.Duration
}

type Resolver interface {
	Resolve(ctx context.Context, query string) (*Track, error)
}
