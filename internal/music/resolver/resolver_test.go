package resolver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"euplay-bot/pkg/retrylimit"
)

func TestIsURL(t *testing.T) {
	assert.True(t, isURL("https://www.youtube.com/watch?v=dQw4w9WgXcQ"))
	assert.True(t, isURL("http://youtu.be/dQw4w9WgXcQ"))
	assert.False(t, isURL("lofi hip hop radio"))
	assert.False(t, isURL("youtube.com/watch?v=dQw4w9WgXcQ"))
}

func TestIsYouTubeVideoURL(t *testing.T) {
	assert.True(t, isYouTubeVideoURL("https://www.youtube.com/watch?v=dQw4w9WgXcQ"))
	assert.True(t, isYouTubeVideoURL("https://music.youtube.com/watch?v=dQw4w9WgXcQ"))
	assert.True(t, isYouTubeVideoURL("https://youtu.be/dQw4w9WgXcQ"))
	assert.False(t, isYouTubeVideoURL("https://vimeo.com/123456"))
	assert.False(t, isYouTubeVideoURL("https://www.youtube.com/playlist?list=PL123"))
}

func TestCleanVideoURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips playlist params",
			in:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL123&index=4",
			want: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			name: "keeps music subdomain",
			in:   "https://music.youtube.com/watch?v=dQw4w9WgXcQ&si=tracking",
			want: "https://music.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			name: "short url drops timestamp",
			in:   "https://youtu.be/dQw4w9WgXcQ?t=42",
			want: "https://youtu.be/dQw4w9WgXcQ",
		},
		{
			name: "non-watch path untouched",
			in:   "https://www.youtube.com/channel/UC123",
			want: "https://www.youtube.com/channel/UC123",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cleanVideoURL(tc.in))
		})
	}
}

func newTestYouTube(baseURL string) *YouTube {
	r := NewYouTube()
	r.BaseURL = baseURL
	return r
}

func TestSearchFirstVideoURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/results", r.URL.Path)
		assert.Equal(t, "lofi beats", r.URL.Query().Get("search_query"))
		w.Write([]byte(`var ytInitialData = {"url":"/watch?v=jfKfPfyJRdk","more":{"url":"/watch?v=aaaaaaaaaaa"}}`))
	}))
	defer srv.Close()

	r := newTestYouTube(srv.URL)
	got, err := r.searchFirstVideoURL(context.Background(), "lofi beats")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/watch?v=jfKfPfyJRdk", got)
}

func TestSearchNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`var ytInitialData = {"contents":[]}`))
	}))
	defer srv.Close()

	r := newTestYouTube(srv.URL)
	_, err := r.searchFirstVideoURL(context.Background(), "xxxxxxxx no such thing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchRetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"url":"/watch?v=jfKfPfyJRdk"`))
	}))
	defer srv.Close()

	r := newTestYouTube(srv.URL)
	r.lim = retrylimit.NewAdaptiveLimiter(100, 1, 100, 1, 0.5)

	got, err := r.searchFirstVideoURL(context.Background(), "lofi beats")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/watch?v=jfKfPfyJRdk", got)
	assert.Equal(t, int32(2), hits.Load())
}

func TestResolveRejectsNonYouTubeLinks(t *testing.T) {
	r := NewYouTube()
	_, err := r.Resolve(context.Background(), "https://vimeo.com/123456")
	assert.ErrorIs(t, err, ErrNotFound)
}
