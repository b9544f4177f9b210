package lookup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordfind/internal/domain"
)

const helloBody = `[{
	"word": "hello",
	"phonetics": [
		{"text": "/həˈloʊ/", "audio": "https://example.com/hello-us.mp3"},
		{}
	],
	"meanings": [{
		"partOfSpeech": "exclamation",
		"definitions": [
			{"definition": "used as a greeting", "example": "hello there, Katie!"},
			{"definition": "used to express surprise"},
			{"definition": "a third def"},
			{"definition": "a fourth def, dropped"}
		]
	}]
}]`

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Fetch_Success(t *testing.T) {
	t.Parallel()

	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/hello", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(helloBody))
	})

	c := NewClient(srv.URL, newTestLogger())
	result, err := c.Fetch(context.Background(), "hello")
	require.NoError(t, err)
	require.Len(t, result, 1)

	entry, ok := result.First()
	require.True(t, ok)
	assert.Equal(t, "hello", entry.Word)
	require.Len(t, entry.Phonetics, 2)
	assert.Equal(t, "/həˈloʊ/", entry.Phonetics[0].Text)
	assert.Empty(t, entry.Phonetics[1].Text)
	require.Len(t, entry.Meanings, 1)
	assert.Equal(t, "exclamation", entry.Meanings[0].PartOfSpeech)
	require.Len(t, entry.Meanings[0].Definitions, 4)
	assert.Equal(t, domain.Definition{Text: "used as a greeting", Example: "hello there, Katie!"}, entry.Meanings[0].Definitions[0])
}

func TestClient_Fetch_PercentEncodesWord(t *testing.T) {
	t.Parallel()

	var gotPath atomic.Value
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.EscapedPath())
		_, _ = w.Write([]byte(`[]`))
	})

	c := NewClient(srv.URL+"/", newTestLogger())
	assert.Equal(t, srv.URL+"/ice%20cream", c.URLFor("ice cream"))

	_, err := c.Fetch(context.Background(), "ice cream")
	require.NoError(t, err)
	assert.Equal(t, "/ice%20cream", gotPath.Load())
}

func TestClient_Fetch_EmptyArray(t *testing.T) {
	t.Parallel()

	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	result, err := NewClient(srv.URL, newTestLogger()).Fetch(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestClient_Fetch_NullBodyIsEmpty(t *testing.T) {
	t.Parallel()

	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})

	result, err := NewClient(srv.URL, newTestLogger()).Fetch(context.Background(), "nothing")
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestClient_Fetch_NotFound(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"title":"No Definitions Found","message":"Sorry pal","resolution":"Try the web"}`))
	})

	_, err := NewClient(srv.URL, newTestLogger()).Fetch(context.Background(), "zzzznotaword")
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "No Definitions Found", httpErr.Title)
	assert.Contains(t, err.Error(), "status: 404")
	assert.Equal(t, KindHTTP, KindOf(err))
	assert.Equal(t, int32(1), calls.Load(), "lookups are never retried")
}

func TestClient_Fetch_ServerErrorIsNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := NewClient(srv.URL, newTestLogger()).Fetch(context.Background(), "hello")
	require.Error(t, err)
	assert.Equal(t, KindHTTP, KindOf(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Fetch_MalformedBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"object instead of array", `{"word":"hello"}`},
		{"wrong field types", `[{"word": 42}]`},
		{"null entry", `[null]`},
		{"null among entries", `[{"word":"hello"}, null]`},
		{"string entry", `["hello"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := NewClient(srv.URL, newTestLogger()).Fetch(context.Background(), "hello")
			require.Error(t, err)

			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr))
			assert.Equal(t, KindParse, KindOf(err))
		})
	}
}

func TestClient_Fetch_NetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, newTestLogger()).Fetch(context.Background(), "hello")
	require.Error(t, err)

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
	assert.Equal(t, KindNetwork, KindOf(err))
}

func TestClient_Fetch_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	c := NewClient(srv.URL, newTestLogger(), WithTimeout(50*time.Millisecond))
	_, err := c.Fetch(context.Background(), "slow")
	require.Error(t, err)
	assert.Equal(t, KindNetwork, KindOf(err))
}

func TestClient_Fetch_CancelledContext(t *testing.T) {
	t.Parallel()

	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(helloBody))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, newTestLogger()).Fetch(ctx, "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, KindNetwork, KindOf(err))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(nil))
	assert.Equal(t, KindEmptyInput, KindOf(domain.ErrEmptyInput))
	assert.Equal(t, KindEmptyResult, KindOf(ErrEmptyResult))
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
}

func TestClient_Fetch_RateLimited(t *testing.T) {
	t.Parallel()

	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	c := NewClient(srv.URL, newTestLogger(), WithRateLimit(1))
	_, err := c.Fetch(context.Background(), "first")
	require.NoError(t, err)

	// The burst is spent; the next request cannot be admitted before the deadline
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err = c.Fetch(ctx, "second")
	require.Error(t, err)
	assert.Equal(t, KindNetwork, KindOf(err))
	assert.Contains(t, err.Error(), "rate limit wait")
}

func TestClient_Fetch_RateLimitDisabled(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`[]`))
	})

	c := NewClient(srv.URL, newTestLogger(), WithRateLimit(0))
	for i := 0; i < 20; i++ {
		_, err := c.Fetch(context.Background(), "word")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(20), calls.Load())
}

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestID(ctx))
	assert.Equal(t, "ab12cd34", RequestID(WithRequestID(ctx, "ab12cd34")))
}
