//go:build e2e && unix

package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// dictionary entries served by the fixture server, keyed by request path
var dictionaryFixtures = map[string]string{
	"/serendipity": `[{
		"word": "serendipity",
		"phonetics": [{"text": "/ˌsɛɹ.ənˈdɪp.ɪ.ti/"}],
		"meanings": [{
			"partOfSpeech": "noun",
			"definitions": [
				{"definition": "An unsought, unintended discovery.", "example": "a fortunate stroke of serendipity"},
				{"definition": "The faculty of making such discoveries."}
			]
		}]
	}]`,
	"/run": `[{
		"word": "run",
		"phonetics": [{}, {"text": "/ɹʌn/"}],
		"meanings": [{
			"partOfSpeech": "verb",
			"definitions": [
				{"definition": "To move swiftly on foot."},
				{"definition": "To flee."},
				{"definition": "To go at a fast pace."},
				{"definition": "To compete in a race."}
			]
		}]
	}]`,
}

// DictionaryServer is a local stand-in for the dictionary API
type DictionaryServer struct {
	*httptest.Server
	requests atomic.Int32
}

// NewDictionaryServer starts a fixture server that answers known words and
// returns the service's 404 body for everything else. It is closed when the
// test ends.
func NewDictionaryServer(t *testing.T) *DictionaryServer {
	t.Helper()
	ds := &DictionaryServer{}
	ds.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ds.requests.Add(1)
		body, ok := dictionaryFixtures[strings.ToLower(r.URL.Path)]
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"title":"No Definitions Found","message":"Sorry pal","resolution":"Try the web"}`))
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ds.Close)
	return ds
}

// Requests returns how many lookups reached the server
func (ds *DictionaryServer) Requests() int {
	return int(ds.requests.Load())
}
