package history

import (
	"strings"
	"sync"

	"wordfind/internal/eventbus"
)

// Recorder keeps the words of recent successful lookups for the session.
// It never stores results, so nothing is ever served from it.
type Recorder interface {
	Record(word string)
	Recent() []string
	Clear()
}

// recorder is the concrete implementation
type recorder struct {
	mu    sync.RWMutex
	size  int
	words []string // most recent first
}

// NewRecorder creates a recorder holding at most size words. When bus is
// non-nil the recorder follows LookupSucceeded events.
func NewRecorder(bus eventbus.EventBus, size int) Recorder {
	r := &recorder{
		size:  size,
		words: make([]string, 0, size),
	}

	if bus != nil {
		bus.Subscribe(eventbus.EventLookupSucceeded, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.LookupSucceededEvent); ok {
				r.Record(event.Word)
			}
		})
	}

	return r
}

// Record moves word to the front, dropping the oldest beyond the limit
func (r *recorder) Record(word string) {
	word = strings.TrimSpace(word)
	if word == "" || r.size <= 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, w := range r.words {
		if strings.EqualFold(w, word) {
			r.words = append(r.words[:i], r.words[i+1:]...)
			break
		}
	}

	r.words = append([]string{word}, r.words...)
	if len(r.words) > r.size {
		r.words = r.words[:r.size]
	}
}

// Recent returns a copy of the recorded words, most recent first
func (r *recorder) Recent() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.words))
	copy(out, r.words)
	return out
}

// Clear forgets every word
func (r *recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.words = r.words[:0]
}
