package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchSubmitted EventType = "SearchSubmitted"
	EventLookupStarted   EventType = "LookupStarted"
	EventLookupSucceeded EventType = "LookupSucceeded"
	EventLookupFailed    EventType = "LookupFailed"
	EventLookupDiscarded EventType = "LookupDiscarded"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchSubmittedEvent is emitted for every submission, valid or not
type SearchSubmittedEvent struct {
	Raw   string
	Valid bool
}

func (e SearchSubmittedEvent) Type() EventType { return EventSearchSubmitted }

// LookupStartedEvent is emitted when a request is issued
type LookupStartedEvent struct {
	Seq  uint64
	Word string
}

func (e LookupStartedEvent) Type() EventType { return EventLookupStarted }

// LookupSucceededEvent is emitted when the latest request produced an entry
type LookupSucceededEvent struct {
	Seq      uint64
	Word     string
	Headword string
	Elapsed  time.Duration
}

func (e LookupSucceededEvent) Type() EventType { return EventLookupSucceeded }

// LookupFailedEvent is emitted when the latest request ended in the error state
type LookupFailedEvent struct {
	Seq     uint64
	Word    string
	Kind    string // internal failure kind, never shown to the user
	Err     error
	Elapsed time.Duration
}

func (e LookupFailedEvent) Type() EventType { return EventLookupFailed }

// LookupDiscardedEvent is emitted when a stale response arrives after a newer search
type LookupDiscardedEvent struct {
	Seq    uint64
	Latest uint64
	Word   string
}

func (e LookupDiscardedEvent) Type() EventType { return EventLookupDiscarded }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	BaseURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
