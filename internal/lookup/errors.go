package lookup

import (
	"errors"
	"fmt"

	"wordfind/internal/domain"
)

// Kind classifies a lookup failure. Users only ever see one of two messages;
// the kind is kept for logs and events.
type Kind string

const (
	KindEmptyInput  Kind = "empty_input"
	KindNetwork     Kind = "network"
	KindHTTP        Kind = "http"
	KindEmptyResult Kind = "empty_result"
	KindParse       Kind = "parse"
	KindUnknown     Kind = "unknown"
)

// ErrEmptyResult is returned when the service answered with an empty entry list
var ErrEmptyResult = errors.New("lookup returned no entries")

// NetworkError means the request could not be sent or no response arrived
type NetworkError struct {
	Word string
	Err  error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("lookup %q: network error: %v", e.Word, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError means the service answered with a non-success status
type HTTPError struct {
	Word   string
	Status int
	Title  string // from the service's error body, if any
}

func (e *HTTPError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("lookup %q: HTTP error! status: %d (%s)", e.Word, e.Status, e.Title)
	}
	return fmt.Sprintf("lookup %q: HTTP error! status: %d", e.Word, e.Status)
}

// ParseError means the response body was not a list of entries
type ParseError struct {
	Word string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("lookup %q: parse response: %v", e.Word, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// KindOf maps err to its failure kind
func KindOf(err error) Kind {
	var (
		netErr   *NetworkError
		httpErr  *HTTPError
		parseErr *ParseError
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrEmptyInput):
		return KindEmptyInput
	case errors.Is(err, ErrEmptyResult):
		return KindEmptyResult
	case errors.As(err, &netErr):
		return KindNetwork
	case errors.As(err, &httpErr):
		return KindHTTP
	case errors.As(err, &parseErr):
		return KindParse
	default:
		return KindUnknown
	}
}
