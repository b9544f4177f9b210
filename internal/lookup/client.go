package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"wordfind/internal/domain"
)

// DefaultBaseURL is the Free Dictionary entries endpoint for English
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

const (
	DefaultTimeout   = 10 * time.Second
	DefaultRateLimit = 5 // requests per second
)

// maxBodySize caps how much of a response is read
const maxBodySize = 4 << 20

type requestIDKey struct{}

// WithRequestID tags ctx so the client's log lines can be matched to a search
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id set by WithRequestID, or ""
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Client fetches entries from the dictionary lookup service.
// It issues exactly one request per Fetch and never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout; zero disables it
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithRateLimit caps outgoing requests per second; zero or less disables the cap
func WithRateLimit(requestsPerSecond int) Option {
	return func(c *Client) {
		if requestsPerSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// NewClient creates a Client for baseURL, or the public endpoint when empty
func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		log:        logger.With("component", "lookup"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the endpoint requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URLFor builds the request URL for word
func (c *Client) URLFor(word string) string {
	return c.baseURL + "/" + url.PathEscape(word)
}

// Fetch looks word up and returns the parsed entries.
// Failures are *NetworkError, *HTTPError or *ParseError.
func (c *Client) Fetch(ctx context.Context, word string) (domain.LookupResult, error) {
	reqURL := c.URLFor(word)
	log := c.log
	if id := RequestID(ctx); id != "" {
		log = log.With(slog.String("request_id", id))
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &NetworkError{Word: word, Err: fmt.Errorf("rate limit wait: %w", err)}
	}

	log.DebugContext(ctx, "lookup request", slog.String("word", word), slog.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &NetworkError{Word: word, Err: fmt.Errorf("create request: %w", err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Word: word, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &NetworkError{Word: word, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{Word: word, Status: resp.StatusCode}
		if gjson.ValidBytes(body) {
			httpErr.Title = gjson.GetBytes(body, "title").String()
		}
		log.WarnContext(ctx, "lookup non-success status",
			slog.String("word", word),
			slog.Int("status", resp.StatusCode),
			slog.String("title", httpErr.Title),
			slog.String("message", gjson.GetBytes(body, "message").String()),
		)
		return nil, httpErr
	}

	result, err := decodeEntries(body)
	if err != nil {
		return nil, &ParseError{Word: word, Err: err}
	}

	log.DebugContext(ctx, "lookup response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("entries", len(result)),
	)

	return result, nil
}

// decodeEntries checks the body is a JSON array of objects before decoding it
// into entries. A null body is an empty result.
func decodeEntries(body []byte) (domain.LookupResult, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("body is not valid JSON")
	}
	parsed := gjson.ParseBytes(body)
	if parsed.Type == gjson.Null {
		return domain.LookupResult{}, nil
	}
	if !parsed.IsArray() {
		return nil, fmt.Errorf("expected a JSON array of entries, got %s", parsed.Type)
	}

	var shapeErr error
	index := 0
	parsed.ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			shapeErr = fmt.Errorf("entry %d is %s, not an object", index, v.Type)
			return false
		}
		index++
		return true
	})
	if shapeErr != nil {
		return nil, shapeErr
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	result := make(domain.LookupResult, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.toDomain())
	}
	return result, nil
}
