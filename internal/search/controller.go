package search

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"wordfind/internal/domain"
	"wordfind/internal/eventbus"
	"wordfind/internal/lookup"
)

// Lookup fetches the entries for a word
type Lookup interface {
	Fetch(ctx context.Context, word string) (domain.LookupResult, error)
}

// Renderer receives every state the controller enters.
// Render is called with the controller's lock held and must not call back into it.
type Renderer interface {
	Render(state ViewState)
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(ViewState)

func (f RendererFunc) Render(state ViewState) { f(state) }

// Request identifies one issued lookup
type Request struct {
	Seq     uint64
	ID      string // short correlation id carried into the client's logs
	Query   domain.Query
	ctx     context.Context
	started time.Time
}

// Valid reports whether the request was actually issued
func (r Request) Valid() bool {
	return r.Seq != 0 && r.Query != ""
}

// Controller drives the search flow: validate, show loading, look up, show
// results or error. Responses to anything but the latest submission are dropped.
type Controller struct {
	lookup   Lookup
	renderer Renderer
	bus      eventbus.EventBus
	log      *slog.Logger

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	state  ViewState
}

// NewController creates a controller in the Idle state. bus may be nil.
func NewController(l Lookup, r Renderer, bus eventbus.EventBus, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	if r == nil {
		r = RendererFunc(func(ViewState) {})
	}
	return &Controller{
		lookup:   l,
		renderer: r,
		bus:      bus,
		log:      logger.With("component", "search"),
		state:    Idle(),
	}
}

// Validate reports whether raw is submittable
func (c *Controller) Validate(raw string) bool {
	_, err := domain.NewQuery(raw)
	return err == nil
}

// State returns the current view state
func (c *Controller) State() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Begin starts a submission. Blank input goes straight to the error state and
// issues no request; ok is false in that case. Any earlier in-flight request
// is cancelled and its response will be discarded.
func (c *Controller) Begin(ctx context.Context, raw string) (req Request, state ViewState, ok bool) {
	query, err := domain.NewQuery(raw)
	c.publish(eventbus.SearchSubmittedEvent{Raw: raw, Valid: err == nil})

	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if err != nil {
		c.log.Debug("rejected empty search", slog.Uint64("seq", c.seq))
		c.setState(Failure("", MsgEmptyInput))
		return Request{}, c.state, false
	}

	id := uuid.New().String()[:8]
	reqCtx, cancel := context.WithCancel(lookup.WithRequestID(ctx, id))
	c.cancel = cancel
	req = Request{Seq: c.seq, ID: id, Query: query, ctx: reqCtx, started: time.Now()}

	c.setState(Loading(query.String()))
	c.publish(eventbus.LookupStartedEvent{Seq: req.Seq, Word: query.String()})

	return req, c.state, true
}

// Fetch performs the lookup for req. It is the only blocking step and is
// safe to run off the UI goroutine.
func (c *Controller) Fetch(req Request) (domain.LookupResult, error) {
	if !req.Valid() {
		return nil, domain.ErrEmptyInput
	}
	ctx := req.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return c.lookup.Fetch(ctx, req.Query.String())
}

// Complete applies the outcome of req. It returns false, leaving the state
// untouched, when a newer submission has superseded req.
func (c *Controller) Complete(req Request, result domain.LookupResult, err error) (ViewState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	word := req.Query.String()
	if req.Seq != c.seq {
		c.log.Debug("discarding stale lookup response",
			slog.String("request_id", req.ID),
			slog.String("word", word),
			slog.Uint64("seq", req.Seq),
			slog.Uint64("latest", c.seq),
		)
		c.publish(eventbus.LookupDiscardedEvent{Seq: req.Seq, Latest: c.seq, Word: word})
		return c.state, false
	}

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	elapsed := time.Since(req.started)

	if err == nil {
		if entry, found := result.First(); found {
			c.log.Info("lookup succeeded",
				slog.String("request_id", req.ID),
				slog.String("word", word),
				slog.Int("entries", len(result)),
				slog.Duration("elapsed", elapsed),
			)
			c.setState(Results(word, entry))
			c.publish(eventbus.LookupSucceededEvent{Seq: req.Seq, Word: word, Headword: entry.Word, Elapsed: elapsed})
			return c.state, true
		}
		err = lookup.ErrEmptyResult
	}

	kind := lookup.KindOf(err)
	attrs := []any{
		slog.String("request_id", req.ID),
		slog.String("word", word),
		slog.String("kind", string(kind)),
		slog.String("error", err.Error()),
		slog.Duration("elapsed", elapsed),
	}
	var httpErr *lookup.HTTPError
	if errors.As(err, &httpErr) {
		attrs = append(attrs, slog.Int("status", httpErr.Status))
	}
	c.log.Warn("lookup failed", attrs...)

	message := MsgNotFound
	if kind == lookup.KindEmptyResult {
		message = MsgNoResults
	}
	c.setState(Failure(word, message))
	c.publish(eventbus.LookupFailedEvent{Seq: req.Seq, Word: word, Kind: string(kind), Err: err, Elapsed: elapsed})

	return c.state, true
}

// HandleSearch runs a whole submission synchronously and returns the final state
func (c *Controller) HandleSearch(ctx context.Context, raw string) ViewState {
	req, state, ok := c.Begin(ctx, raw)
	if !ok {
		return state
	}
	result, err := c.Fetch(req)
	state, _ = c.Complete(req, result, err)
	return state
}

// Cancel aborts the in-flight request, if any. Its response will be discarded.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// setState must be called with mu held
func (c *Controller) setState(s ViewState) {
	c.state = s
	c.renderer.Render(s)
}

func (c *Controller) publish(e eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}
