// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package flow owns the request life cycle of each use case: validate the
// input, dispatch it to the service, track the load/success/error state,
// and normalize the response for presentation.
//
// Every flow is a Controller with the same state machine:
//
//	idle    --Dispatch(valid)-->   loading --resolve(ok)-->   success
//	idle    --Dispatch(invalid)--> error
//	loading --resolve(fail)-->     error
//	success/error --Dispatch-->    loading (prior result discarded)
//
// A Dispatch made while an earlier one is still loading supersedes it: the
// earlier call's context is cancelled and its resolution, should it still
// arrive, is dropped without touching the state.
package flow

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pdiddy/medvision/internal/api"
	"github.com/pdiddy/medvision/pkg/types"
)

// Phase is the coarse state of a controller.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// State is a snapshot of a controller. Data is set only in PhaseSuccess and
// Message only in PhaseError.
type State[T any] struct {
	Phase   Phase
	Data    T
	Message string
}

func (s State[T]) Idle() bool      { return s.Phase == PhaseIdle }
func (s State[T]) Loading() bool   { return s.Phase == PhaseLoading }
func (s State[T]) Succeeded() bool { return s.Phase == PhaseSuccess }
func (s State[T]) Failed() bool    { return s.Phase == PhaseError }

// NoticeKind classifies a transient notification.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notifier receives a transient notification for every terminal transition.
type Notifier interface {
	Notify(kind NoticeKind, message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(kind NoticeKind, message string)

// Notify calls f.
func (f NotifierFunc) Notify(kind NoticeKind, message string) { f(kind, message) }

// Recorder persists terminal dispatch outcomes.
type Recorder interface {
	Record(ctx context.Context, entry types.JournalEntry) error
}

// ValidationError is a local input failure. It never reaches the network.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Options carries the collaborators shared by every controller. All fields
// are optional.
type Options struct {
	Notifier Notifier
	Recorder Recorder
	Logger   zerolog.Logger
}

// definition describes one use case to the generic controller.
type definition[In, T any] struct {
	name     string
	validate func(In) error
	run      func(ctx context.Context, in In) (T, error)
	fallback string
	success  func(T) string
	describe func(In) string
	count    func(T) int
}

type listener[T any] struct {
	id int
	fn func(State[T])
}

// Controller runs one use case. It is safe for concurrent use. Listeners
// are called in transition order and must not call Dispatch, Reset, or
// Wait synchronously.
type Controller[In, T any] struct {
	def  definition[In, T]
	opts Options

	mu        sync.Mutex
	state     State[T]
	seq       uint64
	cancel    context.CancelFunc
	settled   chan struct{}
	listeners []listener[T]
	nextID    int
	closed    bool

	// emitMu keeps listener fan-out in the same order as transitions.
	emitMu sync.Mutex
}

func newController[In, T any](def definition[In, T], opts Options) *Controller[In, T] {
	return &Controller[In, T]{
		def:   def,
		opts:  opts,
		state: State[T]{Phase: PhaseIdle},
	}
}

// Name identifies the flow ("search", "diagnose", ...).
func (c *Controller[In, T]) Name() string { return c.def.name }

// State returns the current snapshot.
func (c *Controller[In, T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn for every subsequent transition and returns a
// function that removes it.
func (c *Controller[In, T]) Subscribe(fn func(State[T])) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.listeners = append(c.listeners, listener[T]{id: id, fn: fn})
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// Dispatch validates in and, when valid, starts the request in the
// background. It returns without waiting for the service. Invalid input
// moves straight to PhaseError without a loading transition.
func (c *Controller[In, T]) Dispatch(ctx context.Context, in In) {
	if err := c.def.validate(in); err != nil {
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return
		}
		c.supersedeLocked()
		c.state = State[T]{Phase: PhaseError, Message: err.Error()}
		entry := types.JournalEntry{
			Flow:    c.def.name,
			Input:   c.def.describe(in),
			Phase:   string(PhaseError),
			Message: err.Error(),
			At:      time.Now(),
		}
		c.unlockAndPublish(func() { c.finish(ctx, entry, NoticeError) })
		c.opts.Logger.Debug().Str("flow", c.def.name).Str("reason", err.Error()).Msg("input rejected")
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.supersedeLocked()
	token := c.seq
	reqID := uuid.NewString()
	runCtx, cancel := context.WithCancel(api.WithRequestID(ctx, reqID))
	c.cancel = cancel
	c.settled = make(chan struct{})
	c.state = State[T]{Phase: PhaseLoading}
	c.unlockAndPublish(nil)

	go c.resolve(runCtx, cancel, token, reqID, in)
}

func (c *Controller[In, T]) resolve(ctx context.Context, cancel context.CancelFunc, token uint64, reqID string, in In) {
	defer cancel()
	start := time.Now()
	data, err := c.def.run(ctx, in)

	c.mu.Lock()
	if token != c.seq {
		c.mu.Unlock()
		c.opts.Logger.Debug().Str("flow", c.def.name).Str("request_id", reqID).Msg("stale resolution dropped")
		return
	}
	c.cancel = nil
	close(c.settled)
	c.settled = nil

	entry := types.JournalEntry{
		Flow:      c.def.name,
		RequestID: reqID,
		Input:     c.def.describe(in),
		Duration:  time.Since(start),
		At:        start,
	}
	kind := NoticeSuccess
	if err != nil {
		msg := api.Message(err, c.def.fallback)
		c.state = State[T]{Phase: PhaseError, Message: msg}
		entry.Phase, entry.Message = string(PhaseError), msg
		kind = NoticeError
		c.opts.Logger.Debug().Err(err).Str("flow", c.def.name).Str("request_id", reqID).Msg("dispatch failed")
	} else {
		c.state = State[T]{Phase: PhaseSuccess, Data: data}
		entry.Phase, entry.Message = string(PhaseSuccess), c.def.success(data)
		entry.Count = c.def.count(data)
	}
	c.unlockAndPublish(func() { c.finish(ctx, entry, kind) })
}

// finish sends the notification and journals the outcome.
func (c *Controller[In, T]) finish(ctx context.Context, entry types.JournalEntry, kind NoticeKind) {
	if c.opts.Notifier != nil {
		c.opts.Notifier.Notify(kind, entry.Message)
	}
	if c.opts.Recorder != nil {
		if err := c.opts.Recorder.Record(context.WithoutCancel(ctx), entry); err != nil {
			c.opts.Logger.Warn().Err(err).Str("flow", c.def.name).Msg("journal write failed")
		}
	}
}

// Reset returns the controller to idle, discarding any result, error, or
// in-flight request.
func (c *Controller[In, T]) Reset() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.supersedeLocked()
	c.state = State[T]{Phase: PhaseIdle}
	c.unlockAndPublish(nil)
}

// Wait blocks until the controller is not loading and returns that state.
// Listeners, the notifier, and the journal have all seen the state by the
// time Wait returns. It returns ctx.Err() with the current state if ctx
// ends first.
func (c *Controller[In, T]) Wait(ctx context.Context) (State[T], error) {
	for {
		c.mu.Lock()
		if c.state.Phase != PhaseLoading {
			s := c.state
			c.mu.Unlock()
			c.emitMu.Lock()
			c.emitMu.Unlock()
			return s, nil
		}
		ch := c.settled
		c.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return c.State(), ctx.Err()
		}
	}
}

// Close cancels any in-flight request, drops all listeners, and turns
// further Dispatch and Reset calls into no-ops.
func (c *Controller[In, T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.supersedeLocked()
	c.state = State[T]{Phase: PhaseIdle}
	c.listeners = nil
	c.closed = true
}

// supersedeLocked invalidates the in-flight dispatch, if any.
func (c *Controller[In, T]) supersedeLocked() {
	c.seq++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.settled != nil {
		close(c.settled)
		c.settled = nil
	}
}

// unlockAndPublish releases mu, hands the new state to every listener, and
// then runs after (if non-nil) before the next transition can publish.
// The caller must hold mu.
func (c *Controller[In, T]) unlockAndPublish(after func()) {
	snap := c.state
	ls := make([]listener[T], len(c.listeners))
	copy(ls, c.listeners)
	c.emitMu.Lock()
	c.mu.Unlock()
	defer c.emitMu.Unlock()
	for _, l := range ls {
		l.fn(snap)
	}
	if after != nil {
		after()
	}
}
