// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package asking coordinates the question lifecycle for the CLI. The
// Controller owns the mutable state around the pure session resolver: the
// current session and the in-flight request flag. Commands submit a question,
// show progress labels while waiting, and receive the resolved immutable
// QuerySession when the answer (or failure) arrives.
package asking

import (
	"context"
	"errors"
	"strings"
	"sync"

	"askdb/cli/internal/backend"
	"askdb/cli/internal/history"
	"askdb/cli/internal/session"
)

// ErrBusy is returned when a question is submitted while another is still
// outstanding. One request at a time; the UI disables input during the wait.
var ErrBusy = errors.New("a question is already being processed")

// ErrEmptyQuestion is returned for blank input.
var ErrEmptyQuestion = errors.New("question cannot be empty")

// Controller owns the request lifecycle around the session resolver.
type Controller struct {
	api backend.API

	mu       sync.Mutex
	inFlight bool
	current  session.QuerySession

	// recorder appends finished questions to the local history file.
	// nil disables recording.
	recorder *history.Log
}

// NewController creates a controller for the given backend API.
func NewController(api backend.API) *Controller {
	return &Controller{api: api, current: session.Idle()}
}

// WithHistory enables history recording through log.
func (c *Controller) WithHistory(log *history.Log) *Controller {
	c.recorder = log
	return c
}

// Ask submits one question and blocks until the resolved session is
// available. Transport and service failures are absorbed into an error-status
// session; the returned error is non-nil only for client-side refusals
// (blank question, request already outstanding).
func (c *Controller) Ask(ctx context.Context, question string) (session.QuerySession, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return session.Idle(), ErrEmptyQuestion
	}

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return c.current, ErrBusy
	}
	c.inFlight = true
	c.mu.Unlock()

	answer, err := c.api.Ask(ctx, question, true)
	resolved := session.Resolve(answer, err)

	c.mu.Lock()
	c.inFlight = false
	c.current = resolved
	c.mu.Unlock()

	if c.recorder != nil {
		_ = c.recorder.Append(history.Record{
			Question: question,
			Status:   string(resolved.Status),
			SQL:      resolved.SQL,
			RowCount: len(resolved.ResultRows),
		})
	}
	return resolved, nil
}

// Current returns the most recently resolved session.
func (c *Controller) Current() session.QuerySession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// InFlight reports whether a question is currently outstanding.
func (c *Controller) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// Reset returns the controller to the idle state.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = session.Idle()
}
