// Package agent exposes the transfer orchestration as a tool-calling
// surface for conversational clients. Calls arrive as JSON frames, and
// missing transfer parameters are resolved by pausing the call and
// asking the client to choose from a fixed set of options.
package agent

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/iho/fxbank/internal/domain"
	"github.com/iho/fxbank/internal/infrastructure/metrics"
)

// PendingElicitation is a question in flight. The token ties the
// client's answer back to the paused transfer.
type PendingElicitation struct {
	Token   string
	Request domain.ChoiceRequest
}

// SessionElicitor implements usecase.Elicitor by parking the calling
// goroutine until the client answers, the timeout lapses, or the
// context ends. One question is outstanding per token; transfers ask
// at most one question per missing field.
type SessionElicitor struct {
	timeout time.Duration
	notify  func(PendingElicitation)
	metrics *metrics.Metrics

	mu      sync.Mutex
	pending map[string]chan domain.ChoiceResponse
}

// NewSessionElicitor creates an elicitor that surfaces questions
// through notify and waits up to timeout for each answer.
func NewSessionElicitor(timeout time.Duration, notify func(PendingElicitation)) *SessionElicitor {
	return &SessionElicitor{
		timeout: timeout,
		notify:  notify,
		pending: make(map[string]chan domain.ChoiceResponse),
	}
}

// WithMetrics records elicitation outcomes and wait times.
func (s *SessionElicitor) WithMetrics(m *metrics.Metrics) *SessionElicitor {
	s.metrics = m
	return s
}

// Elicit asks the client one question and blocks for the answer. An
// expired timeout or cancelled context counts as a declined round.
func (s *SessionElicitor) Elicit(ctx context.Context, req domain.ChoiceRequest) (domain.ChoiceResponse, error) {
	token := ulid.Make().String()
	ch := make(chan domain.ChoiceResponse, 1)
	start := time.Now()

	s.mu.Lock()
	s.pending[token] = ch
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.pending, token)
		s.mu.Unlock()
	}()

	s.notify(PendingElicitation{Token: token, Request: req})

	select {
	case resp := <-ch:
		s.observe(req.Field, string(resp.Action), start)
		return resp, nil
	case <-time.After(s.timeout):
		s.observe(req.Field, "timeout", start)
		return domain.ChoiceResponse{}, fmt.Errorf("%w: no response within %s", domain.ErrResolutionCancelled, s.timeout)
	case <-ctx.Done():
		s.observe(req.Field, "cancelled", start)
		return domain.ChoiceResponse{}, ctx.Err()
	}
}

func (s *SessionElicitor) observe(field, outcome string, start time.Time) {
	if s.metrics == nil {
		return
	}

	s.metrics.Elicitations.WithLabelValues(field, outcome).Inc()
	s.metrics.ElicitationDuration.Observe(time.Since(start).Seconds())
}

// Resume delivers the client's answer for a pending token.
func (s *SessionElicitor) Resume(token string, resp domain.ChoiceResponse) error {
	s.mu.Lock()
	ch, ok := s.pending[token]
	if ok {
		delete(s.pending, token)
	}
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("no pending elicitation for token %q", token)
	}

	ch <- resp

	return nil
}
