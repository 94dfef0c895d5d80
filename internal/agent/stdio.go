package agent

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/iho/fxbank/internal/domain"
)

// Frame types on the wire. Each line is one JSON frame.
const (
	FrameCall          = "call"           // client -> agent: invoke a tool
	FrameChoice        = "choice"         // client -> agent: answer an elicitation
	FrameListTools     = "list-tools"     // client -> agent: describe the tool catalogue
	FrameListResources = "list-resources" // client -> agent: describe the resource catalogue
	FrameReadResource  = "read-resource"  // client -> agent: read one resource URI
	FrameGetPrompt     = "get-prompt"     // client -> agent: fetch a canned prompt
	FrameResult        = "result"         // agent -> client: call, read, or prompt finished
	FrameError         = "error"          // agent -> client: request failed
	FrameElicitation   = "elicitation"    // agent -> client: a question is pending
	FrameTools         = "tools"          // agent -> client: the tool catalogue
	FrameResources     = "resources"      // agent -> client: the resource catalogue
)

// InboundFrame is one client line.
type InboundFrame struct {
	Type string `json:"type"`

	// call
	ID   string          `json:"id,omitempty"`
	Tool string          `json:"tool,omitempty"`
	Args json.RawMessage `json:"args,omitempty"`

	// read-resource / get-prompt
	URI  string `json:"uri,omitempty"`
	Name string `json:"name,omitempty"`

	// choice
	Token  string `json:"token,omitempty"`
	Action string `json:"action,omitempty"`
	Value  string `json:"value,omitempty"`
}

// OutboundFrame is one agent line.
type OutboundFrame struct {
	Type string `json:"type"`

	ID     string `json:"id,omitempty"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
	Code   string `json:"code,omitempty"`

	Token   string                `json:"token,omitempty"`
	Field   string                `json:"field,omitempty"`
	Message string                `json:"message,omitempty"`
	Options []domain.ChoiceOption `json:"options,omitempty"`

	Tools     []Tool     `json:"tools,omitempty"`
	Resources []Resource `json:"resources,omitempty"`
}

// Server speaks the line protocol over a reader/writer pair, stdin and
// stdout in the agent binary. Tool calls run concurrently so a paused
// transfer never blocks other calls or the answer that resumes it.
type Server struct {
	toolbox  *Toolbox
	elicitor *SessionElicitor
	logger   zerolog.Logger

	writeMu sync.Mutex
	enc     *json.Encoder
}

// NewServer creates a Server. The elicitor must have been built with
// this server's Notify so questions reach the client.
func NewServer(toolbox *Toolbox, elicitor *SessionElicitor, logger zerolog.Logger, w io.Writer) *Server {
	return &Server{
		toolbox:  toolbox,
		elicitor: elicitor,
		logger:   logger,
		enc:      json.NewEncoder(w),
	}
}

// Notify writes an elicitation frame. Passed to NewSessionElicitor.
func (s *Server) Notify(p PendingElicitation) {
	s.write(OutboundFrame{
		Type:    FrameElicitation,
		Token:   p.Token,
		Field:   p.Request.Field,
		Message: p.Request.Message,
		Options: p.Request.Options,
	})
}

// Run reads frames until EOF or context cancellation.
func (s *Server) Run(ctx context.Context, r io.Reader) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var frame InboundFrame
		if err := json.Unmarshal(line, &frame); err != nil {
			s.logger.Warn().Err(err).Msg("dropping malformed frame")
			continue
		}

		switch frame.Type {
		case FrameCall:
			wg.Add(1)
			go func(f InboundFrame) {
				defer wg.Done()
				s.handleCall(ctx, f)
			}(frame)
		case FrameChoice:
			s.handleChoice(frame)
		case FrameListTools:
			s.write(OutboundFrame{Type: FrameTools, ID: frame.ID, Tools: s.toolbox.List()})
		case FrameListResources:
			s.write(OutboundFrame{Type: FrameResources, ID: frame.ID, Resources: s.toolbox.Resources()})
		case FrameReadResource:
			// Resource reads hit the upstream, so they run like calls.
			wg.Add(1)
			go func(f InboundFrame) {
				defer wg.Done()
				s.handleReadResource(ctx, f)
			}(frame)
		case FrameGetPrompt:
			s.handleGetPrompt(frame)
		default:
			s.logger.Warn().Str("type", frame.Type).Msg("dropping frame of unknown type")
		}
	}

	return scanner.Err()
}

func (s *Server) handleCall(ctx context.Context, frame InboundFrame) {
	result, err := s.toolbox.Call(ctx, frame.Tool, frame.Args)
	if err != nil {
		s.logger.Info().
			Str("tool", frame.Tool).
			Str("call_id", frame.ID).
			Err(err).
			Msg("tool call rejected")

		s.write(OutboundFrame{
			Type:  FrameError,
			ID:    frame.ID,
			Error: err.Error(),
			Code:  codeForError(err),
		})

		return
	}

	s.write(OutboundFrame{Type: FrameResult, ID: frame.ID, Result: result})
}

func (s *Server) handleReadResource(ctx context.Context, frame InboundFrame) {
	result, err := s.toolbox.ReadResource(ctx, frame.URI)
	if err != nil {
		s.logger.Info().
			Str("uri", frame.URI).
			Str("call_id", frame.ID).
			Err(err).
			Msg("resource read rejected")

		s.write(OutboundFrame{
			Type:  FrameError,
			ID:    frame.ID,
			Error: err.Error(),
			Code:  codeForError(err),
		})

		return
	}

	s.write(OutboundFrame{Type: FrameResult, ID: frame.ID, Result: result})
}

func (s *Server) handleGetPrompt(frame InboundFrame) {
	prompt, err := s.toolbox.Prompt(frame.Name)
	if err != nil {
		s.write(OutboundFrame{
			Type:  FrameError,
			ID:    frame.ID,
			Error: err.Error(),
			Code:  codeForError(err),
		})

		return
	}

	s.write(OutboundFrame{Type: FrameResult, ID: frame.ID, Result: prompt})
}

func (s *Server) handleChoice(frame InboundFrame) {
	resp := domain.ChoiceResponse{
		Action: domain.ChoiceAction(frame.Action),
		Value:  frame.Value,
	}

	if err := s.elicitor.Resume(frame.Token, resp); err != nil {
		s.logger.Warn().Str("token", frame.Token).Err(err).Msg("dropping choice")
	}
}

func (s *Server) write(frame OutboundFrame) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.enc.Encode(frame); err != nil {
		s.logger.Error().Err(err).Msg("failed to write frame")
	}
}

// codeForError mirrors the REST error codes so both surfaces speak the
// same vocabulary.
func codeForError(err error) string {
	switch {
	case errors.Is(err, domain.ErrIdentityNotFound):
		return "identity_not_found"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrSameCurrency):
		return "same_currency"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrInvalidCurrency):
		return "invalid_currency"
	case errors.Is(err, domain.ErrInvalidCondition):
		return "invalid_condition"
	case errors.Is(err, domain.ErrInvalidRate):
		return "invalid_rate"
	case errors.Is(err, domain.ErrRateConditionNotMet):
		return "rate_condition_not_met"
	case errors.Is(err, domain.ErrNoAlternativeAccount):
		return "no_alternative_account"
	case errors.Is(err, domain.ErrResolutionCancelled):
		return "resolution_cancelled"
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return "upstream_unavailable"
	default:
		return "internal"
	}
}
