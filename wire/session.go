package wire

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/xdriver/jsonwire/api"
	"github.com/xdriver/jsonwire/config"
	"github.com/xdriver/jsonwire/log"
)

// sessionIDParam marks where the current session id goes in a path
// template.
const sessionIDParam = ":sessionId"

// Ensure Session satisfies the public contracts.
var _ api.Session = (*Session)(nil)

// Session owns the client-side state of one automation session: the server
// address, the server-issued session id once creation succeeds, and an
// append-only history of executed commands.
//
// A Session belongs to a single goroutine. Commands execute strictly one at
// a time, each blocking until its HTTP round trip completes. Concurrent
// automation requires one Session per server-side session; nothing here is
// synchronized.
type Session struct {
	// ExtraHeaders are added to every request this session sends.
	ExtraHeaders http.Header

	client  *Client
	logger  *log.Logger
	id      string
	history []HistoryEntry
}

// NewSession returns a session bound to the server at host:port. No
// server-side session exists until Create is called.
func NewSession(host string, port uint16, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	client, err := NewClient(host, port, nil, logger)
	if err != nil {
		return nil, err
	}
	return &Session{client: client, logger: logger}, nil
}

// NewSessionFromConfig returns a session for the server named by cfg.
func NewSessionFromConfig(cfg *config.Config, logger *log.Logger) (*Session, error) {
	return NewSession(cfg.Host, cfg.Port, logger)
}

// ID returns the server-issued session id, or "" when no session is
// active.
func (s *Session) ID() string { return s.id }

// Execute implements api.Executor: it performs one command against the
// server and decodes the reply value into res. res may be nil when the
// command's value is of no interest. Any returned error is one of the
// taxonomy kinds.
func (s *Session) Execute(ctx context.Context, method, path string, body, res any) error {
	reply, err := s.execute(ctx, method, path, body)
	if err != nil {
		return err
	}
	if res == nil {
		return nil
	}
	if err := json.Unmarshal(reply.Value, res); err != nil {
		return &BadJSONError{Err: err, Body: reply.Value}
	}
	return nil
}

// execute is the codec core shared by Execute and Create: resolve the path
// template, encode the body, run the exchange, record it in the history and
// classify the outcome.
func (s *Session) execute(ctx context.Context, method, path string, body any) (*serverReply, error) {
	p, err := s.resolvePath(path)
	if err != nil {
		return nil, err
	}

	var reqBody []byte
	if body != nil {
		if reqBody, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("encoding request body for %s %s: %w", method, p, err)
		}
	}

	resp, err := s.client.do(ctx, method, p, s.ExtraHeaders, reqBody)
	if err != nil {
		return nil, err
	}
	s.record(method, p, reqBody, resp)

	return classify(method, p, resp, s.id)
}

// resolvePath substitutes the current session id into a path template.
// A template that references the session id while none is set is a caller
// bug, reported before any network call happens.
func (s *Session) resolvePath(path string) (string, error) {
	if !strings.Contains(path, sessionIDParam) {
		return path, nil
	}
	if s.id == "" {
		return "", &NoSessionIDError{Path: path}
	}
	return strings.ReplaceAll(path, sessionIDParam, s.id), nil
}
