package wire

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/xdriver/jsonwire/api"
	"github.com/xdriver/jsonwire/common"
)

const (
	pathSession   = "/session"
	pathSessionID = "/session/" + sessionIDParam
)

// Create negotiates a new server-side session with caps as the desired
// capabilities and assigns the returned session id. It returns the actual
// capabilities the server granted, which use the same shape as the desired
// ones but express support rather than preference.
//
// A session that already carries an id must be closed before it can create
// again; calling Create on it is a caller bug.
func (s *Session) Create(ctx context.Context, caps common.Capabilities) (common.Capabilities, error) {
	var actual common.Capabilities
	if s.id != "" {
		return actual, fmt.Errorf("session %q already created; close it before creating another", s.id)
	}

	reply, err := s.execute(ctx, http.MethodPost, pathSession, map[string]any{
		"desiredCapabilities": caps,
	})
	if err != nil {
		return actual, err
	}
	if !reply.SessionID.Valid || reply.SessionID.String == "" {
		return actual, &BadJSONError{
			Err:  errors.New("session creation reply carries no session id"),
			Body: reply.Value,
		}
	}
	if err := json.Unmarshal(reply.Value, &actual); err != nil {
		return actual, &BadJSONError{Err: err, Body: reply.Value}
	}

	s.id = reply.SessionID.String
	s.logger.Infof("Session:Create", "created session %s (browser %s)", s.id, actual.Browser.Name())
	return actual, nil
}

// Close terminates the server-side session and clears the session id so the
// state can be reused for a fresh Create. Close is not idempotent at the
// protocol boundary: closing twice is the caller's responsibility to avoid.
func (s *Session) Close(ctx context.Context) error {
	if err := s.Execute(ctx, http.MethodDelete, pathSessionID, nil, nil); err != nil {
		return err
	}
	s.logger.Infof("Session:Close", "closed session %s", s.id)
	s.id = ""
	return nil
}

// FinallyClose runs fn and then closes the session no matter how fn exits,
// including panics. fn's own failure takes precedence and still propagates
// after close completes; a close failure on top of it is attached to the
// returned error rather than dropped. When fn succeeds, a close failure is
// returned as-is.
func FinallyClose(ctx context.Context, s api.Session, fn func() error) (err error) {
	defer func() {
		closeErr := s.Close(ctx)
		switch {
		case closeErr == nil:
		case err == nil:
			err = closeErr
		default:
			err = fmt.Errorf("%w (session close also failed: %v)", err, closeErr)
		}
	}()
	return fn()
}

// CloseOnError runs fn and closes the session only when fn fails, then
// propagates the failure. On success the session stays active, for chains
// where something else owns the close.
func CloseOnError(ctx context.Context, s api.Session, fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}
	if closeErr := s.Close(ctx); closeErr != nil {
		return fmt.Errorf("%w (session close also failed: %v)", err, closeErr)
	}
	return err
}
