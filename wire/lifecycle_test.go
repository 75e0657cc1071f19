package wire

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xdriver/jsonwire/api"
)

// stubSession fakes the session half of the lifecycle contract; the
// finalizers are generic over api.Session and never need a real transport.
type stubSession struct {
	id         string
	closeCalls int
	closeErr   error
}

var _ api.Session = (*stubSession)(nil)

func (s *stubSession) Execute(context.Context, string, string, any, any) error { return nil }
func (s *stubSession) ID() string                                              { return s.id }

func (s *stubSession) Close(context.Context) error {
	s.closeCalls++
	return s.closeErr
}

func TestFinallyClose(t *testing.T) {
	t.Parallel()

	cmdErr := &FailedCommandError{Type: FailedTimeout, Info: FailedCommandInfo{Message: "too slow"}}
	closeErr := errors.New("close failed")

	tests := []struct {
		name     string
		runErr   error
		closeErr error
		wantErr  error
	}{
		{name: "success_then_clean_close"},
		{name: "failure_still_closes", runErr: cmdErr, wantErr: cmdErr},
		{name: "close_failure_surfaces_alone", closeErr: closeErr, wantErr: closeErr},
		{name: "both_fail_original_wins", runErr: cmdErr, closeErr: closeErr, wantErr: cmdErr},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := &stubSession{id: "abc", closeErr: tt.closeErr}
			err := FinallyClose(context.Background(), s, func() error { return tt.runErr })

			assert.Equal(t, 1, s.closeCalls, "close must run exactly once, on every exit path")
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.runErr != nil && tt.closeErr != nil {
				// Neither condition may be dropped.
				assert.Contains(t, err.Error(), tt.closeErr.Error())
			}
		})
	}
}

func TestFinallyClosePropagatesTypedFailure(t *testing.T) {
	t.Parallel()

	cmdErr := &FailedCommandError{Type: FailedNoSuchElement, Info: FailedCommandInfo{SessionID: "abc"}}
	s := &stubSession{id: "abc"}

	err := FinallyClose(context.Background(), s, func() error { return cmdErr })

	var failed *FailedCommandError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, FailedNoSuchElement, failed.Type)
	assert.Equal(t, 1, s.closeCalls)
}

func TestFinallyCloseOnPanic(t *testing.T) {
	t.Parallel()

	s := &stubSession{id: "abc"}
	func() {
		defer func() {
			require.NotNil(t, recover())
		}()
		_ = FinallyClose(context.Background(), s, func() error { panic("boom") })
	}()

	assert.Equal(t, 1, s.closeCalls, "close must run even when the sequence panics")
}

func TestCloseOnError(t *testing.T) {
	t.Parallel()

	t.Run("success_leaves_session_active", func(t *testing.T) {
		t.Parallel()

		s := &stubSession{id: "abc"}
		err := CloseOnError(context.Background(), s, func() error { return nil })
		require.NoError(t, err)
		assert.Zero(t, s.closeCalls, "no close command may be issued on success")
	})

	t.Run("failure_closes_then_propagates", func(t *testing.T) {
		t.Parallel()

		cmdErr := &FailedCommandError{Type: FailedTimeout}
		s := &stubSession{id: "abc"}
		err := CloseOnError(context.Background(), s, func() error { return cmdErr })

		assert.Equal(t, 1, s.closeCalls)
		assert.ErrorIs(t, err, cmdErr)
	})

	t.Run("close_failure_attached", func(t *testing.T) {
		t.Parallel()

		cmdErr := &FailedCommandError{Type: FailedTimeout}
		s := &stubSession{id: "abc", closeErr: errors.New("close failed")}
		err := CloseOnError(context.Background(), s, func() error { return cmdErr })

		assert.ErrorIs(t, err, cmdErr)
		assert.Contains(t, err.Error(), "close failed")
	})
}
